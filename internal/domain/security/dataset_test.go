package security

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestSeed_IsValid(t *testing.T) {
	d := Seed(fixedNow)

	if err := d.Validate(); err != nil {
		t.Fatalf("Seed() dataset invalid: %v", err)
	}

	counts := d.Counts()
	if counts["threats"] != 3 || counts["alerts"] != 2 || counts["modules"] != 4 {
		t.Errorf("Counts() = %v, want threats=3 alerts=2 modules=4", counts)
	}

	m := d.Metrics()
	if m.ComplianceScore != 95 || m.TotalThreatsBlocked != 1247 {
		t.Errorf("Metrics() = %+v", m)
	}
	if !m.LastScanTime.Equal(fixedNow) {
		t.Errorf("LastScanTime = %v, want %v", m.LastScanTime, fixedNow)
	}
}

func TestDataset_ThreatsPrefix(t *testing.T) {
	d := Seed(fixedNow)
	all := d.Threats(0)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero returns all", 0, 3},
		{"negative returns all", -1, 3},
		{"one", 1, 1},
		{"two", 2, 2},
		{"beyond size", 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Threats(tt.limit)
			if len(got) != tt.want {
				t.Fatalf("Threats(%d) returned %d, want %d", tt.limit, len(got), tt.want)
			}
			for i := range got {
				if got[i].ID != all[i].ID {
					t.Errorf("Threats(%d)[%d].ID = %s, want %s", tt.limit, i, got[i].ID, all[i].ID)
				}
			}
		})
	}
}

func TestDataset_AccessorsReturnCopies(t *testing.T) {
	d := Seed(fixedNow)

	threats := d.Threats(0)
	threats[0].Status = ThreatResolved

	alerts := d.Alerts(0)
	alerts[0].Resolved = false

	modules := d.Modules()
	modules[0].Features[0] = "tampered"

	if d.Threats(1)[0].Status != ThreatBlocked {
		t.Error("mutating Threats() result changed the dataset")
	}
	if !d.Alerts(1)[0].Resolved {
		t.Error("mutating Alerts() result changed the dataset")
	}
	if d.Modules()[0].Features[0] == "tampered" {
		t.Error("mutating Modules() result changed the dataset")
	}
}

func TestNewDataset_CopiesInput(t *testing.T) {
	threats := []Threat{{ID: "a", Type: ThreatDDoS, Severity: SeverityLow, Status: ThreatBlocked}}
	d := NewDataset(Metrics{ThreatTrend: TrendStable}, threats, nil, nil)

	threats[0].ID = "changed"

	if got := d.Threats(0)[0].ID; got != "a" {
		t.Errorf("dataset shares caller's slice, id = %s", got)
	}
}

func TestDataset_Validate(t *testing.T) {
	validThreat := Threat{ID: "1", Type: ThreatMalware, Severity: SeverityLow, Status: ThreatBlocked}
	validAlert := Alert{ID: "1", Severity: AlertInfo}

	tests := []struct {
		name    string
		dataset *Dataset
		wantErr string
	}{
		{
			name:    "valid",
			dataset: NewDataset(Metrics{ThreatTrend: TrendStable, ComplianceScore: 100}, []Threat{validThreat}, []Alert{validAlert}, nil),
		},
		{
			name:    "compliance score above range",
			dataset: NewDataset(Metrics{ThreatTrend: TrendStable, ComplianceScore: 101}, nil, nil, nil),
			wantErr: "complianceScore 101 out of range",
		},
		{
			name:    "compliance score below range",
			dataset: NewDataset(Metrics{ThreatTrend: TrendStable, ComplianceScore: -1}, nil, nil, nil),
			wantErr: "complianceScore -1 out of range",
		},
		{
			name:    "unknown trend",
			dataset: NewDataset(Metrics{ThreatTrend: "sideways"}, nil, nil, nil),
			wantErr: `unknown threatTrend "sideways"`,
		},
		{
			name:    "duplicate threat id",
			dataset: NewDataset(Metrics{ThreatTrend: TrendStable}, []Threat{validThreat, validThreat}, nil, nil),
			wantErr: `threats[1]: duplicate id "1"`,
		},
		{
			name: "unknown threat type",
			dataset: NewDataset(Metrics{ThreatTrend: TrendStable}, []Threat{
				{ID: "1", Type: "worm", Severity: SeverityLow, Status: ThreatBlocked},
			}, nil, nil),
			wantErr: `unknown type "worm"`,
		},
		{
			name: "unknown alert severity",
			dataset: NewDataset(Metrics{ThreatTrend: TrendStable}, nil, []Alert{
				{ID: "1", Severity: "high"},
			}, nil),
			wantErr: `alerts[0]: unknown severity "high"`,
		},
		{
			name: "unknown module status",
			dataset: NewDataset(Metrics{ThreatTrend: TrendStable}, nil, nil, []Module{
				{ID: "m", Status: "degraded", ThreatLevel: SeverityLow},
			}),
			wantErr: `modules[0]: unknown status "degraded"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dataset.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseView(t *testing.T) {
	tests := []struct {
		in   string
		want View
	}{
		{"metrics", ViewMetrics},
		{"threats", ViewThreats},
		{"alerts", ViewAlerts},
		{"all", ViewAll},
		{"", ViewDefault},
		{"bogus", ViewDefault},
		{"METRICS", ViewDefault},
		{"default", ViewDefault},
	}

	for _, tt := range tests {
		if got := ParseView(tt.in); got != tt.want {
			t.Errorf("ParseView(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestQueryResult_BodyNeverNullLists(t *testing.T) {
	body := QueryResult{View: ViewThreats}.Body()
	if threats, ok := body.([]Threat); !ok || threats == nil {
		t.Errorf("Body() for empty threats = %#v, want empty slice", body)
	}

	bundle, ok := QueryResult{View: ViewDefault}.Body().(Bundle)
	if !ok {
		t.Fatal("default view body should be a Bundle")
	}
	if bundle.Threats == nil || bundle.Alerts == nil {
		t.Error("bundle lists should be empty slices, not nil")
	}
}

func TestAcknowledge(t *testing.T) {
	tests := []struct {
		name        string
		action      Action
		wantMessage string
		wantScanID  string
	}{
		{"scan", ScanAction{}, "Security scan initiated", "scan_abc"},
		{"quarantine", QuarantineAction{ThreatID: "42"}, "Threat 42 quarantined successfully", ""},
		{"resolve alert", ResolveAlertAction{AlertID: "7"}, "Alert 7 resolved successfully", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Acknowledge(tt.action, "abc")
			if err != nil {
				t.Fatalf("Acknowledge() error = %v", err)
			}
			if res.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", res.Message, tt.wantMessage)
			}
			if res.ScanID != tt.wantScanID {
				t.Errorf("ScanID = %q, want %q", res.ScanID, tt.wantScanID)
			}
			if res.Action != tt.action.Name() {
				t.Errorf("Action = %s, want %s", res.Action, tt.action.Name())
			}
		})
	}

	if _, err := Acknowledge(nil, ""); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Acknowledge(nil) error = %v, want ErrUnknownAction", err)
	}
}
