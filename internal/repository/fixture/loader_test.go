package fixture

import (
	"strings"
	"testing"
	"time"

	"github.com/afrihackbox/mssp/internal/domain/security"
)

var loadTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestLoadFile(t *testing.T) {
	d, err := LoadFile("testdata/dataset.yaml", loadTime)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	m := d.Metrics()
	if m.ComplianceScore != 72 || m.ThreatTrend != security.TrendStable {
		t.Errorf("Metrics() = %+v", m)
	}
	if want := loadTime.Add(-2 * time.Minute); !m.LastScanTime.Equal(want) {
		t.Errorf("LastScanTime = %v, want %v", m.LastScanTime, want)
	}

	threats := d.Threats(0)
	if len(threats) != 2 {
		t.Fatalf("Threats() returned %d, want 2", len(threats))
	}
	if threats[0].ID != "t-100" || threats[1].ID != "t-101" {
		t.Errorf("threat order = %s, %s", threats[0].ID, threats[1].ID)
	}
	if want := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC); !threats[1].Timestamp.Equal(want) {
		t.Errorf("absolute timestamp = %v, want %v", threats[1].Timestamp, want)
	}

	if got := d.Counts(); got["alerts"] != 1 || got["modules"] != 1 {
		t.Errorf("Counts() = %v", got)
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "compliance score out of range",
			yaml: `
metrics:
  threatTrend: stable
  complianceScore: 140
`,
			wantErr: "complianceScore 140 out of range",
		},
		{
			name: "unknown threat type",
			yaml: `
metrics:
  threatTrend: stable
threats:
  - id: "1"
    type: worm
    severity: low
    status: blocked
`,
			wantErr: `unknown type "worm"`,
		},
		{
			name: "duplicate alert ids",
			yaml: `
metrics:
  threatTrend: stable
alerts:
  - id: "1"
    severity: info
  - id: "1"
    severity: info
`,
			wantErr: `duplicate id "1"`,
		},
		{
			name: "unknown field",
			yaml: `
metrics:
  threatTrend: stable
  riskScore: 3
`,
			wantErr: "riskScore",
		},
		{
			name: "bad age",
			yaml: `
metrics:
  threatTrend: stable
  lastScanTime:
    age: yesterday
`,
			wantErr: `invalid age "yesterday"`,
		},
		{
			name: "both at and age",
			yaml: `
metrics:
  threatTrend: stable
  lastScanTime:
    age: 1m
    at: 2026-03-14T08:00:00Z
`,
			wantErr: "either at or age",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml), loadTime)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("testdata/does-not-exist.yaml", loadTime); err == nil {
		t.Error("LoadFile() expected error for missing file")
	}
}
