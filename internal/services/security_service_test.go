package services

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/afrihackbox/mssp/internal/domain/security"
	"github.com/afrihackbox/mssp/internal/pkg/errors"
	"github.com/afrihackbox/mssp/internal/repository/memory"
	"github.com/afrihackbox/mssp/internal/testutil"
)

func newTestSecurityService(d *security.Dataset) security.Service {
	repo := memory.NewSecurityRepository(d)
	return NewSecurityServiceWithIDs(repo, testutil.NewLogger(), testutil.SequenceIDs())
}

func TestSecurityService_Query(t *testing.T) {
	service := newTestSecurityService(testutil.NewLargeDataset(12))
	ctx := context.Background()

	tests := []struct {
		name        string
		query       security.Query
		wantView    security.View
		wantThreats int
		wantAlerts  int
	}{
		{"metrics", security.Query{View: "metrics"}, security.ViewMetrics, 0, 0},
		{"threats default limit", security.Query{View: "threats"}, security.ViewThreats, 10, 0},
		{"threats limit 2", security.Query{View: "threats", Limit: 2}, security.ViewThreats, 2, 0},
		{"alerts limit 3", security.Query{View: "alerts", Limit: 3}, security.ViewAlerts, 0, 3},
		{"alerts limit beyond size", security.Query{View: "alerts", Limit: 50}, security.ViewAlerts, 0, 12},
		{"all ignores limit", security.Query{View: "all", Limit: 1}, security.ViewAll, 12, 12},
		{"missing type", security.Query{}, security.ViewDefault, 5, 5},
		{"unknown type", security.Query{View: "bogus", Limit: 1}, security.ViewDefault, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := service.Query(ctx, tt.query)
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if res.View != tt.wantView {
				t.Errorf("View = %s, want %s", res.View, tt.wantView)
			}
			if len(res.Threats) != tt.wantThreats {
				t.Errorf("len(Threats) = %d, want %d", len(res.Threats), tt.wantThreats)
			}
			if len(res.Alerts) != tt.wantAlerts {
				t.Errorf("len(Alerts) = %d, want %d", len(res.Alerts), tt.wantAlerts)
			}
			for i, th := range res.Threats {
				if want := strconv.Itoa(i + 1); th.ID != want {
					t.Errorf("Threats[%d].ID = %s, want %s", i, th.ID, want)
				}
			}
		})
	}
}

func TestSecurityService_QueryThreatsIsPrefix(t *testing.T) {
	service := newTestSecurityService(testutil.NewSeedDataset())
	ctx := context.Background()

	all, err := service.Query(ctx, security.Query{View: security.ViewAll})
	if err != nil {
		t.Fatalf("Query(all) error = %v", err)
	}
	two, err := service.Query(ctx, security.Query{View: security.ViewThreats, Limit: 2})
	if err != nil {
		t.Fatalf("Query(threats) error = %v", err)
	}

	if len(two.Threats) != 2 {
		t.Fatalf("len = %d, want 2", len(two.Threats))
	}
	for i := range two.Threats {
		if two.Threats[i] != all.Threats[i] {
			t.Errorf("threat %d = %+v, want %+v", i, two.Threats[i], all.Threats[i])
		}
	}
}

func TestSecurityService_QueryRepositoryFailure(t *testing.T) {
	cause := stderrors.New("disk on fire")
	service := NewSecurityService(testutil.NewFailingSecurityRepository(cause), testutil.NewLogger())

	_, err := service.Query(context.Background(), security.Query{View: security.ViewMetrics})
	if err == nil {
		t.Fatal("Query() expected error")
	}

	appErr := errors.AsAppError(err)
	if appErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", appErr.StatusCode)
	}
	if appErr.Message != errors.InternalServerErrorMessage {
		t.Errorf("Message = %q leaks detail", appErr.Message)
	}
	if !stderrors.Is(err, cause) {
		t.Error("error should wrap the repository cause")
	}
}

func TestSecurityService_Dispatch(t *testing.T) {
	service := newTestSecurityService(testutil.NewSeedDataset())
	ctx := context.Background()

	tests := []struct {
		name        string
		action      security.Action
		wantMessage string
		wantScanID  string
		wantStatus  int
	}{
		{
			name:        "scan",
			action:      security.ScanAction{},
			wantMessage: "Security scan initiated",
			wantScanID:  "scan_id-1",
		},
		{
			name:        "quarantine",
			action:      security.QuarantineAction{ThreatID: "42"},
			wantMessage: "Threat 42 quarantined successfully",
		},
		{
			name:        "resolve alert",
			action:      security.ResolveAlertAction{AlertID: "2"},
			wantMessage: "Alert 2 resolved successfully",
		},
		{
			name:       "nil action",
			action:     nil,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := service.Dispatch(ctx, tt.action)
			if tt.wantStatus != 0 {
				if err == nil {
					t.Fatal("Dispatch() expected error")
				}
				appErr := errors.AsAppError(err)
				if appErr.StatusCode != tt.wantStatus || appErr.Message != "Invalid action" {
					t.Errorf("error = %d %q, want %d Invalid action", appErr.StatusCode, appErr.Message, tt.wantStatus)
				}
				return
			}
			if err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if res.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", res.Message, tt.wantMessage)
			}
			if res.ScanID != tt.wantScanID {
				t.Errorf("ScanID = %q, want %q", res.ScanID, tt.wantScanID)
			}
		})
	}
}

func TestSecurityService_DispatchDoesNotMutate(t *testing.T) {
	service := newTestSecurityService(testutil.NewSeedDataset())
	ctx := context.Background()

	before, _ := service.Query(ctx, security.Query{View: security.ViewAll})

	service.Dispatch(ctx, security.QuarantineAction{ThreatID: "1"})
	service.Dispatch(ctx, security.ResolveAlertAction{AlertID: "2"})
	service.Dispatch(ctx, security.ScanAction{})

	after, _ := service.Query(ctx, security.Query{View: security.ViewAll})

	if after.Threats[0].Status != before.Threats[0].Status {
		t.Errorf("threat 1 status changed from %s to %s", before.Threats[0].Status, after.Threats[0].Status)
	}
	if after.Alerts[1].Resolved != before.Alerts[1].Resolved {
		t.Error("alert 2 resolved flag changed")
	}
	if after.Metrics != before.Metrics {
		t.Error("metrics changed after scan")
	}
}

func TestSecurityService_ScanIDsAreFresh(t *testing.T) {
	service := NewSecurityService(memory.NewSecurityRepository(testutil.NewSeedDataset()), testutil.NewLogger())
	ctx := context.Background()

	first, err := service.Dispatch(ctx, security.ScanAction{})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	second, _ := service.Dispatch(ctx, security.ScanAction{})

	if !strings.HasPrefix(first.ScanID, security.ScanIDPrefix) {
		t.Errorf("ScanID = %q, want prefix %q", first.ScanID, security.ScanIDPrefix)
	}
	if first.ScanID == second.ScanID {
		t.Errorf("two scans share id %q", first.ScanID)
	}
}

func TestSecurityService_Ready(t *testing.T) {
	service := newTestSecurityService(testutil.NewSeedDataset())

	counts, err := service.Ready(context.Background())
	if err != nil {
		t.Fatalf("Ready() error = %v", err)
	}
	if counts["threats"] != 3 || counts["alerts"] != 2 {
		t.Errorf("Ready() = %v", counts)
	}

	notLoaded := newTestSecurityService(nil)
	if _, err := notLoaded.Ready(context.Background()); err == nil {
		t.Error("Ready() expected error without dataset")
	}
}
