package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/afrihackbox/mssp/internal/domain/security"
)

func TestSecurityRepository_Reads(t *testing.T) {
	repo := NewSecurityRepository(security.Seed(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
	ctx := context.Background()

	m, err := repo.GetMetrics(ctx)
	if err != nil {
		t.Fatalf("GetMetrics() error = %v", err)
	}
	if m.ThreatTrend != security.TrendDecreasing {
		t.Errorf("ThreatTrend = %s", m.ThreatTrend)
	}

	threats, err := repo.ListThreats(ctx, 2)
	if err != nil {
		t.Fatalf("ListThreats() error = %v", err)
	}
	if len(threats) != 2 || threats[0].ID != "1" || threats[1].ID != "2" {
		t.Errorf("ListThreats(2) = %+v", threats)
	}

	alerts, err := repo.ListAlerts(ctx, 10)
	if err != nil {
		t.Fatalf("ListAlerts() error = %v", err)
	}
	if len(alerts) != 2 {
		t.Errorf("ListAlerts(10) returned %d, want 2", len(alerts))
	}

	modules, err := repo.ListModules(ctx)
	if err != nil {
		t.Fatalf("ListModules() error = %v", err)
	}
	if len(modules) != 4 {
		t.Errorf("ListModules() returned %d, want 4", len(modules))
	}
}

func TestSecurityRepository_NoDataset(t *testing.T) {
	repo := NewSecurityRepository(nil)

	if _, err := repo.GetMetrics(context.Background()); !errors.Is(err, security.ErrDatasetNotLoaded) {
		t.Errorf("GetMetrics() error = %v, want ErrDatasetNotLoaded", err)
	}
	if _, err := repo.Counts(context.Background()); !errors.Is(err, security.ErrDatasetNotLoaded) {
		t.Errorf("Counts() error = %v, want ErrDatasetNotLoaded", err)
	}
}

func TestSecurityRepository_CanceledContext(t *testing.T) {
	repo := NewSecurityRepository(security.Seed(time.Now()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.ListThreats(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("ListThreats() error = %v, want context.Canceled", err)
	}
}
