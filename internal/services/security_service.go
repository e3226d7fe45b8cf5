package services

import (
	"context"

	"github.com/afrihackbox/mssp/internal/domain/security"
	"github.com/afrihackbox/mssp/internal/pkg/errors"
	"github.com/afrihackbox/mssp/internal/pkg/logger"
	"github.com/afrihackbox/mssp/internal/pkg/metrics"
	"github.com/google/uuid"
)

// SecurityService implements security.Service
type SecurityService struct {
	repo   security.Repository
	logger *logger.Logger
	newID  func() string
}

// NewSecurityService creates a new security service
func NewSecurityService(repo security.Repository, log *logger.Logger) security.Service {
	return NewSecurityServiceWithIDs(repo, log, uuid.NewString)
}

// NewSecurityServiceWithIDs creates a security service that takes scan
// correlation ids from newID
func NewSecurityServiceWithIDs(repo security.Repository, log *logger.Logger, newID func() string) security.Service {
	return &SecurityService{
		repo:   repo,
		logger: log,
		newID:  newID,
	}
}

// Query returns the records selected by q
func (s *SecurityService) Query(ctx context.Context, q security.Query) (security.QueryResult, error) {
	view := security.ParseView(string(q.View))
	limit := q.Limit
	if limit < 1 {
		limit = security.DefaultListLimit
	}

	result, err := s.query(ctx, view, limit)
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"view":  view,
			"limit": limit,
		}).ErrorWithErr(err, "Security query failed")
		return security.QueryResult{}, errors.Internal(err)
	}

	metrics.RecordQuery(string(view))
	return result, nil
}

func (s *SecurityService) query(ctx context.Context, view security.View, limit int) (security.QueryResult, error) {
	result := security.QueryResult{View: view}

	var threatLimit, alertLimit int
	switch view {
	case security.ViewMetrics:
		m, err := s.repo.GetMetrics(ctx)
		result.Metrics = m
		return result, err
	case security.ViewThreats:
		threats, err := s.repo.ListThreats(ctx, limit)
		result.Threats = threats
		return result, err
	case security.ViewAlerts:
		alerts, err := s.repo.ListAlerts(ctx, limit)
		result.Alerts = alerts
		return result, err
	case security.ViewAll:
		// limit is ignored; zero limits return everything
	default:
		threatLimit, alertLimit = security.DefaultViewLimit, security.DefaultViewLimit
	}

	m, err := s.repo.GetMetrics(ctx)
	if err != nil {
		return result, err
	}
	threats, err := s.repo.ListThreats(ctx, threatLimit)
	if err != nil {
		return result, err
	}
	alerts, err := s.repo.ListAlerts(ctx, alertLimit)
	if err != nil {
		return result, err
	}

	result.Metrics = m
	result.Threats = threats
	result.Alerts = alerts
	return result, nil
}

// Dispatch acknowledges an action. The dataset is never modified.
func (s *SecurityService) Dispatch(ctx context.Context, a security.Action) (security.ActionResult, error) {
	if a == nil || !a.Name().Valid() {
		metrics.RecordAction("unknown", "rejected")
		return security.ActionResult{}, errors.InvalidRequest("Invalid action")
	}

	if err := ctx.Err(); err != nil {
		s.logger.ErrorWithErr(err, "Security action aborted")
		metrics.RecordAction(string(a.Name()), "failed")
		return security.ActionResult{}, errors.Internal(err)
	}

	var scanID string
	if a.Name() == security.ActionScan {
		scanID = s.newID()
	}

	result, err := security.Acknowledge(a, scanID)
	if err != nil {
		metrics.RecordAction(string(a.Name()), "rejected")
		return security.ActionResult{}, errors.InvalidRequest("Invalid action")
	}

	fields := map[string]interface{}{"action": result.Action}
	switch act := a.(type) {
	case security.QuarantineAction:
		fields["threat_id"] = act.ThreatID
	case security.ResolveAlertAction:
		fields["alert_id"] = act.AlertID
	}
	if result.ScanID != "" {
		fields["scan_id"] = result.ScanID
	}
	s.logger.WithFields(fields).Info("Security action acknowledged")
	metrics.RecordAction(string(result.Action), "accepted")

	return result, nil
}

// Modules returns the security module catalog
func (s *SecurityService) Modules(ctx context.Context) ([]security.Module, error) {
	modules, err := s.repo.ListModules(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to list security modules")
		return nil, errors.Internal(err)
	}
	return modules, nil
}

// Ready reports the dataset collection sizes
func (s *SecurityService) Ready(ctx context.Context) (map[string]int, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Security dataset not ready")
		return nil, errors.Internal(err)
	}
	return counts, nil
}
