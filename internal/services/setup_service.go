package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/afrihackbox/mssp/internal/domain/setup"
	"github.com/afrihackbox/mssp/internal/pkg/errors"
	"github.com/afrihackbox/mssp/internal/pkg/logger"
	"github.com/afrihackbox/mssp/internal/pkg/metrics"
	"github.com/google/uuid"
)

// SetupService implements setup.Service. Submissions are acknowledged,
// never stored.
type SetupService struct {
	logger *logger.Logger
}

// NewSetupService creates a new setup service
func NewSetupService(log *logger.Logger) setup.Service {
	return &SetupService{logger: log}
}

// Submit acknowledges an organization submission that passed validation
func (s *SetupService) Submit(ctx context.Context, org setup.Organization) (setup.Receipt, error) {
	if err := org.Validate(); err != nil {
		metrics.RecordSetupSubmission("rejected")
		return setup.Receipt{}, errors.InvalidRequest("Invalid organization: " + err.Error())
	}
	name := strings.TrimSpace(org.Name)

	receipt := setup.Receipt{
		SetupID:        "setup_" + uuid.NewString(),
		Message:        fmt.Sprintf("Organization %s validated successfully", name),
		EnabledModules: org.SecurityModules.Enabled(),
	}

	s.logger.WithFields(map[string]interface{}{
		"setup_id":   receipt.SetupID,
		"domain":     org.Domain,
		"industry":   org.Industry,
		"frameworks": org.ComplianceRequirements,
		"modules":    receipt.EnabledModules,
	}).Info("Organization setup acknowledged")
	metrics.RecordSetupSubmission("accepted")

	return receipt, nil
}
