package setup

import (
	"fmt"
	"slices"
	"strings"
)

// Industries offered by the setup wizard
var Industries = []string{
	"technology", "finance", "healthcare", "retail", "manufacturing",
	"education", "government", "nonprofit", "other",
}

// EmployeeRanges offered by the setup wizard
var EmployeeRanges = []string{"1-10", "11-50", "51-200", "201-500", "500+"}

// Compliance frameworks
const (
	FrameworkNDPR  = "NDPR"
	FrameworkPOPIA = "POPIA"
	FrameworkGDPR  = "GDPR"
)

// Frameworks lists the supported compliance frameworks
var Frameworks = []string{FrameworkNDPR, FrameworkPOPIA, FrameworkGDPR}

// Module keys used by the security module toggles
const (
	ModuleEndpointProtection = "endpointProtection"
	ModuleEmailSecurity      = "emailSecurity"
	ModuleWebSecurity        = "webSecurity"
	ModuleBackupRecovery     = "backupRecovery"
)

// ModuleToggles selects which security modules an organization enables
type ModuleToggles struct {
	EndpointProtection bool `json:"endpointProtection"`
	EmailSecurity      bool `json:"emailSecurity"`
	WebSecurity        bool `json:"webSecurity"`
	BackupRecovery     bool `json:"backupRecovery"`
}

// DefaultModuleToggles enables every module, matching the wizard's initial state
func DefaultModuleToggles() ModuleToggles {
	return ModuleToggles{
		EndpointProtection: true,
		EmailSecurity:      true,
		WebSecurity:        true,
		BackupRecovery:     true,
	}
}

// Enabled returns the keys of the enabled modules in catalog order
func (m ModuleToggles) Enabled() []string {
	enabled := []string{}
	if m.EndpointProtection {
		enabled = append(enabled, ModuleEndpointProtection)
	}
	if m.EmailSecurity {
		enabled = append(enabled, ModuleEmailSecurity)
	}
	if m.WebSecurity {
		enabled = append(enabled, ModuleWebSecurity)
	}
	if m.BackupRecovery {
		enabled = append(enabled, ModuleBackupRecovery)
	}
	return enabled
}

// Organization is a setup wizard submission
type Organization struct {
	Name                   string
	Domain                 string
	Industry               string
	EmployeeCount          string
	ComplianceRequirements []string
	SecurityModules        ModuleToggles
}

// Receipt acknowledges an accepted submission. Nothing is stored.
type Receipt struct {
	SetupID        string
	Message        string
	EnabledModules []string
}

// Validate checks the fields the wizard restricts to fixed choices. Empty
// optional fields are accepted.
func (o Organization) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return fmt.Errorf("organization name is required")
	}
	if o.Industry != "" && !slices.Contains(Industries, o.Industry) {
		return fmt.Errorf("unknown industry %q", o.Industry)
	}
	if o.EmployeeCount != "" && !slices.Contains(EmployeeRanges, o.EmployeeCount) {
		return fmt.Errorf("unknown employee count %q", o.EmployeeCount)
	}
	for _, f := range o.ComplianceRequirements {
		if !slices.Contains(Frameworks, f) {
			return fmt.Errorf("unknown compliance framework %q", f)
		}
	}
	return nil
}
