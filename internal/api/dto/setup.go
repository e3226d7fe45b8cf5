package dto

// SecurityModulesDTO selects the modules to enable
type SecurityModulesDTO struct {
	EndpointProtection bool `json:"endpointProtection"`
	EmailSecurity      bool `json:"emailSecurity"`
	WebSecurity        bool `json:"webSecurity"`
	BackupRecovery     bool `json:"backupRecovery"`
}

// OrganizationSetupRequest represents the setup wizard submission
// Omitted securityModules enables every module
type OrganizationSetupRequest struct {
	OrganizationName       string              `json:"organizationName" validate:"notblank" example:"Acme Ltd"`
	Domain                 string              `json:"domain,omitempty" validate:"omitempty,domain" example:"acme.co.za"`
	Industry               string              `json:"industry,omitempty" validate:"omitempty,oneof=technology finance healthcare retail manufacturing education government nonprofit other" example:"finance"`
	EmployeeCount          string              `json:"employeeCount,omitempty" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 500+" example:"11-50"`
	ComplianceRequirements []string            `json:"complianceRequirements,omitempty" validate:"omitempty,unique,dive,oneof=NDPR POPIA GDPR"`
	SecurityModules        *SecurityModulesDTO `json:"securityModules,omitempty"`
}

// OrganizationSetupResponse acknowledges a valid submission
type OrganizationSetupResponse struct {
	Success        bool     `json:"success" example:"true"`
	Message        string   `json:"message" example:"Organization Acme Ltd validated successfully"`
	SetupID        string   `json:"setupId" example:"setup_0b7e4c1e-6a53-4f0e-8d1c-5d2b8e6f9a10"`
	EnabledModules []string `json:"enabledModules"`
}
