package client

import "time"

// Metrics holds the dashboard's aggregate counters
type Metrics struct {
	TotalThreatsBlocked int       `json:"totalThreatsBlocked" yaml:"totalThreatsBlocked"`
	ActiveProtections   int       `json:"activeProtections" yaml:"activeProtections"`
	DevicesProtected    int       `json:"devicesProtected" yaml:"devicesProtected"`
	LastScanTime        time.Time `json:"lastScanTime" yaml:"lastScanTime"`
	ThreatTrend         string    `json:"threatTrend" yaml:"threatTrend"`
	ComplianceScore     int       `json:"complianceScore" yaml:"complianceScore"`
}

// Threat is a detected threat
type Threat struct {
	ID          string    `json:"id" yaml:"id"`
	Type        string    `json:"type" yaml:"type"`
	Severity    string    `json:"severity" yaml:"severity"`
	Source      string    `json:"source" yaml:"source"`
	Target      string    `json:"target" yaml:"target"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Status      string    `json:"status" yaml:"status"`
	Description string    `json:"description" yaml:"description"`
}

// Alert is a security notification
type Alert struct {
	ID             string    `json:"id" yaml:"id"`
	Title          string    `json:"title" yaml:"title"`
	Message        string    `json:"message" yaml:"message"`
	Severity       string    `json:"severity" yaml:"severity"`
	Timestamp      time.Time `json:"timestamp" yaml:"timestamp"`
	Module         string    `json:"module" yaml:"module"`
	ActionRequired bool      `json:"actionRequired" yaml:"actionRequired"`
	Resolved       bool      `json:"resolved" yaml:"resolved"`
}

// Module is a protection module
type Module struct {
	ID               string    `json:"id" yaml:"id"`
	Name             string    `json:"name" yaml:"name"`
	Description      string    `json:"description" yaml:"description"`
	Icon             string    `json:"icon" yaml:"icon"`
	Status           string    `json:"status" yaml:"status"`
	ThreatLevel      string    `json:"threatLevel" yaml:"threatLevel"`
	LastScan         time.Time `json:"lastScan" yaml:"lastScan"`
	ProtectedDevices int       `json:"protectedDevices" yaml:"protectedDevices"`
	BlockedThreats   int       `json:"blockedThreats" yaml:"blockedThreats"`
	Color            string    `json:"color" yaml:"color"`
	Features         []string  `json:"features" yaml:"features"`
}

// Bundle is the combined body of the all and default views
type Bundle struct {
	Metrics Metrics  `json:"metrics" yaml:"metrics"`
	Threats []Threat `json:"threats" yaml:"threats"`
	Alerts  []Alert  `json:"alerts" yaml:"alerts"`
}

// ActionResponse acknowledges a security action
type ActionResponse struct {
	Success bool   `json:"success" yaml:"success"`
	Message string `json:"message" yaml:"message"`
	ScanID  string `json:"scanId,omitempty" yaml:"scanId,omitempty"`
}

// SecurityModules toggles the modules an organization enables
type SecurityModules struct {
	EndpointProtection bool `json:"endpointProtection" yaml:"endpointProtection"`
	EmailSecurity      bool `json:"emailSecurity" yaml:"emailSecurity"`
	WebSecurity        bool `json:"webSecurity" yaml:"webSecurity"`
	BackupRecovery     bool `json:"backupRecovery" yaml:"backupRecovery"`
}

// OrganizationSetup is the setup wizard submission
type OrganizationSetup struct {
	OrganizationName       string           `json:"organizationName" yaml:"organizationName"`
	Domain                 string           `json:"domain,omitempty" yaml:"domain,omitempty"`
	Industry               string           `json:"industry,omitempty" yaml:"industry,omitempty"`
	EmployeeCount          string           `json:"employeeCount,omitempty" yaml:"employeeCount,omitempty"`
	ComplianceRequirements []string         `json:"complianceRequirements,omitempty" yaml:"complianceRequirements,omitempty"`
	SecurityModules        *SecurityModules `json:"securityModules,omitempty" yaml:"securityModules,omitempty"`
}

// SetupResponse acknowledges a valid setup submission
type SetupResponse struct {
	Success        bool     `json:"success" yaml:"success"`
	Message        string   `json:"message" yaml:"message"`
	SetupID        string   `json:"setupId" yaml:"setupId"`
	EnabledModules []string `json:"enabledModules" yaml:"enabledModules"`
}

// FieldError describes one failed validation rule
type FieldError struct {
	Field   string `json:"field" yaml:"field"`
	Tag     string `json:"tag" yaml:"tag"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// HealthResponse is the liveness body
type HealthResponse struct {
	Status string `json:"status" yaml:"status"`
}

// ReadinessResponse is the readiness body
type ReadinessResponse struct {
	Status  string         `json:"status" yaml:"status"`
	Records map[string]int `json:"records" yaml:"records"`
}
