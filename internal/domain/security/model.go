package security

import "time"

// ThreatTrend describes the direction of blocked threat volume
type ThreatTrend string

// Threat trends
const (
	TrendIncreasing ThreatTrend = "increasing"
	TrendDecreasing ThreatTrend = "decreasing"
	TrendStable     ThreatTrend = "stable"
)

// ThreatType classifies a detected threat
type ThreatType string

// Threat types
const (
	ThreatMalware    ThreatType = "malware"
	ThreatPhishing   ThreatType = "phishing"
	ThreatRansomware ThreatType = "ransomware"
	ThreatDDoS       ThreatType = "ddos"
	ThreatIntrusion  ThreatType = "intrusion"
)

// Severity levels shared by threats and module threat levels
type Severity string

// Severity levels
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ThreatStatus is the handling state of a threat
type ThreatStatus string

// Threat status
const (
	ThreatBlocked       ThreatStatus = "blocked"
	ThreatQuarantined   ThreatStatus = "quarantined"
	ThreatInvestigating ThreatStatus = "investigating"
	ThreatResolved      ThreatStatus = "resolved"
)

// AlertSeverity levels for notifications
type AlertSeverity string

// Alert severity levels
const (
	AlertInfo     AlertSeverity = "info"
	AlertWarning  AlertSeverity = "warning"
	AlertError    AlertSeverity = "error"
	AlertCritical AlertSeverity = "critical"
)

// ModuleStatus is the operational state of a security module
type ModuleStatus string

// Module status
const (
	ModuleActive   ModuleStatus = "active"
	ModuleInactive ModuleStatus = "inactive"
	ModuleWarning  ModuleStatus = "warning"
	ModuleError    ModuleStatus = "error"
)

// Metrics holds the aggregate counters shown on the dashboard
type Metrics struct {
	TotalThreatsBlocked int         `json:"totalThreatsBlocked" yaml:"totalThreatsBlocked"`
	ActiveProtections   int         `json:"activeProtections" yaml:"activeProtections"`
	DevicesProtected    int         `json:"devicesProtected" yaml:"devicesProtected"`
	LastScanTime        time.Time   `json:"lastScanTime" yaml:"lastScanTime"`
	ThreatTrend         ThreatTrend `json:"threatTrend" yaml:"threatTrend"`
	ComplianceScore     int         `json:"complianceScore" yaml:"complianceScore"`
}

// Threat is a single detected threat
type Threat struct {
	ID          string       `json:"id" yaml:"id"`
	Type        ThreatType   `json:"type" yaml:"type"`
	Severity    Severity     `json:"severity" yaml:"severity"`
	Source      string       `json:"source" yaml:"source"`
	Target      string       `json:"target" yaml:"target"`
	Timestamp   time.Time    `json:"timestamp" yaml:"timestamp"`
	Status      ThreatStatus `json:"status" yaml:"status"`
	Description string       `json:"description" yaml:"description"`
}

// Alert is a security notification
type Alert struct {
	ID             string        `json:"id" yaml:"id"`
	Title          string        `json:"title" yaml:"title"`
	Message        string        `json:"message" yaml:"message"`
	Severity       AlertSeverity `json:"severity" yaml:"severity"`
	Timestamp      time.Time     `json:"timestamp" yaml:"timestamp"`
	Module         string        `json:"module" yaml:"module"`
	ActionRequired bool          `json:"actionRequired" yaml:"actionRequired"`
	Resolved       bool          `json:"resolved" yaml:"resolved"`
}

// Module is one of the protection modules rendered on the dashboard
type Module struct {
	ID               string       `json:"id" yaml:"id"`
	Name             string       `json:"name" yaml:"name"`
	Description      string       `json:"description" yaml:"description"`
	Icon             string       `json:"icon" yaml:"icon"`
	Status           ModuleStatus `json:"status" yaml:"status"`
	ThreatLevel      Severity     `json:"threatLevel" yaml:"threatLevel"`
	LastScan         time.Time    `json:"lastScan" yaml:"lastScan"`
	ProtectedDevices int          `json:"protectedDevices" yaml:"protectedDevices"`
	BlockedThreats   int          `json:"blockedThreats" yaml:"blockedThreats"`
	Color            string       `json:"color" yaml:"color"`
	Features         []string     `json:"features" yaml:"features"`
}

// Valid reports whether t is a known trend
func (t ThreatTrend) Valid() bool {
	switch t {
	case TrendIncreasing, TrendDecreasing, TrendStable:
		return true
	}
	return false
}

// Valid reports whether t is a known threat type
func (t ThreatType) Valid() bool {
	switch t {
	case ThreatMalware, ThreatPhishing, ThreatRansomware, ThreatDDoS, ThreatIntrusion:
		return true
	}
	return false
}

// Valid reports whether s is a known severity
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Valid reports whether s is a known threat status
func (s ThreatStatus) Valid() bool {
	switch s {
	case ThreatBlocked, ThreatQuarantined, ThreatInvestigating, ThreatResolved:
		return true
	}
	return false
}

// Valid reports whether s is a known alert severity
func (s AlertSeverity) Valid() bool {
	switch s {
	case AlertInfo, AlertWarning, AlertError, AlertCritical:
		return true
	}
	return false
}

// Valid reports whether s is a known module status
func (s ModuleStatus) Valid() bool {
	switch s {
	case ModuleActive, ModuleInactive, ModuleWarning, ModuleError:
		return true
	}
	return false
}
