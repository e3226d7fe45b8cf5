package security

import "time"

// Seed returns the built-in telemetry with timestamps relative to now.
func Seed(now time.Time) *Dataset {
	now = now.UTC()

	metrics := Metrics{
		TotalThreatsBlocked: 1247,
		ActiveProtections:   4,
		DevicesProtected:    23,
		LastScanTime:        now,
		ThreatTrend:         TrendDecreasing,
		ComplianceScore:     95,
	}

	threats := []Threat{
		{
			ID:          "1",
			Type:        ThreatPhishing,
			Severity:    SeverityHigh,
			Source:      "unknown@malicious.com",
			Target:      "john@company.com",
			Timestamp:   now.Add(-30 * time.Minute),
			Status:      ThreatBlocked,
			Description: "Suspicious email with malicious attachment blocked",
		},
		{
			ID:          "2",
			Type:        ThreatMalware,
			Severity:    SeverityMedium,
			Source:      "192.168.1.100",
			Target:      "Workstation-05",
			Timestamp:   now.Add(-45 * time.Minute),
			Status:      ThreatQuarantined,
			Description: "Trojan detected and quarantined",
		},
		{
			ID:          "3",
			Type:        ThreatRansomware,
			Severity:    SeverityCritical,
			Source:      "External IP",
			Target:      "File Server",
			Timestamp:   now.Add(-60 * time.Minute),
			Status:      ThreatBlocked,
			Description: "Ransomware attack prevented by behavioral analysis",
		},
	}

	alerts := []Alert{
		{
			ID:             "1",
			Title:          "Security Scan Complete",
			Message:        "All systems scanned successfully. No critical threats detected.",
			Severity:       AlertInfo,
			Timestamp:      now.Add(-15 * time.Minute),
			Module:         "Endpoint Protection",
			ActionRequired: false,
			Resolved:       true,
		},
		{
			ID:             "2",
			Title:          "Suspicious Activity Detected",
			Message:        "Unusual network traffic pattern detected from external source.",
			Severity:       AlertWarning,
			Timestamp:      now.Add(-5 * time.Minute),
			Module:         "Web Security",
			ActionRequired: true,
			Resolved:       false,
		},
	}

	modules := []Module{
		{
			ID:               "endpoint",
			Name:             "Endpoint Protection",
			Description:      "Antivirus, behavioral monitoring, ransomware detection",
			Icon:             "💻",
			Status:           ModuleActive,
			ThreatLevel:      SeverityLow,
			LastScan:         now.Add(-15 * time.Minute),
			ProtectedDevices: 23,
			BlockedThreats:   612,
			Color:            "blue",
			Features:         []string{"Antivirus", "Behavioral monitoring", "Ransomware detection"},
		},
		{
			ID:               "email",
			Name:             "Email Security",
			Description:      "Spam filtering, phishing protection, malware scanning",
			Icon:             "📧",
			Status:           ModuleActive,
			ThreatLevel:      SeverityMedium,
			LastScan:         now.Add(-30 * time.Minute),
			ProtectedDevices: 23,
			BlockedThreats:   418,
			Color:            "green",
			Features:         []string{"Spam filtering", "Phishing protection", "Malware scanning"},
		},
		{
			ID:               "web",
			Name:             "Web Security",
			Description:      "DNS filtering, content filtering, safe browsing",
			Icon:             "🌐",
			Status:           ModuleWarning,
			ThreatLevel:      SeverityMedium,
			LastScan:         now.Add(-5 * time.Minute),
			ProtectedDevices: 23,
			BlockedThreats:   217,
			Color:            "purple",
			Features:         []string{"DNS filtering", "Content filtering", "Safe browsing"},
		},
		{
			ID:               "backup",
			Name:             "Backup & Recovery",
			Description:      "Automated backups, ransomware rollback, cloud storage",
			Icon:             "💾",
			Status:           ModuleActive,
			ThreatLevel:      SeverityLow,
			LastScan:         now.Add(-6 * time.Hour),
			ProtectedDevices: 23,
			BlockedThreats:   0,
			Color:            "orange",
			Features:         []string{"Automated backups", "Ransomware rollback", "Cloud storage"},
		},
	}

	return NewDataset(metrics, threats, alerts, modules)
}
