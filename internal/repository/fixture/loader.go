// Package fixture loads telemetry datasets from YAML files so deployments
// and tests can substitute the built-in seed data.
package fixture

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/afrihackbox/mssp/internal/domain/security"
	"gopkg.in/yaml.v3"
)

// moment is either an absolute timestamp or an age relative to load time.
type moment struct {
	At  *time.Time `yaml:"at,omitempty"`
	Age string     `yaml:"age,omitempty"`
}

type metricsRecord struct {
	TotalThreatsBlocked int                  `yaml:"totalThreatsBlocked"`
	ActiveProtections   int                  `yaml:"activeProtections"`
	DevicesProtected    int                  `yaml:"devicesProtected"`
	LastScanTime        moment               `yaml:"lastScanTime"`
	ThreatTrend         security.ThreatTrend `yaml:"threatTrend"`
	ComplianceScore     int                  `yaml:"complianceScore"`
}

type threatRecord struct {
	ID          string                `yaml:"id"`
	Type        security.ThreatType   `yaml:"type"`
	Severity    security.Severity     `yaml:"severity"`
	Source      string                `yaml:"source"`
	Target      string                `yaml:"target"`
	Timestamp   moment                `yaml:"timestamp"`
	Status      security.ThreatStatus `yaml:"status"`
	Description string                `yaml:"description"`
}

type alertRecord struct {
	ID             string                 `yaml:"id"`
	Title          string                 `yaml:"title"`
	Message        string                 `yaml:"message"`
	Severity       security.AlertSeverity `yaml:"severity"`
	Timestamp      moment                 `yaml:"timestamp"`
	Module         string                 `yaml:"module"`
	ActionRequired bool                   `yaml:"actionRequired"`
	Resolved       bool                   `yaml:"resolved"`
}

type moduleRecord struct {
	ID               string                `yaml:"id"`
	Name             string                `yaml:"name"`
	Description      string                `yaml:"description"`
	Icon             string                `yaml:"icon"`
	Status           security.ModuleStatus `yaml:"status"`
	ThreatLevel      security.Severity     `yaml:"threatLevel"`
	LastScan         moment                `yaml:"lastScan"`
	ProtectedDevices int                   `yaml:"protectedDevices"`
	BlockedThreats   int                   `yaml:"blockedThreats"`
	Color            string                `yaml:"color"`
	Features         []string              `yaml:"features"`
}

type document struct {
	Metrics metricsRecord  `yaml:"metrics"`
	Threats []threatRecord `yaml:"threats"`
	Alerts  []alertRecord  `yaml:"alerts"`
	Modules []moduleRecord `yaml:"modules"`
}

// LoadFile reads a dataset fixture from path
func LoadFile(path string, now time.Time) (*security.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	d, err := Load(bytes.NewReader(data), now)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return d, nil
}

// Load decodes a dataset fixture. Relative ages are resolved against now.
// Unknown keys and invariant violations are errors.
func Load(r io.Reader, now time.Time) (*security.Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	dataset, err := doc.build(now.UTC())
	if err != nil {
		return nil, err
	}
	if err := dataset.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return dataset, nil
}

func (doc document) build(now time.Time) (*security.Dataset, error) {
	lastScan, err := doc.Metrics.LastScanTime.resolve(now)
	if err != nil {
		return nil, fmt.Errorf("metrics.lastScanTime: %w", err)
	}
	metrics := security.Metrics{
		TotalThreatsBlocked: doc.Metrics.TotalThreatsBlocked,
		ActiveProtections:   doc.Metrics.ActiveProtections,
		DevicesProtected:    doc.Metrics.DevicesProtected,
		LastScanTime:        lastScan,
		ThreatTrend:         doc.Metrics.ThreatTrend,
		ComplianceScore:     doc.Metrics.ComplianceScore,
	}

	threats := make([]security.Threat, 0, len(doc.Threats))
	for i, t := range doc.Threats {
		ts, err := t.Timestamp.resolve(now)
		if err != nil {
			return nil, fmt.Errorf("threats[%d].timestamp: %w", i, err)
		}
		threats = append(threats, security.Threat{
			ID:          t.ID,
			Type:        t.Type,
			Severity:    t.Severity,
			Source:      t.Source,
			Target:      t.Target,
			Timestamp:   ts,
			Status:      t.Status,
			Description: t.Description,
		})
	}

	alerts := make([]security.Alert, 0, len(doc.Alerts))
	for i, a := range doc.Alerts {
		ts, err := a.Timestamp.resolve(now)
		if err != nil {
			return nil, fmt.Errorf("alerts[%d].timestamp: %w", i, err)
		}
		alerts = append(alerts, security.Alert{
			ID:             a.ID,
			Title:          a.Title,
			Message:        a.Message,
			Severity:       a.Severity,
			Timestamp:      ts,
			Module:         a.Module,
			ActionRequired: a.ActionRequired,
			Resolved:       a.Resolved,
		})
	}

	modules := make([]security.Module, 0, len(doc.Modules))
	for i, m := range doc.Modules {
		ts, err := m.LastScan.resolve(now)
		if err != nil {
			return nil, fmt.Errorf("modules[%d].lastScan: %w", i, err)
		}
		features := m.Features
		if features == nil {
			features = []string{}
		}
		modules = append(modules, security.Module{
			ID:               m.ID,
			Name:             m.Name,
			Description:      m.Description,
			Icon:             m.Icon,
			Status:           m.Status,
			ThreatLevel:      m.ThreatLevel,
			LastScan:         ts,
			ProtectedDevices: m.ProtectedDevices,
			BlockedThreats:   m.BlockedThreats,
			Color:            m.Color,
			Features:         features,
		})
	}

	return security.NewDataset(metrics, threats, alerts, modules), nil
}

func (m moment) resolve(now time.Time) (time.Time, error) {
	switch {
	case m.At != nil && m.Age != "":
		return time.Time{}, fmt.Errorf("set either at or age, not both")
	case m.At != nil:
		return m.At.UTC(), nil
	case m.Age != "":
		age, err := time.ParseDuration(m.Age)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid age %q: %w", m.Age, err)
		}
		if age < 0 {
			return time.Time{}, fmt.Errorf("age %q is negative", m.Age)
		}
		return now.Add(-age), nil
	default:
		return now, nil
	}
}
