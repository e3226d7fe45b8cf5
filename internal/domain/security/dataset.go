package security

import (
	"errors"
	"fmt"
)

// Dataset is the fixed telemetry the responder serves. It is built once at
// startup and never changes; every accessor returns a copy so callers can not
// reach the backing arrays.
type Dataset struct {
	metrics Metrics
	threats []Threat
	alerts  []Alert
	modules []Module
}

// NewDataset builds a dataset from the given records, preserving their order.
func NewDataset(metrics Metrics, threats []Threat, alerts []Alert, modules []Module) *Dataset {
	return &Dataset{
		metrics: metrics,
		threats: append([]Threat{}, threats...),
		alerts:  append([]Alert{}, alerts...),
		modules: copyModules(modules),
	}
}

// Metrics returns the aggregate counters.
func (d *Dataset) Metrics() Metrics {
	return d.metrics
}

// Threats returns the first limit threats in their defined order.
// A limit below 1 returns all of them.
func (d *Dataset) Threats(limit int) []Threat {
	return append([]Threat{}, d.threats[:prefix(limit, len(d.threats))]...)
}

// Alerts returns the first limit alerts in their defined order.
// A limit below 1 returns all of them.
func (d *Dataset) Alerts(limit int) []Alert {
	return append([]Alert{}, d.alerts[:prefix(limit, len(d.alerts))]...)
}

// Modules returns every security module in catalog order.
func (d *Dataset) Modules() []Module {
	return copyModules(d.modules)
}

// Counts returns the size of each collection, keyed by collection name.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		"threats": len(d.threats),
		"alerts":  len(d.alerts),
		"modules": len(d.modules),
	}
}

// Validate checks the record invariants: score range, enum membership and
// id uniqueness within each collection.
func (d *Dataset) Validate() error {
	var errs []error

	m := d.metrics
	if m.ComplianceScore < 0 || m.ComplianceScore > 100 {
		errs = append(errs, fmt.Errorf("metrics: complianceScore %d out of range [0,100]", m.ComplianceScore))
	}
	if m.TotalThreatsBlocked < 0 {
		errs = append(errs, fmt.Errorf("metrics: totalThreatsBlocked %d is negative", m.TotalThreatsBlocked))
	}
	if !m.ThreatTrend.Valid() {
		errs = append(errs, fmt.Errorf("metrics: unknown threatTrend %q", m.ThreatTrend))
	}

	seen := make(map[string]bool, len(d.threats))
	for i, t := range d.threats {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("threats[%d]: missing id", i))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("threats[%d]: duplicate id %q", i, t.ID))
		}
		seen[t.ID] = true
		if !t.Type.Valid() {
			errs = append(errs, fmt.Errorf("threats[%d]: unknown type %q", i, t.Type))
		}
		if !t.Severity.Valid() {
			errs = append(errs, fmt.Errorf("threats[%d]: unknown severity %q", i, t.Severity))
		}
		if !t.Status.Valid() {
			errs = append(errs, fmt.Errorf("threats[%d]: unknown status %q", i, t.Status))
		}
	}

	seen = make(map[string]bool, len(d.alerts))
	for i, a := range d.alerts {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("alerts[%d]: missing id", i))
		} else if seen[a.ID] {
			errs = append(errs, fmt.Errorf("alerts[%d]: duplicate id %q", i, a.ID))
		}
		seen[a.ID] = true
		if !a.Severity.Valid() {
			errs = append(errs, fmt.Errorf("alerts[%d]: unknown severity %q", i, a.Severity))
		}
	}

	seen = make(map[string]bool, len(d.modules))
	for i, mod := range d.modules {
		if mod.ID == "" {
			errs = append(errs, fmt.Errorf("modules[%d]: missing id", i))
		} else if seen[mod.ID] {
			errs = append(errs, fmt.Errorf("modules[%d]: duplicate id %q", i, mod.ID))
		}
		seen[mod.ID] = true
		if !mod.Status.Valid() {
			errs = append(errs, fmt.Errorf("modules[%d]: unknown status %q", i, mod.Status))
		}
		if !mod.ThreatLevel.Valid() {
			errs = append(errs, fmt.Errorf("modules[%d]: unknown threatLevel %q", i, mod.ThreatLevel))
		}
	}

	return errors.Join(errs...)
}

func prefix(limit, n int) int {
	if limit < 1 || limit > n {
		return n
	}
	return limit
}

func copyModules(in []Module) []Module {
	out := make([]Module, len(in))
	for i, m := range in {
		m.Features = append([]string{}, m.Features...)
		out[i] = m
	}
	return out
}
