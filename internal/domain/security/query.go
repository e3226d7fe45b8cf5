package security

// View selects which slice of the dataset a query returns
type View string

// Views. ViewDefault is used for any unrecognized or missing selector.
const (
	ViewMetrics View = "metrics"
	ViewThreats View = "threats"
	ViewAlerts  View = "alerts"
	ViewAll     View = "all"
	ViewDefault View = "default"
)

// List limits
const (
	// DefaultListLimit applies to threats and alerts views without a limit
	DefaultListLimit = 10
	// DefaultViewLimit caps each list in the default view
	DefaultViewLimit = 5
)

// ParseView maps a type selector onto a view
func ParseView(s string) View {
	switch View(s) {
	case ViewMetrics, ViewThreats, ViewAlerts, ViewAll:
		return View(s)
	}
	return ViewDefault
}

// Query is a read request against the dataset
type Query struct {
	View  View
	Limit int
}

// Bundle is the combined metrics, threats and alerts body
type Bundle struct {
	Metrics Metrics  `json:"metrics"`
	Threats []Threat `json:"threats"`
	Alerts  []Alert  `json:"alerts"`
}

// QueryResult holds the records selected by a query
type QueryResult struct {
	View    View
	Metrics Metrics
	Threats []Threat
	Alerts  []Alert
}

// Body returns the value to serialize for the result's view: a single
// metrics record, a list, or a bundle.
func (r QueryResult) Body() interface{} {
	switch r.View {
	case ViewMetrics:
		return r.Metrics
	case ViewThreats:
		return nonNil(r.Threats)
	case ViewAlerts:
		return nonNil(r.Alerts)
	default:
		return Bundle{
			Metrics: r.Metrics,
			Threats: nonNil(r.Threats),
			Alerts:  nonNil(r.Alerts),
		}
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
