package security

import "fmt"

// ActionName identifies an action accepted by the responder
type ActionName string

// Recognized actions
const (
	ActionScan         ActionName = "scan"
	ActionQuarantine   ActionName = "quarantine"
	ActionResolveAlert ActionName = "resolve_alert"
)

// Valid reports whether n is a recognized action
func (n ActionName) Valid() bool {
	switch n {
	case ActionScan, ActionQuarantine, ActionResolveAlert:
		return true
	}
	return false
}

// Action is one of ScanAction, QuarantineAction or ResolveAlertAction.
type Action interface {
	Name() ActionName
	isAction()
}

// ScanAction requests a security scan
type ScanAction struct{}

// QuarantineAction requests that a threat be quarantined
type QuarantineAction struct {
	ThreatID string
}

// ResolveAlertAction requests that an alert be marked resolved
type ResolveAlertAction struct {
	AlertID string
}

func (ScanAction) Name() ActionName         { return ActionScan }
func (QuarantineAction) Name() ActionName   { return ActionQuarantine }
func (ResolveAlertAction) Name() ActionName { return ActionResolveAlert }

func (ScanAction) isAction()         {}
func (QuarantineAction) isAction()   {}
func (ResolveAlertAction) isAction() {}

// ActionResult acknowledges an accepted action. Nothing is executed.
type ActionResult struct {
	Action  ActionName
	Message string
	ScanID  string
}

// ScanIDPrefix prefixes every scan correlation id
const ScanIDPrefix = "scan_"

// Acknowledge builds the acknowledgment for a. scanID is only used for scans.
func Acknowledge(a Action, scanID string) (ActionResult, error) {
	switch act := a.(type) {
	case ScanAction:
		return ActionResult{
			Action:  ActionScan,
			Message: "Security scan initiated",
			ScanID:  ScanIDPrefix + scanID,
		}, nil
	case QuarantineAction:
		return ActionResult{
			Action:  ActionQuarantine,
			Message: fmt.Sprintf("Threat %s quarantined successfully", act.ThreatID),
		}, nil
	case ResolveAlertAction:
		return ActionResult{
			Action:  ActionResolveAlert,
			Message: fmt.Sprintf("Alert %s resolved successfully", act.AlertID),
		}, nil
	default:
		return ActionResult{}, ErrUnknownAction
	}
}

