package security

import "errors"

var (
	// ErrUnknownAction is returned for actions outside the recognized set
	ErrUnknownAction = errors.New("unknown action")
	// ErrDatasetNotLoaded is returned when no dataset was injected
	ErrDatasetNotLoaded = errors.New("security dataset not loaded")
)
