package models

import "fmt"

// ConfigurationError reports an invalid parameter: a non-positive period,
// an unknown pattern or signal name, or an inconsistent combination.
// It is fatal to the request and never retried.
type ConfigurationError struct {
	Param  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Param, e.Reason)
}

// InsufficientDataError reports that no meaningful output can be produced
// at all, e.g. an empty bar series. Warm-up gaps are not errors; they are
// represented as undefined values.
type InsufficientDataError struct {
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: have %d bars, need at least %d", e.Have, e.Need)
}
