package gauge

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("invalid gauge configuration")
	ErrGeometry      = errors.New("invalid gauge geometry")
)

// ConfigError describes the offending configuration field.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gauge config %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("gauge config %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match both ErrConfiguration and the cause.
func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConfiguration, e.Err}
	}
	return []error{ErrConfiguration}
}
