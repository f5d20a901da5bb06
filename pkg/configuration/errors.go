package configuration

import (
	"errors"
	"fmt"
)

var (
	// ErrUpdateInProgress is returned when an update could not complete
	// synchronously, or when another update of the same resource is still
	// in progress.
	ErrUpdateInProgress = errors.New("configuration update in progress")
	// ErrUpdateNotSupported is returned for structured-only updates of a
	// resource type that manages both structured and raw configuration.
	ErrUpdateNotSupported = errors.New("configuration update not supported for resource type")
	// ErrConfigurationNotSupported is returned for resource types without a
	// configuration format.
	ErrConfigurationNotSupported = errors.New("resource type does not support configuration")
	// ErrTranslationNotSupported is returned when translating the
	// configuration of a type that does not manage both structured and raw
	// configuration.
	ErrTranslationNotSupported = errors.New("configuration translation not supported for resource type")
	// ErrNullConfiguration is returned when a plugin loads no configuration.
	ErrNullConfiguration = errors.New("plugin returned a null configuration")
)

// UpdateError carries the failure message a plugin reported for an update.
type UpdateError struct {
	Message string
}

func (e *UpdateError) Error() string {
	if e.Message == "" {
		return "configuration update failed"
	}
	return "configuration update failed: " + e.Message
}

// ValidationError wraps a plugin's rejection of a configuration.
type ValidationError struct {
	// Path names the raw configuration that failed, empty for structured.
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid raw configuration %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid configuration: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
