package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no search root holds the requested document.
	ErrNotFound = errors.New("config file not found")
	// ErrMissingKey is returned when a document lacks a required key.
	ErrMissingKey = errors.New("missing required key")
)

// ConfigError describes a document that could not be located, read or used.
type ConfigError struct {
	Kind     Kind
	Name     string
	Path     string
	Searched []string
	Err      error
}

func (e *ConfigError) Error() string {
	if errors.Is(e.Err, ErrNotFound) {
		return fmt.Sprintf("couldn't find config file '%s' in following locations: %s",
			e.Kind.filename(e.Name), strings.Join(e.Searched, ", "))
	}
	return fmt.Sprintf("invalid %s config %s: %v", e.Kind.singular(), e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
