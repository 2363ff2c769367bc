// Package errors provides custom error types for the devfest-tools system.
// These errors enable programmatic error checking and carry enough context
// to point the operator at the upstream data that needs fixing.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the devfest-tools system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// MissingFileError indicates a required snapshot file is absent.
// The Hint tells the operator which external step produces the file.
type MissingFileError struct {
	Path string
	Hint string
}

// Error implements the error interface
func (e *MissingFileError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("missing required file %s, please run: %s", e.Path, e.Hint)
	}
	return fmt.Sprintf("missing required file %s", e.Path)
}

// Is implements errors.Is support
func (e *MissingFileError) Is(target error) bool {
	return target == ErrNotFound
}

// FetchError indicates the HTTP download of the provider payload failed.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download failed for %s (status %d)", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("download failed for %s: %v", e.URL, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// LookupError indicates a session referenced a category id, speaker id or
// level name with no matching entry. These are intentionally fatal: they
// mean the provider data is corrupt and must be fixed at the source.
type LookupError struct {
	Kind string // "category", "level", "speaker", "session"
	Key  string
	In   string // where the lookup was attempted, e.g. a session title
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.In != "" {
		return fmt.Sprintf("no %s entry for %q (referenced by %q)", e.Kind, e.Key, e.In)
	}
	return fmt.Sprintf("no %s entry for %q", e.Kind, e.Key)
}

// Is implements errors.Is support
func (e *LookupError) Is(target error) bool {
	return target == ErrNotFound
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "copy"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
