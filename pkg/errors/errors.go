// Package errors provides custom error types for the cds-beard system.
// These errors enable programmatic error checking and better context when
// a matching run fails because of malformed input or a solver breakdown.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's tree matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As

// Common sentinel errors for the cds-beard system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrSolverFailure indicates the assignment solver could not certify
	// an optimal solution for a subproblem
	ErrSolverFailure = errors.New("solver failure")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")
)

// ClusterValueError reports a cluster whose value is not a collection of
// item identifiers (e.g. a scalar). It signals malformed upstream data and
// is never recovered internally.
type ClusterValueError struct {
	Key   any
	Value any
}

// Error implements the error interface
func (e *ClusterValueError) Error() string {
	return fmt.Sprintf("cluster %v: value of type %T is not a collection of items", e.Key, e.Value)
}

// Is implements errors.Is support
func (e *ClusterValueError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewClusterValueError creates a new ClusterValueError
func NewClusterValueError(key, value any) *ClusterValueError {
	return &ClusterValueError{Key: key, Value: value}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// SolverError represents a failure of the linear assignment solver on one
// subproblem. The partial result of the subproblem is discarded; a solver
// failure is fatal for the whole matching run.
type SolverError struct {
	BeforeClusters int
	AfterClusters  int
	Err            error
}

// Error implements the error interface
func (e *SolverError) Error() string {
	return fmt.Sprintf("assignment solver failed on subproblem (%d before, %d after clusters): %v",
		e.BeforeClusters, e.AfterClusters, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SolverError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SolverError) Is(target error) bool {
	return target == ErrSolverFailure
}

// NewSolverError creates a new SolverError
func NewSolverError(beforeClusters, afterClusters int, err error) *SolverError {
	return &SolverError{
		BeforeClusters: beforeClusters,
		AfterClusters:  afterClusters,
		Err:            err,
	}
}

// ParseError represents a failure to decode a partition document
type ParseError struct {
	Path   string
	Format string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s partition document %s: %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to parse %s partition document: %v", e.Format, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
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

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// WrapIO wraps a file system error with operation context
func WrapIO(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", op, path, err)
}

// Helper functions for error checking

// IsValidationError checks if an error indicates invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSolverFailure checks if an error is a solver failure
func IsSolverFailure(err error) bool {
	return errors.Is(err, ErrSolverFailure)
}
