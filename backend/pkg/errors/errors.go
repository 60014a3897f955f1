package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeResolve represents name resolution errors
	ErrorTypeResolve ErrorType = "resolve"
	// ErrorTypeSearch represents traversal errors
	ErrorTypeSearch ErrorType = "search"
	// ErrorTypeData represents dataset loading errors
	ErrorTypeData ErrorType = "data"
	// ErrorTypeGraph represents graph database errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeContext represents context cancellation/timeout errors
	ErrorTypeContext ErrorType = "context"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// ErrorKind reports the category, used by IsErrorType on embedding types.
func (e *BaseError) ErrorKind() ErrorType {
	return e.Type
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Resolve Errors

// ErrPersonNotFound is returned when a name or id matches no person
type ErrPersonNotFound struct {
	*BaseError
	Name string
}

func NewPersonNotFound(name string) *ErrPersonNotFound {
	return &ErrPersonNotFound{
		BaseError: NewBaseError(ErrorTypeResolve, fmt.Sprintf("person not found: %s", name), nil),
		Name:      name,
	}
}

// ErrAmbiguousName is returned when a name matches more than one person
type ErrAmbiguousName struct {
	*BaseError
	Name         string
	CandidateIDs []string
}

func NewAmbiguousName(name string, candidateIDs []string) *ErrAmbiguousName {
	return &ErrAmbiguousName{
		BaseError: NewBaseError(ErrorTypeResolve,
			fmt.Sprintf("name %q matches %d people: %s", name, len(candidateIDs), strings.Join(candidateIDs, ", ")), nil),
		Name:         name,
		CandidateIDs: candidateIDs,
	}
}

// Search Errors

// ErrEmptyFrontier is returned by a frontier when Remove is called with nothing pending.
// The engine checks Empty first, so seeing this outside of tests is a bug.
var ErrEmptyFrontier = NewBaseError(ErrorTypeSearch, "empty frontier", nil)

// ErrInvalidDiscipline is returned for an unknown traversal mode
type ErrInvalidDiscipline struct {
	*BaseError
	Value string
}

func NewInvalidDiscipline(value string) *ErrInvalidDiscipline {
	return &ErrInvalidDiscipline{
		BaseError: NewBaseError(ErrorTypeSearch,
			fmt.Sprintf("unknown algorithm type %q, use 'breadth' or 'depth'", value), nil),
		Value: value,
	}
}

// Data Errors

// ErrDataLoadFailed is returned when a dataset file cannot be read or parsed
type ErrDataLoadFailed struct {
	*BaseError
	Path string
}

func NewDataLoadFailed(path string, err error) *ErrDataLoadFailed {
	return &ErrDataLoadFailed{
		BaseError: NewBaseError(ErrorTypeData, fmt.Sprintf("failed to load %s", path), err),
		Path:      path,
	}
}

// Graph Errors

// ErrGraphConnectionFailed is returned when Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphQueryFailed is returned when a graph query fails
type ErrGraphQueryFailed struct {
	*BaseError
	Query string
}

func NewGraphQueryFailed(query string, err error) *ErrGraphQueryFailed {
	return &ErrGraphQueryFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("query failed: %s", query), err),
		Query:     query,
	}
}

// Context Errors

// ErrContextCancelled is returned when context is cancelled
type ErrContextCancelled struct {
	*BaseError
	Operation string
}

func NewContextCancelled(operation string, err error) *ErrContextCancelled {
	return &ErrContextCancelled{
		BaseError: NewBaseError(ErrorTypeContext, fmt.Sprintf("context cancelled: %s", operation), err),
		Operation: operation,
	}
}

// Config Errors

// ErrConfigValidationFailed is returned when configuration validation fails
type ErrConfigValidationFailed struct {
	*BaseError
	Field  string
	Reason string
}

func NewConfigValidationFailed(field, reason string) *ErrConfigValidationFailed {
	return &ErrConfigValidationFailed{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("config validation failed: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// Helper functions

// IsErrorType checks if an error, or anything it wraps, is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	if err == nil {
		return false
	}
	if kinded, ok := err.(interface{ ErrorKind() ErrorType }); ok && kinded.ErrorKind() == errType {
		return true
	}
	if wrapped, ok := err.(interface{ Unwrap() error }); ok {
		return IsErrorType(wrapped.Unwrap(), errType)
	}
	return false
}
