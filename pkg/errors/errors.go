// Package errors provides typed errors for dircache
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a configuration error
	ErrConfig ErrorType = iota
	// ErrValidation indicates an input validation error (bad key or path list)
	ErrValidation
	// ErrSync indicates a mirror/subprocess execution error
	ErrSync
	// ErrListing indicates a cache root listing error
	ErrListing
)

// CacheError is the base error type for all dircache errors
type CacheError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error returns the error message
func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", errorTypeString(e.Type), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", errorTypeString(e.Type), e.Message)
}

// Unwrap returns the underlying cause
func (e *CacheError) Unwrap() error {
	return e.Cause
}

// New creates a new CacheError
func New(errType ErrorType, message string, cause error) *CacheError {
	return &CacheError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var cacheErr *CacheError
	if err == nil {
		return false
	}
	if errors.As(err, &cacheErr) {
		return cacheErr.Type == errType
	}
	return false
}

// IsValidation reports whether err is a validation error. Validation errors
// are always recoverable: the caller fixes the input and retries.
func IsValidation(err error) bool {
	return IsType(err, ErrValidation)
}

func errorTypeString(et ErrorType) string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrValidation:
		return "VALIDATION"
	case ErrSync:
		return "SYNC"
	case ErrListing:
		return "LISTING"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *CacheError {
	return New(ErrConfig, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *CacheError {
	return New(ErrValidation, message, cause)
}

// SyncError creates a mirror/subprocess error
func SyncError(message string, cause error) *CacheError {
	return New(ErrSync, message, cause)
}

// ListingError creates a cache root listing error
func ListingError(message string, cause error) *CacheError {
	return New(ErrListing, message, cause)
}
