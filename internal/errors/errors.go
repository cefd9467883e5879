// Package errors provides a lightweight structured error type (SitemapError)
// for category-based classification of generation failures.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a generation error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Route manifest handling errors
	CategoryManifest   ErrorCategory = "manifest"
	CategoryExtraction ErrorCategory = "extraction"

	// Output and callback errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryCallback   ErrorCategory = "callback"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// SitemapError is a structured error with category, severity, and context.
// Every error in this system is non-fatal to the host build; severity here
// describes impact on the current generation run, not on the host process.
type SitemapError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for SitemapError
type ContextFields map[string]any

// Error implements the error interface
func (e *SitemapError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *SitemapError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *SitemapError) WithContext(key string, value any) *SitemapError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new SitemapError
func New(category ErrorCategory, severity ErrorSeverity, message string) *SitemapError {
	return &SitemapError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new SitemapError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *SitemapError {
	return &SitemapError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory reports whether err (or any error it wraps) is a
// SitemapError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var se *SitemapError
	if stderrors.As(err, &se) {
		return se.Category == category
	}
	return false
}
