package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory decides how the CLI reports a failure and which exit code it uses.
type ErrorCategory string

const (
	// Problems the user fixes by editing input: doctasks.yaml, flags, environment.
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryAuth       ErrorCategory = "auth"

	// Failures of the programs and repositories doctasks drives.
	CategoryTool ErrorCategory = "tool"
	CategoryGit  ErrorCategory = "git"
)

// ErrorSeverity is fatal for problems no rerun fixes without user action.
type ErrorSeverity string

const (
	SeverityFatal ErrorSeverity = "fatal"
	SeverityError ErrorSeverity = "error"
)

// ErrorContext carries structured fields that are logged with the error.
type ErrorContext map[string]any

// ClassifiedError is a categorized failure with optional cause and context.
type ClassifiedError struct {
	category ErrorCategory
	severity ErrorSeverity
	message  string
	cause    error
	context  ErrorContext
}

func (e *ClassifiedError) Error() string {
	head := fmt.Sprintf("[%s:%s] %s", e.category, e.severity, e.message)
	if e.cause == nil {
		return head
	}
	return head + ": " + e.cause.Error()
}

func (e *ClassifiedError) Unwrap() error { return e.cause }

func (e *ClassifiedError) Category() ErrorCategory { return e.category }
func (e *ClassifiedError) Severity() ErrorSeverity { return e.severity }
func (e *ClassifiedError) Message() string         { return e.message }
func (e *ClassifiedError) Cause() error            { return e.cause }
func (e *ClassifiedError) Context() ErrorContext   { return e.context }

// AsClassified returns the first ClassifiedError in err's chain.
func AsClassified(err error) (*ClassifiedError, bool) {
	var classified *ClassifiedError
	if stderrors.As(err, &classified) {
		return classified, true
	}
	return nil, false
}

// HasCategory reports whether err's chain carries a ClassifiedError of category.
func HasCategory(err error, category ErrorCategory) bool {
	classified, ok := AsClassified(err)
	return ok && classified.category == category
}
