// Package errors provides classified error primitives for doctasks.
//
// Every failure surfaced by a task carries a category that the CLI adapter
// maps to an exit code and a presentation:
//   - ErrorCategory: config, validation, auth, tool or git
//   - ClassifiedError: category, severity, message, cause and context fields
//   - ErrorBuilder: fluent construction, with one constructor per category
//
// Example usage:
//
//	err := errors.AuthError("cannot deploy docs without a $GITHUB_TOKEN environment variable").
//		WithContext("variable", "GITHUB_TOKEN").
//		Build()
package errors
