// Package apperrors provides module-scoped errors that carry their call site.
package apperrors

import "fmt"

// AppError -.
type AppError struct {
	Module        string
	Function      string
	Call          string
	OriginalError error
	friendlyMsg   string
}

// CreateAppError -.
func CreateAppError(module string) AppError {
	return AppError{Module: module}
}

func (e AppError) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("%s - %s - %s: %s", e.Module, e.Function, e.Call, e.OriginalError)
	}

	return e.Module
}

func (e AppError) Unwrap() error {
	return e.OriginalError
}

// Wrap records the function and call that produced err.
func (e AppError) Wrap(function, call string, err error) AppError {
	e.Function = function
	e.Call = call
	e.OriginalError = err

	return e
}

// WithMessage sets the message returned by FriendlyMessage.
func (e AppError) WithMessage(message string) AppError {
	e.friendlyMsg = message

	return e
}

// FriendlyMessage returns a message safe to show to users.
func (e AppError) FriendlyMessage() string {
	if e.friendlyMsg != "" {
		return e.friendlyMsg
	}

	return "an unexpected error occurred"
}
