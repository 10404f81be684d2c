package dto

import "github.com/rf-toolkit/linkbudget/pkg/apperrors"

// NotValidError flags request payloads that failed binding or validation.
type NotValidError struct {
	Console apperrors.AppError
}

func (e NotValidError) Error() string {
	return e.Console.Error()
}

// Wrap -.
func (e NotValidError) Wrap(call, function string, err error) NotValidError {
	e.Console = e.Console.Wrap(call, function, err)

	return e
}
