package httperr

import "errors"

// Business error codes shared across the clinical core. Handlers map
// these to HTTP statuses; use cases never touch gin directly.
const (
	CodeValidation            = "validation_error"
	CodeNotFound              = "not_found"
	CodeConflict              = "conflict"
	CodeAllocationUnavailable = "allocation_unavailable"
	CodeArchivalFailure       = "archival_failure"
	CodeStorageFailure        = "storage_failure"
	CodeUnauthenticated       = "unauthenticated"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" when the
// error is not one.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
