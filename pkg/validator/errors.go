package validator

import "errors"

// ErrValidationFailed matches any non-empty Errors sink returned through Errors.Err,
// so callers can use errors.Is without knowing the concrete type.
var ErrValidationFailed = errors.New("validation failed")
