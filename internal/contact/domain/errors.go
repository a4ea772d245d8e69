package domain

import "errors"

var (
	// ErrDelivery wraps notification sink failures.
	ErrDelivery = errors.New("delivery failed")
)

// Field names used in validation errors.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// ValidationError carries the human-readable reason for the first failed
// check. Field is empty when several fields are involved.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
