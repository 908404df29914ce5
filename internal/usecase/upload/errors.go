package upload

import "errors"

var (
	// ErrNotOwned means the target key lives outside the caller's tenant
	// namespace. The prefix check is the only tenant isolation boundary.
	ErrNotOwned = errors.New("upload: file not owned by tenant")

	ErrNotFound = errors.New("upload: file not found")
)

// ValidationError rejects an upload before any I/O happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "upload: " + e.Reason
}

// IsValidationError reports whether err is a pre-I/O rejection.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
