package media

import "errors"

var (
	// ErrNotFound means the record is absent, its kind does not match the
	// requested endpoint, or no fallback could satisfy the request.
	ErrNotFound = errors.New("media: not found")

	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)
