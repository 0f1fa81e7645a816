package errs

import (
	"errors"
)

// Error kinds returned by the services. Handlers map them to HTTP codes
// with errors.Is; callers wrap them with entity and state context.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrState              = errors.New("state not allowed")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
