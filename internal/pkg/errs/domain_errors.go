package errs

import "errors"

// Cross-cutting sentinel errors shared by usecase layers
var (
	// Identity errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrSessionExpired  = errors.New("session expired")
	ErrForbidden       = errors.New("forbidden")

	// External collaborator errors (payment processor, identity provider)
	ErrUpstream = errors.New("upstream service failure")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
