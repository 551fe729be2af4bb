package errs

import "errors"

// Sentinel errors shared by the usecase layers
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Upstream errors
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamRejected    = errors.New("upstream rejected request")
)
