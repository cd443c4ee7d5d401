package domain

import "errors"

// Sentinel errors for panel/catalog error classification. The API clients
// wrap these so callers can handle error categories uniformly without
// inspecting HTTP status codes.
//
//	return fmt.Errorf("fetch server: %w", domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the API throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict, such as a
	// taken subdomain or an operation on a server mid-installation.
	ErrConflict = errors.New("conflict")
)
