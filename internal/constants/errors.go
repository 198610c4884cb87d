package constants

import "errors"

// Configuration errors.
var (
	ErrNoTokenConfigured = errors.New("no access token configured, run 'hscrm connect' first")
	ErrTokenRequired     = errors.New("access token is required")
)

// Validation errors.
var (
	ErrInvalidObjectType = errors.New("invalid object type")
	ErrInvalidOutput     = errors.New("invalid output format (expected table, json, or yaml)")
	ErrInvalidProperties = errors.New("properties must be key=value pairs")
)
