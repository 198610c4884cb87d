package hubspot

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the error body HubSpot returns on non-2xx responses.
type APIError struct {
	Status        string `json:"status"                  yaml:"status"`
	Message       string `json:"message"                 yaml:"message"`
	CorrelationID string `json:"correlationId,omitempty" yaml:"correlationId,omitempty"`
	Category      string `json:"category,omitempty"      yaml:"category,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("%s: %s", e.Category, e.Message)
	}

	return e.Message
}

// RequestError represents a failed API request. It carries enough context
// (endpoint + method + status) to reproduce the call manually.
type RequestError struct {
	Endpoint   string
	Method     string
	StatusCode int
	APIErr     *APIError
	Body       []byte
	// Err holds the transport-level cause when the request never produced a
	// status code (connection failure, timeout).
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Method, e.Endpoint, e.Err)
	}

	if e.APIErr != nil && e.APIErr.Message != "" {
		return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.APIErr.Error())
	}

	return fmt.Sprintf("%s %s failed with status %d", e.Method, e.Endpoint, e.StatusCode)
}

// Unwrap exposes the transport-level cause, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// ValidationError reports a malformed argument rejected before dispatch.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Static errors that can be wrapped with context.
var (
	ErrNotAuthenticated   = errors.New("not authenticated: no access token configured")
	ErrConfigRequired     = errors.New("config is required")
	ErrQueryRequired      = errors.New("search query is required")
	ErrOwnerIDRequired    = errors.New("owner id is required")
	ErrObjectIDRequired   = errors.New("object id is required")
	ErrPipelineIDRequired = errors.New("pipeline id is required")
	ErrPropertyRequired   = errors.New("property name is required")
	ErrNoInputs           = errors.New("at least one input is required")
)

// IsNotFound checks whether the error is a 404 from the API.
func IsNotFound(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks whether the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsRateLimited checks whether the error is a 429 from the API.
func IsRateLimited(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// ParseAPIError parses a HubSpot error body. A nil result with nil error
// means the body was not a recognizable error payload.
func ParseAPIError(data []byte) (*APIError, error) {
	var apiErr APIError

	err := json.Unmarshal(data, &apiErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error body: %w", err)
	}

	return &apiErr, nil
}
