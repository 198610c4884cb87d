// Package hsclient provides the main entry point for creating HubSpot API clients
package hsclient

import (
	"strings"

	"github.com/hublink-io/hubspot-client/internal/client"
	"github.com/hublink-io/hubspot-client/internal/constants"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
)

// New creates a new HubSpot API client from config. The base URL defaults to
// the public HubSpot host and is normalized (trailing slash trimmed, https
// assumed when no scheme is given).
func New(config *hubspot.Config) (hubspot.Client, error) {
	if config == nil {
		return nil, hubspot.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	return client.New(config)
}

// NewWithToken creates a new client for the public HubSpot API with a
// private app token.
func NewWithToken(token string) (hubspot.Client, error) {
	return New(&hubspot.Config{
		AccessToken: token,
	})
}

// NewWithEndpoint creates a new client with an explicit endpoint and token.
func NewWithEndpoint(endpoint, token string) (hubspot.Client, error) {
	return New(&hubspot.Config{
		BaseURL:     endpoint,
		AccessToken: token,
	})
}
