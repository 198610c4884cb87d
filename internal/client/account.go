package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hublink-io/hubspot-client/internal/http"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
)

// AccountClient implements hubspot.AccountClient.
type AccountClient struct {
	httpClient *http.Client
}

// NewAccountClient creates a new account client.
func NewAccountClient(httpClient *http.Client) *AccountClient {
	return &AccountClient{httpClient: httpClient}
}

// GetDetails implements hubspot.AccountClient.GetDetails.
func (c *AccountClient) GetDetails(ctx context.Context) (*hubspot.AccountDetails, error) {
	resp, err := c.httpClient.Get(ctx, "/account-info/v3/details", nil)
	if err != nil {
		return nil, fmt.Errorf("getting account details: %w", err)
	}

	var details hubspot.AccountDetails
	if err := json.Unmarshal(resp.Body, &details); err != nil {
		return nil, fmt.Errorf("parsing account details response: %w", err)
	}

	return &details, nil
}
