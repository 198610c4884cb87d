package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hublink-io/hubspot-client/internal/http"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
)

// UsersClient implements hubspot.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// List implements hubspot.UsersClient.List, following pagination to return
// every account user.
func (c *UsersClient) List(ctx context.Context) ([]hubspot.User, error) {
	result, err := c.httpClient.GetPaged(ctx, "/settings/v3/users", nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	if result.Paged() {
		users, err := hubspot.DecodeRecords[hubspot.User](result)
		if err != nil {
			return nil, fmt.Errorf("parsing user records: %w", err)
		}

		return users, nil
	}

	var envelope hubspot.CollectionResponse[hubspot.User]
	if err := json.Unmarshal(result.Object, &envelope); err != nil {
		return nil, fmt.Errorf("parsing users response: %w", err)
	}

	return envelope.Results, nil
}
