package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hublink-io/hubspot-client/internal/http"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
)

// OwnersClient implements hubspot.OwnersClient.
type OwnersClient struct {
	httpClient *http.Client
	users      hubspot.UsersClient
}

// NewOwnersClient creates a new owners client. The users client backs the
// cross-reference step of Resolve.
func NewOwnersClient(httpClient *http.Client, users hubspot.UsersClient) *OwnersClient {
	return &OwnersClient{
		httpClient: httpClient,
		users:      users,
	}
}

// List implements hubspot.OwnersClient.List.
func (c *OwnersClient) List(ctx context.Context, params *hubspot.QueryParams) ([]hubspot.Owner, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	result, err := c.httpClient.GetPaged(ctx, "/crm/v3/owners", query)
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}

	if result.Paged() {
		owners, err := hubspot.DecodeRecords[hubspot.Owner](result)
		if err != nil {
			return nil, fmt.Errorf("parsing owner records: %w", err)
		}

		return owners, nil
	}

	var envelope hubspot.CollectionResponse[hubspot.Owner]
	if err := json.Unmarshal(result.Object, &envelope); err != nil {
		return nil, fmt.Errorf("parsing owners response: %w", err)
	}

	return envelope.Results, nil
}

// Get implements hubspot.OwnersClient.Get.
func (c *OwnersClient) Get(ctx context.Context, ownerID string) (*hubspot.Owner, error) {
	return c.get(ctx, ownerID, false)
}

func (c *OwnersClient) get(ctx context.Context, ownerID string, archived bool) (*hubspot.Owner, error) {
	if ownerID == "" {
		return nil, hubspot.ErrOwnerIDRequired
	}

	path := fmt.Sprintf("/crm/v3/owners/%s", ownerID)

	var query url.Values
	if archived {
		query = url.Values{"archived": []string{"true"}}
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting owner: %w", err)
	}

	var owner hubspot.Owner
	if err := json.Unmarshal(resp.Body, &owner); err != nil {
		return nil, fmt.Errorf("parsing owner response: %w", err)
	}

	return &owner, nil
}

// Resolve implements hubspot.OwnersClient.Resolve. A failed active lookup is
// treated as "owner is archived" and triggers exactly one fallback lookup
// with archived=true; a failure there propagates normally. The resolved
// owner is then cross-referenced against the account user list by internal
// user id; an owner without a matching user still resolves, with User nil.
func (c *OwnersClient) Resolve(ctx context.Context, ownerID string) (*hubspot.ResolvedOwner, error) {
	owner, err := c.get(ctx, ownerID, false)
	if err != nil {
		owner, err = c.get(ctx, ownerID, true)
		if err != nil {
			return nil, fmt.Errorf("resolving owner %s: %w", ownerID, err)
		}
	}

	resolved := &hubspot.ResolvedOwner{Owner: owner}

	users, err := c.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving owner %s: %w", ownerID, err)
	}

	userID := fmt.Sprintf("%d", owner.UserID)
	for i := range users {
		if users[i].ID == userID {
			resolved.User = &users[i]

			break
		}
	}

	return resolved, nil
}
