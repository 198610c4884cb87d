package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/hublink-io/hubspot-client/internal/http"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
)

// ObjectsClient implements hubspot.ObjectsClient for one CRM object type.
// Deals, contacts, companies, notes, and tickets share the same endpoint
// shape under /crm/v3/objects/{type}.
type ObjectsClient struct {
	httpClient *http.Client
	objectType hubspot.ObjectType
}

// NewObjectsClient creates an objects client for the given type.
func NewObjectsClient(httpClient *http.Client, objectType hubspot.ObjectType) *ObjectsClient {
	return &ObjectsClient{
		httpClient: httpClient,
		objectType: objectType,
	}
}

func (c *ObjectsClient) basePath() string {
	return fmt.Sprintf("/crm/v3/objects/%s", c.objectType)
}

// Get implements hubspot.ObjectsClient.Get.
func (c *ObjectsClient) Get(ctx context.Context, id string, params *hubspot.QueryParams) (*hubspot.Object, error) {
	if id == "" {
		return nil, hubspot.ErrObjectIDRequired
	}

	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	path := fmt.Sprintf("%s/%s", c.basePath(), id)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.objectType, err)
	}

	var obj hubspot.Object
	if err := json.Unmarshal(resp.Body, &obj); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.objectType, err)
	}

	return &obj, nil
}

// List implements hubspot.ObjectsClient.List. It returns a single page; the
// paging cursor for the next page, when present, is in the envelope.
func (c *ObjectsClient) List(ctx context.Context, params *hubspot.QueryParams) (*hubspot.ObjectList, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, c.basePath(), query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.objectType, err)
	}

	var list hubspot.ObjectList
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", c.objectType, err)
	}

	return &list, nil
}

// ListAll implements hubspot.ObjectsClient.ListAll. The executor follows the
// paging.next.link chain to exhaustion; order across pages is arrival order.
func (c *ObjectsClient) ListAll(ctx context.Context, params *hubspot.QueryParams) ([]hubspot.Object, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	result, err := c.httpClient.GetPaged(ctx, c.basePath(), query)
	if err != nil {
		return nil, fmt.Errorf("listing all %s: %w", c.objectType, err)
	}

	if result.Paged() {
		objects, err := hubspot.DecodeRecords[hubspot.Object](result)
		if err != nil {
			return nil, fmt.Errorf("parsing %s records: %w", c.objectType, err)
		}

		return objects, nil
	}

	// Single page: the raw envelope came back whole.
	var list hubspot.ObjectList
	if err := json.Unmarshal(result.Object, &list); err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", c.objectType, err)
	}

	return list.Results, nil
}

// Create implements hubspot.ObjectsClient.Create.
func (c *ObjectsClient) Create(ctx context.Context, request *hubspot.ObjectCreateRequest) (*hubspot.Object, error) {
	resp, err := c.httpClient.Post(ctx, c.basePath(), request)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.objectType, err)
	}

	var obj hubspot.Object
	if err := json.Unmarshal(resp.Body, &obj); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.objectType, err)
	}

	return &obj, nil
}

// Update implements hubspot.ObjectsClient.Update.
func (c *ObjectsClient) Update(ctx context.Context, id string, request *hubspot.ObjectUpdateRequest) (*hubspot.Object, error) {
	if id == "" {
		return nil, hubspot.ErrObjectIDRequired
	}

	path := fmt.Sprintf("%s/%s", c.basePath(), id)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.objectType, err)
	}

	var obj hubspot.Object
	if err := json.Unmarshal(resp.Body, &obj); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.objectType, err)
	}

	return &obj, nil
}

// Delete implements hubspot.ObjectsClient.Delete. HubSpot archives rather
// than destroys; the record stays reachable with archived=true.
func (c *ObjectsClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return hubspot.ErrObjectIDRequired
	}

	path := fmt.Sprintf("%s/%s", c.basePath(), id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.objectType, err)
	}

	return nil
}

// BatchRead implements hubspot.ObjectsClient.BatchRead.
func (c *ObjectsClient) BatchRead(ctx context.Context, request *hubspot.BatchReadRequest) ([]hubspot.Object, error) {
	if request == nil || len(request.Inputs) == 0 {
		return nil, hubspot.ErrNoInputs
	}

	path := c.basePath() + "/batch/read"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("batch reading %s: %w", c.objectType, err)
	}

	var envelope hubspot.CollectionResponse[hubspot.Object]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing %s batch response: %w", c.objectType, err)
	}

	return envelope.Results, nil
}
