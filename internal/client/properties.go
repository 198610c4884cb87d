package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hublink-io/hubspot-client/internal/http"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
)

// PropertiesClient implements hubspot.PropertiesClient.
type PropertiesClient struct {
	httpClient *http.Client
}

// NewPropertiesClient creates a new properties client.
func NewPropertiesClient(httpClient *http.Client) *PropertiesClient {
	return &PropertiesClient{httpClient: httpClient}
}

func propertiesPath(objectType hubspot.ObjectType) string {
	return fmt.Sprintf("/crm/v3/properties/%s", objectType)
}

// List implements hubspot.PropertiesClient.List.
func (c *PropertiesClient) List(ctx context.Context, objectType hubspot.ObjectType) ([]hubspot.Property, error) {
	if !hubspot.ValidObjectType(objectType) {
		return nil, &hubspot.ValidationError{Field: "objectType", Message: fmt.Sprintf("unknown object type %q", objectType)}
	}

	resp, err := c.httpClient.Get(ctx, propertiesPath(objectType), nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s properties: %w", objectType, err)
	}

	var envelope hubspot.CollectionResponse[hubspot.Property]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing properties response: %w", err)
	}

	return envelope.Results, nil
}

// Get implements hubspot.PropertiesClient.Get.
func (c *PropertiesClient) Get(ctx context.Context, objectType hubspot.ObjectType, name string) (*hubspot.Property, error) {
	if name == "" {
		return nil, hubspot.ErrPropertyRequired
	}

	path := fmt.Sprintf("%s/%s", propertiesPath(objectType), name)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting property: %w", err)
	}

	var property hubspot.Property
	if err := json.Unmarshal(resp.Body, &property); err != nil {
		return nil, fmt.Errorf("parsing property response: %w", err)
	}

	return &property, nil
}

// Create implements hubspot.PropertiesClient.Create.
func (c *PropertiesClient) Create(ctx context.Context, objectType hubspot.ObjectType, request *hubspot.PropertyCreateRequest) (*hubspot.Property, error) {
	resp, err := c.httpClient.Post(ctx, propertiesPath(objectType), request)
	if err != nil {
		return nil, fmt.Errorf("creating property: %w", err)
	}

	var property hubspot.Property
	if err := json.Unmarshal(resp.Body, &property); err != nil {
		return nil, fmt.Errorf("parsing property response: %w", err)
	}

	return &property, nil
}

// Update implements hubspot.PropertiesClient.Update.
func (c *PropertiesClient) Update(ctx context.Context, objectType hubspot.ObjectType, name string, request *hubspot.PropertyCreateRequest) (*hubspot.Property, error) {
	if name == "" {
		return nil, hubspot.ErrPropertyRequired
	}

	path := fmt.Sprintf("%s/%s", propertiesPath(objectType), name)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating property: %w", err)
	}

	var property hubspot.Property
	if err := json.Unmarshal(resp.Body, &property); err != nil {
		return nil, fmt.Errorf("parsing property response: %w", err)
	}

	return &property, nil
}

// Delete implements hubspot.PropertiesClient.Delete.
func (c *PropertiesClient) Delete(ctx context.Context, objectType hubspot.ObjectType, name string) error {
	if name == "" {
		return hubspot.ErrPropertyRequired
	}

	path := fmt.Sprintf("%s/%s", propertiesPath(objectType), name)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting property: %w", err)
	}

	return nil
}
