package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hublink-io/hubspot-client/internal/http"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
)

// AssociationsClient implements hubspot.AssociationsClient.
type AssociationsClient struct {
	httpClient *http.Client
}

// NewAssociationsClient creates a new associations client.
func NewAssociationsClient(httpClient *http.Client) *AssociationsClient {
	return &AssociationsClient{httpClient: httpClient}
}

func associationsPath(from, to hubspot.ObjectType) string {
	return fmt.Sprintf("/crm/v3/associations/%s/%s", from, to)
}

func validatePair(from, to hubspot.ObjectType) error {
	if !hubspot.ValidObjectType(from) {
		return &hubspot.ValidationError{Field: "from", Message: fmt.Sprintf("unknown object type %q", from)}
	}

	if !hubspot.ValidObjectType(to) {
		return &hubspot.ValidationError{Field: "to", Message: fmt.Sprintf("unknown object type %q", to)}
	}

	return nil
}

// ListTypes implements hubspot.AssociationsClient.ListTypes.
func (c *AssociationsClient) ListTypes(ctx context.Context, from, to hubspot.ObjectType) ([]hubspot.AssociationType, error) {
	if err := validatePair(from, to); err != nil {
		return nil, err
	}

	path := associationsPath(from, to) + "/types"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing association types: %w", err)
	}

	var envelope hubspot.CollectionResponse[hubspot.AssociationType]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing association types response: %w", err)
	}

	return envelope.Results, nil
}

// BatchRead implements hubspot.AssociationsClient.BatchRead.
func (c *AssociationsClient) BatchRead(ctx context.Context, from, to hubspot.ObjectType, request *hubspot.AssociationBatchReadRequest) (*hubspot.AssociationBatchResponse, error) {
	if err := validatePair(from, to); err != nil {
		return nil, err
	}

	if request == nil || len(request.Inputs) == 0 {
		return nil, hubspot.ErrNoInputs
	}

	path := associationsPath(from, to) + "/batch/read"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("reading associations: %w", err)
	}

	var result hubspot.AssociationBatchResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing associations response: %w", err)
	}

	return &result, nil
}

// BatchCreate implements hubspot.AssociationsClient.BatchCreate. The batch
// body serializes as {inputs:[{from:{id}, to:{id}, type}]} once per call.
func (c *AssociationsClient) BatchCreate(ctx context.Context, from, to hubspot.ObjectType, request *hubspot.AssociationBatchRequest) (*hubspot.AssociationBatchResponse, error) {
	if err := validatePair(from, to); err != nil {
		return nil, err
	}

	if request == nil || len(request.Inputs) == 0 {
		return nil, hubspot.ErrNoInputs
	}

	path := associationsPath(from, to) + "/batch/create"

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating associations: %w", err)
	}

	var result hubspot.AssociationBatchResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing associations response: %w", err)
	}

	return &result, nil
}

// BatchArchive implements hubspot.AssociationsClient.BatchArchive.
func (c *AssociationsClient) BatchArchive(ctx context.Context, from, to hubspot.ObjectType, request *hubspot.AssociationBatchRequest) error {
	if err := validatePair(from, to); err != nil {
		return err
	}

	if request == nil || len(request.Inputs) == 0 {
		return hubspot.ErrNoInputs
	}

	path := associationsPath(from, to) + "/batch/archive"

	_, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return fmt.Errorf("archiving associations: %w", err)
	}

	return nil
}
