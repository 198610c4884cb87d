package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hublink-io/hubspot-client/internal/http"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
)

// PipelinesClient implements hubspot.PipelinesClient.
type PipelinesClient struct {
	httpClient *http.Client
}

// NewPipelinesClient creates a new pipelines client.
func NewPipelinesClient(httpClient *http.Client) *PipelinesClient {
	return &PipelinesClient{httpClient: httpClient}
}

func pipelinesPath(objectType hubspot.ObjectType) string {
	return fmt.Sprintf("/crm/v3/pipelines/%s", objectType)
}

// List implements hubspot.PipelinesClient.List.
func (c *PipelinesClient) List(ctx context.Context, objectType hubspot.ObjectType) ([]hubspot.Pipeline, error) {
	if !hubspot.ValidObjectType(objectType) {
		return nil, &hubspot.ValidationError{Field: "objectType", Message: fmt.Sprintf("unknown object type %q", objectType)}
	}

	resp, err := c.httpClient.Get(ctx, pipelinesPath(objectType), nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s pipelines: %w", objectType, err)
	}

	var envelope hubspot.CollectionResponse[hubspot.Pipeline]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing pipelines response: %w", err)
	}

	return envelope.Results, nil
}

// Get implements hubspot.PipelinesClient.Get.
func (c *PipelinesClient) Get(ctx context.Context, objectType hubspot.ObjectType, pipelineID string) (*hubspot.Pipeline, error) {
	if pipelineID == "" {
		return nil, hubspot.ErrPipelineIDRequired
	}

	path := fmt.Sprintf("%s/%s", pipelinesPath(objectType), pipelineID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting pipeline: %w", err)
	}

	var pipeline hubspot.Pipeline
	if err := json.Unmarshal(resp.Body, &pipeline); err != nil {
		return nil, fmt.Errorf("parsing pipeline response: %w", err)
	}

	return &pipeline, nil
}

// Create implements hubspot.PipelinesClient.Create.
func (c *PipelinesClient) Create(ctx context.Context, objectType hubspot.ObjectType, request *hubspot.PipelineCreateRequest) (*hubspot.Pipeline, error) {
	resp, err := c.httpClient.Post(ctx, pipelinesPath(objectType), request)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline: %w", err)
	}

	var pipeline hubspot.Pipeline
	if err := json.Unmarshal(resp.Body, &pipeline); err != nil {
		return nil, fmt.Errorf("parsing pipeline response: %w", err)
	}

	return &pipeline, nil
}

// Update implements hubspot.PipelinesClient.Update.
func (c *PipelinesClient) Update(ctx context.Context, objectType hubspot.ObjectType, pipelineID string, request *hubspot.PipelineCreateRequest) (*hubspot.Pipeline, error) {
	if pipelineID == "" {
		return nil, hubspot.ErrPipelineIDRequired
	}

	path := fmt.Sprintf("%s/%s", pipelinesPath(objectType), pipelineID)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating pipeline: %w", err)
	}

	var pipeline hubspot.Pipeline
	if err := json.Unmarshal(resp.Body, &pipeline); err != nil {
		return nil, fmt.Errorf("parsing pipeline response: %w", err)
	}

	return &pipeline, nil
}

// Delete implements hubspot.PipelinesClient.Delete.
func (c *PipelinesClient) Delete(ctx context.Context, objectType hubspot.ObjectType, pipelineID string) error {
	if pipelineID == "" {
		return hubspot.ErrPipelineIDRequired
	}

	path := fmt.Sprintf("%s/%s", pipelinesPath(objectType), pipelineID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting pipeline: %w", err)
	}

	return nil
}

// ListStages implements hubspot.PipelinesClient.ListStages.
func (c *PipelinesClient) ListStages(ctx context.Context, objectType hubspot.ObjectType, pipelineID string) ([]hubspot.PipelineStage, error) {
	if pipelineID == "" {
		return nil, hubspot.ErrPipelineIDRequired
	}

	path := fmt.Sprintf("%s/%s/stages", pipelinesPath(objectType), pipelineID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing pipeline stages: %w", err)
	}

	var envelope hubspot.CollectionResponse[hubspot.PipelineStage]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing stages response: %w", err)
	}

	return envelope.Results, nil
}
