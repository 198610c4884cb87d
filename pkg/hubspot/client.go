package hubspot

import (
	"context"
	"time"
)

// ObjectsClient provides CRUD over one CRM object type.
type ObjectsClient interface {
	Get(ctx context.Context, id string, params *QueryParams) (*Object, error)
	List(ctx context.Context, params *QueryParams) (*ObjectList, error)
	ListAll(ctx context.Context, params *QueryParams) ([]Object, error)
	Create(ctx context.Context, request *ObjectCreateRequest) (*Object, error)
	Update(ctx context.Context, id string, request *ObjectUpdateRequest) (*Object, error)
	Delete(ctx context.Context, id string) error
	BatchRead(ctx context.Context, request *BatchReadRequest) ([]Object, error)
}

// SearchClient drives the CRM search endpoints.
type SearchClient interface {
	Search(ctx context.Context, objectType ObjectType, request *SearchRequest) (*SearchResult, error)
	SearchAll(ctx context.Context, objectType ObjectType, request *SearchRequest) ([]Object, error)
}

// PipelinesClient manages pipelines for one CRM object type.
type PipelinesClient interface {
	List(ctx context.Context, objectType ObjectType) ([]Pipeline, error)
	Get(ctx context.Context, objectType ObjectType, pipelineID string) (*Pipeline, error)
	Create(ctx context.Context, objectType ObjectType, request *PipelineCreateRequest) (*Pipeline, error)
	Update(ctx context.Context, objectType ObjectType, pipelineID string, request *PipelineCreateRequest) (*Pipeline, error)
	Delete(ctx context.Context, objectType ObjectType, pipelineID string) error
	ListStages(ctx context.Context, objectType ObjectType, pipelineID string) ([]PipelineStage, error)
}

// PropertiesClient manages property definitions.
type PropertiesClient interface {
	List(ctx context.Context, objectType ObjectType) ([]Property, error)
	Get(ctx context.Context, objectType ObjectType, name string) (*Property, error)
	Create(ctx context.Context, objectType ObjectType, request *PropertyCreateRequest) (*Property, error)
	Update(ctx context.Context, objectType ObjectType, name string, request *PropertyCreateRequest) (*Property, error)
	Delete(ctx context.Context, objectType ObjectType, name string) error
}

// OwnersClient reads owners and resolves them against account users.
type OwnersClient interface {
	List(ctx context.Context, params *QueryParams) ([]Owner, error)
	Get(ctx context.Context, ownerID string) (*Owner, error)
	// Resolve fetches an owner, falling back to an archived-owner lookup if
	// the active lookup fails, then cross-references the account user list
	// by internal user id.
	Resolve(ctx context.Context, ownerID string) (*ResolvedOwner, error)
}

// UsersClient reads the account user list.
type UsersClient interface {
	List(ctx context.Context) ([]User, error)
}

// AssociationsClient manages directed labeled edges between CRM objects.
type AssociationsClient interface {
	ListTypes(ctx context.Context, from, to ObjectType) ([]AssociationType, error)
	BatchRead(ctx context.Context, from, to ObjectType, request *AssociationBatchReadRequest) (*AssociationBatchResponse, error)
	BatchCreate(ctx context.Context, from, to ObjectType, request *AssociationBatchRequest) (*AssociationBatchResponse, error)
	BatchArchive(ctx context.Context, from, to ObjectType, request *AssociationBatchRequest) error
}

// AccountClient exposes account-level endpoints.
type AccountClient interface {
	// GetDetails fetches account details; used as the connectivity check
	// when establishing a session.
	GetDetails(ctx context.Context) (*AccountDetails, error)
}

// Client is the full HubSpot CRM client surface.
type Client interface {
	Objects(objectType ObjectType) ObjectsClient
	Deals() ObjectsClient
	Contacts() ObjectsClient
	Companies() ObjectsClient
	Notes() ObjectsClient
	Search() SearchClient
	Pipelines() PipelinesClient
	Properties() PropertiesClient
	Owners() OwnersClient
	Users() UsersClient
	Associations() AssociationsClient
	Account() AccountClient
}

// Logger interface for structured diagnostic output.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a hubspot.Client.
//
// BaseURL defaults to the public HubSpot API host. AccessToken is a private
// app token used as a static Bearer credential; every authenticated call
// fails with ErrNotAuthenticated before any network activity when it is
// empty.
//
// Retries are disabled unless RetryMax is set; when enabled, transient
// failures (>=500, 429, connection errors) are retried with backoff. The
// search paginator always throttles between offset pages regardless of the
// retry settings; SearchPageDelay overrides the default 500ms gap.
type Config struct {
	// BaseURL: base URL for the HubSpot API. Defaults to
	// "https://api.hubapi.com" when empty; a trailing slash is trimmed and
	// "https://" is added if no scheme is present.
	BaseURL string

	// AccessToken: private app token sent as a Bearer credential.
	AccessToken string

	// HTTPTimeout: per-request timeout for the underlying transport.
	// Defaults to 30s. Context deadlines on individual calls still apply.
	HTTPTimeout time.Duration

	// RetryMax: maximum retries for transient failures. 0 disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// SearchPageDelay: gap between search offset pages. Defaults to 500ms.
	SearchPageDelay time.Duration

	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
