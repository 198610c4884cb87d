// Package client implements the hubspot.Client interface over the internal
// HTTP executor.
package client

import (
	"errors"
	"time"

	"github.com/hublink-io/hubspot-client/internal/auth"
	"github.com/hublink-io/hubspot-client/internal/constants"
	"github.com/hublink-io/hubspot-client/internal/http"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
)

// Client implements the hubspot.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     hubspot.Logger

	// Resource clients
	objects      map[hubspot.ObjectType]hubspot.ObjectsClient
	search       hubspot.SearchClient
	pipelines    hubspot.PipelinesClient
	properties   hubspot.PropertiesClient
	owners       hubspot.OwnersClient
	users        hubspot.UsersClient
	associations hubspot.AssociationsClient
	account      hubspot.AccountClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *hubspot.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new HubSpot API client.
func New(config *hubspot.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	tokens := auth.NewStaticTokenProvider(config.AccessToken)
	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.BaseURL, tokens, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients(config.SearchPageDelay)

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients(searchPageDelay time.Duration) {
	c.objects = make(map[hubspot.ObjectType]hubspot.ObjectsClient)
	for _, objectType := range hubspot.ObjectTypes() {
		c.objects[objectType] = NewObjectsClient(c.httpClient, objectType)
	}

	c.search = NewSearchClient(c.httpClient, searchPageDelay)
	c.pipelines = NewPipelinesClient(c.httpClient)
	c.properties = NewPropertiesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.owners = NewOwnersClient(c.httpClient, c.users)
	c.associations = NewAssociationsClient(c.httpClient)
	c.account = NewAccountClient(c.httpClient)
}

// Objects implements hubspot.Client.Objects. Unknown types get a client
// anyway; the API decides whether the type exists.
func (c *Client) Objects(objectType hubspot.ObjectType) hubspot.ObjectsClient {
	if oc, ok := c.objects[objectType]; ok {
		return oc
	}

	return NewObjectsClient(c.httpClient, objectType)
}

// Deals implements hubspot.Client.Deals.
func (c *Client) Deals() hubspot.ObjectsClient {
	return c.objects[hubspot.ObjectTypeDeals]
}

// Contacts implements hubspot.Client.Contacts.
func (c *Client) Contacts() hubspot.ObjectsClient {
	return c.objects[hubspot.ObjectTypeContacts]
}

// Companies implements hubspot.Client.Companies.
func (c *Client) Companies() hubspot.ObjectsClient {
	return c.objects[hubspot.ObjectTypeCompanies]
}

// Notes implements hubspot.Client.Notes.
func (c *Client) Notes() hubspot.ObjectsClient {
	return c.objects[hubspot.ObjectTypeNotes]
}

// Search implements hubspot.Client.Search.
func (c *Client) Search() hubspot.SearchClient {
	return c.search
}

// Pipelines implements hubspot.Client.Pipelines.
func (c *Client) Pipelines() hubspot.PipelinesClient {
	return c.pipelines
}

// Properties implements hubspot.Client.Properties.
func (c *Client) Properties() hubspot.PropertiesClient {
	return c.properties
}

// Owners implements hubspot.Client.Owners.
func (c *Client) Owners() hubspot.OwnersClient {
	return c.owners
}

// Users implements hubspot.Client.Users.
func (c *Client) Users() hubspot.UsersClient {
	return c.users
}

// Associations implements hubspot.Client.Associations.
func (c *Client) Associations() hubspot.AssociationsClient {
	return c.associations
}

// Account implements hubspot.Client.Account.
func (c *Client) Account() hubspot.AccountClient {
	return c.account
}

// loggerAdapter adapts hubspot.Logger to http.Logger.
type loggerAdapter struct {
	logger hubspot.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
