package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoints.
const (
	// DefaultBaseURL is the public HubSpot API host.
	DefaultBaseURL = "https://api.hubapi.com"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations like connectivity checks.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are opt-in; RetryMax 0 leaves them disabled.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Paging limits.
const (
	// DefaultListPageSize is the page size HubSpot list endpoints default to.
	DefaultListPageSize = 100

	// MaxSearchPageSize is the largest page the search API accepts.
	MaxSearchPageSize = 200

	// SearchResultCeiling is the deepest offset the search API will page to.
	// Searches matching more records fail at the API once the cursor passes
	// this point; the client surfaces that failure rather than truncating.
	SearchResultCeiling = 10000

	// DefaultSearchPageDelay is the throttle between search offset pages.
	DefaultSearchPageDelay = 500 * time.Millisecond
)

// Batch limits.
const (
	// MaxObjectBatchSize is the largest object batch-read input list.
	MaxObjectBatchSize = 100

	// MaxAssociationBatchSize is the largest association batch input list.
	MaxAssociationBatchSize = 1000
)
