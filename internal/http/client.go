// Package http implements the authenticated request executor for the HubSpot
// API, including transparent cursor-pagination follow-up.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/hublink-io/hubspot-client/internal/auth"
	"github.com/hublink-io/hubspot-client/internal/constants"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
)

// Logger interface for HTTP request/response logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request. Immutable once built per call; the
// pagination loop reuses it unchanged against each next-page link.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the authenticated HTTP executor.
type Client struct {
	baseURL    string
	tokens     auth.TokenProvider
	httpClient *retryablehttp.Client
	logger     Logger
	debug      bool
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug traces.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-request timeout on the underlying transport.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables retries for transient failures (>=500, 429, and
// connection errors). Retries are disabled by default.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a new HTTP client for the given base URL.
func NewClient(baseURL string, tokens auth.TokenProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand back the final response once retries are exhausted instead of a
	// "giving up" error, so 429/5xx bodies still reach the status handling.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		tokens:     tokens,
		httpClient: retryClient,
		userAgent:  "hubspot-client/1.0",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodDelete: true,
	http.MethodPatch:  true,
}

// validate rejects malformed requests before any network activity.
func (c *Client) validate(req *Request) error {
	if !strings.HasPrefix(req.Path, "/") {
		return &hubspot.ValidationError{Field: "endpoint", Message: "path must start with /"}
	}

	if req.Method != "" && !allowedMethods[req.Method] {
		return &hubspot.ValidationError{Field: "method", Message: fmt.Sprintf("unsupported HTTP method %q", req.Method)}
	}

	return nil
}

// Do executes a single API request. The token precondition and path
// validation fail before anything is sent.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	err := c.validate(req)
	if err != nil {
		return nil, err
	}

	if c.tokens == nil {
		return nil, hubspot.ErrNotAuthenticated
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hubspot.ErrNotAuthenticated, err)
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	return c.dispatch(ctx, req, fullURL, token)
}

// dispatch sends the request to the literal URL given. The pagination loop
// calls it directly with the next-page link from the prior response.
func (c *Client) dispatch(ctx context.Context, req *Request, fullURL, token string) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &hubspot.RequestError{
			Endpoint: req.Path,
			Method:   method,
			Err:      err,
		}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
		})
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		reqErr := &hubspot.RequestError{
			Endpoint:   req.Path,
			Method:     method,
			StatusCode: httpResp.StatusCode,
			Body:       respBody,
		}

		if apiErr, parseErr := hubspot.ParseAPIError(respBody); parseErr == nil {
			reqErr.APIErr = apiErr
		}

		return resp, reqErr
	}

	return resp, nil
}

// pageEnvelope is the slice of a list response the pagination loop needs.
type pageEnvelope struct {
	Results []json.RawMessage `json:"results"`
	Paging  *hubspot.Paging   `json:"paging"`
}

func (e *pageEnvelope) nextLink() string {
	if e.Paging != nil && e.Paging.Next != nil {
		return e.Paging.Next.Link
	}

	return ""
}

// DoPaged executes a request and transparently follows cursor pagination.
// When the first response carries no next-page link the raw body is returned
// unmodified in Result.Object; this covers both bare-object endpoints and
// single-page lists, and callers depend on that distinction. Otherwise each
// page's results are appended in arrival order, each follow-up issued against
// the literal link from the prior response with the same method and body.
func (c *Client) DoPaged(ctx context.Context, req *Request) (*hubspot.Result, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var envelope pageEnvelope
	if unmarshalErr := json.Unmarshal(resp.Body, &envelope); unmarshalErr != nil || envelope.nextLink() == "" {
		return &hubspot.Result{Object: resp.Body}, nil
	}

	records := make([]json.RawMessage, 0, len(envelope.Results))
	records = append(records, envelope.Results...)
	next := envelope.nextLink()

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", hubspot.ErrNotAuthenticated, err)
	}

	for next != "" {
		pageResp, err := c.dispatch(ctx, req, next, token)
		if err != nil {
			return nil, err
		}

		var page pageEnvelope

		err = json.Unmarshal(pageResp.Body, &page)
		if err != nil {
			return nil, fmt.Errorf("parsing page response: %w", err)
		}

		records = append(records, page.Results...)
		next = page.nextLink()
	}

	return &hubspot.Result{Records: records}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// GetPaged performs a GET request following cursor pagination.
func (c *Client) GetPaged(ctx context.Context, path string, query url.Values) (*hubspot.Result, error) {
	return c.DoPaged(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
