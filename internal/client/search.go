package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/hublink-io/hubspot-client/internal/constants"
	"github.com/hublink-io/hubspot-client/internal/http"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
)

// SearchClient implements hubspot.SearchClient. Search endpoints page by
// offset rather than next-page links: the after cursor for each page is the
// count of records already retrieved.
type SearchClient struct {
	httpClient *http.Client
	pageDelay  time.Duration
	sleep      func(context.Context, time.Duration) error
}

// NewSearchClient creates a search client. A pageDelay of 0 selects the
// default 500ms throttle between offset pages.
func NewSearchClient(httpClient *http.Client, pageDelay time.Duration) *SearchClient {
	if pageDelay == 0 {
		pageDelay = constants.DefaultSearchPageDelay
	}

	return &SearchClient{
		httpClient: httpClient,
		pageDelay:  pageDelay,
		sleep:      sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func searchPath(objectType hubspot.ObjectType) string {
	return fmt.Sprintf("/crm/v3/objects/%s/search", objectType)
}

// Search implements hubspot.SearchClient.Search: one page, as posted.
func (c *SearchClient) Search(ctx context.Context, objectType hubspot.ObjectType, request *hubspot.SearchRequest) (*hubspot.SearchResult, error) {
	if !hubspot.ValidObjectType(objectType) {
		return nil, &hubspot.ValidationError{Field: "objectType", Message: fmt.Sprintf("unknown object type %q", objectType)}
	}

	if request == nil {
		return nil, hubspot.ErrQueryRequired
	}

	resp, err := c.httpClient.Post(ctx, searchPath(objectType), request)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", objectType, err)
	}

	var result hubspot.SearchResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing %s search response: %w", objectType, err)
	}

	return &result, nil
}

// SearchAll implements hubspot.SearchClient.SearchAll. It posts the caller's
// query once, then pages by offset until the declared total is reached,
// throttling between pages. The caller's request is copied before any cursor
// is written, so it never gains an after field. Searches matching more than
// 10,000 records fail at the API once the cursor passes the ceiling; that
// failure propagates instead of being truncated here, and partial results
// are discarded on any page failure.
func (c *SearchClient) SearchAll(ctx context.Context, objectType hubspot.ObjectType, request *hubspot.SearchRequest) ([]hubspot.Object, error) {
	if request == nil {
		return nil, hubspot.ErrQueryRequired
	}

	original := request.Clone()

	first, err := c.Search(ctx, objectType, original)
	if err != nil {
		return nil, err
	}

	records := first.Results

	for len(records) < first.Total {
		query := original.Clone()
		query.After = strconv.Itoa(len(records))

		page, err := c.Search(ctx, objectType, query)
		if err != nil {
			return nil, err
		}

		if len(page.Results) == 0 {
			// The total shrank under us; stop rather than loop forever.
			break
		}

		records = append(records, page.Results...)

		if len(records) < first.Total {
			if err := c.sleep(ctx, c.pageDelay); err != nil {
				return nil, fmt.Errorf("searching %s: %w", objectType, err)
			}
		}
	}

	return records, nil
}
