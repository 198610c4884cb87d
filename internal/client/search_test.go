package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hublink-io/hubspot-client/internal/auth"
	hshttp "github.com/hublink-io/hubspot-client/internal/http"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHTTPClient(t *testing.T, handler http.HandlerFunc) *hshttp.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return hshttp.NewClient(server.URL, auth.NewStaticTokenProvider("test-token"))
}

// searchPage writes one page of the given total, sized up to limit.
func searchPage(writer http.ResponseWriter, total, offset, limit int) {
	count := total - offset
	if count > limit {
		count = limit
	}

	results := make([]map[string]string, 0, count)
	for i := 0; i < count; i++ {
		results = append(results, map[string]string{"id": fmt.Sprintf("%d", offset+i+1)})
	}

	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		"total":   total,
		"results": results,
	})
}

func TestSearchClient_Search(t *testing.T) {
	t.Parallel()
	t.Run("posts request as given", func(t *testing.T) {
		t.Parallel()

		httpClient := newTestHTTPClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/crm/v3/objects/deals/search", request.URL.Path)

			var body hubspot.SearchRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "roadrunner", body.Query)
			assert.Equal(t, 200, body.Limit)
			assert.Empty(t, body.After)

			searchPage(writer, 3, 0, 200)
		})

		searchClient := NewSearchClient(httpClient, time.Millisecond)

		result, err := searchClient.Search(context.Background(), hubspot.ObjectTypeDeals, &hubspot.SearchRequest{
			Query: "roadrunner",
			Limit: 200,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.Total)
		assert.Len(t, result.Results, 3)
	})

	t.Run("rejects unknown object type", func(t *testing.T) {
		t.Parallel()

		httpClient := newTestHTTPClient(t, func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		})

		searchClient := NewSearchClient(httpClient, time.Millisecond)

		_, err := searchClient.Search(context.Background(), "widgets", &hubspot.SearchRequest{})

		validationErr := &hubspot.ValidationError{}
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects nil request", func(t *testing.T) {
		t.Parallel()

		httpClient := newTestHTTPClient(t, func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		})

		searchClient := NewSearchClient(httpClient, time.Millisecond)

		_, err := searchClient.Search(context.Background(), hubspot.ObjectTypeDeals, nil)
		require.ErrorIs(t, err, hubspot.ErrQueryRequired)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestSearchClient_SearchAll(t *testing.T) {
	t.Parallel()
	t.Run("pages by retrieved count with throttle between pages", func(t *testing.T) {
		t.Parallel()

		const total = 450

		var afters []string

		httpClient := newTestHTTPClient(t, func(writer http.ResponseWriter, request *http.Request) {
			var body hubspot.SearchRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			afters = append(afters, body.After)

			offset := 0
			if body.After != "" {
				_, err := fmt.Sscanf(body.After, "%d", &offset)
				require.NoError(t, err)
			}

			searchPage(writer, total, offset, 200)
		})

		searchClient := NewSearchClient(httpClient, 500*time.Millisecond)

		var sleeps []time.Duration

		searchClient.sleep = func(ctx context.Context, d time.Duration) error {
			sleeps = append(sleeps, d)

			return nil
		}

		request := &hubspot.SearchRequest{Limit: 200}

		records, err := searchClient.SearchAll(context.Background(), hubspot.ObjectTypeDeals, request)
		require.NoError(t, err)
		assert.Len(t, records, total)

		// 450 matches at 200 per page means three requests, cursored by the
		// count already retrieved.
		assert.Equal(t, []string{"", "200", "400"}, afters)

		// Throttled only while pages remain after an append: once between the
		// second and third requests, never after the last one.
		assert.Equal(t, []time.Duration{500 * time.Millisecond}, sleeps)

		// The caller's request never gains a cursor.
		assert.Empty(t, request.After)

		for i, record := range records {
			assert.Equal(t, fmt.Sprintf("%d", i+1), record.ID)
		}
	})

	t.Run("single page needs no throttle", func(t *testing.T) {
		t.Parallel()

		httpClient := newTestHTTPClient(t, func(writer http.ResponseWriter, request *http.Request) {
			searchPage(writer, 42, 0, 200)
		})

		searchClient := NewSearchClient(httpClient, 500*time.Millisecond)

		var sleepCount int

		searchClient.sleep = func(ctx context.Context, d time.Duration) error {
			sleepCount++

			return nil
		}

		records, err := searchClient.SearchAll(context.Background(), hubspot.ObjectTypeDeals, &hubspot.SearchRequest{Limit: 200})
		require.NoError(t, err)
		assert.Len(t, records, 42)
		assert.Zero(t, sleepCount)
	})

	t.Run("stops when a page comes back empty", func(t *testing.T) {
		t.Parallel()

		var calls int

		httpClient := newTestHTTPClient(t, func(writer http.ResponseWriter, request *http.Request) {
			calls++
			if calls == 1 {
				// Declared total never materializes.
				searchPage(writer, 100, 0, 30)

				return
			}

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"total": 100, "results": []string{}})
		})

		searchClient := NewSearchClient(httpClient, time.Millisecond)
		searchClient.sleep = func(ctx context.Context, d time.Duration) error { return nil }

		records, err := searchClient.SearchAll(context.Background(), hubspot.ObjectTypeDeals, &hubspot.SearchRequest{Limit: 30})
		require.NoError(t, err)
		assert.Len(t, records, 30)
		assert.Equal(t, 2, calls)
	})

	t.Run("page failure discards partial results", func(t *testing.T) {
		t.Parallel()

		var calls int

		httpClient := newTestHTTPClient(t, func(writer http.ResponseWriter, request *http.Request) {
			calls++
			if calls == 1 {
				searchPage(writer, 400, 0, 200)

				return
			}

			writer.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(writer).Encode(map[string]string{
				"status":   "error",
				"message":  "paging beyond 10000 results is not supported",
				"category": "VALIDATION_ERROR",
			})
		})

		searchClient := NewSearchClient(httpClient, time.Millisecond)
		searchClient.sleep = func(ctx context.Context, d time.Duration) error { return nil }

		records, err := searchClient.SearchAll(context.Background(), hubspot.ObjectTypeDeals, &hubspot.SearchRequest{Limit: 200})
		require.Error(t, err)
		assert.Nil(t, records)
	})

	t.Run("cancelled context stops between pages", func(t *testing.T) {
		t.Parallel()

		httpClient := newTestHTTPClient(t, func(writer http.ResponseWriter, request *http.Request) {
			searchPage(writer, 600, 0, 200)
		})

		searchClient := NewSearchClient(httpClient, time.Millisecond)
		searchClient.sleep = func(ctx context.Context, d time.Duration) error { return context.Canceled }

		_, err := searchClient.SearchAll(context.Background(), hubspot.ObjectTypeDeals, &hubspot.SearchRequest{Limit: 200})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("default page delay", func(t *testing.T) {
		t.Parallel()

		searchClient := NewSearchClient(nil, 0)
		assert.Equal(t, 500*time.Millisecond, searchClient.pageDelay)
	})
}
