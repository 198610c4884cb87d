package client_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hublink-io/hubspot-client/internal/auth"
	"github.com/hublink-io/hubspot-client/internal/client"
	hshttp "github.com/hublink-io/hubspot-client/internal/http"
	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newObjectsClient(t *testing.T, objectType hubspot.ObjectType, handler http.HandlerFunc) *client.ObjectsClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := hshttp.NewClient(server.URL, auth.NewStaticTokenProvider("test-token"))

	return client.NewObjectsClient(httpClient, objectType)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestObjectsClient_Get(t *testing.T) {
	t.Parallel()
	t.Run("by id", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeDeals, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/crm/v3/objects/deals/123", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"id": "123",
				"properties": map[string]string{
					"dealname": "Big Deal",
					"amount":   "5000",
				},
			})
		})

		deal, err := objects.Get(context.Background(), "123", nil)
		require.NoError(t, err)
		assert.Equal(t, "123", deal.ID)
		assert.Equal(t, "Big Deal", deal.Properties["dealname"])
	})

	t.Run("query parameters", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeContacts, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/crm/v3/objects/contacts/ada@example.com", request.URL.Path)
			assert.Equal(t, "email,firstname", request.URL.Query().Get("properties"))
			assert.Equal(t, "email", request.URL.Query().Get("idProperty"))
			assert.Equal(t, "true", request.URL.Query().Get("archived"))

			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "77"})
		})

		params := hubspot.NewQueryParams().
			WithProperties("email", "firstname").
			WithIDProperty("email").
			WithArchived(true)

		contact, err := objects.Get(context.Background(), "ada@example.com", params)
		require.NoError(t, err)
		assert.Equal(t, "77", contact.ID)
	})

	t.Run("empty id rejected", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeDeals, func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		})

		_, err := objects.Get(context.Background(), "", nil)
		require.ErrorIs(t, err, hubspot.ErrObjectIDRequired)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeDeals, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(writer).Encode(map[string]string{
				"status":   "error",
				"message":  "deal 999 not found",
				"category": "OBJECT_NOT_FOUND",
			})
		})

		_, err := objects.Get(context.Background(), "999", nil)
		require.Error(t, err)
		assert.True(t, hubspot.IsNotFound(err))
	})
}

func TestObjectsClient_List(t *testing.T) {
	t.Parallel()
	t.Run("single page with cursor", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeDeals, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/crm/v3/objects/deals", request.URL.Path)
			assert.Equal(t, "25", request.URL.Query().Get("limit"))

			fmt.Fprint(writer, `{"results":[{"id":"1"},{"id":"2"}],"paging":{"next":{"after":"2","link":"https://api.hubapi.com/crm/v3/objects/deals?after=2"}}}`)
		})

		page, err := objects.List(context.Background(), hubspot.NewQueryParams().WithLimit(25))
		require.NoError(t, err)
		assert.Len(t, page.Results, 2)
		require.NotNil(t, page.Paging)
		assert.Equal(t, "2", page.Paging.Next.After)
	})

	t.Run("list all follows links", func(t *testing.T) {
		t.Parallel()

		var server *httptest.Server

		var calls int

		server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls++
			if request.URL.Query().Get("after") == "" {
				fmt.Fprintf(writer, `{"results":[{"id":"1"},{"id":"2"}],"paging":{"next":{"after":"2","link":"%s/crm/v3/objects/deals?after=2"}}}`, server.URL)

				return
			}

			fmt.Fprint(writer, `{"results":[{"id":"3"}]}`)
		}))
		t.Cleanup(server.Close)

		httpClient := hshttp.NewClient(server.URL, auth.NewStaticTokenProvider("test-token"))
		objects := client.NewObjectsClient(httpClient, hubspot.ObjectTypeDeals)

		deals, err := objects.ListAll(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		require.Len(t, deals, 3)
		assert.Equal(t, "1", deals[0].ID)
		assert.Equal(t, "3", deals[2].ID)
	})

	t.Run("list all with single page", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeDeals, func(writer http.ResponseWriter, request *http.Request) {
			fmt.Fprint(writer, `{"results":[{"id":"1"}]}`)
		})

		deals, err := objects.ListAll(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, deals, 1)
		assert.Equal(t, "1", deals[0].ID)
	})
}

func TestObjectsClient_Write(t *testing.T) {
	t.Parallel()
	t.Run("create", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeNotes, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/crm/v3/objects/notes", request.URL.Path)

			var body hubspot.ObjectCreateRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "call went well", body.Properties["hs_note_body"])

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"id": "42", "properties": body.Properties})
		})

		note, err := objects.Create(context.Background(), &hubspot.ObjectCreateRequest{
			Properties: map[string]string{"hs_note_body": "call went well"},
		})
		require.NoError(t, err)
		assert.Equal(t, "42", note.ID)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeDeals, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PATCH", request.Method)
			assert.Equal(t, "/crm/v3/objects/deals/123", request.URL.Path)

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"id":         "123",
				"properties": map[string]string{"dealstage": "closedwon"},
			})
		})

		deal, err := objects.Update(context.Background(), "123", &hubspot.ObjectUpdateRequest{
			Properties: map[string]string{"dealstage": "closedwon"},
		})
		require.NoError(t, err)
		assert.Equal(t, "closedwon", deal.Properties["dealstage"])
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeDeals, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/crm/v3/objects/deals/123", request.URL.Path)
			writer.WriteHeader(http.StatusNoContent)
		})

		err := objects.Delete(context.Background(), "123")
		require.NoError(t, err)
	})

	t.Run("update without id rejected", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeDeals, func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		})

		_, err := objects.Update(context.Background(), "", &hubspot.ObjectUpdateRequest{})
		require.ErrorIs(t, err, hubspot.ErrObjectIDRequired)
	})
}

func TestObjectsClient_BatchRead(t *testing.T) {
	t.Parallel()
	t.Run("reads by id", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeCompanies, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/crm/v3/objects/companies/batch/read", request.URL.Path)

			var body hubspot.BatchReadRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			require.Len(t, body.Inputs, 2)
			assert.Equal(t, []string{"name", "domain"}, body.Properties)

			fmt.Fprint(writer, `{"status":"COMPLETE","results":[{"id":"1"},{"id":"2"}]}`)
		})

		companies, err := objects.BatchRead(context.Background(), &hubspot.BatchReadRequest{
			Inputs:     []hubspot.BatchReadInput{{ID: "1"}, {ID: "2"}},
			Properties: []string{"name", "domain"},
		})
		require.NoError(t, err)
		assert.Len(t, companies, 2)
	})

	t.Run("empty inputs rejected", func(t *testing.T) {
		t.Parallel()

		objects := newObjectsClient(t, hubspot.ObjectTypeCompanies, func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		})

		_, err := objects.BatchRead(context.Background(), &hubspot.BatchReadRequest{})
		require.ErrorIs(t, err, hubspot.ErrNoInputs)
	})
}
