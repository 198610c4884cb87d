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

func newPipelinesClient(t *testing.T, handler http.HandlerFunc) *client.PipelinesClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := hshttp.NewClient(server.URL, auth.NewStaticTokenProvider("test-token"))

	return client.NewPipelinesClient(httpClient)
}

func TestPipelinesClient(t *testing.T) {
	t.Parallel()
	t.Run("list", func(t *testing.T) {
		t.Parallel()

		pipelines := newPipelinesClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/crm/v3/pipelines/deals", request.URL.Path)
			fmt.Fprint(writer, `{"results":[{"id":"default","label":"Sales Pipeline","stages":[{"id":"s1","label":"Qualified"}]}]}`)
		})

		result, err := pipelines.List(context.Background(), hubspot.ObjectTypeDeals)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Sales Pipeline", result[0].Label)
		require.Len(t, result[0].Stages, 1)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		pipelines := newPipelinesClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/crm/v3/pipelines/deals/default", request.URL.Path)
			fmt.Fprint(writer, `{"id":"default","label":"Sales Pipeline"}`)
		})

		pipeline, err := pipelines.Get(context.Background(), hubspot.ObjectTypeDeals, "default")
		require.NoError(t, err)
		assert.Equal(t, "default", pipeline.ID)
	})

	t.Run("list stages", func(t *testing.T) {
		t.Parallel()

		pipelines := newPipelinesClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/crm/v3/pipelines/deals/default/stages", request.URL.Path)
			fmt.Fprint(writer, `{"results":[{"id":"s1","label":"Qualified","displayOrder":0},{"id":"s2","label":"Closed Won","displayOrder":1}]}`)
		})

		stages, err := pipelines.ListStages(context.Background(), hubspot.ObjectTypeDeals, "default")
		require.NoError(t, err)
		require.Len(t, stages, 2)
		assert.Equal(t, "Closed Won", stages[1].Label)
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		pipelines := newPipelinesClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)

			var body hubspot.PipelineCreateRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "Renewals", body.Label)
			require.Len(t, body.Stages, 2)

			writer.WriteHeader(http.StatusCreated)
			fmt.Fprint(writer, `{"id":"p9","label":"Renewals"}`)
		})

		pipeline, err := pipelines.Create(context.Background(), hubspot.ObjectTypeDeals, &hubspot.PipelineCreateRequest{
			Label: "Renewals",
			Stages: []hubspot.PipelineStageInput{
				{Label: "Due", DisplayOrder: 0},
				{Label: "Renewed", DisplayOrder: 1},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "p9", pipeline.ID)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		pipelines := newPipelinesClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PATCH", request.Method)
			assert.Equal(t, "/crm/v3/pipelines/deals/p9", request.URL.Path)

			var body hubspot.PipelineCreateRequest

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "Renewals 2026", body.Label)

			fmt.Fprint(writer, `{"id":"p9","label":"Renewals 2026"}`)
		})

		pipeline, err := pipelines.Update(context.Background(), hubspot.ObjectTypeDeals, "p9", &hubspot.PipelineCreateRequest{
			Label: "Renewals 2026",
		})
		require.NoError(t, err)
		assert.Equal(t, "Renewals 2026", pipeline.Label)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		pipelines := newPipelinesClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Equal(t, "/crm/v3/pipelines/deals/p9", request.URL.Path)
			writer.WriteHeader(http.StatusNoContent)
		})

		err := pipelines.Delete(context.Background(), hubspot.ObjectTypeDeals, "p9")
		require.NoError(t, err)
	})

	t.Run("missing pipeline id rejected", func(t *testing.T) {
		t.Parallel()

		pipelines := newPipelinesClient(t, func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		})

		_, err := pipelines.Get(context.Background(), hubspot.ObjectTypeDeals, "")
		require.ErrorIs(t, err, hubspot.ErrPipelineIDRequired)
	})
}
