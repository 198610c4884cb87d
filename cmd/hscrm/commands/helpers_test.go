package commands

import (
	"testing"

	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperties(t *testing.T) {
	t.Parallel()
	t.Run("key value pairs", func(t *testing.T) {
		t.Parallel()

		props, err := parseProperties([]string{"dealname=Big Deal", "amount=5000"})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"dealname": "Big Deal", "amount": "5000"}, props)
	})

	t.Run("value may contain equals", func(t *testing.T) {
		t.Parallel()

		props, err := parseProperties([]string{"note=a=b"})
		require.NoError(t, err)
		assert.Equal(t, "a=b", props["note"])
	})

	t.Run("missing separator rejected", func(t *testing.T) {
		t.Parallel()

		_, err := parseProperties([]string{"dealname"})
		require.Error(t, err)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		t.Parallel()

		_, err := parseProperties([]string{"=value"})
		require.Error(t, err)
	})
}

func TestBuildSearchRequest(t *testing.T) {
	t.Parallel()
	t.Run("filters and sorts", func(t *testing.T) {
		t.Parallel()

		request, err := buildSearchRequest("roadrunner",
			[]string{"amount:GT:1000", "dealstage:EQ:closedwon"},
			[]string{"createdate:descending"},
			[]string{"dealname"}, 50)
		require.NoError(t, err)

		assert.Equal(t, "roadrunner", request.Query)
		assert.Equal(t, 50, request.Limit)
		require.Len(t, request.FilterGroups, 1)
		require.Len(t, request.FilterGroups[0].Filters, 2)
		assert.Equal(t, hubspot.Filter{PropertyName: "amount", Operator: "GT", Value: "1000"}, request.FilterGroups[0].Filters[0])
		require.Len(t, request.Sorts, 1)
		assert.Equal(t, "DESCENDING", request.Sorts[0].Direction)
	})

	t.Run("operator without value", func(t *testing.T) {
		t.Parallel()

		request, err := buildSearchRequest("", []string{"closedate:HAS_PROPERTY"}, nil, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, "HAS_PROPERTY", request.FilterGroups[0].Filters[0].Operator)
		assert.Empty(t, request.FilterGroups[0].Filters[0].Value)
	})

	t.Run("malformed filter rejected", func(t *testing.T) {
		t.Parallel()

		_, err := buildSearchRequest("", []string{"amount"}, nil, nil, 0)
		require.Error(t, err)
	})

	t.Run("malformed sort rejected", func(t *testing.T) {
		t.Parallel()

		_, err := buildSearchRequest("", nil, []string{"createdate"}, nil, 0)
		require.Error(t, err)
	})
}
