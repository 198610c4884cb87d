package hubspot_test

import (
	"testing"

	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/stretchr/testify/assert"
)

func TestQueryParams_ToValues(t *testing.T) {
	t.Parallel()
	t.Run("empty params produce no values", func(t *testing.T) {
		t.Parallel()

		values := hubspot.NewQueryParams().ToValues()
		assert.Empty(t, values)
	})

	t.Run("all fields", func(t *testing.T) {
		t.Parallel()

		values := hubspot.NewQueryParams().
			WithLimit(50).
			WithAfter("200").
			WithProperties("dealname", "amount").
			WithAssociations("contacts").
			WithArchived(true).
			WithIDProperty("email").
			ToValues()

		assert.Equal(t, "50", values.Get("limit"))
		assert.Equal(t, "200", values.Get("after"))
		assert.Equal(t, "dealname,amount", values.Get("properties"))
		assert.Equal(t, "contacts", values.Get("associations"))
		assert.Equal(t, "true", values.Get("archived"))
		assert.Equal(t, "email", values.Get("idProperty"))
	})

	t.Run("archived false omitted", func(t *testing.T) {
		t.Parallel()

		values := hubspot.NewQueryParams().WithArchived(false).ToValues()
		assert.False(t, values.Has("archived"))
	})

	t.Run("properties accumulate", func(t *testing.T) {
		t.Parallel()

		values := hubspot.NewQueryParams().
			WithProperties("dealname").
			WithProperties("amount").
			ToValues()

		assert.Equal(t, "dealname,amount", values.Get("properties"))
	})
}

func TestObjectTypes(t *testing.T) {
	t.Parallel()

	for _, objectType := range hubspot.ObjectTypes() {
		assert.True(t, hubspot.ValidObjectType(objectType))
	}

	assert.False(t, hubspot.ValidObjectType("widgets"))
	assert.False(t, hubspot.ValidObjectType(""))
}
