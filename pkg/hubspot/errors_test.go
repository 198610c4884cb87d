package hubspot_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/hublink-io/hubspot-client/pkg/hubspot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestError_Error(t *testing.T) {
	t.Parallel()
	t.Run("with api error", func(t *testing.T) {
		t.Parallel()

		err := &hubspot.RequestError{
			Endpoint:   "/crm/v3/objects/deals/999",
			Method:     "GET",
			StatusCode: 404,
			APIErr: &hubspot.APIError{
				Message:  "deal 999 not found",
				Category: "OBJECT_NOT_FOUND",
			},
		}

		assert.Equal(t, "GET /crm/v3/objects/deals/999 failed with status 404: OBJECT_NOT_FOUND: deal 999 not found", err.Error())
	})

	t.Run("without api error", func(t *testing.T) {
		t.Parallel()

		err := &hubspot.RequestError{Endpoint: "/x", Method: "DELETE", StatusCode: 500}
		assert.Equal(t, "DELETE /x failed with status 500", err.Error())
	})

	t.Run("transport cause unwraps", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		err := &hubspot.RequestError{Endpoint: "/x", Method: "GET", Err: cause}

		assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), cause)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	wrap := func(status int) error {
		return fmt.Errorf("getting deal: %w", &hubspot.RequestError{StatusCode: status})
	}

	assert.True(t, hubspot.IsNotFound(wrap(http.StatusNotFound)))
	assert.False(t, hubspot.IsNotFound(wrap(http.StatusBadRequest)))
	assert.True(t, hubspot.IsUnauthorized(wrap(http.StatusUnauthorized)))
	assert.True(t, hubspot.IsRateLimited(wrap(http.StatusTooManyRequests)))
	assert.False(t, hubspot.IsNotFound(errors.New("plain error")))
}

func TestParseAPIError(t *testing.T) {
	t.Parallel()
	t.Run("full body", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"status":"error","message":"bad cursor","correlationId":"c-1","category":"VALIDATION_ERROR"}`)

		apiErr, err := hubspot.ParseAPIError(body)
		require.NoError(t, err)
		assert.Equal(t, "error", apiErr.Status)
		assert.Equal(t, "bad cursor", apiErr.Message)
		assert.Equal(t, "c-1", apiErr.CorrelationID)
		assert.Equal(t, "VALIDATION_ERROR", apiErr.Category)
	})

	t.Run("not json", func(t *testing.T) {
		t.Parallel()

		_, err := hubspot.ParseAPIError([]byte("<html>Bad Gateway</html>"))
		require.Error(t, err)
	})
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &hubspot.ValidationError{Field: "method", Message: `unsupported HTTP method "PUT"`}
	assert.Equal(t, `invalid method: unsupported HTTP method "PUT"`, err.Error())
}
