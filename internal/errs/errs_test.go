package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorJSONCarriesMessage(t *testing.T) {
	raw, err := json.Marshal(ErrNotFound)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "not found", body["message"])
	assert.Equal(t, CodeRecordNotFound, body["code"])
	assert.Equal(t, float64(http.StatusNotFound), body["status"])
	assert.NotContains(t, body, "errors")
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("get character 3: %w", ErrNotFound)

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrFavoriteExists))
	assert.False(t, errors.Is(errors.New("plain"), ErrNotFound))
}

func TestSentinelsDoNotMatchGenericErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel *HTTPError
	}{
		{"validation failure", NewBadRequestError("Validation failed", true, nil, nil), ErrFavoriteExists},
		{"bind failure", NewBadRequestError("Unsupported Media Type", false, nil, nil), ErrFavoriteExists},
		{"same message generic code", NewBadRequestError(MessageFavoriteExists, true, nil, nil), ErrFavoriteExists},
		{"unknown route", NewNotFoundError("Route not found", false, nil), ErrNotFound},
		{"same message generic code 404", NewNotFoundError(MessageNotFound, true, nil), ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, errors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestConstructors(t *testing.T) {
	custom := "FAVORITE_ALREADY_EXISTS"

	tests := []struct {
		name   string
		err    *HTTPError
		status int
		code   string
	}{
		{"bad request", NewBadRequestError("nope", false, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"bad request custom code", NewBadRequestError("nope", false, &custom, nil), http.StatusBadRequest, custom},
		{"not found", NewNotFoundError("gone", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}
