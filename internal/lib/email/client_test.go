package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/deppfellow/holocron/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	logger := zerolog.Nop()
	c, err := NewClient(&config.EmailConfig{
		ResendAPIKey: "re_test",
		FromAddress:  "holocron@example.com",
		FromName:     "Holocron",
	}, &logger)
	require.NoError(t, err)

	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)

		base, err := url.Parse(srv.URL + "/")
		require.NoError(t, err)
		c.client.BaseURL = base
	}
	return c
}

func TestRenderFavoriteAdded(t *testing.T) {
	c := newTestClient(t, nil)

	html, err := c.Render(TemplateFavoriteAdded, FavoriteAdded{Kind: "planet", Name: "Hoth <Echo Base>"})
	require.NoError(t, err)
	assert.Contains(t, html, "The planet <strong>Hoth &lt;Echo Base&gt;</strong>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	c := newTestClient(t, nil)

	_, err := c.Render(Template("missing"), nil)
	assert.Error(t, err)
}

func TestSendFavoriteAddedEmail(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1"}`))
	})

	err := c.SendFavoriteAddedEmail(context.Background(), "luke@example.com", FavoriteAdded{Kind: "character", Name: "Yoda"})
	require.NoError(t, err)

	assert.Equal(t, "Holocron <holocron@example.com>", got["from"])
	assert.Equal(t, []any{"luke@example.com"}, got["to"])
	assert.Equal(t, "Yoda added to your favorites", got["subject"])
	assert.Contains(t, got["html"], "<strong>Yoda</strong>")
}

func TestSendEmailProviderFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from"}`))
	})

	_, err := c.SendEmail(context.Background(), "luke@example.com", "hi", TemplateFavoriteAdded, FavoriteAdded{})
	assert.Error(t, err)
}
