package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/holocron/internal/config"
	"github.com/deppfellow/holocron/internal/errs"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestGlobal() *GlobalMiddlewares {
	logger := zerolog.Nop()
	return NewGlobalMiddlewares(&server.Server{Config: config.Default(), Logger: &logger})
}

func serveError(t *testing.T, method string, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(method, "/", nil), rec)

	newTestGlobal().GlobalErrorHandler(err, c)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"application error", errs.ErrFavoriteExists, http.StatusBadRequest, "Favorite already exists"},
		{"wrapped application error", fmt.Errorf("get: %w", errs.ErrNotFound), http.StatusNotFound, "not found"},
		{"unknown route", echo.ErrNotFound, http.StatusNotFound, MessageRouteNotFound},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"database unique violation", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), http.StatusBadRequest, "A record with this identifier already exists"},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serveError(t, http.MethodGet, tt.err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, body["message"])
			assert.Equal(t, float64(tt.status), body["status"])
		})
	}
}

func TestGlobalErrorHandlerHead(t *testing.T) {
	rec, body := serveError(t, http.MethodHead, errs.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Nil(t, body)
}

func TestStatusFromError(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, StatusFromError(c, nil))
	assert.Equal(t, http.StatusNotFound, StatusFromError(c, errs.ErrNotFound))
	assert.Equal(t, http.StatusMethodNotAllowed, StatusFromError(c, echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusBadRequest, StatusFromError(c, gorm.ErrForeignKeyViolated))
	assert.Equal(t, http.StatusInternalServerError, StatusFromError(c, errors.New("boom")))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	require.NoError(t, h(e.NewContext(req, httptest.NewRecorder())))
	assert.Equal(t, "abc-123", seen)
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NotNil(t, GetLogger(c))
	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
}
