package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/holocron/internal/handler"
	"github.com/deppfellow/holocron/internal/middleware"
	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/repository"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/deppfellow/holocron/internal/service"
	"github.com/deppfellow/holocron/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	server *server.Server
	router *echo.Echo
}

func newTestAPI(t *testing.T, configure ...func(s *server.Server)) *testAPI {
	t.Helper()

	s := testutil.NewServer(t)
	for _, fn := range configure {
		fn(s)
	}

	services := service.NewServices(s, repository.NewRepositories(s))
	return &testAPI{
		server: s,
		router: NewRouter(s, handler.NewHandlers(s, services)),
	}
}

func (api *testAPI) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	return rec
}

func (api *testAPI) send(t *testing.T, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestCharacterFavoriteScenario(t *testing.T) {
	api := newTestAPI(t)
	testutil.Create(t, api.server,
		&model.Character{ID: 1, Name: "Luke Skywalker", Gender: "male"},
		&model.Character{ID: 2, Name: "Leia Organa", Gender: "female"},
	)

	rec := api.do(t, http.MethodGet, "/people")
	require.Equal(t, http.StatusOK, rec.Code)
	people := decode[[]model.CharacterResponse](t, rec)
	require.Len(t, people, 2)
	assert.Equal(t, "Luke Skywalker", people[0].Name)
	assert.Equal(t, "Leia Organa", people[1].Name)

	rec = api.do(t, http.MethodGet, "/people/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Luke Skywalker", decode[model.CharacterResponse](t, rec).Name)

	rec = api.do(t, http.MethodGet, "/people/3")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decode[map[string]any](t, rec)["message"])

	rec = api.do(t, http.MethodPost, "/favorite/people/1")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"user_id":1,"character_id":1,"planet_id":null}`, rec.Body.String())

	rec = api.do(t, http.MethodPost, "/favorite/people/1")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Favorite already exists", decode[map[string]any](t, rec)["message"])

	var count int64
	require.NoError(t, api.server.DB.DB.Model(&model.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListUsersReturnsOnlyActive(t *testing.T) {
	api := newTestAPI(t)
	testutil.Create(t, api.server,
		&model.User{ID: 1, Email: "luke@example.com", Password: "secret", IsActive: true},
		&model.User{ID: 2, Email: "vader@example.com", Password: "secret"},
	)

	rec := api.do(t, http.MethodGet, "/users")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"email":"luke@example.com","is_active":true}]`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestEmptyListsEncodeAsArrays(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{"/users", "/people", "/planets", "/users/favorites"} {
		rec := api.do(t, http.MethodGet, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `[]`, rec.Body.String(), path)
	}
}

func TestPlanets(t *testing.T) {
	api := newTestAPI(t)
	testutil.Create(t, api.server, &model.Planet{ID: 1, Name: "Tatooine", Climate: "arid", Terrain: "desert"})

	rec := api.do(t, http.MethodGet, "/planets")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.PlanetResponse](t, rec), 1)

	rec = api.do(t, http.MethodGet, "/planets/1")
	require.Equal(t, http.StatusOK, rec.Code)
	planet := decode[model.PlanetResponse](t, rec)
	assert.Equal(t, "desert", planet.Terrain)

	rec = api.do(t, http.MethodGet, "/planets/2")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlanetFavorites(t *testing.T) {
	api := newTestAPI(t)
	testutil.Create(t, api.server, &model.Planet{ID: 1, Name: "Hoth"})

	rec := api.do(t, http.MethodPost, "/favorite/planet/1")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(t, http.MethodPost, "/favorite/planet/1")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodPost, "/favorite/planet/2")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "The referenced planet does not exist", decode[map[string]any](t, rec)["message"])

	rec = api.do(t, http.MethodGet, "/users/favorites")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"user_id":1,"character_id":null,"planet_id":1}]`, rec.Body.String())
}

func TestRepeatedGetsAreIdempotent(t *testing.T) {
	api := newTestAPI(t)
	testutil.Create(t, api.server, &model.Character{ID: 1, Name: "Yoda"})

	first := api.do(t, http.MethodGet, "/people/1").Body.String()
	second := api.do(t, http.MethodGet, "/people/1").Body.String()
	assert.Equal(t, first, second)
}

func TestNonIntegerIDIsBadRequest(t *testing.T) {
	api := newTestAPI(t)

	for _, target := range []string{"/people/abc", "/planets/-1", "/favorite/people/x"} {
		method := http.MethodGet
		if strings.HasPrefix(target, "/favorite") {
			method = http.MethodPost
		}

		rec := api.do(t, method, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.NotEmpty(t, decode[map[string]any](t, rec)["message"], target)
	}
}

func TestZeroIDIsBadRequest(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/people/0")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "Validation failed", body["message"])
	assert.Equal(t, []any{map[string]any{"field": "id", "error": "must be at least 1"}}, body["errors"])
}

func TestFavoriteTargetComesFromPath(t *testing.T) {
	api := newTestAPI(t)
	testutil.Create(t, api.server,
		&model.Character{ID: 1, Name: "Luke Skywalker"},
		&model.Character{ID: 2, Name: "Leia Organa"},
	)

	rec := api.send(t, http.MethodPost, "/favorite/people/1", echo.MIMEApplicationJSON, `{"id":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id":1,"user_id":1,"character_id":1,"planet_id":null}`, rec.Body.String())

	rec = api.send(t, http.MethodPost, "/favorite/people/2", echo.MIMETextPlain, "hello")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, uint(2), *decode[model.FavoriteResponse](t, rec).CharacterID)

	rec = api.send(t, http.MethodGet, "/people/1", echo.MIMEApplicationJSON, `{"id":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Luke Skywalker", decode[model.CharacterResponse](t, rec).Name)
}

func TestTrailingSlashIsIgnored(t *testing.T) {
	api := newTestAPI(t)
	testutil.Create(t, api.server, &model.Character{ID: 1, Name: "Yoda"})

	assert.Equal(t, api.do(t, http.MethodGet, "/people").Body.String(), api.do(t, http.MethodGet, "/people/").Body.String())
	assert.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/people/1/").Code)
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/starships")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, middleware.MessageRouteNotFound, decode[map[string]any](t, rec)["message"])
}

func TestMethodNotAllowed(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodDelete, "/people")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSitemap(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)

	body := rec.Body.String()
	for _, link := range []string{`href="/users"`, `href="/people"`, `href="/planets"`, `href="/status"`} {
		assert.Contains(t, body, link)
	}
	assert.NotContains(t, body, ":id")
}

func TestStatus(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/status")
	require.Equal(t, http.StatusOK, rec.Code)

	health := decode[handler.HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "healthy", health.Checks["database"].Status)
	assert.NotContains(t, health.Checks, "redis")
}

func TestStatusReportsDatabaseFailure(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.server.DB.Close())

	rec := api.do(t, http.MethodGet, "/status")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", decode[handler.HealthResponse](t, rec).Checks["database"].Status)
}

func TestMetrics(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodGet, "/people")

	rec := api.do(t, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/people",status="200"} 1`)
}

func TestDocs(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/docs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")

	rec = api.do(t, http.MethodGet, "/static/openapi.json")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decode[map[string]any](t, rec)
	assert.Contains(t, doc["paths"], "/favorite/people/{id}")
}

func TestRequestIDHeader(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/people")
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-me")
	rec = httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-me", rec.Header().Get(middleware.RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	api := newTestAPI(t, func(s *server.Server) {
		s.Config.Server.RateLimit = 1
		s.Config.Server.RateLimitBurst = 1
	})

	assert.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/people").Code)

	rec := api.do(t, http.MethodGet, "/people")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode[map[string]any](t, rec)["code"])

	// Probes are never throttled.
	assert.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/status").Code)
}
