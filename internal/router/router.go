// Package router initializes the Echo router.
//
// It registers the middleware chain and the global error handler and maps
// API and system paths to their handlers.
package router

import (
	"github.com/deppfellow/holocron/internal/handler"
	"github.com/deppfellow/holocron/internal/middleware"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the Echo instance serving the whole API.
//
// Trailing slashes are stripped before routing, so /people/ and /people
// reach the same handler.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Collect(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)
	registerAPIRoutes(router, h)

	return router
}

func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/users", h.Users.ListUsers())
	r.GET("/users/favorites", h.Favorites.ListFavorites())

	r.GET("/people", h.Characters.ListCharacters())
	r.GET("/people/:id", h.Characters.GetCharacter())

	r.GET("/planets", h.Planets.ListPlanets())
	r.GET("/planets/:id", h.Planets.GetPlanet())

	favorites := r.Group("/favorite")
	favorites.POST("/people/:id", h.Favorites.AddCharacter())
	favorites.POST("/planet/:id", h.Favorites.AddPlanet())
}
