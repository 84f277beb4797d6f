package handler

import (
	"net/http"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/deppfellow/holocron/internal/service"
	"github.com/labstack/echo/v4"
)

type PlanetHandler struct {
	Handler
	planets *service.PlanetService
}

func NewPlanetHandler(s *server.Server, planets *service.PlanetService) *PlanetHandler {
	return &PlanetHandler{Handler: NewHandler(s), planets: planets}
}

// ListPlanets serves GET /planets.
func (h *PlanetHandler) ListPlanets() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.PlanetResponse, error) {
		return h.planets.List(c.Request().Context())
	}, http.StatusOK, &EmptyRequest{})
}

// GetPlanet serves GET /planets/:id.
func (h *PlanetHandler) GetPlanet() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (model.PlanetResponse, error) {
		return h.planets.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})
}
