package handler

import (
	"net/http"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/deppfellow/holocron/internal/service"
	"github.com/labstack/echo/v4"
)

type FavoriteHandler struct {
	Handler
	favorites *service.FavoriteService
}

func NewFavoriteHandler(s *server.Server, favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Handler: NewHandler(s), favorites: favorites}
}

// AddCharacter serves POST /favorite/people/:id.
func (h *FavoriteHandler) AddCharacter() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (model.FavoriteResponse, error) {
		return h.favorites.AddCharacter(c.Request().Context(), req.ID)
	}, http.StatusCreated, &IDRequest{})
}

// AddPlanet serves POST /favorite/planet/:id.
func (h *FavoriteHandler) AddPlanet() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (model.FavoriteResponse, error) {
		return h.favorites.AddPlanet(c.Request().Context(), req.ID)
	}, http.StatusCreated, &IDRequest{})
}

// ListFavorites serves GET /users/favorites.
func (h *FavoriteHandler) ListFavorites() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.FavoriteResponse, error) {
		return h.favorites.List(c.Request().Context())
	}, http.StatusOK, &EmptyRequest{})
}
