package handler

import (
	"net/http"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/deppfellow/holocron/internal/service"
	"github.com/labstack/echo/v4"
)

type CharacterHandler struct {
	Handler
	characters *service.CharacterService
}

func NewCharacterHandler(s *server.Server, characters *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{Handler: NewHandler(s), characters: characters}
}

// ListCharacters serves GET /people.
func (h *CharacterHandler) ListCharacters() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.CharacterResponse, error) {
		return h.characters.List(c.Request().Context())
	}, http.StatusOK, &EmptyRequest{})
}

// GetCharacter serves GET /people/:id.
func (h *CharacterHandler) GetCharacter() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (model.CharacterResponse, error) {
		return h.characters.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, &IDRequest{})
}
