package handler

import (
	"net/http"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/deppfellow/holocron/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{Handler: NewHandler(s), users: users}
}

// ListUsers serves GET /users: every active user.
func (h *UserHandler) ListUsers() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.UserResponse, error) {
		return h.users.ListActive(c.Request().Context())
	}, http.StatusOK, &EmptyRequest{})
}
