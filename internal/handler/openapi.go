package handler

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/deppfellow/holocron/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFS embed.FS

// StaticFS is the tree served under /static.
func StaticFS() fs.FS {
	return echo.MustSubFS(staticFS, "static")
}

type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves the API reference page, which loads
// /static/openapi.json.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := staticFS.ReadFile("static/openapi.html")
	if err != nil {
		return err
	}

	c.Response().Header().Set("Cache-Control", "no-cache")
	return c.HTMLBlob(http.StatusOK, page)
}
