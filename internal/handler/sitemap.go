package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strings"

	"github.com/deppfellow/holocron/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed templates/sitemap.html
var sitemapFS embed.FS

var sitemapTemplate = template.Must(template.ParseFS(sitemapFS, "templates/sitemap.html"))

type SitemapHandler struct {
	Handler
}

func NewSitemapHandler(s *server.Server) *SitemapHandler {
	return &SitemapHandler{Handler: NewHandler(s)}
}

// Sitemap serves GET / with a page linking every parameterless GET route.
func (h *SitemapHandler) Sitemap() echo.HandlerFunc {
	return HandleHTML(h.Handler, func(c echo.Context, _ *EmptyRequest) (string, error) {
		var body bytes.Buffer
		if err := sitemapTemplate.Execute(&body, SitemapLinks(c.Echo().Routes())); err != nil {
			return "", fmt.Errorf("failed to render sitemap: %w", err)
		}
		return body.String(), nil
	}, http.StatusOK, &EmptyRequest{})
}

// SitemapLinks returns the sorted, unique paths of GET routes that take no
// path parameters.
func SitemapLinks(routes []*echo.Route) []string {
	links := make([]string, 0, len(routes))
	for _, r := range routes {
		if r.Method != http.MethodGet || strings.ContainsAny(r.Path, ":*") {
			continue
		}
		links = append(links, r.Path)
	}
	slices.Sort(links)
	return slices.Compact(links)
}
