package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewRequestAllocatesPerCall(t *testing.T) {
	template := &IDRequest{ID: 9}

	first := newRequest(template)
	second := newRequest(template)

	assert.NotSame(t, template, first)
	assert.NotSame(t, first, second)
	assert.Zero(t, first.ID)
}

func TestSitemapLinks(t *testing.T) {
	routes := []*echo.Route{
		{Method: http.MethodGet, Path: "/people"},
		{Method: http.MethodGet, Path: "/people/:id"},
		{Method: http.MethodPost, Path: "/favorite/people/:id"},
		{Method: http.MethodGet, Path: "/users"},
		{Method: http.MethodGet, Path: "/static*"},
		{Method: http.MethodGet, Path: "/"},
		{Method: http.MethodGet, Path: "/users"},
	}

	assert.Equal(t, []string{"/", "/people", "/users"}, SitemapLinks(routes))
}
