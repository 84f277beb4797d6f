package handler

import (
	"github.com/deppfellow/holocron/internal/server"
	"github.com/deppfellow/holocron/internal/service"
)

type Handlers struct {
	Users      *UserHandler
	Characters *CharacterHandler
	Planets    *PlanetHandler
	Favorites  *FavoriteHandler
	Sitemap    *SitemapHandler
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Users:      NewUserHandler(s, services.Users),
		Characters: NewCharacterHandler(s, services.Characters),
		Planets:    NewPlanetHandler(s, services.Planets),
		Favorites:  NewFavoriteHandler(s, services.Favorites),
		Sitemap:    NewSitemapHandler(s),
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
	}
}
