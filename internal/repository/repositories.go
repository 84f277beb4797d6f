// Package repository handles all interactions with the database.
//
// Each repository owns the queries for one entity and speaks gorm; the
// service layer never builds queries itself. Errors are wrapped with the
// operation that failed and left for the service to classify.
package repository

import (
	"github.com/deppfellow/holocron/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users      *UserRepository
	Characters *CharacterRepository
	Planets    *PlanetRepository
	Favorites  *FavoriteRepository
}

// NewRepositories constructs the repository container over s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(s),
		Characters: NewCharacterRepository(s),
		Planets:    NewPlanetRepository(s),
		Favorites:  NewFavoriteRepository(s),
	}
}
