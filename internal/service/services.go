package service

import (
	"github.com/deppfellow/holocron/internal/repository"
	"github.com/deppfellow/holocron/internal/server"
)

type Services struct {
	Users      *UserService
	Characters *CharacterService
	Planets    *PlanetService
	Favorites  *FavoriteService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Users:      NewUserService(s, repos.Users),
		Characters: NewCharacterService(s, repos.Characters),
		Planets:    NewPlanetService(s, repos.Planets),
		Favorites:  NewFavoriteService(s, repos),
	}
}
