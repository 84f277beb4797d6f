package service

import (
	"context"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/repository"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/deppfellow/holocron/internal/sqlerr"
)

type PlanetService struct {
	server  *server.Server
	planets *repository.PlanetRepository
}

func NewPlanetService(s *server.Server, planets *repository.PlanetRepository) *PlanetService {
	return &PlanetService{server: s, planets: planets}
}

func (s *PlanetService) List(ctx context.Context) ([]model.PlanetResponse, error) {
	planets, err := s.planets.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return model.SerializeAll[model.PlanetResponse](planets), nil
}

// Get returns one planet or errs.ErrNotFound.
func (s *PlanetService) Get(ctx context.Context, id uint) (model.PlanetResponse, error) {
	planet, err := s.planets.FindByID(ctx, id)
	if err != nil {
		return model.PlanetResponse{}, notFoundOr(err)
	}
	return planet.Serialize(), nil
}
