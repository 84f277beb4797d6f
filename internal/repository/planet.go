package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/server"
)

type PlanetRepository struct {
	server *server.Server
}

func NewPlanetRepository(s *server.Server) *PlanetRepository {
	return &PlanetRepository{server: s}
}

func (r *PlanetRepository) List(ctx context.Context) ([]model.Planet, error) {
	var planets []model.Planet
	if err := r.server.DB.DB.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("failed to list planets: %w", err)
	}
	return planets, nil
}

func (r *PlanetRepository) FindByID(ctx context.Context, id uint) (*model.Planet, error) {
	var planet model.Planet
	if err := r.server.DB.DB.WithContext(ctx).First(&planet, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get planet by id=%d: %w", id, err)
	}
	return &planet, nil
}
