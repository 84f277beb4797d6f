package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/server"
)

type CharacterRepository struct {
	server *server.Server
}

func NewCharacterRepository(s *server.Server) *CharacterRepository {
	return &CharacterRepository{server: s}
}

func (r *CharacterRepository) List(ctx context.Context) ([]model.Character, error) {
	var characters []model.Character
	if err := r.server.DB.DB.WithContext(ctx).Order("id").Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

func (r *CharacterRepository) FindByID(ctx context.Context, id uint) (*model.Character, error) {
	var character model.Character
	if err := r.server.DB.DB.WithContext(ctx).First(&character, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get character by id=%d: %w", id, err)
	}
	return &character, nil
}
