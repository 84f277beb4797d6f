package service

import (
	"context"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/repository"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/deppfellow/holocron/internal/sqlerr"
)

type CharacterService struct {
	server     *server.Server
	characters *repository.CharacterRepository
}

func NewCharacterService(s *server.Server, characters *repository.CharacterRepository) *CharacterService {
	return &CharacterService{server: s, characters: characters}
}

func (s *CharacterService) List(ctx context.Context) ([]model.CharacterResponse, error) {
	characters, err := s.characters.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return model.SerializeAll[model.CharacterResponse](characters), nil
}

// Get returns one character or errs.ErrNotFound.
func (s *CharacterService) Get(ctx context.Context, id uint) (model.CharacterResponse, error) {
	character, err := s.characters.FindByID(ctx, id)
	if err != nil {
		return model.CharacterResponse{}, notFoundOr(err)
	}
	return character.Serialize(), nil
}
