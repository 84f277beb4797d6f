package service

import (
	"context"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/repository"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/deppfellow/holocron/internal/sqlerr"
)

type UserService struct {
	server *server.Server
	users  *repository.UserRepository
}

func NewUserService(s *server.Server, users *repository.UserRepository) *UserService {
	return &UserService{server: s, users: users}
}

// ListActive returns the serialized active users.
func (s *UserService) ListActive(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.users.ListActive(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return model.SerializeAll[model.UserResponse](users), nil
}
