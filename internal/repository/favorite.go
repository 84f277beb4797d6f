package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/server"
)

type FavoriteRepository struct {
	server *server.Server
}

func NewFavoriteRepository(s *server.Server) *FavoriteRepository {
	return &FavoriteRepository{server: s}
}

// ExistsForCharacter reports whether userID already favorited characterID.
func (r *FavoriteRepository) ExistsForCharacter(ctx context.Context, userID, characterID uint) (bool, error) {
	return r.exists(ctx, "character_id", userID, characterID)
}

// ExistsForPlanet reports whether userID already favorited planetID.
func (r *FavoriteRepository) ExistsForPlanet(ctx context.Context, userID, planetID uint) (bool, error) {
	return r.exists(ctx, "planet_id", userID, planetID)
}

func (r *FavoriteRepository) exists(ctx context.Context, column string, userID, targetID uint) (bool, error) {
	var count int64
	err := r.server.DB.DB.WithContext(ctx).
		Model(&model.Favorite{}).
		Where("user_id = ? AND "+column+" = ?", userID, targetID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite user_id=%d %s=%d: %w", userID, column, targetID, err)
	}
	return count > 0, nil
}

// Create inserts favorite and fills in its id and created_at.
func (r *FavoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	if err := r.server.DB.DB.WithContext(ctx).Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to create favorite for user_id=%d: %w", favorite.UserID, err)
	}
	return nil
}

// ListByUser returns the favorites of userID in insertion order.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.server.DB.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites for user_id=%d: %w", userID, err)
	}
	return favorites, nil
}
