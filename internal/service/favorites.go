package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/holocron/internal/errs"
	"github.com/deppfellow/holocron/internal/lib/job"
	"github.com/deppfellow/holocron/internal/model"
	"github.com/deppfellow/holocron/internal/repository"
	"github.com/deppfellow/holocron/internal/server"
	"github.com/deppfellow/holocron/internal/sqlerr"
	"github.com/rs/zerolog"
)

// CurrentUserID owns every favorite. There is no authentication, so all
// requests act as this user.
const CurrentUserID uint = 1

const (
	kindCharacter = "character"
	kindPlanet    = "planet"
)

type FavoriteService struct {
	server *server.Server
	repos  *repository.Repositories
}

func NewFavoriteService(s *server.Server, repos *repository.Repositories) *FavoriteService {
	return &FavoriteService{server: s, repos: repos}
}

// AddCharacter favorites a character for the current user.
func (s *FavoriteService) AddCharacter(ctx context.Context, characterID uint) (model.FavoriteResponse, error) {
	exists, err := s.repos.Favorites.ExistsForCharacter(ctx, CurrentUserID, characterID)
	if err != nil {
		return model.FavoriteResponse{}, sqlerr.HandleError(err)
	}
	if exists {
		return model.FavoriteResponse{}, errs.ErrFavoriteExists
	}

	return s.create(ctx, kindCharacter, &model.Favorite{UserID: CurrentUserID, CharacterID: &characterID})
}

// AddPlanet favorites a planet for the current user.
func (s *FavoriteService) AddPlanet(ctx context.Context, planetID uint) (model.FavoriteResponse, error) {
	exists, err := s.repos.Favorites.ExistsForPlanet(ctx, CurrentUserID, planetID)
	if err != nil {
		return model.FavoriteResponse{}, sqlerr.HandleError(err)
	}
	if exists {
		return model.FavoriteResponse{}, errs.ErrFavoriteExists
	}

	return s.create(ctx, kindPlanet, &model.Favorite{UserID: CurrentUserID, PlanetID: &planetID})
}

// List returns the current user's favorites.
func (s *FavoriteService) List(ctx context.Context) ([]model.FavoriteResponse, error) {
	favorites, err := s.repos.Favorites.ListByUser(ctx, CurrentUserID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return model.SerializeAll[model.FavoriteResponse](favorites), nil
}

// create inserts favorite. A unique violation means a concurrent request
// won the race after the existence check and is reported like any other
// duplicate.
func (s *FavoriteService) create(ctx context.Context, kind string, favorite *model.Favorite) (model.FavoriteResponse, error) {
	if err := s.repos.Favorites.Create(ctx, favorite); err != nil {
		switch sqlerr.Classify(err) {
		case sqlerr.UniqueViolation:
			return model.FavoriteResponse{}, errs.ErrFavoriteExists
		case sqlerr.ForeignKeyViolation:
			code := fmt.Sprintf("%s_NOT_FOUND", errs.MakeUpperCaseWithUnderscores(kind))
			return model.FavoriteResponse{}, errs.NewBadRequestError(
				fmt.Sprintf("The referenced %s does not exist", kind), true, &code, nil)
		default:
			return model.FavoriteResponse{}, sqlerr.HandleError(err)
		}
	}

	s.notify(ctx, kind, favorite)

	return favorite.Serialize(), nil
}

// notify queues the favorite-added email when background jobs run. It
// never fails the request.
func (s *FavoriteService) notify(ctx context.Context, kind string, favorite *model.Favorite) {
	if s.server.Job == nil {
		return
	}

	log := zerolog.Ctx(ctx).With().Uint("favorite_id", favorite.ID).Logger()

	user, err := s.repos.Users.FindByID(ctx, favorite.UserID)
	if err != nil {
		log.Warn().Err(err).Msg("skipping favorite notification, user lookup failed")
		return
	}

	var name string
	switch kind {
	case kindCharacter:
		character, err := s.repos.Characters.FindByID(ctx, *favorite.CharacterID)
		if err != nil {
			log.Warn().Err(err).Msg("skipping favorite notification, character lookup failed")
			return
		}
		name = character.Name
	case kindPlanet:
		planet, err := s.repos.Planets.FindByID(ctx, *favorite.PlanetID)
		if err != nil {
			log.Warn().Err(err).Msg("skipping favorite notification, planet lookup failed")
			return
		}
		name = planet.Name
	}

	err = s.server.Job.EnqueueFavoriteAdded(ctx, job.FavoriteAddedPayload{
		FavoriteID: favorite.ID,
		To:         user.Email,
		Kind:       kind,
		Name:       name,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to enqueue favorite notification")
	}
}
