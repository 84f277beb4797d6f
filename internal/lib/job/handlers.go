package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/holocron/internal/lib/email"
	"github.com/hibiken/asynq"
)

// FavoriteMailer sends the favorite-added notification.
type FavoriteMailer interface {
	SendFavoriteAddedEmail(ctx context.Context, to string, data email.FavoriteAdded) error
}

// handleFavoriteAddedTask decodes the payload and sends the notification.
// A returned error makes asynq schedule a retry.
func (j *JobService) handleFavoriteAddedTask(ctx context.Context, t *asynq.Task) error {
	var p FavoriteAddedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Malformed payloads never succeed, so skip the retries.
		return fmt.Errorf("failed to unmarshal favorite added payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskFavoriteAdded).
		Uint("favorite_id", p.FavoriteID).
		Logger()

	if j.mailer == nil {
		log.Debug().Msg("email disabled, dropping favorite notification")
		return nil
	}

	if err := j.mailer.SendFavoriteAddedEmail(ctx, p.To, email.FavoriteAdded{Kind: p.Kind, Name: p.Name}); err != nil {
		log.Error().Err(err).Msg("failed to send favorite added email")
		return err
	}

	log.Info().Msg("sent favorite added email")
	return nil
}
