package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskFavoriteAdded is the job type name stored in Redis.
	TaskFavoriteAdded = "email:favorite_added"
)

// FavoriteAddedPayload is the JSON payload of the favorite-added task.
// It carries everything the worker needs, so processing never reads the
// database.
type FavoriteAddedPayload struct {
	FavoriteID uint   `json:"favorite_id"`
	To         string `json:"to"`
	Kind       string `json:"kind"`
	Name       string `json:"name"`
}

// NewFavoriteAddedTask builds the task that mails a user about a new
// favorite. Notifications are not urgent, so it goes to the low queue.
func NewFavoriteAddedTask(p FavoriteAddedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskFavoriteAdded,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
