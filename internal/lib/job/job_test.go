package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/holocron/internal/config"
	"github.com/deppfellow/holocron/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to   string
	data email.FavoriteAdded
	err  error
}

func (f *fakeMailer) SendFavoriteAddedEmail(_ context.Context, to string, data email.FavoriteAdded) error {
	f.to = to
	f.data = data
	return f.err
}

func newTestService(mailer FavoriteMailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: mailer, logger: &logger}
}

func TestNewFavoriteAddedTask(t *testing.T) {
	task, err := NewFavoriteAddedTask(FavoriteAddedPayload{FavoriteID: 4, To: "leia@example.com", Kind: "planet", Name: "Alderaan"})
	require.NoError(t, err)

	assert.Equal(t, TaskFavoriteAdded, task.Type())

	var p FavoriteAddedPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, "Alderaan", p.Name)
	assert.Equal(t, uint(4), p.FavoriteID)
}

func TestHandleFavoriteAddedTask(t *testing.T) {
	mailer := &fakeMailer{}
	j := newTestService(mailer)

	task, err := NewFavoriteAddedTask(FavoriteAddedPayload{To: "han@example.com", Kind: "character", Name: "Chewbacca"})
	require.NoError(t, err)

	require.NoError(t, j.handleFavoriteAddedTask(context.Background(), task))
	assert.Equal(t, "han@example.com", mailer.to)
	assert.Equal(t, email.FavoriteAdded{Kind: "character", Name: "Chewbacca"}, mailer.data)
}

func TestHandleFavoriteAddedTaskMailerFailureRetries(t *testing.T) {
	j := newTestService(&fakeMailer{err: errors.New("provider down")})

	task, err := NewFavoriteAddedTask(FavoriteAddedPayload{To: "han@example.com"})
	require.NoError(t, err)

	err = j.handleFavoriteAddedTask(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleFavoriteAddedTaskBadPayloadSkipsRetry(t *testing.T) {
	j := newTestService(&fakeMailer{})

	err := j.handleFavoriteAddedTask(context.Background(), asynq.NewTask(TaskFavoriteAdded, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleFavoriteAddedTaskWithoutMailer(t *testing.T) {
	j := newTestService(nil)

	task, err := NewFavoriteAddedTask(FavoriteAddedPayload{To: "han@example.com"})
	require.NoError(t, err)
	assert.NoError(t, j.handleFavoriteAddedTask(context.Background(), task))
}

func TestEnqueueFavoriteAddedUnreachableRedis(t *testing.T) {
	cfg := config.Default()
	cfg.Redis.Address = "127.0.0.1:1"
	logger := zerolog.Nop()

	j := NewJobService(&logger, cfg, nil)
	t.Cleanup(func() { _ = j.Client.Close() })

	start := time.Now()
	err := j.EnqueueFavoriteAdded(context.Background(), FavoriteAddedPayload{FavoriteID: 1, To: "luke@example.com", Kind: "character", Name: "Yoda"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), enqueueTimeout+time.Second)
}
