// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue: the API enqueues tasks with an
// asynq.Client and a worker server in the same process consumes them.
package job

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/holocron/internal/config"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// enqueueTimeout bounds how long a request waits on Redis to queue a task.
const enqueueTimeout = 2 * time.Second

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	mailer FavoriteMailer
	logger *zerolog.Logger
}

// NewJobService creates a JobService using the Redis address from cfg.
// mailer may be nil, in which case notification tasks are dropped.
func NewJobService(logger *zerolog.Logger, cfg *config.Config, mailer FavoriteMailer) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   asynqLogger{logger},
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		mailer: mailer,
		logger: logger,
	}
}

// Start registers task handlers and starts the worker server. It returns
// once the workers are running.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskFavoriteAdded, j.handleFavoriteAddedTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return fmt.Errorf("failed to start job server: %w", err)
	}
	return nil
}

// EnqueueFavoriteAdded queues the favorite-added notification.
func (j *JobService) EnqueueFavoriteAdded(ctx context.Context, p FavoriteAddedPayload) error {
	task, err := NewFavoriteAddedTask(p)
	if err != nil {
		return fmt.Errorf("failed to build favorite added task: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue favorite added task: %w", err)
	}

	j.logger.Debug().Str("task_id", info.ID).Str("queue", info.Queue).Msg("enqueued favorite added task")
	return nil
}

// Stop shuts the workers down and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// asynqLogger routes asynq's internal logging into zerolog.
type asynqLogger struct {
	log *zerolog.Logger
}

func (l asynqLogger) Debug(args ...any) { l.log.Debug().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Info(args ...any)  { l.log.Info().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Warn(args ...any)  { l.log.Warn().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Error(args ...any) { l.log.Error().Msg(fmt.Sprint(args...)) }
func (l asynqLogger) Fatal(args ...any) { l.log.Fatal().Msg(fmt.Sprint(args...)) }
