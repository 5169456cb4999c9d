// Package job provides background job processing using Asynq.
//
// Tasks are enqueued with asynq.Client and processed by an asynq.Server,
// both backed by Redis.
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/employee-service/internal/config"
	"github.com/deppfellow/employee-service/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Mailer sends the emails job handlers are responsible for.
type Mailer interface {
	SendWelcomeEmail(to, name string) error
}

// enqueuer is satisfied by *asynq.Client.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// JobService holds the Asynq client (enqueue) and server (workers).
type JobService struct {
	client enqueuer
	server *asynq.Server
	mailer Mailer
	logger *zerolog.Logger
}

// NewJobService connects the client and worker server to cfg.Redis and
// sends email through Resend.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
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
			Logger:   &asynqLogger{logger: logger},
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		client: asynq.NewClient(redisOpt),
		server: server,
		mailer: email.NewClient(cfg.Notifications, logger),
		logger: logger,
	}
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	return mux
}

// Start launches the worker pool in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(j.Mux()); err != nil {
		return fmt.Errorf("failed to start job server: %w", err)
	}
	return nil
}

// Stop waits for running tasks and closes the enqueue connection.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	if j.server != nil {
		j.server.Shutdown()
	}
	if err := j.client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// EnqueueWelcome schedules the welcome email for a new employee.
func (j *JobService) EnqueueWelcome(ctx context.Context, employeeID int64, to, name string) error {
	task, err := NewWelcomeEmailTask(employeeID, to, name)
	if err != nil {
		return fmt.Errorf("failed to build welcome task: %w", err)
	}

	info, err := j.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue welcome task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int64("employee_id", employeeID).
		Msg("enqueued welcome email")
	return nil
}
