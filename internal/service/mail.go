package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-posts/internal/config"
	"github.com/deppfellow/go-posts/internal/lib/job"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// Enqueuer pushes background tasks. *job.JobService implements it.
type Enqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// MailService hands mail to the job queue; delivery happens in the worker.
type MailService struct {
	cfg   config.MailConfig
	queue Enqueuer
}

func NewMailService(cfg config.MailConfig, queue Enqueuer) *MailService {
	return &MailService{cfg: cfg, queue: queue}
}

// SendExampleMail queues the configured example message for the
// configured example recipient.
func (s *MailService) SendExampleMail(ctx context.Context) error {
	task, err := job.NewSimpleEmailTask(s.cfg.ExampleRecipient, s.cfg.ExampleMessage)
	if err != nil {
		return fmt.Errorf("failed to build example mail task: %w", err)
	}

	info, err := s.queue.Enqueue(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue example mail: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("to", s.cfg.ExampleRecipient).
		Msg("example mail enqueued")

	return nil
}
