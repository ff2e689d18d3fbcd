package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Mailer delivers the mail produced by job handlers.
type Mailer interface {
	SendSimpleEmail(to, message string) error
}

func (j *JobService) handleSimpleEmailTask(ctx context.Context, t *asynq.Task) error {
	var p SimpleEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal simple email payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "simple").
		Str("to", p.To).
		Msg("Processing simple email task")

	if err := j.mailer.SendSimpleEmail(p.To, p.Message); err != nil {
		j.logger.Error().
			Str("type", "simple").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send simple email")
		return err
	}

	j.logger.Info().
		Str("type", "simple").
		Str("to", p.To).
		Msg("Successfully sent simple email")

	return nil
}
