package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// Retrying cannot fix a malformed payload.
		return fmt.Errorf("failed to unmarshal welcome email payload: %v: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskWelcome).
		Int64("employee_id", p.EmployeeID).
		Logger()

	logger.Info().Msg("processing welcome email task")

	if err := j.mailer.SendWelcomeEmail(p.To, p.Name); err != nil {
		logger.Error().Err(err).Msg("failed to send welcome email")
		return err
	}

	logger.Info().Msg("sent welcome email")
	return nil
}
