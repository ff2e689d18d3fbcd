package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskSimpleEmail is the task type name stored in Redis.
	TaskSimpleEmail = "email:simple"
)

// SimpleEmailPayload is the JSON payload of a TaskSimpleEmail task.
type SimpleEmailPayload struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// NewSimpleEmailTask builds the task that mails message to a single
// recipient. It is retried up to 3 times on the default queue.
func NewSimpleEmailTask(to, message string) (*asynq.Task, error) {
	payload, err := json.Marshal(SimpleEmailPayload{
		To:      to,
		Message: message,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskSimpleEmail,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
