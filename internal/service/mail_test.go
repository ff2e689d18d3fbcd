package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/go-posts/internal/config"
	"github.com/deppfellow/go-posts/internal/lib/job"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingQueue struct {
	tasks []*asynq.Task
	err   error
}

func (q *recordingQueue) Enqueue(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: "default", Type: task.Type()}, nil
}

func TestSendExampleMail(t *testing.T) {
	queue := &recordingQueue{}
	svc := NewMailService(config.DefaultConfig().Mail, queue)

	require.NoError(t, svc.SendExampleMail(context.Background()))
	require.Len(t, queue.tasks, 1)

	task := queue.tasks[0]
	assert.Equal(t, job.TaskSimpleEmail, task.Type())

	var payload job.SimpleEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "john@doe.com", payload.To)
	assert.Equal(t, "Hello John", payload.Message)
}

func TestSendExampleMailEnqueueError(t *testing.T) {
	queue := &recordingQueue{err: errors.New("redis unavailable")}
	svc := NewMailService(config.DefaultConfig().Mail, queue)

	err := svc.SendExampleMail(context.Background())
	assert.ErrorContains(t, err, "redis unavailable")
}
