package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to      string
	message string
	err     error
}

func (m *fakeMailer) SendSimpleEmail(to, message string) error {
	m.to = to
	m.message = message
	return m.err
}

func newTestJobService(mailer Mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: mailer, logger: &logger}
}

func TestNewSimpleEmailTask(t *testing.T) {
	task, err := NewSimpleEmailTask("john@doe.com", "Hello John")
	require.NoError(t, err)

	assert.Equal(t, TaskSimpleEmail, task.Type())

	var payload SimpleEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, SimpleEmailPayload{To: "john@doe.com", Message: "Hello John"}, payload)
}

func TestHandleSimpleEmailTask(t *testing.T) {
	mailer := &fakeMailer{}
	j := newTestJobService(mailer)

	task, err := NewSimpleEmailTask("john@doe.com", "Hello John")
	require.NoError(t, err)

	require.NoError(t, j.handleSimpleEmailTask(context.Background(), task))
	assert.Equal(t, "john@doe.com", mailer.to)
	assert.Equal(t, "Hello John", mailer.message)
}

func TestHandleSimpleEmailTaskMailerError(t *testing.T) {
	sendErr := errors.New("provider down")
	j := newTestJobService(&fakeMailer{err: sendErr})

	task, err := NewSimpleEmailTask("john@doe.com", "Hello John")
	require.NoError(t, err)

	assert.ErrorIs(t, j.handleSimpleEmailTask(context.Background(), task), sendErr)
}

func TestHandleSimpleEmailTaskBadPayload(t *testing.T) {
	mailer := &fakeMailer{}
	j := newTestJobService(mailer)

	err := j.handleSimpleEmailTask(context.Background(), asynq.NewTask(TaskSimpleEmail, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, mailer.to)
}
