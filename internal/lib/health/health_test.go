package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/go-posts/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()

	cfg := config.DefaultObservabilityConfig()
	cfg.HealthChecks.Timeout = time.Second
	logger := zerolog.Nop()

	return NewChecker(cfg, &logger, nil)
}

func ok(context.Context) error { return nil }

func failing(context.Context) error { return errors.New("connection refused") }

func TestCheckHealthy(t *testing.T) {
	c := newTestChecker(t)
	c.Register("database", ok, true)
	c.Register("redis", ok, false)

	report := c.Check(context.Background())

	assert.Equal(t, StatusHealthy, report.Status)
	assert.True(t, report.Healthy())
	assert.Equal(t, "development", report.Environment)
	require.Len(t, report.Checks, 2)
	assert.Equal(t, StatusHealthy, report.Checks["database"].Status)
	assert.Empty(t, report.Checks["database"].Error)
}

func TestCheckOptionalFailureDegrades(t *testing.T) {
	c := newTestChecker(t)
	c.Register("database", ok, true)
	c.Register("redis", failing, false)

	report := c.Check(context.Background())

	assert.Equal(t, StatusDegraded, report.Status)
	assert.True(t, report.Healthy())
	assert.Equal(t, "connection refused", report.Checks["redis"].Error)
}

func TestCheckCriticalFailure(t *testing.T) {
	c := newTestChecker(t)
	c.Register("database", failing, true)
	c.Register("redis", failing, false)

	report := c.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, report.Status)
	assert.False(t, report.Healthy())
}

func TestCheckHonoursTimeout(t *testing.T) {
	c := newTestChecker(t)
	c.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}, true)

	report := c.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, report.Status)
	assert.Equal(t, context.DeadlineExceeded.Error(), report.Checks["slow"].Error)
}

func TestRunFiltersByName(t *testing.T) {
	c := newTestChecker(t)
	c.Register("database", ok, true)
	c.Register("redis", failing, false)

	report := c.run(context.Background(), []string{"database"})

	assert.Equal(t, StatusHealthy, report.Status)
	assert.Len(t, report.Checks, 1)
}

func TestStartPeriodicDisabled(t *testing.T) {
	c := newTestChecker(t)
	c.cfg.Enabled = false

	require.NoError(t, c.StartPeriodic())
	assert.Nil(t, c.cron)
	c.Stop()
}

func TestStartPeriodicSchedules(t *testing.T) {
	c := newTestChecker(t)
	c.cfg.Interval = time.Second

	calls := make(chan struct{}, 4)
	c.Register("database", func(context.Context) error {
		select {
		case calls <- struct{}{}:
		default:
		}
		return nil
	}, true)

	require.NoError(t, c.StartPeriodic())
	defer c.Stop()

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("periodic health check did not run")
	}
}
