// Package health runs dependency checks for the status endpoint and on a
// cron schedule in the background.
package health

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/deppfellow/go-posts/internal/config"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// CheckFunc probes one dependency. A nil error means healthy.
type CheckFunc func(ctx context.Context) error

type check struct {
	name     string
	fn       CheckFunc
	critical bool
}

// Result is the outcome of a single check.
type Result struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// Report aggregates every registered check.
//
// Status is unhealthy when a critical check failed and degraded when only
// optional ones did.
type Report struct {
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Environment string            `json:"environment"`
	Checks      map[string]Result `json:"checks"`
}

// Healthy reports whether the service can serve traffic.
func (r Report) Healthy() bool {
	return r.Status != StatusUnhealthy
}

type Checker struct {
	mu     sync.RWMutex
	checks []check

	cfg    config.HealthChecksConfig
	env    string
	nrApp  *newrelic.Application
	logger *zerolog.Logger
	cron   *cron.Cron
}

func NewChecker(cfg *config.ObservabilityConfig, logger *zerolog.Logger, nrApp *newrelic.Application) *Checker {
	return &Checker{
		cfg:    cfg.HealthChecks,
		env:    cfg.Environment,
		nrApp:  nrApp,
		logger: logger,
	}
}

// Register adds a named check. A failing critical check marks the whole
// service unhealthy.
func (c *Checker) Register(name string, fn CheckFunc, critical bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.checks = append(c.checks, check{name: name, fn: fn, critical: critical})
}

// Check runs every registered check, each bounded by the configured timeout.
func (c *Checker) Check(ctx context.Context) Report {
	return c.run(ctx, nil)
}

func (c *Checker) run(ctx context.Context, only []string) Report {
	c.mu.RLock()
	checks := slices.Clone(c.checks)
	c.mu.RUnlock()

	report := Report{
		Status:      StatusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: c.env,
		Checks:      make(map[string]Result, len(checks)),
	}

	for _, chk := range checks {
		if only != nil && !slices.Contains(only, chk.name) {
			continue
		}

		result := c.runOne(ctx, chk)
		report.Checks[chk.name] = result

		if result.Status == StatusHealthy {
			continue
		}
		if chk.critical {
			report.Status = StatusUnhealthy
		} else if report.Status == StatusHealthy {
			report.Status = StatusDegraded
		}
	}

	return report
}

func (c *Checker) runOne(ctx context.Context, chk check) Result {
	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	err := chk.fn(ctx)
	elapsed := time.Since(start)

	if err != nil {
		c.logger.Error().
			Err(err).
			Str("check", chk.name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		c.recordFailure(chk.name, elapsed, err)

		return Result{
			Status:       StatusUnhealthy,
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}
	}

	c.logger.Debug().
		Str("check", chk.name).
		Dur("response_time", elapsed).
		Msg("health check passed")

	return Result{
		Status:       StatusHealthy,
		ResponseTime: elapsed.String(),
	}
}

func (c *Checker) recordFailure(name string, elapsed time.Duration, err error) {
	if c.nrApp == nil {
		return
	}

	c.nrApp.RecordCustomEvent("HealthCheckError", map[string]interface{}{
		"check_type":       name,
		"operation":        "health_check",
		"error_type":       name + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})
}

// StartPeriodic schedules the configured checks every Interval. It is a
// no-op when periodic checks are disabled.
func (c *Checker) StartPeriodic() error {
	if !c.cfg.Enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cron != nil {
		return nil
	}

	scheduler := cron.New()
	spec := fmt.Sprintf("@every %s", c.cfg.Interval)

	_, err := scheduler.AddFunc(spec, func() {
		report := c.run(context.Background(), c.cfg.Checks)
		if !report.Healthy() {
			c.logger.Warn().Str("status", report.Status).Msg("periodic health check failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule health checks: %w", err)
	}

	scheduler.Start()
	c.cron = scheduler

	c.logger.Info().
		Dur("interval", c.cfg.Interval).
		Strs("checks", c.cfg.Checks).
		Msg("periodic health checks started")

	return nil
}

// Stop halts the schedule and waits for a running check to finish.
func (c *Checker) Stop() {
	c.mu.Lock()
	scheduler := c.cron
	c.cron = nil
	c.mu.Unlock()

	if scheduler == nil {
		return
	}

	<-scheduler.Stop().Done()
}
