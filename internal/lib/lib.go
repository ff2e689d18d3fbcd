// Package lib groups infrastructure that does not belong to a single
// layer: background jobs (asynq), the email client (Resend) and the
// periodic health checker.
package lib
