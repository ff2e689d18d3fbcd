// Package middleware stores the global echo middleware and the global
// error handler: request ids, request-scoped logging, CORS, panic
// recovery, secure headers and New Relic tracing.
package middleware
