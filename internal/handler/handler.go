// Package handler is the HTTP layer.
//
// Handlers bind and validate requests with the validation package, call
// the service layer and map results to responses. Errors are returned to
// echo and rendered by the global error handler.
package handler
