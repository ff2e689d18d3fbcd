package handler

import (
	"github.com/deppfellow/go-posts/internal/server"
	"github.com/deppfellow/go-posts/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Post    *PostHandler
	Default *DefaultHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Post:    NewPostHandler(s, services.Post),
		Default: NewDefaultHandler(s, services.Mail),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
