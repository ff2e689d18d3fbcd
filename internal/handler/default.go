package handler

import (
	"net/http"

	"github.com/deppfellow/go-posts/internal/server"
	"github.com/deppfellow/go-posts/internal/service"
	"github.com/labstack/echo/v4"
)

// DefaultHandler serves the example endpoints that sit outside the post
// resource.
type DefaultHandler struct {
	Handler
	mailService *service.MailService
}

func NewDefaultHandler(s *server.Server, mailService *service.MailService) *DefaultHandler {
	return &DefaultHandler{
		Handler:     NewHandler(s),
		mailService: mailService,
	}
}

// Mail queues the example mail and answers with a plain "Ok".
func (h *DefaultHandler) Mail(c echo.Context) error {
	if err := h.mailService.SendExampleMail(c.Request().Context()); err != nil {
		return err
	}
	return c.String(http.StatusOK, "Ok")
}

// Hello renders the greeting page for the :name path segment.
func (h *DefaultHandler) Hello(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", map[string]string{
		"Name": c.Param("name"),
	})
}
