package router

import (
	"net/http"

	"github.com/deppfellow/go-posts/internal/handler"
	"github.com/deppfellow/go-posts/internal/model"
	"github.com/labstack/echo/v4"
)

func registerPostRoutes(r *echo.Echo, h *handler.Handlers) {
	posts := r.Group("/posts")

	posts.POST("", handler.Handle(
		h.Post.Handler,
		h.Post.CreatePost,
		http.StatusCreated,
		&model.CreatePostRequest{},
	))

	posts.GET("", handler.Handle(
		h.Post.Handler,
		h.Post.ListPosts,
		http.StatusOK,
		&model.ListPostsRequest{},
	))

	posts.GET("/:id", handler.Handle(
		h.Post.Handler,
		h.Post.GetPost,
		http.StatusOK,
		&model.PostIDRequest{},
	))

	posts.PUT("/:id", handler.Handle(
		h.Post.Handler,
		h.Post.UpdatePost,
		http.StatusOK,
		&model.UpdatePostRequest{},
	))

	posts.DELETE("/:id", handler.HandleNoContent(
		h.Post.Handler,
		h.Post.DeletePost,
		http.StatusNoContent,
		&model.PostIDRequest{},
	))
}

// registerDefaultRoutes registers the example endpoints.
func registerDefaultRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/mail", h.Default.Mail)
	r.GET("/hello/:name", h.Default.Hello)
}
