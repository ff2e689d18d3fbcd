package handler

import (
	"github.com/deppfellow/go-posts/internal/model"
	"github.com/deppfellow/go-posts/internal/server"
	"github.com/deppfellow/go-posts/internal/service"
	"github.com/labstack/echo/v4"
)

type PostHandler struct {
	Handler
	postService *service.PostService
}

func NewPostHandler(s *server.Server, postService *service.PostService) *PostHandler {
	return &PostHandler{
		Handler:     NewHandler(s),
		postService: postService,
	}
}

func (h *PostHandler) CreatePost(c echo.Context, payload *model.CreatePostRequest) (model.PostResponse, error) {
	post, err := h.postService.CreatePost(c.Request().Context(), payload)
	if err != nil {
		return model.PostResponse{}, err
	}
	return model.NewPostResponse(post), nil
}

func (h *PostHandler) GetPost(c echo.Context, payload *model.PostIDRequest) (model.PostResponse, error) {
	post, err := h.postService.GetPost(c.Request().Context(), payload.ID)
	if err != nil {
		return model.PostResponse{}, err
	}
	return model.NewPostResponse(post), nil
}

func (h *PostHandler) ListPosts(c echo.Context, _ *model.ListPostsRequest) ([]model.PostResponse, error) {
	posts, err := h.postService.ListPosts(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return model.NewPostListResponse(posts), nil
}

func (h *PostHandler) UpdatePost(c echo.Context, payload *model.UpdatePostRequest) (model.PostResponse, error) {
	post, err := h.postService.UpdatePost(c.Request().Context(), payload)
	if err != nil {
		return model.PostResponse{}, err
	}
	return model.NewPostResponse(post), nil
}

func (h *PostHandler) DeletePost(c echo.Context, payload *model.PostIDRequest) error {
	return h.postService.DeletePost(c.Request().Context(), payload.ID)
}
