package service

import (
	"context"

	"github.com/deppfellow/go-posts/internal/model"
	"github.com/deppfellow/go-posts/internal/repository"
	"github.com/rs/zerolog"
)

// PostService implements the post use cases on top of a PostStore.
//
// Store errors are returned unchanged; a missing post surfaces as the
// store's not-found error and is mapped to 404 by the HTTP layer.
type PostService struct {
	posts repository.PostStore
}

func NewPostService(posts repository.PostStore) *PostService {
	return &PostService{posts: posts}
}

func (s *PostService) CreatePost(ctx context.Context, payload *model.CreatePostRequest) (*model.Post, error) {
	post := model.NewPost(payload.Title, payload.Description)
	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("post_id", post.ID).
		Msg("post created")

	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context) ([]*model.Post, error) {
	return s.posts.FindAll(ctx)
}

// UpdatePost replaces the title and description. ID and CreatedAt are
// kept from the stored post.
func (s *PostService) UpdatePost(ctx context.Context, payload *model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, payload.ID)
	if err != nil {
		return nil, err
	}

	post.Title = payload.Title
	post.Description = payload.Description

	if err := post.Validate(); err != nil {
		return nil, err
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("post_id", post.ID).
		Msg("post updated")

	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, post); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Int64("post_id", id).
		Msg("post deleted")

	return nil
}
