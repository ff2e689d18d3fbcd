package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/go-posts/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	postCachePrefix  = "posts"
	postListCacheKey = postCachePrefix + ":all"
)

// CachedPostStore is a read-through redis cache in front of another
// PostStore. Writes go to the wrapped store first and then drop the
// affected keys.
//
// Redis failures are logged and never fail the request; the wrapped
// store stays the source of truth.
type CachedPostStore struct {
	next   PostStore
	redis  redis.Cmdable
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewCachedPostStore(next PostStore, client redis.Cmdable, ttl time.Duration, logger *zerolog.Logger) *CachedPostStore {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &CachedPostStore{
		next:   next,
		redis:  client,
		ttl:    ttl,
		logger: logger,
	}
}

func postCacheKey(id int64) string {
	return fmt.Sprintf("%s:id:%d", postCachePrefix, id)
}

func (s *CachedPostStore) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	key := postCacheKey(id)

	var cached model.Post
	if s.get(ctx, key, &cached) {
		return &cached, nil
	}

	post, err := s.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.set(ctx, key, post)

	return post, nil
}

func (s *CachedPostStore) FindAll(ctx context.Context) ([]*model.Post, error) {
	var cached []*model.Post
	if s.get(ctx, postListCacheKey, &cached) {
		return cached, nil
	}

	posts, err := s.next.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.set(ctx, postListCacheKey, posts)

	return posts, nil
}

func (s *CachedPostStore) Save(ctx context.Context, post *model.Post) error {
	if err := s.next.Save(ctx, post); err != nil {
		return err
	}

	s.invalidate(ctx, post.ID)

	return nil
}

func (s *CachedPostStore) Delete(ctx context.Context, post *model.Post) error {
	if err := s.next.Delete(ctx, post); err != nil {
		return err
	}

	s.invalidate(ctx, post.ID)

	return nil
}

func (s *CachedPostStore) get(ctx context.Context, key string, dest any) bool {
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Str("key", key).Msg("post cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable post cache entry")
		return false
	}

	return true
}

func (s *CachedPostStore) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("post cache write failed")
	}
}

func (s *CachedPostStore) invalidate(ctx context.Context, id int64) {
	if err := s.redis.Del(ctx, postCacheKey(id), postListCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Int64("post_id", id).Msg("post cache invalidation failed")
		return
	}

	s.logger.Debug().Int64("post_id", id).Msg("post cache invalidated")
}
