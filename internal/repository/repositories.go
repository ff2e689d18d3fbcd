// Package repository handles all interactions with the post store.
//
// It contains the raw SQL queries and the alternative in-memory and
// cached stores, abstracting persistence away from the service layer.
package repository

import (
	"time"

	"github.com/deppfellow/go-posts/internal/config"
	"github.com/deppfellow/go-posts/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Post PostStore
}

// NewRepositories picks the post store for the configured storage driver
// and, when enabled, wraps it in the redis cache.
func NewRepositories(s *server.Server) *Repositories {
	var posts PostStore

	switch s.Config.Storage.Driver {
	case config.StorageDriverMemory:
		posts = NewMemoryPostStore()
	default:
		posts = NewPostRepository(s.DB.Pool)
	}

	if s.Config.Storage.CacheEnabled && s.Redis != nil {
		ttl := time.Duration(s.Config.Redis.CacheTTL) * time.Second
		posts = NewCachedPostStore(posts, s.Redis, ttl, s.Logger)
	}

	return &Repositories{
		Post: posts,
	}
}
