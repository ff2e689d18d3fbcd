package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/deppfellow/go-posts/internal/model"
	"github.com/deppfellow/go-posts/internal/sqlerr"
)

// MemoryPostStore keeps posts in process memory. It is used when the
// storage driver is "memory" and by tests.
//
// Callers never share a *model.Post with the store: every read returns a
// copy and Save stores one.
type MemoryPostStore struct {
	mu     sync.RWMutex
	posts  map[int64]model.Post
	nextID int64
}

func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{
		posts: make(map[int64]model.Post),
	}
}

func (s *MemoryPostStore) FindByID(_ context.Context, id int64) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, sqlerr.NotFound(postsTable)
	}

	return &post, nil
}

func (s *MemoryPostStore) FindAll(_ context.Context) ([]*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		post := p
		posts = append(posts, &post)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})

	return posts, nil
}

func (s *MemoryPostStore) Save(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !post.IsPersisted() {
		s.nextID++
		post.ID = s.nextID
		s.posts[post.ID] = *post
		return nil
	}

	existing, ok := s.posts[post.ID]
	if !ok {
		return sqlerr.NotFound(postsTable)
	}

	existing.Title = post.Title
	existing.Description = post.Description
	s.posts[post.ID] = existing

	return nil
}

func (s *MemoryPostStore) Delete(_ context.Context, post *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.ID]; !ok {
		return sqlerr.NotFound(postsTable)
	}

	delete(s.posts, post.ID)

	return nil
}
