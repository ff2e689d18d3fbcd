package model

import (
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/go-posts/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	before := time.Now().UTC()
	post := NewPost("T", "D")

	assert.Zero(t, post.ID)
	assert.False(t, post.IsPersisted())
	assert.Equal(t, "T", post.Title)
	assert.Equal(t, "D", post.Description)
	assert.Equal(t, time.UTC, post.CreatedAt.Location())
	assert.False(t, post.CreatedAt.Before(before.Truncate(time.Second)))
}

func TestPostValidate(t *testing.T) {
	assert.NoError(t, NewPost("T", "D").Validate())

	err := NewPost(" ", "").Validate()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, []errs.FieldError{
		{Field: "title", Error: "is required"},
		{Field: "description", Error: "is required"},
	}, httpErr.Errors)
}

func TestNewPostResponse(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	post := &Post{
		ID:          3,
		Title:       "T",
		Description: "D",
		CreatedAt:   time.Date(2024, 5, 2, 6, 0, 0, 0, loc),
	}

	assert.Equal(t, PostResponse{
		ID:          3,
		Title:       "T",
		Description: "D",
		CreatedAt:   "2024-05-01",
	}, NewPostResponse(post))
}

func TestNewPostListResponseNeverNil(t *testing.T) {
	list := NewPostListResponse(nil)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
