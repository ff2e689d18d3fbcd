package model

import (
	"strings"
	"time"

	"github.com/deppfellow/go-posts/internal/errs"
)

// DateLayout is the calendar-date granularity used when a post is serialized.
const DateLayout = "2006-01-02"

// Post is a titled entry with a description.
//
// ID is zero until the post has been persisted and never changes
// afterwards. CreatedAt is fixed by NewPost. Only Title and Description are
// written by the update path.
type Post struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NewPost builds an unsaved post stamped with the current time.
func NewPost(title, description string) *Post {
	return &Post{
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsPersisted reports whether the store has assigned an id.
func (p *Post) IsPersisted() bool {
	return p.ID != 0
}

// Validate returns a 400 HTTPError listing every blank required field.
func (p *Post) Validate() error {
	var fieldErrors []errs.FieldError

	if strings.TrimSpace(p.Title) == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "title", Error: "is required"})
	}
	if strings.TrimSpace(p.Description) == "" {
		fieldErrors = append(fieldErrors, errs.FieldError{Field: "description", Error: "is required"})
	}

	if len(fieldErrors) > 0 {
		return errs.NewValidationError(fieldErrors)
	}
	return nil
}
