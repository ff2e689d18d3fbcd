package model

// PostResponse is the wire shape of a post. CreatedAt is truncated to the
// calendar date in UTC.
type PostResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// NewPostResponse serializes p.
func NewPostResponse(p *Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.UTC().Format(DateLayout),
	}
}

// NewPostListResponse serializes posts. The result is never nil so an
// empty list encodes as [] rather than null.
func NewPostListResponse(posts []*Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p))
	}
	return out
}
