package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

// newValidator reports fields by their wire name (json, then path param)
// and knows the notblank rule.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"required,notblank"`
}

func (r *CreatePostRequest) Validate() error {
	return validate.Struct(r)
}

// PostIDRequest carries the numeric id of GET and DELETE /posts/:id.
type PostIDRequest struct {
	ID int64 `json:"-" param:"id" validate:"required,min=1"`
}

func (r *PostIDRequest) Validate() error {
	return validate.Struct(r)
}

// UpdatePostRequest is PUT /posts/:id. Both fields are replaced; an id in
// the body is ignored.
type UpdatePostRequest struct {
	ID          int64  `json:"-" param:"id" validate:"required,min=1"`
	Title       string `json:"title" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"required,notblank"`
}

func (r *UpdatePostRequest) Validate() error {
	return validate.Struct(r)
}

// ListPostsRequest has no input; it exists so GET /posts runs through the
// same handler pipeline as the other routes.
type ListPostsRequest struct{}

func (r *ListPostsRequest) Validate() error {
	return nil
}
