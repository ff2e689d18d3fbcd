package model

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failedFields(t *testing.T, err error) map[string]string {
	t.Helper()

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)

	out := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func TestCreatePostRequestValidate(t *testing.T) {
	assert.NoError(t, (&CreatePostRequest{Title: "T", Description: "D"}).Validate())

	err := (&CreatePostRequest{Title: "  ", Description: ""}).Validate()
	assert.Equal(t, map[string]string{"title": "notblank", "description": "required"}, failedFields(t, err))
}

func TestPostIDRequestValidate(t *testing.T) {
	assert.NoError(t, (&PostIDRequest{ID: 1}).Validate())

	assert.Equal(t, map[string]string{"id": "required"}, failedFields(t, (&PostIDRequest{}).Validate()))
	assert.Equal(t, map[string]string{"id": "min"}, failedFields(t, (&PostIDRequest{ID: -1}).Validate()))
}

func TestUpdatePostRequestValidate(t *testing.T) {
	assert.NoError(t, (&UpdatePostRequest{ID: 1, Title: "T", Description: "D"}).Validate())

	err := (&UpdatePostRequest{ID: 1, Title: "T", Description: "\t"}).Validate()
	assert.Equal(t, map[string]string{"description": "notblank"}, failedFields(t, err))
}
