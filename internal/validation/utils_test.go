package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/deppfellow/go-posts/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
	Kind  string `json:"kind" validate:"omitempty,oneof=a b"`
	Count int    `json:"count" validate:"min=0,max=3"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return v
}()

func (r *sampleRequest) Validate() error {
	return validate.Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "window", Message: "must end after it starts"}}
}

type plainErrorRequest struct{}

func (r *plainErrorRequest) Validate() error {
	return errors.New("boom")
}

type httpErrorRequest struct{}

func (r *httpErrorRequest) Validate() error {
	return errs.NewValidationError([]errs.FieldError{{Field: "title", Error: "is required"}})
}

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func fieldMessages(e *errs.HTTPError) map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, fe := range e.Errors {
		out[fe.Field] = fe.Error
	}
	return out
}

func TestBindAndValidateSuccess(t *testing.T) {
	var req sampleRequest
	require.NoError(t, BindAndValidate(newContext(`{"name":"abc","count":2}`), &req))
	assert.Equal(t, "abc", req.Name)
	assert.Equal(t, 2, req.Count)
}

func TestBindAndValidateMessages(t *testing.T) {
	var req sampleRequest
	err := BindAndValidate(newContext(`{"name":"abcdefg","email":"nope","kind":"z","count":9}`), &req)

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.True(t, httpErr.Override)
	assert.Equal(t, map[string]string{
		"name":  "must not exceed 5 characters",
		"email": "must be a valid email address",
		"kind":  "must be one of: a b",
		"count": "must not exceed 3",
	}, fieldMessages(httpErr))
}

func TestBindAndValidateRequired(t *testing.T) {
	var req sampleRequest
	httpErr := requireHTTPError(t, BindAndValidate(newContext(`{}`), &req))
	assert.Equal(t, map[string]string{"name": "is required"}, fieldMessages(httpErr))

	httpErr = requireHTTPError(t, BindAndValidate(newContext(`{"name":"a"}`), &req))
	assert.Equal(t, map[string]string{"name": "must be at least 2 characters"}, fieldMessages(httpErr))
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	var req sampleRequest
	httpErr := requireHTTPError(t, BindAndValidate(newContext(`{"name":`), &req))
	assert.Equal(t, "BAD_REQUEST", httpErr.Code)
	assert.Empty(t, httpErr.Errors)
}

func TestValidateCustomErrors(t *testing.T) {
	httpErr := requireHTTPError(t, Validate(&customRequest{}))
	assert.Equal(t, map[string]string{"window": "must end after it starts"}, fieldMessages(httpErr))
}

func TestValidatePassesHTTPErrorsThrough(t *testing.T) {
	httpErr := requireHTTPError(t, Validate(&httpErrorRequest{}))
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.Len(t, httpErr.Errors, 1)
}

func TestValidatePlainError(t *testing.T) {
	httpErr := requireHTTPError(t, Validate(&plainErrorRequest{}))
	assert.Equal(t, "Validation failed: boom", httpErr.Message)
}
