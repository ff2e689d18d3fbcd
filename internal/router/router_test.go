package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/go-posts/internal/config"
	"github.com/deppfellow/go-posts/internal/errs"
	"github.com/deppfellow/go-posts/internal/handler"
	"github.com/deppfellow/go-posts/internal/lib/health"
	"github.com/deppfellow/go-posts/internal/lib/job"
	"github.com/deppfellow/go-posts/internal/model"
	"github.com/deppfellow/go-posts/internal/repository"
	"github.com/deppfellow/go-posts/internal/router"
	"github.com/deppfellow/go-posts/internal/server"
	"github.com/deppfellow/go-posts/internal/service"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	tasks []*asynq.Task
	err   error
}

func (q *fakeQueue) Enqueue(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.err != nil {
		return nil, q.err
	}
	q.tasks = append(q.tasks, task)
	return &asynq.TaskInfo{ID: "1", Queue: "default", Type: task.Type()}, nil
}

type testApp struct {
	echo  *echo.Echo
	queue *fakeQueue
	posts *repository.MemoryPostStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Storage.Driver = config.StorageDriverMemory
	logger := zerolog.Nop()

	s := &server.Server{
		Config: cfg,
		Logger: &logger,
		Health: health.NewChecker(cfg.Observability, &logger, nil),
	}

	posts := repository.NewMemoryPostStore()
	queue := &fakeQueue{}
	services := &service.Services{
		Post: service.NewPostService(posts),
		Mail: service.NewMailService(cfg.Mail, queue),
	}

	return &testApp{
		echo:  router.NewRouter(s, handler.NewHandlers(s, services)),
		queue: queue,
		posts: posts,
	}
}

func (a *testApp) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func (a *testApp) createPost(t *testing.T, title, description string) model.PostResponse {
	t.Helper()

	body, err := json.Marshal(map[string]string{"title": title, "description": description})
	require.NoError(t, err)

	rec := a.do(t, http.MethodPost, "/posts", string(body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[model.PostResponse](t, rec)
}

func today() string {
	return time.Now().UTC().Format(model.DateLayout)
}

func TestCreateThenGet(t *testing.T) {
	app := newTestApp(t)

	created := app.createPost(t, "T", "D")
	assert.Positive(t, created.ID)
	assert.Equal(t, "T", created.Title)
	assert.Equal(t, "D", created.Description)

	rec := app.do(t, http.MethodGet, "/posts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get(echo.HeaderContentType))

	got := decode[map[string]any](t, rec)
	assert.Equal(t, map[string]any{
		"id":          float64(1),
		"title":       "T",
		"description": "D",
		"createdAt":   today(),
	}, got)
}

func TestCreatedAtFormat(t *testing.T) {
	app := newTestApp(t)

	created := app.createPost(t, "T", "D")

	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, created.CreatedAt)
	assert.Equal(t, today(), created.CreatedAt)
}

func TestListPosts(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	first := app.createPost(t, "T", "D")
	second := app.createPost(t, "T2", "D2")

	rec = app.do(t, http.MethodGet, "/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[[]model.PostResponse](t, rec)
	assert.Equal(t, []model.PostResponse{first, second}, list)
}

func TestListPostsAfterDelete(t *testing.T) {
	app := newTestApp(t)

	created := app.createPost(t, "T", "D")

	rec := app.do(t, http.MethodDelete, "/posts/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = app.do(t, http.MethodGet, "/posts", "")
	list := decode[[]model.PostResponse](t, rec)
	assert.NotContains(t, list, created)
	assert.Empty(t, list)
}

func TestUpdatePost(t *testing.T) {
	app := newTestApp(t)

	created := app.createPost(t, "T", "D")

	rec := app.do(t, http.MethodPut, "/posts/1", `{"title":"T2","description":"D2"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decode[model.PostResponse](t, rec)
	assert.Equal(t, model.PostResponse{
		ID:          created.ID,
		Title:       "T2",
		Description: "D2",
		CreatedAt:   created.CreatedAt,
	}, updated)

	rec = app.do(t, http.MethodGet, "/posts/1", "")
	assert.Equal(t, updated, decode[model.PostResponse](t, rec))
}

func TestUpdateIgnoresBodyID(t *testing.T) {
	app := newTestApp(t)

	app.createPost(t, "T", "D")

	rec := app.do(t, http.MethodPut, "/posts/1", `{"id":99,"title":"T2","description":"D2"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(1), decode[model.PostResponse](t, rec).ID)

	rec = app.do(t, http.MethodGet, "/posts/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteThenGet(t *testing.T) {
	app := newTestApp(t)

	app.createPost(t, "T", "D")

	rec := app.do(t, http.MethodDelete, "/posts/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(t, http.MethodGet, "/posts/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownID(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		method string
		body   string
	}{
		{method: http.MethodGet},
		{method: http.MethodPut, body: `{"title":"T","description":"D"}`},
		{method: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := app.do(t, tt.method, "/posts/999", tt.body)
			require.Equal(t, http.StatusNotFound, rec.Code)

			body := decode[errs.HTTPError](t, rec)
			assert.Equal(t, "NOT_FOUND", body.Code)
			assert.Equal(t, "Post not found", body.Message)
			assert.Equal(t, http.StatusNotFound, body.Status)
		})
	}

	rec := app.do(t, http.MethodGet, "/posts", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInvalidID(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/posts/abc", "/posts/0", "/posts/-3"} {
		t.Run(target, func(t *testing.T) {
			rec := app.do(t, http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			rec = app.do(t, http.MethodDelete, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{name: "missing title", body: `{"description":"D"}`, fields: []string{"title"}},
		{name: "null description", body: `{"title":"T","description":null}`, fields: []string{"description"}},
		{name: "blank title", body: `{"title":"   ","description":"D"}`, fields: []string{"title"}},
		{name: "empty object", body: `{}`, fields: []string{"title", "description"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			rec := app.do(t, http.MethodPost, "/posts", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			body := decode[errs.HTTPError](t, rec)
			assert.Equal(t, "BAD_REQUEST", body.Code)

			var fields []string
			for _, fe := range body.Errors {
				fields = append(fields, fe.Field)
			}
			assert.ElementsMatch(t, tt.fields, fields)

			list := decode[[]model.PostResponse](t, app.do(t, http.MethodGet, "/posts", ""))
			assert.Empty(t, list)
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/posts", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	app.createPost(t, "T", "D")

	rec = app.do(t, http.MethodPut, "/posts/1", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRejectsBlankFields(t *testing.T) {
	app := newTestApp(t)

	created := app.createPost(t, "T", "D")

	rec := app.do(t, http.MethodPut, "/posts/1", `{"title":"","description":"D2"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodGet, "/posts/1", "")
	assert.Equal(t, created, decode[model.PostResponse](t, rec))
}

func TestMail(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/mail", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ok", rec.Body.String())

	require.Len(t, app.queue.tasks, 1)
	assert.Equal(t, job.TaskSimpleEmail, app.queue.tasks[0].Type())

	var payload job.SimpleEmailPayload
	require.NoError(t, json.Unmarshal(app.queue.tasks[0].Payload(), &payload))
	assert.Equal(t, job.SimpleEmailPayload{To: "john@doe.com", Message: "Hello John"}, payload)
}

func TestMailQueueFailure(t *testing.T) {
	app := newTestApp(t)
	app.queue.err = errors.New("redis unavailable")

	rec := app.do(t, http.MethodGet, "/mail", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decode[errs.HTTPError](t, rec)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
	assert.NotContains(t, rec.Body.String(), "redis unavailable")
}

func TestHello(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/hello/Ann", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "Hello Ann!")
}

func TestStatus(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	report := decode[health.Report](t, rec)
	assert.Equal(t, health.StatusHealthy, report.Status)
	assert.Equal(t, "development", report.Environment)
}

func TestDocs(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/docs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")

	rec = app.do(t, http.MethodGet, "/static/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)

	doc := decode[map[string]any](t, rec)
	assert.Contains(t, doc["paths"], "/posts/{id}")
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decode[errs.HTTPError](t, rec)
	assert.Equal(t, "Route not found", body.Message)
}

func TestRequestIDHeader(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/posts", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
