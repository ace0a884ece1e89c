package todo_test

import (
	otelMocks "chore/infras/otel/mocks"
	"chore/internal/domains/todo/mocks"
	"chore/internal/domains/todo/model/dto"
	"chore/internal/handlers/todo"
	"chore/shared/constant"
	"chore/shared/failure"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const owner int64 = 7

func asCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, owner)
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, "alice")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func setup(t *testing.T) (*mocks.MockTodoService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockTodoService(ctrl)
	handler := todo.New(service, otelMocks.NewOtel())

	r := chi.NewRouter()
	r.Use(asCaller)
	handler.Router(r)

	return service, r
}

func form(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

	return req
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func sample(id int64, title string) dto.TodoResponse {
	return dto.TodoResponse{
		ID:      id,
		Title:   title,
		Memo:    "memo for " + title,
		Created: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
	}
}

func TestCurrentTodos(t *testing.T) {
	service, handler := setup(t)
	service.EXPECT().ListOpen(gomock.Any(), owner).Return([]dto.TodoResponse{sample(1, "Buy milk"), sample(2, "Walk dog")}, nil)

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/current", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Buy milk")
	assert.Contains(t, rec.Body.String(), `href="/todo/2"`)
	assert.Contains(t, rec.Body.String(), "Logout alice")
}

func TestCurrentTodosEmpty(t *testing.T) {
	service, handler := setup(t)
	service.EXPECT().ListOpen(gomock.Any(), owner).Return([]dto.TodoResponse{}, nil)

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/current", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/create"`)
}

func TestCurrentTodosStorageError(t *testing.T) {
	service, handler := setup(t)
	service.EXPECT().ListOpen(gomock.Any(), owner).Return(nil, errors.New("connection reset"))

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/current", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.MessageSomethingWentWrong)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestCompletedTodos(t *testing.T) {
	done := sample(3, "Pay rent")
	at := time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)
	done.DateCompleted = &at

	service, handler := setup(t)
	service.EXPECT().ListCompleted(gomock.Any(), owner).Return([]dto.TodoResponse{done}, nil)

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/completed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pay rent")
	assert.Contains(t, rec.Body.String(), `href="/completed/3"`)
}

func TestCreateForm(t *testing.T) {
	_, handler := setup(t)

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/create", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/create"`)
}

func TestCreateTodo(t *testing.T) {
	service, handler := setup(t)
	service.EXPECT().
		Create(gomock.Any(), owner, dto.CreateTodoRequest{Title: "Buy milk", Memo: "2 litres", Important: true}).
		Return(sample(10, "Buy milk"), nil)

	rec := serve(handler, form(http.MethodPost, "/create", url.Values{
		"title":     {"Buy milk"},
		"memo":      {"2 litres"},
		"important": {"on"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/current", rec.Header().Get("Location"))
}

func TestCreateTodoRejected(t *testing.T) {
	service, handler := setup(t)
	service.EXPECT().
		Create(gomock.Any(), owner, dto.CreateTodoRequest{Title: "", Memo: "keep me"}).
		Return(dto.TodoResponse{}, failure.BadRequestFromString("title is required"))

	rec := serve(handler, form(http.MethodPost, "/create", url.Values{"title": {""}, "memo": {"keep me"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.MessageInvalidValues)
	assert.Contains(t, rec.Body.String(), "title is required")
	assert.Contains(t, rec.Body.String(), "keep me")
}

func TestViewTodo(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(s *mocks.MockTodoService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "owned todo",
			path: "/todo/5",
			setup: func(s *mocks.MockTodoService) {
				s.EXPECT().Get(gomock.Any(), owner, int64(5)).Return(sample(5, "Buy milk"), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `action="/todo/5/complete"`,
		},
		{
			name: "unknown or foreign todo",
			path: "/todo/6",
			setup: func(s *mocks.MockTodoService) {
				s.EXPECT().Get(gomock.Any(), owner, int64(6)).Return(dto.TodoResponse{}, failure.NotFound(constant.MessageInvalidRecord))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   constant.MessageInvalidRecord,
		},
		{
			name:       "non numeric id",
			path:       "/todo/abc",
			setup:      func(_ *mocks.MockTodoService) {},
			wantStatus: http.StatusNotFound,
			wantBody:   constant.MessageInvalidRecord,
		},
		{
			name:       "negative id",
			path:       "/todo/-1",
			setup:      func(_ *mocks.MockTodoService) {},
			wantStatus: http.StatusNotFound,
			wantBody:   constant.MessageInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, handler := setup(t)
			tt.setup(service)

			rec := serve(handler, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestUpdateTodo(t *testing.T) {
	service, handler := setup(t)
	service.EXPECT().
		Update(gomock.Any(), owner, int64(5), dto.UpdateTodoRequest{Title: "Buy oat milk"}).
		Return(sample(5, "Buy oat milk"), nil)

	rec := serve(handler, form(http.MethodPost, "/todo/5", url.Values{"title": {"Buy oat milk"}, "memo": {""}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/current", rec.Header().Get("Location"))
}

func TestUpdateTodoRejected(t *testing.T) {
	service, handler := setup(t)
	gomock.InOrder(
		service.EXPECT().
			Update(gomock.Any(), owner, int64(5), dto.UpdateTodoRequest{Title: strings.Repeat("x", 101)}).
			Return(dto.TodoResponse{}, failure.BadRequestFromString("title must be a maximum of 100 in length")),
		service.EXPECT().Get(gomock.Any(), owner, int64(5)).Return(sample(5, "Buy milk"), nil),
	)

	rec := serve(handler, form(http.MethodPost, "/todo/5", url.Values{"title": {strings.Repeat("x", 101)}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.MessageInvalidValues)
	assert.Contains(t, rec.Body.String(), `value="Buy milk"`)
}

func TestUpdateForeignTodo(t *testing.T) {
	service, handler := setup(t)
	notFound := failure.NotFound(constant.MessageInvalidRecord)

	service.EXPECT().Update(gomock.Any(), owner, int64(9), gomock.Any()).Return(dto.TodoResponse{}, notFound)
	service.EXPECT().Get(gomock.Any(), owner, int64(9)).Return(dto.TodoResponse{}, notFound)

	rec := serve(handler, form(http.MethodPost, "/todo/9", url.Values{"title": {"mine now"}}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), constant.MessageInvalidRecord)
}

func TestStateChanges(t *testing.T) {
	notFound := failure.NotFound(constant.MessageInvalidRecord)

	tests := []struct {
		name         string
		path         string
		setup        func(s *mocks.MockTodoService)
		wantStatus   int
		wantLocation string
	}{
		{
			name: "complete",
			path: "/todo/5/complete",
			setup: func(s *mocks.MockTodoService) {
				s.EXPECT().Complete(gomock.Any(), owner, int64(5)).Return(sample(5, "x"), nil)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/current",
		},
		{
			name: "complete foreign",
			path: "/todo/5/complete",
			setup: func(s *mocks.MockTodoService) {
				s.EXPECT().Complete(gomock.Any(), owner, int64(5)).Return(dto.TodoResponse{}, notFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "delete",
			path: "/todo/5/delete",
			setup: func(s *mocks.MockTodoService) {
				s.EXPECT().Delete(gomock.Any(), owner, int64(5)).Return(nil)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/current",
		},
		{
			name: "delete foreign",
			path: "/todo/5/delete",
			setup: func(s *mocks.MockTodoService) {
				s.EXPECT().Delete(gomock.Any(), owner, int64(5)).Return(notFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "delete non numeric",
			path:       "/todo/x/delete",
			setup:      func(_ *mocks.MockTodoService) {},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "reopen",
			path: "/completed/5",
			setup: func(s *mocks.MockTodoService) {
				s.EXPECT().Reopen(gomock.Any(), owner, int64(5)).Return(sample(5, "x"), nil)
			},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/completed",
		},
		{
			name: "reopen foreign",
			path: "/completed/5",
			setup: func(s *mocks.MockTodoService) {
				s.EXPECT().Reopen(gomock.Any(), owner, int64(5)).Return(dto.TodoResponse{}, notFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, handler := setup(t)
			tt.setup(service)

			rec := serve(handler, form(http.MethodPost, tt.path, url.Values{}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))

			if tt.wantStatus == http.StatusNotFound {
				assert.Contains(t, rec.Body.String(), constant.MessageInvalidRecord)
			}
		})
	}
}

func TestViewCompletedTodo(t *testing.T) {
	done := sample(4, "Pay rent")
	at := time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)
	done.DateCompleted = &at

	service, handler := setup(t)
	service.EXPECT().Get(gomock.Any(), owner, int64(4)).Return(done, nil)

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/completed/4", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/completed/4"`)
	assert.Contains(t, rec.Body.String(), "Pay rent")
}
