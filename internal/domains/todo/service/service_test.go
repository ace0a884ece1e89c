package service_test

import (
	"chore/infras/otel/mocks"
	todoMocks "chore/internal/domains/todo/mocks"
	"chore/internal/domains/todo/model"
	"chore/internal/domains/todo/model/dto"
	"chore/internal/domains/todo/service"
	gDto "chore/shared/dto"
	"chore/shared/failure"
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	alice int64 = 1
	bob   int64 = 2
)

func newMockService(t *testing.T) (service.Todo, *todoMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := todoMocks.NewMockTodo(ctrl)

	return service.New(mockRepo, mocks.NewOtel()), mockRepo
}

func ownerFilter(owner, id int64) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldID, id),
		gDto.Eq(model.TableName, model.FieldUserID, owner),
	)
}

func TestTodoService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		setupMock func(repo *todoMocks.MockTodo)
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  dto.CreateTodoRequest{Title: "Buy milk"},
			setupMock: func(repo *todoMocks.MockTodo) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, todo model.Todo) (int64, error) {
						assert.Equal(t, alice, todo.UserID)
						assert.False(t, todo.IsCompleted())
						assert.False(t, todo.Created.IsZero())

						return 10, nil
					})
			},
		},
		{
			name: "title of 100 characters",
			req:  dto.CreateTodoRequest{Title: strings.Repeat("a", 100)},
			setupMock: func(repo *todoMocks.MockTodo) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(11), nil)
			},
		},
		{
			name:      "empty title",
			req:       dto.CreateTodoRequest{Title: ""},
			setupMock: func(_ *todoMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "title of 101 characters",
			req:       dto.CreateTodoRequest{Title: strings.Repeat("a", 101)},
			setupMock: func(_ *todoMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  dto.CreateTodoRequest{Title: "Buy milk"},
			setupMock: func(repo *todoMocks.MockTodo) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newMockService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), alice, tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotZero(t, res.ID)
			assert.False(t, res.IsCompleted())
		})
	}
}

func TestTodoService_ListQueries(t *testing.T) {
	svc, repo := newMockService(t)

	repo.EXPECT().
		GetAll(gomock.Any(),
			gDto.OrderBy("todos.id", gDto.SortDirAsc),
			gDto.And(gDto.Eq(model.TableName, model.FieldUserID, alice), gDto.IsNull(model.TableName, model.FieldDateCompleted)),
		).
		Return([]model.Todo{{ID: 1, UserID: alice}}, nil)

	repo.EXPECT().
		GetAll(gomock.Any(),
			gDto.OrderBy("todos.datecompleted", gDto.SortDirDesc),
			gDto.And(gDto.Eq(model.TableName, model.FieldUserID, alice), gDto.IsNotNull(model.TableName, model.FieldDateCompleted)),
		).
		Return(nil, errors.New("database error"))

	open, err := svc.ListOpen(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, open, 1)

	_, err = svc.ListCompleted(context.Background(), alice)
	assert.Error(t, err)
}

func TestTodoService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *todoMocks.MockTodo)
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(repo *todoMocks.MockTodo) {
				repo.EXPECT().Get(gomock.Any(), ownerFilter(alice, 5)).Return(model.Todo{ID: 5, Title: "x", UserID: alice}, nil)
			},
		},
		{
			name: "not owned or unknown",
			setupMock: func(repo *todoMocks.MockTodo) {
				repo.EXPECT().Get(gomock.Any(), ownerFilter(alice, 5)).Return(model.Todo{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(repo *todoMocks.MockTodo) {
				repo.EXPECT().Get(gomock.Any(), ownerFilter(alice, 5)).Return(model.Todo{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newMockService(t)
			tt.setupMock(repo)

			res, err := svc.Get(context.Background(), alice, 5)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(5), res.ID)
		})
	}
}

func TestTodoService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		setupMock func(repo *todoMocks.MockTodo)
		wantCode  int
	}{
		{
			name: "writes every editable field",
			req:  dto.UpdateTodoRequest{Title: " New title ", Memo: "", Important: false},
			setupMock: func(repo *todoMocks.MockTodo) {
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), ownerFilter(alice, 5)).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
						assert.Equal(t, "New title", fields[model.FieldTitle])
						assert.Equal(t, "", fields[model.FieldMemo])
						assert.Equal(t, false, fields[model.FieldImportant])
						assert.NotContains(t, fields, model.FieldCreated)
						assert.NotContains(t, fields, model.FieldDateCompleted)
						assert.NotContains(t, fields, model.FieldUserID)

						return 1, nil
					})
				repo.EXPECT().Get(gomock.Any(), ownerFilter(alice, 5)).Return(model.Todo{ID: 5, Title: "New title"}, nil)
			},
		},
		{
			name: "not owned",
			req:  dto.UpdateTodoRequest{Title: "New title"},
			setupMock: func(repo *todoMocks.MockTodo) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), ownerFilter(alice, 5)).Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "blank title",
			req:       dto.UpdateTodoRequest{Title: "   "},
			setupMock: func(_ *todoMocks.MockTodo) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  dto.UpdateTodoRequest{Title: "New title"},
			setupMock: func(repo *todoMocks.MockTodo) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newMockService(t)
			tt.setupMock(repo)

			res, err := svc.Update(context.Background(), alice, 5, tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "New title", res.Title)
		})
	}
}

func TestTodoService_CompleteAndReopenFields(t *testing.T) {
	svc, repo := newMockService(t)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), ownerFilter(alice, 5)).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
			completed, ok := fields[model.FieldDateCompleted].(sql.NullTime)
			require.True(t, ok)
			assert.True(t, completed.Valid)

			return 1, nil
		})
	repo.EXPECT().Get(gomock.Any(), ownerFilter(alice, 5)).Return(model.Todo{
		ID:            5,
		DateCompleted: sql.NullTime{Time: time.Now(), Valid: true},
	}, nil)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), ownerFilter(alice, 5)).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
			assert.Equal(t, sql.NullTime{}, fields[model.FieldDateCompleted])

			return 1, nil
		})
	repo.EXPECT().Get(gomock.Any(), ownerFilter(alice, 5)).Return(model.Todo{ID: 5}, nil)

	res, err := svc.Complete(context.Background(), alice, 5)
	require.NoError(t, err)
	assert.True(t, res.IsCompleted())

	res, err = svc.Reopen(context.Background(), alice, 5)
	require.NoError(t, err)
	assert.False(t, res.IsCompleted())
}

func TestTodoService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		repoErr  error
		wantCode int
	}{
		{name: "deleted", affected: 1},
		{name: "not owned", affected: 0, wantCode: http.StatusNotFound},
		{name: "repository error", repoErr: errors.New("database error"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newMockService(t)
			repo.EXPECT().Delete(gomock.Any(), ownerFilter(alice, 5)).Return(tt.affected, tt.repoErr)

			err := svc.Delete(context.Background(), alice, 5)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
