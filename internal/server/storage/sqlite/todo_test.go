package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/todosync/internal/models"
	"github.com/iudanet/todosync/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func TestTodoStorage_CreateTodo(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	todo, err := s.CreateTodo(ctx, "milk")
	require.NoError(t, err)
	assert.Positive(t, todo.ID)
	assert.Equal(t, "milk", todo.Body)
	assert.Equal(t, models.StatusPending, todo.Status)
	assert.False(t, todo.CreatedAt.IsZero())

	got, err := s.GetTodo(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.ID, got.ID)
	assert.Equal(t, todo.Body, got.Body)
	assert.Equal(t, todo.Status, got.Status)
	assert.Equal(t, todo.CreatedAt, got.CreatedAt)
}

func TestTodoStorage_CreateTodo_RejectsBlankBody(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// CHECK constraint на уровне схемы
	_, err := s.CreateTodo(ctx, "   ")
	require.Error(t, err)

	todos, err := s.ListTodos(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestTodoStorage_ListTodos(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	milk, err := s.CreateTodo(ctx, "milk")
	require.NoError(t, err)
	bread, err := s.CreateTodo(ctx, "bread")
	require.NoError(t, err)
	eggs, err := s.CreateTodo(ctx, "eggs")
	require.NoError(t, err)

	_, err = s.UpdateTodoStatus(ctx, bread.ID, models.StatusCompleted)
	require.NoError(t, err)

	tests := []struct {
		name     string
		statuses []models.Status
		wantIDs  []int64
	}{
		{
			name:     "nil statuses returns everything",
			statuses: nil,
			wantIDs:  []int64{milk.ID, bread.ID, eggs.ID},
		},
		{
			name:     "both statuses",
			statuses: models.AllStatuses,
			wantIDs:  []int64{milk.ID, bread.ID, eggs.ID},
		},
		{
			name:     "pending only",
			statuses: []models.Status{models.StatusPending},
			wantIDs:  []int64{milk.ID, eggs.ID},
		},
		{
			name:     "completed only",
			statuses: []models.Status{models.StatusCompleted},
			wantIDs:  []int64{bread.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todos, err := s.ListTodos(ctx, tt.statuses)
			require.NoError(t, err)

			ids := make([]int64, 0, len(todos))
			for _, todo := range todos {
				ids = append(ids, todo.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestTodoStorage_ListTodos_Empty(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	todos, err := s.ListTodos(ctx, models.AllStatuses)
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestTodoStorage_UpdateTodoStatus(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	todo, err := s.CreateTodo(ctx, "milk")
	require.NoError(t, err)

	updated, err := s.UpdateTodoStatus(ctx, todo.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, "milk", updated.Body)

	// Повторное выставление того же статуса не является ошибкой
	again, err := s.UpdateTodoStatus(ctx, todo.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, again.Status)

	back, err := s.UpdateTodoStatus(ctx, todo.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, back.Status)
}

func TestTodoStorage_UpdateTodoStatus_Errors(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.UpdateTodoStatus(ctx, 42, models.StatusCompleted)
	assert.ErrorIs(t, err, storage.ErrTodoNotFound)

	todo, err := s.CreateTodo(ctx, "milk")
	require.NoError(t, err)

	_, err = s.UpdateTodoStatus(ctx, todo.ID, models.Status("archived"))
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestTodoStorage_DeleteTodo(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	todo, err := s.CreateTodo(ctx, "milk")
	require.NoError(t, err)

	require.NoError(t, s.DeleteTodo(ctx, todo.ID))

	_, err = s.GetTodo(ctx, todo.ID)
	assert.ErrorIs(t, err, storage.ErrTodoNotFound)

	err = s.DeleteTodo(ctx, todo.ID)
	assert.ErrorIs(t, err, storage.ErrTodoNotFound)
}

func TestTodoStorage_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first, err := s.CreateTodo(ctx, "first")
	require.NoError(t, err)
	require.NoError(t, s.DeleteTodo(ctx, first.ID))

	second, err := s.CreateTodo(ctx, "second")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestStorage_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "todos.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := New(ctx, dbPath, logger)
	require.NoError(t, err)
	todo, err := s.CreateTodo(ctx, "persisted")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Повторное открытие не должно заново применять миграции с ошибкой
	s, err = New(ctx, dbPath, logger)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	got, err := s.GetTodo(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Body)
	require.NoError(t, s.Ping(ctx))
}
