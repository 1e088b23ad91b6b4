package storage

import (
	"context"

	"github.com/iudanet/todosync/internal/models"
)

//go:generate moq -out todostorage_mock.go . TodoStorage

// TodoStorage defines interface for todo persistence on the server
type TodoStorage interface {
	// ListTodos returns todos whose status is in statuses, ordered by ID (insertion order)
	// Empty statuses means every status
	// Returns empty slice if no todos found
	ListTodos(ctx context.Context, statuses []models.Status) ([]*models.Todo, error)

	// CreateTodo stores a new pending todo and returns it with the assigned ID
	// Body must already be validated
	CreateTodo(ctx context.Context, body string) (*models.Todo, error)

	// GetTodo retrieves a todo by ID
	// Returns ErrTodoNotFound if todo doesn't exist
	GetTodo(ctx context.Context, id int64) (*models.Todo, error)

	// UpdateTodoStatus sets the status of a todo and returns the updated todo
	// Returns ErrTodoNotFound if todo doesn't exist
	UpdateTodoStatus(ctx context.Context, id int64, status models.Status) (*models.Todo, error)

	// DeleteTodo removes a todo permanently. IDs are never reused.
	// Returns ErrTodoNotFound if todo doesn't exist
	DeleteTodo(ctx context.Context, id int64) error

	// Ping checks that the storage is reachable
	Ping(ctx context.Context) error
}
