package todolist

import (
	"context"

	"github.com/iudanet/todosync/internal/models"
)

//go:generate moq -out remotestore_mock.go . RemoteStore

// RemoteStore удаленное хранилище задач.
// Ошибки: models.ErrValidation, models.ErrNotFound, models.ErrRemoteUnavailable
type RemoteStore interface {
	// FetchAll возвращает задачи со статусами из statuses в порядке хранилища
	FetchAll(ctx context.Context, statuses []models.Status) ([]models.Todo, error)

	// Create создает задачу в статусе pending
	Create(ctx context.Context, body string) (*models.Todo, error)

	// UpdateStatus меняет статус задачи
	UpdateStatus(ctx context.Context, id int64, status models.Status) (*models.Todo, error)

	// Delete удаляет задачу
	Delete(ctx context.Context, id int64) error
}
