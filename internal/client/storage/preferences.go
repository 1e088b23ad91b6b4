package storage

import (
	"context"
	"time"

	"github.com/iudanet/todosync/internal/models"
)

//go:generate moq -out preferences_mock.go . PreferenceStorage

// PreferenceStorage хранит настройки интерфейса клиента.
// Сами задачи локально не хранятся.
type PreferenceStorage interface {
	// SaveActiveFilter сохраняет выбранный фильтр
	SaveActiveFilter(ctx context.Context, filter models.Filter) error

	// GetActiveFilter возвращает сохраненный фильтр
	// Returns ErrPreferenceNotFound if the filter was never saved
	GetActiveFilter(ctx context.Context) (models.Filter, error)

	// SaveLastRefresh сохраняет время последней успешной загрузки списка
	SaveLastRefresh(ctx context.Context, at time.Time) error

	// GetLastRefresh возвращает время последней успешной загрузки списка
	// Returns ErrPreferenceNotFound if the list was never loaded
	GetLastRefresh(ctx context.Context) (time.Time, error)
}
