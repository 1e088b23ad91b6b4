package handlers

import (
	"log/slog"
	"os"
	"time"

	"github.com/iudanet/todosync/internal/models"
)

func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

func testTodo(id int64, body string, status models.Status) *models.Todo {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &models.Todo{
		ID:        id,
		Body:      body,
		Status:    status,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}
