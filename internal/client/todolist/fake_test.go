package todolist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/iudanet/todosync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore in-memory хранилище с семантикой сервера: id не переиспользуются,
// список упорядочен по id
type fakeStore struct {
	todos  []models.Todo
	nextID int64
	mu     sync.Mutex
}

func newFakeStore(todos ...models.Todo) *fakeStore {
	s := &fakeStore{nextID: 1}
	for _, t := range todos {
		s.todos = append(s.todos, t)
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

func (s *fakeStore) mock() *RemoteStoreMock {
	return &RemoteStoreMock{
		FetchAllFunc: func(ctx context.Context, statuses []models.Status) ([]models.Todo, error) {
			s.mu.Lock()
			defer s.mu.Unlock()

			out := make([]models.Todo, 0, len(s.todos))
			for _, t := range s.todos {
				for _, st := range statuses {
					if t.Status == st {
						out = append(out, t)
						break
					}
				}
			}
			return out, nil
		},
		CreateFunc: func(ctx context.Context, body string) (*models.Todo, error) {
			s.mu.Lock()
			defer s.mu.Unlock()

			t := models.Todo{ID: s.nextID, Body: body, Status: models.StatusPending}
			s.nextID++
			s.todos = append(s.todos, t)
			return &t, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id int64, status models.Status) (*models.Todo, error) {
			s.mu.Lock()
			defer s.mu.Unlock()

			for i := range s.todos {
				if s.todos[i].ID == id {
					s.todos[i].Status = status
					t := s.todos[i]
					return &t, nil
				}
			}
			return nil, fmt.Errorf("update todo %d: %w", id, models.ErrNotFound)
		},
		DeleteFunc: func(ctx context.Context, id int64) error {
			s.mu.Lock()
			defer s.mu.Unlock()

			for i := range s.todos {
				if s.todos[i].ID == id {
					s.todos = append(s.todos[:i], s.todos[i+1:]...)
					return nil
				}
			}
			return fmt.Errorf("delete todo %d: %w", id, models.ErrNotFound)
		},
	}
}

func pending(id int64, body string) models.Todo {
	return models.Todo{ID: id, Body: body, Status: models.StatusPending}
}

func completed(id int64, body string) models.Todo {
	return models.Todo{ID: id, Body: body, Status: models.StatusCompleted}
}
