package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/iudanet/todosync/internal/client/iocli"
	"github.com/iudanet/todosync/internal/client/storage"
	"github.com/iudanet/todosync/internal/client/todolist"
	"github.com/iudanet/todosync/internal/models"
	"github.com/iudanet/todosync/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRemote in-memory хранилище задач для тестов CLI
type memoryRemote struct {
	todos  []models.Todo
	nextID int64
	mu     sync.Mutex
}

func newMemoryRemote(todos ...models.Todo) *memoryRemote {
	r := &memoryRemote{nextID: 1}
	for _, t := range todos {
		r.todos = append(r.todos, t)
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *memoryRemote) mock() *todolist.RemoteStoreMock {
	return &todolist.RemoteStoreMock{
		FetchAllFunc: func(ctx context.Context, statuses []models.Status) ([]models.Todo, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			return append([]models.Todo(nil), r.todos...), nil
		},
		CreateFunc: func(ctx context.Context, body string) (*models.Todo, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			t := models.Todo{ID: r.nextID, Body: body, Status: models.StatusPending}
			r.nextID++
			r.todos = append(r.todos, t)
			return &t, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id int64, status models.Status) (*models.Todo, error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i := range r.todos {
				if r.todos[i].ID == id {
					r.todos[i].Status = status
					t := r.todos[i]
					return &t, nil
				}
			}
			return nil, models.ErrNotFound
		},
		DeleteFunc: func(ctx context.Context, id int64) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i := range r.todos {
				if r.todos[i].ID == id {
					r.todos = append(r.todos[:i], r.todos[i+1:]...)
					return nil
				}
			}
			return models.ErrNotFound
		},
	}
}

// memoryPrefs возвращает мок настроек, хранящий значения в памяти
func memoryPrefs() *storage.PreferenceStorageMock {
	var (
		mu          sync.Mutex
		filter      models.Filter
		lastRefresh time.Time
	)
	return &storage.PreferenceStorageMock{
		SaveActiveFilterFunc: func(ctx context.Context, f models.Filter) error {
			mu.Lock()
			defer mu.Unlock()
			filter = f
			return nil
		},
		GetActiveFilterFunc: func(ctx context.Context) (models.Filter, error) {
			mu.Lock()
			defer mu.Unlock()
			if filter == "" {
				return "", storage.ErrPreferenceNotFound
			}
			return filter, nil
		},
		SaveLastRefreshFunc: func(ctx context.Context, at time.Time) error {
			mu.Lock()
			defer mu.Unlock()
			lastRefresh = at
			return nil
		},
		GetLastRefreshFunc: func(ctx context.Context) (time.Time, error) {
			mu.Lock()
			defer mu.Unlock()
			if lastRefresh.IsZero() {
				return time.Time{}, storage.ErrPreferenceNotFound
			}
			return lastRefresh, nil
		},
	}
}

// bufferIO собирает весь вывод CLI в буфер
func bufferIO(out *bytes.Buffer, input string) *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			_, _ = fmt.Fprintln(out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			_, _ = fmt.Fprintf(out, format, a...)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return input, nil
		},
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
		IsTerminalFunc: func() bool {
			return false
		},
	}
}

type testEnv struct {
	cli    *Cli
	remote *todolist.RemoteStoreMock
	prefs  *storage.PreferenceStorageMock
	health *HealthCheckerMock
	io     *iocli.IOMock
	out    *bytes.Buffer
}

func newTestEnv(t *testing.T, todos ...models.Todo) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	remote := newMemoryRemote(todos...).mock()
	out := &bytes.Buffer{}
	env := &testEnv{
		remote: remote,
		prefs:  memoryPrefs(),
		health: &HealthCheckerMock{
			HealthFunc: func(ctx context.Context) (*api.HealthResponse, error) {
				return &api.HealthResponse{Status: "ok", Version: "1.2.3"}, nil
			},
		},
		io:  bufferIO(out, ""),
		out: out,
	}
	env.cli = New(todolist.NewEngine(remote, logger), env.prefs, env.health, env.io, logger)
	return env
}

func pending(id int64, body string) models.Todo {
	return models.Todo{ID: id, Body: body, Status: models.StatusPending}
}

func completed(id int64, body string) models.Todo {
	return models.Todo{ID: id, Body: body, Status: models.StatusCompleted}
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	env := newTestEnv(t)

	err := env.cli.Run(context.Background(), "frobnicate", nil)

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, env.out.String(), "Usage:")
	assert.Empty(t, env.remote.FetchAllCalls())
}

func TestCli_Run_Help(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.cli.Run(context.Background(), "help", nil))
	assert.Contains(t, env.out.String(), "list [all|pending|completed]")
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int64
		wantErr bool
	}{
		{name: "valid", args: []string{"42"}, want: 42},
		{name: "spaces", args: []string{" 7 "}, want: 7},
		{name: "missing", args: nil, wantErr: true},
		{name: "too many", args: []string{"1", "2"}, wantErr: true},
		{name: "not a number", args: []string{"abc"}, wantErr: true},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "negative", args: []string{"-3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseID(tt.args)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
