package cli

import (
	"context"
	"testing"

	"github.com/iudanet/todosync/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_runList_DefaultsToAll(t *testing.T) {
	env := newTestEnv(t, pending(1, "buy milk"), completed(2, "walk dog"))

	require.NoError(t, env.cli.Run(context.Background(), "list", nil))

	out := env.out.String()
	assert.Contains(t, out, "=== Todos: all (2) ===")
	assert.Contains(t, out, "   1 [ ] buy milk")
	assert.Contains(t, out, "   2 [x] walk dog")
	assert.Contains(t, out, "all: 2  pending: 1  completed: 1")

	// Фильтр не указан явно, поэтому не сохраняется
	assert.Empty(t, env.prefs.SaveActiveFilterCalls())
	assert.Len(t, env.prefs.SaveLastRefreshCalls(), 1)
}

func TestCli_runList_FilterIsStored(t *testing.T) {
	env := newTestEnv(t, pending(1, "buy milk"), completed(2, "walk dog"))
	ctx := context.Background()

	require.NoError(t, env.cli.Run(ctx, "list", []string{"pending"}))

	out := env.out.String()
	assert.Contains(t, out, "=== Todos: pending (1) ===")
	assert.Contains(t, out, "buy milk")
	assert.NotContains(t, out, "walk dog")

	calls := env.prefs.SaveActiveFilterCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.FilterPending, calls[0].Filter)

	// Следующий list без аргументов использует сохраненный фильтр
	env.out.Reset()
	require.NoError(t, env.cli.Run(ctx, "list", nil))
	assert.Contains(t, env.out.String(), "=== Todos: pending (1) ===")
	assert.NotContains(t, env.out.String(), "walk dog")
}

func TestCli_runList_Empty(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.cli.Run(context.Background(), "list", []string{"completed"}))
	assert.Contains(t, env.out.String(), "No todos.")
}

func TestCli_runList_InvalidFilter(t *testing.T) {
	env := newTestEnv(t)

	err := env.cli.Run(context.Background(), "list", []string{"archived"})

	require.ErrorIs(t, err, ErrInvalidArgs)
	require.ErrorIs(t, err, models.ErrInvalidFilter)
	assert.Empty(t, env.remote.FetchAllCalls())
	assert.Empty(t, env.prefs.SaveActiveFilterCalls())
}

func TestCli_runList_RemoteUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.remote.FetchAllFunc = func(ctx context.Context, statuses []models.Status) ([]models.Todo, error) {
		return nil, models.ErrRemoteUnavailable
	}

	err := env.cli.Run(context.Background(), "list", nil)

	require.ErrorIs(t, err, models.ErrRemoteUnavailable)
	assert.Empty(t, env.prefs.SaveLastRefreshCalls())
	assert.Empty(t, env.out.String())
}
