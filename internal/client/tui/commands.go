package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iudanet/todosync/internal/client/storage"
	"github.com/iudanet/todosync/internal/client/todolist"
	"github.com/iudanet/todosync/internal/models"
)

// refreshedMsg результат явной загрузки списка
type refreshedMsg struct {
	err error
}

// mutationMsg результат изменения, выполненного движком
type mutationMsg struct {
	err  error
	kind todolist.MutationKind
	id   int64
}

// changedMsg движок заменил snapshot или изменил Busy/Loading
type changedMsg struct{}

func refreshCmd(ctx context.Context, engine *todolist.Engine) tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{err: engine.Refresh(ctx)}
	}
}

func createCmd(ctx context.Context, engine *todolist.Engine, body string) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{kind: todolist.KindCreate, err: engine.CreateTodo(ctx, body)}
	}
}

func setStatusCmd(ctx context.Context, engine *todolist.Engine, id int64, completed bool) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{kind: todolist.KindUpdate, id: id, err: engine.SetStatus(ctx, id, completed)}
	}
}

func deleteCmd(ctx context.Context, engine *todolist.Engine, id int64) tea.Cmd {
	return func() tea.Msg {
		return mutationMsg{kind: todolist.KindDelete, id: id, err: engine.DeleteTodo(ctx, id)}
	}
}

// waitForChange ждет следующего сигнала подписки.
// После отписки канал закрыт и команда больше не возвращает сообщений.
func waitForChange(updates <-chan struct{}) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func saveFilterCmd(ctx context.Context, prefs storage.PreferenceStorage, logger *slog.Logger, filter models.Filter) tea.Cmd {
	return func() tea.Msg {
		if err := prefs.SaveActiveFilter(ctx, filter); err != nil {
			logger.Warn("Failed to save active filter", "error", err)
		}
		return nil
	}
}

func saveRefreshCmd(ctx context.Context, prefs storage.PreferenceStorage, logger *slog.Logger, engine *todolist.Engine) tea.Cmd {
	return func() tea.Msg {
		at := engine.Snapshot().RefreshedAt
		if at.IsZero() {
			return nil
		}
		if err := prefs.SaveLastRefresh(ctx, at); err != nil {
			logger.Warn("Failed to save last refresh time", "error", err)
		}
		return nil
	}
}
