// Package tui интерактивный режим клиента на Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iudanet/todosync/internal/client/storage"
	"github.com/iudanet/todosync/internal/client/todolist"
	"github.com/iudanet/todosync/internal/models"
)

// Run запускает интерактивный режим и блокируется до выхода пользователя
// или отмены ctx.
func Run(ctx context.Context, engine *todolist.Engine, prefs storage.PreferenceStorage, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	filter := models.FilterAll
	stored, err := prefs.GetActiveFilter(ctx)
	switch {
	case err == nil:
		if _, verr := stored.Statuses(); verr == nil {
			filter = stored
		}
	case !errors.Is(err, storage.ErrPreferenceNotFound):
		logger.Warn("Failed to load active filter", "error", err)
	}

	updates, cancel := engine.Subscribe()
	defer cancel()

	p := tea.NewProgram(
		New(ctx, engine, prefs, logger, filter, updates),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}
