package cli

import (
	"context"
	"errors"
	"fmt"
	"text/template"
	"time"

	"github.com/iudanet/todosync/internal/client/storage"
	"github.com/iudanet/todosync/internal/client/todolist"
	"github.com/iudanet/todosync/internal/models"
)

var statusTmpl = template.Must(template.New("status").Parse(statusTemplate))

type statusView struct {
	Server      string
	Version     string
	ServerError string
	LastRefresh string
	Filter      models.Filter
	Counts      todolist.Counts
	Loaded      bool
}

func (c *Cli) runStatus(ctx context.Context) error {
	view := statusView{
		Server: "ok",
		Filter: c.activeFilter(ctx),
	}

	health, err := c.health.Health(ctx)
	switch {
	case err != nil:
		view.Server = "unavailable"
		view.ServerError = err.Error()
	default:
		view.Server = health.Status
		view.Version = health.Version
	}

	// Список загружаем только если сервер ответил
	if err == nil {
		if rerr := c.refresh(ctx); rerr != nil {
			view.ServerError = rerr.Error()
		} else {
			view.Loaded = true
			view.Counts = c.engine.Counts()
		}
	}

	view.LastRefresh = "never"
	at, err := c.prefs.GetLastRefresh(ctx)
	switch {
	case err == nil:
		view.LastRefresh = at.Local().Format(time.RFC3339)
	case !errors.Is(err, storage.ErrPreferenceNotFound):
		c.logger.Warn("Failed to load last refresh time", "error", err)
	}

	if err := statusTmpl.Execute(c.io, view); err != nil {
		return fmt.Errorf("failed to render status: %w", err)
	}
	return nil
}
