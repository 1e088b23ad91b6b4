package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/todosync/internal/client/iocli"
	"github.com/iudanet/todosync/internal/client/storage"
	"github.com/iudanet/todosync/internal/client/todolist"
	"github.com/iudanet/todosync/internal/models"
	"github.com/iudanet/todosync/pkg/api"
)

//go:generate moq -out health_mock.go . HealthChecker

// HealthChecker проверяет доступность сервера
type HealthChecker interface {
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// ErrUnknownCommand возвращается для неизвестной команды
var ErrUnknownCommand = errors.New("unknown command")

// ErrInvalidArgs возвращается при некорректных аргументах команды
var ErrInvalidArgs = errors.New("invalid arguments")

type Cli struct {
	engine *todolist.Engine
	prefs  storage.PreferenceStorage
	health HealthChecker
	io     iocli.IO
	logger *slog.Logger
}

func New(
	engine *todolist.Engine,
	prefs storage.PreferenceStorage,
	health HealthChecker,
	io iocli.IO,
	logger *slog.Logger,
) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		engine: engine,
		prefs:  prefs,
		health: health,
		io:     io,
		logger: logger,
	}
}

func (c *Cli) PrintUsage() {
	c.io.Println("todosync client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  todosync [OPTIONS] [COMMAND]")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  -config PATH   Path to config file (default: ~/.config/todosync/client.toml)")
	c.io.Println("  -server URL    Server URL (default: http://localhost:8080)")
	c.io.Println("  -db PATH       Path to local preferences database")
	c.io.Println("  -token TOKEN   Bearer token for the server")
	c.io.Println("  -version       Show version information")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  list [all|pending|completed]  Show todos (default: last used filter)")
	c.io.Println("  add <text...>                 Add a new todo")
	c.io.Println("  done <id>                     Mark todo as completed")
	c.io.Println("  undo <id>                     Mark todo as pending")
	c.io.Println("  delete <id>                   Delete todo")
	c.io.Println("  status                        Show server and list status")
	c.io.Println("  tui                           Start interactive mode")
	c.io.Println()
	c.io.Println("Without a command the interactive mode starts when attached to a terminal.")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  todosync add buy milk")
	c.io.Println("  todosync list pending")
	c.io.Println("  todosync done 3")
	c.io.Println("  todosync -server https://todo.example.com list")
}

// activeFilter возвращает сохраненный фильтр или FilterAll
func (c *Cli) activeFilter(ctx context.Context) models.Filter {
	filter, err := c.prefs.GetActiveFilter(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrPreferenceNotFound) {
			c.logger.Warn("Failed to load active filter", "error", err)
		}
		return models.FilterAll
	}
	if _, err := filter.Statuses(); err != nil {
		c.logger.Warn("Stored filter is invalid, using all", "filter", string(filter))
		return models.FilterAll
	}
	return filter
}

// refresh загружает список и запоминает время загрузки
func (c *Cli) refresh(ctx context.Context) error {
	if err := c.engine.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to load todos: %w", err)
	}
	c.rememberRefresh(ctx)
	return nil
}

func (c *Cli) rememberRefresh(ctx context.Context) {
	at := c.engine.Snapshot().RefreshedAt
	if at.IsZero() {
		at = time.Now()
	}
	if err := c.prefs.SaveLastRefresh(ctx, at); err != nil {
		c.logger.Warn("Failed to save last refresh time", "error", err)
	}
}

// parseID разбирает единственный аргумент-идентификатор задачи
func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one todo id", ErrInvalidArgs)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: todo id must be a positive number, got %q", ErrInvalidArgs, args[0])
	}
	return id, nil
}
