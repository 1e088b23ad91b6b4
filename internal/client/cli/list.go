package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/todosync/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: usage: todosync list [all|pending|completed]", ErrInvalidArgs)
	}

	filter := c.activeFilter(ctx)
	if len(args) == 1 {
		parsed, err := models.ParseFilter(args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
		}
		filter = parsed
	}

	if err := c.refresh(ctx); err != nil {
		return err
	}

	if len(args) == 1 {
		if err := c.prefs.SaveActiveFilter(ctx, filter); err != nil {
			c.logger.Warn("Failed to save active filter", "error", err)
		}
	}

	return c.printList(filter)
}

// printList печатает видимые под фильтром задачи из текущего snapshot
func (c *Cli) printList(filter models.Filter) error {
	todos, err := c.engine.Visible(filter)
	if err != nil {
		return fmt.Errorf("failed to filter todos: %w", err)
	}
	counts := c.engine.Counts()

	c.io.Printf("=== Todos: %s (%d) ===\n", filter, counts.ForFilter(filter))
	c.io.Println()

	if len(todos) == 0 {
		c.io.Println("No todos.")
	}
	for _, t := range todos {
		mark := " "
		if t.IsCompleted() {
			mark = "x"
		}
		c.io.Printf("%4d [%s] %s\n", t.ID, mark, t.Body)
	}

	c.io.Println()
	c.io.Printf("all: %d  pending: %d  completed: %d\n", counts.All, counts.Pending, counts.Completed)

	if err := c.engine.LastRefreshError(); err != nil {
		c.io.Printf("Warning: list may be stale: %v\n", err)
	}
	return nil
}
