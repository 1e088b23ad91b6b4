package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/todosync/internal/client/todolist"
)

func (c *Cli) runSetStatus(ctx context.Context, args []string, completed bool) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	if err := c.refresh(ctx); err != nil {
		return err
	}

	if err := c.engine.SetStatus(ctx, id, completed); err != nil {
		if todolist.IsNotFound(err) {
			return fmt.Errorf("todo %d not found: %w", id, err)
		}
		return fmt.Errorf("failed to update todo %d: %w", id, err)
	}

	if completed {
		c.io.Printf("✓ Todo %d completed\n", id)
	} else {
		c.io.Printf("✓ Todo %d marked as pending\n", id)
	}
	c.io.Println()
	return c.afterMutation(ctx)
}
