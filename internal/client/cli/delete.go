package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/todosync/internal/client/todolist"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	if err := c.refresh(ctx); err != nil {
		return err
	}

	if err := c.engine.DeleteTodo(ctx, id); err != nil {
		if todolist.IsNotFound(err) {
			return fmt.Errorf("todo %d not found: %w", id, err)
		}
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}

	c.io.Printf("✓ Todo %d deleted\n", id)
	c.io.Println()
	return c.afterMutation(ctx)
}
