package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/todosync/internal/client/todolist"
	"github.com/iudanet/todosync/internal/validation"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	body := strings.Join(args, " ")
	if len(args) == 0 {
		input, err := c.io.ReadInput("Todo: ")
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		body = input
	}

	// Пустой текст отклоняется до обращения к серверу
	normalized, err := validation.ValidateBody(body)
	if err != nil {
		return fmt.Errorf("invalid todo text: %w", err)
	}

	if err := c.refresh(ctx); err != nil {
		return err
	}

	if err := c.engine.CreateTodo(ctx, normalized); err != nil {
		if todolist.IsValidation(err) {
			return fmt.Errorf("invalid todo text: %w", err)
		}
		return fmt.Errorf("failed to add todo: %w", err)
	}

	c.io.Println("✓ Todo added")
	c.io.Println()
	return c.afterMutation(ctx)
}

// afterMutation печатает список после подтвержденного изменения
func (c *Cli) afterMutation(ctx context.Context) error {
	if c.engine.LastRefreshError() == nil {
		c.rememberRefresh(ctx)
	}
	return c.printList(c.activeFilter(ctx))
}
