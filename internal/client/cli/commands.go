package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду CLI
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "list", "ls":
		return c.runList(ctx, args)
	case "add":
		return c.runAdd(ctx, args)
	case "done":
		return c.runSetStatus(ctx, args, true)
	case "undo":
		return c.runSetStatus(ctx, args, false)
	case "delete", "rm":
		return c.runDelete(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "tui":
		return c.runTUI(ctx)
	case "help", "-h", "--help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}
