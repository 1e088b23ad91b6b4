package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/todosync/internal/client/tui"
)

func (c *Cli) runTUI(ctx context.Context) error {
	if err := tui.Run(ctx, c.engine, c.prefs, c.logger); err != nil {
		return fmt.Errorf("interactive mode failed: %w", err)
	}
	return nil
}
