package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/pomo/internal/api"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/services"
)

// CompleteCmd completes a running session
type CompleteCmd struct {
	Duration *int64 `help:"Duration in seconds, used only when it cannot be computed from timestamps"`
	Format   string `help:"Output format: text or json" enum:"text,json" default:"text"`
	ID       int64  `arg:"" help:"ID of the session to complete"`
}

// Run executes the complete command
func (c *CompleteCmd) Run(cli *CLI) error {
	tenant, err := cli.Tenant()
	if err != nil {
		return err
	}
	if err := cli.Container.AcquireLock(); err != nil {
		return err
	}

	logging.Logger.Info("Executing complete command", "tenant", tenant, "id", c.ID)
	ctx := context.Background()
	result, err := cli.Container.PomodoroService.Complete(ctx, services.CompleteParams{
		FallbackDuration: c.Duration,
		ID:               c.ID,
		Tenant:           tenant,
	})
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}

	if c.Format == "json" {
		return printJSON(api.NewComplete(result))
	}

	if !result.FirstCompletion {
		fmt.Printf("Session #%d was already completed\n", c.ID)
		return nil
	}
	fmt.Printf("Completed session #%d (%s)\n", c.ID, formatFocus(result.Session.Duration()))
	fmt.Printf("+%d XP (total %d, level %d)\n", result.XPGained, result.TotalXP, result.Level)
	if result.LevelUp {
		fmt.Printf("Level up! You reached level %d\n", result.Level)
	}

	achievements, err := cli.Container.StatsService.Achievements(ctx, tenant)
	if err != nil {
		logging.Logger.Warn("Failed to evaluate achievements", "tenant", tenant, "error", err)
		return nil
	}
	printNewBadges(achievements, cli.Language())
	return nil
}
