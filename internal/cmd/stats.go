package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/pomo/internal/api"
)

// StatsCmd shows the completed count and total focus time
type StatsCmd struct {
	Date   string `help:"Only sessions that ended on this UTC date (YYYY-MM-DD)"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	tenant, err := cli.Tenant()
	if err != nil {
		return err
	}

	result, err := cli.Container.StatsService.ForDate(context.Background(), tenant, s.Date)
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	if s.Format == "json" {
		return printJSON(api.DateStats{
			CompletedCount:    result.CompletedCount,
			TotalFocusSeconds: result.TotalFocusSeconds,
		})
	}

	scope := "all time"
	if s.Date != "" {
		scope = s.Date
	}
	fmt.Printf("Stats (%s)\n", scope)
	fmt.Printf("Completed: %d\n", result.CompletedCount)
	fmt.Printf("Focus: %s (%d seconds)\n", formatFocus(result.TotalFocusSeconds), result.TotalFocusSeconds)
	return nil
}
