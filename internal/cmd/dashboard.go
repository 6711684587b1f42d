package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/ui"
)

// DashboardCmd opens the interactive dashboard
type DashboardCmd struct {
	ShowVersion bool `help:"Show version information in the header"`
}

// Run executes the dashboard
func (d *DashboardCmd) Run(cli *CLI) error {
	tenant, err := cli.Tenant()
	if err != nil {
		return err
	}
	if err := cli.Container.AcquireLock(); err != nil {
		return err
	}

	model, err := ui.NewModel(ui.ModelConfig{
		BreakMinutes: cli.breakMinutes(),
		Clock:        cli.Container.Clock,
		Keys:         cli.keyBindings(),
		Language:     cli.Language(),
		Pomodoro:     cli.Container.PomodoroService,
		ShowVersion:  d.ShowVersion,
		Stats:        cli.Container.StatsService,
		Tenant:       tenant,
		WorkMinutes:  cli.workMinutes(),
	})
	if err != nil {
		return fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}

	logging.Logger.Info("Starting dashboard", "tenant", tenant)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Dashboard error", "error", err)
		return fmt.Errorf("error running dashboard: %w", err)
	}

	logging.Logger.Info("Dashboard exited normally")
	return nil
}
