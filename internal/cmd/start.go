package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/pomo/internal/api"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/services"
)

// StartCmd records a new running session
type StartCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Type   string `help:"Session type (work, break or a custom name)" short:"t" default:"work"`
}

// Run executes the start command
func (s *StartCmd) Run(cli *CLI) error {
	tenant, err := cli.Tenant()
	if err != nil {
		return err
	}
	if err := cli.Container.AcquireLock(); err != nil {
		return err
	}

	logging.Logger.Info("Executing start command", "tenant", tenant, "type", s.Type)
	session, err := cli.Container.PomodoroService.Start(context.Background(), services.StartParams{
		Tenant: tenant,
		Type:   s.Type,
	})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	if s.Format == "json" {
		return printJSON(api.NewSession(session))
	}
	fmt.Printf("Started %s session #%d\n", session.Type, session.ID)
	return nil
}
