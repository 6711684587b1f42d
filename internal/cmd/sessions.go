package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/pomo/internal/api"
	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/services"
)

// SessionsCmd inspects sessions
type SessionsCmd struct {
	List SessionsListCmd `cmd:"list" help:"List sessions" default:"1"`
}

// SessionsListCmd lists sessions in store order
type SessionsListCmd struct {
	Date   string `help:"Only sessions that ended on this UTC date (YYYY-MM-DD)"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Status string `help:"Only sessions with this status (running or completed)"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	tenant, err := cli.Tenant()
	if err != nil {
		return err
	}

	sessions, err := cli.Container.PomodoroService.List(context.Background(), services.ListParams{
		Date:   s.Date,
		Status: s.Status,
		Tenant: tenant,
	})
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if s.Format == "json" {
		out := make([]api.Session, 0, len(sessions))
		for _, session := range sessions {
			out = append(out, api.NewSession(session))
		}
		return printJSON(out)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSTATUS\tSTART\tEND\tDURATION")
	for _, session := range sessions {
		end := "-"
		if session.HasEndTime() {
			end = domain.FormatTimestamp(*session.EndTime)
		}
		duration := "-"
		if session.DurationSec != nil {
			duration = formatFocus(*session.DurationSec)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			session.ID,
			session.Type,
			session.Status,
			domain.FormatTimestamp(session.StartTime),
			end,
			duration)
	}
	return w.Flush()
}
