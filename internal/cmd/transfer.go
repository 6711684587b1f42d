package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/pomo/internal/api"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/paths"
)

// ExportCmd writes all sessions as CSV
type ExportCmd struct {
	Output string `help:"File to write (defaults to stdout)" short:"o" type:"path"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	tenant, err := cli.Tenant()
	if err != nil {
		return err
	}

	ctx := context.Background()
	var count int
	if e.Output == "" {
		count, err = cli.Container.TransferService.Export(ctx, tenant, os.Stdout)
	} else {
		var file *os.File
		file, err = os.Create(paths.ExpandPath(e.Output))
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		count, err = exportToFile(ctx, cli.Container.TransferService, tenant, file)
	}
	if err != nil {
		return fmt.Errorf("failed to export sessions: %w", err)
	}

	logging.Logger.Info("Exported sessions", "tenant", tenant, "count", count, "output", e.Output)
	if e.Output != "" {
		fmt.Fprintf(os.Stderr, "Exported %d session(s) to %s\n", count, e.Output)
	}
	return nil
}

type sessionExporter interface {
	Export(ctx context.Context, tenant string, w io.Writer) (int, error)
}

// exportToFile writes the export into file and closes it, reporting a failed close
func exportToFile(ctx context.Context, exporter sessionExporter, tenant string, file io.WriteCloser) (count int, err error) {
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	return exporter.Export(ctx, tenant, file)
}

// ImportCmd loads sessions from a CSV file
type ImportCmd struct {
	File   string `arg:"" help:"CSV file to import" type:"existingfile"`
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Yes    bool   `help:"Skip the confirmation prompt" short:"y"`
}

// Run executes the import command
func (i *ImportCmd) Run(cli *CLI) error {
	tenant, err := cli.Tenant()
	if err != nil {
		return err
	}
	if !strings.EqualFold(filepath.Ext(i.File), ".csv") {
		return fmt.Errorf("only .csv files can be imported: %s", i.File)
	}

	if !i.Yes {
		confirmed, err := i.confirm(tenant)
		if err != nil {
			return err
		}
		if !confirmed {
			logging.Logger.Info("User cancelled import", "file", i.File)
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.AcquireLock(); err != nil {
		return err
	}

	file, err := os.Open(i.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", i.File, err)
	}
	defer file.Close()

	result, err := cli.Container.TransferService.Import(context.Background(), tenant, file)
	if err != nil {
		return fmt.Errorf("failed to import sessions: %w", err)
	}

	message := fmt.Sprintf("%d imported, %d skipped", result.Imported, result.Skipped)
	if i.Format == "json" {
		return printJSON(api.Import{
			ImportedCount: result.Imported,
			Message:       message,
			OK:            true,
			SkippedCount:  result.Skipped,
		})
	}
	fmt.Println(message)
	return nil
}

func (i *ImportCmd) confirm(tenant string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Import %s into user %q?", filepath.Base(i.File), tenant)).
				Description("Rows whose id already exists are skipped.").
				Affirmative("Import").
				Negative("Cancel").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return confirmed, nil
}
