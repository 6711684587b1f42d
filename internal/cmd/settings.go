package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/pomo/internal/config"
	"github.com/renato0307/pomo/internal/paths"
	"github.com/renato0307/pomo/internal/ui"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys SettingsKeysCmd `cmd:"keys" help:"List dashboard key bindings"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := paths.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"format":        example,
			"settings_file": settingsFile,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure pomo.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

// SettingsKeysCmd lists the dashboard key bindings and their effective keys
type SettingsKeysCmd struct{}

// Run executes the keys command
func (s *SettingsKeysCmd) Run(cli *CLI) error {
	custom := cli.keyBindings()
	if err := custom.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKEYS\tDESCRIPTION")
	for _, def := range ui.AllKeyDefinitions {
		keys := def.Defaults
		if override, ok := custom[def.Name]; ok && len(override) > 0 {
			keys = []string(override)
		}
		data, _ := json.Marshal(keys)
		fmt.Fprintf(w, "%s\t%s\t%s\n", def.Name, data, def.Help)
	}
	return w.Flush()
}
