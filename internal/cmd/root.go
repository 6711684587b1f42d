package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/text/language"

	"github.com/renato0307/pomo/internal/config"
	"github.com/renato0307/pomo/internal/i18n"
	"github.com/renato0307/pomo/internal/logging"
	"github.com/renato0307/pomo/internal/store"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	Lang        string           `help:"Language for badge names (en, ja)" env:"POMO_LANG"`
	MaxLogFiles int              `help:"Maximum number of debug log files to keep" default:"1000"`
	User        string           `help:"User whose sessions are read and written" short:"u" env:"POMO_USER"`

	Achievements AchievementsCmd `cmd:"achievements" help:"Show unlocked badges"`
	Complete     CompleteCmd     `cmd:"complete" help:"Complete a running session"`
	Dashboard    DashboardCmd    `cmd:"dashboard" help:"Open the interactive dashboard"`
	Export       ExportCmd       `cmd:"export" help:"Export sessions as CSV"`
	Import       ImportCmd       `cmd:"import" help:"Import sessions from a CSV file"`
	Progress     ProgressCmd     `cmd:"progress" help:"Show level, XP and streak"`
	Report       ReportCmd       `cmd:"report" help:"Show weekly or monthly reports"`
	Serve        ServeCmd        `cmd:"serve" help:"Run the HTTP API and SSH dashboard"`
	Sessions     SessionsCmd     `cmd:"sessions" help:"Inspect sessions"`
	Settings     SettingsCmd     `cmd:"settings" help:"Manage settings (meta)"`
	Start        StartCmd        `cmd:"start" help:"Start a work or break session"`
	Stats        StatsCmd        `cmd:"stats" help:"Show completed count and focus time"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("POMO_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("POMO_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
		if c.User == "" {
			c.User = c.settings.User
		}
		if c.Lang == "" {
			c.Lang = c.settings.Language
		}
	}
	if c.User == "" {
		c.User = config.DefaultUser
	}

	if err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	}); err != nil {
		return err
	}

	// Container is created after logging so the gorm logger has a live slog handler
	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// Tenant returns the validated user name commands operate on
func (c *CLI) Tenant() (string, error) {
	return store.NormalizeTenant(c.User)
}

// Language resolves the display language for badge names
func (c *CLI) Language() language.Tag {
	tag, ok := i18n.ParseTag(c.Lang)
	if !ok {
		if c.Lang != "" {
			logging.Logger.Warn("Unsupported language, using default", "lang", c.Lang)
		}
		return i18n.DefaultTag()
	}
	return tag
}

// workMinutes and breakMinutes fall back to defaults when settings are missing
func (c *CLI) workMinutes() int {
	if c.settings == nil {
		return config.DefaultWorkMinutes
	}
	return c.settings.WorkDuration()
}

func (c *CLI) breakMinutes() int {
	if c.settings == nil {
		return config.DefaultBreakMinutes
	}
	return c.settings.BreakDuration()
}

func (c *CLI) keyBindings() config.KeyBindingsConfig {
	if c.settings == nil {
		return nil
	}
	return c.settings.Keys
}
