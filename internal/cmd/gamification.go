package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"

	"github.com/renato0307/pomo/internal/api"
	"github.com/renato0307/pomo/internal/domain"
	"github.com/renato0307/pomo/internal/i18n"
	"github.com/renato0307/pomo/internal/services"
)

// ProgressCmd shows level, XP and streak
type ProgressCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the progress command
func (p *ProgressCmd) Run(cli *CLI) error {
	tenant, err := cli.Tenant()
	if err != nil {
		return err
	}

	summary, err := cli.Container.StatsService.Progress(context.Background(), tenant)
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	if p.Format == "json" {
		return printJSON(api.NewProgress(summary))
	}

	lvl := summary.Level
	fmt.Printf("Level: %d\n", lvl.Level)
	fmt.Printf("XP: %d/%d (total %d)\n", lvl.CurrentXP, lvl.XPToNext, lvl.TotalXP)
	fmt.Printf("Streak: %d day(s)\n", summary.StreakDays)
	return nil
}

// AchievementsCmd lists unlocked badges
type AchievementsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the achievements command
func (a *AchievementsCmd) Run(cli *CLI) error {
	tenant, err := cli.Tenant()
	if err != nil {
		return err
	}

	result, err := cli.Container.StatsService.Achievements(context.Background(), tenant)
	if err != nil {
		return fmt.Errorf("failed to evaluate achievements: %w", err)
	}
	badges := i18n.LocalizeBadges(result.Badges, cli.Language())

	if a.Format == "json" {
		return printJSON(api.NewAchievements(badges, result.NewlyUnlocked))
	}

	if len(badges) == 0 {
		fmt.Println("No achievements yet. Complete a pomodoro to unlock your first badge.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BADGE\tDESCRIPTION\tUNLOCKED")
	for _, badge := range badges {
		name := badge.Icon + " " + badge.Name
		if slices.Contains(result.NewlyUnlocked, badge.ID) {
			name += " (new)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, badge.Description, domain.FormatTimestamp(badge.UnlockedAt))
	}
	return w.Flush()
}

// printNewBadges announces badges unlocked by the last evaluation
func printNewBadges(result *services.AchievementsResult, lang language.Tag) {
	if len(result.NewlyUnlocked) == 0 {
		return
	}
	var names []string
	for _, badge := range i18n.LocalizeBadges(result.Badges, lang) {
		if slices.Contains(result.NewlyUnlocked, badge.ID) {
			names = append(names, badge.Icon+" "+badge.Name)
		}
	}
	fmt.Printf("Unlocked: %s\n", strings.Join(names, ", "))
}

// ReportCmd shows periodic reports
type ReportCmd struct {
	Monthly ReportMonthlyCmd `cmd:"monthly" help:"Current calendar month"`
	Weekly  ReportWeeklyCmd  `cmd:"weekly" help:"Trailing 7 days" default:"1"`
}

// ReportWeeklyCmd shows the trailing 7-day report
type ReportWeeklyCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the weekly report
func (r *ReportWeeklyCmd) Run(cli *CLI) error {
	tenant, err := cli.Tenant()
	if err != nil {
		return err
	}

	weekly, err := cli.Container.StatsService.Weekly(context.Background(), tenant)
	if err != nil {
		return fmt.Errorf("failed to build weekly report: %w", err)
	}

	if r.Format == "json" {
		return printJSON(api.NewWeekly(weekly))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCOMPLETED")
	for _, day := range weekly.DailyCounts {
		fmt.Fprintf(w, "%s\t%d\n", day.Date, day.Count)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printTotals(weekly.TotalCompleted, weekly.TotalFocusSeconds, weekly.AverageFocusSeconds)
	return nil
}

// ReportMonthlyCmd shows the calendar month report
type ReportMonthlyCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the monthly report
func (r *ReportMonthlyCmd) Run(cli *CLI) error {
	tenant, err := cli.Tenant()
	if err != nil {
		return err
	}

	monthly, err := cli.Container.StatsService.Monthly(context.Background(), tenant)
	if err != nil {
		return fmt.Errorf("failed to build monthly report: %w", err)
	}

	if r.Format == "json" {
		return printJSON(api.NewMonthly(monthly))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WEEK\tCOMPLETED")
	for _, week := range monthly.WeeklyCounts {
		fmt.Fprintf(w, "%s\t%d\n", week.Label, week.Count)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printTotals(monthly.TotalCompleted, monthly.TotalFocusSeconds, monthly.AverageFocusSeconds)
	fmt.Printf("Completion rate: %.2f per day\n", monthly.CompletionRate)
	return nil
}

func printTotals(completed int, focus, average int64) {
	fmt.Println()
	fmt.Printf("Completed: %d\n", completed)
	fmt.Printf("Focus: %s\n", formatFocus(focus))
	fmt.Printf("Average: %s\n", formatFocus(average))
}
