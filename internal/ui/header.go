package ui

import (
	"fmt"

	"github.com/renato0307/pomo/internal/theme"
	"github.com/renato0307/pomo/version"
)

// renderHeader draws the app name, optional build info and tagline
func renderHeader(showVersion bool, tenant string) string {
	line := theme.AppNameStyle.Render("Pomo")
	if showVersion {
		commit := version.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		line += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s", version.Version, commit))
	}
	if tenant != "" {
		line += theme.SubtitleStyle.Render(" · " + tenant)
	}
	return line + "\n" + theme.TaglineStyle.Render(version.Tagline) + "\n"
}
