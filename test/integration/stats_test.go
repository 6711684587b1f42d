package integration_test

import (
	"testing"
	"time"

	"github.com/renato0307/pomo/test/integration/harness"
)

func TestStats(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "stats", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "completed_count", float64(0))
	harness.AssertJSONContains(t, result, "total_focus_seconds", float64(0))

	startSession(t, env)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "complete", "1"))

	today := time.Now().UTC().Format("2006-01-02")
	result = harness.RunCommand(t, env, "stats", "--date", today, "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "completed_count", float64(1))

	result = harness.RunCommand(t, env, "stats", "--date", "2001-01-01", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "completed_count", float64(0))

	result = harness.RunCommand(t, env, "stats", "--date", "yesterday")
	harness.AssertFailure(t, result)

	result = harness.RunCommand(t, env, "stats")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Completed: 1")
}

func TestProgressAndAchievements(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "achievements")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No achievements yet")

	startSession(t, env)
	result = harness.RunCommand(t, env, "complete", "1")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "+10 XP")
	harness.AssertStdoutContains(t, result, "Unlocked: 🌱 First pomodoro")

	result = harness.RunCommand(t, env, "progress", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "level", float64(1))
	harness.AssertJSONContains(t, result, "total_xp", float64(10))
	harness.AssertJSONContains(t, result, "current_xp", float64(10))
	harness.AssertJSONContains(t, result, "xp_needed_for_next_level", float64(100))
	harness.AssertJSONContains(t, result, "streak_days", float64(1))

	result = harness.RunCommand(t, env, "achievements", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "total_count", float64(1))

	result = harness.RunCommand(t, env, "achievements", "--lang", "ja")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "初めてのポモドーロ")

	env.WriteSettings(`{"language": "ja"}`)
	result = harness.RunCommand(t, env, "achievements")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "初めてのポモドーロ")
}

func TestReports(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	startSession(t, env)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "complete", "1"))

	result := harness.RunCommand(t, env, "report", "weekly", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "total_completed", float64(1))
	harness.AssertStdoutContains(t, result, time.Now().UTC().Format("2006-01-02"))

	result = harness.RunCommand(t, env, "report", "monthly", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "total_completed", float64(1))
	harness.AssertStdoutContains(t, result, "weekly_counts")

	result = harness.RunCommand(t, env, "report", "monthly")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Completion rate")
}
