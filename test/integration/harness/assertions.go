package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess checks that pomo exited with 0
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "pomo %v exited with %d\nstdout: %s\nstderr: %s",
		result.Args, result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure checks that pomo exited with a non-zero code
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "pomo %v succeeded\nstdout: %s", result.Args, result.Stdout)
}

// AssertCommandError checks that pomo failed and reported message on stderr
func AssertCommandError(tb testing.TB, result CommandResult, message string) {
	tb.Helper()
	AssertFailure(tb, result)
	AssertStderrContains(tb, result, message)
}

// AssertStdoutContains checks stdout for a substring
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "pomo %v stdout", result.Args)
}

// AssertStdoutNotContains checks that stdout lacks a substring
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "pomo %v stdout", result.Args)
}

// AssertStderrContains checks stderr for a substring
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "pomo %v stderr", result.Args)
}

// AssertValidJSON decodes stdout into target
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "pomo %v stdout: %s", result.Args, result.Stdout)
}

// AssertJSONContains decodes stdout as an object and checks one field
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "field %q of pomo %v", key, result.Args)
}
