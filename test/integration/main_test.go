// Package integration_test provides end-to-end tests for pomo CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated POMO_HOME to ensure test independence.
package integration_test

import (
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/pomo/test/integration/harness"
)

func TestMain(m *testing.M) {
	_, err := harness.BuildBinary()
	if err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()

	os.Exit(code)
}

func TestVersionFlag(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "pomo "+harness.BinaryVersion)
	assert.Empty(t, result.Stderr)
}
