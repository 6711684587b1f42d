package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// BinaryVersion is stamped into the test binary through the version package
const BinaryVersion = "0.0.0-integration"

const commandTimeout = 30 * time.Second

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult holds the exit code and output of one pomo invocation
type CommandResult struct {
	Args     []string
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles pomo once per test run with BinaryVersion stamped in.
// Call it from TestMain.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		dir, modulePath, err := findModule()
		if err != nil {
			buildErr = err
			return
		}

		tempDir, err := os.MkdirTemp("", "pomo-integration-test-*")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(tempDir, "pomo")

		ldflags := fmt.Sprintf("-X %s/version.Version=%s", modulePath, BinaryVersion)
		cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", binaryPath, ".")
		cmd.Dir = dir
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		buildErr = cmd.Run()
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the compiled binary. Call it from TestMain.
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to cleanup binary directory: %v", err)
	}
}

// RunCommand runs pomo inside env and captures its output
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = env.Environ()

	result := CommandResult{Args: args}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Logf("pomo %v timed out after %v", args, commandTimeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("pomo %v could not run: %v", args, err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// RunJSON runs a command with --format json, requires success and decodes stdout into target
func RunJSON(tb testing.TB, env *TestEnvironment, target any, args ...string) CommandResult {
	tb.Helper()
	result := RunCommand(tb, env, append(args, "--format", "json")...)
	AssertSuccess(tb, result)
	AssertValidJSON(tb, result, target)
	return result
}

// findModule returns the module root directory and module path
func findModule() (string, string, error) {
	out, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}\t{{.Path}}").Output()
	if err != nil {
		return "", "", err
	}
	dir, modulePath, ok := strings.Cut(strings.TrimSpace(string(out)), "\t")
	if !ok {
		return "", "", fmt.Errorf("unexpected go list output %q", out)
	}
	return dir, modulePath, nil
}
