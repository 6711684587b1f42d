// Package harness provides utilities for integration testing the pomo CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - POMO_HOME: Isolated per test (temp directory)
//   - POMO_DEBUG: Disabled to reduce noise
//   - POMO_USER, POMO_LANG: Cleared unless a test sets them
package harness
