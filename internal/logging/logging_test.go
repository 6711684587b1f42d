package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		mod := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"3.log", "4.log", "notes.txt"}, names)
}

func TestInitialize_DebugFile(t *testing.T) {
	t.Setenv(envDebug, "")
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	require.NoError(t, Initialize(Options{DebugFile: path, Quiet: true}))
	t.Cleanup(func() { Logger = discardLogger() })

	Logger.Info("hello", "component", "test")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"hello"`)
}

func TestInitialize_DisabledDiscards(t *testing.T) {
	t.Setenv(envDebug, "")
	t.Setenv(envDebugFile, "")

	require.NoError(t, Initialize(Options{}))
	assert.NotNil(t, Logger)
}
