package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPomoHome_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("POMO_HOME", dir)

	assert.Equal(t, dir, GetPomoHome())
	assert.Equal(t, filepath.Join(dir, "state.db"), GetDBPath())
	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(dir, "pomo.lock"), GetLockPath())
	assert.Equal(t, filepath.Join(dir, "ssh", "id_ed25519"), GetHostKeyPath())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "x", "y"), ExpandPath("~/x/y"))
	assert.Equal(t, "/abs", ExpandPath("/abs"))
}
