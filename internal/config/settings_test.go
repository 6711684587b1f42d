package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("POMO_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, DefaultWorkMinutes, settings.WorkDuration())
	assert.Equal(t, DefaultBreakMinutes, settings.BreakDuration())
}

func TestSaveAndLoadSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("POMO_HOME", home)
	work := 50

	require.NoError(t, SaveSettings(&Settings{
		Language:    "ja",
		User:        "alice",
		WorkMinutes: &work,
		Keys:        KeyBindingsConfig{"quit": {"x"}},
	}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "ja", settings.Language)
	assert.Equal(t, "alice", settings.User)
	assert.Equal(t, 50, settings.WorkDuration())
	assert.Equal(t, KeyBindingValue{"x"}, settings.Keys["quit"])
}

func TestLoadSettings_Invalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv("POMO_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{nope"), 0644))

	_, err := LoadSettings()

	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestKeyBindingValue_JSON(t *testing.T) {
	var keys KeyBindingsConfig
	require.NoError(t, json.Unmarshal([]byte(`{"quit":["q","ctrl+c"],"refresh":"r"}`), &keys))

	assert.Equal(t, KeyBindingValue{"q", "ctrl+c"}, keys["quit"])
	assert.Equal(t, KeyBindingValue{"r"}, keys["refresh"])

	out, err := json.Marshal(keys["refresh"])
	require.NoError(t, err)
	assert.Equal(t, `"r"`, string(out))
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"quit", "refresh"}

	assert.NoError(t, KeyBindingsConfig{"quit": {"q"}}.Validate(valid))
	assert.ErrorContains(t, KeyBindingsConfig{"fly": {"f"}}.Validate(valid), "unknown key binding")
	assert.ErrorContains(t, KeyBindingsConfig{"quit": {""}}.Validate(valid), "empty value")
	assert.ErrorContains(t, KeyBindingsConfig{"quit": {"q"}, "refresh": {"q"}}.Validate(valid), "assigned to both")
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{"break_minutes", "debug", "http_addr", "keys", "language", "max_log_files", "ssh_addr", "user", "work_minutes"} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, 25, example["work_minutes"])

	_, err := json.Marshal(example)
	assert.NoError(t, err)
}

func TestLoadServerConfig(t *testing.T) {
	unsetEnv(t, "POMO_HTTP_ADDR")
	unsetEnv(t, "POMO_DEFAULT_USER")
	t.Setenv("POMO_SSH_ADDR", ":2222")

	cfg, err := LoadServerConfig()

	require.NoError(t, err)
	assert.Equal(t, ":2222", cfg.SSHAddr)
	assert.Equal(t, "default", cfg.DefaultUser)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

// unsetEnv removes key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
