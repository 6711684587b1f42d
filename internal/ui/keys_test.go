package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/pomo/internal/config"
)

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestGetValidKeyNames_Sorted(t *testing.T) {
	names := GetValidKeyNames()
	assert.Equal(t, []string{"complete", "force_quit", "help", "quit", "refresh", "start_break", "start_work"}, names)
}

func TestNewKeyMap_Defaults(t *testing.T) {
	keys, err := NewKeyMap(nil)
	require.NoError(t, err)

	assert.True(t, key.Matches(runeKey("w"), keys.StartWork))
	assert.True(t, key.Matches(runeKey("b"), keys.StartBreak))
	assert.True(t, key.Matches(runeKey("c"), keys.Complete))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, keys.ForceQuit))
	assert.Equal(t, "w", keys.StartWork.Help().Key)
}

func TestNewKeyMap_Overrides(t *testing.T) {
	keys, err := NewKeyMap(config.KeyBindingsConfig{
		"start_work": {"s", "enter"},
	})
	require.NoError(t, err)

	assert.True(t, key.Matches(runeKey("s"), keys.StartWork))
	assert.False(t, key.Matches(runeKey("w"), keys.StartWork))
	assert.Equal(t, "s/enter", keys.StartWork.Help().Key)
	assert.True(t, key.Matches(runeKey("b"), keys.StartBreak))
}

func TestNewKeyMap_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		custom config.KeyBindingsConfig
	}{
		{"unknown name", config.KeyBindingsConfig{"launch": {"l"}}},
		{"empty key", config.KeyBindingsConfig{"quit": {""}}},
		{"duplicate key", config.KeyBindingsConfig{"quit": {"x"}, "refresh": {"x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeyMap(tt.custom)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid key bindings")
		})
	}
}
