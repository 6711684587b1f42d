package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/pomo/internal/paths"
)

const (
	DefaultBreakMinutes = 5
	DefaultLanguage     = "en"
	DefaultUser         = "default"
	DefaultWorkMinutes  = 25
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds dashboard key overrides, keyed by binding name (e.g. "start_work")
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks names against validNames and rejects empty or duplicated keys
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}
	return nil
}

// Settings represents the structure of $POMO_HOME/settings.json
type Settings struct {
	BreakMinutes *int              `json:"break_minutes,omitempty"`
	Debug        *bool             `json:"debug,omitempty"`
	HTTPAddr     string            `json:"http_addr,omitempty"`
	Keys         KeyBindingsConfig `json:"keys,omitempty"`
	Language     string            `json:"language,omitempty"`
	MaxLogFiles  *int              `json:"max_log_files,omitempty"`
	SSHAddr      string            `json:"ssh_addr,omitempty"`
	User         string            `json:"user,omitempty"`
	WorkMinutes  *int              `json:"work_minutes,omitempty"`
}

// WorkDuration returns the configured focus length in minutes with default applied
func (s *Settings) WorkDuration() int {
	if s.WorkMinutes == nil || *s.WorkMinutes <= 0 {
		return DefaultWorkMinutes
	}
	return *s.WorkMinutes
}

// BreakDuration returns the configured break length in minutes with default applied
func (s *Settings) BreakDuration() int {
	if s.BreakMinutes == nil || *s.BreakMinutes <= 0 {
		return DefaultBreakMinutes
	}
	return *s.BreakMinutes
}

// LoadSettings loads settings from $POMO_HOME/settings.json
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to $POMO_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
