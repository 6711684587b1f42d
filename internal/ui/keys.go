package ui

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/pomo/internal/config"
)

// KeyDefinition defines the metadata for a configurable key binding
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions is the single source of truth for dashboard key names, defaults and help
var AllKeyDefinitions = []KeyDefinition{
	{Name: "complete", Defaults: []string{"c"}, Help: "complete running session"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "toggle help"},
	{Name: "quit", Defaults: []string{"q"}, Help: "quit"},
	{Name: "refresh", Defaults: []string{"r"}, Help: "refresh"},
	{Name: "start_break", Defaults: []string{"b"}, Help: "start break"},
	{Name: "start_work", Defaults: []string{"w"}, Help: "start focus session"},
}

var (
	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetValidKeyNames returns all valid key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

func keyDefinition(name string) KeyDefinition {
	for _, def := range AllKeyDefinitions {
		if def.Name == name {
			return def
		}
	}
	panic("unknown key definition: " + name)
}

// KeyMap holds the dashboard bindings
type KeyMap struct {
	Complete   key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	Quit       key.Binding
	Refresh    key.Binding
	StartBreak key.Binding
	StartWork  key.Binding
}

// NewKeyMap builds the bindings, applying overrides from settings.
// Overrides are validated against GetValidKeyNames.
func NewKeyMap(custom config.KeyBindingsConfig) (KeyMap, error) {
	if err := custom.Validate(GetValidKeyNames()); err != nil {
		return KeyMap{}, fmt.Errorf("invalid key bindings: %w", err)
	}

	return KeyMap{
		Complete:   buildBinding("complete", custom),
		ForceQuit:  buildBinding("force_quit", custom),
		Help:       buildBinding("help", custom),
		Quit:       buildBinding("quit", custom),
		Refresh:    buildBinding("refresh", custom),
		StartBreak: buildBinding("start_break", custom),
		StartWork:  buildBinding("start_work", custom),
	}, nil
}

func buildBinding(name string, custom config.KeyBindingsConfig) key.Binding {
	def := keyDefinition(name)
	keys := def.Defaults
	if override, ok := custom[name]; ok && len(override) > 0 {
		keys = override
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartWork, k.StartBreak, k.Complete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StartWork, k.StartBreak, k.Complete},
		{k.Refresh, k.Help, k.Quit, k.ForceQuit},
	}
}
