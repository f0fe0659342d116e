// Package settings resolves the runtime configuration: built-in defaults,
// stored user preferences, an optional YAML file and BLOCKFALL_* environment
// variables, in that order. Command-line flags are applied last by the caller.
package settings

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfall/game"
)

// EnvPrefix prefixes every environment override, e.g. BLOCKFALL_SEED.
const EnvPrefix = "BLOCKFALL_"

// Front ends.
const (
	UIWindow   = "gui"
	UITerminal = "term"
)

// Config is the resolved runtime configuration.
type Config struct {
	UI       string `yaml:"ui" env:"UI"`
	Seed     uint64 `yaml:"seed" env:"SEED"`
	CellSize int    `yaml:"cell_size" env:"CELL_SIZE"`
	Debug    bool   `yaml:"debug" env:"DEBUG"`

	Sound SoundConfig `yaml:"sound" envPrefix:"SOUND_"`

	// Bindings maps an action name (see game.Actions) to key names.
	Bindings map[string][]string `yaml:"bindings"`
}

// SoundConfig controls the generated sound cues.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Volume  float64 `yaml:"volume" env:"VOLUME"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		UI:       UIWindow,
		CellSize: 30,
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Bindings: DefaultBindings(),
	}
}

// DefaultBindings returns the arrow-key layout.
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"move-left":  {"Left"},
		"move-right": {"Right"},
		"soft-drop":  {"Down"},
		"rotate":     {"Up"},
		"hard-drop":  {"Space"},
		"start":      {"Enter", "S"},
		"reset":      {"R"},
	}
}

// Load reads a YAML file over base. Keys missing from the file keep their
// base value; a bindings entry replaces the keys of that action only.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}

	cfg := base.clone()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from BLOCKFALL_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the configuration and returns every problem found.
func (c Config) Validate() error {
	var errs []error

	if c.UI != UIWindow && c.UI != UITerminal {
		errs = append(errs, fmt.Errorf("ui must be %q or %q, got %q", UIWindow, UITerminal, c.UI))
	}
	if c.CellSize < 8 || c.CellSize > 128 {
		errs = append(errs, fmt.Errorf("cell_size %d outside 8..128", c.CellSize))
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		errs = append(errs, fmt.Errorf("sound volume %.2f outside 0..1", c.Sound.Volume))
	}

	owner := map[string]string{}
	for _, action := range sortedKeys(c.Bindings) {
		if _, ok := game.ActionEvent(action); !ok {
			errs = append(errs, fmt.Errorf("unknown action %q", action))
			continue
		}
		for _, key := range c.Bindings[action] {
			if !ValidKey(key) {
				errs = append(errs, fmt.Errorf("action %q: unknown key %q", action, key))
				continue
			}
			if prev, ok := owner[key]; ok && prev != action {
				errs = append(errs, fmt.Errorf("key %q bound to both %q and %q", key, prev, action))
				continue
			}
			owner[key] = action
		}
	}
	for _, action := range game.Actions() {
		if len(c.Bindings[action]) == 0 {
			errs = append(errs, fmt.Errorf("action %q has no key", action))
		}
	}

	return errors.Join(errs...)
}

// KeyEvents resolves the bindings into a key name → event table.
func (c Config) KeyEvents() map[string]game.Event {
	table := make(map[string]game.Event)
	for action, keys := range c.Bindings {
		ev, ok := game.ActionEvent(action)
		if !ok {
			continue
		}
		for _, key := range keys {
			table[key] = ev
		}
	}
	return table
}

func (c Config) clone() Config {
	out := c
	out.Bindings = make(map[string][]string, len(c.Bindings))
	for action, keys := range c.Bindings {
		out.Bindings[action] = slices.Clone(keys)
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
