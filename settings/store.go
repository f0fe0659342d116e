package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	prefsObject   = "settings"
	prefsProperty = "preferences"
)

// Preferences are the choices a player can change in-game and keep between
// runs. Scores are never stored.
type Preferences struct {
	SoundEnabled bool                `yaml:"sound_enabled"`
	Volume       float64             `yaml:"volume"`
	Bindings     map[string][]string `yaml:"bindings,omitempty"`
}

// PreferencesOf extracts the persisted subset of a Config.
func PreferencesOf(c Config) Preferences {
	return Preferences{
		SoundEnabled: c.Sound.Enabled,
		Volume:       c.Sound.Volume,
		Bindings:     c.clone().Bindings,
	}
}

// ApplyPreferences overwrites the matching Config fields.
func (c *Config) ApplyPreferences(p Preferences) {
	c.Sound.Enabled = p.SoundEnabled
	c.Sound.Volume = p.Volume
	if c.Bindings == nil {
		c.Bindings = make(map[string][]string, len(p.Bindings))
	}
	for action, keys := range p.Bindings {
		c.Bindings[action] = keys
	}
}

// Store persists Preferences in the per-user data directory. A Store
// without a backing manager keeps nothing and never fails.
type Store struct {
	manager *gdata.Manager
}

// NewStore wraps an open gdata manager. manager may be nil.
func NewStore(manager *gdata.Manager) *Store {
	return &Store{manager: manager}
}

// OpenStore opens the data directory for appName, falling back to a
// memory-only store when it cannot be opened.
func OpenStore(appName string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] Warning: preferences unavailable: %v", err)
		return NewStore(nil)
	}
	return NewStore(manager)
}

// Persistent reports whether preferences survive a restart.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load returns the stored preferences. ok is false when nothing has been
// saved yet or the store is memory-only.
func (s *Store) Load() (prefs Preferences, ok bool, err error) {
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return Preferences{}, false, nil
	}

	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return Preferences{}, false, fmt.Errorf("load preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, false, fmt.Errorf("decode preferences: %w", err)
	}
	return prefs, true, nil
}

// Save writes the preferences.
func (s *Store) Save(prefs Preferences) error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	log.Printf("[Settings] Preferences saved")
	return nil
}
