package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := settings.Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, settings.UIWindow, cfg.UI)
	assert.True(t, cfg.Sound.Enabled)

	for _, action := range game.Actions() {
		assert.NotEmpty(t, cfg.Bindings[action], action)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
ui: term
seed: 99
sound:
  volume: 0.25
bindings:
  rotate: [X, Up]
`)

	cfg, err := settings.Load(path, settings.Default())
	require.NoError(t, err)

	assert.Equal(t, settings.UITerminal, cfg.UI)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, 0.25, cfg.Sound.Volume)
	assert.True(t, cfg.Sound.Enabled, "unset keys keep their base value")
	assert.Equal(t, []string{"X", "Up"}, cfg.Bindings["rotate"])
	assert.Equal(t, []string{"Space"}, cfg.Bindings["hard-drop"])
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"Up"}, settings.Default().Bindings["rotate"], "base is not modified")
}

func TestLoadErrors(t *testing.T) {
	_, err := settings.Load(filepath.Join(t.TempDir(), "missing.yaml"), settings.Default())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = settings.Load(writeConfig(t, "ui: [not, a, string"), settings.Default())
	assert.ErrorContains(t, err, "parse config")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("BLOCKFALL_SEED", "1234")
	t.Setenv("BLOCKFALL_DEBUG", "true")
	t.Setenv("BLOCKFALL_SOUND_ENABLED", "false")
	t.Setenv("BLOCKFALL_SOUND_VOLUME", "0.75")

	cfg := settings.Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Sound.Enabled)
	assert.Equal(t, 0.75, cfg.Sound.Volume)
	assert.Equal(t, settings.UIWindow, cfg.UI, "unset variables leave fields alone")
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv("BLOCKFALL_CELL_SIZE", "huge")

	cfg := settings.Default()
	assert.ErrorContains(t, cfg.ApplyEnv(), "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*settings.Config)
		want   string
	}{
		{"bad ui", func(c *settings.Config) { c.UI = "web" }, `ui must be "gui" or "term"`},
		{"tiny cells", func(c *settings.Config) { c.CellSize = 2 }, "cell_size 2"},
		{"loud", func(c *settings.Config) { c.Sound.Volume = 1.5 }, "sound volume"},
		{"unknown action", func(c *settings.Config) { c.Bindings["pause"] = []string{"P"} }, `unknown action "pause"`},
		{"unknown key", func(c *settings.Config) { c.Bindings["rotate"] = []string{"F13"} }, `unknown key "F13"`},
		{"shared key", func(c *settings.Config) { c.Bindings["rotate"] = []string{"Space"} }, `key "Space" bound to both`},
		{"unbound action", func(c *settings.Config) { delete(c.Bindings, "reset") }, `action "reset" has no key`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := settings.Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestKeyEvents(t *testing.T) {
	table := settings.Default().KeyEvents()

	assert.Equal(t, game.EventHardDrop, table["Space"])
	assert.Equal(t, game.EventStart, table["S"])
	assert.Equal(t, game.EventStart, table["Enter"])
	assert.Len(t, table, 8)
}

func TestKeyNames(t *testing.T) {
	names := settings.KeyNames()

	assert.Len(t, names, 9+26+10)
	for _, name := range names {
		assert.True(t, settings.ValidKey(name), name)
	}
	assert.False(t, settings.ValidKey("a"))
	assert.False(t, settings.ValidKey(""))
}
