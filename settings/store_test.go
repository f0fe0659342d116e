package settings_test

import (
	"testing"

	"github.com/plus3/blockfall/settings"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *settings.Store {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	manager, err := gdata.Open(gdata.Config{AppName: "blockfall_test"})
	require.NoError(t, err)
	return settings.NewStore(manager)
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	require.True(t, store.Persistent())

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok, "nothing saved yet")

	cfg := settings.Default()
	cfg.Sound.Enabled = false
	cfg.Bindings["rotate"] = []string{"X"}
	require.NoError(t, store.Save(settings.PreferencesOf(cfg)))

	prefs, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)

	restored := settings.Default()
	restored.ApplyPreferences(prefs)
	assert.False(t, restored.Sound.Enabled)
	assert.Equal(t, []string{"X"}, restored.Bindings["rotate"])
	assert.NoError(t, restored.Validate())
}

func TestStoreMemoryOnly(t *testing.T) {
	store := settings.NewStore(nil)

	assert.False(t, store.Persistent())
	assert.NoError(t, store.Save(settings.Preferences{Volume: 1}))

	_, ok, err := store.Load()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferencesOfCopiesBindings(t *testing.T) {
	cfg := settings.Default()
	prefs := settings.PreferencesOf(cfg)

	prefs.Bindings["rotate"][0] = "Z"

	assert.Equal(t, "Up", cfg.Bindings["rotate"][0])
}
