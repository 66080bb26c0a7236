package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpsify/tpsify/internal/sites"
)

func isolateConfigDir(t *testing.T) {
	t.Helper()

	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "#90EE90", cfg.LabelColor)
	assert.Equal(t, 2*time.Second, cfg.PollInterval())
	assert.Equal(t, 400*time.Millisecond, cfg.DebounceWindow())

	_, ok := cfg.Sites.Resolve("race.nitrotype.com")
	assert.True(t, ok)
}

func TestLoadMerged_IgnoreConfig(t *testing.T) {
	cfg, used, err := LoadMerged(Options{
		IgnoreConfig: true,
		Output:       "out",
		LabelColor:   "#FFAA00",
		Interval:     "5s",
		Debug:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, "(ignored config)", used)
	assert.Equal(t, "out", cfg.Output)
	assert.Equal(t, "#FFAA00", cfg.LabelColor)
	assert.Equal(t, 5*time.Second, cfg.PollInterval())
	assert.True(t, cfg.Debug)
}

func TestDurations_FallBackOnGarbage(t *testing.T) {
	cfg := &Config{Interval: "soon", Debounce: "-3s"}

	assert.Equal(t, 2*time.Second, cfg.PollInterval())
	assert.Equal(t, 400*time.Millisecond, cfg.DebounceWindow())
}

func TestSaveLoadYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	in := DefaultConfig()
	in.LabelColor = "#123456"
	in.Sites = sites.Table{{
		Host:  "typing.example",
		Rules: []sites.Rule{{Kind: sites.Grid, Number: ".row", Cell: ".cell", Value: "h2"}},
		Watch: []string{".stats"},
	}}
	require.NoError(t, SaveYAML(in, path))

	out, err := loadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestProfiles_CreateSwitchListRemove(t *testing.T) {
	isolateConfigDir(t)

	_, err := CreateConfig("Default")
	require.NoError(t, err)
	_, err = CreateConfig("racing")
	require.NoError(t, err)

	_, err = CreateConfig("racing")
	assert.Error(t, err, "duplicate labels must be rejected")

	require.NoError(t, SwitchConfig("racing"))

	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "racing", label)

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Default", list[0].Label)
	assert.False(t, list[0].Active)
	assert.Equal(t, "racing", list[1].Label)
	assert.True(t, list[1].Active)

	// Removing the active profile falls back to Default.
	require.NoError(t, RemoveConfig("racing"))
	label, err = CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "Default", label)

	assert.Error(t, RemoveConfig("Default"))
}

func TestLoadMerged_ActiveProfile(t *testing.T) {
	isolateConfigDir(t)

	path, err := CreateConfig("Default")
	require.NoError(t, err)
	require.NoError(t, SwitchConfig("Default"))

	saved := DefaultConfig()
	saved.LabelColor = "#ABCDEF"
	require.NoError(t, SaveYAML(saved, path))

	cfg, used, err := LoadMerged(Options{})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "#ABCDEF", cfg.LabelColor)

	// Flags lay over the profile.
	cfg, _, err = LoadMerged(Options{LabelColor: "#000001"})
	require.NoError(t, err)
	assert.Equal(t, "#000001", cfg.LabelColor)
}
