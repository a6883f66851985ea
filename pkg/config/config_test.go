package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/hexgarden/pkg/config"
	"github.com/chazu/hexgarden/pkg/hex"
	"github.com/chazu/hexgarden/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 15, cfg.Layout.Radius)
	assert.Equal(t, tree.DefaultPhysics(), cfg.Physics)
	assert.Equal(t, 50.0, cfg.Frame.MaxStepMS)

	l, err := cfg.HexLayout()
	require.NoError(t, err)
	assert.Equal(t, hex.Flat.Name, l.Orientation.Name)
	assert.Equal(t, 2.5, l.Size.X)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[layout]
orientation = "pointy"
radius = 4

[spawn]
min_children = 2
max_children = 2
grandchild_chance = 0.0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pointy", cfg.Layout.Orientation)
	assert.Equal(t, 4, cfg.Layout.Radius)
	assert.Equal(t, 2.5, cfg.Layout.Size, "unset keys keep defaults")
	assert.Equal(t, 2, cfg.Spawn.MaxChildren)
	assert.Zero(t, cfg.Spawn.GrandchildChance)
	assert.Equal(t, 48, cfg.Spawn.Segments)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"orientation": "[layout]\norientation = \"diagonal\"\n",
		"size":        "[layout]\nsize = 0.0\n",
		"children":    "[spawn]\nmin_children = 5\nmax_children = 3\n",
		"syntax":      "[layout\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
			_, err := config.Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := config.Default()
	cfg.Layout.Radius = 7
	cfg.Seed.Random = 99

	require.NoError(t, config.Save(path, cfg))
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "hexgarden"), config.Dir())
	assert.Equal(t, filepath.Join("/tmp/xdg", "hexgarden", "config.toml"), config.Path())
}
