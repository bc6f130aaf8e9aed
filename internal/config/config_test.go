package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/midi-starshow/internal/light"
	"github.com/iburimskiy/midi-starshow/internal/palette"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1280, cfg.ViewportWidth)
	assert.Equal(t, 720, cfg.ViewportHeight)
	assert.Equal(t, 60, cfg.TargetFrameRate)
	assert.Equal(t, 25, cfg.LightCount)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, light.SpawnChaos, mode)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, palette.Pastel, p)

	bg, err := cfg.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, palette.Color{R: 20, G: 20, B: 30}, bg)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "show.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
spawnMode: circle
lightCount: 12
paletteColors: ["#ff0000", "#00ff00"]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "circle", cfg.SpawnMode)
	assert.Equal(t, 12, cfg.LightCount)
	assert.Equal(t, 1280, cfg.ViewportWidth)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, palette.Palette{{R: 255}, {G: 255}}, p)

	assert.Equal(t, 12, cfg.Layout().Slots)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lightCount: [1, 2"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*Config){
		"width":      func(c *Config) { c.ViewportWidth = 0 },
		"fps":        func(c *Config) { c.TargetFrameRate = -1 },
		"count":      func(c *Config) { c.LightCount = 0 },
		"margin":     func(c *Config) { c.SpawnMargin = 400 },
		"mode":       func(c *Config) { c.SpawnMode = "spiral" },
		"palette":    func(c *Config) { c.PaletteColors = nil },
		"color":      func(c *Config) { c.PaletteColors = []string{"#zzzzzz"} },
		"background": func(c *Config) { c.Background = "dark" },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

// Not parallel: mutates the environment.
func TestApplyEnv(t *testing.T) {
	t.Setenv("STARSHOW_FPS", "30")
	t.Setenv("STARSHOW_SPAWN_MODE", "circle")
	t.Setenv("STARSHOW_PALETTE", "#ffffff, #000000")
	t.Setenv("STARSHOW_SEED", "42")
	t.Setenv("STARSHOW_DEBUG", "true")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 30, cfg.TargetFrameRate)
	assert.Equal(t, "circle", cfg.SpawnMode)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Debug)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Len(t, p, 2)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv("STARSHOW_LIGHT_COUNT", "many")

	require.Error(t, Default().ApplyEnv())
}
