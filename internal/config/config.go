package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/midi-starshow/internal/light"
	"github.com/iburimskiy/midi-starshow/internal/palette"
)

const (
	ViewportWidth   = 1280
	ViewportHeight  = 720
	TargetFrameRate = 60
	LightCount      = 25

	// Spawn layout
	SpawnMargin  = 50
	CircleRadius = 250

	Background = "#14141e"

	envPrefix = "STARSHOW_"
)

// Config holds every run-wide option of the show.
type Config struct {
	ViewportWidth   int      `yaml:"viewportWidth"`
	ViewportHeight  int      `yaml:"viewportHeight"`
	TargetFrameRate int      `yaml:"targetFrameRate"`
	SpawnMode       string   `yaml:"spawnMode"`
	LightCount      int      `yaml:"lightCount"`
	PaletteColors   []string `yaml:"paletteColors"`

	Background   string  `yaml:"background"`
	SpawnMargin  int     `yaml:"spawnMargin"`
	CircleRadius float64 `yaml:"circleRadius"`

	// Seed fixes the random source; 0 picks one from the clock.
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"logLevel"`
	Debug    bool   `yaml:"debug"`
}

// Default returns the reference show.
func Default() *Config {
	return &Config{
		ViewportWidth:   ViewportWidth,
		ViewportHeight:  ViewportHeight,
		TargetFrameRate: TargetFrameRate,
		SpawnMode:       string(light.SpawnChaos),
		LightCount:      LightCount,
		PaletteColors:   palette.Pastel.Hex(),
		Background:      Background,
		SpawnMargin:     SpawnMargin,
		CircleRadius:    CircleRadius,
		LogLevel:        "info",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WithStackTrace(fmt.Errorf("parsing %s: %w", path, err))
	}
	return cfg, nil
}

// ApplyEnv overrides fields from STARSHOW_* variables. Unparsable values are
// reported, not ignored.
func (c *Config) ApplyEnv() error {
	ints := map[string]*int{
		"WIDTH":        &c.ViewportWidth,
		"HEIGHT":       &c.ViewportHeight,
		"FPS":          &c.TargetFrameRate,
		"LIGHT_COUNT":  &c.LightCount,
		"SPAWN_MARGIN": &c.SpawnMargin,
	}
	for name, dst := range ints {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*dst = n
	}

	if v, ok := os.LookupEnv(envPrefix + "SPAWN_MODE"); ok {
		c.SpawnMode = v
	}
	if v, ok := os.LookupEnv(envPrefix + "PALETTE"); ok {
		c.PaletteColors = strings.Split(v, ",")
	}
	if v, ok := os.LookupEnv(envPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = n
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(envPrefix + "DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEBUG: %w", envPrefix, err)
		}
		c.Debug = b
	}
	return nil
}

// Validate checks the options that would otherwise break the show at run
// time.
func (c *Config) Validate() error {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", c.ViewportWidth, c.ViewportHeight)
	}
	if c.TargetFrameRate <= 0 {
		return fmt.Errorf("targetFrameRate must be positive, got %d", c.TargetFrameRate)
	}
	if c.LightCount <= 0 {
		return fmt.Errorf("lightCount must be positive, got %d", c.LightCount)
	}
	if c.SpawnMargin < 0 || 2*c.SpawnMargin > min(c.ViewportWidth, c.ViewportHeight) {
		return fmt.Errorf("spawnMargin %d does not fit a %dx%d viewport", c.SpawnMargin, c.ViewportWidth, c.ViewportHeight)
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Mode() (light.SpawnMode, error) {
	return light.ParseSpawnMode(c.SpawnMode)
}

func (c *Config) Palette() (palette.Palette, error) {
	trimmed := make([]string, len(c.PaletteColors))
	for i, s := range c.PaletteColors {
		trimmed[i] = strings.TrimSpace(s)
	}
	return palette.FromHex(trimmed)
}

func (c *Config) BackgroundColor() (palette.Color, error) {
	return palette.ParseHex(c.Background)
}

// Layout describes the viewport for the spawn policies.
func (c *Config) Layout() light.Layout {
	return light.Layout{
		Width:  c.ViewportWidth,
		Height: c.ViewportHeight,
		Margin: c.SpawnMargin,
		Radius: c.CircleRadius,
		Slots:  c.LightCount,
	}
}
