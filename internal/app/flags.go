package app

import (
	"flag"
	"fmt"

	"fogcrawl/internal/sims/fog"
)

// Config represents the command-line parameters for the viewers.
type Config struct {
	Difficulty string
	Resolution int
	WorldSize  float64
	Scale      float64
	TPS        int
	Seed       int64
	Audio      bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := fog.DefaultConfig()
	return &Config{
		Difficulty: string(fog.DifficultyNormal),
		Resolution: d.Resolution,
		WorldSize:  d.WorldSize,
		Scale:      1.5,
		TPS:        60,
		Seed:       42,
		Audio:      true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Difficulty, "difficulty", c.Difficulty, "easy, normal or hard")
	fs.IntVar(&c.Resolution, "res", c.Resolution, "grid cells per side")
	fs.Float64Var(&c.WorldSize, "world", c.WorldSize, "world side length in meters")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the observer's walk")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "play the corruption hum")
}

// FieldConfig validates the flags and builds the fog configuration.
func (c *Config) FieldConfig() (fog.Config, error) {
	d, err := fog.ParseDifficulty(c.Difficulty)
	if err != nil {
		return fog.Config{}, err
	}
	if c.Resolution <= 0 {
		return fog.Config{}, fmt.Errorf("resolution must be positive, got %d", c.Resolution)
	}
	if c.WorldSize <= 0 {
		return fog.Config{}, fmt.Errorf("world size must be positive, got %v", c.WorldSize)
	}
	if c.TPS <= 0 {
		return fog.Config{}, fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	cfg := fog.ConfigFor(d)
	cfg.Resolution = c.Resolution
	cfg.WorldSize = c.WorldSize
	return cfg, nil
}
