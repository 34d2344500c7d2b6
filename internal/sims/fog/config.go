package fog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownDifficulty is returned by ParseDifficulty for unrecognised names.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects the per-round reveal radius and corruption cadence.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

type difficultyPreset struct {
	revealRadius float64
	tickInterval time.Duration
}

var difficultyPresets = map[Difficulty]difficultyPreset{
	DifficultyEasy:   {revealRadius: 35, tickInterval: 3 * time.Second},
	DifficultyNormal: {revealRadius: 25, tickInterval: 2 * time.Second},
	DifficultyHard:   {revealRadius: 15, tickInterval: 1500 * time.Millisecond},
}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := difficultyPresets[d]; !ok {
		return "", fmt.Errorf("parse difficulty %q: %w", name, ErrUnknownDifficulty)
	}
	return d, nil
}

// Difficulties lists the known presets from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// RevealRadius returns the observer reveal radius in world units.
func (d Difficulty) RevealRadius() float64 {
	if p, ok := difficultyPresets[d]; ok {
		return p.revealRadius
	}
	return difficultyPresets[DifficultyNormal].revealRadius
}

// TickInterval returns the corruption tick cadence.
func (d Difficulty) TickInterval() time.Duration {
	if p, ok := difficultyPresets[d]; ok {
		return p.tickInterval
	}
	return difficultyPresets[DifficultyNormal].tickInterval
}

// Params holds the automaton constants. Their values were tuned by hand and
// are kept as configuration rather than derived.
type Params struct {
	// RevealThreshold is the fog density below which a cell counts as explored.
	RevealThreshold uint8
	// EdgeBand is the width, in cells, of the border that always spreads.
	EdgeBand int
	// NeighborThreshold is the corruption a 4-neighbour must exceed to spread.
	NeighborThreshold uint8
	GrowthRate        uint8
	DecayRate         uint8
}

// Config controls the fog field dimensions and cadence.
type Config struct {
	Resolution int
	WorldSize  float64

	Difficulty   Difficulty
	RevealRadius float64
	TickInterval time.Duration

	Params Params
}

// DefaultParams returns the standard automaton constants.
func DefaultParams() Params {
	return Params{
		RevealThreshold:   128,
		EdgeBand:          5,
		NeighborThreshold: 100,
		GrowthRate:        15,
		DecayRate:         30,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return ConfigFor(DifficultyNormal)
}

// ConfigFor returns the standard configuration tuned for a difficulty.
func ConfigFor(d Difficulty) Config {
	return Config{
		Resolution:   512,
		WorldSize:    400,
		Difficulty:   d,
		RevealRadius: d.RevealRadius(),
		TickInterval: d.TickInterval(),
		Params:       DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["difficulty"]; ok {
		if d, err := ParseDifficulty(v); err == nil {
			c = ConfigFor(d)
		}
	}
	if v, ok := cfg["res"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Resolution = parsed
		}
	}
	if v, ok := cfg["world"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.WorldSize = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.RevealRadius = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.TickInterval = parsed
		}
	}
	if v, ok := cfg["edge_band"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.EdgeBand = parsed
		}
	}
	if v, ok := cfg["neighbor_threshold"]; ok {
		if parsed, ok := parseByte(v); ok {
			c.Params.NeighborThreshold = parsed
		}
	}
	if v, ok := cfg["growth"]; ok {
		if parsed, ok := parseByte(v); ok {
			c.Params.GrowthRate = parsed
		}
	}
	if v, ok := cfg["decay"]; ok {
		if parsed, ok := parseByte(v); ok {
			c.Params.DecayRate = parsed
		}
	}
	return c
}

func parseByte(v string) (uint8, bool) {
	parsed, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(parsed), true
}
