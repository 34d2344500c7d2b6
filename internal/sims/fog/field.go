package fog

import (
	"time"

	"fogcrawl/internal/core"
	"fogcrawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Field is the per-round fog state: the exploration grid, the corruption
// grid and the accumulator that paces corruption ticks. It is not safe for
// concurrent use; the game loop drives it from a single goroutine.
type Field struct {
	cfg    Config
	mapper Mapper

	exploration *Exploration
	corruption  *Corruption
	clock       *core.FixedStep
}

// New returns a Field with the provided dimensions using defaults.
func New(resolution int, worldSize float64) *Field {
	cfg := DefaultConfig()
	cfg.Resolution = resolution
	cfg.WorldSize = worldSize
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Field configured from the provided options. It
// panics when the resolution or world size is not positive.
func NewWithConfig(cfg Config) *Field {
	m := NewMapper(cfg.Resolution, cfg.WorldSize)
	f := &Field{
		cfg:         cfg,
		mapper:      m,
		exploration: NewExploration(m, cfg.Params.RevealThreshold),
		corruption:  NewCorruption(m, cfg.Params),
		clock:       core.NewFixedStep(cfg.TickInterval),
	}
	logger.Log.WithFields(logrus.Fields{
		"component":  "fog",
		"resolution": cfg.Resolution,
		"world_size": cfg.WorldSize,
		"difficulty": cfg.Difficulty,
	}).Debug("Fog field allocated.")
	return f
}

// Name returns the simulation identifier.
func (f *Field) Name() string { return "fog" }

// Size reports the grid dimensions.
func (f *Field) Size() core.Size {
	return core.Size{W: f.mapper.Resolution, H: f.mapper.Resolution}
}

// Config returns the configuration the field was built with.
func (f *Field) Config() Config { return f.cfg }

// Mapper returns the world/grid coordinate mapper.
func (f *Field) Mapper() Mapper { return f.mapper }

// Reset restores the round-start state: fully fogged, uncorrupted, with the
// tick accumulator at zero. No storage is reallocated.
func (f *Field) Reset() {
	f.exploration.Reset()
	f.corruption.Reset()
	f.clock.Reset()
	logger.Log.WithField("component", "fog").Debug("Fog field reset.")
}

// RevealAt clears fog in a circle of worldRadius around (x, z).
func (f *Field) RevealAt(x, z, worldRadius float64) {
	f.exploration.RevealAt(x, z, worldRadius)
}

// Reveal clears fog around (x, z) using the configured reveal radius.
func (f *Field) Reveal(x, z float64) {
	f.exploration.RevealAt(x, z, f.cfg.RevealRadius)
}

// Tick feeds the frame delta to the accumulator and runs one corruption
// step when the interval has elapsed. It reports whether a step ran.
func (f *Field) Tick(delta time.Duration) bool {
	if !f.clock.Advance(delta) {
		return false
	}
	f.corruption.Step(f.exploration)
	return true
}

// StepCorruption runs one corruption step immediately, bypassing the
// accumulator.
func (f *Field) StepCorruption() {
	f.corruption.Step(f.exploration)
}

// Update performs one frame: reveal around the observer, then advance the
// corruption clock, so a tick always sees this frame's exploration.
func (f *Field) Update(x, z float64, delta time.Duration) bool {
	f.Reveal(x, z)
	return f.Tick(delta)
}

// ExplorationPercent returns the explored share of the grid in [0, 100].
func (f *Field) ExplorationPercent() float64 { return f.exploration.ExplorationPercent() }

// IsRevealed reports whether (x, z) lies in explored territory.
func (f *Field) IsRevealed(x, z float64) bool { return f.exploration.IsRevealed(x, z) }

// CorruptionAt returns the corruption level at (x, z) in [0, 1].
func (f *Field) CorruptionAt(x, z float64) float64 { return f.corruption.CorruptionAt(x, z) }

// PixelsCleared returns the reveal operator's threshold-crossing counter.
func (f *Field) PixelsCleared() int { return f.exploration.PixelsCleared() }

// TickCount returns the corruption steps applied since the last reset.
func (f *Field) TickCount() int { return f.corruption.Ticks() }

// TickElapsed returns the time accumulated toward the next corruption step.
func (f *Field) TickElapsed() time.Duration { return f.clock.Elapsed() }

// MeanCorruption returns the average corruption over the grid in [0, 1].
func (f *Field) MeanCorruption() float64 { return f.corruption.Mean() }

// CorruptedFraction returns the share of cells with corruption above
// threshold.
func (f *Field) CorruptedFraction(threshold uint8) float64 {
	return f.corruption.Fraction(threshold)
}

// ExplorationView returns a read-only view of the fog density grid.
func (f *Field) ExplorationView() core.View { return f.exploration.View() }

// CorruptionView returns a read-only view of the corruption grid.
func (f *Field) CorruptionView() core.View { return f.corruption.View() }

// Layers lists the exportable grids, fog first.
func (f *Field) Layers() []core.Layer {
	return []core.Layer{f.ExplorationView(), f.CorruptionView()}
}
