package observer

import (
	"math"
	"time"

	"fogcrawl/internal/core"
)

// CorruptionSampler reports the corruption level in [0, 1] at a world point.
type CorruptionSampler interface {
	CorruptionAt(x, z float64) float64
}

// Config tunes the wanderer's motion and how much corruption hurts it.
type Config struct {
	// Speed is the walking speed in world units per second.
	Speed float64
	// TurnRate bounds the random heading change, radians per second.
	TurnRate float64
	// DamagePerSecond is the health lost per second while standing in
	// fully corrupted ground.
	DamagePerSecond float64
	MaxHealth       float64
}

// DefaultConfig returns a brisk walker that can survive roughly ten seconds
// in full corruption.
func DefaultConfig() Config {
	return Config{Speed: 12, TurnRate: 1.5, DamagePerSecond: 10, MaxHealth: 100}
}

// Wanderer is a deterministic stand-in for the player: it random-walks
// inside a square world centred on the origin and takes damage over time
// from the corruption under its feet.
type Wanderer struct {
	cfg      Config
	halfSize float64
	rng      *core.RNG
	seed     int64

	x, z    float64
	heading float64
	health  float64
}

// NewWanderer places a wanderer at the origin of a world of side worldSize.
func NewWanderer(cfg Config, worldSize float64, seed int64) *Wanderer {
	w := &Wanderer{cfg: cfg, halfSize: worldSize / 2}
	w.Reset(seed)
	return w
}

// Reset returns the wanderer to the origin with full health and reseeds its
// heading choices.
func (w *Wanderer) Reset(seed int64) {
	w.seed = seed
	w.rng = core.NewRNG(seed)
	w.x, w.z = 0, 0
	w.heading = w.rng.Range(0, 2*math.Pi)
	w.health = w.cfg.MaxHealth
}

// Position returns the current world position.
func (w *Wanderer) Position() (float64, float64) { return w.x, w.z }

// Health returns the remaining health.
func (w *Wanderer) Health() float64 { return w.health }

// Alive reports whether health remains.
func (w *Wanderer) Alive() bool { return w.health > 0 }

// Step moves the wanderer for delta and applies corruption damage sampled at
// its new position. It bounces off the world edge instead of leaving it.
func (w *Wanderer) Step(delta time.Duration, field CorruptionSampler) {
	dt := delta.Seconds()
	if dt <= 0 {
		return
	}
	w.heading += w.rng.Range(-w.cfg.TurnRate, w.cfg.TurnRate) * dt

	nx := w.x + math.Cos(w.heading)*w.cfg.Speed*dt
	nz := w.z + math.Sin(w.heading)*w.cfg.Speed*dt
	limit := w.halfSize * 0.98
	if nx < -limit || nx > limit {
		w.heading = math.Pi - w.heading
		nx = clamp(nx, -limit, limit)
	}
	if nz < -limit || nz > limit {
		w.heading = -w.heading
		nz = clamp(nz, -limit, limit)
	}
	w.x, w.z = nx, nz

	if field != nil && w.health > 0 {
		w.health -= w.cfg.DamagePerSecond * field.CorruptionAt(w.x, w.z) * dt
		if w.health < 0 {
			w.health = 0
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
