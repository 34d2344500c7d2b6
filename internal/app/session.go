package app

import (
	"time"

	"fogcrawl/internal/audio"
	"fogcrawl/internal/observer"
	"fogcrawl/internal/sims/fog"
	"fogcrawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Session wires one round together: the fog field, the observer walking
// through it and the optional hum that follows the corruption underfoot.
// Every viewer drives it one frame at a time.
type Session struct {
	Field  *fog.Field
	Walker *observer.Wanderer

	hum    *audio.Hum
	seed   int64
	frames int
	over   bool
}

// NewSession builds a fresh round.
func NewSession(cfg fog.Config, seed int64) *Session {
	return &Session{
		Field:  fog.NewWithConfig(cfg),
		Walker: observer.NewWanderer(observer.DefaultConfig(), cfg.WorldSize, seed),
		seed:   seed,
	}
}

// AttachHum routes the corruption level at the observer to h every frame.
func (s *Session) AttachHum(h *audio.Hum) { s.hum = h }

// Frame advances the round by delta: move the observer, reveal around it,
// then let the corruption clock run. It reports whether corruption ticked.
func (s *Session) Frame(delta time.Duration) bool {
	if s.over {
		return false
	}
	s.frames++
	s.Walker.Step(delta, s.Field)
	x, z := s.Walker.Position()
	ticked := s.Field.Update(x, z, delta)

	level := s.Field.CorruptionAt(x, z)
	if s.hum != nil {
		s.hum.SetLevel(level)
	}
	if ticked {
		logger.Log.WithFields(logrus.Fields{
			"component":  "session",
			"tick":       s.Field.TickCount(),
			"explored":   s.Field.ExplorationPercent(),
			"corruption": level,
			"health":     s.Walker.Health(),
		}).Debug("Corruption advanced.")
	}
	if !s.Walker.Alive() {
		s.over = true
		if s.hum != nil {
			s.hum.SetLevel(0)
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"frames":    s.frames,
			"explored":  s.Field.ExplorationPercent(),
		}).Info("Observer reclaimed by corruption.")
	}
	return ticked
}

// Reset restarts the round in place with a new walk seed.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.frames = 0
	s.over = false
	s.Field.Reset()
	s.Walker.Reset(seed)
	if s.hum != nil {
		s.hum.SetLevel(0)
	}
}

// Seed returns the seed of the current walk.
func (s *Session) Seed() int64 { return s.seed }

// Over reports whether the observer has been reclaimed.
func (s *Session) Over() bool { return s.over }

// ObserverCell returns the grid cell under the observer.
func (s *Session) ObserverCell() (int, int) {
	x, z := s.Walker.Position()
	return s.Field.Mapper().WorldToCell(x, z)
}

// Health returns the observer's remaining health.
func (s *Session) Health() float64 { return s.Walker.Health() }
