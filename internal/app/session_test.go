package app

import (
	"testing"
	"time"

	"fogcrawl/internal/audio"
	"fogcrawl/internal/sims/fog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFieldConfig() fog.Config {
	cfg := fog.DefaultConfig()
	cfg.Resolution = 64
	cfg.WorldSize = 100
	cfg.RevealRadius = 8
	cfg.TickInterval = 500 * time.Millisecond
	return cfg
}

func TestSessionFrameRevealsAndTicks(t *testing.T) {
	s := NewSession(testFieldConfig(), 5)
	ticks := 0
	for i := 0; i < 60; i++ {
		if s.Frame(50 * time.Millisecond) {
			ticks++
		}
	}
	assert.Equal(t, 6, ticks)
	assert.Equal(t, 6, s.Field.TickCount())
	assert.Greater(t, s.Field.ExplorationPercent(), 0.0)

	x, z := s.Walker.Position()
	assert.True(t, s.Field.IsRevealed(x, z), "observer always stands in revealed ground")
}

func TestSessionFeedsHumAndEndsRound(t *testing.T) {
	cfg := testFieldConfig()
	cfg.Params.EdgeBand = 64 // every unexplored cell spreads
	cfg.Params.GrowthRate = 255
	cfg.RevealRadius = 0 // nothing is ever explored
	s := NewSession(cfg, 9)
	hum := audio.NewHum(audio.SampleRate, 55, time.Millisecond)
	s.AttachHum(hum)

	s.Frame(cfg.TickInterval)
	require.Equal(t, 1, s.Field.TickCount())
	s.Frame(time.Millisecond)
	assert.Equal(t, 1.0, hum.Level())

	for i := 0; i < 100 && !s.Over(); i++ {
		s.Frame(time.Second)
	}
	require.True(t, s.Over())
	assert.Zero(t, hum.Level())
	assert.False(t, s.Frame(time.Hour), "a finished round ignores frames")

	s.Reset(10)
	assert.False(t, s.Over())
	assert.Equal(t, int64(10), s.Seed())
	assert.Zero(t, s.Field.TickCount())
	assert.Zero(t, s.Field.MeanCorruption())
	gx, gz := s.ObserverCell()
	assert.Equal(t, [2]int{32, 32}, [2]int{gx, gz})
}
