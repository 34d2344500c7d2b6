package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the rate every streamer in this package renders at.
const SampleRate = beep.SampleRate(44100)

// Hum is a looping low drone whose loudness follows the corruption level at
// the observer. The game loop calls SetLevel; the audio goroutine calls
// Stream, so the level crosses goroutines through an atomic.
type Hum struct {
	sr    beep.SampleRate
	freq  float64
	level atomic.Uint64

	gain  float64
	slew  float64
	phase float64
	wob   float64
}

// NewHum returns a drone at the base frequency freq (Hz). Gain glides toward
// the target level over roughly glide.
func NewHum(sr beep.SampleRate, freq float64, glide time.Duration) *Hum {
	n := sr.N(glide)
	if n < 1 {
		n = 1
	}
	return &Hum{sr: sr, freq: freq, slew: 1 / float64(n)}
}

// SetLevel sets the target loudness in [0, 1]; values outside are clamped.
func (h *Hum) SetLevel(level float64) {
	switch {
	case math.IsNaN(level), level < 0:
		level = 0
	case level > 1:
		level = 1
	}
	h.level.Store(math.Float64bits(level))
}

// Level returns the target loudness.
func (h *Hum) Level() float64 { return math.Float64frombits(h.level.Load()) }

// Gain returns the current, smoothed loudness.
func (h *Hum) Gain() float64 { return h.gain }

func (h *Hum) Stream(samples [][2]float64) (n int, ok bool) {
	target := h.Level()
	step := 2 * math.Pi * h.freq / float64(h.sr)
	wobStep := 2 * math.Pi * 0.7 / float64(h.sr)
	for i := range samples {
		switch {
		case h.gain < target:
			h.gain = math.Min(target, h.gain+h.slew)
		case h.gain > target:
			h.gain = math.Max(target, h.gain-h.slew)
		}

		// Fundamental plus a detuned fifth; the wobble deepens with gain.
		wobble := 1 + 0.3*h.gain*math.Sin(h.wob)
		sample := 0.5*math.Sin(h.phase) + 0.25*math.Sin(1.498*h.phase+0.3*math.Sin(h.wob))
		sample *= 0.35 * h.gain * wobble

		samples[i][0] = sample
		samples[i][1] = sample

		h.phase = math.Mod(h.phase+step, 2*math.Pi*1000)
		h.wob = math.Mod(h.wob+wobStep, 2*math.Pi)
	}
	return len(samples), true
}

func (h *Hum) Err() error {
	return nil
}
