package fog

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Resolution = 64
	cfg.WorldSize = 100
	cfg.RevealRadius = 10
	cfg.TickInterval = 2 * time.Second
	return cfg
}

func TestTickIsGatedByInterval(t *testing.T) {
	f := NewWithConfig(smallConfig())

	assert.False(t, f.Tick(500*time.Millisecond))
	assert.False(t, f.Tick(time.Second))
	assert.Equal(t, 1500*time.Millisecond, f.TickElapsed())
	assert.True(t, f.Tick(600*time.Millisecond))
	assert.Zero(t, f.TickElapsed(), "accumulator restarts after a tick")
	assert.Equal(t, 1, f.TickCount())

	// A single long frame fires once, not a burst.
	assert.True(t, f.Tick(10*time.Second))
	assert.Equal(t, 2, f.TickCount())
	assert.False(t, f.Tick(0))
}

func TestTickCadenceIndependentOfFrameRate(t *testing.T) {
	fast := NewWithConfig(smallConfig())
	slow := NewWithConfig(smallConfig())

	for i := 0; i < 60*10; i++ {
		fast.Tick(time.Second / 60)
	}
	for i := 0; i < 20*10; i++ {
		slow.Tick(time.Second / 20)
	}
	// 10s of simulated time at 2s per tick; rounding of the frame delta
	// may leave the last tick one frame short.
	assert.InDelta(t, 5, fast.TickCount(), 1)
	assert.InDelta(t, 5, slow.TickCount(), 1)
}

func TestUpdateRevealsBeforeTick(t *testing.T) {
	f := NewWithConfig(smallConfig())
	gx, gz := f.Mapper().WorldToCell(0, 0)
	idx := f.corruption.cur.Index(gx, gz)
	f.corruption.cur.Cells()[idx] = 60
	// Give the centre a corrupted neighbour so it would grow if unexplored.
	f.corruption.cur.Cells()[idx+1] = 200

	ran := f.Update(0, 0, f.Config().TickInterval)
	require.True(t, ran)
	assert.Equal(t, uint8(30), f.corruption.Level(gx, gz), "centre decays because this frame's reveal is visible to the tick")
}

func TestResetMatchesFreshField(t *testing.T) {
	cfg := smallConfig()
	fresh := NewWithConfig(cfg)
	f := NewWithConfig(cfg)

	for i := 0; i < 30; i++ {
		f.Update(float64(i)-15, float64(i%7), 700*time.Millisecond)
	}
	require.NotZero(t, f.PixelsCleared())
	require.NotZero(t, f.TickCount())

	expCells := &f.exploration.grid.Cells()[0]
	f.Reset()
	first := snapshotState(f)
	f.Reset()
	second := snapshotState(f)

	assert.Equal(t, snapshotState(fresh), first)
	assert.Equal(t, first, second)
	assert.Same(t, expCells, &f.exploration.grid.Cells()[0], "reset must not reallocate")
}

type fieldState struct {
	exploration []uint8
	corruption  []uint8
	cleared     int
	elapsed     time.Duration
	ticks       int
}

func snapshotState(f *Field) fieldState {
	return fieldState{
		exploration: f.ExplorationView().Snapshot(),
		corruption:  f.CorruptionView().Snapshot(),
		cleared:     f.PixelsCleared(),
		elapsed:     f.TickElapsed(),
		ticks:       f.TickCount(),
	}
}

func TestViewsAreCopies(t *testing.T) {
	f := NewWithConfig(smallConfig())
	f.StepCorruption()

	snap := f.CorruptionView().Snapshot()
	for i := range snap {
		snap[i] = 0
	}
	fog := f.ExplorationView().Snapshot()
	for i := range fog {
		fog[i] = 0
	}

	assert.Zero(t, f.ExplorationPercent())
	assert.InDelta(t, 15.0/255, f.CorruptionAt(-49, -49), 1e-12)

	layers := f.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, "exploration", layers[0].Name())
	assert.Equal(t, "corruption", layers[1].Name())
	assert.Equal(t, f.Size(), layers[1].Size())
}

func TestCorruptionViewFollowsSwap(t *testing.T) {
	f := NewWithConfig(smallConfig())
	view := f.CorruptionView()
	f.StepCorruption()

	assert.True(t, slices.Contains(view.Snapshot(), 15), "view taken before the swap must see the live buffer")
	f.StepCorruption()
	assert.True(t, slices.Contains(view.Snapshot(), 30))
	assert.Len(t, view.Snapshot(), 64*64)
}

func TestFieldOutOfBoundsQueries(t *testing.T) {
	f := NewWithConfig(smallConfig())
	f.RevealAt(1e6, 1e6, 30)
	f.StepCorruption()

	assert.False(t, f.IsRevealed(1e6, 1e6))
	assert.Zero(t, f.CorruptionAt(-1e6, 3))
	assert.Zero(t, f.ExplorationPercent())
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	assert.Panics(t, func() { New(0, 400) })
	assert.Panics(t, func() { New(128, 0) })
}

func TestParametersSnapshot(t *testing.T) {
	f := NewWithConfig(smallConfig())
	snap := f.Parameters()

	p, ok := snap.Lookup("edge_band")
	require.True(t, ok)
	assert.Equal(t, "5", p.Value)

	p, ok = snap.Lookup("interval")
	require.True(t, ok)
	assert.Equal(t, "2s", p.Value)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestStatsTrackCorruption(t *testing.T) {
	f := NewWithConfig(smallConfig())
	assert.Zero(t, f.MeanCorruption())
	f.StepCorruption()

	band := 64*64 - 54*54
	assert.InDelta(t, float64(band)/(64*64), f.CorruptedFraction(0), 1e-12)
	assert.InDelta(t, float64(band)*15/(255*64*64), f.MeanCorruption(), 1e-12)
	assert.Zero(t, f.CorruptedFraction(15))
}
