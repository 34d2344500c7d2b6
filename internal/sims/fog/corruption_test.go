package fog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPair(res int) (*Exploration, *Corruption) {
	m := NewMapper(res, float64(res))
	p := DefaultParams()
	return NewExploration(m, p.RevealThreshold), NewCorruption(m, p)
}

func TestCorruptionSeedsEdgeBand(t *testing.T) {
	e, c := newTestPair(32)
	c.Step(e)

	for z := 0; z < 32; z++ {
		for x := 0; x < 32; x++ {
			edge := x < 5 || z < 5 || x >= 27 || z >= 27
			got := c.Level(x, z)
			if edge && got != 15 {
				t.Fatalf("edge cell (%d,%d) = %d, want 15", x, z, got)
			}
			if !edge && got != 0 {
				t.Fatalf("interior cell (%d,%d) = %d, want 0", x, z, got)
			}
		}
	}
	assert.Equal(t, 1, c.Ticks())
}

func TestCorruptionEdgeSaturates(t *testing.T) {
	e, c := newTestPair(16)
	for i := 0; i < 40; i++ {
		c.Step(e)
	}
	assert.Equal(t, uint8(255), c.Level(0, 0))
	assert.Equal(t, uint8(255), c.Level(15, 7))
}

func TestCorruptionSpreadsFromSeedWithoutBias(t *testing.T) {
	e, c := newTestPair(41)
	c.cur.Cells()[c.cur.Index(20, 20)] = 200

	c.Step(e)

	assert.Equal(t, uint8(200), c.Level(20, 20), "seed with no corrupted neighbours holds")
	for _, n := range [][2]int{{19, 20}, {21, 20}, {20, 19}, {20, 21}} {
		assert.Equal(t, uint8(15), c.Level(n[0], n[1]), "neighbour %v", n)
	}
	// Only the direct neighbours may change in one tick, whatever the scan
	// direction.
	for _, far := range [][2]int{{18, 20}, {22, 20}, {20, 18}, {20, 22}, {19, 19}, {21, 21}} {
		assert.Equal(t, uint8(0), c.Level(far[0], far[1]), "cell %v", far)
	}
}

func TestCorruptionNeighbourThresholdIsStrict(t *testing.T) {
	e, c := newTestPair(21)
	c.cur.Cells()[c.cur.Index(10, 10)] = 100

	c.Step(e)
	assert.Equal(t, uint8(0), c.Level(11, 10), "exactly the threshold does not spread")

	c.cur.Cells()[c.cur.Index(10, 10)] = 101
	c.Step(e)
	assert.Equal(t, uint8(15), c.Level(11, 10))
}

func TestCorruptionDecaysInExploredCells(t *testing.T) {
	e, c := newTestPair(32)
	for i := range c.cur.Cells() {
		c.cur.Cells()[i] = 255
	}
	e.RevealAt(0, 0, 8)

	explored := []int{}
	for i, v := range e.grid.Cells() {
		if v < 128 {
			explored = append(explored, i)
		}
	}
	require.NotEmpty(t, explored)

	prev := c.cur.Snapshot()
	for tick := 0; tick < 12; tick++ {
		c.Step(e)
		cur := c.cur.Cells()
		for _, idx := range explored {
			want := int(prev[idx]) - 30
			if want < 0 {
				want = 0
			}
			if int(cur[idx]) != want {
				t.Fatalf("tick %d: explored cell %d = %d, want %d", tick, idx, cur[idx], want)
			}
		}
		prev = c.cur.CopyTo(prev)
	}
	for _, idx := range explored {
		if prev[idx] != 0 {
			t.Fatalf("explored cell %d still corrupted after decay: %d", idx, prev[idx])
		}
	}
}

func TestCorruptionHaltsAtExploredRing(t *testing.T) {
	e, c := newTestPair(48)
	// Reveal the whole interior so only the edge band stays unexplored.
	for z := 6; z < 42; z++ {
		for x := 6; x < 42; x++ {
			e.grid.Cells()[e.grid.Index(x, z)] = 0
		}
	}
	for i := 0; i < 50; i++ {
		c.Step(e)
	}
	for z := 6; z < 42; z++ {
		for x := 6; x < 42; x++ {
			if lvl := c.Level(x, z); lvl != 0 {
				t.Fatalf("explored cell (%d,%d) corrupted to %d", x, z, lvl)
			}
		}
	}
	assert.Equal(t, uint8(255), c.Level(5, 20), "unexplored ring next to the band fills up")
}

func TestCorruptionAtScalesAndBounds(t *testing.T) {
	e, c := newTestPair(20)
	c.Step(e)

	assert.InDelta(t, 15.0/255, c.CorruptionAt(-9.5, -9.5), 1e-12)
	assert.Zero(t, c.CorruptionAt(0, 0))
	assert.Zero(t, c.CorruptionAt(1e9, 0))
	assert.Zero(t, c.CorruptionAt(0, -1e9))
}

func TestCorruptionResetClearsBothBuffers(t *testing.T) {
	e, c := newTestPair(16)
	for i := 0; i < 3; i++ {
		c.Step(e)
	}
	c.Reset()
	for i := range c.cur.Cells() {
		if c.cur.Cells()[i] != 0 || c.nxt.Cells()[i] != 0 {
			t.Fatalf("cell %d not cleared", i)
		}
	}
	assert.Zero(t, c.Ticks())
	assert.Zero(t, c.Mean())
}
