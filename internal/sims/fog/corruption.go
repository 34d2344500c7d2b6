package fog

import (
	"fogcrawl/internal/core"
	"fogcrawl/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Corruption holds per-cell corruption intensity (0 safe, 255 fully
// corrupted) and the automaton that advances it.
type Corruption struct {
	mapper Mapper
	params Params

	cur *core.ByteGrid
	nxt *core.ByteGrid

	ticks int
}

// NewCorruption allocates a clean corruption grid.
func NewCorruption(m Mapper, params Params) *Corruption {
	c := &Corruption{
		mapper: m,
		params: params,
		cur:    core.NewByteGrid(m.Resolution, m.Resolution),
		nxt:    core.NewByteGrid(m.Resolution, m.Resolution),
	}
	return c
}

// Reset clears both buffers and the tick counter without reallocating.
func (c *Corruption) Reset() {
	c.cur.Clear()
	c.nxt.Clear()
	c.ticks = 0
}

// Step applies one automaton tick using explored as the immunity mask.
//
// Explored cells decay. Unexplored cells grow when they sit in the edge band
// or touch a 4-neighbour above the neighbour threshold; otherwise they hold.
// Every neighbour read comes from the previous tick's buffer, so scan order
// has no influence on the result.
func (c *Corruption) Step(explored *Exploration) {
	res := c.mapper.Resolution
	band := c.params.EdgeBand
	limit := c.params.NeighborThreshold
	grow := int(c.params.GrowthRate)
	decay := int(c.params.DecayRate)
	threshold := explored.threshold

	fog := explored.grid.Cells()
	cur := c.cur.Cells()
	nxt := c.nxt.Cells()

	grown, decayed := 0, 0
	for z := 0; z < res; z++ {
		row := z * res
		edgeRow := z < band || z >= res-band
		for x := 0; x < res; x++ {
			idx := row + x
			v := int(cur[idx])

			if fog[idx] < threshold {
				if v > 0 {
					decayed++
				}
				v -= decay
				if v < 0 {
					v = 0
				}
				nxt[idx] = uint8(v)
				continue
			}

			spreads := edgeRow || x < band || x >= res-band
			if !spreads {
				spreads = (x > 0 && cur[idx-1] > limit) ||
					(x < res-1 && cur[idx+1] > limit) ||
					(z > 0 && cur[idx-res] > limit) ||
					(z < res-1 && cur[idx+res] > limit)
			}
			if spreads && v < 255 {
				grown++
				v += grow
				if v > 255 {
					v = 255
				}
			}
			nxt[idx] = uint8(v)
		}
	}

	c.cur, c.nxt = c.nxt, c.cur
	c.ticks++

	logger.Log.WithFields(logrus.Fields{
		"component": "corruption",
		"tick":      c.ticks,
		"grown":     grown,
		"decayed":   decayed,
	}).Debug("Corruption tick applied.")
}

// CorruptionAt returns the corruption under (x, z) scaled to [0, 1]. Points
// outside the world report zero.
func (c *Corruption) CorruptionAt(x, z float64) float64 {
	gx, gz := c.mapper.WorldToCell(x, z)
	if !c.mapper.InBounds(gx, gz) {
		return 0
	}
	return float64(c.cur.Cells()[c.cur.Index(gx, gz)]) / 255
}

// Level returns the raw corruption of cell (gx, gz); out-of-bounds cells
// report zero.
func (c *Corruption) Level(gx, gz int) uint8 { return c.cur.At(gx, gz, 0) }

// Ticks returns the number of automaton ticks applied since the last reset.
func (c *Corruption) Ticks() int { return c.ticks }

// Mean returns the average corruption in [0, 1].
func (c *Corruption) Mean() float64 {
	cells := c.cur.Cells()
	sum := 0
	for _, v := range cells {
		sum += int(v)
	}
	return float64(sum) / (255 * float64(len(cells)))
}

// Fraction returns the share of cells whose corruption exceeds threshold.
func (c *Corruption) Fraction(threshold uint8) float64 {
	cells := c.cur.Cells()
	n := 0
	for _, v := range cells {
		if v > threshold {
			n++
		}
	}
	return float64(n) / float64(len(cells))
}

// View returns a read-only view that always reads the live buffer.
func (c *Corruption) View() core.View {
	return core.NewSwappedView("corruption", func() *core.ByteGrid { return c.cur })
}
