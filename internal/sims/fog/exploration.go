package fog

import (
	"math"

	"fogcrawl/internal/core"
)

const (
	fogHidden   = 255
	fogRevealed = 0
)

// Exploration tracks per-cell fog density: 255 is fully hidden, 0 fully
// revealed. Density only ever decreases, except through Reset.
type Exploration struct {
	mapper    Mapper
	grid      *core.ByteGrid
	threshold uint8

	// pixelsCleared counts threshold crossings made by RevealAt. It is a
	// cheap hint; ExplorationPercent always rescans the grid.
	pixelsCleared int
}

// NewExploration allocates a fully fogged grid. Cells with density below
// threshold count as explored.
func NewExploration(m Mapper, threshold uint8) *Exploration {
	e := &Exploration{
		mapper:    m,
		grid:      core.NewByteGrid(m.Resolution, m.Resolution),
		threshold: threshold,
	}
	e.Reset()
	return e
}

// Reset refogs every cell without reallocating.
func (e *Exploration) Reset() {
	e.grid.Fill(fogHidden)
	e.pixelsCleared = 0
}

// RevealAt paints a soft-edged circle of radius worldRadius around (x, z).
// Clearing falls off quadratically from full strength at the centre to zero
// at the rim.
func (e *Exploration) RevealAt(x, z, worldRadius float64) {
	r := e.mapper.WorldToCellRadius(worldRadius)
	if !(r > 0) || math.IsInf(r, 0) {
		return
	}
	cx, cz := e.mapper.WorldToCellF(x, z)
	if math.IsNaN(cx) || math.IsNaN(cz) {
		return
	}

	res := e.mapper.Resolution
	minX, maxX, okX := clampSpan(cx-r, cx+r, res)
	minZ, maxZ, okZ := clampSpan(cz-r, cz+r, res)
	if !okX || !okZ {
		return
	}

	cells := e.grid.Cells()
	for gz := minZ; gz <= maxZ; gz++ {
		dz := float64(gz) - cz
		row := gz * res
		for gx := minX; gx <= maxX; gx++ {
			dx := float64(gx) - cx
			d := math.Sqrt(dx*dx + dz*dz)
			if d > r {
				continue
			}
			ratio := d / r
			amount := int(math.Floor((1 - ratio*ratio) * 255))
			idx := row + gx
			old := cells[idx]
			next := int(old) - amount
			if next < fogRevealed {
				next = fogRevealed
			}
			if next >= int(old) {
				continue
			}
			cells[idx] = uint8(next)
			if old >= e.threshold && uint8(next) < e.threshold {
				e.pixelsCleared++
			}
		}
	}
}

// clampSpan returns the integer cell span [floor(lo), ceil(hi)] clipped to
// [0, res). ok is false when the span misses the grid entirely.
func clampSpan(lo, hi float64, res int) (int, int, bool) {
	if hi < 0 || lo >= float64(res) {
		return 0, 0, false
	}
	minI := 0
	if lo > 0 {
		minI = int(math.Floor(lo))
	}
	maxI := res - 1
	if hi < float64(res-1) {
		maxI = int(math.Ceil(hi))
	}
	return minI, maxI, minI <= maxI
}

// IsRevealed reports whether the cell under (x, z) is explored. Points
// outside the world are never revealed.
func (e *Exploration) IsRevealed(x, z float64) bool {
	gx, gz := e.mapper.WorldToCell(x, z)
	if !e.mapper.InBounds(gx, gz) {
		return false
	}
	return e.grid.Cells()[e.grid.Index(gx, gz)] < e.threshold
}

// Density returns the fog density of cell (gx, gz); out-of-bounds cells
// report fully hidden.
func (e *Exploration) Density(gx, gz int) uint8 {
	return e.grid.At(gx, gz, fogHidden)
}

// ExplorationPercent scans the whole grid and returns the share of explored
// cells in [0, 100].
func (e *Exploration) ExplorationPercent() float64 {
	cells := e.grid.Cells()
	explored := 0
	for _, v := range cells {
		if v < e.threshold {
			explored++
		}
	}
	return 100 * float64(explored) / float64(len(cells))
}

// PixelsCleared returns the threshold-crossing counter.
func (e *Exploration) PixelsCleared() int { return e.pixelsCleared }

// View returns a read-only view of the density grid.
func (e *Exploration) View() core.View { return core.NewView("exploration", e.grid) }
