package fog

import (
	"fmt"
	"math"
)

// Mapper converts between world coordinates (centered on the origin) and
// cell indices of a square grid.
type Mapper struct {
	Resolution int
	WorldSize  float64
}

// NewMapper validates the dimensions and returns a Mapper. Non-positive
// values are a programming error and panic.
func NewMapper(resolution int, worldSize float64) Mapper {
	if resolution <= 0 {
		panic(fmt.Sprintf("fog: resolution must be positive, got %d", resolution))
	}
	if !(worldSize > 0) || math.IsInf(worldSize, 1) {
		panic(fmt.Sprintf("fog: world size must be positive and finite, got %v", worldSize))
	}
	return Mapper{Resolution: resolution, WorldSize: worldSize}
}

// WorldToCellF returns the fractional grid position of a world point.
func (m Mapper) WorldToCellF(x, z float64) (float64, float64) {
	half := m.WorldSize / 2
	res := float64(m.Resolution)
	return (x + half) / m.WorldSize * res, (z + half) / m.WorldSize * res
}

// WorldToCell returns the cell containing a world point. Points outside the
// world map to indices outside [0, Resolution); callers bounds-check.
func (m Mapper) WorldToCell(x, z float64) (int, int) {
	fx, fz := m.WorldToCellF(x, z)
	return m.floorIndex(fx), m.floorIndex(fz)
}

// floorIndex saturates far-away and NaN inputs to -1 or Resolution so the
// float-to-int conversion is always defined.
func (m Mapper) floorIndex(f float64) int {
	switch {
	case math.IsNaN(f), f < -1:
		return -1
	case f >= float64(m.Resolution):
		return m.Resolution
	}
	return int(math.Floor(f))
}

// WorldToCellRadius scales a world-space radius into cell units.
func (m Mapper) WorldToCellRadius(r float64) float64 {
	return r / m.WorldSize * float64(m.Resolution)
}

// CellToWorld returns the world position of the centre of cell (gx, gz).
func (m Mapper) CellToWorld(gx, gz int) (float64, float64) {
	cell := m.WorldSize / float64(m.Resolution)
	half := m.WorldSize / 2
	return (float64(gx)+0.5)*cell - half, (float64(gz)+0.5)*cell - half
}

// InBounds reports whether (gx, gz) addresses a grid cell.
func (m Mapper) InBounds(gx, gz int) bool {
	return gx >= 0 && gz >= 0 && gx < m.Resolution && gz < m.Resolution
}
