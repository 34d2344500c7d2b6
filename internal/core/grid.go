package core

import "fmt"

// ByteGrid stores a square-or-rectangular 2D grid of byte-sized cell values in
// row-major order. Coordinates outside the grid are never wrapped.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Non-positive
// dimensions are a programming error and panic.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%d", w, h))
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice. Only the owning simulation may write to it.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Len returns the number of cells.
func (g *ByteGrid) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y), or fallback when out of bounds.
func (g *ByteGrid) At(x, y int, fallback uint8) uint8 {
	if !g.InBounds(x, y) {
		return fallback
	}
	return g.data[y*g.W+x]
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() { g.Fill(0) }

// CopyTo copies the cell values into dst, growing it when needed, and returns
// the filled slice.
func (g *ByteGrid) CopyTo(dst []uint8) []uint8 {
	if cap(dst) < len(g.data) {
		dst = make([]uint8, len(g.data))
	}
	dst = dst[:len(g.data)]
	copy(dst, g.data)
	return dst
}

// Snapshot returns a fresh copy of the cell values.
func (g *ByteGrid) Snapshot() []uint8 { return g.CopyTo(nil) }
