package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Fill(9)
	g.Cells()[g.Index(3, 2)] = 1

	assert.Equal(t, uint8(1), g.At(3, 2, 0))
	assert.Equal(t, uint8(7), g.At(4, 2, 7))
	assert.Equal(t, uint8(7), g.At(-1, 0, 7))
	assert.False(t, g.InBounds(0, 3))
	assert.True(t, g.InBounds(0, 0))
}

func TestByteGridSnapshotIsCopy(t *testing.T) {
	g := NewByteGrid(2, 2)
	snap := g.Snapshot()
	snap[0] = 200
	assert.Equal(t, uint8(0), g.Cells()[0])

	buf := make([]uint8, 0, 16)
	out := g.CopyTo(buf)
	assert.Len(t, out, 4)
	assert.Equal(t, 16, cap(out), "CopyTo reuses a large enough buffer")
}

func TestNewByteGridPanicsOnInvalidSize(t *testing.T) {
	assert.Panics(t, func() { NewByteGrid(0, 4) })
	assert.Panics(t, func() { NewByteGrid(4, -1) })
}

func TestViewTracksSource(t *testing.T) {
	a := NewByteGrid(2, 2)
	b := NewByteGrid(2, 2)
	b.Fill(5)
	cur := a
	v := NewSwappedView("swap", func() *ByteGrid { return cur })

	assert.Equal(t, []uint8{0, 0, 0, 0}, v.Snapshot())
	cur = b
	assert.Equal(t, []uint8{5, 5, 5, 5}, v.Snapshot())
	assert.Equal(t, Size{W: 2, H: 2}, v.Size())
	assert.Equal(t, "swap", v.Name())
}
