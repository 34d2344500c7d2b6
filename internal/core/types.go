package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Layer is a named, read-only grid view handed to rendering and inspection
// collaborators. Snapshot must return a copy the caller is free to keep.
type Layer interface {
	Name() string
	Size() Size
	Snapshot() []uint8
}

// View adapts a ByteGrid into a Layer without exposing the backing slice.
// The grid is resolved on every call so owners that swap buffers keep
// handing out live views.
type View struct {
	name   string
	source func() *ByteGrid
}

// NewView wraps a fixed grid under the provided name.
func NewView(name string, grid *ByteGrid) View {
	return View{name: name, source: func() *ByteGrid { return grid }}
}

// NewSwappedView wraps whatever grid source returns at call time.
func NewSwappedView(name string, source func() *ByteGrid) View {
	return View{name: name, source: source}
}

// Name identifies the layer.
func (v View) Name() string { return v.name }

// Size returns the grid dimensions.
func (v View) Size() Size {
	g := v.source()
	return Size{W: g.W, H: g.H}
}

// Snapshot copies the current cell values.
func (v View) Snapshot() []uint8 { return v.source().Snapshot() }

// CopyInto copies the current cell values into dst and returns it, letting
// per-frame exporters avoid an allocation.
func (v View) CopyInto(dst []uint8) []uint8 { return v.source().CopyTo(dst) }
