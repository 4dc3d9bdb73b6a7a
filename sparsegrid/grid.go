package sparsegrid

import (
	"github.com/katalvlaran/lvlgrid/coord"
)

// Grid is a sparse, unbounded 2D store of T values keyed by coordinate.
// The zero value is not usable; construct with New, NewValue or FromLines.
// A Grid is not safe for concurrent mutation.
type Grid[T comparable] struct {
	cells    map[coord.Key]Cell[T]
	def      DefaultProvider[T]
	stringer func(T) string
	padding  int
	keep     func(T) bool
	extents  *Extents // cached Extents(0); nil when it must be recomputed
}

// New returns an empty grid resolving unset coordinates through def.
// A nil def resolves to the zero value of T.
func New[T comparable](def DefaultProvider[T], opts ...Option[T]) *Grid[T] {
	if def == nil {
		var zero T
		def = Value(zero)
	}
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Grid[T]{
		cells:    make(map[coord.Key]Cell[T]),
		def:      def,
		stringer: o.stringer,
		padding:  o.padding,
		keep:     o.keep,
	}
}

// NewValue is shorthand for New(Value(v), opts...).
func NewValue[T comparable](v T, opts ...Option[T]) *Grid[T] {
	return New(Value(v), opts...)
}

// Set stores v at (x, y) and returns the grid for chaining.
// The cached extents are widened when (x, y) falls outside them.
func (g *Grid[T]) Set(x, y int, v T) *Grid[T] {
	g.cells[coord.Key{X: x, Y: y}] = Cell[T]{X: x, Y: y, Value: v}
	if g.extents != nil && !g.extents.Contains(x, y) {
		g.extents.include(x, y)
	}

	return g
}

// Get returns the stored value at (x, y) or the resolved default.
// It never stores the default.
func (g *Grid[T]) Get(x, y int) T {
	if c, ok := g.cells[coord.Key{X: x, Y: y}]; ok {
		return c.Value
	}
	return g.def.Default(x, y, g)
}

// Lookup returns the stored value at (x, y) and whether one exists.
// Unlike Get it never consults the default provider.
func (g *Grid[T]) Lookup(x, y int) (T, bool) {
	c, ok := g.cells[coord.Key{X: x, Y: y}]
	return c.Value, ok
}

// At is Get addressed by key.
func (g *Grid[T]) At(k coord.Key) T {
	return g.Get(k.X, k.Y)
}

// Default resolves the default provider at (x, y), ignoring any stored cell.
func (g *Grid[T]) Default(x, y int) T {
	return g.def.Default(x, y, g)
}

// Update replaces the value at (x, y) with fn(Get(x, y)).
func (g *Grid[T]) Update(x, y int, fn func(T) T) *Grid[T] {
	return g.Set(x, y, fn(g.Get(x, y)))
}

// Has reports whether a value is explicitly stored at (x, y), regardless of
// whether it equals the default.
func (g *Grid[T]) Has(x, y int) bool {
	_, ok := g.cells[coord.Key{X: x, Y: y}]
	return ok
}

// Remove deletes the stored cell at (x, y) and returns what Get would have
// returned immediately before. The extents cache is always dropped since
// removal may shrink the true bounds.
func (g *Grid[T]) Remove(x, y int) T {
	k := coord.Key{X: x, Y: y}
	c, ok := g.cells[k]
	if !ok {
		return g.def.Default(x, y, g)
	}
	delete(g.cells, k)
	g.extents = nil

	return c.Value
}

// Size returns the number of stored cells.
func (g *Grid[T]) Size() int {
	return len(g.cells)
}

// Extents returns the bounding box of stored cells grown by padding on every
// side. For an empty grid the degenerate sentinel (Min > Max) is returned.
// The unpadded box is cached until a Remove invalidates it.
func (g *Grid[T]) Extents(padding int) Extents {
	if g.extents == nil {
		ext := emptyExtents
		for k := range g.cells {
			ext.include(k.X, k.Y)
		}
		g.extents = &ext
	}

	return g.extents.Pad(padding)
}
