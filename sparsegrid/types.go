package sparsegrid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for sparse grid operations.
var (
	// ErrEmptyGrid indicates a Pop/PopBy on a grid without stored cells.
	ErrEmptyGrid = errors.New("sparsegrid: grid has no stored cells")

	// ErrMalformedInput indicates a FromLinesErr parser rejected a character.
	ErrMalformedInput = errors.New("sparsegrid: malformed input")
)

// Cell is a stored (or resolved) grid value together with its coordinate.
type Cell[T any] struct {
	X, Y  int
	Value T
}

// Span is an inclusive [Min, Max] interval along one axis.
type Span struct {
	Min, Max int
}

// Len returns the number of integer positions in the span (0 when empty).
func (s Span) Len() int {
	if s.Min > s.Max {
		return 0
	}
	return s.Max - s.Min + 1
}

// Contains reports whether v lies inside the span.
func (s Span) Contains(v int) bool {
	return s.Min <= v && v <= s.Max
}

// Extents is the bounding box [[X.Min, X.Max], [Y.Min, Y.Max]] over stored cells.
type Extents struct {
	X, Y Span
}

// emptyExtents is the degenerate sentinel returned for a grid with no cells.
var emptyExtents = Extents{
	X: Span{Min: math.MaxInt, Max: math.MinInt},
	Y: Span{Min: math.MaxInt, Max: math.MinInt},
}

// Empty reports whether the box is the "no cells" sentinel (min > max).
func (e Extents) Empty() bool {
	return e.X.Min > e.X.Max || e.Y.Min > e.Y.Max
}

// Contains reports whether (x, y) lies inside the box.
func (e Extents) Contains(x, y int) bool {
	return e.X.Contains(x) && e.Y.Contains(y)
}

// Width is the number of columns covered.
func (e Extents) Width() int { return e.X.Len() }

// Height is the number of rows covered.
func (e Extents) Height() int { return e.Y.Len() }

// Pad grows the box by p on every side. The empty sentinel is returned unchanged.
func (e Extents) Pad(p int) Extents {
	if e.Empty() || p == 0 {
		return e
	}
	return Extents{
		X: Span{Min: e.X.Min - p, Max: e.X.Max + p},
		Y: Span{Min: e.Y.Min - p, Max: e.Y.Max + p},
	}
}

// include widens the box to cover (x, y).
func (e *Extents) include(x, y int) {
	e.X.Min = min(e.X.Min, x)
	e.X.Max = max(e.X.Max, x)
	e.Y.Min = min(e.Y.Min, y)
	e.Y.Max = max(e.Y.Max, y)
}

func (e Extents) String() string {
	if e.Empty() {
		return "[empty]"
	}
	return fmt.Sprintf("[[%d,%d],[%d,%d]]", e.X.Min, e.X.Max, e.Y.Min, e.Y.Max)
}

// Option configures a Grid at construction time.
type Option[T comparable] func(*options[T])

type options[T comparable] struct {
	stringer func(T) string
	padding  int
	keep     func(T) bool
}

func defaultOptions[T comparable]() options[T] {
	return options[T]{
		stringer: func(v T) string { return fmt.Sprint(v) },
		padding:  1,
		keep:     func(T) bool { return true },
	}
}

// WithStringer sets the per-value renderer used by String.
func WithStringer[T comparable](fn func(T) string) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.stringer = fn
		}
	}
}

// WithPadding sets how many default-valued cells String renders around the
// extents. Negative values are treated as zero.
func WithPadding[T comparable](p int) Option[T] {
	return func(o *options[T]) {
		o.padding = max(p, 0)
	}
}

// WithKeep filters which parsed values FromLines stores; values for which fn
// returns false are left to the default provider.
func WithKeep[T comparable](fn func(T) bool) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.keep = fn
		}
	}
}
