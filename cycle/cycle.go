package cycle

import (
	"fmt"

	"tailscale.com/util/deephash"

	"github.com/katalvlaran/lvlgrid/sparsegrid"
)

// Detection is the result of Detect: the period and the snapshots taken
// after 0..Start+Length-1 steps.
type Detection[T comparable] struct {
	Period
	snapshots []*sparsegrid.Grid[T]
}

// Steps returns how many snapshots were kept.
func (d *Detection[T]) Steps() int { return len(d.snapshots) }

// At returns a copy of the state after n steps. n must be non-negative.
func (d *Detection[T]) At(n int) *sparsegrid.Grid[T] {
	return d.snapshots[d.Index(n)].Clone()
}

// Detect runs step on a copy of g until a state repeats. g is not modified.
func Detect[T comparable](g *sparsegrid.Grid[T], step func(*sparsegrid.Grid[T]), opts ...Option) (*Detection[T], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if step == nil {
		return nil, ErrNilStep
	}

	var idx index[T] = &scan[T]{}
	if cfg.Hashing {
		idx = newHashed[T]()
	}

	work := g.Clone()
	snapshots := []*sparsegrid.Grid[T]{g.Clone()}
	idx.add(snapshots[0], 0)

	for i := 1; i <= cfg.Limit; i++ {
		step(work)
		if j, ok := idx.find(work); ok {
			return &Detection[T]{
				Period:    Period{Start: j, Length: i - j},
				snapshots: snapshots,
			}, nil
		}
		snap := work.Clone()
		snapshots = append(snapshots, snap)
		idx.add(snap, i)
	}

	return nil, fmt.Errorf("%w: %d steps", ErrNoCycle, cfg.Limit)
}

// FastForward returns the state of g after n applications of step, using
// Detect to skip whole periods.
func FastForward[T comparable](g *sparsegrid.Grid[T], step func(*sparsegrid.Grid[T]), n int, opts ...Option) (*sparsegrid.Grid[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative step count %d", ErrOptionViolation, n)
	}
	d, err := Detect(g, step, opts...)
	if err != nil {
		return nil, err
	}
	return d.At(n), nil
}

// index finds an earlier snapshot equal to a grid.
type index[T comparable] interface {
	add(g *sparsegrid.Grid[T], i int)
	find(g *sparsegrid.Grid[T]) (int, bool)
}

// scan compares against every snapshot in order, so the earliest match wins.
type scan[T comparable] struct {
	grids []*sparsegrid.Grid[T]
}

func (s *scan[T]) add(g *sparsegrid.Grid[T], _ int) { s.grids = append(s.grids, g) }

func (s *scan[T]) find(g *sparsegrid.Grid[T]) (int, bool) {
	for i, snap := range s.grids {
		if snap.Equals(g, false) {
			return i, true
		}
	}
	return -1, false
}

type entry[T comparable] struct {
	grid *sparsegrid.Grid[T]
	i    int
}

// hashed buckets snapshots by the digest of their canonical form.
type hashed[T comparable] struct {
	hash    func(*canonical[T]) deephash.Sum
	buckets map[deephash.Sum][]entry[T]
}

// canonical is the part of a grid that Equals looks at: its extents and
// every stored cell that differs from the default, in row-major order.
type canonical[T comparable] struct {
	Extents sparsegrid.Extents
	Cells   []sparsegrid.Cell[T]
}

func newHashed[T comparable]() *hashed[T] {
	return &hashed[T]{
		hash:    deephash.HasherForType[canonical[T]](),
		buckets: make(map[deephash.Sum][]entry[T]),
	}
}

func (h *hashed[T]) sum(g *sparsegrid.Grid[T]) deephash.Sum {
	c := canonical[T]{Extents: g.Extents(0)}
	for _, cell := range g.SortedCells() {
		if cell.Value != g.Default(cell.X, cell.Y) {
			c.Cells = append(c.Cells, cell)
		}
	}
	return h.hash(&c)
}

func (h *hashed[T]) add(g *sparsegrid.Grid[T], i int) {
	s := h.sum(g)
	h.buckets[s] = append(h.buckets[s], entry[T]{grid: g, i: i})
}

func (h *hashed[T]) find(g *sparsegrid.Grid[T]) (int, bool) {
	for _, e := range h.buckets[h.sum(g)] {
		if e.grid.Equals(g, false) {
			return e.i, true
		}
	}
	return -1, false
}
