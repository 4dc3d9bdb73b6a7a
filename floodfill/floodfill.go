package floodfill

import (
	"strconv"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/sparsegrid"
)

// corners pairs the two orthogonal offsets around each diagonal corner of a
// cell: up-left, up-right, down-right, down-left.
var corners = [4][2]coord.Key{
	{{X: -1, Y: 0}, {X: 0, Y: -1}},
	{{X: 0, Y: -1}, {X: 1, Y: 0}},
	{{X: 1, Y: 0}, {X: 0, Y: 1}},
	{{X: 0, Y: 1}, {X: -1, Y: 0}},
}

// Regions partitions the stored cells of g into 4-connected regions of
// identical value and measures each.
//
// Behavior:
//  1. A working clone of g is consumed as cells are visited.
//  2. Seeds are taken in row-major order; skipped values are dropped.
//  3. Each seed grows its region with an explicit stack.
//  4. Per cell: area += 1, perimeter += 4 - same-valued neighbours,
//     sides += convex corners + concave corners.
//
// Only stored cells are members; the default value never joins a region.
func Regions[T comparable](g *sparsegrid.Grid[T], opts ...Option[T]) ([]Region[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}

	work := g.Clone()
	counters := make(map[T]int)
	var regions []Region[T]

	for _, seed := range g.SortedCells() {
		if !work.Has(seed.X, seed.Y) {
			continue
		}
		if o.Skip(seed.Value) {
			work.Remove(seed.X, seed.Y)
			continue
		}

		r := Region[T]{
			ID:    o.Label(seed.Value) + strconv.Itoa(counters[seed.Value]),
			Value: seed.Value,
		}
		counters[seed.Value]++

		same := func(x, y int) bool {
			v, ok := g.Lookup(x, y)
			return ok && v == seed.Value
		}

		stack := []coord.Key{{X: seed.X, Y: seed.Y}}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !work.Has(cur.X, cur.Y) {
				continue
			}
			work.Remove(cur.X, cur.Y)

			r.Cells = append(r.Cells, cur)
			r.Area++
			r.Sides += countCorners(cur, same)

			matching := 0
			for _, n := range cur.Neighbors4() {
				if !same(n.X, n.Y) {
					continue
				}
				matching++
				if work.Has(n.X, n.Y) {
					stack = append(stack, n)
				}
			}
			r.Perimeter += 4 - matching
		}
		regions = append(regions, r)
	}

	return regions, nil
}

// countCorners applies the corner rule around cell k: a convex corner when
// both orthogonal neighbours differ, a concave one when both match but the
// diagonal between them differs.
func countCorners(k coord.Key, same func(x, y int) bool) int {
	n := 0
	for _, c := range corners {
		a := same(k.X+c[0].X, k.Y+c[0].Y)
		b := same(k.X+c[1].X, k.Y+c[1].Y)
		d := same(k.X+c[0].X+c[1].X, k.Y+c[0].Y+c[1].Y)
		if (!a && !b) || (a && b && !d) {
			n++
		}
	}
	return n
}

// Fill returns the 4-connected component containing seed under member,
// in visit order. A seed that fails member yields nil. member decides on
// resolved values, so callers bounding an infinite default must reject it.
func Fill[T comparable](g *sparsegrid.Grid[T], seed coord.Key, member func(sparsegrid.Cell[T]) bool) ([]coord.Key, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cellAt := func(k coord.Key) sparsegrid.Cell[T] {
		return sparsegrid.Cell[T]{X: k.X, Y: k.Y, Value: g.At(k)}
	}
	if !member(cellAt(seed)) {
		return nil, nil
	}

	seen := map[coord.Key]struct{}{seed: {}}
	stack := []coord.Key{seed}
	var out []coord.Key
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		for _, n := range cur.Neighbors4() {
			if _, ok := seen[n]; ok {
				continue
			}
			if member(cellAt(n)) {
				seen[n] = struct{}{}
				stack = append(stack, n)
			}
		}
	}

	return out, nil
}
