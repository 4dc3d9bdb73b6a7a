package sparsegrid

import (
	"sort"
)

// EachSparse calls fn for every stored cell in unspecified order.
// fn must not add or remove cells.
func (g *Grid[T]) EachSparse(fn func(x, y int, v T)) {
	for _, c := range g.cells {
		fn(c.X, c.Y, c.Value)
	}
}

// SparseCells returns a snapshot of every stored cell in unspecified order.
func (g *Grid[T]) SparseCells() []Cell[T] {
	out := make([]Cell[T], 0, len(g.cells))
	for _, c := range g.cells {
		out = append(out, c)
	}

	return out
}

// SortedCells returns the stored cells in row-major order (y, then x).
func (g *Grid[T]) SortedCells() []Cell[T] {
	out := g.SparseCells()
	sortRowMajor(out)

	return out
}

// Find returns the first stored cell in row-major order satisfying match.
func (g *Grid[T]) Find(match func(Cell[T]) bool) (Cell[T], bool) {
	for _, c := range g.SortedCells() {
		if match(c) {
			return c, true
		}
	}
	return Cell[T]{}, false
}

// Filter returns the stored cells whose value satisfies keep, row-major.
func (g *Grid[T]) Filter(keep func(T) bool) []Cell[T] {
	var out []Cell[T]
	for _, c := range g.cells {
		if keep(c.Value) {
			out = append(out, c)
		}
	}
	sortRowMajor(out)

	return out
}

// EachCell visits every coordinate inside Extents(padding), row-major,
// resolving defaults for unset coordinates. O(W×H).
func (g *Grid[T]) EachCell(fn func(x, y int, v T), padding int) {
	ext := g.Extents(padding)
	for y := ext.Y.Min; y <= ext.Y.Max; y++ {
		for x := ext.X.Min; x <= ext.X.Max; x++ {
			fn(x, y, g.Get(x, y))
		}
	}
}

// AllCells collects EachCell into a slice.
func (g *Grid[T]) AllCells(padding int) []Cell[T] {
	ext := g.Extents(padding)
	out := make([]Cell[T], 0, ext.Width()*ext.Height())
	g.EachCell(func(x, y int, v T) {
		out = append(out, Cell[T]{X: x, Y: y, Value: v})
	}, padding)

	return out
}

// AnyCell reports whether test holds for some coordinate inside the extents,
// stopping at the first match.
func (g *Grid[T]) AnyCell(test func(x, y int, v T) bool) bool {
	ext := g.Extents(0)
	for y := ext.Y.Min; y <= ext.Y.Max; y++ {
		for x := ext.X.Min; x <= ext.X.Max; x++ {
			if test(x, y, g.Get(x, y)) {
				return true
			}
		}
	}
	return false
}

// ColumnCells returns the stored cells with the given x, ordered by y.
// Coordinates without a stored value are omitted.
func (g *Grid[T]) ColumnCells(x int) []Cell[T] {
	var out []Cell[T]
	for _, c := range g.cells {
		if c.X == x {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Y < out[j].Y })

	return out
}

// RowCells returns the stored cells with the given y, ordered by x.
// Coordinates without a stored value are omitted.
func (g *Grid[T]) RowCells(y int) []Cell[T] {
	var out []Cell[T]
	for _, c := range g.cells {
		if c.Y == y {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].X < out[j].X })

	return out
}

// Adjacent returns the cells around (x, y) with resolved values, row-major.
//
//   - diagonal=true:  the (2·dist+1)² - 1 cells of the surrounding square,
//     centre excluded (8 for dist=1).
//   - diagonal=false: the four axis-aligned cells at exactly dist.
//
// dist < 1 yields no cells.
func (g *Grid[T]) Adjacent(x, y, dist int, diagonal bool) []Cell[T] {
	if dist < 1 {
		return nil
	}
	if !diagonal {
		return []Cell[T]{
			{X: x, Y: y - dist, Value: g.Get(x, y-dist)},
			{X: x - dist, Y: y, Value: g.Get(x-dist, y)},
			{X: x + dist, Y: y, Value: g.Get(x+dist, y)},
			{X: x, Y: y + dist, Value: g.Get(x, y+dist)},
		}
	}

	side := 2*dist + 1
	out := make([]Cell[T], 0, side*side-1)
	for cy := y - dist; cy <= y+dist; cy++ {
		for cx := x - dist; cx <= x+dist; cx++ {
			if cx == x && cy == y {
				continue
			}
			out = append(out, Cell[T]{X: cx, Y: cy, Value: g.Get(cx, cy)})
		}
	}

	return out
}

// Neighbors4 is Adjacent(x, y, 1, false).
func (g *Grid[T]) Neighbors4(x, y int) []Cell[T] {
	return g.Adjacent(x, y, 1, false)
}

func sortRowMajor[T any](cells []Cell[T]) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}
