package sparsegrid

import (
	"strings"

	"github.com/katalvlaran/lvlgrid/coord"
)

// PushX shifts every stored cell whose x is ≥ fromX (amount > 0) or ≤ fromX
// (amount < 0) by amount along the x axis. It is the sparse equivalent of
// inserting |amount| empty columns at fromX.
func (g *Grid[T]) PushX(fromX, amount int) {
	g.push(fromX, amount, func(c *Cell[T]) *int { return &c.X })
}

// PushY is PushX along the y axis (inserting empty rows at fromY).
func (g *Grid[T]) PushY(fromY, amount int) {
	g.push(fromY, amount, func(c *Cell[T]) *int { return &c.Y })
}

// push lifts every selected cell out of the store before writing any of them
// back, so a shifted cell can never overwrite one that has not moved yet.
func (g *Grid[T]) push(from, amount int, axis func(*Cell[T]) *int) {
	if amount == 0 {
		return
	}
	var moving []Cell[T]
	for _, c := range g.cells {
		v := *axis(&c)
		if (amount > 0 && v >= from) || (amount < 0 && v <= from) {
			moving = append(moving, c)
		}
	}
	for _, c := range moving {
		delete(g.cells, coord.Key{X: c.X, Y: c.Y})
	}
	for i := range moving {
		*axis(&moving[i]) += amount
		g.cells[coord.Key{X: moving[i].X, Y: moving[i].Y}] = moving[i]
	}
	g.extents = nil
}

// Clone returns an independent grid with the same default provider, render
// settings, stored cells (values copied shallowly) and cached extents.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{
		cells:    make(map[coord.Key]Cell[T], len(g.cells)),
		def:      g.def,
		stringer: g.stringer,
		padding:  g.padding,
		keep:     g.keep,
	}
	for k, v := range g.cells {
		c.cells[k] = v
	}
	if g.extents != nil {
		ext := *g.extents
		c.extents = &ext
	}

	return c
}

// Equals reports structural equality with o:
//
//  1. Unless ignoreDefaults, both defaults (resolved at the origin) must match.
//  2. Extents(0) must be identical.
//  3. Every stored cell of either grid must equal the other grid's resolved
//     value at the same coordinate.
func (g *Grid[T]) Equals(o *Grid[T], ignoreDefaults bool) bool {
	if o == nil {
		return false
	}
	if g == o {
		return true
	}
	if !ignoreDefaults && g.def.Default(0, 0, g) != o.def.Default(0, 0, o) {
		return false
	}
	if g.Extents(0) != o.Extents(0) {
		return false
	}
	for k, c := range g.cells {
		if o.Get(k.X, k.Y) != c.Value {
			return false
		}
	}
	for k, c := range o.cells {
		if _, ok := g.cells[k]; ok {
			continue
		}
		if g.Get(k.X, k.Y) != c.Value {
			return false
		}
	}

	return true
}

// String renders the extents grown by the configured padding, one row per
// line, every token left-aligned to the widest rendered token. Unset cells
// are rendered through the default provider. Debug use only: O(W×H).
func (g *Grid[T]) String() string {
	ext := g.Extents(g.padding)
	if ext.Empty() {
		return ""
	}

	rows := make([][]string, 0, ext.Height())
	width := 0
	for y := ext.Y.Min; y <= ext.Y.Max; y++ {
		row := make([]string, 0, ext.Width())
		for x := ext.X.Min; x <= ext.X.Max; x++ {
			s := g.stringer(g.Get(x, y))
			width = max(width, len(s))
			row = append(row, s)
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.Grow((width*ext.Width() + 1) * ext.Height())
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, s := range row {
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", width-len(s)))
		}
	}

	return b.String()
}
