package trails

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/sparsegrid"
)

// Reachable returns how many distinct peak cells can be reached from (x, y).
// It walks an explicit worklist and visits every coordinate at most once.
func Reachable[T constraints.Integer](g *sparsegrid.Grid[T], x, y int, opts ...Option[T]) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	return reachable(g, coord.Of(x, y), o), nil
}

func reachable[T constraints.Integer](g *sparsegrid.Grid[T], start coord.Key, o Options[T]) int {
	seen := map[coord.Key]struct{}{start: {}}
	stack := []coord.Key{start}
	peaks := 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v := g.At(cur)
		if v >= o.Peak {
			peaks++
			continue
		}
		for _, n := range cur.Neighbors4() {
			if _, ok := seen[n]; ok || g.At(n) != v+o.Step {
				continue
			}
			seen[n] = struct{}{}
			stack = append(stack, n)
		}
	}

	return peaks
}

// Paths returns how many distinct ascending walks lead from (x, y) to a peak.
func Paths[T constraints.Integer](g *sparsegrid.Grid[T], x, y int, opts ...Option[T]) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	c := counter[T]{g: g, o: o, memo: make(map[coord.Key]int)}

	return c.paths(coord.Of(x, y)), nil
}

// counter memoizes path counts per coordinate. A cell's count does not depend
// on where the walk entered it, so one memo serves every trailhead.
type counter[T constraints.Integer] struct {
	g    *sparsegrid.Grid[T]
	o    Options[T]
	memo map[coord.Key]int
}

func (c *counter[T]) paths(k coord.Key) int {
	if n, ok := c.memo[k]; ok {
		return n
	}
	v := c.g.At(k)
	if v >= c.o.Peak {
		c.memo[k] = 1
		return 1
	}
	total := 0
	for _, n := range k.Neighbors4() {
		if c.g.At(n) == v+c.o.Step {
			total += c.paths(n)
		}
	}
	c.memo[k] = total

	return total
}

// Score sums Reachable over every stored cell holding Options.Start.
func Score[T constraints.Integer](g *sparsegrid.Grid[T], opts ...Option[T]) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, head := range trailheads(g, o) {
		total += reachable(g, head, o)
	}

	return total, nil
}

// Rating sums Paths over every stored cell holding Options.Start.
func Rating[T constraints.Integer](g *sparsegrid.Grid[T], opts ...Option[T]) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	c := counter[T]{g: g, o: o, memo: make(map[coord.Key]int)}
	total := 0
	for _, head := range trailheads(g, o) {
		total += c.paths(head)
	}

	return total, nil
}

func trailheads[T constraints.Integer](g *sparsegrid.Grid[T], o Options[T]) []coord.Key {
	cells := g.Filter(func(v T) bool { return v == o.Start })
	out := make([]coord.Key, len(cells))
	for i, c := range cells {
		out[i] = coord.Of(c.X, c.Y)
	}
	return out
}
