package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/lvlgrid/bfs"
	"github.com/katalvlaran/lvlgrid/config"
	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/cycle"
	"github.com/katalvlaran/lvlgrid/dijkstra"
	"github.com/katalvlaran/lvlgrid/floodfill"
	"github.com/katalvlaran/lvlgrid/runner"
	"github.com/katalvlaran/lvlgrid/sparsegrid"
	"github.com/katalvlaran/lvlgrid/trails"
)

var errNoStart = errors.New("lvlgrid: no start marker 'S' in input")

// command is either a two-part solver or a renderer.
type command struct {
	usage  string
	parts  func(cfg config.Config) (runner.Solver, runner.Solver)
	render func(lines []string, w io.Writer) error
}

func solve(usage string, parts func(cfg config.Config) (runner.Solver, runner.Solver)) command {
	return command{usage: usage, parts: parts}
}

var commands = map[string]command{
	"regions": solve("fence price of every plot region (area×perimeter, area×sides)",
		func(config.Config) (runner.Solver, runner.Solver) {
			return regionPrice(false), regionPrice(true)
		}),
	"trails": solve("trailhead score and rating on a topographic map",
		func(cfg config.Config) (runner.Solver, runner.Solver) {
			return trailSum(cfg.Trails, false), trailSum(cfg.Trails, true)
		}),
	"heatloss": solve("minimum heat loss under the two run-length rules",
		func(cfg config.Config) (runner.Solver, runner.Solver) {
			return heatLoss(cfg.HeatLoss.PartA), heatLoss(cfg.HeatLoss.PartB)
		}),
	"expand": solve("sum of galaxy distances after cosmic expansion",
		func(cfg config.Config) (runner.Solver, runner.Solver) {
			return expansion(cfg.Expand.PartA), expansion(cfg.Expand.PartB)
		}),
	"garden": solve("garden plots reachable in exactly n steps (bounded, tiled)",
		func(cfg config.Config) (runner.Solver, runner.Solver) {
			return gardenBounded(cfg.Garden.Steps), gardenTiled(cfg.Garden.InfiniteSteps)
		}),
	"tilt": solve("north load after one tilt and after the spin cycles",
		func(cfg config.Config) (runner.Solver, runner.Solver) {
			return tiltLoad, spinLoad(cfg.Cycle)
		}),
	"render": {
		usage: "print the parsed grid with one cell of padding",
		render: func(lines []string, w io.Writer) error {
			g := sparsegrid.FromLines(lines, sparsegrid.Runes, sparsegrid.Value('.'),
				sparsegrid.WithStringer(func(r rune) string { return string(r) }),
				sparsegrid.WithKeep(func(r rune) bool { return r != '.' }))
			_, err := fmt.Fprintf(w, "%s\nextents %s, %d stored\n", g, g.Extents(0), g.Size())
			return err
		},
	},
}

func runeGrid(lines []string, def rune) *sparsegrid.Grid[rune] {
	return sparsegrid.FromLines(lines, sparsegrid.Runes, sparsegrid.Value(def))
}

func regionPrice(bulk bool) runner.Solver {
	return func(lines []string) (int, error) {
		regions, err := floodfill.Regions(runeGrid(lines, '.'),
			floodfill.WithLabel(func(r rune) string { return string(r) }))
		if err != nil {
			return 0, err
		}
		if bulk {
			return floodfill.TotalBulkPrice(regions), nil
		}
		return floodfill.TotalPrice(regions), nil
	}
}

// heightOrHole maps '.' to an impassable -1 so hand-drawn examples parse.
func heightOrHole(r rune) (int, error) {
	if r == '.' {
		return -1, nil
	}
	return sparsegrid.Digit(r)
}

func trailSum(spec config.TrailsSpec, rating bool) runner.Solver {
	return func(lines []string) (int, error) {
		g, err := sparsegrid.FromLinesErr(lines, heightOrHole, sparsegrid.Value(-1))
		if err != nil {
			return 0, err
		}
		opts := []trails.Option[int]{trails.WithStart(spec.Start), trails.WithPeak(spec.Peak)}
		if rating {
			return trails.Rating(g, opts...)
		}
		return trails.Score(g, opts...)
	}
}

func heatLoss(run config.RunSpec) runner.Solver {
	return func(lines []string) (int, error) {
		g, err := sparsegrid.FromLinesErr(lines, sparsegrid.Digit, sparsegrid.Value(0))
		if err != nil {
			return 0, err
		}
		ext := g.Extents(0)
		if ext.Empty() {
			return 0, fmt.Errorf("%w: empty map", sparsegrid.ErrMalformedInput)
		}
		res, err := dijkstra.RunLength(g,
			coord.Of(ext.X.Min, ext.Y.Min), coord.Of(ext.X.Max, ext.Y.Max),
			dijkstra.WithRunLength(run.Min, run.Max))
		if err != nil {
			return 0, err
		}
		return res.Cost, nil
	}
}

// expansion replaces every empty row and column by factor copies of itself
// and sums the Manhattan distance over all galaxy pairs.
func expansion(factor int) runner.Solver {
	return func(lines []string) (int, error) {
		image := sparsegrid.FromLines(lines, sparsegrid.Runes, sparsegrid.Value('.'),
			sparsegrid.WithKeep(func(r rune) bool { return r == '#' }))
		expand(image, factor-1)

		cells := image.SortedCells()
		total := 0
		for i := range cells {
			a := coord.Of(cells[i].X, cells[i].Y)
			for j := i + 1; j < len(cells); j++ {
				total += a.Manhattan(coord.Of(cells[j].X, cells[j].Y))
			}
		}
		return total, nil
	}
}

// expand inserts amount empty columns and rows at each empty one of the
// original image, working right-to-left so earlier pushes do not move the
// later insertion points.
func expand(image *sparsegrid.Grid[rune], amount int) {
	original := image.Clone()
	ext := original.Extents(0)
	for x := ext.X.Max; x >= ext.X.Min; x-- {
		if len(original.ColumnCells(x)) == 0 {
			image.PushX(x, amount)
		}
	}
	for y := ext.Y.Max; y >= ext.Y.Min; y-- {
		if len(original.RowCells(y)) == 0 {
			image.PushY(y, amount)
		}
	}
}

func isPlot(_, _ int, v rune) bool { return v != '#' }

// garden parses the map and replaces the start marker with a plot.
func garden(lines []string, def sparsegrid.DefaultProvider[rune]) (*sparsegrid.Grid[rune], coord.Key, error) {
	g := sparsegrid.FromLines(lines, sparsegrid.Runes, def)
	s, ok := g.Find(func(c sparsegrid.Cell[rune]) bool { return c.Value == 'S' })
	if !ok {
		return nil, coord.Key{}, errNoStart
	}
	g.Set(s.X, s.Y, '.')
	return g, coord.Of(s.X, s.Y), nil
}

func gardenBounded(steps int) runner.Solver {
	return func(lines []string) (int, error) {
		g, start, err := garden(lines, sparsegrid.Value('#'))
		if err != nil {
			return 0, err
		}
		res, err := bfs.Walk(g, start, bfs.WithMaxDepth[rune](steps), bfs.WithPassable(isPlot))
		if err != nil {
			return 0, err
		}
		return res.CountAtParity(steps), nil
	}
}

// gardenTiled counts plots on the infinitely tiled map. Step counts up to two
// tile widths past steps mod width are walked directly. Beyond that the count
// grows quadratically per tile width, which holds for square inputs whose
// start row and column are clear, and is extrapolated from three samples.
func gardenTiled(steps int) runner.Solver {
	return func(lines []string) (int, error) {
		g, start, err := garden(lines, sparsegrid.Tiled('#'))
		if err != nil {
			return 0, err
		}
		size := g.Extents(0).Width()
		rem := steps % size
		depth := steps
		if steps > rem+2*size {
			depth = rem + 2*size
		}
		res, err := bfs.Walk(g, start, bfs.WithMaxDepth[rune](depth), bfs.WithPassable(isPlot))
		if err != nil {
			return 0, err
		}
		if depth == steps {
			return res.CountAtParity(steps), nil
		}

		y0 := res.CountAtParity(rem)
		y1 := res.CountAtParity(rem + size)
		y2 := res.CountAtParity(rem + 2*size)
		n := (steps - rem) / size
		a := (y2 - 2*y1 + y0) / 2
		b := y1 - y0 - a
		return a*n*n + b*n + y0, nil
	}
}

func platform(lines []string) *sparsegrid.Grid[rune] {
	return runeGrid(lines, '#')
}

// tilt rolls every round rock as far as it goes in direction d, nearest the
// destination edge first. Vacated cells are reset to '.', so the stored
// extents never change.
func tilt(g *sparsegrid.Grid[rune], d coord.Direction) {
	rocks := g.Filter(func(v rune) bool { return v == 'O' })
	off := d.Offset()
	along := func(c sparsegrid.Cell[rune]) int { return c.X*off.X + c.Y*off.Y }
	sort.Slice(rocks, func(i, j int) bool { return along(rocks[i]) > along(rocks[j]) })
	for _, r := range rocks {
		k := coord.Of(r.X, r.Y)
		for g.At(k.Add(d, 1)) == '.' {
			k = k.Add(d, 1)
		}
		g.Set(r.X, r.Y, '.')
		g.Set(k.X, k.Y, 'O')
	}
}

func spin(g *sparsegrid.Grid[rune]) {
	for _, d := range []coord.Direction{coord.Up, coord.Left, coord.Down, coord.Right} {
		tilt(g, d)
	}
}

func northLoad(g *sparsegrid.Grid[rune]) int {
	ext := g.Extents(0)
	total := 0
	for _, c := range g.Filter(func(v rune) bool { return v == 'O' }) {
		total += ext.Y.Max + 1 - c.Y
	}
	return total
}

func tiltLoad(lines []string) (int, error) {
	g := platform(lines)
	tilt(g, coord.Up)
	return northLoad(g), nil
}

func spinLoad(spec config.CycleSpec) runner.Solver {
	return func(lines []string) (int, error) {
		final, err := cycle.FastForward(platform(lines), spin, spec.Spins,
			cycle.WithLimit(spec.Limit), cycle.WithHashing(spec.Hashing))
		if err != nil {
			return 0, err
		}
		return northLoad(final), nil
	}
}
