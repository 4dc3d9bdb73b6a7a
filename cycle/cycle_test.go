package cycle_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/cycle"
	"github.com/katalvlaran/lvlgrid/sparsegrid"
)

var platformLines = []string{
	"O....#....",
	"O.OO#....#",
	".....##...",
	"OO.#O....O",
	".O.....O#.",
	"O.#..O.#.#",
	"..O..#O..O",
	".......O..",
	"#....###..",
	"#OO..#....",
}

func platform() *sparsegrid.Grid[rune] {
	return sparsegrid.FromLines(platformLines, sparsegrid.Runes, sparsegrid.Value('#'))
}

// tilt rolls every round rock as far as it goes in direction d. Rocks nearest
// the destination edge move first. Vacated cells are reset to '.', so the
// stored extents never change.
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

func load(g *sparsegrid.Grid[rune]) int {
	h := g.Extents(0).Height()
	total := 0
	for _, c := range g.Filter(func(v rune) bool { return v == 'O' }) {
		total += h - c.Y
	}
	return total
}

// movingCell moves the single stored cell one column right, wrapping at 5.
func movingCell(g *sparsegrid.Grid[int]) {
	c := g.SparseCells()[0]
	g.Remove(c.X, c.Y)
	g.Set((c.X+1)%5, c.Y, c.Value)
}

// saturating runs 0 → 1 → 2 → 3 → 4 → 3 → 4 …
func saturating(g *sparsegrid.Grid[int]) {
	g.Update(0, 0, func(v int) int {
		if v == 4 {
			return 3
		}
		return v + 1
	})
}

type DetectSuite struct {
	suite.Suite
	hashing bool
}

func (s *DetectSuite) opts(extra ...cycle.Option) []cycle.Option {
	return append([]cycle.Option{cycle.WithHashing(s.hashing)}, extra...)
}

func (s *DetectSuite) TestMovingCell() {
	g := sparsegrid.NewValue(0).Set(0, 0, 7)
	d, err := cycle.Detect(g, movingCell, s.opts()...)
	s.Require().NoError(err)
	s.Equal(cycle.Period{Start: 0, Length: 5}, d.Period)
	s.Equal(5, d.Steps())
	s.Equal(7, d.At(13).Get(3, 0))
}

func (s *DetectSuite) TestSaturatingCounter() {
	g := sparsegrid.NewValue(0).Set(0, 0, 0)
	d, err := cycle.Detect(g, saturating, s.opts()...)
	s.Require().NoError(err)
	s.Equal(cycle.Period{Start: 3, Length: 2}, d.Period)
	s.Equal(2, d.At(2).Get(0, 0))
	s.Equal(3, d.At(1001).Get(0, 0))
	s.Equal(4, d.At(1000).Get(0, 0))
}

func (s *DetectSuite) TestNoCycleWithinLimit() {
	g := sparsegrid.NewValue(0).Set(0, 0, 0)
	grow := func(g *sparsegrid.Grid[int]) { g.Update(0, 0, func(v int) int { return v + 1 }) }
	_, err := cycle.Detect(g, grow, s.opts(cycle.WithLimit(10))...)
	s.ErrorIs(err, cycle.ErrNoCycle)
}

func (s *DetectSuite) TestSpinCycleLoad() {
	g := platform()
	final, err := cycle.FastForward(g, spin, 1_000_000_000, s.opts()...)
	s.Require().NoError(err)
	s.Equal(64, load(final))
	// The input grid is untouched.
	s.True(g.Equals(platform(), false))
}

func (s *DetectSuite) TestCycleCloses() {
	d, err := cycle.Detect(platform(), spin, s.opts()...)
	s.Require().NoError(err)

	g := d.At(d.Start)
	for i := 0; i < d.Length; i++ {
		spin(g)
	}
	s.True(g.Equals(d.At(d.Start), false))
}

func TestDetectSuite_Scan(t *testing.T) {
	suite.Run(t, &DetectSuite{hashing: false})
}

func TestDetectSuite_Hashing(t *testing.T) {
	suite.Run(t, &DetectSuite{hashing: true})
}

func TestTiltNorthLoad(t *testing.T) {
	g := platform()
	tilt(g, coord.Up)
	assert.Equal(t, 136, load(g))
}

func TestHashingAgreesWithScan(t *testing.T) {
	linear, err := cycle.Detect(platform(), spin)
	require.NoError(t, err)
	hashed, err := cycle.Detect(platform(), spin, cycle.WithHashing(true))
	require.NoError(t, err)
	assert.Equal(t, linear.Period, hashed.Period)
	assert.Equal(t, linear.Steps(), hashed.Steps())
}

func TestHashing_DefaultValuedCellsMatchAbsent(t *testing.T) {
	// Cell (1,0) toggles between stored-as-default and removed; (0,0) and
	// (2,0) pin the extents. Both forms are equal, so the period is 1.
	g := sparsegrid.NewValue(0).Set(0, 0, 5).Set(2, 0, 5)
	toggle := func(g *sparsegrid.Grid[int]) {
		if g.Has(1, 0) {
			g.Remove(1, 0)
			return
		}
		g.Set(1, 0, 0)
	}
	for _, on := range []bool{false, true} {
		d, err := cycle.Detect(g, toggle, cycle.WithHashing(on))
		require.NoError(t, err)
		assert.Equal(t, cycle.Period{Start: 0, Length: 1}, d.Period, "hashing=%v", on)
	}
}

func TestAt_ReturnsCopy(t *testing.T) {
	d, err := cycle.Detect(sparsegrid.NewValue(0).Set(0, 0, 0), saturating)
	require.NoError(t, err)
	first := d.At(4)
	first.Set(0, 0, 99)
	assert.Equal(t, 4, d.At(4).Get(0, 0))
}

func TestDetect_Validation(t *testing.T) {
	_, err := cycle.Detect[int](nil, saturating)
	assert.ErrorIs(t, err, cycle.ErrNilGrid)

	_, err = cycle.Detect(sparsegrid.NewValue(0), nil)
	assert.ErrorIs(t, err, cycle.ErrNilStep)

	_, err = cycle.Detect(sparsegrid.NewValue(0), saturating, cycle.WithLimit(0))
	assert.ErrorIs(t, err, cycle.ErrOptionViolation)

	_, err = cycle.FastForward(sparsegrid.NewValue(0), saturating, -1)
	assert.ErrorIs(t, err, cycle.ErrOptionViolation)
}

func TestPeriod_Index(t *testing.T) {
	p := cycle.Period{Start: 3, Length: 7}
	assert.Equal(t, 2, p.Index(2))
	assert.Equal(t, 3, p.Index(10))
	assert.Equal(t, 4, p.Index(11))
	assert.Equal(t, "start=3 length=7", p.String())
}
