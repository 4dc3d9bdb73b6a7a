package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/dijkstra"
	"github.com/katalvlaran/lvlgrid/sparsegrid"
)

var cityLines = []string{
	"2413432311323",
	"3215453535623",
	"3255245654254",
	"3446585845452",
	"4546657867536",
	"1438598798454",
	"4457876987766",
	"3637877979653",
	"4654967986887",
	"4564679986453",
	"1224686865563",
	"2546548887735",
	"4322674655533",
}

var unfairLines = []string{
	"111111111111",
	"999999999991",
	"999999999991",
	"999999999991",
	"999999999991",
}

func digits(t *testing.T, lines []string) (*sparsegrid.Grid[int], coord.Key) {
	t.Helper()
	g, err := sparsegrid.FromLinesErr(lines, sparsegrid.Digit, sparsegrid.Value(0))
	require.NoError(t, err)

	return g, coord.Of(len(lines[0])-1, len(lines)-1)
}

// ------------------------------------------------------------------------
// 1. Scenario tests: documented minimal costs.
// ------------------------------------------------------------------------

func TestRunLength_Crucible(t *testing.T) {
	g, goal := digits(t, cityLines)
	res, err := dijkstra.RunLength(g, coord.Of(0, 0), goal)
	require.NoError(t, err)
	assert.Equal(t, 102, res.Cost)

	explicit, err := dijkstra.RunLength(g, coord.Of(0, 0), goal, dijkstra.WithRunLength(1, 3))
	require.NoError(t, err)
	assert.Equal(t, res.Cost, explicit.Cost)
}

func TestRunLength_UltraCrucible(t *testing.T) {
	g, goal := digits(t, cityLines)
	res, err := dijkstra.RunLength(g, coord.Of(0, 0), goal, dijkstra.WithRunLength(4, 10))
	require.NoError(t, err)
	assert.Equal(t, 94, res.Cost)

	g, goal = digits(t, unfairLines)
	res, err = dijkstra.RunLength(g, coord.Of(0, 0), goal, dijkstra.WithRunLength(4, 10))
	require.NoError(t, err)
	assert.Equal(t, 71, res.Cost)
}

func TestRunLength_Unbounded(t *testing.T) {
	// With no run limit the search degenerates to plain Dijkstra on cells.
	g, goal := digits(t, []string{
		"19",
		"11",
	})
	res, err := dijkstra.RunLength(g, coord.Of(0, 0), goal, dijkstra.WithRunLength(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cost)
}

// ------------------------------------------------------------------------
// 2. Path reconstruction.
// ------------------------------------------------------------------------

func TestRunLength_ReturnPath(t *testing.T) {
	g, goal := digits(t, unfairLines)
	res, err := dijkstra.RunLength(g, coord.Of(0, 0), goal,
		dijkstra.WithRunLength(4, 10), dijkstra.WithReturnPath())
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, coord.Of(0, 0), res.Path[0])
	assert.Equal(t, goal, res.Path[len(res.Path)-1])

	// Every hop is a straight run of 4..10 cells, and consecutive runs turn.
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		assert.True(t, a.X == b.X || a.Y == b.Y, "hop %d not straight", i)
		n := a.Manhattan(b)
		assert.GreaterOrEqual(t, n, 4)
		assert.LessOrEqual(t, n, 10)
		if i >= 2 {
			p := res.Path[i-2]
			assert.NotEqual(t, p.Y == a.Y, a.Y == b.Y, "hop %d does not turn", i)
		}
	}

	plain, err := dijkstra.RunLength(g, coord.Of(0, 0), goal, dijkstra.WithRunLength(4, 10))
	require.NoError(t, err)
	assert.Nil(t, plain.Path)
}

func TestRunLength_StartIsGoal(t *testing.T) {
	g, _ := digits(t, cityLines)
	res, err := dijkstra.RunLength(g, coord.Of(3, 3), coord.Of(3, 3), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Cost)
	assert.Equal(t, []coord.Key{coord.Of(3, 3)}, res.Path)
}

// ------------------------------------------------------------------------
// 3. Failure modes.
// ------------------------------------------------------------------------

func TestRunLength_NoPath(t *testing.T) {
	// A three-cell corridor cannot host a four-cell run.
	g, goal := digits(t, []string{"111"})
	_, err := dijkstra.RunLength(g, coord.Of(0, 0), goal, dijkstra.WithRunLength(4, 10))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestRunLength_WallsBlock(t *testing.T) {
	g := sparsegrid.NewValue(1)
	g.Set(0, 0, 1).Set(1, 0, 1).Set(3, 0, 1)
	_, err := dijkstra.RunLength(g, coord.Of(0, 0), coord.Of(3, 0))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestRunLength_MaxCost(t *testing.T) {
	g, goal := digits(t, cityLines)
	_, err := dijkstra.RunLength(g, coord.Of(0, 0), goal, dijkstra.WithMaxCost(101))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	res, err := dijkstra.RunLength(g, coord.Of(0, 0), goal, dijkstra.WithMaxCost(102))
	require.NoError(t, err)
	assert.Equal(t, 102, res.Cost)
}

func TestRunLength_Validation(t *testing.T) {
	_, err := dijkstra.RunLength[int](nil, coord.Of(0, 0), coord.Of(1, 1))
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)

	g, goal := digits(t, cityLines)
	_, err = dijkstra.RunLength(g, coord.Of(-1, 0), goal)
	assert.ErrorIs(t, err, dijkstra.ErrCellNotFound)
	_, err = dijkstra.RunLength(g, coord.Of(0, 0), coord.Of(99, 99))
	assert.ErrorIs(t, err, dijkstra.ErrCellNotFound)

	for _, opt := range []dijkstra.Option{
		dijkstra.WithRunLength(0, 3),
		dijkstra.WithRunLength(4, 3),
		dijkstra.WithMaxCost(-1),
	} {
		_, err = dijkstra.RunLength(g, coord.Of(0, 0), goal, opt)
		assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
	}
}

func TestRunLength_NegativeWeight(t *testing.T) {
	g := sparsegrid.NewValue(0)
	g.Set(0, 0, 1).Set(1, 0, -3).Set(2, 0, 1)
	_, err := dijkstra.RunLength(g, coord.Of(0, 0), coord.Of(2, 0))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func BenchmarkRunLength_Crucible(b *testing.B) {
	g, _ := sparsegrid.FromLinesErr(cityLines, sparsegrid.Digit, sparsegrid.Value(0))
	goal := coord.Of(12, 12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.RunLength(g, coord.Of(0, 0), goal, dijkstra.WithRunLength(4, 10))
	}
}
