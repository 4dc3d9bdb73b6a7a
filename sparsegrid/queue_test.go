package sparsegrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/sparsegrid"
)

func TestPopAndPeek(t *testing.T) {
	g := sparsegrid.NewValue(0)
	_, ok := g.Peek()
	assert.False(t, ok)
	_, err := g.Pop()
	assert.ErrorIs(t, err, sparsegrid.ErrEmptyGrid)

	g.Set(1, 1, 11).Set(2, 2, 22)
	seen := map[int]bool{}
	for g.Size() > 0 {
		peeked, ok := g.Peek()
		require.True(t, ok)
		popped, err := g.Pop()
		require.NoError(t, err)
		assert.Equal(t, peeked, popped)
		assert.False(t, g.Has(popped.X, popped.Y))
		seen[popped.Value] = true
	}
	assert.Equal(t, map[int]bool{11: true, 22: true}, seen)
}

func TestPopBy_HighestScore(t *testing.T) {
	g := sparsegrid.NewValue(0)
	g.Set(0, 0, 5).Set(1, 0, 2).Set(2, 0, 9)

	// negating the value turns PopBy into a min-extraction
	byMin := func(c sparsegrid.Cell[int]) int { return -c.Value }
	var order []int
	for g.Size() > 0 {
		c, err := g.PopBy(byMin)
		require.NoError(t, err)
		order = append(order, c.Value)
	}
	assert.Equal(t, []int{2, 5, 9}, order)

	_, err := g.PopBy(byMin)
	assert.True(t, errors.Is(err, sparsegrid.ErrEmptyGrid))
}

func TestFromLines(t *testing.T) {
	g := sparsegrid.FromLines([]string{"ab", "c"}, sparsegrid.Runes, sparsegrid.Value[rune](empty))
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, 'b', g.Get(1, 0))
	assert.Equal(t, 'c', g.Get(0, 1))
	assert.Equal(t, rune(empty), g.Get(1, 1))

	// x counts runes, not bytes
	u := sparsegrid.FromLines([]string{"é#"}, sparsegrid.Runes, sparsegrid.Value[rune](empty))
	assert.Equal(t, rune(wall), u.Get(1, 0))
}

func TestFromLinesErr(t *testing.T) {
	g, err := sparsegrid.FromLinesErr([]string{"012", "345"}, sparsegrid.Digit, sparsegrid.Value(-1))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Get(2, 1))
	assert.Equal(t, -1, g.Get(3, 1))

	_, err = sparsegrid.FromLinesErr([]string{"01", "2x"}, sparsegrid.Digit, sparsegrid.Value(-1))
	require.ErrorIs(t, err, sparsegrid.ErrMalformedInput)
	assert.Contains(t, err.Error(), "row 1 col 1")
}

func TestFind(t *testing.T) {
	g := sparsegrid.FromLines([]string{"..#", "#^."}, sparsegrid.Runes, sparsegrid.Value[rune](empty))
	c, ok := g.Find(func(c sparsegrid.Cell[rune]) bool { return c.Value == '^' })
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 1}, [2]int{c.X, c.Y})

	walls := g.Filter(func(r rune) bool { return r == wall })
	require.Len(t, walls, 2)
	assert.Equal(t, 2, walls[0].X, "row-major: (2,0) precedes (0,1)")

	_, ok = g.Find(func(c sparsegrid.Cell[rune]) bool { return c.Value == 'z' })
	assert.False(t, ok)
}
