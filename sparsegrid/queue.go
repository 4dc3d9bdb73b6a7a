package sparsegrid

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/coord"
)

// Peek returns some stored cell without removing it. Which cell is returned
// follows the store's enumeration order and must not be relied upon.
func (g *Grid[T]) Peek() (Cell[T], bool) {
	for _, c := range g.cells {
		return c, true
	}
	return Cell[T]{}, false
}

// Pop removes and returns some stored cell (see Peek).
// Returns ErrEmptyGrid when nothing is stored.
func (g *Grid[T]) Pop() (Cell[T], error) {
	c, ok := g.Peek()
	if !ok {
		return Cell[T]{}, ErrEmptyGrid
	}
	g.Remove(c.X, c.Y)

	return c, nil
}

// PopBy removes and returns the stored cell with the highest score.
// Ties are broken by enumeration order. This is a linear scan; hot paths
// should use a heap instead.
func (g *Grid[T]) PopBy(score func(Cell[T]) int) (Cell[T], error) {
	var (
		best    Cell[T]
		bestKey coord.Key
		bestS   int
		found   bool
	)
	for k, c := range g.cells {
		if s := score(c); !found || s > bestS {
			best, bestKey, bestS, found = c, k, s, true
		}
	}
	if !found {
		return Cell[T]{}, fmt.Errorf("%w: PopBy", ErrEmptyGrid)
	}
	g.Remove(bestKey.X, bestKey.Y)

	return best, nil
}
