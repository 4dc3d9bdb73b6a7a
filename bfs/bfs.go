package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/sparsegrid"
)

// queueItem pairs a coordinate with its BFS depth.
type queueItem struct {
	key   coord.Key
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	grid     *sparsegrid.Grid[T]
	opts     Options[T]
	ctx      context.Context
	passable func(x, y int, v T) bool
	queue    []queueItem
	res      *Result
}

// Walk runs breadth-first search on g from start over the four axis-aligned
// neighbours, applying any number of functional Options.
// Returns ErrGridNil, ErrOptionViolation, ErrStartBlocked, the context error
// on cancellation, or any OnVisit error.
func Walk[T comparable](g *sparsegrid.Grid[T], start coord.Key, opts ...Option[T]) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	passable := o.Passable
	if passable == nil {
		passable = func(x, y int, _ T) bool { return g.Has(x, y) }
	}
	if !passable(start.X, start.Y, g.At(start)) {
		return nil, fmt.Errorf("%w: %s", ErrStartBlocked, start)
	}

	n := g.Size()
	w := &walker[T]{
		grid:     g,
		opts:     o,
		ctx:      o.Ctx,
		passable: passable,
		queue:    make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]coord.Key, 0, n),
			Depth:  make(map[coord.Key]int, n),
			Parent: make(map[coord.Key]coord.Key, n),
		},
	}

	w.enqueue(start, 0, nil)

	return w.res, w.loop()
}

// enqueue records k at depth d with its parent and adds it to the queue.
// Depth doubles as the visited set.
func (w *walker[T]) enqueue(k coord.Key, d int, parent *coord.Key) {
	w.res.Depth[k] = d
	if parent != nil {
		w.res.Parent[k] = *parent
	}
	w.opts.OnEnqueue(k, d)
	w.queue = append(w.queue, queueItem{key: k, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

func (w *walker[T]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the coordinate in Order and calls OnVisit.
func (w *walker[T]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.key)
	if err := w.opts.OnVisit(item.key, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", item.key, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and passability, then enqueues each
// unseen neighbour in Up, Right, Down, Left order.
func (w *walker[T]) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range item.key.Neighbors4() {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if !w.passable(nbr.X, nbr.Y, w.grid.At(nbr)) {
			continue
		}
		w.enqueue(nbr, next, &item.key)
	}
}
