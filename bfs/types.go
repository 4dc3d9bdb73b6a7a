package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/coord"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartBlocked is returned when the start coordinate is not passable.
	ErrStartBlocked = errors.New("bfs: start is not passable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a coordinate the walk never reached.
	ErrUnreachable = errors.New("bfs: target not reached")
)

// Option configures Walk behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize a walk.
type Options[T comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Passable decides whether a coordinate may be entered. The value is the
	// grid's resolved value, so defaults take part. A nil Passable admits
	// stored cells only.
	Passable func(x, y int, v T) bool

	// OnEnqueue is called when a coordinate is enqueued, before visiting.
	OnEnqueue func(k coord.Key, depth int)

	// OnVisit is called when visiting a coordinate. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(k coord.Key, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit, which never terminates on a grid with
	// an infinite passable default (see sparsegrid.Tiled).
	MaxDepth int

	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// stored-cells-only passability and no-op hooks.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Ctx:       context.Background(),
		OnEnqueue: func(coord.Key, int) {},
		OnVisit:   func(coord.Key, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPassable sets the predicate deciding which coordinates may be entered.
func WithPassable[T comparable](fn func(x, y int, v T) bool) Option[T] {
	return func(o *Options[T]) {
		o.Passable = fn
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[T comparable](fn func(k coord.Key, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit[T comparable](fn func(k coord.Key, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a walk:
//   - Order: coordinates visited, in visit sequence.
//   - Depth: step count from the start for every reached coordinate.
//   - Parent: predecessor of each coordinate in the BFS tree.
type Result struct {
	Order  []coord.Key
	Depth  map[coord.Key]int
	Parent map[coord.Key]coord.Key
}

// PathTo reconstructs the shortest path from the start to dest, inclusive.
func (r *Result) PathTo(dest coord.Key) ([]coord.Key, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, dest)
	}
	path := []coord.Key{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// CountAtParity returns how many coordinates can be occupied after exactly
// steps moves, allowing back-and-forth. That is every coordinate whose depth
// is at most steps and shares its parity.
func (r *Result) CountAtParity(steps int) int {
	n := 0
	for _, d := range r.Depth {
		if d <= steps && d%2 == steps%2 {
			n++
		}
	}

	return n
}
