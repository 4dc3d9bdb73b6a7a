package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgrid/coord"
)

// Sentinel errors returned by the run-length search.
var (
	// ErrNilGrid indicates that a nil grid was passed in.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrCellNotFound indicates that the start or goal coordinate holds no
	// stored cell. Unstored coordinates are impassable.
	ErrCellNotFound = errors.New("dijkstra: coordinate not stored in grid")

	// ErrNegativeWeight indicates that a negative cell weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative cell weight encountered")

	// ErrNoPath indicates that the frontier emptied before the goal was reached.
	ErrNoPath = errors.New("dijkstra: no path found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// axis is the discrete state carried next to a coordinate: the axis of the
// last straight run. A state may only turn onto the other axis.
type axis uint8

const (
	axisNone axis = iota
	axisHorizontal
	axisVertical
)

func axisOf(d coord.Direction) axis {
	if d.Horizontal() {
		return axisHorizontal
	}
	return axisVertical
}

// node is the composite visited/cost key.
type node = coord.State[axis]

// Options configures the run-length search.
//
// MinRun, MaxRun – every straight run between turns (and the final run into
//
//	the goal) covers at least MinRun and at most MaxRun cells.
//	MaxRun == 0 means unbounded. Defaults are 1 and 3.
//
// ReturnPath – if true, Result.Path lists the turn points from start to goal.
// MaxCost    – the search gives up once the cheapest frontier entry exceeds
//
//	this value. Default is math.MaxInt (no cap).
type Options struct {
	MinRun     int
	MaxRun     int
	ReturnPath bool
	MaxCost    int

	err error
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns the crucible defaults: runs of 1..3 cells, no path,
// no cost cap.
func DefaultOptions() Options {
	return Options{
		MinRun:  1,
		MaxRun:  3,
		MaxCost: math.MaxInt,
	}
}

// WithRunLength sets the inclusive bounds of a straight run.
// min must be ≥ 1; max must be 0 (unbounded) or ≥ min.
func WithRunLength(min, max int) Option {
	return func(o *Options) {
		if min < 1 || (max != 0 && max < min) {
			o.err = fmt.Errorf("%w: run length %d..%d", ErrOptionViolation, min, max)
			return
		}
		o.MinRun, o.MaxRun = min, max
	}
}

// WithReturnPath enables the turn-point path in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost stops exploring once the cheapest frontier cost exceeds max.
// Negative values are an ErrOptionViolation.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Cost is the sum of the weights of every entered cell; the start cell
	// is not counted.
	Cost int
	// Path holds the start, every turn point and the goal, when requested.
	Path []coord.Key
	// Expanded counts the states settled before the goal was reached.
	Expanded int
}
