package trails

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for trail counting.
var (
	// ErrNilGrid is returned when a nil grid is passed in.
	ErrNilGrid = errors.New("trails: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trails: invalid option supplied")
)

// Option configures a trail search. Invalid values are recorded and surface
// as ErrOptionViolation when the search runs.
type Option[T constraints.Integer] func(*Options[T])

// Options holds the walk parameters.
type Options[T constraints.Integer] struct {
	// Start is the value every walk begins on (trailhead).
	Start T
	// Peak terminates a walk; any cell at or above it is a destination.
	Peak T
	// Step is the required increase between consecutive cells.
	Step T

	err error
}

// DefaultOptions returns the topographic-map defaults: 0 → 9 in steps of 1.
func DefaultOptions[T constraints.Integer]() Options[T] {
	return Options[T]{Start: 0, Peak: 9, Step: 1}
}

// WithStart sets the trailhead value.
func WithStart[T constraints.Integer](v T) Option[T] {
	return func(o *Options[T]) { o.Start = v }
}

// WithPeak sets the terminal value.
func WithPeak[T constraints.Integer](v T) Option[T] {
	return func(o *Options[T]) { o.Peak = v }
}

// WithStep sets the required increase per move; it must be positive.
func WithStep[T constraints.Integer](v T) Option[T] {
	return func(o *Options[T]) {
		if v <= 0 {
			o.err = fmt.Errorf("%w: step must be positive (%v)", ErrOptionViolation, v)
			return
		}
		o.Step = v
	}
}

func buildOptions[T constraints.Integer](opts []Option[T]) (Options[T], error) {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Peak < o.Start {
		return o, fmt.Errorf("%w: peak %v below start %v", ErrOptionViolation, o.Peak, o.Start)
	}
	return o, nil
}
