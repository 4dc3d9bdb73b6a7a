package cycle

import (
	"errors"
	"fmt"
)

// Sentinel errors for cycle detection.
var (
	// ErrNilGrid is returned when a nil grid is passed in.
	ErrNilGrid = errors.New("cycle: grid is nil")

	// ErrNilStep is returned when no step function is supplied.
	ErrNilStep = errors.New("cycle: step function is nil")

	// ErrNoCycle is returned when no state repeats within the iteration limit.
	ErrNoCycle = errors.New("cycle: no cycle found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cycle: invalid option supplied")
)

// DefaultLimit is the iteration ceiling used when WithLimit is not given.
const DefaultLimit = 1_000_000

// Period describes a detected cycle: the state after Start steps recurs
// after Start+Length steps.
type Period struct {
	Start  int
	Length int
}

// Index maps an iteration count n to the snapshot holding the same state.
// Counts before Start map to themselves.
func (p Period) Index(n int) int {
	if n < p.Start || p.Length == 0 {
		return n
	}
	return p.Start + (n-p.Start)%p.Length
}

func (p Period) String() string {
	return fmt.Sprintf("start=%d length=%d", p.Start, p.Length)
}

// Options configures Detect.
type Options struct {
	// Limit is the maximum number of step applications.
	Limit int
	// Hashing enables digest-indexed snapshot lookup.
	Hashing bool

	err error
}

// Option is a functional option for Detect.
type Option func(*Options)

// DefaultOptions returns a linear-scan configuration with DefaultLimit.
func DefaultOptions() Options {
	return Options{Limit: DefaultLimit}
}

// WithLimit sets the iteration ceiling; n must be positive.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: limit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithHashing toggles digest-indexed snapshot lookup.
func WithHashing(on bool) Option {
	return func(o *Options) {
		o.Hashing = on
	}
}
