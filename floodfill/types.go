package floodfill

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/coord"
)

// ErrNilGrid is returned when a nil grid is passed in.
var ErrNilGrid = errors.New("floodfill: grid is nil")

// Region is one connected component of equal value.
type Region[T comparable] struct {
	ID        string
	Value     T
	Cells     []coord.Key
	Area      int
	Perimeter int
	Sides     int
}

// Price is area × perimeter.
func (r Region[T]) Price() int { return r.Area * r.Perimeter }

// BulkPrice is area × sides.
func (r Region[T]) BulkPrice() int { return r.Area * r.Sides }

// Option configures Regions.
type Option[T comparable] func(*Options[T])

// Options holds the tunables for Regions.
type Options[T comparable] struct {
	// Skip marks values that never form regions (background, walls).
	Skip func(T) bool
	// Label renders a value as the ID prefix.
	Label func(T) string
}

// DefaultOptions skips nothing and labels values with fmt.Sprint.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Skip:  func(T) bool { return false },
		Label: func(v T) string { return fmt.Sprint(v) },
	}
}

// WithSkip excludes cells whose value satisfies fn.
func WithSkip[T comparable](fn func(T) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.Skip = fn
		}
	}
}

// WithLabel overrides how a value is rendered into region IDs.
func WithLabel[T comparable](fn func(T) string) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.Label = fn
		}
	}
}

// TotalPrice sums Price over regions.
func TotalPrice[T comparable](regions []Region[T]) int {
	total := 0
	for _, r := range regions {
		total += r.Price()
	}
	return total
}

// TotalBulkPrice sums BulkPrice over regions.
func TotalBulkPrice[T comparable](regions []Region[T]) int {
	total := 0
	for _, r := range regions {
		total += r.BulkPrice()
	}
	return total
}
