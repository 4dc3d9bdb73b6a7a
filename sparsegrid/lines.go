package sparsegrid

import (
	"fmt"
)

// FromLines builds a grid from text rows: row index is y, rune index within
// the row is x, and parse maps each rune to its stored value. Values rejected
// by a WithKeep option are not stored.
func FromLines[T comparable](lines []string, parse func(r rune) T, def DefaultProvider[T], opts ...Option[T]) *Grid[T] {
	g := New(def, opts...)
	for y, line := range lines {
		x := 0
		for _, r := range line {
			if v := parse(r); g.keep(v) {
				g.Set(x, y, v)
			}
			x++
		}
	}

	return g
}

// FromLinesErr is FromLines with a fallible parser. The first rejected rune
// aborts construction with an error wrapping ErrMalformedInput.
func FromLinesErr[T comparable](lines []string, parse func(r rune) (T, error), def DefaultProvider[T], opts ...Option[T]) (*Grid[T], error) {
	g := New(def, opts...)
	for y, line := range lines {
		x := 0
		for _, r := range line {
			v, err := parse(r)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d (%q): %v", ErrMalformedInput, y, x, r, err)
			}
			if g.keep(v) {
				g.Set(x, y, v)
			}
			x++
		}
	}

	return g, nil
}

// Runes is the identity parser for FromLines.
func Runes(r rune) rune { return r }

// Digit parses '0'..'9' into its integer value.
func Digit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("not a digit")
	}
	return int(r - '0'), nil
}
