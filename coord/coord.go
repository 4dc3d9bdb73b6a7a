package coord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedKey indicates text that cannot be parsed back into a Key.
var ErrMalformedKey = errors.New("coord: malformed key")

// Key identifies a single grid coordinate.
type Key struct {
	X, Y int
}

// Of returns the canonical key for (x, y).
func Of(x, y int) Key {
	return Key{X: x, Y: y}
}

// String renders the key as "x,y".
func (k Key) String() string {
	return strconv.Itoa(k.X) + "," + strconv.Itoa(k.Y)
}

// Parse is the inverse of Key.String.
func Parse(s string) (Key, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Key{}, fmt.Errorf("%w: %q has no separator", ErrMalformedKey, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q: %v", ErrMalformedKey, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q: %v", ErrMalformedKey, s, err)
	}

	return Key{X: x, Y: y}, nil
}

// Add returns the key n steps away in direction d.
func (k Key) Add(d Direction, n int) Key {
	off := d.Offset()
	return Key{X: k.X + off.X*n, Y: k.Y + off.Y*n}
}

// Offset returns k translated by (dx, dy).
func (k Key) Offset(dx, dy int) Key {
	return Key{X: k.X + dx, Y: k.Y + dy}
}

// Manhattan returns |dx| + |dy| between k and o.
func (k Key) Manhattan(o Key) int {
	return abs(k.X-o.X) + abs(k.Y-o.Y)
}

// Neighbors4 returns the four orthogonal neighbours in Directions order.
func (k Key) Neighbors4() [4]Key {
	var out [4]Key
	for i, d := range Directions {
		out[i] = k.Add(d, 1)
	}

	return out
}

// State is a Key extended with one extra discrete dimension.
// It is comparable whenever S is, and is meant to be used as a map key.
type State[S comparable] struct {
	Key
	S S
}

// At builds a composite key for coordinate k carrying state s.
func At[S comparable](k Key, s S) State[S] {
	return State[S]{Key: k, S: s}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
