package sparsegrid

// DefaultProvider resolves the value of a coordinate that holds no stored cell.
// The grid being read is passed in on every call, so a provider that needs to
// "ask the grid itself" never has to capture it.
type DefaultProvider[T comparable] interface {
	Default(x, y int, g *Grid[T]) T
}

type valueDefault[T comparable] struct{ v T }

func (d valueDefault[T]) Default(int, int, *Grid[T]) T { return d.v }

// Value returns a provider resolving every unset coordinate to v.
func Value[T comparable](v T) DefaultProvider[T] {
	return valueDefault[T]{v: v}
}

// Factory returns a provider that calls fn on every miss.
func Factory[T comparable](fn func() T) DefaultProvider[T] {
	return DefaultFunc[T](func(int, int, *Grid[T]) T { return fn() })
}

// DefaultFunc adapts a coordinate- and grid-aware function to DefaultProvider.
type DefaultFunc[T comparable] func(x, y int, g *Grid[T]) T

// Default implements DefaultProvider.
func (f DefaultFunc[T]) Default(x, y int, g *Grid[T]) T { return f(x, y, g) }

// Tiled returns a provider that repeats the stored extents of the grid in
// every direction: an unset (x, y) resolves to the stored cell at the same
// position modulo the grid's width and height. Positions that map onto an
// unset cell, or any read on an empty grid, resolve to fallback.
func Tiled[T comparable](fallback T) DefaultProvider[T] {
	return DefaultFunc[T](func(x, y int, g *Grid[T]) T {
		ext := g.Extents(0)
		if ext.Empty() {
			return fallback
		}
		wx := ext.X.Min + mod(x-ext.X.Min, ext.Width())
		wy := ext.Y.Min + mod(y-ext.Y.Min, ext.Height())
		if v, ok := g.Lookup(wx, wy); ok {
			return v
		}
		return fallback
	})
}

// mod is the always-non-negative remainder.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
