// Package sparsegrid implements an unbounded two-dimensional grid backed by a
// coordinate-keyed map.
//
// What:
//
//   - Grid[T] stores only the cells that were explicitly Set. Reading any other
//     coordinate resolves through a DefaultProvider without storing anything.
//   - The bounding box of stored cells (Extents) is cached and kept exact: Set
//     grows the cache in place, Remove drops it and the next read rescans.
//   - Full-grid operations (Clone, Equals, Extents, PushX/PushY) cost
//     O(stored cells); point operations are O(1) amortized.
//   - Dense walks (EachCell, AllCells, String) materialize defaults over the
//     extents and are meant for bounded puzzle inputs only.
//
// Why:
//
//   - Puzzle maps are mostly empty, grow during simulation and are probed
//     outside their nominal border; the default value acts as the sentinel
//     ("out of bounds", "impassable") that neighbour predicates reject.
//
// Default providers:
//
//   - Value(v):      every unset coordinate resolves to v.
//   - Factory(fn):   fn() is invoked fresh on every miss.
//   - DefaultFunc:   fn(x, y, g) may consult the grid itself; the grid is passed
//     at call time, so no provider ever holds a back-reference.
//   - Tiled(f):      repeats the stored extents infinitely in both axes.
//
// Errors:
//
//   - ErrEmptyGrid:      Pop/PopBy on a grid with no stored cells.
//   - ErrMalformedInput: FromLinesErr parser rejected a character.
//
// Complexity:
//
//   - Get/Set/Has/Update: O(1) amortized.
//   - Remove:             O(1), next Extents is O(N).
//   - Clone/Equals:       O(N), N = stored cells.
//   - EachCell/String:    O(W×H) over the extents.
package sparsegrid
