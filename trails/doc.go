// Package trails counts ascending walks over an integer-valued grid.
//
// A walk starts on a cell holding Options.Start, moves to one of the four
// orthogonal neighbours only when the neighbour's value equals the current
// value plus Options.Step, and ends on a cell whose value reaches
// Options.Peak. Two aggregates are provided:
//
//   - Reachable: how many distinct peak cells a start cell can reach
//     (destinations deduplicated by coordinate).
//   - Paths: how many distinct walks lead from a start cell to any peak
//     (no deduplication, sum over branches).
//
// Score and Rating sum those aggregates over every stored start cell.
//
// Values strictly increase along a walk, so every walk is at most
// (Peak-Start)/Step long. Paths memoizes per coordinate and its recursion
// depth is bounded by that length.
package trails
