// Package floodfill discovers connected regions of equal value on a sparse grid.
//
// What:
//
//   - Regions partitions every stored cell into 4-connected components of
//     identical value and measures each one: Area (cell count), Perimeter
//     (edges facing a different value or an unstored cell) and Sides (the
//     number of straight fence runs, counted as corners).
//   - Fill grows a single component from a seed under an arbitrary
//     membership predicate.
//
// Both use an explicit stack instead of recursion, so very large regions
// cannot exhaust the goroutine stack.
//
// Region IDs are the value's label followed by a per-value counter ("A0",
// "A1", "B0"); they exist for bookkeeping only. Seeds are scanned in
// row-major order, so IDs and the order of the result are deterministic.
//
// Complexity:
//
//   - Regions: O(N) time and memory, N = stored cells.
//   - Fill:    O(R) for a component of R cells.
package floodfill
