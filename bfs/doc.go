// Package bfs provides breadth-first search over a sparsegrid.Grid,
// returning step distances, parent links, and visit order.
//
// What
//
//   - Explore coordinates in non-decreasing step count from a start.
//   - Moves are the four axis-aligned neighbours; a Passable predicate
//     decides which resolved values may be entered.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from coordinate → steps from start
//   - Parent: map from coordinate → predecessor in the BFS tree
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Unbounded grids
//
//	Passable sees the grid's resolved value, so a default provider such as
//	sparsegrid.Tiled makes the passable region infinite. Bound such walks
//	with WithMaxDepth or a cancellable context.
//
// Parity
//
//	A walker that must take exactly n steps can stand on every coordinate
//	whose depth is at most n and has the same parity as n, since it can
//	always step away and back. Result.CountAtParity counts those.
//
// Determinism
//
//	Neighbours are enqueued in Up, Right, Down, Left order, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = reached coordinates)
//
//   - Time:   O(V)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk(g, start,
//	    bfs.WithMaxDepth[rune](64),
//	    bfs.WithPassable(func(_, _ int, v rune) bool { return v != '#' }),
//	)
//	if err != nil {
//	    // ErrGridNil, ErrStartBlocked, ErrOptionViolation, ctx or hook error
//	}
//	plots := res.CountAtParity(64)
package bfs
