// Package dijkstra implements a Dijkstra search on integer-weighted sparse
// grids where movement is constrained by run length.
//
// The walker moves in straight runs and may only turn 90°. Each run must
// cover between MinRun and MaxRun cells, the last run into the goal
// included. Entering a cell costs its value.
//
// State
//
//	A settled state is a coordinate plus the axis of the run that reached it
//	(coord.State). Runs are expanded whole: from a state on the horizontal
//	axis only vertical runs of every admissible length are generated, and
//	vice versa. This keeps the state space at two per cell, independent of
//	the run bounds.
//
// Complexity:
//
//   - Time:  O(S·R·log(S·R)), S = 2·stored cells, R = MaxRun.
//   - Space: O(S·R) heap entries in the worst case (lazy decrease-key).
//
// Notes on implementation choices:
//
//   - Unstored coordinates are walls; the grid default never takes part.
//   - Negative weights are detected on relaxation and fail with ErrNegativeWeight.
//   - We stop exploring once the minimum cost in the heap exceeds MaxCost.
//   - An empty frontier before the goal is settled returns ErrNoPath.
//
// Example usage:
//
//	g, _ := sparsegrid.FromLinesErr(lines, sparsegrid.Digit, sparsegrid.Value(0))
//	res, err := dijkstra.RunLength(g, coord.Of(0, 0), coord.Of(w-1, h-1),
//	    dijkstra.WithRunLength(4, 10),
//	)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // goal unreachable under the run constraint
//	}
//	fmt.Println(res.Cost)
package dijkstra
