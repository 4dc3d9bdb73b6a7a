// Package lvlgrid is a toolkit for two-dimensional puzzle grids: a sparse,
// unbounded, coordinate-keyed store plus the search algorithms that run on it.
//
// What is in the box?
//
//	A sparse grid that only stores the cells you set and answers every other
//	coordinate through a default provider, together with:
//		• Coordinates: Key, composite State keys, Directions
//		• Regions: flood fill with area, perimeter and side counting
//		• Trails: reachability and path counting on ascending steps
//		• Traversal: depth-limited BFS, including on infinitely tiled maps
//		• Shortest paths: Dijkstra with run-length constraints
//		• Simulation: cycle detection and fast-forward over grid snapshots
//
// Why a sparse grid?
//
//   - Grows in any direction, negative coordinates included
//   - Row and column insertion without re-allocating a dense array
//   - Out-of-range reads never fail; the default acts as a sentinel
//   - Cheap clone and structural equality for snapshotting
//
// Packages, leaves first:
//
//	coord/      Key, State[S], Direction
//	sparsegrid/ Grid[T], DefaultProvider strategies, FromLines
//	floodfill/  Regions, Fill
//	trails/     Reachable, Paths, Score, Rating
//	bfs/        Walk, Result.CountAtParity
//	dijkstra/   RunLength
//	cycle/      Detect, FastForward
//	batch/      bounded parallel Map
//	runner/     read inputs, time and print parts
//	progress/   resumable SQLite progress cache
//	config/     lvlgrid.yaml
//	cmd/lvlgrid command-line harness
//
// Quick ASCII example:
//
//	    #.#
//	    ...      FromLines(lines, Runes, Value('#'))
//	    #.#      stores nine cells; Get(5, 5) == '#'
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
