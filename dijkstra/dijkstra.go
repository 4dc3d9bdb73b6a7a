package dijkstra

import (
	"container/heap"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlgrid/coord"
	"github.com/katalvlaran/lvlgrid/sparsegrid"
)

// RunLength computes the minimum cost of moving from start to goal on g,
// where entering a cell costs its value and movement happens in straight
// runs joined by 90° turns. A run is expanded as a single step: from each
// settled state every perpendicular direction is followed for 1..MaxRun
// cells, and the states at MinRun or beyond are pushed. Reversing and
// continuing straight are never generated.
//
// Unstored coordinates are walls. The first settled state at goal carries
// the minimal cost.
//
// Errors: ErrNilGrid, ErrOptionViolation, ErrCellNotFound (start or goal
// unstored), ErrNegativeWeight, ErrNoPath.
//
// Complexity: O(S·R·log(S·R)) for S = 2·cells states and R = MaxRun.
func RunLength[T constraints.Integer](g *sparsegrid.Grid[T], start, goal coord.Key, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	for _, k := range [2]coord.Key{start, goal} {
		if _, ok := g.Lookup(k.X, k.Y); !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrCellNotFound, k)
		}
	}

	r := &runner[T]{
		g:       g,
		options: cfg,
		goal:    goal,
		dist:    make(map[node]int, 2*g.Size()),
		visited: make(map[node]bool, 2*g.Size()),
	}
	if cfg.ReturnPath {
		r.prev = make(map[node]node, 2*g.Size())
	}

	r.init(start)
	end, err := r.process()
	if err != nil {
		return Result{}, err
	}

	res := Result{Cost: r.dist[end], Expanded: r.expanded}
	if cfg.ReturnPath {
		res.Path = r.path(end)
	}

	return res, nil
}

// runner holds the mutable state for a single search.
type runner[T constraints.Integer] struct {
	g        *sparsegrid.Grid[T]
	options  Options
	goal     coord.Key
	dist     map[node]int  // best known cost per state
	prev     map[node]node // predecessor per state; nil unless ReturnPath
	visited  map[node]bool // settled states
	pq       nodePQ
	expanded int
}

// init seeds the heap with the start in the axis-free state.
func (r *runner[T]) init(start coord.Key) {
	s := coord.At(start, axisNone)
	r.dist[s] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{state: s, dist: 0})
}

// process pops states in cost order until the goal is settled.
func (r *runner[T]) process() (node, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.state

		// Stale entry under lazy decrease-key.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxCost {
			break
		}
		r.visited[u] = true
		r.expanded++

		if u.Key == r.goal {
			return u, nil
		}
		if err := r.relax(u); err != nil {
			return node{}, err
		}
	}

	return node{}, fmt.Errorf("%w: %s unreachable", ErrNoPath, r.goal)
}

// relax walks every run leaving u on the axis perpendicular to its own.
func (r *runner[T]) relax(u node) error {
	for _, d := range coord.Directions {
		next := axisOf(d)
		if next == u.S {
			continue
		}

		cost := r.dist[u]
		for n := 1; r.options.MaxRun == 0 || n <= r.options.MaxRun; n++ {
			k := u.Key.Add(d, n)
			w, ok := r.g.Lookup(k.X, k.Y)
			if !ok {
				break
			}
			if w < 0 {
				return fmt.Errorf("%w: cell %s weight=%d", ErrNegativeWeight, k, w)
			}
			cost += int(w)
			if cost > r.options.MaxCost {
				break
			}
			if n < r.options.MinRun {
				continue
			}

			v := coord.At(k, next)
			if r.visited[v] {
				continue
			}
			if old, seen := r.dist[v]; seen && cost >= old {
				continue
			}
			r.dist[v] = cost
			if r.prev != nil {
				r.prev[v] = u
			}
			heap.Push(&r.pq, &nodeItem{state: v, dist: cost})
		}
	}

	return nil
}

// path follows predecessors back from end. Each hop is a whole run, so the
// keys are exactly the turn points.
func (r *runner[T]) path(end node) []coord.Key {
	keys := []coord.Key{end.Key}
	for cur := end; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		keys = append(keys, p.Key)
		cur = p
	}
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}

	return keys
}

// nodeItem is a state and its cost at push time.
type nodeItem struct {
	state node
	dist  int
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Outdated entries stay
// in the heap and are skipped when popped (checked via visited).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
