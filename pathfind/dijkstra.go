package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
)

// Dijkstra runs weighted shortest-path search over g starting at source
// (spec §4.8), using Options.StepLength as the per-step edge weight and
// MaxDistance to bound exploration. Grounded on dijkstra.go's runner/
// lazy-decrease-key min-heap pattern, rebased onto cell.Cell.
func Dijkstra(g grid.Grid, source cell.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, errNilGrid()
	}
	if !g.IsCellInGrid(source) {
		return nil, errSourceNotInGrid(source)
	}
	o := buildOptions(opts)

	r := &dijkstraRunner{
		g:       g,
		opts:    o,
		visited: make(map[cell.Cell]bool),
		res: &Result{
			Source:   source,
			Distance: make(map[cell.Cell]float64),
			Predstep: make(map[cell.Cell]Step),
			Order:    make([]cell.Cell, 0, 16),
		},
	}
	r.init(source)
	r.process()
	return r.res, nil
}

// dijkstraRunner holds the mutable state for one Dijkstra run.
type dijkstraRunner struct {
	g       grid.Grid
	opts    Options
	visited map[cell.Cell]bool
	pq      cellPQ
	res     *Result
}

func (r *dijkstraRunner) init(source cell.Cell) {
	r.res.Distance[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{c: source, dist: 0})
}

// process repeatedly extracts the cell with the smallest tentative
// distance and relaxes its outgoing moves, stopping when the heap is
// empty or the next distance exceeds MaxDistance.
func (r *dijkstraRunner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*cellItem)
		u, d := item.c, item.dist

		if r.visited[u] {
			continue
		}
		if r.opts.MaxDistance > 0 && d > r.opts.MaxDistance {
			break
		}
		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)
		r.relax(u, d)
	}
}

func (r *dijkstraRunner) relax(u cell.Cell, d float64) {
	dirs, err := r.g.GetCellDirs(u)
	if err != nil {
		return
	}
	for _, dir := range dirs {
		v, invDir, conn, ok := r.g.TryMove(u, dir)
		if !ok || r.visited[v] {
			continue
		}
		if !r.opts.IsAccessible(v) {
			continue
		}
		step := Step{Src: u, Dest: v, Dir: dir, InverseDir: invDir, Connection: conn}
		w := r.opts.StepLength(step)
		if w < 0 {
			continue
		}
		newDist := d + w
		if r.opts.MaxDistance > 0 && newDist > r.opts.MaxDistance {
			continue
		}
		cur, known := r.res.Distance[v]
		if known && newDist >= cur {
			continue
		}
		step.Length = w
		r.res.Distance[v] = newDist
		r.res.Predstep[v] = step
		heap.Push(&r.pq, &cellItem{c: v, dist: newDist})
	}
}

// cellItem is one entry of the Dijkstra/A* priority queue.
type cellItem struct {
	c      cell.Cell
	dist   float64
	fscore float64 // A* priority (dist + heuristic); unused by Dijkstra
}

// cellPQ is a min-heap of *cellItem ordered by fscore, falling back to
// dist when fscore is zero (Dijkstra never sets it), following the
// teacher's lazy-decrease-key nodePQ (dijkstra.go).
type cellPQ []*cellItem

func (pq cellPQ) Len() int { return len(pq) }
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].fscore != pq[j].fscore {
		return pq[i].fscore < pq[j].fscore
	}
	return pq[i].dist < pq[j].dist
}
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*cellItem))
}
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
