package pathfind

import (
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
)

// Result is the outcome of a BFS or Dijkstra run (spec §4.8): a distance
// and predecessor step per reached cell, from which ExtractPath
// reconstructs a route.
type Result struct {
	Source    cell.Cell
	Distance  map[cell.Cell]float64
	Predstep  map[cell.Cell]Step
	Order     []cell.Cell
}

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	c     cell.Cell
	depth int
}

// bfsWalker encapsulates mutable BFS state, mirroring the teacher's
// walker/queueItem split (bfs.go) rebased onto cell.Cell and grid.Grid.
type bfsWalker struct {
	g       grid.Grid
	opts    Options
	queue   []queueItem
	visited map[cell.Cell]bool
	res     *Result
}

// BFS runs unweighted breadth-first search over g starting at source (spec
// §4.8), counting each step as distance 1 regardless of WithStepLength.
func BFS(g grid.Grid, source cell.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, errNilGrid()
	}
	if !g.IsCellInGrid(source) {
		return nil, errSourceNotInGrid(source)
	}
	o := buildOptions(opts)

	w := &bfsWalker{
		g:       g,
		opts:    o,
		queue:   make([]queueItem, 0, 16),
		visited: make(map[cell.Cell]bool),
		res: &Result{
			Source:   source,
			Distance: make(map[cell.Cell]float64),
			Predstep: make(map[cell.Cell]Step),
			Order:    make([]cell.Cell, 0, 16),
		},
	}
	w.enqueue(source, 0, nil)
	w.loop()
	return w.res, nil
}

func (w *bfsWalker) enqueue(c cell.Cell, depth int, step *Step) {
	w.visited[c] = true
	w.res.Distance[c] = float64(depth)
	if step != nil {
		w.res.Predstep[c] = *step
	}
	w.queue = append(w.queue, queueItem{c: c, depth: depth})
}

func (w *bfsWalker) loop() {
	for len(w.queue) > 0 {
		item := w.dequeue()
		w.res.Order = append(w.res.Order, item.c)
		w.enqueueNeighbors(item)
	}
}

func (w *bfsWalker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

func (w *bfsWalker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDistance > 0 && float64(nextDepth) > w.opts.MaxDistance {
		return
	}
	dirs, err := w.g.GetCellDirs(item.c)
	if err != nil {
		return
	}
	for _, dir := range dirs {
		dest, invDir, conn, ok := w.g.TryMove(item.c, dir)
		if !ok || w.visited[dest] {
			continue
		}
		if !w.opts.IsAccessible(dest) {
			continue
		}
		step := Step{Src: item.c, Dest: dest, Dir: dir, InverseDir: invDir, Connection: conn, Length: 1}
		w.enqueue(dest, nextDepth, &step)
	}
}

// ExtractPath reconstructs the route from r.Source to target (spec §4.8:
// "path source -> target equals walking dests from the first step"). ok is
// false if target was never reached.
func ExtractPath(r *Result, target cell.Cell) (Path, bool) {
	if _, ok := r.Distance[target]; !ok {
		return Path{}, false
	}
	if target == r.Source {
		return Path{}, true
	}
	var steps []Step
	cur := target
	for cur != r.Source {
		step, ok := r.Predstep[cur]
		if !ok {
			return Path{}, false
		}
		steps = append(steps, step)
		cur = step.Src
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return Path{Steps: steps, TotalLength: r.Distance[target]}, true
}
