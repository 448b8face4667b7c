package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
)

// AStar runs heuristic-guided shortest-path search from source to target
// (spec §4.8), using Options.Heuristic and Options.StepLength; a nil
// Heuristic is treated as zero, which makes the search equal to Dijkstra.
// With an admissible heuristic, the returned distance to target equals
// Dijkstra's.
func AStar(g grid.Grid, source, target cell.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, errNilGrid()
	}
	if !g.IsCellInGrid(source) {
		return nil, errSourceNotInGrid(source)
	}
	o := buildOptions(opts)
	if o.Heuristic == nil {
		o.Heuristic = func(cell.Cell) float64 { return 0 } // degrades to Dijkstra
	}

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
	r.res.Distance[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{c: source, dist: 0, fscore: o.Heuristic(source)})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*cellItem)
		u, d := item.c, item.dist
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		r.res.Order = append(r.res.Order, u)
		if u == target {
			break
		}
		r.relaxAStar(u, d, target, o)
	}
	return r.res, nil
}

func (r *dijkstraRunner) relaxAStar(u cell.Cell, d float64, target cell.Cell, o Options) {
	dirs, err := r.g.GetCellDirs(u)
	if err != nil {
		return
	}
	for _, dir := range dirs {
		v, invDir, conn, ok := r.g.TryMove(u, dir)
		if !ok || r.visited[v] {
			continue
		}
		if !o.IsAccessible(v) {
			continue
		}
		step := Step{Src: u, Dest: v, Dir: dir, InverseDir: invDir, Connection: conn}
		w := o.StepLength(step)
		if w < 0 {
			continue
		}
		newDist := d + w
		if o.MaxDistance > 0 && newDist > o.MaxDistance {
			continue
		}
		cur, known := r.res.Distance[v]
		if known && newDist >= cur {
			continue
		}
		step.Length = w
		r.res.Distance[v] = newDist
		r.res.Predstep[v] = step
		heap.Push(&r.pq, &cellItem{c: v, dist: newDist, fscore: newDist + o.Heuristic(v)})
	}
}

// ManhattanHeuristic returns an admissible per-kind heuristic (spec §4.8)
// for every built-in regular grid:
//
//   - Square/Cube: L1 distance in cell coordinates, exact for a grid
//     whose moves change exactly one axis by one unit.
//   - HexFT/HexPT: standard axial hex distance over grid/hex.go's
//     hexAxialOffsets coordinates ((|dq|+|dr|+|dq+dr|)/2), exact for unit
//     step cost.
//   - TriFT/TriFS: L1 distance in (X,Y) grid coordinates. grid/triangle.go
//     moves change exactly one of X or Y by one unit per step, so the
//     true step count is never less than |dX|+|dY|.
//
// Returns nil for kinds this package has no closed-form bound for
// (mesh-backed grids, KindPolygon), so callers must fall back to Dijkstra
// there.
func ManhattanHeuristic(target cell.Cell, kind cell.Kind) func(cell.Cell) float64 {
	switch kind {
	case cell.KindSquare, cell.KindCube:
		return func(c cell.Cell) float64 {
			return absf(c.X-target.X) + absf(c.Y-target.Y) + absf(c.Z-target.Z)
		}
	case cell.KindHexFT, cell.KindHexPT:
		return func(c cell.Cell) float64 {
			dq, dr := c.X-target.X, c.Y-target.Y
			return (absf(dq) + absf(dr) + absf(dq+dr)) / 2
		}
	case cell.KindTriFT, cell.KindTriFS:
		return func(c cell.Cell) float64 {
			return absf(c.X-target.X) + absf(c.Y-target.Y)
		}
	default:
		return nil
	}
}

func absf(v int) float64 {
	if v < 0 {
		return float64(-v)
	}
	return float64(v)
}
