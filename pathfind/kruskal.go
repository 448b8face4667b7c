package pathfind

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
	"github.com/katalvlaran/sylves/sylveserr"
)

// errUnboundedGrid wraps sylveserr.ErrUnbounded: Kruskal and Edges need a
// finite cell enumeration, which only a bound-by'd grid provides.
func errUnboundedGrid() error {
	return fmt.Errorf("pathfind: %w", sylveserr.ErrUnbounded)
}

// errGridDisconnected wraps sylveserr.ErrPathNotFound, mirroring
// prim_kruskal.go's ErrDisconnected: no spanning tree connects every cell.
func errGridDisconnected() error {
	return fmt.Errorf("pathfind: grid is not fully connected: %w", sylveserr.ErrPathNotFound)
}

// Edge is one undirected connection between two cells, weighted by
// Options.StepLength, used as the input to Kruskal.
type Edge struct {
	A, B   cell.Cell
	Weight float64
}

// Edges enumerates every undirected edge of a finite, bounded grid (spec
// §4.8's grid-as-graph bridge), visiting each cell's outgoing moves and
// keeping one direction per pair to avoid duplicates.
func Edges(g grid.Grid, opts ...Option) ([]Edge, error) {
	b := g.Bound()
	if b == nil {
		return nil, errUnboundedGrid()
	}
	cells, err := b.GetCells(nil)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	seen := make(map[[2]cell.Cell]bool, len(cells))
	var edges []Edge
	for _, c := range cells {
		if !o.IsAccessible(c) {
			continue
		}
		dirs, err := g.GetCellDirs(c)
		if err != nil {
			continue
		}
		for _, dir := range dirs {
			dest, _, _, ok := g.TryMove(c, dir)
			if !ok || !o.IsAccessible(dest) {
				continue
			}
			key := pairKey(c, dest)
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, Edge{A: c, B: dest, Weight: o.StepLength(Step{Src: c, Dest: dest, Dir: dir})})
		}
	}
	return edges, nil
}

func pairKey(a, b cell.Cell) [2]cell.Cell {
	if less(a, b) {
		return [2]cell.Cell{a, b}
	}
	return [2]cell.Cell{b, a}
}

func less(a, b cell.Cell) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// Kruskal computes the minimum spanning tree of a finite grid's cell
// connectivity graph (spec §4.8), via union-find with path compression
// and union by rank, grounded directly on prim_kruskal/kruskal.go.
func Kruskal(g grid.Grid, opts ...Option) ([]Edge, float64, error) {
	edges, err := Edges(g, opts...)
	if err != nil {
		return nil, 0, err
	}

	b := g.Bound()
	cells, err := b.GetCells(nil)
	if err != nil {
		return nil, 0, err
	}
	if len(cells) == 0 {
		return nil, 0, errGridDisconnected()
	}
	if len(cells) == 1 {
		return []Edge{}, 0, nil
	}

	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	parent := make(map[cell.Cell]cell.Cell, len(cells))
	rank := make(map[cell.Cell]int, len(cells))
	for _, c := range cells {
		parent[c] = c
		rank[c] = 0
	}

	var find func(cell.Cell) cell.Cell
	find = func(u cell.Cell) cell.Cell {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v cell.Cell) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	var mst []Edge
	var total float64
	for _, e := range edges {
		if find(e.A) != find(e.B) {
			union(e.A, e.B)
			mst = append(mst, e)
			total += e.Weight
			if len(mst) == len(cells)-1 {
				break
			}
		}
	}
	if len(mst) < len(cells)-1 {
		return nil, 0, errGridDisconnected()
	}
	return mst, total, nil
}
