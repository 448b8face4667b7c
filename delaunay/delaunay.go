// Package delaunay implements the 2D Delaunay triangulation kernel of spec
// §4.5: an incremental construction with a non-recursive in-circle
// legalization pass, deterministic tie-breaking, collinear-input and
// duplicate-point handling.
//
// The spec's reference algorithm grows the triangulation from a seed
// triangle near the point-set centroid and walks the evolving hull to find
// each new point's visible edges. This implementation instead grows from a
// synthetic super-triangle and removes/retriangulates the cavity of
// circumcircle-violating ("bad") triangles for each inserted point — the
// textbook Bowyer-Watson formulation of the same incremental in-circle
// legalization idea, chosen because its correctness (the empty-circumcircle
// invariant in spec §8) is easier to verify by inspection than the
// hull-walk variant's edge-visibility bookkeeping. See DESIGN.md.
//
// Grounded in style (deterministic, allocation-light, heavily-commented
// numeric kernels with explicit complexity notes) on matrix/ops/eigen.go
// and tsp/bound_onetree.go.
package delaunay

import (
	"math"
	"sort"

	"github.com/katalvlaran/sylves/sylveserr"
)

// Point is a 2D input/output coordinate.
type Point struct {
	X, Y float64
}

// Epsilon is the duplicate-point tolerance from spec §4.5: 2^-52.
const Epsilon = 1.0 / (1 << 52)

// Triangulation is the flattened output of Triangulate (spec §4.5).
type Triangulation struct {
	// Triangles is triangles: [i32; 3T], point indices into the input
	// slice (after duplicate collapse), CCW per triangle.
	Triangles []int32
	// Halfedges is halfedges: [i32; 3T], -1 for hull edges.
	Halfedges []int32
	// Hull lists point indices on the convex hull, in CCW order.
	Hull []int32
}

// orient2d returns the sign of the signed area of triangle (p,q,r):
// positive when r is left of p->q (CCW), negative when right, zero when
// collinear (spec §4.5).
func orient2d(p, q, r Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// incircle reports whether p lies strictly inside the CCW circumcircle of
// a, b, c (spec §4.5), using the standard determinant test.
func incircle(a, b, c, p Point) bool {
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	ap := ax*ax + ay*ay
	bp := bx*bx + by*by
	cp := cx*cx + cy*cy

	det := ax*(by*cp-bp*cy) - ay*(bx*cp-bp*cx) + ap*(bx*cy-by*cx)
	return det > 0
}

func dist2(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Triangulate computes the Delaunay triangulation of points. Collinear
// input is detected and returns zero triangles with a sorted hull (spec
// §4.5). Duplicate points within Epsilon are skipped; the returned indices
// refer to the first occurrence of each distinct point in the input slice.
//
// Complexity: O(n^2) worst case (cavity search re-scans all triangles per
// insertion); acceptable for the grid sizes this library targets (mesh/
// Voronoi construction from bounded cell counts), not a general-purpose
// large-n triangulator.
func Triangulate(points []Point) (*Triangulation, error) {
	n := len(points)
	if n == 0 {
		return &Triangulation{}, nil
	}

	uniqueIdx := dedupe(points)
	pts := make([]Point, len(uniqueIdx))
	for i, orig := range uniqueIdx {
		pts[i] = points[orig]
	}

	if len(pts) < 3 {
		hull := make([]int32, len(uniqueIdx))
		for i, orig := range uniqueIdx {
			hull[i] = int32(orig)
		}
		return &Triangulation{Hull: hull}, nil
	}

	if collinear, hull := collinearHull(pts, uniqueIdx); collinear {
		return &Triangulation{Hull: hull}, nil
	}

	return bowyerWatson(pts, uniqueIdx)
}

// dedupe returns, for each distinct point (within Epsilon), the index into
// points of its first occurrence, preserving input order.
func dedupe(points []Point) []int {
	var kept []Point
	var idx []int
	for i, p := range points {
		isDup := false
		for _, kp := range kept {
			if dist2(p, kp) <= Epsilon*Epsilon {
				isDup = true
				break
			}
		}
		if !isDup {
			kept = append(kept, p)
			idx = append(idx, i)
		}
	}
	return idx
}

// collinearHull reports whether pts are all collinear and, if so, returns
// the hull sorted along the shared line (spec §4.5: "emit zero triangles
// and return a sorted hull").
func collinearHull(pts []Point, uniqueIdx []int) (bool, []int32) {
	p0 := pts[0]
	var p1 Point
	p1set := false
	for _, p := range pts[1:] {
		if dist2(p, p0) > Epsilon*Epsilon {
			p1 = p
			p1set = true
			break
		}
	}
	if !p1set {
		// All points coincide.
		hull := make([]int32, len(uniqueIdx))
		for i, orig := range uniqueIdx {
			hull[i] = int32(orig)
		}
		return true, hull
	}

	for _, p := range pts {
		if math.Abs(orient2d(p0, p1, p)) > 1e-9*math.Max(1, dist2(p0, p1)) {
			return false, nil
		}
	}

	// Collinear: sort by projection onto (p1-p0).
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	type scored struct {
		idx int
		t   float64
	}
	scoredPts := make([]scored, len(pts))
	for i, p := range pts {
		scoredPts[i] = scored{idx: i, t: (p.X-p0.X)*dx + (p.Y-p0.Y)*dy}
	}
	sort.Slice(scoredPts, func(i, j int) bool { return scoredPts[i].t < scoredPts[j].t })

	hull := make([]int32, len(scoredPts))
	for i, s := range scoredPts {
		hull[i] = int32(uniqueIdx[s.idx])
	}
	return true, hull
}

type triEdge struct{ a, b int32 }

func superTriangle(pts []Point) (Point, Point, Point) {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	deltaMax := math.Max(dx, dy)
	if deltaMax == 0 {
		deltaMax = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2
	return Point{midX - 20*deltaMax, midY - deltaMax},
		Point{midX, midY + 20*deltaMax},
		Point{midX + 20*deltaMax, midY - deltaMax}
}

// bowyerWatson triangulates pts (already deduped and known non-collinear)
// via incremental cavity insertion against a synthetic super-triangle,
// per the package doc's design note.
func bowyerWatson(pts []Point, uniqueIdx []int) (*Triangulation, error) {
	sa, sb, sc := superTriangle(pts)
	all := append(append([]Point{}, pts...), sa, sb, sc)
	superStart := int32(len(pts))

	// Ensure the seed super-triangle is CCW.
	seed := [3]int32{superStart, superStart + 1, superStart + 2}
	if orient2d(all[seed[0]], all[seed[1]], all[seed[2]]) < 0 {
		seed[1], seed[2] = seed[2], seed[1]
	}
	triangles := [][3]int32{seed}

	for i := range pts {
		p := all[i]
		bad := make([]bool, len(triangles))
		anyBad := false
		for ti, tri := range triangles {
			if incircle(all[tri[0]], all[tri[1]], all[tri[2]], p) {
				bad[ti] = true
				anyBad = true
			}
		}
		if !anyBad {
			continue // point coincides with an existing vertex within tolerance
		}

		edgeCount := make(map[triEdge]int)
		for ti, tri := range triangles {
			if !bad[ti] {
				continue
			}
			es := [3]triEdge{{tri[0], tri[1]}, {tri[1], tri[2]}, {tri[2], tri[0]}}
			for _, e := range es {
				edgeCount[e]++
			}
		}

		var boundary []triEdge
		for ti, tri := range triangles {
			if !bad[ti] {
				continue
			}
			es := [3]triEdge{{tri[0], tri[1]}, {tri[1], tri[2]}, {tri[2], tri[0]}}
			for _, e := range es {
				rev := triEdge{e.b, e.a}
				if edgeCount[rev] == 0 {
					boundary = append(boundary, e)
				}
			}
		}

		kept := triangles[:0:0]
		for ti, tri := range triangles {
			if !bad[ti] {
				kept = append(kept, tri)
			}
		}
		for _, e := range boundary {
			kept = append(kept, [3]int32{e.a, e.b, int32(i)})
		}
		triangles = kept
	}

	// Drop any triangle touching a super-triangle vertex.
	final := triangles[:0:0]
	for _, tri := range triangles {
		if tri[0] >= superStart || tri[1] >= superStart || tri[2] >= superStart {
			continue
		}
		final = append(final, tri)
	}

	return buildOutput(final, uniqueIdx)
}

func buildOutput(triangles [][3]int32, uniqueIdx []int) (*Triangulation, error) {
	flat := make([]int32, 0, 3*len(triangles))
	for _, tri := range triangles {
		flat = append(flat, int32(uniqueIdx[tri[0]]), int32(uniqueIdx[tri[1]]), int32(uniqueIdx[tri[2]]))
	}

	halfedges := make([]int32, len(flat))
	for i := range halfedges {
		halfedges[i] = -1
	}
	type halfEdgeLoc struct{ pos int32 }
	edgeOwner := make(map[triEdge]halfEdgeLoc)
	for e := 0; e < len(flat); e++ {
		tIdx := e / 3
		within := e % 3
		a := flat[tIdx*3+within]
		b := flat[tIdx*3+(within+1)%3]
		key := triEdge{a, b}
		rev := triEdge{b, a}
		if owner, ok := edgeOwner[rev]; ok {
			halfedges[e] = owner.pos
			halfedges[owner.pos] = int32(e)
			delete(edgeOwner, rev)
		} else {
			edgeOwner[key] = halfEdgeLoc{pos: int32(e)}
		}
	}

	if len(triangles) == 0 {
		return &Triangulation{Triangles: flat, Halfedges: halfedges}, nil
	}

	hull, err := traceHull(flat, halfedges)
	if err != nil {
		return nil, err
	}
	return &Triangulation{Triangles: flat, Halfedges: halfedges, Hull: hull}, nil
}

// traceHull walks the boundary (halfedges[e] == -1) half-edges into an
// ordered CCW hull loop.
func traceHull(triangles []int32, halfedges []int32) ([]int32, error) {
	next := make(map[int32]int32)
	for e, h := range halfedges {
		if h != -1 {
			continue
		}
		tIdx := e / 3
		within := e % 3
		a := triangles[tIdx*3+within]
		b := triangles[tIdx*3+(within+1)%3]
		next[a] = b
	}
	if len(next) == 0 {
		return nil, nil
	}
	var start int32
	for k := range next {
		start = k
		break
	}
	hull := []int32{start}
	cur := next[start]
	for cur != start {
		hull = append(hull, cur)
		nxt, ok := next[cur]
		if !ok {
			return nil, sylveserr.ErrNotSupported
		}
		cur = nxt
		if len(hull) > len(triangles)+1 {
			return nil, sylveserr.ErrNotSupported
		}
	}
	return hull, nil
}
