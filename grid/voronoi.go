package grid

import (
	"fmt"

	"github.com/katalvlaran/sylves/delaunay"
	"github.com/katalvlaran/sylves/dualmesh"
	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/mesh"
	"github.com/katalvlaran/sylves/sylveserr"
)

// VoronoiOptions configures NewVoronoiGrid (spec §4.7).
type VoronoiOptions struct {
	// ClipToAABB, when non-nil, restricts the Voronoi diagram to this
	// box; sites are clamped border points pinned across relaxation.
	ClipToAABB *AABB2D
	// LloydIterations runs Lloyd relaxation this many times before
	// building the final mesh grid (0 disables relaxation).
	LloydIterations int
}

// AABB2D is a plain float rectangle used to clip a Voronoi diagram.
type AABB2D struct{ MinX, MinY, MaxX, MaxY float64 }

func (b AABB2D) clampPoint(p delaunay.Point) delaunay.Point {
	return delaunay.Point{
		X: clampFloat(p.X, b.MinX, b.MaxX),
		Y: clampFloat(p.Y, b.MinY, b.MaxY),
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NewVoronoiGrid computes the Voronoi diagram of sites (spec §4.7):
// Delaunay triangulation, dual construction (circumcenters as vertices,
// one Voronoi cell per site), optional AABB clip, optional Lloyd
// relaxation, then feeds the resulting mesh into a MeshGrid.
func NewVoronoiGrid(sites []delaunay.Point, opts VoronoiOptions) (*MeshGrid, error) {
	pts := sites
	for iter := 0; iter < opts.LloydIterations+1; iter++ {
		tri, err := delaunay.Triangulate(pts)
		if err != nil {
			return nil, err
		}
		if len(tri.Triangles) == 0 {
			return nil, fmt.Errorf("grid: voronoi requires a non-degenerate point set: %w", sylveserr.ErrInvalidArgument)
		}

		primal := triangulationToMesh(pts, tri)
		dual, err := dualmesh.BuildDual(primal, dualmesh.Options{})
		if err != nil {
			return nil, err
		}
		// BuildDual places face centroids at len(pts)+fi; move each to
		// its triangle's circumcenter.
		for fi := 0; 3*fi+2 < len(tri.Triangles); fi++ {
			a, b, c := pts[tri.Triangles[3*fi]], pts[tri.Triangles[3*fi+1]], pts[tri.Triangles[3*fi+2]]
			d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
			if d == 0 {
				continue
			}
			a2, b2, c2 := a.X*a.X+a.Y*a.Y, b.X*b.X+b.Y*b.Y, c.X*c.X+c.Y*c.Y
			dual.Mesh.Vertices[len(pts)+fi] = vecmath.Vector3{
				X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
				Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
			}
		}

		if iter == opts.LloydIterations {
			if opts.ClipToAABB != nil {
				clipMeshToAABB(dual.Mesh, *opts.ClipToAABB)
			}
			return NewMeshGrid(dual.Mesh), nil
		}

		pts = lloydRelax(pts, dual, opts.ClipToAABB)
	}
	return nil, sylveserr.ErrNotSupported // unreachable
}

// triangulationToMesh rebuilds a MeshData NGon submesh from the flattened
// Delaunay triangle output.
func triangulationToMesh(pts []delaunay.Point, tri *delaunay.Triangulation) *mesh.MeshData {
	verts := make([]vecmath.Vector3, len(pts))
	for i, p := range pts {
		verts[i] = vecmath.Vector3{X: p.X, Y: p.Y}
	}
	md := mesh.NewMeshData(verts)
	indices := make([]int32, 0, len(tri.Triangles))
	for i := 0; i+3 <= len(tri.Triangles); i += 3 {
		indices = append(indices, tri.Triangles[i], tri.Triangles[i+1], ^tri.Triangles[i+2])
	}
	md.AddSubmesh(indices, mesh.NGon)
	return md
}

// clipMeshToAABB clamps every vertex of m into b in place (spec §4.7:
// "optionally clip to an AABB... border points pinned").
func clipMeshToAABB(m *mesh.MeshData, b AABB2D) {
	for i, v := range m.Vertices {
		m.Vertices[i] = vecmath.Vector3{
			X: clampFloat(v.X, b.MinX, b.MaxX),
			Y: clampFloat(v.Y, b.MinY, b.MaxY),
		}
	}
}

// lloydRelax moves each site to the centroid of its Voronoi cell (the
// dual face mapped to the site's vertex via DualMapping), pinning any
// site clamped to the clip box's border per spec §4.7.
func lloydRelax(sites []delaunay.Point, dual *dualmesh.Result, clip *AABB2D) []delaunay.Point {
	faceToSite := make(map[int]int32, len(dual.Mappings))
	for _, mp := range dual.Mappings {
		faceToSite[mp.DualFace] = mp.PrimalVertex
	}

	sums := make([]vecmath.Vector3, len(sites))
	counts := make([]int, len(sites))

	for _, f := range dual.Mesh.Faces() {
		site, ok := faceToSite[f.Index]
		if !ok || int(site) >= len(sites) {
			continue
		}
		var centroid vecmath.Vector3
		for _, idx := range f.Vertices {
			centroid = centroid.Add(dual.Mesh.Vertices[idx])
		}
		centroid = centroid.Scale(1.0 / float64(len(f.Vertices)))
		sums[site] = sums[site].Add(centroid)
		counts[site]++
	}

	out := make([]delaunay.Point, len(sites))
	for i, p := range sites {
		if counts[i] == 0 {
			out[i] = p
			continue
		}
		c := sums[i].Scale(1.0 / float64(counts[i]))
		np := delaunay.Point{X: c.X, Y: c.Y}
		if clip != nil {
			onBorder := p.X <= clip.MinX || p.X >= clip.MaxX || p.Y <= clip.MinY || p.Y >= clip.MaxY
			if onBorder {
				out[i] = clip.clampPoint(p)
				continue
			}
			np = clip.clampPoint(np)
		}
		out[i] = np
	}
	return out
}
