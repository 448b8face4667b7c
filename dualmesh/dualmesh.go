// Package dualmesh builds the dual of a primal mesh (spec §4.6): faces
// correspond to primal vertices, vertices to primal faces (plus synthetic
// "far" vertices terminating boundary arcs).
//
// Grounded on mesh's half-edge map (the walk below is expressed purely in
// terms of mesh.HalfEdge.Flip/Edge) and dfs/cycle.go's cycle-walk style
// (a bounded, non-recursive traversal with an explicit visited/closed
// check).
package dualmesh

import (
	"fmt"

	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/mesh"
	"github.com/katalvlaran/sylves/sylveserr"
)

// DefaultFarVertexThreshold is the magnitude beyond which a primal vertex
// is excluded from producing a dual face, and the default magnitude for
// synthetic far vertices terminating a boundary arc (spec §4.6).
const DefaultFarVertexThreshold = 1e10

// Options configures BuildDual.
type Options struct {
	// FarVertexThreshold overrides DefaultFarVertexThreshold when nonzero.
	FarVertexThreshold float64
}

func (o Options) threshold() float64 {
	if o.FarVertexThreshold == 0 {
		return DefaultFarVertexThreshold
	}
	return o.FarVertexThreshold
}

// DualMapping records one primal-corner-to-dual-vertex correspondence
// (spec §4.6), used to project per-corner attributes from the primal mesh
// onto the dual.
type DualMapping struct {
	PrimalFace   int
	PrimalVertex int32
	DualFace     int
	DualVertex   int32
}

// Result is the output of BuildDual.
type Result struct {
	Mesh     *mesh.MeshData
	Mappings []DualMapping
}

// BuildDual constructs the dual of primal, which must be a single NGon
// submesh (spec §4.6). For each primal vertex it walks the cycle of
// half-edges by alternating "rotate within face" (the previous edge of the
// same face) and "flip to neighbour", contributing one face-centroid
// vertex per step. Vertices whose coordinates exceed Options'
// FarVertexThreshold in magnitude do not produce dual faces. Boundary
// vertices (the walk hits a half-edge with no flip) yield an open "arc"
// face terminated by two synthetic far vertices.
func BuildDual(primal *mesh.MeshData, opts Options) (*Result, error) {
	if len(primal.Submeshes) != 1 || primal.Submeshes[0].Topology != mesh.NGon {
		return nil, fmt.Errorf("dualmesh: primal must be a single NGon submesh: %w", sylveserr.ErrInvalidArgument)
	}

	he := primal.BuildHalfEdges()
	if primal.HasNonManifoldEdges() {
		return nil, fmt.Errorf("dualmesh: primal mesh has non-manifold edges: %w", sylveserr.ErrNotSupported)
	}

	faces := primal.Faces()
	faceLen := make([]int, len(faces))
	centroids := make([]vecmath.Vector3, len(faces))
	for _, f := range faces {
		faceLen[f.Index] = len(f.Vertices)
		centroids[f.Index] = centroidOf(primal, f.Vertices)
	}

	// outgoing[v] lists every half-edge key starting at vertex v.
	outgoing := make(map[int32][]mesh.HalfEdgeKey)
	for key, h := range he {
		outgoing[h.StartVertex] = append(outgoing[h.StartVertex], key)
	}

	threshold := opts.threshold()
	dual := mesh.NewMeshData(append(append([]vecmath.Vector3{}, primal.Vertices...), centroids...))
	centroidBase := int32(len(primal.Vertices))

	var mappings []DualMapping
	var ngonIndices []int32
	dualFaceIdx := 0

	for v := int32(0); v < int32(len(primal.Vertices)); v++ {
		starts := outgoing[v]
		if len(starts) == 0 {
			continue
		}
		pos := primal.Vertices[v]
		if abs(pos.X) > threshold || abs(pos.Y) > threshold || abs(pos.Z) > threshold {
			continue
		}

		faceOrder, closed, boundaryEdges := walkVertexFan(he, faceLen, starts[0])

		if len(faceOrder) == 0 {
			continue
		}

		faceVerts := make([]int32, 0, len(faceOrder)+2)
		if !closed {
			farStart := farVertexFor(dual, boundaryEdges[0], primal, threshold)
			faceVerts = append(faceVerts, farStart)
		}
		for i, fi := range faceOrder {
			cv := centroidBase + int32(fi)
			faceVerts = append(faceVerts, cv)
			mappings = append(mappings, DualMapping{
				PrimalFace:   fi,
				PrimalVertex: v,
				DualFace:     dualFaceIdx,
				DualVertex:   cv,
			})
			_ = i
		}
		if !closed {
			farEnd := farVertexFor(dual, boundaryEdges[1], primal, threshold)
			faceVerts = append(faceVerts, farEnd, v)
		}

		if len(faceVerts) < 3 {
			continue
		}
		for i, idx := range faceVerts {
			if i == len(faceVerts)-1 {
				ngonIndices = append(ngonIndices, ^idx)
			} else {
				ngonIndices = append(ngonIndices, idx)
			}
		}
		dualFaceIdx++
	}

	if len(ngonIndices) > 0 {
		if _, err := dual.AddSubmesh(ngonIndices, mesh.NGon); err != nil {
			return nil, err
		}
	}

	return &Result{Mesh: dual, Mappings: mappings}, nil
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func centroidOf(m *mesh.MeshData, verts []int32) vecmath.Vector3 {
	var sum vecmath.Vector3
	for _, idx := range verts {
		sum = sum.Add(m.Vertices[idx])
	}
	return sum.Scale(1.0 / float64(len(verts)))
}

// walkVertexFan walks the half-edges starting at a vertex in face-fan
// order. From he, the next outgoing half-edge at the same vertex in one
// rotational direction is the flip of the previous edge of he's face; the
// next one in the other direction is the next edge of he's flip's face.
// An interior vertex closes (the forward walk returns to start); a
// boundary vertex does not, and the fan must be walked in both
// directions from start to find every incident face and both boundary
// edges bounding the arc (start itself need not sit at either end of the
// fan). Returns the visited face indices in order from the boundary[0]
// side to the boundary[1] side, whether the walk closed, and, for an open
// walk, the two boundary half-edge keys.
func walkVertexFan(he map[mesh.HalfEdgeKey]*mesh.HalfEdge, faceLen []int, start mesh.HalfEdgeKey) ([]int, bool, [2]mesh.HalfEdgeKey) {
	var boundary [2]mesh.HalfEdgeKey

	var forward []int
	cur := start
	hitForwardBoundary := false
	for step := 0; step <= len(he); step++ {
		h := he[cur]
		forward = append(forward, h.Face)

		n := faceLen[h.Face]
		prevKey := mesh.HalfEdgeKey{Face: h.Face, Edge: mod(h.Edge-1, n)}
		prevHE := he[prevKey]
		if !prevHE.HasFlip {
			boundary[1] = prevKey
			hitForwardBoundary = true
			break
		}
		cur = prevHE.Flip
		if cur == start {
			return forward, true, boundary
		}
	}
	if !hitForwardBoundary {
		// Exhausted the step bound without closing: malformed input, but
		// don't loop forever. Report as closed with whatever was found.
		return forward, true, boundary
	}

	var backward []int
	cur = start
	for step := 0; step <= len(he); step++ {
		h := he[cur]
		if !h.HasFlip {
			boundary[0] = cur
			break
		}
		flipHE := he[h.Flip]
		cur = mesh.HalfEdgeKey{Face: flipHE.Face, Edge: mod(flipHE.Edge+1, faceLen[flipHE.Face])}
		backward = append(backward, he[cur].Face)
	}

	faces := make([]int, 0, len(backward)+len(forward))
	for i := len(backward) - 1; i >= 0; i-- {
		faces = append(faces, backward[i])
	}
	faces = append(faces, forward...)
	return faces, false, boundary
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// farVertexFor synthesizes (and appends to dual) a vertex along the
// perpendicular bisector of the given boundary half-edge, at the
// configured far-vertex magnitude (spec §4.6).
func farVertexFor(dual *mesh.MeshData, boundary mesh.HalfEdgeKey, primal *mesh.MeshData, threshold float64) int32 {
	h := boundaryHalfEdge(primal, boundary)
	a := primal.Vertices[h.StartVertex]
	b := primal.Vertices[h.EndVertex]
	mid := a.Lerp(b, 0.5)
	edge := b.Sub(a)
	perp := vecmath.Vector3{X: -edge.Y, Y: edge.X}
	length := perp.Length()
	if length == 0 {
		length = 1
	}
	dir := perp.Scale(1.0 / length)
	far := mid.Add(dir.Scale(threshold))

	dual.Vertices = append(dual.Vertices, far)
	return int32(len(dual.Vertices) - 1)
}

func boundaryHalfEdge(primal *mesh.MeshData, key mesh.HalfEdgeKey) *mesh.HalfEdge {
	h, _ := primal.HalfEdge(key)
	return h
}
