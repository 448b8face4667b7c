package dualmesh_test

import (
	"testing"

	"github.com/katalvlaran/sylves/dualmesh"
	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/mesh"
	"github.com/stretchr/testify/require"
)

// twoTriangles builds a unit square split into two triangles sharing the
// (0,2) diagonal: face 0 = [0,1,2], face 1 = [0,2,3].
func twoTriangles() *mesh.MeshData {
	md := mesh.NewMeshData([]vecmath.Vector3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})
	_, err := md.AddSubmesh([]int32{0, 1, ^int32(2), 0, 2, ^int32(3)}, mesh.NGon)
	if err != nil {
		panic(err)
	}
	return md
}

func TestBuildDualVertexCounts(t *testing.T) {
	primal := twoTriangles()
	res, err := dualmesh.BuildDual(primal, dualmesh.Options{})
	require.NoError(t, err)
	require.NotNil(t, res.Mesh)

	// Base vertices: 4 primal + 2 face centroids = 6, plus any far
	// vertices synthesized for boundary arcs.
	require.True(t, len(res.Mesh.Vertices) >= 6)
	require.NotEmpty(t, res.Mesh.Faces())
}

// TestBuildDualMappingsWellFormed checks that vertex 0, shared by both
// faces across the internal diagonal but also touching the boundary here
// (this mesh has no true interior vertex), still produces a consistent
// mapping: every DualMapping references a real primal face and a dual
// vertex index within range.
func TestBuildDualMappingsWellFormed(t *testing.T) {
	primal := twoTriangles()
	res, err := dualmesh.BuildDual(primal, dualmesh.Options{})
	require.NoError(t, err)

	for _, mp := range res.Mappings {
		require.True(t, mp.PrimalFace == 0 || mp.PrimalFace == 1)
		require.True(t, int(mp.DualVertex) < len(res.Mesh.Vertices))
		require.True(t, int(mp.PrimalVertex) < len(primal.Vertices))
	}
}

// TestBuildDualBoundaryVertexSeesFacesOnBothSidesOfItsStartEdge pins the
// walkVertexFan fix: vertex 0 is incident to both faces of twoTriangles,
// straddling the shared diagonal. Whichever of its two outgoing
// half-edges the walk starts from, it must still discover the face on
// the other side of that starting edge, not just the faces reachable by
// rotating forward from it.
func TestBuildDualBoundaryVertexSeesFacesOnBothSidesOfItsStartEdge(t *testing.T) {
	primal := twoTriangles()
	res, err := dualmesh.BuildDual(primal, dualmesh.Options{})
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, mp := range res.Mappings {
		if mp.PrimalVertex == 0 {
			seen[mp.PrimalFace] = true
		}
	}
	require.Len(t, seen, 2)
	require.True(t, seen[0] && seen[1])
}

func TestBuildDualRejectsNonNGon(t *testing.T) {
	md := mesh.NewMeshData([]vecmath.Vector3{{X: 0}, {X: 1}, {X: 0, Y: 1}})
	_, err := md.AddSubmesh([]int32{0, 1, 2}, mesh.Triangles)
	require.NoError(t, err)

	_, err = dualmesh.BuildDual(md, dualmesh.Options{})
	require.Error(t, err)
}

func TestBuildDualThresholdExcludesFarVertices(t *testing.T) {
	primal := twoTriangles()
	full, err := dualmesh.BuildDual(primal, dualmesh.Options{})
	require.NoError(t, err)

	// A threshold between 0 and 1 excludes vertices 1, 2 and 3 (each has
	// a coordinate equal to 1) and keeps only vertex 0 (all coordinates 0).
	restricted, err := dualmesh.BuildDual(primal, dualmesh.Options{FarVertexThreshold: 0.5})
	require.NoError(t, err)
	require.True(t, len(restricted.Mappings) < len(full.Mappings))
}
