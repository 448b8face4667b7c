package mesh_test

import (
	"testing"

	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/mesh"
	"github.com/stretchr/testify/require"
)

func square() *mesh.MeshData {
	md := mesh.NewMeshData([]vecmath.Vector3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})
	return md
}

func TestTriangleSubmeshRoundTrip(t *testing.T) {
	md := square()
	_, err := md.AddSubmesh([]int32{0, 1, 2, 0, 2, 3}, mesh.Triangles)
	require.NoError(t, err)
	require.Equal(t, 2, md.FaceCount())
	require.Equal(t, 4, md.VertexCount())
}

func TestNGonSubmeshSentinelEncoding(t *testing.T) {
	md := square()
	// Single quad face 0,1,2,3 with sentinel on the last index.
	_, err := md.AddSubmesh([]int32{0, 1, 2, ^int32(3)}, mesh.NGon)
	require.NoError(t, err)

	faces := md.Faces()
	require.Len(t, faces, 1)
	require.Equal(t, []int32{0, 1, 2, 3}, faces[0].Vertices)
}

func TestNGonRejectsMissingSentinel(t *testing.T) {
	md := square()
	_, err := md.AddSubmesh([]int32{0, 1, 2, 3}, mesh.NGon)
	require.Error(t, err)
}

func TestNGonRejectsTooFewVerticesInFace(t *testing.T) {
	md := square()
	_, err := md.AddSubmesh([]int32{0, ^int32(1)}, mesh.NGon)
	require.Error(t, err)
}

func TestOutOfRangeIndexRejected(t *testing.T) {
	md := square()
	_, err := md.AddSubmesh([]int32{0, 1, 9}, mesh.Triangles)
	require.Error(t, err)
}

// TestHalfEdgeReciprocity builds two triangles sharing an edge and checks
// that the shared edge's two half-edges mutually flip, while boundary
// edges have no flip.
func TestHalfEdgeReciprocity(t *testing.T) {
	md := mesh.NewMeshData([]vecmath.Vector3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})
	_, err := md.AddSubmesh([]int32{0, 1, 2, 0, 2, 3}, mesh.Triangles)
	require.NoError(t, err)

	he := md.BuildHalfEdges()
	require.False(t, md.HasNonManifoldEdges())

	// Face 0 = [0,1,2]; face 1 = [0,2,3]. The shared diagonal (0,2) is
	// face 0 edge 2 (2,0) <-> face 1 edge 0 (0,2).
	a := he[mesh.HalfEdgeKey{Face: 0, Edge: 2}]
	b := he[mesh.HalfEdgeKey{Face: 1, Edge: 0}]
	require.True(t, a.HasFlip)
	require.Equal(t, mesh.HalfEdgeKey{Face: 1, Edge: 0}, a.Flip)
	require.True(t, b.HasFlip)
	require.Equal(t, mesh.HalfEdgeKey{Face: 0, Edge: 2}, b.Flip)

	// Boundary edge: face 0 edge 0 is (0,1), has no partner.
	boundary := he[mesh.HalfEdgeKey{Face: 0, Edge: 0}]
	require.False(t, boundary.HasFlip)
}

func TestNonManifoldEdgeDetected(t *testing.T) {
	md := mesh.NewMeshData([]vecmath.Vector3{
		{X: 0}, {X: 1}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: -1},
	})
	// Three triangles all sharing the edge (0,1).
	_, err := md.AddSubmesh([]int32{0, 1, 2, 0, 1, 3, 0, 1, 4}, mesh.Triangles)
	require.NoError(t, err)
	require.True(t, md.HasNonManifoldEdges())
}
