package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/export"
	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/mesh"
)

func quadMesh(t *testing.T) *mesh.MeshData {
	t.Helper()
	m := mesh.NewMeshData([]vecmath.Vector3{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	})
	_, err := m.AddSubmesh([]int32{0, 1, 2, ^int32(3)}, mesh.NGon)
	require.NoError(t, err)
	return m
}

func TestOBJWriterEmitsVerticesAndFace(t *testing.T) {
	m := quadMesh(t)
	var buf bytes.Buffer
	require.NoError(t, export.OBJWriter{}.Write(&buf, m))

	out := buf.String()
	require.Equal(t, 4, strings.Count(out, "v "))
	require.Contains(t, out, "f 1 2 3 4\n")
}

func TestSVGWriterEmitsOnePolygonPerFace(t *testing.T) {
	m := quadMesh(t)
	var buf bytes.Buffer
	require.NoError(t, export.SVGWriter{}.Write(&buf, m))

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "<polygon"))
	require.True(t, strings.HasPrefix(out, "<svg"))
	require.True(t, strings.HasSuffix(out, "</svg>\n"))
}
