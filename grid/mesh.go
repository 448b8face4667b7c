package grid

import (
	"fmt"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/mesh"
	"github.com/katalvlaran/sylves/sylveserr"
)

// MeshGrid is a finite grid backed by a mesh.MeshData's half-edge map
// (spec §4.3): a cell is one face, CellDir indexes the face's edges in
// order, and TryMove looks up the edge's flip (spec: "dest =
// face.neighbors[dir]... fails if the mesh is topologically inconsistent").
// MeshGrid owns a deep copy of the mesh it is constructed from (spec §5).
type MeshGrid struct {
	data  *mesh.MeshData
	faces []mesh.Face
	he    map[mesh.HalfEdgeKey]*mesh.HalfEdge
}

// NewMeshGrid constructs a MeshGrid over a deep copy of data.
func NewMeshGrid(data *mesh.MeshData) *MeshGrid {
	cp := mesh.NewMeshData(data.Vertices)
	for _, sm := range data.Submeshes {
		idx := make([]int32, len(sm.Indices))
		copy(idx, sm.Indices)
		cp.SetSubmesh(len(cp.Submeshes), idx, sm.Topology)
	}
	return &MeshGrid{data: cp, faces: cp.Faces(), he: cp.BuildHalfEdges()}
}

// Cell.X addresses the face index; Y and Z are unused (0).

func (g *MeshGrid) faceAt(c cell.Cell) (mesh.Face, bool) {
	if c.Y != 0 || c.Z != 0 || c.X < 0 || c.X >= len(g.faces) {
		return mesh.Face{}, false
	}
	return g.faces[c.X], true
}

func (g *MeshGrid) IsCellInGrid(c cell.Cell) bool {
	_, ok := g.faceAt(c)
	return ok
}

func (g *MeshGrid) GetCellType(c cell.Cell) (cell.CellType, error) {
	f, ok := g.faceAt(c)
	if !ok {
		return nil, fmt.Errorf("grid: %v not in mesh grid: %w", c, sylveserr.ErrCellNotInGrid)
	}
	return cell.NewPolygon(len(f.Vertices)), nil
}

func (g *MeshGrid) TryMove(c cell.Cell, dir cell.CellDir) (cell.Cell, cell.CellDir, cell.Connection, bool) {
	f, ok := g.faceAt(c)
	if !ok {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	if int(dir) < 0 || int(dir) >= len(f.Vertices) {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	h, ok := g.he[mesh.HalfEdgeKey{Face: f.Index, Edge: int(dir)}]
	if !ok || !h.HasFlip {
		return cell.Cell{}, 0, cell.Connection{}, false
	}
	flip := g.he[h.Flip]
	dest := cell.Cell{X: h.Flip.Face}
	return dest, cell.CellDir(flip.Edge), cell.Connection{}, true
}

func (g *MeshGrid) GetCellDirs(c cell.Cell) ([]cell.CellDir, error) {
	f, ok := g.faceAt(c)
	if !ok {
		return nil, sylveserr.ErrCellNotInGrid
	}
	out := make([]cell.CellDir, len(f.Vertices))
	for i := range out {
		out[i] = cell.CellDir(i)
	}
	return out, nil
}

func (g *MeshGrid) GetCellCenter(c cell.Cell) vecmath.Vector3 {
	f, ok := g.faceAt(c)
	if !ok {
		sylveserr.LogStructural("mesh grid: GetCellCenter on invalid cell %v", c)
		return vecmath.Vector3{}
	}
	var sum vecmath.Vector3
	for _, idx := range f.Vertices {
		sum = sum.Add(g.data.Vertices[idx])
	}
	return sum.Scale(1.0 / float64(len(f.Vertices)))
}

func (g *MeshGrid) GetCellCorners(c cell.Cell) []vecmath.Vector3 {
	f, ok := g.faceAt(c)
	if !ok {
		return nil
	}
	out := make([]vecmath.Vector3, len(f.Vertices))
	for i, idx := range f.Vertices {
		out[i] = g.data.Vertices[idx]
	}
	return out
}

func (g *MeshGrid) GetPolygon(c cell.Cell) []vecmath.Vector3 { return g.GetCellCorners(c) }

func (g *MeshGrid) FindCell(pos vecmath.Vector3) (cell.Cell, bool) {
	best := -1
	bestDist := 0.0
	for _, f := range g.faces {
		var sum vecmath.Vector3
		for _, idx := range f.Vertices {
			sum = sum.Add(g.data.Vertices[idx])
		}
		center := sum.Scale(1.0 / float64(len(f.Vertices)))
		d := center.Sub(pos).Length()
		if best == -1 || d < bestDist {
			best, bestDist = f.Index, d
		}
	}
	if best == -1 {
		return cell.Cell{}, false
	}
	return cell.Cell{X: best}, true
}

func (g *MeshGrid) GetCellAABB(c cell.Cell) (vecmath.Vector3, vecmath.Vector3) {
	corners := g.GetCellCorners(c)
	if len(corners) == 0 {
		return vecmath.Vector3{}, vecmath.Vector3{}
	}
	min, max := corners[0], corners[0]
	for _, p := range corners[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}

func (g *MeshGrid) IsFinite() bool      { return true }
func (g *MeshGrid) Is2D() bool          { return true }
func (g *MeshGrid) Is3D() bool          { return false }
func (g *MeshGrid) GetCellCount() int64 { return int64(len(g.faces)) }
func (g *MeshGrid) Bound() bound.Bound  { return nil }

// Data returns the mesh backing this grid, for callers that need direct
// mesh access (e.g. export sinks).
func (g *MeshGrid) Data() *mesh.MeshData { return g.data }
