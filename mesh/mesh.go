// Package mesh implements the mesh storage model of spec §3/§4.4: vertices
// plus submeshes with n-gon sentinel encoding, derived half-edge adjacency,
// and a face iterator that hides the sentinel encoding from consumers
// (spec §9: "NGon sentinel indices ... become a face-iterator that yields
// slices into the index array").
//
// Grounded on matrix/builder.go's copy-on-construct ownership contract and
// graph/adjacency_list.go's scan-and-link adjacency construction.
package mesh

import (
	"fmt"

	"github.com/katalvlaran/sylves/alloc"
	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/katalvlaran/sylves/sylveserr"
)

// Topology tags how a Submesh's flat index buffer is consumed (spec §4.4).
type Topology int

const (
	// Triangles consumes indices in fixed strides of 3.
	Triangles Topology = iota
	// Quads consumes indices in fixed strides of 4.
	Quads
	// NGon walks the index stream until a sentinel (bitwise-complemented)
	// index marks the end of each face.
	NGon
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "Triangles"
	case Quads:
		return "Quads"
	case NGon:
		return "NGon"
	default:
		return "Unknown"
	}
}

// Submesh is a flat index buffer with a topology tag (spec §3).
type Submesh struct {
	Indices  []int32
	Topology Topology
}

// MeshData is the core mesh storage type (spec §3): vertices, submeshes,
// optional per-vertex attributes, and a half-edge map built on demand.
type MeshData struct {
	Vertices []vecmath.Vector3
	Submeshes []Submesh

	Normals  []vecmath.Vector3 // optional, len(Normals) == len(Vertices) if present
	UVs      []vecmath.Vector3 // optional
	Tangents []vecmath.Vector3 // optional

	halfEdges map[HalfEdgeKey]*HalfEdge
	nonManifold bool
}

// NewMeshData returns an empty mesh with a deep copy of the given vertices.
func NewMeshData(vertices []vecmath.Vector3) *MeshData {
	v := make([]vecmath.Vector3, len(vertices))
	copy(v, vertices)
	return &MeshData{Vertices: v}
}

// SetSubmesh takes ownership of a copy of indices under the given
// topology, validating the NGon sentinel invariant (spec §4.4): at least
// one face ends (a sentinel exists), and every sentinel is followed by a
// new face start or EOF. Also validates every index is in [0, V) and every
// face has at least 3 vertices.
func (m *MeshData) SetSubmesh(i int, indices []int32, topology Topology) error {
	cp := alloc.Current().AllocInt32(len(indices))
	copy(cp, indices)

	if err := validateSubmesh(cp, topology, len(m.Vertices)); err != nil {
		return err
	}

	for len(m.Submeshes) <= i {
		m.Submeshes = append(m.Submeshes, Submesh{})
	}
	m.Submeshes[i] = Submesh{Indices: cp, Topology: topology}
	m.halfEdges = nil // invalidate derived structures
	return nil
}

// AddSubmesh appends a new submesh and returns its index.
func (m *MeshData) AddSubmesh(indices []int32, topology Topology) (int, error) {
	idx := len(m.Submeshes)
	m.Submeshes = append(m.Submeshes, Submesh{})
	if err := m.SetSubmesh(idx, indices, topology); err != nil {
		m.Submeshes = m.Submeshes[:idx]
		return 0, err
	}
	return idx, nil
}

func validateSubmesh(indices []int32, topology Topology, vertexCount int) error {
	realIndex := func(raw int32) int32 {
		if raw < 0 {
			return ^raw
		}
		return raw
	}
	checkRange := func(raw int32) error {
		ri := realIndex(raw)
		if ri < 0 || int(ri) >= vertexCount {
			return fmt.Errorf("mesh: index %d out of range [0,%d): %w", ri, vertexCount, sylveserr.ErrOutOfBounds)
		}
		return nil
	}

	switch topology {
	case Triangles:
		if len(indices)%3 != 0 {
			return fmt.Errorf("mesh: triangle submesh length %d not a multiple of 3: %w", len(indices), sylveserr.ErrInvalidArgument)
		}
		for _, raw := range indices {
			if err := checkRange(raw); err != nil {
				return err
			}
		}
	case Quads:
		if len(indices)%4 != 0 {
			return fmt.Errorf("mesh: quad submesh length %d not a multiple of 4: %w", len(indices), sylveserr.ErrInvalidArgument)
		}
		for _, raw := range indices {
			if err := checkRange(raw); err != nil {
				return err
			}
		}
	case NGon:
		if len(indices) == 0 {
			return nil
		}
		sawSentinel := false
		faceLen := 0
		for pos, raw := range indices {
			if err := checkRange(raw); err != nil {
				return err
			}
			faceLen++
			if raw < 0 {
				sawSentinel = true
				if faceLen < 3 {
					return fmt.Errorf("mesh: face ending at index %d has only %d vertices: %w", pos, faceLen, sylveserr.ErrInvalidArgument)
				}
				faceLen = 0
			}
		}
		if !sawSentinel {
			return fmt.Errorf("mesh: ngon submesh has no sentinel-terminated face: %w", sylveserr.ErrInvalidArgument)
		}
		if faceLen != 0 {
			return fmt.Errorf("mesh: ngon submesh does not end on a face boundary: %w", sylveserr.ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("mesh: unknown topology %v: %w", topology, sylveserr.ErrInvalidArgument)
	}
	return nil
}

// VertexCount returns len(Vertices).
func (m *MeshData) VertexCount() int { return len(m.Vertices) }
