package mesh

// Face describes one face's vertex loop, with the global face index used
// as a half-edge map key. Indices are real vertex indices; the NGon
// sentinel encoding is resolved away (spec §9).
type Face struct {
	Index       int
	SubmeshIdx  int
	Vertices    []int32
}

// realIndex resolves the NGon two's-complement sentinel encoding back to a
// plain vertex index.
func realIndex(raw int32) int32 {
	if raw < 0 {
		return ^raw
	}
	return raw
}

// Faces enumerates every face across every submesh in order, exposing
// face_vertices and vertex_count per spec §4.4, with the sentinel encoding
// hidden from the caller.
func (m *MeshData) Faces() []Face {
	var faces []Face
	globalIdx := 0
	for si, sm := range m.Submeshes {
		switch sm.Topology {
		case Triangles:
			for i := 0; i+3 <= len(sm.Indices); i += 3 {
				faces = append(faces, Face{
					Index:      globalIdx,
					SubmeshIdx: si,
					Vertices:   []int32{sm.Indices[i], sm.Indices[i+1], sm.Indices[i+2]},
				})
				globalIdx++
			}
		case Quads:
			for i := 0; i+4 <= len(sm.Indices); i += 4 {
				faces = append(faces, Face{
					Index:      globalIdx,
					SubmeshIdx: si,
					Vertices:   []int32{sm.Indices[i], sm.Indices[i+1], sm.Indices[i+2], sm.Indices[i+3]},
				})
				globalIdx++
			}
		case NGon:
			var cur []int32
			for _, raw := range sm.Indices {
				cur = append(cur, realIndex(raw))
				if raw < 0 {
					faces = append(faces, Face{Index: globalIdx, SubmeshIdx: si, Vertices: cur})
					globalIdx++
					cur = nil
				}
			}
		}
	}
	return faces
}

// FaceCount returns the total number of faces across every submesh.
func (m *MeshData) FaceCount() int {
	return len(m.Faces())
}
