package mesh

// HalfEdgeKey identifies one half-edge by its owning face and the edge
// index within that face's vertex loop (spec §3/§4.4).
type HalfEdgeKey struct {
	Face int
	Edge int
}

// HalfEdge is a directed edge belonging to exactly one face, paired with
// its Flip (the opposing half-edge of the same undirected edge) when the
// mesh is manifold at that edge (spec §3/GLOSSARY).
type HalfEdge struct {
	Face        int
	Edge        int
	StartVertex int32
	EndVertex   int32
	Flip        HalfEdgeKey
	HasFlip     bool
}

type undirectedEdge struct {
	a, b int32 // a < b
}

func canonical(a, b int32) undirectedEdge {
	if a < b {
		return undirectedEdge{a, b}
	}
	return undirectedEdge{b, a}
}

// BuildHalfEdges constructs (and caches) the half-edge map by scanning
// every face once: each undirected edge bucket stores the first half-edge
// seen, and cross-links both halves when the partner appears (spec §4.4).
// A third half-edge sharing the same undirected edge marks the mesh
// non-manifold; HasNonManifoldEdges reports this after a build.
func (m *MeshData) BuildHalfEdges() map[HalfEdgeKey]*HalfEdge {
	if m.halfEdges != nil {
		return m.halfEdges
	}

	he := make(map[HalfEdgeKey]*HalfEdge)
	buckets := make(map[undirectedEdge][]HalfEdgeKey)
	m.nonManifold = false

	for _, f := range m.Faces() {
		n := len(f.Vertices)
		for e := 0; e < n; e++ {
			start := f.Vertices[e]
			end := f.Vertices[(e+1)%n]
			key := HalfEdgeKey{Face: f.Index, Edge: e}
			he[key] = &HalfEdge{Face: f.Index, Edge: e, StartVertex: start, EndVertex: end}

			uk := canonical(start, end)
			buckets[uk] = append(buckets[uk], key)
		}
	}

	for uk, keys := range buckets {
		switch len(keys) {
		case 1:
			// boundary half-edge, no flip
		case 2:
			a, b := keys[0], keys[1]
			he[a].Flip = b
			he[a].HasFlip = true
			he[b].Flip = a
			he[b].HasFlip = true
		default:
			m.nonManifold = true
		}
		_ = uk
	}

	m.halfEdges = he
	return he
}

// HasNonManifoldEdges reports whether the most recent BuildHalfEdges call
// found an undirected edge shared by three or more faces (spec §4.4).
// Builds the half-edge map first if it has not been built yet.
func (m *MeshData) HasNonManifoldEdges() bool {
	m.BuildHalfEdges()
	return m.nonManifold
}

// HalfEdge looks up one half-edge by key, building the map if needed.
func (m *MeshData) HalfEdge(key HalfEdgeKey) (*HalfEdge, bool) {
	he := m.BuildHalfEdges()
	h, ok := he[key]
	return h, ok
}
