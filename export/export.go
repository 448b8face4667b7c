// Package export implements the sink interfaces of spec §6: OBJ, PLY,
// STL, OFF and SVG are "out of core scope ... treated as sinks taking a
// MeshData". This package gives that collaborator boundary a concrete,
// minimal home: a single Writer interface plus OBJ and SVG
// implementations, the two formats simple enough to not need a
// dedicated binary/ASCII variant split (PLY/STL/OFF are left as
// documented extension points, same interface).
package export

import (
	"io"

	"github.com/katalvlaran/sylves/mesh"
)

// Writer sinks a mesh to an io.Writer in a concrete format.
type Writer interface {
	Write(w io.Writer, m *mesh.MeshData) error
}
