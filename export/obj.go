package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/sylves/mesh"
	"github.com/katalvlaran/sylves/sylveserr"
)

// OBJWriter emits a MeshData as Wavefront OBJ: one "v" line per vertex,
// one "f" line per face (1-indexed, per the OBJ convention).
type OBJWriter struct{}

func (OBJWriter) Write(w io.Writer, m *mesh.MeshData) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return fmt.Errorf("export: obj vertex write: %w: %v", sylveserr.ErrIO, err)
		}
	}
	for _, f := range m.Faces() {
		if _, err := bw.WriteString("f"); err != nil {
			return fmt.Errorf("export: obj face write: %w: %v", sylveserr.ErrIO, err)
		}
		for _, idx := range f.Vertices {
			if _, err := fmt.Fprintf(bw, " %d", idx+1); err != nil {
				return fmt.Errorf("export: obj face write: %w: %v", sylveserr.ErrIO, err)
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return fmt.Errorf("export: obj face write: %w: %v", sylveserr.ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: obj flush: %w: %v", sylveserr.ErrIO, err)
	}
	return nil
}
