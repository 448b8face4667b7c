package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/sylves/mesh"
	"github.com/katalvlaran/sylves/sylveserr"
)

// SVGWriter emits a MeshData's faces as a flat 2D SVG projection (X,Y;
// Z is dropped), one <polygon> per face. StrokeWidth and Scale control
// the emitted document; zero values fall back to the package defaults.
type SVGWriter struct {
	Scale       float64
	StrokeWidth float64
}

const (
	defaultSVGScale       = 1.0
	defaultSVGStrokeWidth = 1.0
)

func (s SVGWriter) Write(w io.Writer, m *mesh.MeshData) error {
	scale := s.Scale
	if scale == 0 {
		scale = defaultSVGScale
	}
	stroke := s.StrokeWidth
	if stroke == 0 {
		stroke = defaultSVGStrokeWidth
	}

	minX, minY, maxX, maxY := boundsOf(m)
	width := (maxX - minX) * scale
	height := (maxY - minY) * scale

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n",
		width, height, width, height); err != nil {
		return fmt.Errorf("export: svg header write: %w: %v", sylveserr.ErrIO, err)
	}

	for _, f := range m.Faces() {
		if _, err := bw.WriteString("  <polygon points=\""); err != nil {
			return fmt.Errorf("export: svg polygon write: %w: %v", sylveserr.ErrIO, err)
		}
		for i, idx := range f.Vertices {
			v := m.Vertices[idx]
			x := (v.X - minX) * scale
			y := (v.Y - minY) * scale
			if i > 0 {
				if _, err := bw.WriteString(" "); err != nil {
					return fmt.Errorf("export: svg polygon write: %w: %v", sylveserr.ErrIO, err)
				}
			}
			if _, err := fmt.Fprintf(bw, "%g,%g", x, y); err != nil {
				return fmt.Errorf("export: svg polygon write: %w: %v", sylveserr.ErrIO, err)
			}
		}
		if _, err := fmt.Fprintf(bw, "\" fill=\"none\" stroke=\"black\" stroke-width=\"%g\"/>\n", stroke); err != nil {
			return fmt.Errorf("export: svg polygon write: %w: %v", sylveserr.ErrIO, err)
		}
	}

	if _, err := bw.WriteString("</svg>\n"); err != nil {
		return fmt.Errorf("export: svg footer write: %w: %v", sylveserr.ErrIO, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: svg flush: %w: %v", sylveserr.ErrIO, err)
	}
	return nil
}

func boundsOf(m *mesh.MeshData) (minX, minY, maxX, maxY float64) {
	if len(m.Vertices) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = m.Vertices[0].X, m.Vertices[0].Y
	maxX, maxY = minX, minY
	for _, v := range m.Vertices[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return
}
