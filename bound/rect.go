package bound

import "github.com/katalvlaran/sylves/cell"

// Rect is a 2D integer-extent Bound (spec §4.2): inclusive min/max on X
// and Y, Z fixed at 0.
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// NewRect returns a Rect spanning [minX,maxX] x [minY,maxY] inclusive.
func NewRect(minX, minY, maxX, maxY int) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func (r Rect) Kind() Kind { return KindRect }

func (r Rect) Contains(c cell.Cell) bool {
	return c.Z == 0 && c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

// GetCells iterates axis-ordered (y outer, x inner), per spec §4.2.
func (r Rect) GetCells(buf []cell.Cell) ([]cell.Cell, error) {
	out := buf[:0]
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			out = append(out, cell.Cell{X: x, Y: y})
		}
	}
	return out, nil
}

// CellCount returns (maxX-minX+1)*(maxY-minY+1), with an overflow check per
// spec §4.2.
func (r Rect) CellCount() (int64, error) {
	w := int64(r.MaxX) - int64(r.MinX) + 1
	h := int64(r.MaxY) - int64(r.MinY) + 1
	if w <= 0 || h <= 0 {
		return 0, nil
	}
	return checkedMul(w, h)
}

// Intersect returns the overlapping Rect of r and o. Both must be Rect.
func (r Rect) Intersect(o Bound) (Bound, error) {
	other, ok := o.(Rect)
	if !ok {
		return nil, variantMismatch("Intersect", KindRect, o.Kind())
	}
	return Rect{
		MinX: max(r.MinX, other.MinX),
		MinY: max(r.MinY, other.MinY),
		MaxX: min(r.MaxX, other.MaxX),
		MaxY: min(r.MaxY, other.MaxY),
	}, nil
}

// Union returns the bounding Rect containing r and o. Both must be Rect.
func (r Rect) Union(o Bound) (Bound, error) {
	other, ok := o.(Rect)
	if !ok {
		return nil, variantMismatch("Union", KindRect, o.Kind())
	}
	return Rect{
		MinX: min(r.MinX, other.MinX),
		MinY: min(r.MinY, other.MinY),
		MaxX: max(r.MaxX, other.MaxX),
		MaxY: max(r.MaxY, other.MaxY),
	}, nil
}

// Cube is a 3D integer-extent Bound (spec §4.2).
type Cube struct {
	MinX, MinY, MinZ, MaxX, MaxY, MaxZ int
}

// NewCube returns a Cube spanning the inclusive range on every axis.
func NewCube(minX, minY, minZ, maxX, maxY, maxZ int) Cube {
	return Cube{minX, minY, minZ, maxX, maxY, maxZ}
}

func (c Cube) Kind() Kind { return KindCube }

func (c Cube) Contains(ce cell.Cell) bool {
	return ce.X >= c.MinX && ce.X <= c.MaxX &&
		ce.Y >= c.MinY && ce.Y <= c.MaxY &&
		ce.Z >= c.MinZ && ce.Z <= c.MaxZ
}

// GetCells iterates z-outer, y, x-inner, per spec §4.2.
func (c Cube) GetCells(buf []cell.Cell) ([]cell.Cell, error) {
	out := buf[:0]
	for z := c.MinZ; z <= c.MaxZ; z++ {
		for y := c.MinY; y <= c.MaxY; y++ {
			for x := c.MinX; x <= c.MaxX; x++ {
				out = append(out, cell.Cell{X: x, Y: y, Z: z})
			}
		}
	}
	return out, nil
}

func (c Cube) CellCount() (int64, error) {
	w := int64(c.MaxX) - int64(c.MinX) + 1
	h := int64(c.MaxY) - int64(c.MinY) + 1
	d := int64(c.MaxZ) - int64(c.MinZ) + 1
	if w <= 0 || h <= 0 || d <= 0 {
		return 0, nil
	}
	whd, err := checkedMul(w, h)
	if err != nil {
		return 0, err
	}
	return checkedMul(whd, d)
}

func (c Cube) Intersect(o Bound) (Bound, error) {
	other, ok := o.(Cube)
	if !ok {
		return nil, variantMismatch("Intersect", KindCube, o.Kind())
	}
	return Cube{
		MinX: max(c.MinX, other.MinX), MinY: max(c.MinY, other.MinY), MinZ: max(c.MinZ, other.MinZ),
		MaxX: min(c.MaxX, other.MaxX), MaxY: min(c.MaxY, other.MaxY), MaxZ: min(c.MaxZ, other.MaxZ),
	}, nil
}

func (c Cube) Union(o Bound) (Bound, error) {
	other, ok := o.(Cube)
	if !ok {
		return nil, variantMismatch("Union", KindCube, o.Kind())
	}
	return Cube{
		MinX: min(c.MinX, other.MinX), MinY: min(c.MinY, other.MinY), MinZ: min(c.MinZ, other.MinZ),
		MaxX: max(c.MaxX, other.MaxX), MaxY: max(c.MaxY, other.MaxY), MaxZ: max(c.MaxZ, other.MaxZ),
	}, nil
}

func checkedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/a != b {
		return 0, ErrOverflow
	}
	return r, nil
}

