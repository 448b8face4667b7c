package bound

import (
	"math"

	"github.com/katalvlaran/sylves/cell"
)

// AABB2D is a float-extent Bound over X/Y (spec §4.2). Contains tests the
// cell centre at half-integer coordinates (x+0.5, y+0.5), matching the
// convention that a unit cell (x,y) occupies [x, x+1) x [y, y+1).
type AABB2D struct {
	MinX, MinY, MaxX, MaxY float64
}

func (a AABB2D) Kind() Kind { return KindAABB2D }

func (a AABB2D) Contains(c cell.Cell) bool {
	if c.Z != 0 {
		return false
	}
	cx, cy := float64(c.X)+0.5, float64(c.Y)+0.5
	return cx >= a.MinX && cx <= a.MaxX && cy >= a.MinY && cy <= a.MaxY
}

// GetCells iterates floor(min)..ceil(max) and filters by Contains, per spec
// §4.2.
func (a AABB2D) GetCells(buf []cell.Cell) ([]cell.Cell, error) {
	out := buf[:0]
	minX, maxX := int(math.Floor(a.MinX)), int(math.Ceil(a.MaxX))
	minY, maxY := int(math.Floor(a.MinY)), int(math.Ceil(a.MaxY))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := cell.Cell{X: x, Y: y}
			if a.Contains(c) {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (a AABB2D) CellCount() (int64, error) {
	cells, err := a.GetCells(nil)
	if err != nil {
		return 0, err
	}
	return int64(len(cells)), nil
}

func (a AABB2D) Intersect(o Bound) (Bound, error) {
	other, ok := o.(AABB2D)
	if !ok {
		return nil, variantMismatch("Intersect", KindAABB2D, o.Kind())
	}
	return AABB2D{
		MinX: math.Max(a.MinX, other.MinX), MinY: math.Max(a.MinY, other.MinY),
		MaxX: math.Min(a.MaxX, other.MaxX), MaxY: math.Min(a.MaxY, other.MaxY),
	}, nil
}

func (a AABB2D) Union(o Bound) (Bound, error) {
	other, ok := o.(AABB2D)
	if !ok {
		return nil, variantMismatch("Union", KindAABB2D, o.Kind())
	}
	return AABB2D{
		MinX: math.Min(a.MinX, other.MinX), MinY: math.Min(a.MinY, other.MinY),
		MaxX: math.Max(a.MaxX, other.MaxX), MaxY: math.Max(a.MaxY, other.MaxY),
	}, nil
}

// AABB3D is the 3D analogue of AABB2D.
type AABB3D struct {
	MinX, MinY, MinZ, MaxX, MaxY, MaxZ float64
}

func (a AABB3D) Kind() Kind { return KindAABB3D }

func (a AABB3D) Contains(c cell.Cell) bool {
	cx, cy, cz := float64(c.X)+0.5, float64(c.Y)+0.5, float64(c.Z)+0.5
	return cx >= a.MinX && cx <= a.MaxX &&
		cy >= a.MinY && cy <= a.MaxY &&
		cz >= a.MinZ && cz <= a.MaxZ
}

func (a AABB3D) GetCells(buf []cell.Cell) ([]cell.Cell, error) {
	out := buf[:0]
	minX, maxX := int(math.Floor(a.MinX)), int(math.Ceil(a.MaxX))
	minY, maxY := int(math.Floor(a.MinY)), int(math.Ceil(a.MaxY))
	minZ, maxZ := int(math.Floor(a.MinZ)), int(math.Ceil(a.MaxZ))
	for z := minZ; z <= maxZ; z++ {
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				c := cell.Cell{X: x, Y: y, Z: z}
				if a.Contains(c) {
					out = append(out, c)
				}
			}
		}
	}
	return out, nil
}

func (a AABB3D) CellCount() (int64, error) {
	cells, err := a.GetCells(nil)
	if err != nil {
		return 0, err
	}
	return int64(len(cells)), nil
}

func (a AABB3D) Intersect(o Bound) (Bound, error) {
	other, ok := o.(AABB3D)
	if !ok {
		return nil, variantMismatch("Intersect", KindAABB3D, o.Kind())
	}
	return AABB3D{
		MinX: math.Max(a.MinX, other.MinX), MinY: math.Max(a.MinY, other.MinY), MinZ: math.Max(a.MinZ, other.MinZ),
		MaxX: math.Min(a.MaxX, other.MaxX), MaxY: math.Min(a.MaxY, other.MaxY), MaxZ: math.Min(a.MaxZ, other.MaxZ),
	}, nil
}

func (a AABB3D) Union(o Bound) (Bound, error) {
	other, ok := o.(AABB3D)
	if !ok {
		return nil, variantMismatch("Union", KindAABB3D, o.Kind())
	}
	return AABB3D{
		MinX: math.Min(a.MinX, other.MinX), MinY: math.Min(a.MinY, other.MinY), MinZ: math.Min(a.MinZ, other.MinZ),
		MaxX: math.Max(a.MaxX, other.MaxX), MaxY: math.Max(a.MaxY, other.MaxY), MaxZ: math.Max(a.MaxZ, other.MaxZ),
	}, nil
}
