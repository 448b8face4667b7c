package bound

import (
	"sync"

	"github.com/katalvlaran/sylves/cell"
)

// Mask is a hash-set-backed Bound (spec §4.2) supporting mutation
// (Add/Remove/Clear) after construction. Guarded by a sync.RWMutex,
// following core.Graph's locking convention.
type Mask struct {
	mu    sync.RWMutex
	cells map[cell.Cell]struct{}
}

// NewMask returns an empty Mask, optionally seeded with initial cells.
func NewMask(initial ...cell.Cell) *Mask {
	m := &Mask{cells: make(map[cell.Cell]struct{}, len(initial))}
	for _, c := range initial {
		m.cells[c] = struct{}{}
	}
	return m
}

func (m *Mask) Kind() Kind { return KindMask }

func (m *Mask) Contains(c cell.Cell) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.cells[c]
	return ok
}

// Add inserts c into the mask.
func (m *Mask) Add(c cell.Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cells[c] = struct{}{}
}

// Remove deletes c from the mask, if present.
func (m *Mask) Remove(c cell.Cell) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cells, c)
}

// Clear empties the mask.
func (m *Mask) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cells = make(map[cell.Cell]struct{})
}

func (m *Mask) GetCells(buf []cell.Cell) ([]cell.Cell, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := buf[:0]
	for c := range m.cells {
		out = append(out, c)
	}
	return out, nil
}

func (m *Mask) CellCount() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.cells)), nil
}

// GetRect computes the 2D bounding Rect of the stored cells. Requires at
// least one cell, per spec §4.2.
func (m *Mask) GetRect() (Rect, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.cells) == 0 {
		return Rect{}, ErrEmptyMask
	}
	first := true
	var r Rect
	for c := range m.cells {
		if first {
			r = Rect{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			first = false
			continue
		}
		if c.X < r.MinX {
			r.MinX = c.X
		}
		if c.X > r.MaxX {
			r.MaxX = c.X
		}
		if c.Y < r.MinY {
			r.MinY = c.Y
		}
		if c.Y > r.MaxY {
			r.MaxY = c.Y
		}
	}
	return r, nil
}

// GetCube computes the 3D bounding Cube of the stored cells. Requires at
// least one cell, per spec §4.2.
func (m *Mask) GetCube() (Cube, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.cells) == 0 {
		return Cube{}, ErrEmptyMask
	}
	first := true
	var cu Cube
	for c := range m.cells {
		if first {
			cu = Cube{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y, MinZ: c.Z, MaxZ: c.Z}
			first = false
			continue
		}
		if c.X < cu.MinX {
			cu.MinX = c.X
		}
		if c.X > cu.MaxX {
			cu.MaxX = c.X
		}
		if c.Y < cu.MinY {
			cu.MinY = c.Y
		}
		if c.Y > cu.MaxY {
			cu.MaxY = c.Y
		}
		if c.Z < cu.MinZ {
			cu.MinZ = c.Z
		}
		if c.Z > cu.MaxZ {
			cu.MaxZ = c.Z
		}
	}
	return cu, nil
}

// Intersect returns the set intersection of m and o. Both must be *Mask.
func (m *Mask) Intersect(o Bound) (Bound, error) {
	other, ok := o.(*Mask)
	if !ok {
		return nil, variantMismatch("Intersect", KindMask, o.Kind())
	}
	m.mu.RLock()
	other.mu.RLock()
	defer m.mu.RUnlock()
	defer other.mu.RUnlock()
	result := NewMask()
	for c := range m.cells {
		if _, ok := other.cells[c]; ok {
			result.cells[c] = struct{}{}
		}
	}
	return result, nil
}

// Union returns the set union of m and o. Both must be *Mask.
func (m *Mask) Union(o Bound) (Bound, error) {
	other, ok := o.(*Mask)
	if !ok {
		return nil, variantMismatch("Union", KindMask, o.Kind())
	}
	m.mu.RLock()
	other.mu.RLock()
	defer m.mu.RUnlock()
	defer other.mu.RUnlock()
	result := NewMask()
	for c := range m.cells {
		result.cells[c] = struct{}{}
	}
	for c := range other.cells {
		result.cells[c] = struct{}{}
	}
	return result, nil
}
