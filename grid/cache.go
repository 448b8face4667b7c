package grid

import (
	"container/list"
	"sync"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/mesh"
)

// MeshCache is the optional (cell -> mesh) LRU cache of spec §5, guarded
// by a sync.Mutex (every access, including Get, updates the LRU order).
type MeshCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[cell.Cell]*list.Element
}

type cacheEntry struct {
	key  cell.Cell
	mesh *mesh.MeshData
}

// NewMeshCache returns an LRU cache holding at most capacity entries.
func NewMeshCache(capacity int) *MeshCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &MeshCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[cell.Cell]*list.Element),
	}
}

// Get returns the cached mesh for c, if present, promoting it to
// most-recently-used.
func (c *MeshCache) Get(key cell.Cell) (*mesh.MeshData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).mesh, true
}

// Put inserts or updates the cached mesh for key, evicting the
// least-recently-used entry if the cache is at capacity.
func (c *MeshCache) Put(key cell.Cell, m *mesh.MeshData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).mesh = m
		c.order.MoveToFront(el)
		return
	}
	el := c.order.PushFront(&cacheEntry{key: key, mesh: m})
	c.entries[key] = el
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
}

// Len returns the number of cached entries.
func (c *MeshCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
