// Package registry implements the named-constructor registry for
// CellType, Bound and Grid factories that spec.md §1 lists as an
// external collaborator ("registry/factory helpers"): embedding
// applications can build grids from config/data by name instead of a Go
// call site.
//
// Grounded on builder/api.go's Constructor-function-keyed-by-name
// pattern, translated from a single BuildGraph orchestrator into three
// parallel registries (one per factory kind) since CellType, Bound and
// Grid are constructed independently in this module.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/sylves/bound"
	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
	"github.com/katalvlaran/sylves/sylveserr"
)

// CellTypeFactory constructs a cell.CellType from positional int
// arguments (e.g. NewPolygon's n). Factories taking no arguments ignore
// args.
type CellTypeFactory func(args ...int) (cell.CellType, error)

// BoundFactory constructs a bound.Bound from positional int arguments
// (e.g. Rect's minX,minY,maxX,maxY).
type BoundFactory func(args ...int) (bound.Bound, error)

// GridFactory constructs a grid.Grid from a positional float64 cell
// size and int arguments, covering the common "cell size + flags"
// shape of the concrete regular grids.
type GridFactory func(cellSize float64, args ...int) (grid.Grid, error)

type registry struct {
	mu        sync.RWMutex
	cellTypes map[string]CellTypeFactory
	bounds    map[string]BoundFactory
	grids     map[string]GridFactory
}

var global = &registry{
	cellTypes: make(map[string]CellTypeFactory),
	bounds:    make(map[string]BoundFactory),
	grids:     make(map[string]GridFactory),
}

// RegisterCellType installs a named CellType factory, overwriting any
// existing registration under the same name.
func RegisterCellType(name string, factory CellTypeFactory) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.cellTypes[name] = factory
}

// RegisterBound installs a named Bound factory.
func RegisterBound(name string, factory BoundFactory) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.bounds[name] = factory
}

// RegisterGrid installs a named Grid factory.
func RegisterGrid(name string, factory GridFactory) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.grids[name] = factory
}

// LookupCellType builds the CellType registered under name. Returns
// sylveserr.ErrNotFound if no factory is registered under that name.
func LookupCellType(name string, args ...int) (cell.CellType, error) {
	global.mu.RLock()
	factory, ok := global.cellTypes[name]
	global.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: no cell type registered as %q: %w", name, sylveserr.ErrNotFound)
	}
	return factory(args...)
}

// LookupBound builds the Bound registered under name.
func LookupBound(name string, args ...int) (bound.Bound, error) {
	global.mu.RLock()
	factory, ok := global.bounds[name]
	global.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: no bound registered as %q: %w", name, sylveserr.ErrNotFound)
	}
	return factory(args...)
}

// LookupGrid builds the Grid registered under name.
func LookupGrid(name string, cellSize float64, args ...int) (grid.Grid, error) {
	global.mu.RLock()
	factory, ok := global.grids[name]
	global.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: no grid registered as %q: %w", name, sylveserr.ErrNotFound)
	}
	return factory(cellSize, args...)
}

// CellTypeNames returns the sorted names of every registered CellType
// factory.
func CellTypeNames() []string { return sortedKeysCT(global) }

// BoundNames returns the sorted names of every registered Bound factory.
func BoundNames() []string { return sortedKeysBound(global) }

// GridNames returns the sorted names of every registered Grid factory.
func GridNames() []string { return sortedKeysGrid(global) }

func sortedKeysCT(r *registry) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.cellTypes))
	for k := range r.cellTypes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysBound(r *registry) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.bounds))
	for k := range r.bounds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedKeysGrid(r *registry) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.grids))
	for k := range r.grids {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
