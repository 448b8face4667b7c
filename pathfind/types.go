// Package pathfind implements the generic pathfinding engine of spec
// §4.8 (BFS, Dijkstra, A*, Kruskal MST) parameterised over the grid.Grid
// protocol rather than a concrete grid.
//
// Grounded directly on bfs/bfs.go (queue/visited/parent shape),
// dijkstra/dijkstra.go (min-heap + functional-option pattern,
// MaxDistance/InfEdgeThreshold-style guards) and
// prim_kruskal/kruskal.go (union-find with path compression and union by
// rank, sorted-edge MST), rebased from core.Graph vertex IDs onto
// cell.Cell coordinates and grid.Grid.TryMove steps.
package pathfind

import (
	"fmt"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/sylveserr"
)

// errNilGrid wraps sylveserr.ErrNullPointer for a nil Grid argument.
func errNilGrid() error {
	return fmt.Errorf("pathfind: %w", sylveserr.ErrNullPointer)
}

// errSourceNotInGrid wraps sylveserr.ErrCellNotInGrid for a source cell
// the grid does not contain.
func errSourceNotInGrid(c cell.Cell) error {
	return fmt.Errorf("pathfind: source %v not in grid: %w", c, sylveserr.ErrCellNotInGrid)
}

// Step is one move of a reconstructed path (spec §3): {src, dest, dir,
// inverse_dir, connection, length}.
type Step struct {
	Src        cell.Cell
	Dest       cell.Cell
	Dir        cell.CellDir
	InverseDir cell.CellDir
	Connection cell.Connection
	Length     float64
}

// Inverse returns the reverse of s (spec §3: "sylves_step_inverse is an
// involution that swaps src/dest, dir/inverse_dir, inverts the
// connection"). ct is the CellType of s.Dest, whose symmetry group
// Connection is expressed in.
func (s Step) Inverse(ct cell.CellType) Step {
	return Step{
		Src:        s.Dest,
		Dest:       s.Src,
		Dir:        s.InverseDir,
		InverseDir: s.Dir,
		Connection: s.Connection.Invert(ct),
		Length:     s.Length,
	}
}

// Path is a reconstructed route (spec §4.8): "path source -> target
// equals walking dests from the first step".
type Path struct {
	Steps       []Step
	TotalLength float64
}

// Options configures every engine in this package (spec §4.8).
type Options struct {
	// IsAccessible reports whether a cell may be entered. Defaults to
	// always-true.
	IsAccessible func(c cell.Cell) bool
	// StepLength returns the cost of one step; a negative result marks
	// the step inaccessible. Defaults to a constant 1.
	StepLength func(s Step) float64
	// Heuristic estimates remaining cost to the target (A* only).
	Heuristic func(c cell.Cell) float64
	// MaxDistance bounds exploration (BFS: hop count; Dijkstra/A*:
	// accumulated length). Zero means unbounded.
	MaxDistance float64
	// MaxSteps is stored by WithMaxSteps; no engine and not ExtractPath
	// read it, so reconstructed paths are never truncated.
	MaxSteps int
}

// Option mutates an Options value, following the teacher's functional
// options convention (core.GraphOption, dijkstra.Option).
type Option func(*Options)

// WithAccessibility sets the accessibility predicate.
func WithAccessibility(f func(cell.Cell) bool) Option {
	return func(o *Options) { o.IsAccessible = f }
}

// WithStepLength sets the per-step cost function.
func WithStepLength(f func(Step) float64) Option {
	return func(o *Options) { o.StepLength = f }
}

// WithHeuristic sets the A* admissible heuristic.
func WithHeuristic(f func(cell.Cell) float64) Option {
	return func(o *Options) { o.Heuristic = f }
}

// WithMaxDistance bounds the explored distance.
func WithMaxDistance(d float64) Option {
	return func(o *Options) { o.MaxDistance = d }
}

// WithMaxSteps bounds the reconstructed path length.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

func defaultOptions() Options {
	return Options{
		IsAccessible: func(cell.Cell) bool { return true },
		StepLength:   func(Step) float64 { return 1 },
	}
}

func buildOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
