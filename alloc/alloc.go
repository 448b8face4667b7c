// Package alloc implements the pluggable-allocator hook of spec §5: "the
// default allocator is process-global but replaceable via
// set_allocator(alloc) before any grid is created; once allocation has
// begun, swapping is undefined." Go has no user-replaceable allocator,
// so this is the idiomatic translation spec §9 calls for ("manually-
// managed pointer ownership ... becomes value ownership"): a thin
// interface other packages may call into for large buffer allocations,
// defaulting to plain GC-backed make().
package alloc

// Allocator is called by mesh.MeshData.SetSubmesh for its index buffer;
// grid and bound construction do not call it, and nothing in the module
// calls Free. The default implementation
// is a thin wrapper over make(); a custom Allocator lets an embedding
// application pool or instrument these allocations.
type Allocator interface {
	AllocBytes(n int) []byte
	AllocFloat64(n int) []float64
	AllocInt32(n int) []int32
	Free(v interface{})
}

// gcAllocator is the default Allocator: every method returns a
// freshly-made slice and Free is a no-op, since Go's garbage collector
// reclaims unreachable slices on its own.
type gcAllocator struct{}

func (gcAllocator) AllocBytes(n int) []byte     { return make([]byte, n) }
func (gcAllocator) AllocFloat64(n int) []float64 { return make([]float64, n) }
func (gcAllocator) AllocInt32(n int) []int32    { return make([]int32, n) }
func (gcAllocator) Free(interface{})            {}

var current Allocator = gcAllocator{}

// SetAllocator installs the process-wide allocator (spec §5:
// "set_allocator(alloc) before any grid is created; once allocation has
// begun, swapping is undefined"). Passing nil restores the default
// GC-backed allocator.
func SetAllocator(a Allocator) {
	if a == nil {
		current = gcAllocator{}
		return
	}
	current = a
}

// Current returns the process-wide allocator installed by SetAllocator,
// or the default GC-backed one if none was installed.
func Current() Allocator { return current }
