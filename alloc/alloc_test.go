package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/alloc"
)

type countingAllocator struct{ allocs int }

func (c *countingAllocator) AllocBytes(n int) []byte     { c.allocs++; return make([]byte, n) }
func (c *countingAllocator) AllocFloat64(n int) []float64 { c.allocs++; return make([]float64, n) }
func (c *countingAllocator) AllocInt32(n int) []int32     { c.allocs++; return make([]int32, n) }
func (c *countingAllocator) Free(interface{})             {}

func TestDefaultAllocatorAllocatesExactLength(t *testing.T) {
	a := alloc.Current()
	require.Len(t, a.AllocFloat64(8), 8)
}

func TestSetAllocatorOverridesCurrent(t *testing.T) {
	custom := &countingAllocator{}
	alloc.SetAllocator(custom)
	t.Cleanup(func() { alloc.SetAllocator(nil) })

	buf := alloc.Current().AllocInt32(3)
	require.Len(t, buf, 3)
	require.Equal(t, 1, custom.allocs)
}

func TestSetAllocatorNilRestoresDefault(t *testing.T) {
	alloc.SetAllocator(&countingAllocator{})
	alloc.SetAllocator(nil)
	require.Len(t, alloc.Current().AllocBytes(4), 4)
}
