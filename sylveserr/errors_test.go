package sylveserr_test

import (
	"testing"

	"github.com/katalvlaran/sylves/sylveserr"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Errorf(format string, args ...interface{}) {
	r.messages = append(r.messages, format)
}

func TestSetLoggerNilResetsDefault(t *testing.T) {
	rec := &recordingLogger{}
	sylveserr.SetLogger(rec)
	sylveserr.LogStructural("boom %d", 1)
	require.Len(t, rec.messages, 1)

	sylveserr.SetLogger(nil)
	// Should not panic after resetting to the default logger.
	require.NotPanics(t, func() { sylveserr.LogStructural("fine") })
}

func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		sylveserr.ErrNullPointer, sylveserr.ErrOutOfBounds, sylveserr.ErrOutOfMemory,
		sylveserr.ErrInvalidArgument, sylveserr.ErrNotImplemented, sylveserr.ErrCellNotInGrid,
		sylveserr.ErrNotSupported, sylveserr.ErrPathNotFound, sylveserr.ErrMath,
		sylveserr.ErrBufferTooSmall, sylveserr.ErrInfiniteGrid, sylveserr.ErrInvalidState,
		sylveserr.ErrUnbounded, sylveserr.ErrInvalidCell, sylveserr.ErrInvalidDir,
		sylveserr.ErrNoNeighbor, sylveserr.ErrInvalidCorner, sylveserr.ErrCellNotFound,
		sylveserr.ErrIO, sylveserr.ErrNotFound,
	}
	seen := make(map[string]bool, len(all))
	for _, e := range all {
		require.False(t, seen[e.Error()], "duplicate error text: %s", e.Error())
		seen[e.Error()] = true
	}
}
