package cell_test

import (
	"testing"

	"github.com/katalvlaran/sylves/cell"
	"github.com/stretchr/testify/require"
)

func allCellTypes() map[string]cell.CellType {
	return map[string]cell.CellType{
		"Square": cell.NewSquare(),
		"HexFT":  cell.NewHexFT(),
		"HexPT":  cell.NewHexPT(),
		"TriFT":  cell.NewTriFT(),
		"TriFS":  cell.NewTriFS(),
		"Cube":   cell.NewCube(),
	}
}

// TestSquareBasics pins the literal scenario from spec §8.2.
func TestSquareBasics(t *testing.T) {
	sq := cell.NewSquare()
	require.Equal(t, 4, sq.DirCount())
	require.Equal(t, 4, sq.CornerCount())
	require.Equal(t, 2, sq.Dimension())

	require.Equal(t, cell.CellDir(1), sq.RotateDir(0, 1))
	require.Equal(t, cell.CellDir(2), sq.InvertDir(0))
	require.Equal(t, cell.CellRotation(2), sq.MultiplyRotations(1, 1))
	require.Equal(t, cell.CellRotation(0), sq.MultiplyRotations(3, 1))
	require.Equal(t, cell.CellRotation(3), sq.InvertRotation(1))
}

func TestGroupLawsHoldForEveryCellType(t *testing.T) {
	for name, ct := range allCellTypes() {
		ct := ct
		t.Run(name, func(t *testing.T) {
			for _, a := range ct.EnumerateRotations() {
				inv := ct.InvertRotation(a)
				require.Equal(t, ct.IdentityRotation(), ct.MultiplyRotations(a, inv),
					"multiply(a, invert(a)) must be identity for %v", a)

				for _, d := range ct.EnumerateDirs() {
					require.Equal(t, d, ct.InvertDir(ct.InvertDir(d)),
						"invert_dir must be an involution")
					require.Equal(t, d, ct.RotateDir(d, ct.IdentityRotation()),
						"rotate_dir(d, identity) must equal d")
				}
			}

			for _, a := range ct.EnumerateRotations() {
				for _, b := range ct.EnumerateRotations() {
					ab := ct.MultiplyRotations(a, b)
					for _, d := range ct.EnumerateDirs() {
						lhs := ct.RotateDir(d, ab)
						rhs := ct.RotateDir(ct.RotateDir(d, b), a)
						require.Equal(t, rhs, lhs,
							"rotate_dir(d, multiply(a,b)) must equal rotate_dir(rotate_dir(d,b),a)")
					}
				}
			}
		})
	}
}

func TestConnectionInvertInvolution(t *testing.T) {
	for name, ct := range allCellTypes() {
		ct := ct
		t.Run(name, func(t *testing.T) {
			for _, r := range ct.EnumerateRotations() {
				_, conn := ct.GetConnection(0, r)
				twice := conn.Invert(ct).Invert(ct)
				require.Equal(t, conn, twice, "invert(invert(c)) must equal c")
			}
		})
	}
}

func TestGetConnectionAndTryGetRotationRoundTrip(t *testing.T) {
	for name, ct := range allCellTypes() {
		ct := ct
		t.Run(name, func(t *testing.T) {
			for _, from := range ct.EnumerateDirs() {
				for _, r := range ct.EnumerateRotations() {
					to, conn := ct.GetConnection(from, r)
					got, ok := ct.TryGetRotation(from, to, conn)
					require.True(t, ok)
					require.Equal(t, to, ct.RotateDir(from, got))
				}
			}
		})
	}
}

func TestSquareCornerPositions(t *testing.T) {
	sq := cell.NewSquare()
	seen := map[cell.CellCorner]bool{}
	for _, c := range sq.EnumerateCorners() {
		p := sq.CornerPosition(c)
		require.InDelta(t, 0.5, abs(p.X), 1e-9)
		require.InDelta(t, 0.5, abs(p.Y), 1e-9)
		seen[c] = true
	}
	require.Len(t, seen, 4)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
