package vecmath_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sylves/internal/vecmath"
	"github.com/stretchr/testify/require"
)

func TestIdentityMulPointIsNoop(t *testing.T) {
	v := vecmath.Vector3{X: 1, Y: 2, Z: 3}
	got := vecmath.Identity4().MulPoint(v)
	require.InDelta(t, v.X, got.X, 1e-9)
	require.InDelta(t, v.Y, got.Y, 1e-9)
	require.InDelta(t, v.Z, got.Z, 1e-9)
}

func TestRotationZQuarterTurn(t *testing.T) {
	v := vecmath.Vector3{X: 1, Y: 0, Z: 0}
	got := vecmath.RotationZ(math.Pi / 2).MulPoint(v)
	require.InDelta(t, 0.0, got.X, 1e-9)
	require.InDelta(t, 1.0, got.Y, 1e-9)
}

func TestTranslationComposesWithRotation(t *testing.T) {
	trs := vecmath.TRS(vecmath.Vector3{X: 5}, math.Pi/2, vecmath.Vector3{X: 1, Y: 1, Z: 1})
	got := trs.MulPoint(vecmath.Vector3{X: 1})
	require.InDelta(t, 5.0, got.X, 1e-9)
	require.InDelta(t, 1.0, got.Y, 1e-9)
}

func TestCrossAndDot(t *testing.T) {
	x := vecmath.Vector3{X: 1}
	y := vecmath.Vector3{Y: 1}
	require.Equal(t, vecmath.Vector3{Z: 1}, x.Cross(y))
	require.InDelta(t, 0.0, x.Dot(y), 1e-9)
}
