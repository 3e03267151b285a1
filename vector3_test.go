package xform3d

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const float64EqualityThreshold = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func requireVecInDelta(t *testing.T, expected, actual Vector3) {
	t.Helper()
	require.InDelta(t, expected.X, actual.X, float64EqualityThreshold, "x of %v", actual)
	require.InDelta(t, expected.Y, actual.Y, float64EqualityThreshold, "y of %v", actual)
	require.InDelta(t, expected.Z, actual.Z, float64EqualityThreshold, "z of %v", actual)
}

func TestVector3_Dot(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, -5, 6)
	require.Equal(t, 12.0, a.Dot(b))
	require.Equal(t, a.Vec3().Dot(b.Vec3()), a.Dot(b))
}

func TestVector3_Cross(t *testing.T) {
	x := NewVector3(1, 0, 0)
	y := NewVector3(0, 1, 0)
	require.Equal(t, NewVector3(0, 0, 1), x.Cross(y))
	require.Equal(t, NewVector3(0, 0, -1), y.Cross(x))

	a := NewVector3(1, 2, 3)
	b := NewVector3(-2, 0.5, 4)
	require.Equal(t, Vector3FromVec3(a.Vec3().Cross(b.Vec3())), a.Cross(b))

	// operands stay untouched
	require.Equal(t, NewVector3(1, 2, 3), a)
	require.Equal(t, NewVector3(-2, 0.5, 4), b)
}

func TestVector3_CrossOrthogonal(t *testing.T) {
	testCases := []struct {
		name string
		a, b Vector3
	}{
		{"unit axes", NewVector3(1, 0, 0), NewVector3(0, 0, 1)},
		{"arbitrary", NewVector3(1, 2, 3), NewVector3(-4, 5, 0.25)},
		{"large values", NewVector3(1e3, -2e3, 7), NewVector3(3, 9e2, -1e3)},
		{"nearly parallel", NewVector3(1, 1, 1), NewVector3(1, 1, 1.001)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.a.Cross(tc.b)
			scale := tc.a.Magnitude() * tc.b.Magnitude() * c.Magnitude()
			require.InDelta(t, 0, tc.a.Dot(c)/scale, 1e-12)
			require.InDelta(t, 0, tc.b.Dot(c)/scale, 1e-12)
		})
	}
}

func TestVector3_Magnitude(t *testing.T) {
	v := NewVector3(2, 3, 6)
	require.Equal(t, 49.0, v.MagnitudeSquared())
	require.Equal(t, 7.0, v.Magnitude())
	require.True(t, almostEqual(v.Vec3().Len(), v.Magnitude()))

	require.Equal(t, 1e155, NewVector3(1e155, 0, 0).Magnitude())
	require.InDelta(t, 5, NewVector3(3e200, 4e200, 0).Magnitude()/1e200, 1e-12)
	require.InDelta(t, 5, NewVector3(0, 3e-200, 4e-200).Magnitude()*1e200, 1e-12)
	require.True(t, math.IsInf(NewVector3(math.MaxFloat64, math.MaxFloat64, 0).Magnitude(), 1))
}

func TestVector3_Normalize(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		v := NewVector3(3, -4, 12)
		require.NoError(t, v.Normalize())
		require.True(t, almostEqual(1, v.Magnitude()))
		requireVecInDelta(t, Vector3FromVec3(mgl64.Vec3{3, -4, 12}.Normalize()), v)
	})

	t.Run("idempotent on unit vectors", func(t *testing.T) {
		v := NewVector3(0, 0.6, 0.8)
		require.NoError(t, v.Normalize())
		requireVecInDelta(t, NewVector3(0, 0.6, 0.8), v)
	})

	t.Run("zero vector", func(t *testing.T) {
		v := NewVector3(0, 0, 0)
		err := v.Normalize()
		require.ErrorIs(t, err, ErrDegenerateVector)
		require.Equal(t, NewVector3(0, 0, 0), v)
	})

	t.Run("extreme magnitudes", func(t *testing.T) {
		testCases := []struct {
			name     string
			v        Vector3
			expected Vector3
		}{
			{"huge", NewVector3(1e200, 1e200, 0), NewVector3(math.Sqrt2/2, math.Sqrt2/2, 0)},
			{"tiny", NewVector3(1e-200, 0, 0), NewVector3(1, 0, 0)},
			{"subnormal", NewVector3(0, -math.SmallestNonzeroFloat64, 0), NewVector3(0, -1, 0)},
			{"mixed", NewVector3(3e-170, 0, -4e-170), NewVector3(0.6, 0, -0.8)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				v := tc.v
				require.NoError(t, v.Normalize())
				require.True(t, almostEqual(1, v.Magnitude()))
				requireVecInDelta(t, tc.expected, v)
			})
		}
	})

	t.Run("infinite component", func(t *testing.T) {
		v := NewVector3(math.Inf(1), 0, 0)
		require.True(t, errors.Is(v.Normalize(), ErrDegenerateVector))
	})
}

func TestVector3_Normalized(t *testing.T) {
	v := NewVector3(0, 5, 0)
	n, err := v.Normalized()
	require.NoError(t, err)
	require.Equal(t, NewVector3(0, 1, 0), n)
	require.Equal(t, NewVector3(0, 5, 0), v)

	_, err = Vector3{}.Normalized()
	require.ErrorIs(t, err, ErrDegenerateVector)
}

func TestVector3_Subtract(t *testing.T) {
	a := NewVector3(5, 7, 9)
	b := NewVector3(1, 2, 3)
	require.Equal(t, NewVector3(4, 5, 6), a.Subtract(b))
	require.Equal(t, NewVector3(5, 7, 9), a)
	require.Equal(t, 0.0, a.DistanceTo(a))
	require.True(t, almostEqual(math.Sqrt(77), a.DistanceTo(b)))
}
