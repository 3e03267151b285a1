package xform3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a 3 component vector. It is used by value, only Normalize
// modifies its receiver.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Vector3FromVec3 converts a mathgl vector.
func Vector3FromVec3(v mgl64.Vec3) Vector3 {
	return Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Vec3 returns the vector as a mathgl vector.
func (v Vector3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Dot computes the dot product of two vectors.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product v × other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3) MagnitudeSquared() float64 {
	return v.Dot(v)
}

// Squared magnitudes inside this range are computed without overflow or
// loss of precision to subnormals.
const (
	minSafeSquare = 0x1p-1000
	maxSafeSquare = 0x1p1000
)

// Magnitude returns the euclidean length. Vectors whose squared length
// would overflow or underflow fall back to math.Hypot, so every finite
// vector has a finite length.
func (v Vector3) Magnitude() float64 {
	sq := v.MagnitudeSquared()
	if sq >= minSafeSquare && sq <= maxSafeSquare {
		return math.Sqrt(sq)
	}
	return math.Hypot(math.Hypot(v.X, v.Y), v.Z)
}

// Normalize scales the vector in place to unit length. The vector is left
// untouched and ErrDegenerateVector is returned if its length is zero or
// not finite.
func (v *Vector3) Normalize() error {
	length := v.Magnitude()
	if length == 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return fmt.Errorf("normalize %v: %w", *v, ErrDegenerateVector)
	}

	v.X /= length
	v.Y /= length
	v.Z /= length
	return nil
}

// Normalized returns a unit length copy of v.
func (v Vector3) Normalized() (Vector3, error) {
	err := v.Normalize()
	return v, err
}

// Subtract returns v - other.
func (v Vector3) Subtract(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// DistanceTo returns the euclidean distance between two points.
func (v Vector3) DistanceTo(other Vector3) float64 {
	return v.Subtract(other).Magnitude()
}

func (v Vector3) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}
