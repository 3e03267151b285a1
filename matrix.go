package xform3d

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix4x4 is a 4x4 matrix stored flattened in column-major order:
// element (row, col) lives at index row + 4*col. This is the layout
// expected by OpenGL style APIs and by mgl64.Mat4.
//
// The composition methods (Scale, Translate, Rotate, LookAtTransform,
// Ortho) build a transform X and right-concatenate it, m = m * X, so the
// transform applied last acts first on an object in its local frame.
type Matrix4x4 struct {
	array [16]float64
}

// NewMatrix4x4 returns the identity matrix.
func NewMatrix4x4() *Matrix4x4 {
	m := &Matrix4x4{}
	return m.Identity()
}

// NewMatrix4x4FromMat4 copies a mathgl matrix. Both types share the
// column-major layout, so no reordering takes place.
func NewMatrix4x4FromMat4(m mgl64.Mat4) *Matrix4x4 {
	return &Matrix4x4{array: m}
}

// Index returns the storage offset of (row, col).
func Index(row, col int) (int, error) {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		return 0, fmt.Errorf("element (%d, %d): %w", row, col, ErrIndexOutOfRange)
	}
	return row + 4*col, nil
}

func (m *Matrix4x4) Elem(row, col int) (float64, error) {
	idx, err := Index(row, col)
	if err != nil {
		return 0, err
	}
	return m.array[idx], nil
}

func (m *Matrix4x4) SetElem(row, col int, val float64) error {
	idx, err := Index(row, col)
	if err != nil {
		return err
	}
	m.array[idx] = val
	return nil
}

// at and set skip the bounds check, callers only use constant indices.
func (m *Matrix4x4) at(row, col int) float64 {
	return m.array[row+4*col]
}

func (m *Matrix4x4) set(row, col int, val float64) {
	m.array[row+4*col] = val
}

// Copy overwrites m with the values of other and returns m.
func (m *Matrix4x4) Copy(other *Matrix4x4) *Matrix4x4 {
	m.array = other.array
	return m
}

// Clone returns an independent copy of m.
func (m *Matrix4x4) Clone() *Matrix4x4 {
	return &Matrix4x4{array: m.array}
}

// Identity resets m to the identity matrix.
func (m *Matrix4x4) Identity() *Matrix4x4 {
	m.array = [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return m
}

// Set4x4 sets all elements. The arguments are given in the usual row-major
// reading order, a01 being row 0 column 1.
func (m *Matrix4x4) Set4x4(
	a00, a01, a02, a03,
	a10, a11, a12, a13,
	a20, a21, a22, a23,
	a30, a31, a32, a33 float64,
) {
	m.set(0, 0, a00)
	m.set(0, 1, a01)
	m.set(0, 2, a02)
	m.set(0, 3, a03)

	m.set(1, 0, a10)
	m.set(1, 1, a11)
	m.set(1, 2, a12)
	m.set(1, 3, a13)

	m.set(2, 0, a20)
	m.set(2, 1, a21)
	m.set(2, 2, a22)
	m.set(2, 3, a23)

	m.set(3, 0, a30)
	m.set(3, 1, a31)
	m.set(3, 2, a32)
	m.set(3, 3, a33)
}

// Multiply returns the product m * b as a new matrix.
func (m *Matrix4x4) Multiply(b *Matrix4x4) *Matrix4x4 {
	ab := &Matrix4x4{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var s float64
			for i := 0; i < 4; i++ {
				s += m.at(r, i) * b.at(i, c)
			}
			ab.set(r, c, s)
		}
	}
	return ab
}

// Concat sets m = m * b and returns m.
func (m *Matrix4x4) Concat(b *Matrix4x4) *Matrix4x4 {
	m.array = m.Multiply(b).array
	return m
}

func (m *Matrix4x4) Scale(sx, sy, sz float64) *Matrix4x4 {
	s := &Matrix4x4{}
	s.Set4x4(
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	)
	return m.Concat(s)
}

func (m *Matrix4x4) Translate(tx, ty, tz float64) *Matrix4x4 {
	t := &Matrix4x4{}
	t.Set4x4(
		1, 0, 0, tx,
		0, 1, 0, ty,
		0, 0, 1, tz,
		0, 0, 0, 1,
	)
	return m.Concat(t)
}

// Rotate concatenates a rotation of angleDegrees around the axis
// (x, y, z). The axis does not need to be of unit length, but must not be
// zero, in which case m is left unchanged.
//
//	x²(1-c)+c   xy(1-c)-zs  xz(1-c)+ys  0
//	yx(1-c)+zs  y²(1-c)+c   yz(1-c)-xs  0
//	xz(1-c)-ys  yz(1-c)+xs  z²(1-c)+c   0
//	0           0           0           1
func (m *Matrix4x4) Rotate(angleDegrees, x, y, z float64) (*Matrix4x4, error) {
	axis := NewVector3(x, y, z)
	if err := axis.Normalize(); err != nil {
		return m, fmt.Errorf("rotation axis: %w", err)
	}
	x, y, z = axis.X, axis.Y, axis.Z

	theta := angleDegrees * math.Pi / 180
	s, c := math.Sincos(theta)
	k := 1 - c

	r := &Matrix4x4{}
	r.Set4x4(
		x*x*k+c, x*y*k-z*s, x*z*k+y*s, 0,
		y*x*k+z*s, y*y*k+c, y*z*k-x*s, 0,
		x*z*k-y*s, y*z*k+x*s, z*z*k+c, 0,
		0, 0, 0, 1,
	)
	return m.Concat(r), nil
}

// LookAtTransform concatenates a camera transform for an eye looking at
// a target. The basis is
//
//	Z = normalize(eye - target)
//	X = normalize(up × Z)
//	Y = Z × X
//
// with rows X, Y and -Z, followed by a translation by -eye. The matrix is
// left unchanged if eye equals target or up is parallel to the view axis.
func (m *Matrix4x4) LookAtTransform(
	eyeX, eyeY, eyeZ,
	targetX, targetY, targetZ,
	upX, upY, upZ float64,
) (*Matrix4x4, error) {
	eye := NewVector3(eyeX, eyeY, eyeZ)
	target := NewVector3(targetX, targetY, targetZ)
	up := NewVector3(upX, upY, upZ)

	zAxis := eye.Subtract(target)
	if err := zAxis.Normalize(); err != nil {
		return m, fmt.Errorf("look-at view axis: %w", err)
	}

	xAxis := up.Cross(zAxis)
	if err := xAxis.Normalize(); err != nil {
		return m, fmt.Errorf("look-at up vector parallel to view axis: %w", err)
	}

	yAxis := zAxis.Cross(xAxis)

	r := &Matrix4x4{}
	r.Set4x4(
		xAxis.X, xAxis.Y, xAxis.Z, 0,
		yAxis.X, yAxis.Y, yAxis.Z, 0,
		-zAxis.X, -zAxis.Y, -zAxis.Z, 0,
		0, 0, 0, 1,
	)
	r.Translate(-eyeX, -eyeY, -eyeZ)

	return m.Concat(r), nil
}

// Ortho concatenates an orthographic projection mapping the box
// [left,right]x[bottom,top]x[-near,-far] onto the cube [-1,1]³.
func (m *Matrix4x4) Ortho(left, right, bottom, top, near, far float64) (*Matrix4x4, error) {
	if !validExtent(right-left) || !validExtent(top-bottom) || !validExtent(far-near) {
		return m, fmt.Errorf(
			"ortho l=%v r=%v b=%v t=%v n=%v f=%v: %w",
			left, right, bottom, top, near, far, ErrInvalidBounds,
		)
	}

	o := &Matrix4x4{}
	o.Set4x4(
		2/(right-left), 0, 0, -(right+left)/(right-left),
		0, 2/(top-bottom), 0, -(top+bottom)/(top-bottom),
		0, 0, -2/(far-near), -(far+near)/(far-near),
		0, 0, 0, 1,
	)
	return m.Concat(o), nil
}

// validExtent rejects empty, NaN and infinite box extents.
func validExtent(d float64) bool {
	return d != 0 && !math.IsNaN(d) && !math.IsInf(d, 0)
}

// Array returns the 16 elements in column-major order.
func (m *Matrix4x4) Array() [16]float64 {
	return m.array
}

// Float32 returns the elements in column-major order, converted for
// graphics APIs taking single precision uniforms.
func (m *Matrix4x4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m.array {
		out[i] = float32(v)
	}
	return out
}

// Mat4 returns m as a mathgl matrix.
func (m *Matrix4x4) Mat4() mgl64.Mat4 {
	return m.array
}

// TransformPoint applies m to the point v (with w = 1) and divides the
// result by w.
func (m *Matrix4x4) TransformPoint(v Vector3) Vector3 {
	return Vector3FromVec3(mgl64.TransformCoordinate(v.Vec3(), m.Mat4()))
}

// TransformVector applies the upper 3x3 part of m to v. Translation is
// ignored, making it suitable for direction vectors.
func (m *Matrix4x4) TransformVector(v Vector3) Vector3 {
	return Vector3{
		X: m.at(0, 0)*v.X + m.at(0, 1)*v.Y + m.at(0, 2)*v.Z,
		Y: m.at(1, 0)*v.X + m.at(1, 1)*v.Y + m.at(1, 2)*v.Z,
		Z: m.at(2, 0)*v.X + m.at(2, 1)*v.Y + m.at(2, 2)*v.Z,
	}
}

// ApproxEqual reports whether all elements differ by at most eps.
func (m *Matrix4x4) ApproxEqual(other *Matrix4x4, eps float64) bool {
	for i := range m.array {
		if math.Abs(m.array[i]-other.array[i]) > eps {
			return false
		}
	}
	return true
}

// String prints the matrix row by row.
func (m *Matrix4x4) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteString("\n")
		}
		for c := 0; c < 4; c++ {
			if c > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", m.at(r, c)))
		}
	}
	return sb.String()
}
