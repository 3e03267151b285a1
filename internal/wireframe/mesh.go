package wireframe

import (
	"math"

	"github.com/smasonuk/xform3d"
)

// Edge connects two points of a Mesh by index.
type Edge [2]int

// Mesh is a set of unique points and the edges between them.
type Mesh struct {
	Points     []xform3d.Vector3
	Edges      []Edge
	pointIndex map[xform3d.Vector3]int
}

func NewMesh() *Mesh {
	return &Mesh{
		pointIndex: make(map[xform3d.Vector3]int),
	}
}

// AddPoint returns the index of p, adding it if the mesh does not contain
// it yet.
func (m *Mesh) AddPoint(p xform3d.Vector3) int {
	if index, found := m.pointIndex[p]; found {
		return index
	}

	m.Points = append(m.Points, p)
	index := len(m.Points) - 1
	m.pointIndex[p] = index
	return index
}

// AddEdge adds a line between a and b.
func (m *Mesh) AddEdge(a, b xform3d.Vector3) {
	m.Edges = append(m.Edges, Edge{m.AddPoint(a), m.AddPoint(b)})
}

// NewCube returns the 12 edges of an axis aligned cube centered on the
// origin.
func NewCube(size float64) *Mesh {
	m := NewMesh()
	s := size / 2

	corner := func(i int) xform3d.Vector3 {
		v := xform3d.NewVector3(-s, -s, -s)
		if i&1 != 0 {
			v.X = s
		}
		if i&2 != 0 {
			v.Y = s
		}
		if i&4 != 0 {
			v.Z = s
		}
		return v
	}

	// connect corners that differ in exactly one bit
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				m.AddEdge(corner(i), corner(i|bit))
			}
		}
	}

	return m
}

// NewRing returns a circle of the given radius in the XZ plane.
func NewRing(radius float64, segments int) *Mesh {
	m := NewMesh()
	if segments < 3 {
		segments = 3
	}

	point := func(i int) xform3d.Vector3 {
		sin, cos := math.Sincos(2 * math.Pi * float64(i%segments) / float64(segments))
		return xform3d.NewVector3(radius*cos, 0, radius*sin)
	}

	for i := 0; i < segments; i++ {
		m.AddEdge(point(i), point(i+1))
	}

	return m
}

// NewAxes returns three lines along the positive x, y and z axis.
func NewAxes(length float64) *Mesh {
	m := NewMesh()
	origin := xform3d.Vector3{}
	m.AddEdge(origin, xform3d.NewVector3(length, 0, 0))
	m.AddEdge(origin, xform3d.NewVector3(0, length, 0))
	m.AddEdge(origin, xform3d.NewVector3(0, 0, length))
	return m
}
