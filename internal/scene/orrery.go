package scene

import (
	"github.com/smasonuk/xform3d/internal/wireframe"
)

// Body is a celestial body of an orrery. Periods are given in days, a
// period of zero means no motion. Axes draws the body's local frame.
type Body struct {
	Name        string
	Size        float64
	OrbitRadius float64
	OrbitPeriod float64
	SpinPeriod  float64
	Axes        bool
	Moons       []Body
}

// SolarSystem returns a small, not to scale, sun-earth-moon system with mars.
func SolarSystem() Body {
	return Body{
		Name:       "sun",
		Size:       2,
		SpinPeriod: 25.4,
		Axes:       true,
		Moons: []Body{
			{
				Name:        "earth",
				Size:        1,
				OrbitRadius: 8,
				OrbitPeriod: 365.25,
				SpinPeriod:  1,
				Moons: []Body{
					{
						Name:        "moon",
						Size:        0.4,
						OrbitRadius: 2,
						OrbitPeriod: 27.3,
						SpinPeriod:  27.3,
					},
				},
			},
			{
				Name:        "mars",
				Size:        0.7,
				OrbitRadius: 13,
				OrbitPeriod: 687,
				SpinPeriod:  1.03,
			},
		},
	}
}

func turns(days, period float64) float64 {
	if period == 0 {
		return 0
	}
	return 360 * days / period
}

// Orrery builds the scene for the body at the given time. Every body gets
// a node named after it, holding its orbital frame, a "<name>/body" child
// with the spinning cube, and a "<name>/orbit" sibling drawing its path.
// Bodies with Axes set also get a "<name>/axes" node spinning with the cube.
func Orrery(body Body, days float64) *Node {
	frame := &Node{
		Name: body.Name,
		Ops: []Op{
			Spin(turns(days, body.OrbitPeriod), 0, 1, 0),
			Offset(body.OrbitRadius, 0, 0),
		},
	}

	bodyNode := &Node{
		Name: body.Name + "/body",
		Ops: []Op{
			Spin(turns(days, body.SpinPeriod), 0, 1, 0),
			Uniform(body.Size),
		},
		Mesh: cube,
	}
	if body.Axes {
		bodyNode.Children = append(bodyNode.Children, &Node{
			Name: body.Name + "/axes",
			Mesh: axes,
		})
	}
	frame.Children = append(frame.Children, bodyNode)

	var orbits []*Node
	for _, moon := range body.Moons {
		if moon.OrbitRadius > 0 {
			orbits = append(orbits, &Node{
				Name: moon.Name + "/orbit",
				Ops:  []Op{Uniform(moon.OrbitRadius)},
				Mesh: ring,
			})
		}
		frame.Children = append(frame.Children, Orrery(moon, days))
	}

	frame.Children = append(frame.Children, orbits...)
	return frame
}

var (
	cube = wireframe.NewCube(1)
	ring = wireframe.NewRing(1, 64)
	axes = wireframe.NewAxes(1.5)
)
