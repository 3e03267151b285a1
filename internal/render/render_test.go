package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/smasonuk/xform3d"
	"github.com/smasonuk/xform3d/internal/config"
	"github.com/smasonuk/xform3d/internal/scene"
	"github.com/smasonuk/xform3d/internal/wireframe"
	"github.com/stretchr/testify/require"
)

func TestColorFor(t *testing.T) {
	require.Equal(t, bodyColors["earth"], ColorFor("earth/body"))
	require.Equal(t, orbitColor, ColorFor("earth/orbit"))
	require.Equal(t, axesColor, ColorFor("sun/axes"))
	require.Equal(t, uint8(255), ColorFor("pluto/body").G)
}

func TestOrbitEye(t *testing.T) {
	cam := config.Default().Camera

	eye, err := OrbitEye(cam, 0)
	require.NoError(t, err)
	require.InDelta(t, 0, eye.X, 1e-9)
	require.InDelta(t, 12, eye.Y, 1e-9)
	require.InDelta(t, 20, eye.Z, 1e-9)

	eye, err = OrbitEye(cam, 90)
	require.NoError(t, err)
	require.InDelta(t, 20, eye.X, 1e-9)
	require.InDelta(t, 12, eye.Y, 1e-9)
	require.InDelta(t, 0, eye.Z, 1e-9)

	cam.Up = []float64{0, 0, 0}
	_, err = OrbitEye(cam, 10)
	require.ErrorIs(t, err, xform3d.ErrDegenerateVector)
}

func TestViewProjection(t *testing.T) {
	cam := config.Default().Camera

	vp, err := ViewProjection(cam, 1, 0)
	require.NoError(t, err)

	// the target is in the middle of the screen and inside the depth range
	center := vp.TransformPoint(xform3d.Vector3{})
	require.InDelta(t, 0, center.X, 1e-9)
	require.InDelta(t, 0, center.Y, 1e-9)
	require.Greater(t, center.Z, -1.0)
	require.Less(t, center.Z, 1.0)

	// world +x is to the right when looking from +z
	right := vp.TransformPoint(xform3d.NewVector3(6, 0, 0))
	require.InDelta(t, 0.5, right.X, 1e-9)

	// looking from +x, the same point lies on the view axis
	vp, err = ViewProjection(cam, 1, 90)
	require.NoError(t, err)
	right = vp.TransformPoint(xform3d.NewVector3(6, 0, 0))
	require.InDelta(t, 0, right.X, 1e-9)

	// a wide viewport shows more horizontally
	vp, err = ViewProjection(cam, 2, 0)
	require.NoError(t, err)
	right = vp.TransformPoint(xform3d.NewVector3(6, 0, 0))
	require.InDelta(t, 0.25, right.X, 1e-9)
}

func TestViewProjection_Degenerate(t *testing.T) {
	cam := config.Default().Camera
	cam.Eye = []float64{0, 0, 0}
	_, err := ViewProjection(cam, 1, 0)
	require.ErrorIs(t, err, xform3d.ErrDegenerateVector)

	cam = config.Default().Camera
	cam.Far = cam.Near
	_, err = ViewProjection(cam, 1, 0)
	require.ErrorIs(t, err, xform3d.ErrInvalidBounds)
}

func TestRenderer_Render(t *testing.T) {
	cam := config.Default().Camera
	viewProj, err := ViewProjection(cam, 4.0/3.0, 30)
	require.NoError(t, err)
	before := viewProj.Array()

	r := NewRenderer(wireframe.Viewport{Width: 800, Height: 600})
	lines, err := r.Render(scene.Orrery(scene.SolarSystem(), 42), viewProj)
	require.NoError(t, err)

	// four cubes, three orbit rings and the sun's axes
	require.Len(t, lines, 4*12+3*64+3)
	require.Equal(t, before, viewProj.Array())

	colors := map[string]int{}
	for _, line := range lines {
		for name, clr := range bodyColors {
			if line.Color == clr {
				colors[name]++
			}
		}
	}
	require.Equal(t, map[string]int{"sun": 12, "earth": 12, "moon": 12, "mars": 12}, colors)

	axesLines := 0
	for _, line := range lines {
		if line.Color == axesColor {
			axesLines++
		}
	}
	require.Equal(t, 3, axesLines)

	// the buffer is reused
	again, err := r.Render(scene.Orrery(scene.SolarSystem(), 43), viewProj)
	require.NoError(t, err)
	require.Len(t, again, len(lines))
}

func TestDump(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, cfg, scene.Orrery(scene.SolarSystem(), 0), 0))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "view projection (800x600, yaw 0)\n"))

	viewProj, err := ViewProjection(cfg.Camera, 800.0/600.0, 0)
	require.NoError(t, err)
	require.Contains(t, out, viewProj.String())

	for _, name := range []string{"sun/body", "sun/axes", "earth/orbit", "moon/body", "mars/body"} {
		require.Contains(t, out, name+" at vec3(")
	}
	require.Less(t, strings.Index(out, "earth/body"), strings.Index(out, "mars/body"))

	cfg.Camera.Target = cfg.Camera.Eye
	buf.Reset()
	err = Dump(&buf, cfg, scene.Orrery(scene.SolarSystem(), 0), 0)
	require.ErrorIs(t, err, xform3d.ErrDegenerateVector)
	require.Empty(t, buf.String())
}
