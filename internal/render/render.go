// Package render turns an orrery scene into colored screen space lines.
package render

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"strings"

	"github.com/smasonuk/xform3d"
	"github.com/smasonuk/xform3d/internal/config"
	"github.com/smasonuk/xform3d/internal/scene"
	"github.com/smasonuk/xform3d/internal/wireframe"
)

// Line is a projected edge with its color.
type Line struct {
	wireframe.Segment
	Color color.RGBA
}

var (
	orbitColor = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	axesColor  = color.RGBA{R: 120, G: 220, B: 120, A: 255}
	bodyColors = map[string]color.RGBA{
		"sun":   {R: 255, G: 200, B: 0, A: 255},
		"earth": {R: 60, G: 140, B: 255, A: 255},
		"moon":  {R: 190, G: 190, B: 190, A: 255},
		"mars":  {R: 230, G: 80, B: 40, A: 255},
	}
)

// ColorFor picks the color of a scene node by its name.
func ColorFor(name string) color.RGBA {
	body, part, _ := strings.Cut(name, "/")
	switch part {
	case "orbit":
		return orbitColor
	case "axes":
		return axesColor
	}
	if clr, ok := bodyColors[body]; ok {
		return clr
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// OrbitEye rotates the eye around the target by yaw degrees about the up
// axis.
func OrbitEye(cam config.CameraConfig, yaw float64) (xform3d.Vector3, error) {
	eye := xform3d.NewVector3(cam.Eye[0], cam.Eye[1], cam.Eye[2])
	tx, ty, tz := cam.Target[0], cam.Target[1], cam.Target[2]

	m := xform3d.NewMatrix4x4().Translate(tx, ty, tz)
	if _, err := m.Rotate(yaw, cam.Up[0], cam.Up[1], cam.Up[2]); err != nil {
		return eye, fmt.Errorf("orbit camera: %w", err)
	}
	m.Translate(-tx, -ty, -tz)

	return m.TransformPoint(eye), nil
}

// ViewProjection returns Ortho * LookAt for the camera orbited by yaw
// degrees. aspect is width / height of the viewport.
func ViewProjection(cam config.CameraConfig, aspect, yaw float64) (*xform3d.Matrix4x4, error) {
	eye, err := OrbitEye(cam, yaw)
	if err != nil {
		return nil, err
	}

	h := cam.HalfExtent
	w := h * aspect

	// LookAtTransform places the target at positive z, so the depth
	// range is mirrored for Ortho.
	m, err := xform3d.NewMatrix4x4().Ortho(-w, w, -h, h, -cam.Near, -cam.Far)
	if err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}

	_, err = m.LookAtTransform(
		eye.X, eye.Y, eye.Z,
		cam.Target[0], cam.Target[1], cam.Target[2],
		cam.Up[0], cam.Up[1], cam.Up[2],
	)
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}

	return m, nil
}

// Renderer collects the lines of a scene. It keeps its buffers between
// frames, the returned slice is valid until the next call to Render.
type Renderer struct {
	Viewport wireframe.Viewport

	walker *scene.Walker
	lines  []Line
}

func NewRenderer(vp wireframe.Viewport) *Renderer {
	return &Renderer{
		Viewport: vp,
		walker:   scene.NewWalker(),
	}
}

// Render walks root starting at viewProj and projects every mesh.
func (r *Renderer) Render(root *scene.Node, viewProj *xform3d.Matrix4x4) ([]Line, error) {
	r.lines = r.lines[:0]

	m := viewProj.Clone()
	err := r.walker.Walk(root, m, func(node *scene.Node, world *xform3d.Matrix4x4) error {
		if node.Mesh == nil {
			return nil
		}

		clr := ColorFor(node.Name)
		for _, seg := range wireframe.Project(node.Mesh, world, r.Viewport) {
			r.lines = append(r.lines, Line{Segment: seg, Color: clr})
		}
		return nil
	})

	return r.lines, err
}

// Dump writes the view-projection matrix of the configured camera followed
// by the world matrix and origin of every node of root, sorted by name.
func Dump(w io.Writer, cfg *config.Config, root *scene.Node, yaw float64) error {
	aspect := float64(cfg.Window.Width) / float64(cfg.Window.Height)
	viewProj, err := ViewProjection(cfg.Camera, aspect, yaw)
	if err != nil {
		return err
	}

	worlds := map[string]*xform3d.Matrix4x4{}
	err = scene.Walk(root, xform3d.NewMatrix4x4(), func(node *scene.Node, world *xform3d.Matrix4x4) error {
		worlds[node.Name] = world.Clone()
		return nil
	})
	if err != nil {
		return err
	}

	names := make([]string, 0, len(worlds))
	for name := range worlds {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintf(w, "view projection (%dx%d, yaw %v)\n%v\n\n",
		cfg.Window.Width, cfg.Window.Height, yaw, viewProj); err != nil {
		return err
	}
	for _, name := range names {
		world := worlds[name]
		if _, err := fmt.Fprintf(w, "%s at %v\n%v\n\n", name, world.TransformPoint(xform3d.Vector3{}), world); err != nil {
			return err
		}
	}
	return nil
}
