package wireframe

import (
	"github.com/smasonuk/xform3d"
)

// Viewport is the size of the target surface in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// ToScreen maps normalized device coordinates in [-1,1] to pixels. The y
// axis is flipped, screen y grows downwards.
func (vp Viewport) ToScreen(ndc xform3d.Vector3) (float32, float32) {
	x := (ndc.X + 1) / 2 * vp.Width
	y := (1 - ndc.Y) / 2 * vp.Height
	return float32(x), float32(y)
}

// Segment is a projected edge in screen space.
type Segment struct {
	X0, Y0 float32
	X1, Y1 float32
}

func insideDepth(p xform3d.Vector3) bool {
	return p.Z >= -1 && p.Z <= 1
}

// Project transforms every point of the mesh with mvp and returns the
// edges with both ends inside the clip volume's depth range.
func Project(mesh *Mesh, mvp *xform3d.Matrix4x4, vp Viewport) []Segment {
	transformed := make([]xform3d.Vector3, len(mesh.Points))
	for i, p := range mesh.Points {
		transformed[i] = mvp.TransformPoint(p)
	}

	segments := make([]Segment, 0, len(mesh.Edges))
	for _, edge := range mesh.Edges {
		a, b := transformed[edge[0]], transformed[edge[1]]
		if !insideDepth(a) || !insideDepth(b) {
			continue
		}

		var seg Segment
		seg.X0, seg.Y0 = vp.ToScreen(a)
		seg.X1, seg.Y1 = vp.ToScreen(b)
		segments = append(segments, seg)
	}

	return segments
}
