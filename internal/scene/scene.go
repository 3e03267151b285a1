// Package scene walks a hierarchy of transform nodes, composing every
// node's local transform onto its parent's with a matrix stack.
package scene

import (
	"fmt"

	"github.com/smasonuk/xform3d"
	"github.com/smasonuk/xform3d/internal/wireframe"
)

// Op is a local transform operator applied to the running matrix.
type Op func(m *xform3d.Matrix4x4) error

// Spin rotates by the given angle in degrees around the axis.
func Spin(degrees, x, y, z float64) Op {
	return func(m *xform3d.Matrix4x4) error {
		_, err := m.Rotate(degrees, x, y, z)
		return err
	}
}

func Offset(x, y, z float64) Op {
	return func(m *xform3d.Matrix4x4) error {
		m.Translate(x, y, z)
		return nil
	}
}

func Uniform(s float64) Op {
	return func(m *xform3d.Matrix4x4) error {
		m.Scale(s, s, s)
		return nil
	}
}

// Node is a transform in the hierarchy. Its Ops are applied in order, in
// the frame of its parent. Mesh is optional.
type Node struct {
	Name     string
	Ops      []Op
	Mesh     *wireframe.Mesh
	Children []*Node
}

// VisitFunc receives each node with its composed world matrix. The matrix
// is only valid during the call.
type VisitFunc func(node *Node, world *xform3d.Matrix4x4) error

// Walker reuses its matrix stack between traversals.
type Walker struct {
	stack *xform3d.MatrixStack
}

func NewWalker() *Walker {
	return &Walker{stack: xform3d.NewMatrixStack()}
}

// Walk visits root and its descendants depth first. The matrix m holds
// the parent transform of root and is restored before Walk returns, also
// when an error aborts the traversal.
func (w *Walker) Walk(root *Node, m *xform3d.Matrix4x4, visit VisitFunc) error {
	return w.walk(root, m, visit)
}

func (w *Walker) walk(node *Node, m *xform3d.Matrix4x4, visit VisitFunc) (err error) {
	w.stack.Push(m)
	defer func() {
		if popErr := w.stack.Pop(m); popErr != nil && err == nil {
			err = popErr
		}
	}()

	for _, op := range node.Ops {
		if err := op(m); err != nil {
			return fmt.Errorf("node %q: %w", node.Name, err)
		}
	}

	if err := visit(node, m); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := w.walk(child, m, visit); err != nil {
			return err
		}
	}

	return nil
}

// Walk is a shortcut for a single traversal with a fresh Walker.
func Walk(root *Node, m *xform3d.Matrix4x4, visit VisitFunc) error {
	return NewWalker().Walk(root, m, visit)
}
