package xform3d

import "fmt"

// MatrixStack saves and restores matrices while traversing a transform
// hierarchy. Entries are copies, later changes to a pushed matrix do not
// affect the stack.
type MatrixStack struct {
	stack []Matrix4x4
}

func NewMatrixStack() *MatrixStack {
	return &MatrixStack{
		stack: make([]Matrix4x4, 0, 16),
	}
}

// Push saves a copy of m.
func (s *MatrixStack) Push(m *Matrix4x4) {
	s.stack = append(s.stack, *m)
}

// Pop removes the most recently pushed matrix and copies it into m.
func (s *MatrixStack) Pop(m *Matrix4x4) error {
	if len(s.stack) == 0 {
		return fmt.Errorf("pop: %w", ErrEmptyStack)
	}

	top := len(s.stack) - 1
	m.Copy(&s.stack[top])
	s.stack = s.stack[:top]
	return nil
}

// Peek copies the most recently pushed matrix into m without removing it.
func (s *MatrixStack) Peek(m *Matrix4x4) error {
	if len(s.stack) == 0 {
		return fmt.Errorf("peek: %w", ErrEmptyStack)
	}

	m.Copy(&s.stack[len(s.stack)-1])
	return nil
}

func (s *MatrixStack) Len() int {
	return len(s.stack)
}
