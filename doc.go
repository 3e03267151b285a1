// Package xform3d provides 3D affine transform math: a Vector3 type, a
// column-major Matrix4x4 with chainable scale, translate, rotate, look-at
// and orthographic operators, and a MatrixStack to save and restore
// matrices while walking a transform hierarchy.
//
// Angles are given in degrees. Degenerate input (zero length vectors,
// empty view boxes, popping an empty stack) is reported as an error
// instead of producing NaN or infinite values.
package xform3d
