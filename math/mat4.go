package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mat4 is a 4x4 matrix applied to row vectors: p' = p·M. Translation lives in
// row 3 and a.Mul(b) applies a first, then b. The memory layout matches the
// column-major mgl32.Mat4, so conversions are a straight copy.
type Mat4 [4][4]float32

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4Zero() Mat4 {
	return Mat4{}
}

// Mat4FromMgl converts a column-major mgl32 matrix.
func Mat4FromMgl(g mgl32.Mat4) Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = g[i*4+j]
		}
	}
	return m
}

// ToMgl converts to a column-major mgl32 matrix acting on column vectors.
func (m Mat4) ToMgl() mgl32.Mat4 {
	var g mgl32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			g[i*4+j] = m[i][j]
		}
	}
	return g
}

func (m Mat4) Mul(other Mat4) Mat4 {
	result := Mat4Zero()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	return v.MulMat(m)
}

// MulVec3 transforms a point, dividing by the resulting w.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return m.MulVec(v.ToVec4(1.0)).ToVec3DivW()
}

// TransformPoint transforms a position (w = 1). A projective result is divided by w.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.MulVec3(p)
}

// TransformDirection transforms a direction (w = 0); translation is ignored.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		X: d.X*m[0][0] + d.Y*m[1][0] + d.Z*m[2][0],
		Y: d.X*m[0][1] + d.Y*m[1][1] + d.Z*m[2][1],
		Z: d.X*m[0][2] + d.Y*m[1][2] + d.Z*m[2][2],
	}
}

// TransformNormal transforms a surface normal by the inverse transpose of m and
// renormalizes it, so non-uniform scale keeps normals perpendicular to surfaces.
func (m Mat4) TransformNormal(n Vec3) Vec3 {
	return m.Inverse().Transpose().TransformDirection(n).Normalize()
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

// Translation returns the translation row.
func (m Mat4) Translation() Vec3 {
	return Vec3{X: m[3][0], Y: m[3][1], Z: m[3][2]}
}

// Axis returns basis row i (0 = X, 1 = Y, 2 = Z) including any scale.
func (m Mat4) Axis(i int) Vec3 {
	return Vec3{X: m[i][0], Y: m[i][1], Z: m[i][2]}
}

func (m Mat4) ApproxEqual(other Mat4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !ApproxEqual(m[i][j], other[i][j]) {
				return false
			}
		}
	}
	return true
}

func Mat4Translation(translation Vec3) Mat4 {
	m := Mat4Identity()
	m[3][0] = translation.X
	m[3][1] = translation.Y
	m[3][2] = translation.Z
	return m
}

func Mat4Scale(scale Vec3) Mat4 {
	m := Mat4Identity()
	m[0][0] = scale.X
	m[1][1] = scale.Y
	m[2][2] = scale.Z
	return m
}

func Mat4RotationX(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationY(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationZ(angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func Mat4RotationAxis(axis Vec3, angle float32) Mat4 {
	return QuaternionFromAxisAngle(axis, angle).ToMat4()
}

// Mat4Perspective builds an OpenGL-style projection mapping view-space depth
// [-near, -far] to NDC [-1, 1].
func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	return Mat4FromMgl(mgl32.Perspective(fovY, aspect, near, far))
}

func Mat4Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4FromMgl(mgl32.Ortho(left, right, bottom, top, near, far))
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	return Mat4FromMgl(mgl32.LookAtV(
		mgl32.Vec3{eye.X, eye.Y, eye.Z},
		mgl32.Vec3{target.X, target.Y, target.Z},
		mgl32.Vec3{up.X, up.Y, up.Z},
	))
}

// Mat4TRS composes scale, then rotation, then translation.
func Mat4TRS(translation Vec3, rotation Quaternion, scale Vec3) Mat4 {
	return Mat4Scale(scale).Mul(rotation.ToMat4()).Mul(Mat4Translation(translation))
}

func (m Mat4) Determinant() float32 {
	return m.ToMgl().Det()
}

// InverseOK returns the inverse and true, or the identity and false when m is singular.
func (m Mat4) InverseOK() (Mat4, bool) {
	g := m.ToMgl()
	if g.Det() == 0 {
		return Mat4Identity(), false
	}
	return Mat4FromMgl(g.Inv()), true
}

// Inverse returns the inverse of m, or the identity when m is singular.
func (m Mat4) Inverse() Mat4 {
	inv, _ := m.InverseOK()
	return inv
}
