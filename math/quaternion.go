package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Quaternion struct {
	X, Y, Z, W float32
}

func QuaternionIdentity() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

func QuaternionFromAxisAngle(axis Vec3, angle float32) Quaternion {
	s := float32(math.Sin(float64(angle) / 2))
	c := float32(math.Cos(float64(angle) / 2))
	axis = axis.Normalize()
	return Quaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// QuaternionFromTo returns the shortest rotation taking direction from onto
// direction to. Opposite directions rotate half a turn about a perpendicular axis.
func QuaternionFromTo(from, to Vec3) Quaternion {
	from = from.Normalize()
	to = to.Normalize()
	d := from.Dot(to)
	if d >= 1-Epsilon {
		return QuaternionIdentity()
	}
	if d <= -1+Epsilon {
		return QuaternionFromAxisAngle(from.Perpendicular(), math.Pi)
	}
	c := from.Cross(to)
	return Quaternion{X: c.X, Y: c.Y, Z: c.Z, W: 1 + d}.Normalize()
}

// QuaternionFromMat4 extracts the rotation of the upper 3x3 block of m, which
// must be orthonormal.
func QuaternionFromMat4(m Mat4) Quaternion {
	g := mgl32.Mat4ToQuat(m.ToMgl())
	return Quaternion{X: g.V[0], Y: g.V[1], Z: g.V[2], W: g.W}
}

func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

func (q Quaternion) Normalize() Quaternion {
	length := Sqrt(q.Dot(q))
	if length == 0 {
		return q
	}
	inv := 1 / length
	return Quaternion{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

func (q Quaternion) Inverse() Quaternion {
	lengthSqr := q.Dot(q)
	if lengthSqr == 0 {
		return q
	}
	c := q.Conjugate()
	inv := 1 / lengthSqr
	return Quaternion{X: c.X * inv, Y: c.Y * inv, Z: c.Z * inv, W: c.W * inv}
}

func (q Quaternion) RotateVector(v Vec3) Vec3 {
	qVec := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := qVec.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(qVec.Cross(t))
}

// ToMat4 returns the rotation matrix for row vectors.
func (q Quaternion) ToMat4() Mat4 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Mat4{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0},
		{0, 0, 0, 1},
	}
}

func (q Quaternion) Slerp(other Quaternion, t float32) Quaternion {
	dot := q.Dot(other)
	if dot < 0 {
		dot = -dot
		other = Quaternion{-other.X, -other.Y, -other.Z, -other.W}
	}
	if dot > 0.9995 {
		return Quaternion{
			X: Lerp(q.X, other.X, t),
			Y: Lerp(q.Y, other.Y, t),
			Z: Lerp(q.Z, other.Z, t),
			W: Lerp(q.W, other.W, t),
		}.Normalize()
	}

	theta0 := math.Acos(float64(dot))
	theta := theta0 * float64(t)
	sinTheta0 := math.Sin(theta0)

	s0 := float32(math.Cos(theta) - float64(dot)*math.Sin(theta)/sinTheta0)
	s1 := float32(math.Sin(theta) / sinTheta0)
	return Quaternion{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}
}
