// Package camera builds view volumes and pick rays from a perspective camera.
package camera

import (
	"freak-engine/geom"
	"freak-engine/math"
)

// Camera is a perspective camera. In its local frame it looks down -Z with +Y
// up. FOV is the vertical field of view in radians.
type Camera struct {
	Position    math.Vec3
	Rotation    math.Quaternion
	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	cache matrixCache
}

func NewCamera(fov, aspectRatio, near, far float32) Camera {
	return Camera{
		Position:    math.Vec3Zero,
		Rotation:    math.QuaternionIdentity(),
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   near,
		FarPlane:    far,
	}
}

func (c *Camera) UpdateAspectRatio(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

func (c *Camera) Translate(delta math.Vec3) {
	c.Position = c.Position.Add(delta)
}

func (c *Camera) Rotate(delta math.Quaternion) {
	c.Rotation = delta.Mul(c.Rotation).Normalize()
}

// LookAt turns the camera toward target keeping up as close to +Y of the view
// as possible. Nothing changes when target is the camera position.
func (c *Camera) LookAt(target, up math.Vec3) {
	forward := target.Sub(c.Position).Normalize()
	if forward.IsZero() {
		return
	}
	right := forward.Cross(up).Normalize()
	if right.IsZero() {
		right = forward.Perpendicular().Normalize()
	}
	trueUp := right.Cross(forward)

	// Rows are the images of the local axes; local -Z maps to forward.
	basis := math.Mat4{
		{right.X, right.Y, right.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	c.Rotation = math.QuaternionFromMat4(basis).Normalize()
}

func (c Camera) Forward() math.Vec3 {
	return c.Rotation.RotateVector(math.Vec3Back)
}

func (c Camera) Right() math.Vec3 {
	return c.Rotation.RotateVector(math.Vec3Right)
}

func (c Camera) Up() math.Vec3 {
	return c.Rotation.RotateVector(math.Vec3Up)
}

// ViewMatrix maps world space into the camera's local frame.
func (c Camera) ViewMatrix() math.Mat4 {
	return math.Mat4Translation(c.Position.Negate()).Mul(c.Rotation.Conjugate().ToMat4())
}

func (c Camera) ProjectionMatrix() math.Mat4 {
	return math.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewProjection maps world space to clip space: view first, then projection.
func (c Camera) ViewProjection() math.Mat4 {
	return c.ViewMatrix().Mul(c.ProjectionMatrix())
}

func (c Camera) Frustum() geom.Frustum {
	return geom.FrustumFromMatrix(c.ViewProjection())
}

// CascadeFrusta splits the view volume at the given view depths, which must be
// increasing and lie between the near and far planes. It returns len(splits)+1
// contiguous frusta ordered from the camera outward.
func (c Camera) CascadeFrusta(splits []float32) []geom.Frustum {
	f := c.Frustum()
	out := make([]geom.Frustum, 0, len(splits)+1)
	start := c.NearPlane
	for _, s := range splits {
		out = append(out, f.Slice(start-c.NearPlane, s-c.NearPlane))
		start = s
	}
	return append(out, f.Slice(start-c.NearPlane, c.FarPlane-c.NearPlane))
}

// CascadeSplits returns count-1 split depths blending logarithmic and uniform
// spacing; lambda 1 is fully logarithmic.
func (c Camera) CascadeSplits(count int, lambda float32) []float32 {
	if count < 2 {
		return nil
	}
	near, far := c.NearPlane, c.FarPlane
	splits := make([]float32, count-1)
	for i := 1; i < count; i++ {
		frac := float32(i) / float32(count)
		logSplit := near * math.Pow(far/near, frac)
		uniform := near + (far-near)*frac
		splits[i-1] = math.Lerp(uniform, logSplit, lambda)
	}
	return splits
}

// Unproject maps a normalized device coordinate back to world space.
func (c Camera) Unproject(ndc math.Vec3) math.Vec3 {
	inv := c.ViewProjection().Inverse()
	return inv.MulVec(ndc.ToVec4(1)).ToVec3DivW()
}

// ScreenToRay returns the world-space ray through pixel (x, y) of a viewport
// with its origin at the top-left corner. The ray starts on the near plane.
func (c Camera) ScreenToRay(x, y, width, height float32) geom.Ray {
	ndcX := 2*x/width - 1
	ndcY := 1 - 2*y/height
	near := c.Unproject(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	far := c.Unproject(math.Vec3{X: ndcX, Y: ndcY, Z: 1})
	return geom.RayFromPoints(near, far)
}

// WorldToScreen projects p to pixel coordinates. It reports false for points
// at or behind the camera plane.
func (c Camera) WorldToScreen(p math.Vec3, width, height float32) (math.Vec2, bool) {
	clip := p.ToVec4(1).MulMat(c.ViewProjection())
	if clip.W <= 0 {
		return math.Vec2{}, false
	}
	ndcX, ndcY := clip.X/clip.W, clip.Y/clip.W
	return math.Vec2{
		X: (ndcX + 1) * 0.5 * width,
		Y: (1 - ndcY) * 0.5 * height,
	}, true
}
