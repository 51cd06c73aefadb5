package camera

import (
	"freak-engine/geom"
	"freak-engine/math"
)

// params is the part of a Camera the matrices depend on.
type params struct {
	position    math.Vec3
	rotation    math.Quaternion
	fov         float32
	aspectRatio float32
	near        float32
	far         float32
}

// matrixCache holds the matrices for the params they were built from. Keying
// on the values keeps direct field writes from leaving it stale.
type matrixCache struct {
	valid    bool
	key      params
	viewProj math.Mat4
	frustum  geom.Frustum
}

func (c *Camera) params() params {
	return params{
		position:    c.Position,
		rotation:    c.Rotation,
		fov:         c.FOV,
		aspectRatio: c.AspectRatio,
		near:        c.NearPlane,
		far:         c.FarPlane,
	}
}

func (c *Camera) updateMatrices() {
	key := c.params()
	if c.cache.valid && c.cache.key == key {
		return
	}
	viewProj := c.ViewProjection()
	c.cache = matrixCache{
		valid:    true,
		key:      key,
		viewProj: viewProj,
		frustum:  geom.FrustumFromMatrix(viewProj),
	}
}

// CachedViewProjection returns ViewProjection, rebuilding it only when a camera
// parameter changed since the last cached call. Not safe for concurrent use.
func (c *Camera) CachedViewProjection() math.Mat4 {
	c.updateMatrices()
	return c.cache.viewProj
}

// CachedFrustum is the cached form of Frustum.
func (c *Camera) CachedFrustum() geom.Frustum {
	c.updateMatrices()
	return c.cache.frustum
}
