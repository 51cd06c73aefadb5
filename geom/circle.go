package geom

import "freak-engine/math"

// Circle3D is a flat disc in 3D space.
type Circle3D struct {
	Center math.Vec3
	Normal math.Vec3
	Radius float32
}

// NewCircle3D normalizes normal.
func NewCircle3D(center, normal math.Vec3, radius float32) Circle3D {
	return Circle3D{Center: center, Normal: normal.Normalize(), Radius: radius}
}

func (c Circle3D) Plane() Plane {
	return PlaneFromPointNormal(c.Center, c.Normal)
}

// ContainsPoint reports whether pt lies on the disc within tolerance of its plane.
func (c Circle3D) ContainsPoint(pt math.Vec3, tolerance float32) bool {
	if math.Abs(c.Plane().Distance(pt)) > tolerance {
		return false
	}
	return c.Center.DistanceSqr(pt) <= c.Radius*c.Radius+tolerance
}

// ClosestPoint returns the nearest point of the disc. With clampToEdge the
// answer is always on the rim.
func (c Circle3D) ClosestPoint(pt math.Vec3, clampToEdge bool) math.Vec3 {
	onPlane := ClosestPointOnPlane(c.Plane(), pt)
	d := onPlane.Sub(c.Center)
	dist := d.Length()
	if !clampToEdge && dist <= c.Radius {
		return onPlane
	}
	if dist == 0 {
		return c.Center.Add(c.Normal.Perpendicular().Mul(c.Radius))
	}
	return c.Center.Add(d.Mul(c.Radius / dist))
}

func (c Circle3D) Bounds() AABB {
	n := c.Normal
	e := math.Vec3{
		X: c.Radius * math.Sqrt(math.Max(0, 1-n.X*n.X)),
		Y: c.Radius * math.Sqrt(math.Max(0, 1-n.Y*n.Y)),
		Z: c.Radius * math.Sqrt(math.Max(0, 1-n.Z*n.Z)),
	}
	return AABB{Min: c.Center.Sub(e), Max: c.Center.Add(e)}
}

func (c Circle3D) IntersectsRay(r Ray) (math.Vec3, bool) {
	return RayIntersectsCircle(r, c)
}
