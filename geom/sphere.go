package geom

import (
	stdmath "math"

	"freak-engine/math"
)

// Sphere is a ball; Radius is expected to be non-negative.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

func NewSphere(center math.Vec3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

func (s Sphere) Diameter() float32 {
	return s.Radius * 2
}

func (s Sphere) Volume() float32 {
	return 4.0 / 3.0 * stdmath.Pi * s.Radius * s.Radius * s.Radius
}

func (s Sphere) Bounds() AABB {
	r := math.Splat(s.Radius)
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

func (s Sphere) ContainsPoint(pt math.Vec3) bool {
	return s.Center.DistanceSqr(pt) <= s.Radius*s.Radius
}

// ClosestPoint returns pt itself when it is inside and clampToEdge is false,
// otherwise its projection onto the surface.
func (s Sphere) ClosestPoint(pt math.Vec3, clampToEdge bool) math.Vec3 {
	if !clampToEdge && s.ContainsPoint(pt) {
		return pt
	}
	return ClosestPointOnSphere(s, pt)
}

func (s Sphere) DistanceToPoint(pt math.Vec3) float32 {
	return SphereDistanceToPoint(s, pt)
}

func (s Sphere) DistanceToSphere(other Sphere) float32 {
	return SphereDistanceToSphere(s, other)
}

func (s Sphere) Translated(offset math.Vec3) Sphere {
	return Sphere{Center: s.Center.Add(offset), Radius: s.Radius}
}

// Transform moves the center by m and scales the radius by the largest axis scale,
// so the result encloses the transformed sphere.
func (s Sphere) Transform(m math.Mat4) Sphere {
	scale := math.Max(m.Axis(0).Length(), math.Max(m.Axis(1).Length(), m.Axis(2).Length()))
	return Sphere{Center: m.TransformPoint(s.Center), Radius: s.Radius * scale}
}

// Merge returns the smallest sphere enclosing both s and other.
func (s Sphere) Merge(other Sphere) Sphere {
	d := other.Center.Sub(s.Center)
	dist := d.Length()
	if dist+other.Radius <= s.Radius {
		return s
	}
	if dist+s.Radius <= other.Radius {
		return other
	}
	radius := (dist + s.Radius + other.Radius) / 2
	center := s.Center.Add(d.Mul((radius - s.Radius) / dist))
	return Sphere{Center: center, Radius: radius}
}

func (s Sphere) ContainsAABB(b AABB) Containment {
	return SphereContainsAABB(s, b)
}

func (s Sphere) ContainsSphere(other Sphere) Containment {
	return SphereContainsSphere(s, other)
}

func (s Sphere) ContainsBox(b Box) Containment {
	return SphereContainsBox(s, b)
}

func (s Sphere) ContainsCapsule(c Capsule) Containment {
	return SphereContainsCapsule(s, c)
}

func (s Sphere) ContainsCone(c Cone) Containment {
	return SphereContainsCone(s, c)
}

func (s Sphere) IntersectsSphere(other Sphere) bool {
	return SphereContainsSphere(s, other) != Disjoint
}

func (s Sphere) IntersectsAABB(b AABB) bool {
	return AABBContainsSphere(b, s) != Disjoint
}

func (s Sphere) IntersectsRay(r Ray) (float32, bool) {
	return RayIntersectsSphere(r, s)
}
