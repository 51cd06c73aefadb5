package geom

import "freak-engine/math"

// Capsule is the set of points within Radius of the core segment running from
// Center-UpAxis*HalfHeight to Center+UpAxis*HalfHeight.
type Capsule struct {
	Center     math.Vec3
	UpAxis     math.Vec3
	Radius     float32
	HalfHeight float32
}

// NewCapsule normalizes upAxis.
func NewCapsule(center, upAxis math.Vec3, radius, halfHeight float32) Capsule {
	return Capsule{Center: center, UpAxis: upAxis.Normalize(), Radius: radius, HalfHeight: halfHeight}
}

// CapsuleFromSegment builds the capsule swept by a sphere of radius along s.
func CapsuleFromSegment(s Segment, radius float32) Capsule {
	return NewCapsule(s.Midpoint(), s.Vector(), radius, s.Length()/2)
}

// WithAxis returns a copy with a new, normalized up axis.
func (c Capsule) WithAxis(upAxis math.Vec3) Capsule {
	c.UpAxis = upAxis.Normalize()
	return c
}

func (c Capsule) WithCenter(center math.Vec3) Capsule {
	c.Center = center
	return c
}

func (c Capsule) TopCenter() math.Vec3 {
	return c.Center.Add(c.UpAxis.Mul(c.HalfHeight))
}

func (c Capsule) BottomCenter() math.Vec3 {
	return c.Center.Sub(c.UpAxis.Mul(c.HalfHeight))
}

func (c Capsule) TopSphere() Sphere {
	return Sphere{Center: c.TopCenter(), Radius: c.Radius}
}

func (c Capsule) BottomSphere() Sphere {
	return Sphere{Center: c.BottomCenter(), Radius: c.Radius}
}

// Segment returns the core line from the bottom to the top sphere center.
func (c Capsule) Segment() Segment {
	return Segment{Start: c.BottomCenter(), End: c.TopCenter()}
}

func (c Capsule) Height() float32 {
	return 2 * (c.HalfHeight + c.Radius)
}

func (c Capsule) Bounds() AABB {
	r := math.Splat(c.Radius)
	top, bottom := c.TopCenter(), c.BottomCenter()
	return AABB{Min: top.Min(bottom).Sub(r), Max: top.Max(bottom).Add(r)}
}

func (c Capsule) BoundingSphere() Sphere {
	return Sphere{Center: c.Center, Radius: c.HalfHeight + c.Radius}
}

func (c Capsule) ContainsPoint(pt math.Vec3) bool {
	return c.Segment().ClosestPoint(pt).DistanceSqr(pt) <= c.Radius*c.Radius
}

// ClosestPart classifies pt against the core segment: the bottom cap (Start),
// the cylinder (Middle) or the top cap (End).
func (c Capsule) ClosestPart(pt math.Vec3) SegmentPart {
	_, part := c.Segment().Project(pt)
	return part
}

// ClosestPoint returns pt when it is inside and clampToEdge is false, and the
// nearest surface point otherwise. A point on the core segment is pushed out
// along an arbitrary perpendicular of the axis.
func (c Capsule) ClosestPoint(pt math.Vec3, clampToEdge bool) math.Vec3 {
	return closestPointOnSweptSphere(c.Segment(), c.Radius, c.UpAxis, pt, clampToEdge)
}

func closestPointOnSweptSphere(core Segment, radius float32, axis, pt math.Vec3, clampToEdge bool) math.Vec3 {
	q := core.ClosestPoint(pt)
	d := pt.Sub(q)
	distSqr := d.LengthSqr()
	if !clampToEdge && distSqr <= radius*radius {
		return pt
	}
	if distSqr == 0 {
		if axis.IsZero() {
			axis = math.Vec3Up
		}
		return q.Add(axis.Perpendicular().Mul(radius))
	}
	return q.Add(d.Mul(radius / math.Sqrt(distSqr)))
}

func (c Capsule) DistanceToPoint(pt math.Vec3) float32 {
	return math.Max(c.Segment().DistanceToPoint(pt)-c.Radius, 0)
}

func (c Capsule) ContainsSphere(s Sphere) Containment {
	return CapsuleContainsSphere(c, s)
}

func (c Capsule) ContainsCapsule(other Capsule) Containment {
	return CapsuleContainsCapsule(c, other)
}

func (c Capsule) ContainsAABB(b AABB) Containment {
	return CapsuleContainsAABB(c, b)
}

func (c Capsule) IntersectsSphere(s Sphere) bool {
	return CapsuleContainsSphere(c, s) != Disjoint
}

func (c Capsule) IntersectsCapsule(other Capsule) bool {
	return c.Segment().DistanceToSegment(other.Segment()) <= c.Radius+other.Radius
}

func (c Capsule) IntersectsAABB(b AABB) bool {
	return SegmentDistanceToAABB(c.Segment(), b) <= c.Radius
}

func (c Capsule) IntersectsRay(r Ray) (float32, bool) {
	return RayIntersectsCapsule(r, c)
}

// CapsuleY is a capsule whose axis is fixed to +Y.
type CapsuleY struct {
	Center     math.Vec3
	Radius     float32
	HalfHeight float32
}

func (c CapsuleY) ToCapsule() Capsule {
	return Capsule{Center: c.Center, UpAxis: math.Vec3Up, Radius: c.Radius, HalfHeight: c.HalfHeight}
}

func (c CapsuleY) TopCenter() math.Vec3 {
	return math.Vec3{X: c.Center.X, Y: c.Center.Y + c.HalfHeight, Z: c.Center.Z}
}

func (c CapsuleY) BottomCenter() math.Vec3 {
	return math.Vec3{X: c.Center.X, Y: c.Center.Y - c.HalfHeight, Z: c.Center.Z}
}

func (c CapsuleY) Segment() Segment {
	return Segment{Start: c.BottomCenter(), End: c.TopCenter()}
}

func (c CapsuleY) Bounds() AABB {
	e := math.Vec3{X: c.Radius, Y: c.Radius + c.HalfHeight, Z: c.Radius}
	return AABB{Min: c.Center.Sub(e), Max: c.Center.Add(e)}
}

func (c CapsuleY) axisPoint(pt math.Vec3) math.Vec3 {
	y := math.Clamp(pt.Y, c.Center.Y-c.HalfHeight, c.Center.Y+c.HalfHeight)
	return math.Vec3{X: c.Center.X, Y: y, Z: c.Center.Z}
}

func (c CapsuleY) ContainsPoint(pt math.Vec3) bool {
	return c.axisPoint(pt).DistanceSqr(pt) <= c.Radius*c.Radius
}

func (c CapsuleY) ClosestPoint(pt math.Vec3, clampToEdge bool) math.Vec3 {
	return closestPointOnSweptSphere(c.Segment(), c.Radius, math.Vec3Up, pt, clampToEdge)
}

// CapsuleX is a capsule whose axis is fixed to +X.
type CapsuleX struct {
	Center     math.Vec3
	Radius     float32
	HalfHeight float32
}

func (c CapsuleX) ToCapsule() Capsule {
	return Capsule{Center: c.Center, UpAxis: math.Vec3Right, Radius: c.Radius, HalfHeight: c.HalfHeight}
}

func (c CapsuleX) TopCenter() math.Vec3 {
	return math.Vec3{X: c.Center.X + c.HalfHeight, Y: c.Center.Y, Z: c.Center.Z}
}

func (c CapsuleX) BottomCenter() math.Vec3 {
	return math.Vec3{X: c.Center.X - c.HalfHeight, Y: c.Center.Y, Z: c.Center.Z}
}

func (c CapsuleX) Segment() Segment {
	return Segment{Start: c.BottomCenter(), End: c.TopCenter()}
}

func (c CapsuleX) Bounds() AABB {
	e := math.Vec3{X: c.Radius + c.HalfHeight, Y: c.Radius, Z: c.Radius}
	return AABB{Min: c.Center.Sub(e), Max: c.Center.Add(e)}
}

func (c CapsuleX) axisPoint(pt math.Vec3) math.Vec3 {
	x := math.Clamp(pt.X, c.Center.X-c.HalfHeight, c.Center.X+c.HalfHeight)
	return math.Vec3{X: x, Y: c.Center.Y, Z: c.Center.Z}
}

func (c CapsuleX) ContainsPoint(pt math.Vec3) bool {
	return c.axisPoint(pt).DistanceSqr(pt) <= c.Radius*c.Radius
}

func (c CapsuleX) ClosestPoint(pt math.Vec3, clampToEdge bool) math.Vec3 {
	return closestPointOnSweptSphere(c.Segment(), c.Radius, math.Vec3Right, pt, clampToEdge)
}
