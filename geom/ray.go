package geom

import "freak-engine/math"

// Ray is a half-line from Start along Direction. NewRay stores a unit direction;
// building a Ray literal with a non-unit direction breaks the distance results.
type Ray struct {
	Start     math.Vec3
	Direction math.Vec3
}

func NewRay(start, direction math.Vec3) Ray {
	return Ray{Start: start, Direction: direction.Normalize()}
}

// RayFromPoints returns the ray from start through end.
func RayFromPoints(start, end math.Vec3) Ray {
	return NewRay(start, end.Sub(start))
}

func (r Ray) WithDirection(direction math.Vec3) Ray {
	return NewRay(r.Start, direction)
}

func (r Ray) PointAt(distance float32) math.Vec3 {
	return r.Start.Add(r.Direction.Mul(distance))
}

// ClosestPoint returns the point on the ray nearest to pt; points behind the
// start project onto Start.
func (r Ray) ClosestPoint(pt math.Vec3) math.Vec3 {
	return ClosestPointOnRay(r, pt)
}

func (r Ray) DistanceToPoint(pt math.Vec3) float32 {
	return r.ClosestPoint(pt).Distance(pt)
}

// Transform maps the ray by m and renormalizes the direction.
func (r Ray) Transform(m math.Mat4) Ray {
	return NewRay(m.TransformPoint(r.Start), m.TransformDirection(r.Direction))
}

// Segment returns the piece of the ray between distances 0 and length.
func (r Ray) Segment(length float32) Segment {
	return Segment{Start: r.Start, End: r.PointAt(length)}
}

func (r Ray) IntersectsPoint(pt math.Vec3, tolerance float32) bool {
	return RayIntersectsPoint(r, pt, tolerance)
}

func (r Ray) IntersectsRay(other Ray) (math.Vec3, bool) {
	return RayIntersectsRay(r, other)
}

func (r Ray) IntersectsPlane(p Plane) (math.Vec3, bool) {
	return RayIntersectsPlane(r, p)
}

func (r Ray) IntersectsTriangle(t Triangle) (float32, bool) {
	return RayIntersectsTriangle(r, t)
}

func (r Ray) IntersectsSphere(s Sphere) (float32, bool) {
	return RayIntersectsSphere(r, s)
}

func (r Ray) IntersectsAABB(b AABB) (float32, bool) {
	return RayIntersectsAABBDistance(r, b)
}

func (r Ray) IntersectsBox(b Box) (float32, bool) {
	return RayIntersectsBox(r, b)
}

func (r Ray) IntersectsCapsule(c Capsule) (float32, bool) {
	return RayIntersectsCapsule(r, c)
}
