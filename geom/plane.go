package geom

import "freak-engine/math"

// Plane is the set of points p with dot(Normal, p) + D == 0.
// Normal is expected to be unit length; the constructors guarantee it.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// NewPlane builds a plane from a possibly non-unit normal, scaling d so the
// described plane is unchanged.
func NewPlane(normal math.Vec3, d float32) Plane {
	return Plane{Normal: normal, D: d}.Normalized()
}

func PlaneFromPointNormal(point, normal math.Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, D: -n.Dot(point)}
}

// PlaneFromPoints builds the plane through a, b and c. Counter-clockwise
// winding faces the front. Collinear points give a plane with a zero normal.
func PlaneFromPoints(a, b, c math.Vec3) Plane {
	return PlaneFromPointNormal(a, b.Sub(a).Cross(c.Sub(a)))
}

// Normalized rescales a plane whose normal is not unit length.
func (p Plane) Normalized() Plane {
	l := p.Normal.Length()
	if l == 0 {
		return Plane{}
	}
	inv := 1 / l
	return Plane{Normal: p.Normal.Mul(inv), D: p.D * inv}
}

// Distance returns the signed distance of pt from the plane.
func (p Plane) Distance(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Point returns the point of the plane closest to the origin.
func (p Plane) Point() math.Vec3 {
	return p.Normal.Mul(-p.D)
}

func (p Plane) ClosestPoint(pt math.Vec3) math.Vec3 {
	return ClosestPointOnPlane(p, pt)
}

func (p Plane) Flipped() Plane {
	return Plane{Normal: p.Normal.Negate(), D: -p.D}
}

// WithNormal returns the plane through the same point with a new, renormalized normal.
func (p Plane) WithNormal(normal math.Vec3) Plane {
	return PlaneFromPointNormal(p.Point(), normal)
}

// WithPoint returns the parallel plane passing through point.
func (p Plane) WithPoint(point math.Vec3) Plane {
	return Plane{Normal: p.Normal, D: -p.Normal.Dot(point)}
}

// Offset moves the plane by distance along its own normal.
func (p Plane) Offset(distance float32) Plane {
	return Plane{Normal: p.Normal, D: p.D - distance}
}

// Transform maps the plane by m. The normal goes through the inverse transpose.
func (p Plane) Transform(m math.Mat4) Plane {
	return PlaneFromPointNormal(m.TransformPoint(p.Point()), m.TransformNormal(p.Normal))
}

func (p Plane) Classify(pt math.Vec3) PlaneIntersection {
	return PlaneClassifyPoint(p, pt)
}

func (p Plane) IntersectsPlane(other Plane) bool {
	return PlaneIntersectsPlane(p, other)
}

func (p Plane) IntersectsSphere(s Sphere) PlaneIntersection {
	return PlaneIntersectsSphere(p, s)
}

func (p Plane) IntersectsAABB(b AABB) PlaneIntersection {
	return PlaneIntersectsAABB(p, b)
}

func (p Plane) IntersectsBox(b Box) PlaneIntersection {
	return PlaneIntersectsBox(p, b)
}

func (p Plane) IntersectsTriangle(t Triangle) PlaneIntersection {
	return PlaneIntersectsTriangle(p, t)
}

func (p Plane) IntersectsRay(r Ray) (math.Vec3, bool) {
	return RayIntersectsPlane(r, p)
}
