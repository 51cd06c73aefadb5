package geom

import "freak-engine/math"

// PlaneClassifyPoint uses the exact sign of the signed distance; a point with
// distance zero is Intersecting.
func PlaneClassifyPoint(p Plane, pt math.Vec3) PlaneIntersection {
	d := p.Distance(pt)
	switch {
	case d > 0:
		return Front
	case d < 0:
		return Back
	}
	return Intersecting
}

// PlaneIntersectsPlane reports whether two planes share a point. Parallel
// planes intersect only when they coincide.
func PlaneIntersectsPlane(a, b Plane) bool {
	if a.Normal.Cross(b.Normal).LengthSqr() > math.Epsilon*math.Epsilon {
		return true
	}
	if a.Normal.Dot(b.Normal) < 0 {
		b = b.Flipped()
	}
	return math.Abs(a.D-b.D) <= math.Epsilon
}

// PlaneIntersectionLine returns the line shared by two non-parallel planes as
// a ray whose direction is a.Normal × b.Normal.
func PlaneIntersectionLine(a, b Plane) (Ray, bool) {
	u := a.Normal.Cross(b.Normal)
	denom := u.LengthSqr()
	if denom < math.Epsilon*math.Epsilon {
		return Ray{}, false
	}
	p := b.Normal.Cross(u).Mul(-a.D).
		Add(u.Cross(a.Normal).Mul(-b.D)).
		Div(denom)
	return NewRay(p, u), true
}

// ThreePlaneIntersection solves the 3×3 system with cross products and the
// triple-product denominator. Near-parallel plane sets return false.
func ThreePlaneIntersection(a, b, c Plane) (math.Vec3, bool) {
	bc := b.Normal.Cross(c.Normal)
	denom := a.Normal.Dot(bc)
	if math.Abs(denom) < math.Epsilon {
		return math.Vec3Zero, false
	}
	p := bc.Mul(-a.D).
		Add(c.Normal.Cross(a.Normal).Mul(-b.D)).
		Add(a.Normal.Cross(b.Normal).Mul(-c.D))
	return p.Div(denom), true
}

func PlaneIntersectsTriangle(p Plane, t Triangle) PlaneIntersection {
	da, db, dc := p.Distance(t.A), p.Distance(t.B), p.Distance(t.C)
	switch {
	case da > 0 && db > 0 && dc > 0:
		return Front
	case da < 0 && db < 0 && dc < 0:
		return Back
	}
	return Intersecting
}

func PlaneIntersectsSphere(p Plane, s Sphere) PlaneIntersection {
	d := p.Distance(s.Center)
	switch {
	case d > s.Radius:
		return Front
	case d < -s.Radius:
		return Back
	}
	return Intersecting
}

// PlaneIntersectsAABB checks only the two corners extremal along the normal.
func PlaneIntersectsAABB(p Plane, b AABB) PlaneIntersection {
	positive, negative := b.ExtremeCorners(p.Normal)
	if p.Distance(negative) > 0 {
		return Front
	}
	if p.Distance(positive) < 0 {
		return Back
	}
	return Intersecting
}

// PlaneIntersectsBox moves the plane into the box's local space and runs the
// AABB test there. A non-invertible transform reports Intersecting.
func PlaneIntersectsBox(p Plane, b Box) PlaneIntersection {
	inv, ok := b.Transform.InverseOK()
	if !ok {
		return Intersecting
	}
	return PlaneIntersectsAABB(p.Transform(inv), b.LocalAABB())
}
