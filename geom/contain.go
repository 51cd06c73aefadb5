package geom

import "freak-engine/math"

// AABBIntersectsAABB is the exact complement of the Disjoint result of
// AABBContainsAABB. Touching faces count as intersecting.
func AABBIntersectsAABB(a, b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

func AABBContainsAABB(container, b AABB) Containment {
	if !AABBIntersectsAABB(container, b) {
		return Disjoint
	}
	if container.Min.X <= b.Min.X && b.Max.X <= container.Max.X &&
		container.Min.Y <= b.Min.Y && b.Max.Y <= container.Max.Y &&
		container.Min.Z <= b.Min.Z && b.Max.Z <= container.Max.Z {
		return Contains
	}
	return Intersects
}

// AABBContainsSphere accumulates the squared per-axis gap between the centre
// and the box and compares it with the squared radius.
func AABBContainsSphere(b AABB, s Sphere) Containment {
	var d float32
	inside := true
	for axis := 0; axis < 3; axis++ {
		c := s.Center.Component(axis)
		lo, hi := b.Min.Component(axis), b.Max.Component(axis)
		switch {
		case c < lo:
			d += (c - lo) * (c - lo)
		case c > hi:
			d += (c - hi) * (c - hi)
		}
		if c-s.Radius < lo || c+s.Radius > hi {
			inside = false
		}
	}
	if d > s.Radius*s.Radius {
		return Disjoint
	}
	if inside {
		return Contains
	}
	return Intersects
}

func countInside(corners [8]math.Vec3, contains func(math.Vec3) bool) int {
	n := 0
	for _, c := range corners {
		if contains(c) {
			n++
		}
	}
	return n
}

func AABBContainsBox(b AABB, box Box) Containment {
	if countInside(box.Corners(), b.ContainsPoint) == 8 {
		return Contains
	}
	if BoxIntersectsBox(b.ToBox(), box) {
		return Intersects
	}
	return Disjoint
}

// AABBContainsCapsule compares the capsule's core segment against the box.
func AABBContainsCapsule(b AABB, c Capsule) Containment {
	if AABBContainsAABB(b, c.Bounds()) == Contains {
		return Contains
	}
	if SegmentDistanceToAABB(c.Segment(), b) > c.Radius {
		return Disjoint
	}
	return Intersects
}

// AABBContainsCone is conservative: Disjoint is only reported when the cone
// misses the box's bounds or its bounding sphere, so a cone whose slant passes
// by a box corner may be reported as Intersects.
func AABBContainsCone(b AABB, c Cone) Containment {
	bounds := c.Bounds()
	if AABBContainsAABB(b, bounds) == Contains {
		return Contains
	}
	if !AABBIntersectsAABB(b, bounds) {
		return Disjoint
	}
	if c.DistanceToPoint(b.Center()) > b.Extents().Length() {
		return Disjoint
	}
	return Intersects
}

// AABBContainsFrustum counts the frustum's corners inside the box. When none
// are inside, the box may still cut through the frustum, so the frustum's own
// planes are tested against the box before reporting Disjoint.
func AABBContainsFrustum(b AABB, f Frustum) Containment {
	corners, _ := f.Corners()
	switch countInside(corners, b.ContainsPoint) {
	case 8:
		return Contains
	case 0:
	default:
		return Intersects
	}
	if !AABBIntersectsAABB(b, f.Bounds()) {
		return Disjoint
	}
	if FrustumContainsAABB(f, b) != Disjoint {
		return Intersects
	}
	return Disjoint
}

// AABBContainsTriangle reports Contains when every vertex is inside and
// otherwise runs the 13-axis separating axis test.
func AABBContainsTriangle(b AABB, t Triangle) Containment {
	if b.ContainsPoint(t.A) && b.ContainsPoint(t.B) && b.ContainsPoint(t.C) {
		return Contains
	}
	if !AABBIntersectsAABB(b, t.Bounds()) {
		return Disjoint
	}

	c := b.Center()
	e := b.Extents()
	v0, v1, v2 := t.A.Sub(c), t.B.Sub(c), t.C.Sub(c)
	edges := [3]math.Vec3{v1.Sub(v0), v2.Sub(v1), v0.Sub(v2)}
	axes := [3]math.Vec3{math.Vec3Right, math.Vec3Up, math.Vec3Front}
	for _, u := range axes {
		for _, f := range edges {
			a := u.Cross(f)
			if a.IsZero() {
				continue
			}
			p0, p1, p2 := v0.Dot(a), v1.Dot(a), v2.Dot(a)
			r := e.X*math.Abs(a.X) + e.Y*math.Abs(a.Y) + e.Z*math.Abs(a.Z)
			if math.Max(p0, math.Max(p1, p2)) < -r || math.Min(p0, math.Min(p1, p2)) > r {
				return Disjoint
			}
		}
	}
	if !t.IsDegenerate() && PlaneIntersectsAABB(t.Plane(), b) != Intersecting {
		return Disjoint
	}
	return Intersects
}

// SphereContainsAABB tests the nearest point for overlap and every corner for
// containment.
func SphereContainsAABB(s Sphere, b AABB) Containment {
	if b.ClosestPoint(s.Center, false).DistanceSqr(s.Center) > s.Radius*s.Radius {
		return Disjoint
	}
	if countInside(b.Corners(), s.ContainsPoint) == 8 {
		return Contains
	}
	return Intersects
}

func SphereContainsSphere(s, other Sphere) Containment {
	d := s.Center.Distance(other.Center)
	switch {
	case d > s.Radius+other.Radius:
		return Disjoint
	case d+other.Radius <= s.Radius:
		return Contains
	}
	return Intersects
}

func SphereContainsBox(s Sphere, b Box) Containment {
	if countInside(b.Corners(), s.ContainsPoint) == 8 {
		return Contains
	}
	if b.ClosestPoint(s.Center, false).DistanceSqr(s.Center) <= s.Radius*s.Radius {
		return Intersects
	}
	return Disjoint
}

// SphereContainsCapsule treats the capsule as the hull of its two end spheres.
func SphereContainsCapsule(s Sphere, c Capsule) Containment {
	if SegmentDistanceToPoint(c.Segment(), s.Center) > s.Radius+c.Radius {
		return Disjoint
	}
	if SphereContainsSphere(s, c.TopSphere()) == Contains &&
		SphereContainsSphere(s, c.BottomSphere()) == Contains {
		return Contains
	}
	return Intersects
}

// SphereContainsCone treats the cone as the hull of its tip and base disc.
func SphereContainsCone(s Sphere, c Cone) Containment {
	if c.DistanceToPoint(s.Center) > s.Radius {
		return Disjoint
	}
	r2 := s.Radius * s.Radius
	if c.Tip().DistanceSqr(s.Center) > r2 {
		return Intersects
	}
	v := c.Center.Sub(s.Center)
	along := v.Dot(c.UpAxis)
	across := v.Sub(c.UpAxis.Mul(along)).Length() + c.Radius
	if along*along+across*across > r2 {
		return Intersects
	}
	return Contains
}

// BoxIntersectsBox tests the face planes of both boxes: the pair is separated
// when every corner of one box lies behind a single face plane of the other.
// Edge-edge separating axes are not tested, so some disjoint pairs report true.
func BoxIntersectsBox(a, b Box) bool {
	return !separatedByFaces(a.Planes(), b.Corners()) &&
		!separatedByFaces(b.Planes(), a.Corners())
}

func separatedByFaces(planes [6]Plane, corners [8]math.Vec3) bool {
	for _, p := range planes {
		outside := true
		for _, c := range corners {
			if p.Distance(c) >= 0 {
				outside = false
				break
			}
		}
		if outside {
			return true
		}
	}
	return false
}

// BoxContainsBox counts the corners of b inside container. When none are
// inside, container may itself sit inside b, so the face-plane test decides
// between Intersects and Disjoint.
func BoxContainsBox(container, b Box) Containment {
	switch countInside(b.Corners(), container.ContainsPoint) {
	case 8:
		return Contains
	case 0:
		if BoxIntersectsBox(container, b) {
			return Intersects
		}
		return Disjoint
	}
	return Intersects
}

// BoxContainsAABB treats b as an identity-transformed Box and defers to
// BoxContainsBox.
func BoxContainsAABB(container Box, b AABB) Containment {
	return BoxContainsBox(container, b.ToBox())
}

func BoxContainsSphere(b Box, s Sphere) Containment {
	if b.ClosestPoint(s.Center, false).DistanceSqr(s.Center) > s.Radius*s.Radius {
		return Disjoint
	}
	for _, p := range b.Planes() {
		if p.Distance(s.Center) < s.Radius {
			return Intersects
		}
	}
	return Contains
}

// FrustumContainsAABB classifies with the two corners extremal along each
// plane normal.
func FrustumContainsAABB(f Frustum, b AABB) Containment {
	result := Contains
	for _, p := range f.Planes {
		positive, negative := b.ExtremeCorners(p.Normal)
		if p.Distance(positive) < 0 {
			return Disjoint
		}
		if p.Distance(negative) < 0 {
			result = Intersects
		}
	}
	return result
}

func FrustumContainsSphere(f Frustum, s Sphere) Containment {
	result := Contains
	for _, p := range f.Planes {
		d := p.Distance(s.Center)
		if d < -s.Radius {
			return Disjoint
		}
		if d < s.Radius {
			result = Intersects
		}
	}
	return result
}

// FrustumContainsBox counts, per plane, the box corners in front of it.
func FrustumContainsBox(f Frustum, b Box) Containment {
	corners := b.Corners()
	result := Contains
	for _, p := range f.Planes {
		in := countInside(corners, func(c math.Vec3) bool { return p.Distance(c) >= 0 })
		if in == 0 {
			return Disjoint
		}
		if in < 8 {
			result = Intersects
		}
	}
	return result
}

func CapsuleContainsSphere(c Capsule, s Sphere) Containment {
	d := SegmentDistanceToPoint(c.Segment(), s.Center)
	switch {
	case d > c.Radius+s.Radius:
		return Disjoint
	case d+s.Radius <= c.Radius:
		return Contains
	}
	return Intersects
}

func CapsuleContainsCapsule(c, other Capsule) Containment {
	if c.Segment().DistanceToSegment(other.Segment()) > c.Radius+other.Radius {
		return Disjoint
	}
	if CapsuleContainsSphere(c, other.TopSphere()) == Contains &&
		CapsuleContainsSphere(c, other.BottomSphere()) == Contains {
		return Contains
	}
	return Intersects
}

func CapsuleContainsAABB(c Capsule, b AABB) Containment {
	if SegmentDistanceToAABB(c.Segment(), b) > c.Radius {
		return Disjoint
	}
	if countInside(b.Corners(), c.ContainsPoint) == 8 {
		return Contains
	}
	return Intersects
}
