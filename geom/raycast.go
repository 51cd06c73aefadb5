package geom

import (
	stdmath "math"

	"freak-engine/math"
)

// rayTolerance is how far apart two rays may pass and still count as crossing.
const rayTolerance = 1e-4

// RayIntersectsPoint treats p as a sphere of the given radius. A non-positive
// tolerance falls back to math.Epsilon.
func RayIntersectsPoint(r Ray, p math.Vec3, tolerance float32) bool {
	if tolerance <= 0 {
		tolerance = math.Epsilon
	}
	return ClosestPointOnRay(r, p).DistanceSqr(p) <= tolerance*tolerance
}

func det3(a, b, c math.Vec3) float32 {
	return a.Dot(b.Cross(c))
}

// RayIntersectsRay uses Goldman's formula for the closest approach of two
// lines. Parallel rays, crossings behind either start and skew rays that miss
// by more than rayTolerance all return false.
func RayIntersectsRay(r1, r2 Ray) (math.Vec3, bool) {
	c := r1.Direction.Cross(r2.Direction)
	denom := c.LengthSqr()
	if denom < math.Epsilon*math.Epsilon {
		return math.Vec3Zero, false
	}
	diff := r2.Start.Sub(r1.Start)
	t1 := det3(diff, r2.Direction, c) / denom
	t2 := det3(diff, r1.Direction, c) / denom
	if t1 < 0 || t2 < 0 {
		return math.Vec3Zero, false
	}
	p1 := r1.PointAt(t1)
	p2 := r2.PointAt(t2)
	if p1.DistanceSqr(p2) > rayTolerance*rayTolerance {
		return math.Vec3Zero, false
	}
	return p1.Lerp(p2, 0.5), true
}

// RayIntersectsPlane returns the hit point. Rays parallel to the plane and
// planes behind the ray start return false.
func RayIntersectsPlane(r Ray, p Plane) (math.Vec3, bool) {
	denom := p.Normal.Dot(r.Direction)
	if math.IsZero(denom) {
		return math.Vec3Zero, false
	}
	t := -p.Distance(r.Start) / denom
	if t < 0 {
		return math.Vec3Zero, false
	}
	return r.PointAt(t), true
}

// RayTriangleHit is the Möller–Trumbore test. distance is signed (negative
// behind the ray start), u and v are the barycentric weights of B and C, and
// inside reports whether the line crosses the triangle. Rays parallel to the
// triangle plane return inside == false.
func RayTriangleHit(r Ray, t Triangle) (distance, u, v float32, inside bool) {
	const epsilon = 0.0000001

	edge1 := t.B.Sub(t.A)
	edge2 := t.C.Sub(t.A)
	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := r.Start.Sub(t.A)
	u = f * s.Dot(h)
	q := s.Cross(edge1)
	v = f * r.Direction.Dot(q)
	distance = f * edge2.Dot(q)
	inside = u >= 0 && u <= 1 && v >= 0 && u+v <= 1
	return distance, u, v, inside
}

// RayIntersectsTriangle returns the distance to a hit in front of the ray start.
func RayIntersectsTriangle(r Ray, t Triangle) (float32, bool) {
	distance, _, _, inside := RayTriangleHit(r, t)
	if !inside || distance < 0 {
		return 0, false
	}
	return distance, true
}

// slab intersects the line start + dir*t with b and returns the parameter
// interval inside the box. dir need not be normalized.
func slab(start, dir math.Vec3, b AABB) (tmin, tmax float32, ok bool) {
	tmin = float32(stdmath.Inf(-1))
	tmax = float32(stdmath.Inf(1))
	for axis := 0; axis < 3; axis++ {
		o := start.Component(axis)
		d := dir.Component(axis)
		lo, hi := b.Min.Component(axis), b.Max.Component(axis)
		if d == 0 {
			if o < lo || o > hi {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / d
		t1 := (lo - o) * inv
		t2 := (hi - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, 0, false
		}
	}
	return tmin, tmax, true
}

// RayIntersectsAABB returns the entry and exit distances of the slab test.
// near is negative when the ray starts inside the box.
func RayIntersectsAABB(r Ray, b AABB) (near, far float32, ok bool) {
	near, far, ok = slab(r.Start, r.Direction, b)
	if !ok || far < 0 {
		return 0, 0, false
	}
	return near, far, true
}

// RayIntersectsAABBDistance returns the distance to the first hit, or zero when
// the ray starts inside the box.
func RayIntersectsAABBDistance(r Ray, b AABB) (float32, bool) {
	near, _, ok := RayIntersectsAABB(r, b)
	if !ok {
		return 0, false
	}
	return math.Max(near, 0), true
}

func RayIntersectsAABBPoint(r Ray, b AABB) (math.Vec3, bool) {
	d, ok := RayIntersectsAABBDistance(r, b)
	if !ok {
		return math.Vec3Zero, false
	}
	return r.PointAt(d), true
}

// RayIntersectsBox runs the slab test in the box's local space. The local
// direction keeps the scale of the inverse transform, so the slab parameter is
// still a world-space distance.
func RayIntersectsBox(r Ray, b Box) (float32, bool) {
	inv, ok := b.Transform.InverseOK()
	if !ok {
		return 0, false
	}
	start := inv.TransformPoint(r.Start)
	dir := inv.TransformDirection(r.Direction)
	near, far, ok := slab(start, dir, b.LocalAABB())
	if !ok || far < 0 {
		return 0, false
	}
	return math.Max(near, 0), true
}

// RayIntersectsSphere solves |start + t*dir - center|² = r². A ray starting on
// or inside the sphere reports distance zero, never a negative value.
func RayIntersectsSphere(r Ray, s Sphere) (float32, bool) {
	m := r.Start.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(m)
	c := m.Dot(m) - s.Radius*s.Radius
	t0, t1, ok := math.QuadraticRealRoots(a, b, c)
	if !ok || t1 < -math.Epsilon {
		return 0, false
	}
	return math.Max(t0, 0), true
}

// RayIntersectsCapsule returns the nearest hit against the cylinder body and
// the two end spheres; zero when the ray starts inside.
func RayIntersectsCapsule(r Ray, c Capsule) (float32, bool) {
	if c.ContainsPoint(r.Start) {
		return 0, true
	}
	best := float32(stdmath.Inf(1))
	hit := false
	for _, sp := range [2]Sphere{c.BottomSphere(), c.TopSphere()} {
		if t, ok := RayIntersectsSphere(r, sp); ok && t < best {
			best, hit = t, true
		}
	}

	base := c.BottomCenter()
	u := c.UpAxis
	length := 2 * c.HalfHeight
	w := r.Start.Sub(base)
	dPerp := r.Direction.Sub(u.Mul(r.Direction.Dot(u)))
	wPerp := w.Sub(u.Mul(w.Dot(u)))
	// A ray along the axis only meets the end spheres.
	a := dPerp.Dot(dPerp)
	t0, t1, ok := math.QuadraticRealRoots(
		a,
		2*dPerp.Dot(wPerp),
		wPerp.Dot(wPerp)-c.Radius*c.Radius,
	)
	if ok && a > math.Epsilon*math.Epsilon {
		for _, t := range [2]float32{t0, t1} {
			if t < 0 || t >= best {
				continue
			}
			h := r.PointAt(t).Sub(base).Dot(u)
			if h >= 0 && h <= length {
				best, hit = t, true
			}
		}
	}
	if !hit {
		return 0, false
	}
	return best, true
}

// RayIntersectsCircle returns the point where the ray crosses the disc.
func RayIntersectsCircle(r Ray, c Circle3D) (math.Vec3, bool) {
	p, ok := RayIntersectsPlane(r, c.Plane())
	if !ok || p.DistanceSqr(c.Center) > c.Radius*c.Radius {
		return math.Vec3Zero, false
	}
	return p, true
}

// SegmentIntersectsAABB runs the slab test restricted to [0, 1] along the
// segment and returns the world-space entry and exit points. A segment that
// starts inside enters at Start; one that ends inside exits at End.
func SegmentIntersectsAABB(s Segment, b AABB) (enter, exit math.Vec3, ok bool) {
	tmin, tmax, ok := slab(s.Start, s.Vector(), b)
	if !ok {
		return math.Vec3Zero, math.Vec3Zero, false
	}
	tmin = math.Max(tmin, 0)
	tmax = math.Min(tmax, 1)
	if tmin > tmax {
		return math.Vec3Zero, math.Vec3Zero, false
	}
	return s.PointAt(tmin), s.PointAt(tmax), true
}

// SegmentIntersectsPlane returns the crossing point. A segment lying in the
// plane reports its start.
func SegmentIntersectsPlane(s Segment, p Plane) (math.Vec3, bool) {
	d0 := p.Distance(s.Start)
	d1 := p.Distance(s.End)
	if (d0 > 0 && d1 > 0) || (d0 < 0 && d1 < 0) {
		return math.Vec3Zero, false
	}
	if d0 == d1 {
		return s.Start, true
	}
	return s.PointAt(d0 / (d0 - d1)), true
}

func SegmentIntersectsSphere(s Segment, sp Sphere) bool {
	return ClosestPointOnSegment(s, sp.Center).DistanceSqr(sp.Center) <= sp.Radius*sp.Radius
}
