package geom

import "freak-engine/math"

// DistancePlanePoint returns the signed distance of p from the plane,
// positive in front.
func DistancePlanePoint(plane Plane, p math.Vec3) float32 {
	return math.DistancePlanePoint(plane.Normal, plane.D, p)
}

// AABBDistanceToAABB returns the Euclidean gap between two boxes, zero when they touch or overlap.
func AABBDistanceToAABB(a, b AABB) float32 {
	var sum float32
	for axis := 0; axis < 3; axis++ {
		gap := math.Max(0, math.Max(
			b.Min.Component(axis)-a.Max.Component(axis),
			a.Min.Component(axis)-b.Max.Component(axis),
		))
		sum += gap * gap
	}
	return math.Sqrt(sum)
}

// SphereDistanceToPoint returns the distance from the sphere surface to p,
// clamped to zero inside the sphere.
func SphereDistanceToPoint(s Sphere, p math.Vec3) float32 {
	return math.Max(s.Center.Distance(p)-s.Radius, 0)
}

// SphereDistanceToSphere returns the edge-to-edge gap, clamped to zero.
func SphereDistanceToSphere(a, b Sphere) float32 {
	return math.Max(a.Center.Distance(b.Center)-a.Radius-b.Radius, 0)
}

func SegmentDistanceToPoint(s Segment, p math.Vec3) float32 {
	return ClosestPointOnSegment(s, p).Distance(p)
}

// goldenIterations shrinks the search interval below 1e-6 of the segment length.
const goldenIterations = 32

// ClosestPointsSegmentAABB returns the closest pair of points between a segment
// and a box. The squared distance to a convex set is convex along the segment,
// so a golden-section search over the segment parameter converges to the minimum.
func ClosestPointsSegmentAABB(s Segment, b AABB) (onSegment, onBox math.Vec3) {
	if enter, _, ok := SegmentIntersectsAABB(s, b); ok {
		return enter, enter
	}
	f := func(t float32) float32 {
		p := s.PointAt(t)
		return ClosestPointOnAABB(b, p).DistanceSqr(p)
	}
	const invPhi = 0.6180339887
	lo, hi := float32(0), float32(1)
	x1 := hi - invPhi*(hi-lo)
	x2 := lo + invPhi*(hi-lo)
	f1, f2 := f(x1), f(x2)
	for i := 0; i < goldenIterations; i++ {
		if f1 < f2 {
			hi, x2, f2 = x2, x1, f1
			x1 = hi - invPhi*(hi-lo)
			f1 = f(x1)
		} else {
			lo, x1, f1 = x1, x2, f2
			x2 = lo + invPhi*(hi-lo)
			f2 = f(x2)
		}
	}
	t := (lo + hi) / 2
	// The minimum may sit exactly on an endpoint.
	for _, end := range [2]float32{0, 1} {
		if f(end) < f(t) {
			t = end
		}
	}
	onSegment = s.PointAt(t)
	return onSegment, ClosestPointOnAABB(b, onSegment)
}

// SegmentDistanceToAABB returns zero when the segment touches the box.
func SegmentDistanceToAABB(s Segment, b AABB) float32 {
	p, q := ClosestPointsSegmentAABB(s, b)
	return p.Distance(q)
}
