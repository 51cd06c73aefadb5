package geom

import "freak-engine/math"

// Segment is the line segment between Start and End. A zero-length segment is
// valid and behaves like the point Start.
type Segment struct {
	Start, End math.Vec3
}

func NewSegment(start, end math.Vec3) Segment {
	return Segment{Start: start, End: end}
}

func (s Segment) Length() float32 {
	return s.Start.Distance(s.End)
}

func (s Segment) Vector() math.Vec3 {
	return s.End.Sub(s.Start)
}

// Direction returns the unit direction, or the zero vector for a degenerate segment.
func (s Segment) Direction() math.Vec3 {
	return s.Vector().Normalize()
}

func (s Segment) Midpoint() math.Vec3 {
	return s.Start.Lerp(s.End, 0.5)
}

func (s Segment) PointAt(t float32) math.Vec3 {
	return s.Start.Lerp(s.End, t)
}

// Ray returns the ray starting at Start pointing toward End.
func (s Segment) Ray() Ray {
	return RayFromPoints(s.Start, s.End)
}

// Project returns the clamped parameter of the projection of pt onto the
// segment and which part of the segment that parameter falls in.
func (s Segment) Project(pt math.Vec3) (float32, SegmentPart) {
	v := s.Vector()
	lenSqr := v.LengthSqr()
	if lenSqr == 0 {
		return 0, SegmentStart
	}
	t := pt.Sub(s.Start).Dot(v) / lenSqr
	switch {
	case t <= 0:
		return 0, SegmentStart
	case t >= 1:
		return 1, SegmentEnd
	}
	return t, SegmentMiddle
}

func (s Segment) ClosestPoint(pt math.Vec3) math.Vec3 {
	return ClosestPointOnSegment(s, pt)
}

func (s Segment) DistanceToPoint(pt math.Vec3) float32 {
	return SegmentDistanceToPoint(s, pt)
}

// ClosestPoints returns the closest pair of points between s and other.
func (s Segment) ClosestPoints(other Segment) (onS, onOther math.Vec3) {
	return ClosestPointsSegmentSegment(s, other)
}

func (s Segment) DistanceToSegment(other Segment) float32 {
	a, b := ClosestPointsSegmentSegment(s, other)
	return a.Distance(b)
}

// IntersectsAABB returns the world-space entry and exit points of the segment
// through b.
func (s Segment) IntersectsAABB(b AABB) (enter, exit math.Vec3, ok bool) {
	return SegmentIntersectsAABB(s, b)
}

func (s Segment) IntersectsPlane(p Plane) (math.Vec3, bool) {
	return SegmentIntersectsPlane(s, p)
}

func (s Segment) IntersectsSphere(sp Sphere) bool {
	return SegmentIntersectsSphere(s, sp)
}

func (s Segment) Transform(m math.Mat4) Segment {
	return Segment{Start: m.TransformPoint(s.Start), End: m.TransformPoint(s.End)}
}
