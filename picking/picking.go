// Package picking finds the closest shape under a ray: a broad phase against
// world bounds followed by an exact narrow phase per shape.
package picking

import (
	stdmath "math"
	"sort"

	"freak-engine/camera"
	"freak-engine/geom"
	"freak-engine/math"
)

// Shape is anything a ray can be tested against. geom.Sphere, geom.AABB,
// geom.Box, geom.Capsule, geom.Triangle and *Mesh all satisfy it.
type Shape interface {
	Bounds() geom.AABB
	IntersectsRay(r geom.Ray) (float32, bool)
}

var (
	_ Shape = geom.Sphere{}
	_ Shape = geom.AABB{}
	_ Shape = geom.Box{}
	_ Shape = geom.Capsule{}
	_ Shape = geom.Triangle{}
	_ Shape = (*Mesh)(nil)
)

// Target pairs a caller-chosen identifier with a shape.
type Target struct {
	ID    int
	Shape Shape
}

// empty reports a target without a shape, including a nil *Mesh.
func (t Target) empty() bool {
	if t.Shape == nil {
		return true
	}
	m, ok := t.Shape.(*Mesh)
	return ok && m == nil
}

// HitResult stores the result of a ray test. FaceIdx is the triangle index for
// mesh hits and -1 otherwise.
type HitResult struct {
	Hit      bool
	ID       int
	Distance float32
	Point    math.Vec3
	Normal   math.Vec3
	FaceIdx  int
}

func miss() HitResult {
	return HitResult{Distance: float32(stdmath.MaxFloat32), FaceIdx: -1}
}

// Raycast tests the ray against every target and returns the closest hit.
// Ties keep the earlier target.
func Raycast(ray geom.Ray, targets []Target) HitResult {
	closest := miss()
	for _, target := range targets {
		if target.empty() {
			continue
		}

		// Broad phase: world bounds
		near, hit := ray.IntersectsAABB(target.Shape.Bounds())
		if !hit || near > closest.Distance {
			continue
		}

		// Narrow phase: exact shape
		result := intersect(ray, target)
		if result.Hit && result.Distance < closest.Distance {
			closest = result
		}
	}
	return closest
}

// RaycastAll returns every hit ordered by distance.
func RaycastAll(ray geom.Ray, targets []Target) []HitResult {
	var hits []HitResult
	for _, target := range targets {
		if target.empty() {
			continue
		}
		if _, hit := ray.IntersectsAABB(target.Shape.Bounds()); !hit {
			continue
		}
		if result := intersect(ray, target); result.Hit {
			hits = append(hits, result)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// Pick casts the ray through pixel (x, y) of the camera's viewport.
func Pick(c camera.Camera, x, y, width, height float32, targets []Target) HitResult {
	return Raycast(c.ScreenToRay(x, y, width, height), targets)
}

func intersect(ray geom.Ray, target Target) HitResult {
	if mesh, ok := target.Shape.(*Mesh); ok {
		result := mesh.intersect(ray)
		result.ID = target.ID
		return result
	}

	t, hit := target.Shape.IntersectsRay(ray)
	if !hit {
		return miss()
	}
	point := ray.PointAt(t)
	return HitResult{
		Hit:      true,
		ID:       target.ID,
		Distance: t,
		Point:    point,
		Normal:   surfaceNormal(ray, target.Shape, point, t),
		FaceIdx:  -1,
	}
}

// surfaceNormal returns the outward normal at point. A ray starting inside the
// shape hits at distance zero and gets the reversed ray direction.
func surfaceNormal(ray geom.Ray, shape Shape, point math.Vec3, t float32) math.Vec3 {
	back := ray.Direction.Negate()
	if t <= 0 {
		return back
	}

	var n math.Vec3
	switch s := shape.(type) {
	case geom.Sphere:
		n = point.Sub(s.Center)
	case geom.AABB:
		n = aabbFaceNormal(s, point)
	case geom.Box:
		local := aabbFaceNormal(s.LocalAABB(), s.ToLocal(point))
		n = s.Transform.TransformNormal(local)
	case geom.Capsule:
		n = point.Sub(s.Segment().ClosestPoint(point))
	case geom.Triangle:
		n = facing(s.Normal(), ray.Direction)
	default:
		return back
	}

	n = n.Normalize()
	if n.IsZero() {
		return back
	}
	return n
}

// aabbFaceNormal picks the face whose plane the point lies closest to.
func aabbFaceNormal(b geom.AABB, point math.Vec3) math.Vec3 {
	ext := b.Extents()
	rel := point.Sub(b.Center())
	best, axis := float32(stdmath.MaxFloat32), 0
	for i := 0; i < 3; i++ {
		gap := ext.Component(i) - math.Abs(rel.Component(i))
		if gap < best {
			best, axis = gap, i
		}
	}
	sign := float32(1)
	if rel.Component(axis) < 0 {
		sign = -1
	}
	return math.Vec3Zero.WithComponent(axis, sign)
}

// facing flips n so it points against dir.
func facing(n, dir math.Vec3) math.Vec3 {
	if n.Dot(dir) > 0 {
		return n.Negate()
	}
	return n
}
