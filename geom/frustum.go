package geom

import "freak-engine/math"

// Plane indices of a Frustum.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum is a convex volume bounded by six planes whose normals point inward.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

func NewFrustum(left, right, bottom, top, near, far Plane) Frustum {
	return Frustum{Planes: [6]Plane{left, right, bottom, top, near, far}}
}

// FrustumFromMatrix extracts the six planes from a view-projection matrix
// (Gribb/Hartmann). Mat4 acts on row vectors, so the clip-space rows of the
// textbook derivation are the columns vp[0..3][i] here. The planes are
// normalized, so Distance returns true world-space distances.
func FrustumFromMatrix(vp math.Mat4) Frustum {
	col := func(i int) math.Vec4 {
		return math.Vec4{X: vp[0][i], Y: vp[1][i], Z: vp[2][i], W: vp[3][i]}
	}
	r0, r1, r2, r3 := col(0), col(1), col(2), col(3)

	plane := func(v math.Vec4) Plane {
		return NewPlane(math.Vec3{X: v.X, Y: v.Y, Z: v.Z}, v.W)
	}

	var f Frustum
	f.Planes[PlaneLeft] = plane(r3.Add(r0))
	f.Planes[PlaneRight] = plane(r3.Sub(r0))
	f.Planes[PlaneBottom] = plane(r3.Add(r1))
	f.Planes[PlaneTop] = plane(r3.Sub(r1))
	f.Planes[PlaneNear] = plane(r3.Add(r2))
	f.Planes[PlaneFar] = plane(r3.Sub(r2))
	return f
}

func (f Frustum) Left() Plane   { return f.Planes[PlaneLeft] }
func (f Frustum) Right() Plane  { return f.Planes[PlaneRight] }
func (f Frustum) Bottom() Plane { return f.Planes[PlaneBottom] }
func (f Frustum) Top() Plane    { return f.Planes[PlaneTop] }
func (f Frustum) Near() Plane   { return f.Planes[PlaneNear] }
func (f Frustum) Far() Plane    { return f.Planes[PlaneFar] }

// Corners intersects plane triples and returns the corners in the AABB corner
// order, with far as back and near as front. Degenerate plane sets leave the
// affected corners at the origin and report false.
func (f Frustum) Corners() ([8]math.Vec3, bool) {
	l, r, b, t, n, fa := f.Left(), f.Right(), f.Bottom(), f.Top(), f.Near(), f.Far()
	triples := [8][3]Plane{
		TopBackLeft:      {t, fa, l},
		TopBackRight:     {t, fa, r},
		TopFrontLeft:     {t, n, l},
		TopFrontRight:    {t, n, r},
		BottomBackLeft:   {b, fa, l},
		BottomBackRight:  {b, fa, r},
		BottomFrontLeft:  {b, n, l},
		BottomFrontRight: {b, n, r},
	}
	var corners [8]math.Vec3
	all := true
	for i, tr := range triples {
		p, ok := ThreePlaneIntersection(tr[0], tr[1], tr[2])
		if !ok {
			all = false
			continue
		}
		corners[i] = p
	}
	return corners, all
}

// Bounds returns the AABB of the eight corners.
func (f Frustum) Bounds() AABB {
	corners, _ := f.Corners()
	return AABBFromPoints(corners[:]...)
}

// BoundingSphere returns a sphere around the corner centroid enclosing every corner.
func (f Frustum) BoundingSphere() Sphere {
	corners, _ := f.Corners()
	var center math.Vec3
	for _, c := range corners {
		center = center.Add(c)
	}
	center = center.Div(8)
	var radius float32
	for _, c := range corners {
		radius = math.Max(radius, center.Distance(c))
	}
	return Sphere{Center: center, Radius: radius}
}

func (f Frustum) ContainsPoint(pt math.Vec3) bool {
	for _, p := range f.Planes {
		if p.Distance(pt) < 0 {
			return false
		}
	}
	return true
}

// IntersectsAABB is the n-vertex culling test: for each plane only the corner
// furthest along the normal is checked. It never rejects a visible box but may
// accept a box near a frustum edge that is actually outside.
func (f Frustum) IntersectsAABB(box AABB) bool {
	for _, p := range f.Planes {
		positive, _ := box.ExtremeCorners(p.Normal)
		if p.Distance(positive) < 0 {
			return false
		}
	}
	return true
}

func (f Frustum) IntersectsSphere(s Sphere) bool {
	return FrustumContainsSphere(f, s) != Disjoint
}

func (f Frustum) ContainsAABB(box AABB) Containment {
	return FrustumContainsAABB(f, box)
}

func (f Frustum) ContainsSphere(s Sphere) Containment {
	return FrustumContainsSphere(f, s)
}

func (f Frustum) ContainsBox(b Box) Containment {
	return FrustumContainsBox(f, b)
}

// Slice returns the sub-frustum between startDepth and endDepth, both measured
// from the near plane along its normal. The side planes are shared unchanged.
func (f Frustum) Slice(startDepth, endDepth float32) Frustum {
	near := f.Near()
	out := f
	out.Planes[PlaneNear] = near.Offset(startDepth)
	out.Planes[PlaneFar] = near.Offset(endDepth).Flipped()
	return out
}

// Transform maps every plane by m.
func (f Frustum) Transform(m math.Mat4) Frustum {
	var out Frustum
	for i, p := range f.Planes {
		out.Planes[i] = p.Transform(m)
	}
	return out
}
