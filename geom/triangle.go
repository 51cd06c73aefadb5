package geom

import "freak-engine/math"

// Triangle is defined by its vertices in counter-clockwise order when seen from
// the front. Coincident or collinear vertices are allowed; Normal is then zero.
type Triangle struct {
	A, B, C math.Vec3
}

func NewTriangle(a, b, c math.Vec3) Triangle {
	return Triangle{A: a, B: b, C: c}
}

func (t Triangle) Normal() math.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

func (t Triangle) Area() float32 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length() / 2
}

func (t Triangle) Centroid() math.Vec3 {
	return t.A.Add(t.B).Add(t.C).Div(3)
}

func (t Triangle) Plane() Plane {
	return PlaneFromPoints(t.A, t.B, t.C)
}

func (t Triangle) IsDegenerate() bool {
	return t.Area() < math.Epsilon
}

// Barycentric returns the weights (u, v, w) of pt projected into the plane of t,
// such that u*A + v*B + w*C is that projection. Degenerate triangles return false.
func (t Triangle) Barycentric(pt math.Vec3) (u, v, w float32, ok bool) {
	v0 := t.B.Sub(t.A)
	v1 := t.C.Sub(t.A)
	v2 := pt.Sub(t.A)
	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)
	denom := d00*d11 - d01*d01
	if math.IsZero(denom) {
		return 0, 0, 0, false
	}
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	return 1 - v - w, v, w, true
}

// ContainsPoint reports whether pt lies on the triangle, within tolerance of its plane.
func (t Triangle) ContainsPoint(pt math.Vec3, tolerance float32) bool {
	if math.Abs(t.Plane().Distance(pt)) > tolerance {
		return false
	}
	u, v, w, ok := t.Barycentric(pt)
	return ok && u >= -math.Epsilon && v >= -math.Epsilon && w >= -math.Epsilon
}

func (t Triangle) ClosestPoint(pt math.Vec3) math.Vec3 {
	return ClosestPointOnTriangle(t, pt)
}

func (t Triangle) Bounds() AABB {
	return AABB{Min: t.A.Min(t.B).Min(t.C), Max: t.A.Max(t.B).Max(t.C)}
}

func (t Triangle) Transform(m math.Mat4) Triangle {
	return Triangle{A: m.TransformPoint(t.A), B: m.TransformPoint(t.B), C: m.TransformPoint(t.C)}
}

func (t Triangle) Translated(offset math.Vec3) Triangle {
	return Triangle{A: t.A.Add(offset), B: t.B.Add(offset), C: t.C.Add(offset)}
}

// Flipped reverses the winding and so the normal.
func (t Triangle) Flipped() Triangle {
	return Triangle{A: t.A, B: t.C, C: t.B}
}

func (t Triangle) IntersectsRay(r Ray) (float32, bool) {
	return RayIntersectsTriangle(r, t)
}
