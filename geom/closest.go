package geom

import "freak-engine/math"

// ClosestPointOnTriangle returns the point of t nearest to p. It classifies p
// into one of the seven Voronoi regions of the triangle (three vertices, three
// edges, the face) instead of projecting onto the plane, so it is correct for
// obtuse triangles and for points away from the plane. A degenerate triangle
// resolves to its nearest vertex or edge.
func ClosestPointOnTriangle(t Triangle, p math.Vec3) math.Vec3 {
	a, b, c := t.A, t.B, t.C
	ab := b.Sub(a)
	ac := c.Sub(a)

	// Vertex region A
	ap := p.Sub(a)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	// Vertex region B
	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	// Edge region AB
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return a.Add(ab.Mul(v))
	}

	// Vertex region C
	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	// Edge region AC
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return a.Add(ac.Mul(w))
	}

	// Edge region BC
	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Mul(w))
	}

	// Face region
	sum := va + vb + vc
	if sum == 0 {
		return closestPointOnTriangleEdges(t, p)
	}
	denom := 1 / sum
	v := vb * denom
	w := vc * denom
	return a.Add(ab.Mul(v)).Add(ac.Mul(w))
}

func closestPointOnTriangleEdges(t Triangle, p math.Vec3) math.Vec3 {
	best := ClosestPointOnSegment(Segment{t.A, t.B}, p)
	for _, s := range []Segment{{t.B, t.C}, {t.C, t.A}} {
		if q := ClosestPointOnSegment(s, p); q.DistanceSqr(p) < best.DistanceSqr(p) {
			best = q
		}
	}
	return best
}

// ClosestPointOnPlane projects p along the plane normal.
func ClosestPointOnPlane(plane Plane, p math.Vec3) math.Vec3 {
	return p.Sub(plane.Normal.Mul(plane.Distance(p)))
}

// ClosestPointOnAABB clamps p into the box; interior points are returned unchanged.
func ClosestPointOnAABB(b AABB, p math.Vec3) math.Vec3 {
	return p.Clamp(b.Min, b.Max)
}

// ClosestPointOnSphere returns the surface point in the direction of p. When p
// is the center the direction is undefined and the center itself is returned.
func ClosestPointOnSphere(s Sphere, p math.Vec3) math.Vec3 {
	return s.Center.Add(p.Sub(s.Center).Normalize().Mul(s.Radius))
}

func ClosestPointOnSegment(s Segment, p math.Vec3) math.Vec3 {
	t, _ := s.Project(p)
	return s.PointAt(t)
}

func ClosestPointOnRay(r Ray, p math.Vec3) math.Vec3 {
	t := p.Sub(r.Start).Dot(r.Direction)
	if t <= 0 {
		return r.Start
	}
	return r.PointAt(t)
}

// ClosestPointsSegmentSegment returns the closest pair of points between two
// segments, handling degenerate (point-like) and parallel segments.
func ClosestPointsSegmentSegment(s1, s2 Segment) (math.Vec3, math.Vec3) {
	d1 := s1.Vector()
	d2 := s2.Vector()
	r := s1.Start.Sub(s2.Start)
	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float32
	switch {
	case a <= math.Epsilon && e <= math.Epsilon:
		return s1.Start, s2.Start
	case a <= math.Epsilon:
		t = math.Clamp(f/e, 0, 1)
	default:
		c := d1.Dot(r)
		if e <= math.Epsilon {
			s = math.Clamp(-c/a, 0, 1)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom != 0 {
				s = math.Clamp((b*f-c*e)/denom, 0, 1)
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = math.Clamp(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = math.Clamp((b-c)/a, 0, 1)
			}
		}
	}
	return s1.PointAt(s), s2.PointAt(t)
}
