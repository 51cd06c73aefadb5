package geom

import (
	"testing"

	"freak-engine/math"
)

func TestClosestPointOnTriangleEdge(t *testing.T) {
	tri := NewTriangle(v3(0, 0, 0), v3(1, 0, 0), v3(0, 1, 0))
	got := tri.ClosestPoint(v3(0.5, 0.5, 1))
	if !approxVec(got, v3(0.5, 0.5, 0)) {
		t.Errorf("ClosestPoint: expected (0.5,0.5,0), got %v", got)
	}
	if !approx(got.X+got.Y, 1) || got.Z != 0 {
		t.Errorf("ClosestPoint: %v is not on edge BC", got)
	}
}

func TestClosestPointOnTriangleRegions(t *testing.T) {
	tri := NewTriangle(v3(0, 0, 0), v3(1, 0, 0), v3(0, 1, 0))
	cases := []struct {
		name string
		p    math.Vec3
		want math.Vec3
	}{
		{"vertex A", v3(-1, -1, 0), v3(0, 0, 0)},
		{"vertex B", v3(2, -0.5, 0), v3(1, 0, 0)},
		{"vertex C", v3(-0.2, 3, 2), v3(0, 1, 0)},
		{"edge AB", v3(0.4, -2, 0), v3(0.4, 0, 0)},
		{"edge AC", v3(-1, 0.5, 0), v3(0, 0.5, 0)},
		{"face", v3(0.2, 0.2, 3), v3(0.2, 0.2, 0)},
	}
	for _, tc := range cases {
		if got := ClosestPointOnTriangle(tri, tc.p); !approxVec(got, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

// An obtuse triangle is where projecting onto the plane and clamping fails.
func TestClosestPointOnObtuseTriangle(t *testing.T) {
	tri := NewTriangle(v3(0, 0, 0), v3(4, 0, 0), v3(0.5, 0.3, 0))
	queries := []math.Vec3{v3(2, 2, 0), v3(-1, 1, 1), v3(5, 1, -1), v3(0.5, 0.1, 0.5), v3(2, -1, 0)}
	for _, q := range queries {
		got := ClosestPointOnTriangle(tri, q)
		best := got.Distance(q)
		for i := 0; i <= 40; i++ {
			for j := 0; i+j <= 40; j++ {
				u, v := float32(i)/40, float32(j)/40
				s := tri.A.Mul(1 - u - v).Add(tri.B.Mul(u)).Add(tri.C.Mul(v))
				if d := s.Distance(q); d < best-tolerance {
					t.Errorf("query %v: sample %v at %v beats %v at %v", q, s, d, got, best)
				}
			}
		}
	}
}

func TestClosestPointOnDegenerateTriangle(t *testing.T) {
	tri := NewTriangle(v3(0, 0, 0), v3(1, 0, 0), v3(2, 0, 0))
	if !tri.IsDegenerate() {
		t.Error("IsDegenerate: expected true")
	}
	if got := ClosestPointOnTriangle(tri, v3(1, 1, 0)); !approxVec(got, v3(1, 0, 0)) {
		t.Errorf("collinear: expected (1,0,0), got %v", got)
	}
}

func TestTriangleBarycentric(t *testing.T) {
	tri := NewTriangle(v3(0, 0, 0), v3(2, 0, 0), v3(0, 2, 0))
	u, v, w, ok := tri.Barycentric(v3(0.5, 1, 0))
	if !ok || !approx(u, 0.25) || !approx(v, 0.25) || !approx(w, 0.5) {
		t.Errorf("Barycentric: got (%v,%v,%v) %v", u, v, w, ok)
	}
	if !tri.ContainsPoint(v3(0.5, 1, 0), tolerance) {
		t.Error("ContainsPoint: expected true")
	}
	if tri.ContainsPoint(v3(0.5, 1, 0.5), tolerance) {
		t.Error("ContainsPoint off plane: expected false")
	}
	if tri.ContainsPoint(v3(2, 2, 0), tolerance) {
		t.Error("ContainsPoint outside: expected false")
	}
	if !approxVec(tri.Normal(), math.Vec3Front) || !approx(tri.Area(), 2) {
		t.Errorf("Normal/Area: got %v %v", tri.Normal(), tri.Area())
	}
}

func area(tris []Triangle) float32 {
	var a float32
	for _, t := range tris {
		a += t.Area()
	}
	return a
}

func TestSplitTriangleAcross(t *testing.T) {
	tri := NewTriangle(v3(0, 0, 0), v3(1, 0, 0), v3(0, 1, 0))
	p := PlaneFromPointNormal(v3(0.5, 0, 0), math.Vec3Right)
	split := SplitTriangle(p, tri)

	if split.FrontCount != 1 || split.BackCount != 2 {
		t.Fatalf("counts: expected 1 front and 2 back, got %d and %d", split.FrontCount, split.BackCount)
	}
	if a := area(split.FrontTriangles()); !approx(a, 0.125) {
		t.Errorf("front area: expected 0.125, got %v", a)
	}
	if a := area(split.BackTriangles()); !approx(a, 0.375) {
		t.Errorf("back area: expected 0.375, got %v", a)
	}
	for _, f := range split.FrontTriangles() {
		for _, v := range []math.Vec3{f.A, f.B, f.C} {
			if p.Distance(v) < -PlaneEpsilon {
				t.Errorf("front piece has vertex %v behind the plane", v)
			}
		}
	}
	for _, b := range append(split.FrontTriangles(), split.BackTriangles()...) {
		if b.Normal().Dot(tri.Normal()) < 0.99 {
			t.Errorf("piece %v lost the winding", b)
		}
	}
}

func TestSplitTriangleThroughVertex(t *testing.T) {
	tri := NewTriangle(v3(0, 1, 0), v3(-1, -1, 0), v3(1, -1, 0))
	split := SplitTriangle(PlaneFromPointNormal(math.Vec3Zero, math.Vec3Right), tri)
	if split.FrontCount != 1 || split.BackCount != 1 {
		t.Fatalf("counts: expected 1 and 1, got %d and %d", split.FrontCount, split.BackCount)
	}
	if a := area(split.FrontTriangles()) + area(split.BackTriangles()); !approx(a, tri.Area()) {
		t.Errorf("total area: expected %v, got %v", tri.Area(), a)
	}
}

func TestSplitTriangleWhole(t *testing.T) {
	tri := NewTriangle(v3(0, 0, 0), v3(1, 0, 0), v3(0, 1, 0))

	front := SplitTriangle(PlaneFromPointNormal(v3(-1, 0, 0), math.Vec3Right), tri)
	if front.FrontCount != 1 || front.BackCount != 0 || front.Front[0] != tri {
		t.Errorf("in front: got %+v", front)
	}
	back := SplitTriangle(PlaneFromPointNormal(v3(2, 0, 0), math.Vec3Right), tri)
	if back.FrontCount != 0 || back.BackCount != 1 {
		t.Errorf("behind: got %+v", back)
	}
	// A vertex inside the epsilon band does not cause a split.
	nearly := SplitTriangle(PlaneFromPointNormal(v3(PlaneEpsilon/2, 0, 0), math.Vec3Left), tri)
	if nearly.FrontCount != 0 || nearly.BackCount != 1 {
		t.Errorf("touching: got %+v", nearly)
	}

	ground := PlaneFromPointNormal(math.Vec3Zero, math.Vec3Front)
	if s := SplitTriangle(ground, tri); s.FrontCount != 1 || s.BackCount != 0 {
		t.Errorf("coplanar facing: got %+v", s)
	}
	if s := SplitTriangle(ground, tri.Flipped()); s.FrontCount != 0 || s.BackCount != 1 {
		t.Errorf("coplanar opposed: got %+v", s)
	}
}

func BenchmarkClosestPointOnTriangle(b *testing.B) {
	tri := NewTriangle(v3(0, 0, 0), v3(1, 0, 0), v3(0, 1, 0))
	p := v3(0.5, 0.5, 1)
	for i := 0; i < b.N; i++ {
		ClosestPointOnTriangle(tri, p)
	}
}
