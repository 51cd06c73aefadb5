package geom

import (
	"testing"

	"freak-engine/math"
)

func TestAABBContainsCenter(t *testing.T) {
	for _, b := range testBoxes() {
		if !b.ContainsPoint(b.Center()) {
			t.Errorf("ContainsPoint(Center) false for %v", b)
		}
	}
}

func TestAABBFromCenterSizeRoundTrip(t *testing.T) {
	c := v3(1, -2, 3)
	s := v3(4, 5, 6)
	b := AABBFromCenterSize(c, s)
	if !approxVec(b.Center(), c) {
		t.Errorf("Center: expected %v, got %v", c, b.Center())
	}
	if !approxVec(b.Size(), s) {
		t.Errorf("Size: expected %v, got %v", s, b.Size())
	}
}

func TestNewAABBCorrectsOrder(t *testing.T) {
	b := NewAABB(v3(1, 1, 1), v3(0, 2, -1))
	if b.Min != v3(0, 1, -1) || b.Max != v3(1, 2, 1) {
		t.Errorf("NewAABB: expected (0,1,-1)-(1,2,1), got %v-%v", b.Min, b.Max)
	}
	if !b.IsValid() {
		t.Error("NewAABB: result should be valid")
	}
}

func TestAABBIntersectsIsComplementOfDisjoint(t *testing.T) {
	boxes := testBoxes()
	for _, a := range boxes {
		for _, b := range boxes {
			intersects := AABBIntersectsAABB(a, b)
			disjoint := AABBContainsAABB(a, b) == Disjoint
			if intersects == disjoint {
				t.Errorf("%v vs %v: intersects=%v disjoint=%v", a, b, intersects, disjoint)
			}
			if intersects != AABBIntersectsAABB(b, a) {
				t.Errorf("%v vs %v: intersection is not symmetric", a, b)
			}
		}
	}
}

func TestAABBContainsAABB(t *testing.T) {
	outer := NewAABB(v3(0, 0, 0), v3(10, 10, 10))
	if got := outer.ContainsAABB(NewAABB(v3(1, 1, 1), v3(2, 2, 2))); got != Contains {
		t.Errorf("inner: expected Contains, got %v", got)
	}
	if got := outer.ContainsAABB(NewAABB(v3(9, 9, 9), v3(11, 11, 11))); got != Intersects {
		t.Errorf("straddling: expected Intersects, got %v", got)
	}
	if got := outer.ContainsAABB(NewAABB(v3(11, 0, 0), v3(12, 1, 1))); got != Disjoint {
		t.Errorf("outside: expected Disjoint, got %v", got)
	}
}

func TestAABBContainsSphere(t *testing.T) {
	b := NewAABB(v3(0, 0, 0), v3(10, 10, 10))

	if got := b.ContainsSphere(NewSphere(v3(5, 5, 5), 1)); got != Contains {
		t.Errorf("centered: expected Contains, got %v", got)
	}
	if got := b.ContainsSphere(NewSphere(v3(9.5, 5, 5), 1)); got != Intersects {
		t.Errorf("crossing face: expected Intersects, got %v", got)
	}
	if got := b.ContainsSphere(NewSphere(v3(12, 5, 5), 1)); got != Disjoint {
		t.Errorf("beyond face: expected Disjoint, got %v", got)
	}
	// Near a corner the per-axis gaps add up past the radius.
	if got := b.ContainsSphere(NewSphere(v3(10.8, 10.8, 10.8), 1)); got != Disjoint {
		t.Errorf("beyond corner: expected Disjoint, got %v", got)
	}
	if got := b.ContainsSphere(NewSphere(v3(10.5, 10.5, 10), 1)); got != Intersects {
		t.Errorf("touching edge: expected Intersects, got %v", got)
	}
}

func TestAABBDistance(t *testing.T) {
	a := NewAABB(v3(0, 0, 0), v3(1, 1, 1))
	b := NewAABB(v3(2, 2, 2), v3(3, 3, 3))
	if AABBIntersectsAABB(a, b) {
		t.Error("AABBIntersectsAABB: expected false")
	}
	if d := AABBDistanceToAABB(a, b); !approx(d, math.Sqrt(3)) {
		t.Errorf("AABBDistanceToAABB: expected %v, got %v", math.Sqrt(3), d)
	}
	if d := AABBDistanceToAABB(a, NewAABB(v3(0.5, 0.5, 0.5), v3(4, 4, 4))); d != 0 {
		t.Errorf("overlapping: expected 0, got %v", d)
	}
}

func TestAABBCorners(t *testing.T) {
	b := NewAABB(v3(-1, -2, -3), v3(1, 2, 3))
	c := b.Corners()
	expected := map[int]math.Vec3{
		TopBackLeft:      v3(-1, 2, -3),
		TopFrontRight:    v3(1, 2, 3),
		BottomBackRight:  v3(1, -2, -3),
		BottomFrontLeft:  v3(-1, -2, 3),
		BottomFrontRight: v3(1, -2, 3),
	}
	for i, want := range expected {
		if c[i] != want {
			t.Errorf("corner %d: expected %v, got %v", i, want, c[i])
		}
	}
	for i, p := range b.Planes() {
		if d := p.Distance(b.Center()); d <= 0 {
			t.Errorf("plane %d: center should be in front, distance %v", i, d)
		}
	}
}

func TestAABBClosestPoint(t *testing.T) {
	b := NewAABB(v3(0, 0, 0), v3(4, 4, 4))

	if got := b.ClosestPoint(v3(6, 2, -1), false); got != v3(4, 2, 0) {
		t.Errorf("outside: expected (4,2,0), got %v", got)
	}
	inside := v3(1, 2, 3.5)
	if got := b.ClosestPoint(inside, false); got != inside {
		t.Errorf("inside without clamp: expected %v, got %v", inside, got)
	}
	if got := b.ClosestPoint(inside, true); got != v3(1, 2, 4) {
		t.Errorf("inside with clamp: expected (1,2,4), got %v", got)
	}
}

func TestAABBTransform(t *testing.T) {
	b := NewAABB(v3(-1, -1, -1), v3(1, 1, 1))
	m := math.Mat4RotationY(math.DegToRad(45)).Mul(math.Mat4Translation(v3(10, 0, 0)))
	got := b.Transform(m)
	r := math.Sqrt(2)
	if !approxVec(got.Min, v3(10-r, -1, -r)) || !approxVec(got.Max, v3(10+r, 1, r)) {
		t.Errorf("Transform: got %v-%v", got.Min, got.Max)
	}
}

func TestAABBContainsTriangle(t *testing.T) {
	b := NewAABB(v3(0, 0, 0), v3(1, 1, 1))
	cases := []struct {
		name string
		tri  Triangle
		want Containment
	}{
		{"inside", NewTriangle(v3(0.1, 0.1, 0.1), v3(0.9, 0.1, 0.1), v3(0.1, 0.9, 0.1)), Contains},
		{"crossing", NewTriangle(v3(-1, 0.5, 0.5), v3(2, 0.5, 0.5), v3(0.5, 2, 0.5)), Intersects},
		{"large cutting face", NewTriangle(v3(-10, -10, 0.5), v3(10, -10, 0.5), v3(0, 10, 0.5)), Intersects},
		{"far away", NewTriangle(v3(5, 5, 5), v3(6, 5, 5), v3(5, 6, 5)), Disjoint},
		// Bounds overlap but the diagonal plane misses the box corner.
		{"corner miss", NewTriangle(v3(2.5, 0, 0), v3(0, 2.5, 0), v3(0, 0, 2.5)).Translated(v3(0.5, 0.5, 0.5)), Disjoint},
	}
	for _, tc := range cases {
		if got := b.ContainsTriangle(tc.tri); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestAABBContainsCapsuleAndBox(t *testing.T) {
	b := NewAABB(v3(0, 0, 0), v3(10, 10, 10))
	c := NewCapsule(v3(5, 5, 5), math.Vec3Up, 1, 2)
	if got := b.ContainsCapsule(c); got != Contains {
		t.Errorf("capsule inside: expected Contains, got %v", got)
	}
	if got := b.ContainsCapsule(c.WithCenter(v3(5, 11.5, 5))); got != Intersects {
		t.Errorf("capsule poking out: expected Intersects, got %v", got)
	}
	if got := b.ContainsCapsule(c.WithCenter(v3(5, 20, 5))); got != Disjoint {
		t.Errorf("capsule above: expected Disjoint, got %v", got)
	}

	rot := math.Mat4RotationZ(math.DegToRad(45))
	inner := NewBox(math.Vec3Zero, v3(2, 2, 2), rot.Mul(math.Mat4Translation(v3(5, 5, 5))))
	if got := b.ContainsBox(inner); got != Contains {
		t.Errorf("rotated box inside: expected Contains, got %v", got)
	}
	far := NewBox(math.Vec3Zero, v3(2, 2, 2), rot.Mul(math.Mat4Translation(v3(20, 5, 5))))
	if got := b.ContainsBox(far); got != Disjoint {
		t.Errorf("rotated box outside: expected Disjoint, got %v", got)
	}
	edge := NewBox(math.Vec3Zero, v3(2, 2, 2), rot.Mul(math.Mat4Translation(v3(10, 5, 5))))
	if got := b.ContainsBox(edge); got != Intersects {
		t.Errorf("rotated box on face: expected Intersects, got %v", got)
	}
}

func BenchmarkAABBContainsSphere(b *testing.B) {
	box := NewAABB(v3(0, 0, 0), v3(10, 10, 10))
	s := NewSphere(v3(9.5, 5, 5), 1)
	for i := 0; i < b.N; i++ {
		AABBContainsSphere(box, s)
	}
}
