package geom

import (
	"image"
	"testing"

	"freak-engine/math"
)

func v2(x, y float32) math.Vec2 {
	return math.NewVec2(x, y)
}

func TestBoundingRectangleFNormalized(t *testing.T) {
	r := NewBoundingRectangleF(10, 20, -4, 6)
	if r.Min() != v2(6, 20) || r.Max() != v2(10, 26) {
		t.Errorf("Normalized: expected (6,20)-(10,26), got %v-%v", r.Min(), r.Max())
	}
	if r.Width() != 4 || r.Height() != 6 || r.Area() != 24 {
		t.Errorf("size: got %vx%v area %v", r.Width(), r.Height(), r.Area())
	}
}

func TestBoundingRectangleFOrigin(t *testing.T) {
	r := NewBoundingRectangleF(0, 0, 10, 4).WithOriginPercentage(v2(0.5, 0.5))
	if r.Translation != v2(5, 2) {
		t.Errorf("Translation: expected (5,2), got %v", r.Translation)
	}
	if r.Min() != v2(0, 0) || r.Center() != v2(5, 2) {
		t.Errorf("moving the origin moved the rectangle: min %v center %v", r.Min(), r.Center())
	}
	moved := r.Translated(v2(1, 1))
	if moved.BottomLeft() != v2(1, 1) || moved.TopRight() != v2(11, 5) {
		t.Errorf("Translated: got %v-%v", moved.BottomLeft(), moved.TopRight())
	}
	if moved.TopLeft() != v2(1, 5) || moved.BottomRight() != v2(11, 1) {
		t.Errorf("corners: got TL %v BR %v", moved.TopLeft(), moved.BottomRight())
	}
}

func TestBoundingRectangleFQueries(t *testing.T) {
	r := NewBoundingRectangleF(0, 0, 10, 4)

	if !r.ContainsPoint(v2(10, 4)) || r.ContainsPoint(v2(10.1, 0)) {
		t.Error("ContainsPoint: edges are inclusive, outside is not")
	}
	cases := []struct {
		other BoundingRectangleF
		want  Containment
	}{
		{NewBoundingRectangleF(1, 1, 2, 2), Contains},
		{NewBoundingRectangleF(8, 2, 5, 5), Intersects},
		{NewBoundingRectangleF(20, 20, 1, 1), Disjoint},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.other); got != tc.want {
			t.Errorf("Contains %v: expected %v, got %v", tc.other, tc.want, got)
		}
		if r.Intersects(tc.other) != (tc.want != Disjoint) {
			t.Errorf("Intersects %v disagrees with Contains", tc.other)
		}
	}

	i, ok := r.Intersection(NewBoundingRectangleF(8, 2, 5, 5))
	if !ok || i.Min() != v2(8, 2) || i.Max() != v2(10, 4) {
		t.Errorf("Intersection: got %v-%v (%v)", i.Min(), i.Max(), ok)
	}
	if _, ok := r.Intersection(NewBoundingRectangleF(20, 20, 1, 1)); ok {
		t.Error("Intersection of disjoint rectangles: expected false")
	}
	u := r.Union(NewBoundingRectangleF(8, 2, 5, 5))
	if u.Min() != v2(0, 0) || u.Max() != v2(13, 7) {
		t.Errorf("Union: got %v-%v", u.Min(), u.Max())
	}
	if e := r.ExpandToInclude(v2(-2, 1)); e.Min() != v2(-2, 0) || e.Max() != v2(10, 4) {
		t.Errorf("ExpandToInclude: got %v-%v", e.Min(), e.Max())
	}

	if got := r.ClosestPoint(v2(12, 2), false); got != v2(10, 2) {
		t.Errorf("ClosestPoint outside: got %v", got)
	}
	if got := r.ClosestPoint(v2(9, 2), false); got != v2(9, 2) {
		t.Errorf("ClosestPoint inside: got %v", got)
	}
	if got := r.ClosestPoint(v2(9, 2), true); got != v2(10, 2) {
		t.Errorf("ClosestPoint clamped: got %v", got)
	}
}

func TestBoundingRectangle(t *testing.T) {
	r := NewBoundingRectangle(0, 0, 10, 4)
	if r.ToRectangle() != image.Rect(0, 0, 10, 4) {
		t.Errorf("ToRectangle: got %v", r.ToRectangle())
	}
	if !r.ContainsPoint(image.Pt(9, 3)) || r.ContainsPoint(image.Pt(10, 0)) {
		t.Error("ContainsPoint: expected half-open bounds")
	}

	fromImage := BoundingRectangleFromImage(image.Rect(5, 5, 1, 1))
	if fromImage.Min() != image.Pt(1, 1) || fromImage.Width() != 4 || fromImage.Area() != 16 {
		t.Errorf("BoundingRectangleFromImage: got %v size %d", fromImage.Min(), fromImage.Width())
	}

	flipped := NewBoundingRectangle(10, 10, -5, -5)
	if flipped.Min() != image.Pt(5, 5) || flipped.Max() != image.Pt(10, 10) {
		t.Errorf("Normalized: got %v-%v", flipped.Min(), flipped.Max())
	}

	if got := r.Contains(NewBoundingRectangle(2, 1, 3, 2)); got != Contains {
		t.Errorf("Contains inner: got %v", got)
	}
	if got := r.Contains(NewBoundingRectangle(8, 2, 5, 5)); got != Intersects {
		t.Errorf("Contains crossing: got %v", got)
	}
	// Half-open rectangles sharing an edge do not overlap.
	if r.Intersects(NewBoundingRectangle(10, 0, 5, 5)) {
		t.Error("Intersects: touching rectangles should not overlap")
	}
	i, ok := r.Intersection(NewBoundingRectangle(8, 2, 5, 5))
	if !ok || i.ToRectangle() != image.Rect(8, 2, 10, 4) {
		t.Errorf("Intersection: got %v (%v)", i.ToRectangle(), ok)
	}
	if u := r.Union(NewBoundingRectangle(8, 2, 5, 5)); u.ToRectangle() != image.Rect(0, 0, 13, 7) {
		t.Errorf("Union: got %v", u.ToRectangle())
	}

	centered := r
	centered.LocalOriginPercentage = v2(0.5, 0.5)
	if centered.LocalOrigin() != image.Pt(5, 2) {
		t.Errorf("LocalOrigin: got %v", centered.LocalOrigin())
	}
	if f := r.ToF(); f.Center() != v2(5, 2) {
		t.Errorf("ToF center: got %v", f.Center())
	}
}
