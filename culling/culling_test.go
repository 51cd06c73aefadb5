package culling

import (
	"reflect"
	"testing"

	"freak-engine/camera"
	"freak-engine/geom"
	"freak-engine/math"
)

func v3(x, y, z float32) math.Vec3 {
	return math.NewVec3(x, y, z)
}

func box(center math.Vec3, size float32) geom.AABB {
	return geom.AABBFromCenterSize(center, v3(size, size, size))
}

// testFrustum looks down -Z from (0,0,5) with near 1 and far 100.
func testFrustum() geom.Frustum {
	c := camera.NewCamera(math.DegToRad(60), 1.5, 1, 100)
	c.Position = v3(0, 0, 5)
	return c.Frustum()
}

func testItems() []Item {
	return []Item{
		{ID: 10, Bounds: box(math.Vec3Zero, 1)},   // inside
		{ID: 11, Bounds: box(v3(0, 0, 20), 1)},    // behind the camera
		{ID: 12, Bounds: box(v3(0, 0, -95), 4)},   // straddles the far plane
		{ID: 13, Bounds: box(v3(500, 0, -10), 1)}, // far to the right
		{ID: 14, Bounds: box(v3(0, 0, -30), 2)},   // inside
	}
}

func TestVisible(t *testing.T) {
	f := testFrustum()
	want := []bool{true, false, true, false, true}
	for i, item := range testItems() {
		if got := Visible(f, item.Bounds); got != want[i] {
			t.Errorf("item %d: expected visible=%v, got %v", item.ID, want[i], got)
		}
	}
}

// edgeFrustum looks down -Z from the origin with a 90 degree field of view,
// so the side planes are x = ±z and y = ±z.
func edgeFrustum() geom.Frustum {
	return camera.NewCamera(math.DegToRad(90), 1, 1, 10).Frustum()
}

func edgeItems() []Item {
	return []Item{
		{ID: 20, Bounds: box(v3(0, 0, -5), 1)},
		// Passes every plane's corner test but lies past the right side.
		{ID: 21, Bounds: geom.NewAABB(v3(10.5, -1, -20), v3(11, 1, -9))},
		// Straddles the right plane.
		{ID: 22, Bounds: geom.NewAABB(v3(4, -1, -5.5), v3(6, 1, -4.5))},
	}
}

func TestVisibleNearEdges(t *testing.T) {
	f := edgeFrustum()
	want := []bool{true, false, true}
	for i, item := range edgeItems() {
		if got := Visible(f, item.Bounds); got != want[i] {
			t.Errorf("item %d: expected visible=%v, got %v", item.ID, want[i], got)
		}
	}
}

func TestClassify(t *testing.T) {
	got := Classify(testFrustum(), testItems())
	want := []geom.Containment{geom.Contains, geom.Disjoint, geom.Intersects, geom.Disjoint, geom.Contains}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify: expected %v, got %v", want, got)
	}
}

func TestCull(t *testing.T) {
	indices, stats := Cull(testFrustum(), testItems())
	if want := []int{0, 2, 4}; !reflect.DeepEqual(indices, want) {
		t.Errorf("visible indices: expected %v, got %v", want, indices)
	}
	if stats != (Stats{Tested: 5, Visible: 3, Culled: 2}) {
		t.Errorf("stats: got %+v", stats)
	}
	if got := VisibleIndices(testFrustum(), nil); len(got) != 0 {
		t.Errorf("no items: got %v", got)
	}
}

func TestTransformAABB(t *testing.T) {
	local := box(math.Vec3Zero, 2)
	world := math.Mat4RotationY(math.DegToRad(45)).Mul(math.Mat4Translation(v3(10, 0, 0)))
	got := TransformAABB(local, world)

	// A rotated unit cube spans sqrt2 either side of its center in X and Z.
	const r = 1.41421356
	if math.Abs(got.Min.X-(10-r)) > 1e-3 || math.Abs(got.Max.X-(10+r)) > 1e-3 {
		t.Errorf("X span: got %v..%v", got.Min.X, got.Max.X)
	}
	if math.Abs(got.Min.Y+1) > 1e-3 || math.Abs(got.Max.Y-1) > 1e-3 {
		t.Errorf("Y span: got %v..%v", got.Min.Y, got.Max.Y)
	}
}

func TestComputeAABB(t *testing.T) {
	positions := []math.Vec3{v3(0, 0, 0), v3(1, 2, 0), v3(-1, 0, 3)}
	got := ComputeAABB(positions, math.Mat4Translation(v3(0, 1, 0)))
	if got.Min != v3(-1, 1, 0) || got.Max != v3(1, 3, 3) {
		t.Errorf("ComputeAABB: got %v", got)
	}
	if got := ComputeAABB(nil, math.Mat4Identity()); got != (geom.AABB{}) {
		t.Errorf("empty positions: got %v", got)
	}

	// The exact box is never larger than the transformed local box.
	world := math.Mat4RotationZ(0.7)
	exact := ComputeAABB(positions, world)
	loose := TransformAABB(geom.AABBFromPoints(positions...), world)
	if loose.ContainsAABB(exact) != geom.Contains {
		t.Errorf("transformed local box %v should contain exact box %v", loose, exact)
	}
}

func TestIndexQueryMatchesLinear(t *testing.T) {
	f := testFrustum()
	items := testItems()
	idx := NewIndex(items...)
	if idx.Len() != len(items) {
		t.Fatalf("Len: expected %d, got %d", len(items), idx.Len())
	}

	var want []int
	for _, i := range VisibleIndices(f, items) {
		want = append(want, items[i].ID)
	}
	if got := idx.Query(f); !reflect.DeepEqual(got, want) {
		t.Errorf("Query: expected %v, got %v", want, got)
	}
}

func TestIndexQueryMatchesLinearNearEdges(t *testing.T) {
	f := edgeFrustum()
	items := append(edgeItems(), testItems()...)
	var want []int
	for _, i := range VisibleIndices(f, items) {
		want = append(want, items[i].ID)
	}
	if !reflect.DeepEqual(want, []int{20, 22}) {
		t.Fatalf("VisibleIndices: expected IDs [20 22], got %v", want)
	}
	if got := NewIndex(items...).Query(f); !reflect.DeepEqual(got, want) {
		t.Errorf("Query: expected %v, got %v", want, got)
	}
}

func TestIndexInsertRemove(t *testing.T) {
	f := testFrustum()
	idx := NewIndex(testItems()...)

	// Moving item 11 in front of the camera replaces its old bounds.
	idx.Insert(Item{ID: 11, Bounds: box(v3(1, 0, -5), 1)})
	if idx.Len() != 5 {
		t.Errorf("re-insert should replace, Len = %d", idx.Len())
	}
	if got, want := idx.Query(f), []int{10, 11, 12, 14}; !reflect.DeepEqual(got, want) {
		t.Errorf("after move: expected %v, got %v", want, got)
	}

	if !idx.Remove(10) {
		t.Error("Remove should report a present item")
	}
	if idx.Remove(10) {
		t.Error("second Remove should report false")
	}
	if got, want := idx.Query(f), []int{11, 12, 14}; !reflect.DeepEqual(got, want) {
		t.Errorf("after remove: expected %v, got %v", want, got)
	}
}

func TestIndexQueryAABB(t *testing.T) {
	idx := NewIndex(
		Item{ID: 1, Bounds: box(math.Vec3Zero, 2)},
		Item{ID: 2, Bounds: box(v3(5, 0, 0), 2)},
		// Flat boxes are still indexed.
		Item{ID: 3, Bounds: geom.NewAABB(v3(-1, 3, -1), v3(1, 3, 1))},
	)
	if got, want := idx.QueryAABB(box(v3(0.5, 0.5, 0), 1)), []int{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("QueryAABB near origin: expected %v, got %v", want, got)
	}
	if got, want := idx.QueryAABB(geom.NewAABB(v3(-2, -2, -2), v3(6, 4, 2))), []int{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("QueryAABB wide: expected %v, got %v", want, got)
	}
}

func TestIndexQueryAABBTouching(t *testing.T) {
	idx := NewIndex(
		Item{ID: 1, Bounds: geom.NewAABB(v3(-1, -1, -1), v3(1, 1, 1))},
		Item{ID: 2, Bounds: geom.NewAABB(v3(99, 0, 0), v3(100, 1, 1))},
	)
	if got, want := idx.QueryAABB(geom.NewAABB(v3(1, -1, -1), v3(2, 1, 1))), []int{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("face-touching query: expected %v, got %v", want, got)
	}
	if got, want := idx.QueryAABB(geom.NewAABB(v3(100, 0, 0), v3(101, 1, 1))), []int{2}; !reflect.DeepEqual(got, want) {
		t.Errorf("face-touching query far from the origin: expected %v, got %v", want, got)
	}
	if got := idx.QueryAABB(geom.NewAABB(v3(1.01, -1, -1), v3(2, 1, 1))); len(got) != 0 {
		t.Errorf("separated query: expected no items, got %v", got)
	}
}

func BenchmarkVisible(b *testing.B) {
	f := testFrustum()
	items := testItems()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Visible(f, items[i%len(items)].Bounds)
	}
}
