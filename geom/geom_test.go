package geom

import (
	stdmath "math"
	"testing"

	"freak-engine/math"
)

const tolerance = 1e-3

func approx(a, b float32) bool {
	return stdmath.Abs(float64(a-b)) <= tolerance
}

func approxVec(a, b math.Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func v3(x, y, z float32) math.Vec3 {
	return math.NewVec3(x, y, z)
}

// testBoxes is a small grid of boxes used by the property tests.
func testBoxes() []AABB {
	var boxes []AABB
	for _, c := range []math.Vec3{v3(0, 0, 0), v3(1.5, 0, 0), v3(-2, 3, 1), v3(0.5, 0.5, 0.5), v3(10, 10, 10)} {
		for _, s := range []math.Vec3{v3(1, 1, 1), v3(2, 0.5, 4), v3(0.1, 3, 0.1), v3(6, 6, 6)} {
			boxes = append(boxes, AABBFromCenterSize(c, s))
		}
	}
	return boxes
}

func TestContainmentString(t *testing.T) {
	cases := map[Containment]string{Disjoint: "Disjoint", Intersects: "Intersects", Contains: "Contains"}
	for c, want := range cases {
		if c.String() != want {
			t.Errorf("String: expected %q, got %q", want, c.String())
		}
	}
	if Disjoint.Overlaps() || !Intersects.Overlaps() || !Contains.Overlaps() {
		t.Error("Overlaps: only Disjoint should report no overlap")
	}
}
