package camera

import (
	stdmath "math"
	"testing"

	"freak-engine/geom"
	"freak-engine/math"
)

const tolerance = 1e-3

func approx(a, b float32) bool {
	return math.Abs(a-b) <= tolerance
}

func approxVec(a, b math.Vec3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func approxMat(a, b math.Mat4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !approx(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}

func testCamera() Camera {
	c := NewCamera(math.DegToRad(60), 1.5, 1, 100)
	c.Position = math.NewVec3(0, 0, 5)
	return c
}

func TestCameraDefaultOrientation(t *testing.T) {
	c := testCamera()
	if !approxVec(c.Forward(), math.NewVec3(0, 0, -1)) {
		t.Errorf("Forward: expected (0,0,-1), got %v", c.Forward())
	}
	if !approxVec(c.Right(), math.Vec3Right) || !approxVec(c.Up(), math.Vec3Up) {
		t.Errorf("Right/Up: got %v / %v", c.Right(), c.Up())
	}

	want := math.Mat4LookAt(c.Position, math.Vec3Zero, math.Vec3Up)
	if !approxMat(c.ViewMatrix(), want) {
		t.Errorf("ViewMatrix:\n%v\nexpected\n%v", c.ViewMatrix(), want)
	}
}

func TestCameraLookAt(t *testing.T) {
	c := testCamera()
	c.Position = math.NewVec3(3, 4, 5)
	c.LookAt(math.Vec3Zero, math.Vec3Up)

	if want := c.Position.Negate().Normalize(); !approxVec(c.Forward(), want) {
		t.Errorf("Forward: expected %v, got %v", want, c.Forward())
	}
	if c.Up().Y <= 0 {
		t.Errorf("Up should keep a positive Y component, got %v", c.Up())
	}
	want := math.Mat4LookAt(c.Position, math.Vec3Zero, math.Vec3Up)
	if !approxMat(c.ViewMatrix(), want) {
		t.Errorf("ViewMatrix:\n%v\nexpected\n%v", c.ViewMatrix(), want)
	}

	// The target sits on the view axis.
	if p := c.ViewMatrix().TransformPoint(math.Vec3Zero); !approxVec(p, math.NewVec3(0, 0, -c.Position.Length())) {
		t.Errorf("target in view space: got %v", p)
	}
}

func TestCameraLookAtStraightDown(t *testing.T) {
	c := testCamera()
	c.Position = math.NewVec3(0, 10, 0)
	c.LookAt(math.Vec3Zero, math.Vec3Up)
	if !approxVec(c.Forward(), math.Vec3Down) {
		t.Errorf("Forward: expected (0,-1,0), got %v", c.Forward())
	}

	before := c.Rotation
	c.LookAt(c.Position, math.Vec3Up)
	if c.Rotation != before {
		t.Error("looking at the camera position should not change the rotation")
	}
}

func TestCameraRotate(t *testing.T) {
	c := testCamera()
	c.Rotate(math.QuaternionFromAxisAngle(math.Vec3Up, float32(stdmath.Pi/2)))
	if !approxVec(c.Forward(), math.NewVec3(-1, 0, 0)) {
		t.Errorf("Forward after yaw: expected (-1,0,0), got %v", c.Forward())
	}

	c.Translate(math.NewVec3(1, 0, 0))
	if !approxVec(c.Position, math.NewVec3(1, 0, 5)) {
		t.Errorf("Translate: got %v", c.Position)
	}
}

func TestCameraUpdateAspectRatio(t *testing.T) {
	c := testCamera()
	c.UpdateAspectRatio(800, 600)
	if !approx(c.AspectRatio, 800.0/600.0) {
		t.Errorf("AspectRatio: got %v", c.AspectRatio)
	}
	c.UpdateAspectRatio(800, 0)
	if !approx(c.AspectRatio, 800.0/600.0) {
		t.Error("zero height should keep the previous aspect ratio")
	}
}

func TestCameraViewProjectionOrder(t *testing.T) {
	c := testCamera()
	vp := c.ViewProjection()

	// A point on the near plane maps to NDC depth -1.
	n := vp.TransformPoint(math.NewVec3(0, 0, 4))
	f := vp.TransformPoint(math.NewVec3(0, 0, -95))
	if !approx(n.Z, -1) || math.Abs(f.Z-1) > 1e-2 {
		t.Errorf("NDC depth: expected -1/1, got %v/%v", n.Z, f.Z)
	}
}

func TestCameraFrustum(t *testing.T) {
	c := testCamera()
	f := c.Frustum()
	if !f.ContainsPoint(math.Vec3Zero) {
		t.Error("origin should be inside the frustum")
	}
	if f.ContainsPoint(math.NewVec3(0, 0, 10)) {
		t.Error("point behind the camera should be outside the frustum")
	}
	if d := f.Near().Distance(math.Vec3Zero); !approx(d, 4) {
		t.Errorf("near plane distance: expected 4, got %v", d)
	}
}

func TestCachedMatricesFollowFieldWrites(t *testing.T) {
	c := testCamera()
	if !approxMat(c.CachedViewProjection(), c.ViewProjection()) {
		t.Error("CachedViewProjection should equal ViewProjection")
	}

	c.Position = math.NewVec3(3, -2, 7)
	c.FarPlane = 40
	if !approxMat(c.CachedViewProjection(), c.ViewProjection()) {
		t.Error("CachedViewProjection is stale after field writes")
	}
	want := c.Frustum()
	got := c.CachedFrustum()
	for i := range want.Planes {
		if !approxVec(got.Planes[i].Normal, want.Planes[i].Normal) || !approx(got.Planes[i].D, want.Planes[i].D) {
			t.Errorf("CachedFrustum plane %d: expected %v, got %v", i, want.Planes[i], got.Planes[i])
		}
	}

	c.LookAt(math.Vec3Zero, math.Vec3Up)
	if !approxMat(c.CachedViewProjection(), c.ViewProjection()) {
		t.Error("CachedViewProjection is stale after LookAt")
	}
}

func TestCascadeFrusta(t *testing.T) {
	c := testCamera()
	cascades := c.CascadeFrusta([]float32{10, 30})
	if len(cascades) != 3 {
		t.Fatalf("expected 3 cascades, got %d", len(cascades))
	}

	// View depths 5, 20 and 55 along the axis.
	points := []math.Vec3{
		math.NewVec3(0, 0, 0),
		math.NewVec3(0, 0, -15),
		math.NewVec3(0, 0, -50),
	}
	for i, p := range points {
		for j, f := range cascades {
			if got := f.ContainsPoint(p); got != (i == j) {
				t.Errorf("depth point %d in cascade %d: got %v", i, j, got)
			}
		}
	}

	// Neighbouring cascades share their split plane.
	probe := math.NewVec3(0.5, -0.25, -3)
	for i := 0; i+1 < len(cascades); i++ {
		far := cascades[i].Far().Distance(probe)
		near := cascades[i+1].Near().Distance(probe)
		if !approx(far, -near) {
			t.Errorf("cascade %d: far %v and next near %v are not the same plane", i, far, near)
		}
	}

	whole := c.CascadeFrusta(nil)
	if len(whole) != 1 {
		t.Fatalf("no splits should return one frustum, got %d", len(whole))
	}
	if d := whole[0].Far().Distance(math.Vec3Zero); math.Abs(d-95) > 0.05 {
		t.Errorf("single cascade far distance: expected 95, got %v", d)
	}
}

func TestCascadeSplits(t *testing.T) {
	c := testCamera()
	if s := c.CascadeSplits(2, 1); len(s) != 1 || !approx(s[0], 10) {
		t.Errorf("logarithmic split: expected [10], got %v", s)
	}
	if s := c.CascadeSplits(2, 0); len(s) != 1 || !approx(s[0], 50.5) {
		t.Errorf("uniform split: expected [50.5], got %v", s)
	}
	s := c.CascadeSplits(4, 0.5)
	if len(s) != 3 {
		t.Fatalf("expected 3 splits, got %v", s)
	}
	prev := c.NearPlane
	for _, v := range s {
		if v <= prev || v >= c.FarPlane {
			t.Errorf("splits not increasing inside (near, far): %v", s)
		}
		prev = v
	}
	if c.CascadeSplits(1, 0.5) != nil {
		t.Error("a single cascade has no splits")
	}
}

func TestScreenToRayCenter(t *testing.T) {
	c := testCamera()
	r := c.ScreenToRay(400, 300, 800, 600)
	if !approxVec(r.Direction, math.NewVec3(0, 0, -1)) {
		t.Errorf("Direction: expected (0,0,-1), got %v", r.Direction)
	}
	if !approxVec(r.Start, math.NewVec3(0, 0, 4)) {
		t.Errorf("Start: expected near plane point (0,0,4), got %v", r.Start)
	}

	dist, ok := r.IntersectsSphere(geom.NewSphere(math.Vec3Zero, 1))
	if !ok || !approx(dist, 3) {
		t.Errorf("center ray vs unit sphere: expected 3, got %v (%v)", dist, ok)
	}
}

func TestScreenToRayCorner(t *testing.T) {
	c := testCamera()
	f := c.Frustum()
	r := c.ScreenToRay(0, 0, 800, 600)

	// The top-left pixel ray runs along the left and top planes.
	p := r.PointAt(20)
	if d := f.Left().Distance(p); math.Abs(d) > 1e-2 {
		t.Errorf("left plane distance: expected 0, got %v", d)
	}
	if d := f.Top().Distance(p); math.Abs(d) > 1e-2 {
		t.Errorf("top plane distance: expected 0, got %v", d)
	}
	if r.Direction.X >= 0 || r.Direction.Y <= 0 {
		t.Errorf("top-left ray should point left and up, got %v", r.Direction)
	}
}

func TestWorldToScreenRoundTrip(t *testing.T) {
	c := testCamera()
	c.Position = math.NewVec3(2, 1, 6)
	c.LookAt(math.Vec3Zero, math.Vec3Up)

	p := math.NewVec3(1, 0.5, -3)
	screen, ok := c.WorldToScreen(p, 800, 600)
	if !ok {
		t.Fatal("point in front of the camera should project")
	}
	r := c.ScreenToRay(screen.X, screen.Y, 800, 600)
	if d := r.DistanceToPoint(p); d > 1e-2 {
		t.Errorf("pick ray misses the projected point by %v", d)
	}

	if _, ok := c.WorldToScreen(math.NewVec3(4, 2, 12), 800, 600); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestOrbitCamera(t *testing.T) {
	o := NewOrbitCamera(math.NewVec3(1, 0, 0), 10, math.DegToRad(45), 1)
	if d := o.Position.Distance(o.Target); !approx(d, 10) {
		t.Errorf("orbit distance: expected 10, got %v", d)
	}
	if want := o.Target.Sub(o.Position).Normalize(); !approxVec(o.Forward(), want) {
		t.Errorf("orbit camera should face the target: %v vs %v", o.Forward(), want)
	}

	o.Orbit(0, 10)
	if o.Pitch != maxPitch {
		t.Errorf("pitch should clamp to %v, got %v", maxPitch, o.Pitch)
	}

	o.Zoom(-100)
	if o.Distance != minDistance {
		t.Errorf("zoom should clamp to %v, got %v", minDistance, o.Distance)
	}
}

func TestOrbitCameraFrame(t *testing.T) {
	o := NewOrbitCamera(math.Vec3Zero, 10, math.DegToRad(60), 1)
	center := math.NewVec3(3, -2, 1)
	o.Frame(center, 2)

	if !approx(o.Distance, 4) {
		t.Errorf("framing distance: expected 4, got %v", o.Distance)
	}
	// The sphere touches the top plane.
	if d := o.Frustum().Top().Distance(center); math.Abs(d-2) > 1e-2 {
		t.Errorf("top plane distance: expected 2, got %v", d)
	}
}

func BenchmarkScreenToRay(b *testing.B) {
	c := testCamera()
	for i := 0; i < b.N; i++ {
		_ = c.ScreenToRay(float32(i%800), 300, 800, 600)
	}
}
