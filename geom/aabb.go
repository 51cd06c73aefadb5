package geom

import "freak-engine/math"

// AABB is an axis-aligned box with Min <= Max on every axis. NewAABB and
// AABBFromCenterSize restore that ordering; a literal with swapped corners
// reports a negative volume and fails every containment test.
type AABB struct {
	Min, Max math.Vec3
}

// Corner indices into AABB.Corners, named for a viewer looking down -Z
// (back is -Z, top is +Y, left is -X).
const (
	TopBackLeft = iota
	TopBackRight
	TopFrontLeft
	TopFrontRight
	BottomBackLeft
	BottomBackRight
	BottomFrontLeft
	BottomFrontRight
)

// Face indices into AABB.Planes and Box.Planes.
const (
	FaceLeft = iota
	FaceRight
	FaceBottom
	FaceTop
	FaceBack
	FaceFront
)

// NewAABB builds a box from two opposite corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{Min: a.Min(b), Max: a.Max(b)}
}

func AABBFromCenterSize(center, size math.Vec3) AABB {
	half := size.Mul(0.5)
	return NewAABB(center.Sub(half), center.Add(half))
}

// AABBFromPoints returns the tightest box around points, or the zero box for none.
func AABBFromPoints(points ...math.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	out := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		out.Min = out.Min.Min(p)
		out.Max = out.Max.Max(p)
	}
	return out
}

func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Extents returns the half size.
func (b AABB) Extents() math.Vec3 {
	return b.Size().Mul(0.5)
}

func (b AABB) Volume() float32 {
	s := b.Size()
	return s.X * s.Y * s.Z
}

func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

func (b AABB) Bounds() AABB {
	return b
}

func (b AABB) Corners() [8]math.Vec3 {
	mn, mx := b.Min, b.Max
	return [8]math.Vec3{
		TopBackLeft:      {X: mn.X, Y: mx.Y, Z: mn.Z},
		TopBackRight:     {X: mx.X, Y: mx.Y, Z: mn.Z},
		TopFrontLeft:     {X: mn.X, Y: mx.Y, Z: mx.Z},
		TopFrontRight:    {X: mx.X, Y: mx.Y, Z: mx.Z},
		BottomBackLeft:   {X: mn.X, Y: mn.Y, Z: mn.Z},
		BottomBackRight:  {X: mx.X, Y: mn.Y, Z: mn.Z},
		BottomFrontLeft:  {X: mn.X, Y: mn.Y, Z: mx.Z},
		BottomFrontRight: {X: mx.X, Y: mn.Y, Z: mx.Z},
	}
}

// Planes returns the six face planes with inward-pointing normals.
func (b AABB) Planes() [6]Plane {
	return [6]Plane{
		FaceLeft:   {Normal: math.Vec3Right, D: -b.Min.X},
		FaceRight:  {Normal: math.Vec3Left, D: b.Max.X},
		FaceBottom: {Normal: math.Vec3Up, D: -b.Min.Y},
		FaceTop:    {Normal: math.Vec3Down, D: b.Max.Y},
		FaceBack:   {Normal: math.Vec3Front, D: -b.Min.Z},
		FaceFront:  {Normal: math.Vec3Back, D: b.Max.Z},
	}
}

// ExtremeCorners returns the corners furthest along and against normal.
func (b AABB) ExtremeCorners(normal math.Vec3) (positive, negative math.Vec3) {
	positive, negative = b.Max, b.Min
	if normal.X < 0 {
		positive.X, negative.X = b.Min.X, b.Max.X
	}
	if normal.Y < 0 {
		positive.Y, negative.Y = b.Min.Y, b.Max.Y
	}
	if normal.Z < 0 {
		positive.Z, negative.Z = b.Min.Z, b.Max.Z
	}
	return positive, negative
}

func (b AABB) ExpandToInclude(pt math.Vec3) AABB {
	return AABB{Min: b.Min.Min(pt), Max: b.Max.Max(pt)}
}

func (b AABB) Merge(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Intersection returns the overlapping region, or false when the boxes are disjoint.
func (b AABB) Intersection(other AABB) (AABB, bool) {
	out := AABB{Min: b.Min.Max(other.Min), Max: b.Max.Min(other.Max)}
	return out, out.IsValid()
}

func (b AABB) Translated(offset math.Vec3) AABB {
	return AABB{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Inflated grows the box by amount on every side; negative amounts shrink it.
func (b AABB) Inflated(amount float32) AABB {
	a := math.Splat(amount)
	return AABB{Min: b.Min.Sub(a), Max: b.Max.Add(a)}
}

// Transform returns the box enclosing the eight transformed corners.
func (b AABB) Transform(m math.Mat4) AABB {
	corners := b.Corners()
	first := m.TransformPoint(corners[0])
	out := AABB{Min: first, Max: first}
	for i := 1; i < 8; i++ {
		out = out.ExpandToInclude(m.TransformPoint(corners[i]))
	}
	return out
}

// ToBox returns the oriented box with identity transform covering b.
func (b AABB) ToBox() Box {
	return Box{LocalCenter: b.Center(), LocalSize: b.Size(), Transform: math.Mat4Identity()}
}

func (b AABB) BoundingSphere() Sphere {
	return Sphere{Center: b.Center(), Radius: b.Extents().Length()}
}

func (b AABB) ContainsPoint(pt math.Vec3) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// ClosestPoint clamps pt into the box. With clampToEdge, a point already inside
// is pushed out to the nearest face.
func (b AABB) ClosestPoint(pt math.Vec3, clampToEdge bool) math.Vec3 {
	if !clampToEdge || !b.ContainsPoint(pt) {
		return ClosestPointOnAABB(b, pt)
	}
	best := pt.WithComponent(0, b.Min.X)
	bestDist := pt.X - b.Min.X
	for axis := 0; axis < 3; axis++ {
		c := pt.Component(axis)
		if d := c - b.Min.Component(axis); d < bestDist {
			best, bestDist = pt.WithComponent(axis, b.Min.Component(axis)), d
		}
		if d := b.Max.Component(axis) - c; d < bestDist {
			best, bestDist = pt.WithComponent(axis, b.Max.Component(axis)), d
		}
	}
	return best
}

func (b AABB) DistanceToPoint(pt math.Vec3) float32 {
	return ClosestPointOnAABB(b, pt).Distance(pt)
}

func (b AABB) DistanceToAABB(other AABB) float32 {
	return AABBDistanceToAABB(b, other)
}

func (b AABB) IntersectsAABB(other AABB) bool {
	return AABBIntersectsAABB(b, other)
}

func (b AABB) ContainsAABB(other AABB) Containment {
	return AABBContainsAABB(b, other)
}

func (b AABB) ContainsSphere(s Sphere) Containment {
	return AABBContainsSphere(b, s)
}

func (b AABB) ContainsBox(box Box) Containment {
	return AABBContainsBox(b, box)
}

func (b AABB) ContainsCapsule(c Capsule) Containment {
	return AABBContainsCapsule(b, c)
}

func (b AABB) ContainsCone(c Cone) Containment {
	return AABBContainsCone(b, c)
}

func (b AABB) ContainsFrustum(f Frustum) Containment {
	return AABBContainsFrustum(b, f)
}

func (b AABB) ContainsTriangle(t Triangle) Containment {
	return AABBContainsTriangle(b, t)
}

func (b AABB) IntersectsRay(r Ray) (float32, bool) {
	return RayIntersectsAABBDistance(r, b)
}

func (b AABB) IntersectsSegment(s Segment) (enter, exit math.Vec3, ok bool) {
	return SegmentIntersectsAABB(s, b)
}
