package geom

import "freak-engine/math"

// Box is an oriented bounding box: a local axis-aligned box placed in the
// world by Transform. Transform must be invertible for the local-space queries.
// Closest-point results are exact for rigid transforms and approximate under
// non-uniform scale or shear.
type Box struct {
	LocalCenter math.Vec3
	LocalSize   math.Vec3
	Transform   math.Mat4
}

func NewBox(localCenter, localSize math.Vec3, transform math.Mat4) Box {
	return Box{LocalCenter: localCenter, LocalSize: localSize.Abs(), Transform: transform}
}

// BoxFromAABB places the box b in the world with transform.
func BoxFromAABB(b AABB, transform math.Mat4) Box {
	return Box{LocalCenter: b.Center(), LocalSize: b.Size(), Transform: transform}
}

func (b Box) LocalAABB() AABB {
	return AABBFromCenterSize(b.LocalCenter, b.LocalSize)
}

func (b Box) LocalMin() math.Vec3 {
	return b.LocalCenter.Sub(b.LocalSize.Mul(0.5))
}

func (b Box) LocalMax() math.Vec3 {
	return b.LocalCenter.Add(b.LocalSize.Mul(0.5))
}

func (b Box) WorldCenter() math.Vec3 {
	return b.Transform.TransformPoint(b.LocalCenter)
}

func (b Box) ToLocal(pt math.Vec3) math.Vec3 {
	return b.Transform.Inverse().TransformPoint(pt)
}

func (b Box) ToWorld(pt math.Vec3) math.Vec3 {
	return b.Transform.TransformPoint(pt)
}

// Corners returns the world-space corners in the AABB corner order.
func (b Box) Corners() [8]math.Vec3 {
	corners := b.LocalAABB().Corners()
	for i := range corners {
		corners[i] = b.Transform.TransformPoint(corners[i])
	}
	return corners
}

// Planes returns the world-space face planes with inward-pointing normals.
func (b Box) Planes() [6]Plane {
	planes := b.LocalAABB().Planes()
	for i := range planes {
		planes[i] = planes[i].Transform(b.Transform)
	}
	return planes
}

// Bounds returns the world-space AABB enclosing the box.
func (b Box) Bounds() AABB {
	return b.LocalAABB().Transform(b.Transform)
}

func (b Box) ContainsPoint(pt math.Vec3) bool {
	return b.LocalAABB().ContainsPoint(b.ToLocal(pt))
}

// ClosestPoint works in local space and maps the answer back to the world.
func (b Box) ClosestPoint(pt math.Vec3, clampToEdge bool) math.Vec3 {
	local := b.LocalAABB().ClosestPoint(b.ToLocal(pt), clampToEdge)
	return b.Transform.TransformPoint(local)
}

func (b Box) Translated(offset math.Vec3) Box {
	b.Transform = b.Transform.Mul(math.Mat4Translation(offset))
	return b
}

func (b Box) IntersectsBox(other Box) bool {
	return BoxIntersectsBox(b, other)
}

func (b Box) ContainsBox(other Box) Containment {
	return BoxContainsBox(b, other)
}

func (b Box) ContainsAABB(other AABB) Containment {
	return BoxContainsAABB(b, other)
}

func (b Box) ContainsSphere(s Sphere) Containment {
	return BoxContainsSphere(b, s)
}

func (b Box) IntersectsRay(r Ray) (float32, bool) {
	return RayIntersectsBox(r, b)
}

func (b Box) IntersectsPlane(p Plane) PlaneIntersection {
	return PlaneIntersectsBox(p, b)
}
