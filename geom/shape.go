package geom

import (
	"fmt"

	"freak-engine/math"
)

// Shape is a closed volume with world-space bounds.
type Shape interface {
	Bounds() AABB
	ContainsPoint(pt math.Vec3) bool
}

var (
	_ Shape = Sphere{}
	_ Shape = AABB{}
	_ Shape = Box{}
	_ Shape = Capsule{}
	_ Shape = CapsuleX{}
	_ Shape = CapsuleY{}
	_ Shape = Cone{}
	_ Shape = ConeY{}
	_ Shape = Frustum{}
)

// canonical maps the axis-restricted variants onto their general shapes.
func canonical(s Shape) Shape {
	switch v := s.(type) {
	case CapsuleX:
		return v.ToCapsule()
	case CapsuleY:
		return v.ToCapsule()
	case ConeY:
		return v.ToCone()
	}
	return s
}

// Classify reports how container relates to contained. Pairs without a
// containment test, such as a cone containing a cone or a capsule against an
// oriented box, return an error wrapping ErrUnsupported.
func Classify(container, contained Shape) (Containment, error) {
	a, b := canonical(container), canonical(contained)
	switch c := a.(type) {
	case AABB:
		switch o := b.(type) {
		case AABB:
			return AABBContainsAABB(c, o), nil
		case Sphere:
			return AABBContainsSphere(c, o), nil
		case Box:
			return AABBContainsBox(c, o), nil
		case Capsule:
			return AABBContainsCapsule(c, o), nil
		case Cone:
			return AABBContainsCone(c, o), nil
		case Frustum:
			return AABBContainsFrustum(c, o), nil
		}
	case Sphere:
		switch o := b.(type) {
		case AABB:
			return SphereContainsAABB(c, o), nil
		case Sphere:
			return SphereContainsSphere(c, o), nil
		case Box:
			return SphereContainsBox(c, o), nil
		case Capsule:
			return SphereContainsCapsule(c, o), nil
		case Cone:
			return SphereContainsCone(c, o), nil
		}
	case Box:
		switch o := b.(type) {
		case AABB:
			return BoxContainsAABB(c, o), nil
		case Sphere:
			return BoxContainsSphere(c, o), nil
		case Box:
			return BoxContainsBox(c, o), nil
		}
	case Frustum:
		switch o := b.(type) {
		case AABB:
			return FrustumContainsAABB(c, o), nil
		case Sphere:
			return FrustumContainsSphere(c, o), nil
		case Box:
			return FrustumContainsBox(c, o), nil
		}
	case Capsule:
		switch o := b.(type) {
		case AABB:
			return CapsuleContainsAABB(c, o), nil
		case Sphere:
			return CapsuleContainsSphere(c, o), nil
		case Capsule:
			return CapsuleContainsCapsule(c, o), nil
		}
	}
	return Disjoint, fmt.Errorf("geom: %T in %T: %w", contained, container, ErrUnsupported)
}
