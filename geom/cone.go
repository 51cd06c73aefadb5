package geom

import "freak-engine/math"

// Cone is a solid right circular cone. Center is the center of the base disc
// and the tip sits at Center + UpAxis*Height. The radius tapers linearly from
// Radius at the base to zero at the tip; Height must be positive.
type Cone struct {
	Center math.Vec3
	UpAxis math.Vec3
	Height float32
	Radius float32
}

// NewCone normalizes upAxis.
func NewCone(center, upAxis math.Vec3, height, radius float32) Cone {
	return Cone{Center: center, UpAxis: upAxis.Normalize(), Height: height, Radius: radius}
}

func (c Cone) WithAxis(upAxis math.Vec3) Cone {
	c.UpAxis = upAxis.Normalize()
	return c
}

func (c Cone) Tip() math.Vec3 {
	return c.Center.Add(c.UpAxis.Mul(c.Height))
}

// AxisSegment runs from the base center to the tip.
func (c Cone) AxisSegment() Segment {
	return Segment{Start: c.Center, End: c.Tip()}
}

func (c Cone) Base() Circle3D {
	return Circle3D{Center: c.Center, Normal: c.UpAxis.Negate(), Radius: c.Radius}
}

// RadiusAtNormalized returns the cross-section radius at t along the axis,
// t = 0 at the base and t = 1 at the tip. Outside [0, 1] there is no cross-section.
func (c Cone) RadiusAtNormalized(t float32) float32 {
	if t < 0 || t > 1 {
		return 0
	}
	return c.Radius * (1 - t)
}

// RadiusAt returns the cross-section radius at a height above the base.
func (c Cone) RadiusAt(height float32) float32 {
	if c.Height <= 0 {
		if height == 0 {
			return c.Radius
		}
		return 0
	}
	return c.RadiusAtNormalized(height / c.Height)
}

// Bounds returns the tight AABB of the base disc and the tip.
func (c Cone) Bounds() AABB {
	u := c.UpAxis
	e := math.Vec3{
		X: c.Radius * math.Sqrt(math.Max(0, 1-u.X*u.X)),
		Y: c.Radius * math.Sqrt(math.Max(0, 1-u.Y*u.Y)),
		Z: c.Radius * math.Sqrt(math.Max(0, 1-u.Z*u.Z)),
	}
	tip := c.Tip()
	return AABB{Min: c.Center.Sub(e).Min(tip), Max: c.Center.Add(e).Max(tip)}
}

// BoundingSphere returns a sphere through the tip and the base rim when the
// cone is slender, or around the base disc when it is wide.
func (c Cone) BoundingSphere() Sphere {
	if c.Radius >= c.Height {
		return Sphere{Center: c.Center, Radius: c.Radius}
	}
	// Circumcenter on the axis, equidistant from the tip and the rim.
	h := (c.Height*c.Height - c.Radius*c.Radius) / (2 * c.Height)
	return Sphere{Center: c.Center.Add(c.UpAxis.Mul(h)), Radius: c.Height - h}
}

// axial splits pt into height above the base, distance from the axis and the
// unit radial direction.
func (c Cone) axial(pt math.Vec3) (h, rho float32, radial math.Vec3) {
	rel := pt.Sub(c.Center)
	h = rel.Dot(c.UpAxis)
	radialVec := rel.Sub(c.UpAxis.Mul(h))
	rho = radialVec.Length()
	if rho > 0 {
		radial = radialVec.Mul(1 / rho)
	} else {
		radial = c.UpAxis.Perpendicular()
	}
	return h, rho, radial
}

func (c Cone) ContainsPoint(pt math.Vec3) bool {
	h, rho, _ := c.axial(pt)
	if h < 0 || h > c.Height {
		return false
	}
	return rho <= c.RadiusAt(h)
}

// ClosestPoint solves in the half-plane through the axis and pt, where the cone
// is the right triangle (0,0), (Radius,0), (0,Height) in (radial, axial) space.
func (c Cone) ClosestPoint(pt math.Vec3, clampToEdge bool) math.Vec3 {
	h, rho, radial := c.axial(pt)
	profile := Triangle{
		A: math.Vec3Zero,
		B: math.Vec3{X: c.Radius},
		C: math.Vec3{Y: c.Height},
	}
	p2 := math.Vec3{X: rho, Y: h}
	var q math.Vec3
	if c.ContainsPoint(pt) {
		if !clampToEdge {
			return pt
		}
		q = math.Vec3{X: rho}
		if slant := ClosestPointOnSegment(Segment{Start: profile.B, End: profile.C}, p2); slant.Distance(p2) < h {
			q = slant
		}
	} else {
		q = ClosestPointOnTriangle(profile, p2)
	}
	return c.Center.Add(c.UpAxis.Mul(q.Y)).Add(radial.Mul(q.X))
}

func (c Cone) DistanceToPoint(pt math.Vec3) float32 {
	if c.ContainsPoint(pt) {
		return 0
	}
	return c.ClosestPoint(pt, false).Distance(pt)
}

func (c Cone) IntersectsSphere(s Sphere) bool {
	return c.DistanceToPoint(s.Center) <= s.Radius
}

// ConeY is a cone whose axis is fixed to +Y.
type ConeY struct {
	Center math.Vec3
	Height float32
	Radius float32
}

func (c ConeY) ToCone() Cone {
	return Cone{Center: c.Center, UpAxis: math.Vec3Up, Height: c.Height, Radius: c.Radius}
}

func (c ConeY) Tip() math.Vec3 {
	return math.Vec3{X: c.Center.X, Y: c.Center.Y + c.Height, Z: c.Center.Z}
}

func (c ConeY) RadiusAt(height float32) float32 {
	return c.ToCone().RadiusAt(height)
}

func (c ConeY) Bounds() AABB {
	return AABB{
		Min: math.Vec3{X: c.Center.X - c.Radius, Y: c.Center.Y, Z: c.Center.Z - c.Radius},
		Max: math.Vec3{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Height, Z: c.Center.Z + c.Radius},
	}
}

func (c ConeY) ContainsPoint(pt math.Vec3) bool {
	h := pt.Y - c.Center.Y
	if h < 0 || h > c.Height {
		return false
	}
	dx, dz := pt.X-c.Center.X, pt.Z-c.Center.Z
	r := c.RadiusAt(h)
	return dx*dx+dz*dz <= r*r
}

func (c ConeY) ClosestPoint(pt math.Vec3, clampToEdge bool) math.Vec3 {
	return c.ToCone().ClosestPoint(pt, clampToEdge)
}
