package geom

import (
	"image"
	stdmath "math"

	"freak-engine/math"
)

// BoundingRectangleF is a 2D rectangle placed by the position of a local
// origin. LocalOriginPercentage locates that origin inside the rectangle:
// (0,0) is the min corner, (0.5,0.5) the center. Bounds may be negative
// transiently; Normalized restores positive width and height.
type BoundingRectangleF struct {
	Translation           math.Vec2
	Bounds                math.Vec2
	LocalOriginPercentage math.Vec2
}

// NewBoundingRectangleF returns a rectangle whose min corner is (x, y).
func NewBoundingRectangleF(x, y, width, height float32) BoundingRectangleF {
	return BoundingRectangleF{Translation: math.Vec2{X: x, Y: y}, Bounds: math.Vec2{X: width, Y: height}}.Normalized()
}

// BoundingRectangleFFromMinMax builds a rectangle from two corners in any order.
func BoundingRectangleFFromMinMax(a, b math.Vec2) BoundingRectangleF {
	mn, mx := a.Min(b), a.Max(b)
	return BoundingRectangleF{Translation: mn, Bounds: mx.Sub(mn)}
}

func (r BoundingRectangleF) LocalOrigin() math.Vec2 {
	return r.Bounds.MulVec(r.LocalOriginPercentage)
}

func (r BoundingRectangleF) Min() math.Vec2 {
	return r.Translation.Sub(r.LocalOrigin())
}

func (r BoundingRectangleF) Max() math.Vec2 {
	return r.Min().Add(r.Bounds)
}

func (r BoundingRectangleF) Width() float32  { return r.Bounds.X }
func (r BoundingRectangleF) Height() float32 { return r.Bounds.Y }

func (r BoundingRectangleF) Area() float32 {
	return r.Bounds.X * r.Bounds.Y
}

func (r BoundingRectangleF) Center() math.Vec2 {
	return r.Min().Add(r.Bounds.Mul(0.5))
}

func (r BoundingRectangleF) BottomLeft() math.Vec2 {
	return r.Min()
}

func (r BoundingRectangleF) BottomRight() math.Vec2 {
	m := r.Min()
	return math.Vec2{X: m.X + r.Bounds.X, Y: m.Y}
}

func (r BoundingRectangleF) TopLeft() math.Vec2 {
	m := r.Min()
	return math.Vec2{X: m.X, Y: m.Y + r.Bounds.Y}
}

func (r BoundingRectangleF) TopRight() math.Vec2 {
	return r.Max()
}

// Normalized flips negative width or height and moves Translation so the
// rectangle covers the same area with the same origin percentage.
func (r BoundingRectangleF) Normalized() BoundingRectangleF {
	a, b := r.Min(), r.Max()
	mn, mx := a.Min(b), a.Max(b)
	r.Bounds = mx.Sub(mn)
	r.Translation = mn.Add(r.LocalOrigin())
	return r
}

// WithOriginPercentage moves the local origin without moving the rectangle.
func (r BoundingRectangleF) WithOriginPercentage(pct math.Vec2) BoundingRectangleF {
	mn := r.Min()
	r.LocalOriginPercentage = pct
	r.Translation = mn.Add(r.LocalOrigin())
	return r
}

func (r BoundingRectangleF) Translated(offset math.Vec2) BoundingRectangleF {
	r.Translation = r.Translation.Add(offset)
	return r
}

func (r BoundingRectangleF) ContainsPoint(pt math.Vec2) bool {
	mn, mx := r.Min(), r.Max()
	return pt.X >= mn.X && pt.X <= mx.X && pt.Y >= mn.Y && pt.Y <= mx.Y
}

func (r BoundingRectangleF) Intersects(other BoundingRectangleF) bool {
	return r.Contains(other) != Disjoint
}

// Contains classifies other against r.
func (r BoundingRectangleF) Contains(other BoundingRectangleF) Containment {
	amn, amx := r.Min(), r.Max()
	bmn, bmx := other.Min(), other.Max()
	if bmx.X < amn.X || bmn.X > amx.X || bmx.Y < amn.Y || bmn.Y > amx.Y {
		return Disjoint
	}
	if bmn.X >= amn.X && bmx.X <= amx.X && bmn.Y >= amn.Y && bmx.Y <= amx.Y {
		return Contains
	}
	return Intersects
}

// Intersection returns the overlap of the two rectangles with a min-corner origin.
func (r BoundingRectangleF) Intersection(other BoundingRectangleF) (BoundingRectangleF, bool) {
	mn := r.Min().Max(other.Min())
	mx := r.Max().Min(other.Max())
	if mn.X > mx.X || mn.Y > mx.Y {
		return BoundingRectangleF{}, false
	}
	return BoundingRectangleFFromMinMax(mn, mx), true
}

// Union returns the smallest rectangle covering both, keeping r's origin percentage.
func (r BoundingRectangleF) Union(other BoundingRectangleF) BoundingRectangleF {
	u := BoundingRectangleFFromMinMax(r.Min().Min(other.Min()), r.Max().Max(other.Max()))
	return u.WithOriginPercentage(r.LocalOriginPercentage)
}

func (r BoundingRectangleF) ExpandToInclude(pt math.Vec2) BoundingRectangleF {
	u := BoundingRectangleFFromMinMax(r.Min().Min(pt), r.Max().Max(pt))
	return u.WithOriginPercentage(r.LocalOriginPercentage)
}

// ClosestPoint clamps pt into the rectangle. With clampToEdge an interior point
// moves to the nearest edge.
func (r BoundingRectangleF) ClosestPoint(pt math.Vec2, clampToEdge bool) math.Vec2 {
	mn, mx := r.Min(), r.Max()
	if !clampToEdge || !r.ContainsPoint(pt) {
		return pt.Clamp(mn, mx)
	}
	best, dist := math.Vec2{X: mn.X, Y: pt.Y}, pt.X-mn.X
	if d := mx.X - pt.X; d < dist {
		best, dist = math.Vec2{X: mx.X, Y: pt.Y}, d
	}
	if d := pt.Y - mn.Y; d < dist {
		best, dist = math.Vec2{X: pt.X, Y: mn.Y}, d
	}
	if d := mx.Y - pt.Y; d < dist {
		best = math.Vec2{X: pt.X, Y: mx.Y}
	}
	return best
}

// BoundingRectangle is the integer counterpart of BoundingRectangleF, used for
// pixel regions such as viewports and UI layout.
type BoundingRectangle struct {
	Translation           image.Point
	Bounds                image.Point
	LocalOriginPercentage math.Vec2
}

func NewBoundingRectangle(x, y, width, height int) BoundingRectangle {
	return BoundingRectangle{Translation: image.Pt(x, y), Bounds: image.Pt(width, height)}.Normalized()
}

// BoundingRectangleFromImage converts an image.Rectangle with a min-corner origin.
func BoundingRectangleFromImage(r image.Rectangle) BoundingRectangle {
	r = r.Canon()
	return BoundingRectangle{Translation: r.Min, Bounds: r.Size()}
}

func (r BoundingRectangle) LocalOrigin() image.Point {
	return image.Pt(
		int(stdmath.Round(float64(float32(r.Bounds.X)*r.LocalOriginPercentage.X))),
		int(stdmath.Round(float64(float32(r.Bounds.Y)*r.LocalOriginPercentage.Y))),
	)
}

func (r BoundingRectangle) Min() image.Point {
	return r.Translation.Sub(r.LocalOrigin())
}

func (r BoundingRectangle) Max() image.Point {
	return r.Min().Add(r.Bounds)
}

func (r BoundingRectangle) Width() int  { return r.Bounds.X }
func (r BoundingRectangle) Height() int { return r.Bounds.Y }

func (r BoundingRectangle) Area() int {
	return r.Bounds.X * r.Bounds.Y
}

func (r BoundingRectangle) Center() math.Vec2 {
	return r.ToF().Center()
}

// ToRectangle returns the half-open image.Rectangle covering r.
func (r BoundingRectangle) ToRectangle() image.Rectangle {
	return image.Rectangle{Min: r.Min(), Max: r.Max()}.Canon()
}

func (r BoundingRectangle) ToF() BoundingRectangleF {
	return BoundingRectangleF{
		Translation:           math.Vec2{X: float32(r.Translation.X), Y: float32(r.Translation.Y)},
		Bounds:                math.Vec2{X: float32(r.Bounds.X), Y: float32(r.Bounds.Y)},
		LocalOriginPercentage: r.LocalOriginPercentage,
	}
}

func (r BoundingRectangle) Normalized() BoundingRectangle {
	rect := image.Rectangle{Min: r.Min(), Max: r.Max()}.Canon()
	r.Bounds = rect.Size()
	r.Translation = rect.Min.Add(r.LocalOrigin())
	return r
}

// ContainsPoint treats the rectangle as half-open, matching image.Rectangle.
func (r BoundingRectangle) ContainsPoint(pt image.Point) bool {
	return pt.In(r.ToRectangle())
}

func (r BoundingRectangle) Contains(other BoundingRectangle) Containment {
	a, b := r.ToRectangle(), other.ToRectangle()
	if !a.Overlaps(b) {
		return Disjoint
	}
	if b.In(a) {
		return Contains
	}
	return Intersects
}

func (r BoundingRectangle) Intersects(other BoundingRectangle) bool {
	return r.ToRectangle().Overlaps(other.ToRectangle())
}

func (r BoundingRectangle) Intersection(other BoundingRectangle) (BoundingRectangle, bool) {
	i := r.ToRectangle().Intersect(other.ToRectangle())
	if i.Empty() {
		return BoundingRectangle{}, false
	}
	return BoundingRectangleFromImage(i), true
}

func (r BoundingRectangle) Union(other BoundingRectangle) BoundingRectangle {
	u := BoundingRectangleFromImage(r.ToRectangle().Union(other.ToRectangle()))
	u.LocalOriginPercentage = r.LocalOriginPercentage
	u.Translation = u.Translation.Add(u.LocalOrigin())
	return u
}
