package math

import "math"

// Epsilon is the tolerance used by the approximate comparisons in this package.
const Epsilon = 1e-5

func Abs(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

func Sqrt(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// IsZero reports whether |v| is within Epsilon of zero.
func IsZero(v float32) bool {
	return Abs(v) < Epsilon
}

// ApproxEqual compares with an absolute tolerance for small magnitudes and a
// relative one for large magnitudes.
func ApproxEqual(a, b float32) bool {
	if a == b {
		return true
	}
	diff := Abs(a - b)
	scale := Max(Abs(a), Abs(b))
	if scale < 1 {
		return diff < Epsilon
	}
	return diff < Epsilon*scale
}

// QuadraticRealRoots solves a·x² + b·x + c = 0. It returns false when the
// discriminant is negative or the equation is degenerate (a and b zero).
// Otherwise x0 <= x1; a linear equation (a exactly zero) returns its single
// root twice. Small non-zero a is solved as a quadratic.
func QuadraticRealRoots(a, b, c float32) (x0, x1 float32, ok bool) {
	if a == 0 {
		if b == 0 {
			return 0, 0, false
		}
		x := -c / b
		return x, x, true
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	s := Sqrt(disc)
	// Citardauq form for the smaller-magnitude root.
	var q float32
	if b < 0 {
		q = -0.5 * (b - s)
	} else {
		q = -0.5 * (b + s)
	}
	if q == 0 {
		return 0, 0, true
	}
	x0 = q / a
	x1 = c / q
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	return x0, x1, true
}

// DistancePlanePoint is the signed distance of p from the plane dot(normal, x) + d = 0.
func DistancePlanePoint(normal Vec3, d float32, p Vec3) float32 {
	return normal.Dot(p) + d
}

// DistancePlanePointAt is the signed distance of p from the plane through planePoint.
func DistancePlanePointAt(normal, planePoint, p Vec3) float32 {
	return normal.Dot(p.Sub(planePoint))
}

func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float32) float32 {
	return rad * 180 / math.Pi
}
