package geom

import "freak-engine/math"

// PlaneEpsilon is the half-width of the band in which a vertex counts as lying
// on a splitting plane.
const PlaneEpsilon = 1e-4

// TriangleSplit holds the pieces of a triangle cut by a plane. Only the first
// FrontCount and BackCount entries are meaningful.
type TriangleSplit struct {
	Front      [2]Triangle
	FrontCount int
	Back       [2]Triangle
	BackCount  int
}

func (s TriangleSplit) FrontTriangles() []Triangle { return s.Front[:s.FrontCount] }
func (s TriangleSplit) BackTriangles() []Triangle  { return s.Back[:s.BackCount] }

// SplitTriangle clips t against p. Vertices within PlaneEpsilon of the plane
// go to both sides, so no sliver triangles are produced. A triangle lying in
// the plane goes to the side its normal faces. Winding is preserved.
func SplitTriangle(p Plane, t Triangle) TriangleSplit {
	verts := [3]math.Vec3{t.A, t.B, t.C}
	var dist [3]float32
	var side [3]int
	front, back := 0, 0
	for i, v := range verts {
		dist[i] = p.Distance(v)
		switch {
		case dist[i] > PlaneEpsilon:
			side[i] = 1
			front++
		case dist[i] < -PlaneEpsilon:
			side[i] = -1
			back++
		}
	}

	var out TriangleSplit
	switch {
	case front == 0 && back == 0:
		if t.Normal().Dot(p.Normal) >= 0 {
			out.Front[0], out.FrontCount = t, 1
		} else {
			out.Back[0], out.BackCount = t, 1
		}
		return out
	case back == 0:
		out.Front[0], out.FrontCount = t, 1
		return out
	case front == 0:
		out.Back[0], out.BackCount = t, 1
		return out
	}

	var fpoly, bpoly [4]math.Vec3
	nf, nb := 0, 0
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		if side[i] >= 0 {
			fpoly[nf] = verts[i]
			nf++
		}
		if side[i] <= 0 {
			bpoly[nb] = verts[i]
			nb++
		}
		if side[i]*side[j] < 0 {
			x := verts[i].Lerp(verts[j], dist[i]/(dist[i]-dist[j]))
			fpoly[nf] = x
			nf++
			bpoly[nb] = x
			nb++
		}
	}
	out.FrontCount = fan(fpoly, nf, &out.Front)
	out.BackCount = fan(bpoly, nb, &out.Back)
	return out
}

func fan(poly [4]math.Vec3, n int, dst *[2]Triangle) int {
	count := 0
	for i := 1; i+1 < n; i++ {
		dst[count] = Triangle{A: poly[0], B: poly[i], C: poly[i+1]}
		count++
	}
	return count
}
