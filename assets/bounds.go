// Package assets reads model files and reduces them to world-space geometry
// with bounding volumes.
package assets

import (
	"freak-engine/geom"
	"freak-engine/math"
)

// MeshBounds is one mesh primitive in world space. Indices form a triangle
// list and may be empty when the source has no triangles.
type MeshBounds struct {
	Name      string
	Positions []math.Vec3
	Indices   []uint32
	AABB      geom.AABB
	Sphere    geom.Sphere
}

// Bounds is the geometry of a whole model file. Primitives that could not be
// read are recorded in Skipped and left out of Meshes.
type Bounds struct {
	Source  string
	Meshes  []MeshBounds
	AABB    geom.AABB
	Skipped []error
}

func (b *Bounds) Empty() bool {
	return len(b.Meshes) == 0
}

// TriangleCount sums the triangles of every mesh.
func (b *Bounds) TriangleCount() int {
	n := 0
	for _, m := range b.Meshes {
		n += len(m.Indices) / 3
	}
	return n
}

// Sphere returns a sphere enclosing every mesh sphere.
func (b *Bounds) Sphere() geom.Sphere {
	if b.Empty() {
		return geom.Sphere{}
	}
	s := b.Meshes[0].Sphere
	for _, m := range b.Meshes[1:] {
		s = s.Merge(m.Sphere)
	}
	return s
}

func (b *Bounds) add(name string, positions []math.Vec3, indices []uint32) {
	aabb, sphere := BoundsFromPoints(positions)
	if b.Empty() {
		b.AABB = aabb
	} else {
		b.AABB = b.AABB.Merge(aabb)
	}
	b.Meshes = append(b.Meshes, MeshBounds{
		Name:      name,
		Positions: positions,
		Indices:   indices,
		AABB:      aabb,
		Sphere:    sphere,
	})
}

// BoundsFromPoints returns the tight box and a Ritter bounding sphere of
// points. The sphere is within a few percent of the minimal one.
func BoundsFromPoints(points []math.Vec3) (geom.AABB, geom.Sphere) {
	if len(points) == 0 {
		return geom.AABB{}, geom.Sphere{}
	}
	return geom.AABBFromPoints(points...), ritterSphere(points)
}

func ritterSphere(points []math.Vec3) geom.Sphere {
	y := farthest(points, points[0])
	z := farthest(points, y)

	center := y.Lerp(z, 0.5)
	radius := y.Distance(z) * 0.5
	for _, p := range points {
		d := p.Distance(center)
		if d <= radius {
			continue
		}
		grown := (radius + d) * 0.5
		center = center.Add(p.Sub(center).Mul((grown - radius) / d))
		radius = grown
	}
	return geom.NewSphere(center, radius)
}

func farthest(points []math.Vec3, from math.Vec3) math.Vec3 {
	best, bestDist := from, float32(-1)
	for _, p := range points {
		if d := p.DistanceSqr(from); d > bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
