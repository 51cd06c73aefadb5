package picking

import (
	"fmt"

	"freak-engine/geom"
	"freak-engine/math"
)

// Mesh is an indexed triangle list placed in the world by Transform. World
// positions and bounds are computed once by NewMesh.
type Mesh struct {
	Positions []math.Vec3
	Indices   []uint32
	Transform math.Mat4

	world  []math.Vec3
	bounds geom.AABB
}

// NewMesh validates the index list and caches the world-space positions.
func NewMesh(positions []math.Vec3, indices []uint32, transform math.Mat4) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("picking: index count %d is not a multiple of 3", len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= len(positions) {
			return nil, fmt.Errorf("picking: index %d at %d out of range (%d positions)", idx, i, len(positions))
		}
	}

	m := &Mesh{
		Positions: positions,
		Indices:   indices,
		Transform: transform,
		world:     make([]math.Vec3, len(positions)),
	}
	for i, p := range positions {
		m.world[i] = transform.TransformPoint(p)
	}
	if len(m.world) > 0 {
		m.bounds = geom.AABBFromPoints(m.world...)
	}
	return m, nil
}

func (m *Mesh) Bounds() geom.AABB {
	return m.bounds
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns face i in world space.
func (m *Mesh) Triangle(i int) geom.Triangle {
	i0, i1, i2 := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
	return geom.NewTriangle(m.world[i0], m.world[i1], m.world[i2])
}

func (m *Mesh) IntersectsRay(r geom.Ray) (float32, bool) {
	hit := m.intersect(r)
	return hit.Distance, hit.Hit
}

// intersect tests every face and keeps the closest; degenerate faces never hit.
func (m *Mesh) intersect(r geom.Ray) HitResult {
	closest := miss()
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		t, hit := tri.IntersectsRay(r)
		if hit && t < closest.Distance {
			closest.Hit = true
			closest.Distance = t
			closest.Point = r.PointAt(t)
			closest.Normal = facing(tri.Normal(), r.Direction)
			closest.FaceIdx = i
		}
	}
	return closest
}
