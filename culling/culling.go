// Package culling decides which bounded objects a view frustum can see.
package culling

import (
	"freak-engine/geom"
	"freak-engine/math"
)

// Item is an object with world-space bounds.
type Item struct {
	ID     int
	Bounds geom.AABB
}

// Stats counts the outcome of one culling pass.
type Stats struct {
	Tested  int
	Visible int
	Culled  int
}

// boundsSlack grows the frustum bounds so rounding in the corner solve never
// rejects a box that touches them.
const boundsSlack = 1e-3

// view caches the frustum bounds for a batch of Visible tests.
type view struct {
	frustum geom.Frustum
	bounds  geom.AABB
	bounded bool
}

func newView(f geom.Frustum) view {
	v := view{frustum: f}
	if corners, ok := f.Corners(); ok {
		v.bounds = geom.AABBFromPoints(corners[:]...).Inflated(boundsSlack)
		v.bounded = true
	}
	return v
}

func (v view) visible(bounds geom.AABB) bool {
	if v.bounded && !geom.AABBIntersectsAABB(v.bounds, bounds) {
		return false
	}
	for _, p := range v.frustum.Planes {
		positive, _ := bounds.ExtremeCorners(p.Normal)
		if p.Distance(positive) < 0 {
			return false
		}
	}
	return true
}

// Visible returns false if bounds lie completely outside the frustum. Boxes
// missing the frustum's corner bounds are rejected first; the rest are tested
// with the corner most aligned with each plane normal, so a box near a frustum
// edge can still be reported visible when it is not.
func Visible(f geom.Frustum, bounds geom.AABB) bool {
	return newView(f).visible(bounds)
}

// Classify returns the containment of every item, in item order.
func Classify(f geom.Frustum, items []Item) []geom.Containment {
	out := make([]geom.Containment, len(items))
	for i, item := range items {
		out[i] = f.ContainsAABB(item.Bounds)
	}
	return out
}

// VisibleIndices returns the indices of the items that pass Visible.
func VisibleIndices(f geom.Frustum, items []Item) []int {
	indices, _ := Cull(f, items)
	return indices
}

// Cull filters items like VisibleIndices and reports the counts.
func Cull(f geom.Frustum, items []Item) ([]int, Stats) {
	var stats Stats
	v := newView(f)
	indices := make([]int, 0, len(items))
	for i, item := range items {
		stats.Tested++
		if !v.visible(item.Bounds) {
			stats.Culled++
			continue
		}
		stats.Visible++
		indices = append(indices, i)
	}
	return indices, stats
}

// TransformAABB returns the world AABB enclosing local placed by world.
func TransformAABB(local geom.AABB, world math.Mat4) geom.AABB {
	return local.Transform(world)
}

// ComputeAABB returns the world AABB of positions placed by world. It is exact
// where TransformAABB of a cached local box is only enclosing.
func ComputeAABB(positions []math.Vec3, world math.Mat4) geom.AABB {
	if len(positions) == 0 {
		return geom.AABB{}
	}
	first := world.TransformPoint(positions[0])
	out := geom.AABB{Min: first, Max: first}
	for _, p := range positions[1:] {
		out = out.ExpandToInclude(world.TransformPoint(p))
	}
	return out
}
