package culling

import (
	stdmath "math"
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/samber/lo"

	"freak-engine/geom"
)

const (
	treeMinChildren = 25
	treeMaxChildren = 50

	// rtreego rejects zero-length sides; flat boxes are padded to this size.
	minSide = 1e-6
)

type entry struct {
	item Item
	rect rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Index is an R-tree over item bounds for scenes too large to test linearly.
// It is safe for concurrent use.
type Index struct {
	mu      sync.RWMutex
	tree    *rtreego.Rtree
	entries map[int]*entry
}

func NewIndex(items ...Item) *Index {
	idx := &Index{
		tree:    rtreego.NewTree(3, treeMinChildren, treeMaxChildren),
		entries: make(map[int]*entry, len(items)),
	}
	for _, item := range items {
		idx.insert(item)
	}
	return idx
}

// Insert adds item, replacing any item with the same ID.
func (idx *Index) Insert(item Item) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.insert(item)
}

func (idx *Index) insert(item Item) {
	if old, ok := idx.entries[item.ID]; ok {
		idx.tree.Delete(old)
	}
	e := &entry{item: item, rect: toRect(item.Bounds, 0)}
	idx.entries[item.ID] = e
	idx.tree.Insert(e)
}

// Remove deletes the item with id and reports whether it was present.
func (idx *Index) Remove(id int) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	e, ok := idx.entries[id]
	if !ok {
		return false
	}
	delete(idx.entries, id)
	return idx.tree.Delete(e)
}

func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Query returns the IDs of the items visible in f, in ascending order. It
// matches VisibleIndices over the same items.
func (idx *Index) Query(f geom.Frustum) []int {
	v := newView(f)
	if !v.bounded {
		return idx.scan(func(item Item) bool {
			return v.visible(item.Bounds)
		})
	}
	return idx.search(v.bounds, func(item Item) bool {
		return v.visible(item.Bounds)
	})
}

// QueryAABB returns the IDs of the items whose bounds overlap b, in ascending
// order. Touching boxes overlap.
func (idx *Index) QueryAABB(b geom.AABB) []int {
	return idx.search(b, func(item Item) bool {
		return geom.AABBIntersectsAABB(b, item.Bounds)
	})
}

// search pads region so rectangles that only touch it, which the
// tree does not report, still reach keep.
func (idx *Index) search(region geom.AABB, keep func(Item) bool) []int {
	idx.mu.RLock()
	candidates := idx.tree.SearchIntersect(toRect(region, minSide))
	idx.mu.RUnlock()

	ids := lo.FilterMap(candidates, func(s rtreego.Spatial, _ int) (int, bool) {
		e := s.(*entry)
		return e.item.ID, keep(e.item)
	})
	sort.Ints(ids)
	return ids
}

// scan tests every entry; used when the frustum has no finite bounds.
func (idx *Index) scan(keep func(Item) bool) []int {
	idx.mu.RLock()
	entries := lo.Values(idx.entries)
	idx.mu.RUnlock()

	ids := lo.FilterMap(entries, func(e *entry, _ int) (int, bool) {
		return e.item.ID, keep(e.item)
	})
	sort.Ints(ids)
	return ids
}

// toRect converts b in float64, growing every side by pad scaled to the
// coordinate magnitude.
func toRect(b geom.AABB, pad float64) rtreego.Rect {
	point := make(rtreego.Point, 3)
	lengths := make([]float64, 3)
	for i := range 3 {
		lower, upper := float64(b.Min.Component(i)), float64(b.Max.Component(i))
		grow := pad * (1 + stdmath.Max(stdmath.Abs(lower), stdmath.Abs(upper)))
		point[i] = lower - grow
		lengths[i] = stdmath.Max(upper-lower+2*grow, minSide)
	}
	// Lengths are always positive, so NewRect cannot fail.
	r, _ := rtreego.NewRect(point, lengths)
	return r
}
