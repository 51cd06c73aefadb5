package assets

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"freak-engine/math"
)

// LoadGLTF opens a .glb or .gltf file and returns the world-space geometry of
// every mesh instance reachable from the default scene. Without a default
// scene all parentless nodes are roots.
func LoadGLTF(path string) (*Bounds, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	b := &Bounds{Source: path}
	visited := make([]bool, len(doc.Nodes))
	for _, root := range gltfRoots(doc) {
		walkGLTFNode(doc, b, root, math.Mat4Identity(), visited)
	}
	return b, nil
}

func gltfRoots(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}

	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// walkGLTFNode visits idx and its children depth first. visited guards against
// malformed files whose node graph has cycles.
func walkGLTFNode(doc *gltf.Document, b *Bounds, idx int, parent math.Mat4, visited []bool) {
	if idx < 0 || idx >= len(doc.Nodes) || visited[idx] {
		return
	}
	visited[idx] = true
	defer func() { visited[idx] = false }()

	gn := doc.Nodes[idx]
	world := gltfLocalMatrix(gn).Mul(parent)

	name := gn.Name
	if name == "" {
		name = fmt.Sprintf("node_%d", idx)
	}

	if gn.Mesh != nil {
		if *gn.Mesh >= len(doc.Meshes) {
			b.Skipped = append(b.Skipped, fmt.Errorf("node %q: mesh %d out of range", name, *gn.Mesh))
		} else {
			for pi, prim := range doc.Meshes[*gn.Mesh].Primitives {
				primName := fmt.Sprintf("%s_p%d", name, pi)
				positions, indices, err := loadGLTFPrimitive(doc, prim)
				if err != nil {
					b.Skipped = append(b.Skipped, fmt.Errorf("%s: %w", primName, err))
					continue
				}
				for i, p := range positions {
					positions[i] = world.TransformPoint(p)
				}
				b.add(primName, positions, indices)
			}
		}
	}

	for _, c := range gn.Children {
		walkGLTFNode(doc, b, c, world, visited)
	}
}

// gltfLocalMatrix returns the node transform for row vectors. An explicit
// matrix wins over TRS.
func gltfLocalMatrix(gn *gltf.Node) math.Mat4 {
	if gn.Matrix != ([16]float64{}) {
		// glTF stores column-major matrices for column vectors, which is the
		// Mat4 memory layout.
		var m math.Mat4
		for i, v := range gn.MatrixOrDefault() {
			m[i/4][i%4] = float32(v)
		}
		return m
	}

	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]
	s := gn.ScaleOrDefault()
	return math.Mat4TRS(
		math.Vec3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])},
		math.Quaternion{X: float32(r[0]), Y: float32(r[1]), Z: float32(r[2]), W: float32(r[3])},
		math.Vec3{X: float32(s[0]), Y: float32(s[1]), Z: float32(s[2])},
	)
}

// loadGLTFPrimitive reads local positions and, for triangle primitives, the
// triangle list. Unindexed triangles get sequential indices.
func loadGLTFPrimitive(doc *gltf.Document, prim *gltf.Primitive) ([]math.Vec3, []uint32, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, nil, fmt.Errorf("no POSITION attribute")
	}
	if posIdx >= len(doc.Accessors) {
		return nil, nil, fmt.Errorf("POSITION accessor %d out of range", posIdx)
	}
	raw, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, nil, fmt.Errorf("positions: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil, fmt.Errorf("empty POSITION accessor")
	}

	positions := make([]math.Vec3, len(raw))
	for i, p := range raw {
		positions[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}

	if prim.Mode != gltf.PrimitiveTriangles {
		return positions, nil, nil
	}

	var indices []uint32
	if prim.Indices != nil {
		if *prim.Indices >= len(doc.Accessors) {
			return nil, nil, fmt.Errorf("index accessor %d out of range", *prim.Indices)
		}
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, nil, fmt.Errorf("indices: %w", err)
		}
		for _, idx := range indices {
			if int(idx) >= len(positions) {
				return nil, nil, fmt.Errorf("index %d out of range (%d positions)", idx, len(positions))
			}
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	indices = indices[:len(indices)/3*3]
	return positions, indices, nil
}
