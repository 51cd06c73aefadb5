// Package sdfexport turns geom shapes into signed distance functions and
// tessellates them for export.
package sdfexport

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	sdfv3 "github.com/deadsy/sdfx/vec/v3"

	"freak-engine/geom"
	"freak-engine/math"
)

// DefaultCells is the marching cubes resolution along the longest side.
const DefaultCells = 200

// ErrNoShapes is returned when there is nothing to tessellate.
var ErrNoShapes = errors.New("sdfexport: no shapes")

// Options controls tessellation.
type Options struct {
	Cells int
}

func DefaultOptions() Options {
	return Options{Cells: DefaultCells}
}

func (o Options) cells() int {
	if o.Cells <= 0 {
		return DefaultCells
	}
	return o.Cells
}

// ToSDF3 converts a shape. Spheres, AABBs, boxes, capsules and cones are
// supported, including the axis-locked variants. Boxes must not be sheared.
func ToSDF3(shape geom.Shape) (sdf.SDF3, error) {
	switch s := shape.(type) {
	case geom.Sphere:
		return sphere(s)
	case geom.AABB:
		return aabb(s)
	case geom.Box:
		return box(s)
	case geom.Capsule:
		return capsule(s)
	case geom.CapsuleX:
		return capsule(s.ToCapsule())
	case geom.CapsuleY:
		return capsule(s.ToCapsule())
	case geom.Cone:
		return cone(s)
	case geom.ConeY:
		return cone(s.ToCone())
	}
	return nil, fmt.Errorf("sdfexport: %T: %w", shape, geom.ErrUnsupported)
}

// Union converts every shape and joins them.
func Union(shapes ...geom.Shape) (sdf.SDF3, error) {
	if len(shapes) == 0 {
		return nil, ErrNoShapes
	}
	parts := make([]sdf.SDF3, 0, len(shapes))
	for i, shape := range shapes {
		s, err := ToSDF3(shape)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return sdf.Union3D(parts...), nil
}

// Triangles tessellates the union of shapes with marching cubes.
func Triangles(shapes []geom.Shape, opts Options) ([]geom.Triangle, error) {
	s, err := Union(shapes...)
	if err != nil {
		return nil, err
	}
	mesh := render.ToTriangles(s, render.NewMarchingCubesUniform(opts.cells()))
	out := make([]geom.Triangle, 0, len(mesh))
	for _, tri := range mesh {
		out = append(out, geom.NewTriangle(toVec3(tri[0]), toVec3(tri[1]), toVec3(tri[2])))
	}
	return out, nil
}

// WriteSTL tessellates the union of shapes and writes a binary STL file.
func WriteSTL(path string, shapes []geom.Shape, opts Options) error {
	s, err := Union(shapes...)
	if err != nil {
		return err
	}
	mesh := render.ToTriangles(s, render.NewMarchingCubesUniform(opts.cells()))
	if err := render.SaveSTL(path, mesh); err != nil {
		return fmt.Errorf("write stl %q: %w", path, err)
	}
	return nil
}

// Bounds returns the bounding box sdfx computes for the union of shapes.
func Bounds(shapes ...geom.Shape) (geom.AABB, error) {
	s, err := Union(shapes...)
	if err != nil {
		return geom.AABB{}, err
	}
	bb := s.BoundingBox()
	return geom.NewAABB(toVec3(bb.Min), toVec3(bb.Max)), nil
}

func sphere(s geom.Sphere) (sdf.SDF3, error) {
	out, err := sdf.Sphere3D(float64(s.Radius))
	if err != nil {
		return nil, fmt.Errorf("sdfexport: sphere: %w", err)
	}
	return sdf.Transform3D(out, sdf.Translate3d(toV3(s.Center))), nil
}

func aabb(b geom.AABB) (sdf.SDF3, error) {
	out, err := sdf.Box3D(toV3(b.Size()), 0)
	if err != nil {
		return nil, fmt.Errorf("sdfexport: aabb: %w", err)
	}
	return sdf.Transform3D(out, sdf.Translate3d(toV3(b.Center()))), nil
}

// box splits the transform into scale, rotation and translation. The scale is
// folded into the box size so distances stay in world units.
func box(b geom.Box) (sdf.SDF3, error) {
	m := b.Transform
	var scale math.Vec3
	var axes [3]math.Vec3
	for i := range axes {
		a := m.Axis(i)
		scale = scale.WithComponent(i, a.Length())
		axes[i] = a.Normalize()
	}
	if scale.MinComponent() <= math.Epsilon {
		return nil, fmt.Errorf("sdfexport: box: degenerate transform")
	}
	const orthoTolerance = 1e-3
	if math.Abs(axes[0].Dot(axes[1])) > orthoTolerance ||
		math.Abs(axes[0].Dot(axes[2])) > orthoTolerance ||
		math.Abs(axes[1].Dot(axes[2])) > orthoTolerance {
		return nil, fmt.Errorf("sdfexport: box: sheared transform: %w", geom.ErrUnsupported)
	}
	if axes[0].Cross(axes[1]).Dot(axes[2]) < 0 {
		return nil, fmt.Errorf("sdfexport: box: mirrored transform: %w", geom.ErrUnsupported)
	}

	out, err := sdf.Box3D(toV3(b.LocalSize.MulVec(scale)), 0)
	if err != nil {
		return nil, fmt.Errorf("sdfexport: box: %w", err)
	}
	rotation := math.QuaternionFromMat4(math.Mat4{
		{axes[0].X, axes[0].Y, axes[0].Z, 0},
		{axes[1].X, axes[1].Y, axes[1].Z, 0},
		{axes[2].X, axes[2].Y, axes[2].Z, 0},
		{0, 0, 0, 1},
	})
	place := sdf.Translate3d(toV3(m.Translation())).
		Mul(rotate(rotation)).
		Mul(sdf.Translate3d(toV3(b.LocalCenter.MulVec(scale))))
	return sdf.Transform3D(out, place), nil
}

// capsule builds the capsule along +Z and turns it onto UpAxis.
func capsule(c geom.Capsule) (sdf.SDF3, error) {
	if c.HalfHeight <= 0 {
		return sphere(geom.NewSphere(c.Center, c.Radius))
	}
	out, err := sdf.Capsule3D(float64(2*(c.HalfHeight+c.Radius)), float64(c.Radius))
	if err != nil {
		return nil, fmt.Errorf("sdfexport: capsule: %w", err)
	}
	place := sdf.Translate3d(toV3(c.Center)).Mul(rotate(math.QuaternionFromTo(math.Vec3Front, c.UpAxis)))
	return sdf.Transform3D(out, place), nil
}

// cone builds the cone along +Z with its base at the origin, then turns it
// onto UpAxis and moves the base to Center.
func cone(c geom.Cone) (sdf.SDF3, error) {
	h := float64(c.Height)
	out, err := sdf.Cone3D(h, float64(c.Radius), 0, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfexport: cone: %w", err)
	}
	place := sdf.Translate3d(toV3(c.Center)).
		Mul(rotate(math.QuaternionFromTo(math.Vec3Front, c.UpAxis))).
		Mul(sdf.Translate3d(sdfv3.Vec{Z: h / 2}))
	return sdf.Transform3D(out, place), nil
}

func rotate(q math.Quaternion) sdf.M44 {
	q = q.Normalize()
	w := float64(math.Clamp(q.W, -1, 1))
	angle := 2 * stdmath.Acos(w)
	s := stdmath.Sqrt(1 - w*w)
	if s < 1e-6 {
		return sdf.Identity3d()
	}
	axis := sdfv3.Vec{X: float64(q.X) / s, Y: float64(q.Y) / s, Z: float64(q.Z) / s}
	return sdf.Rotate3d(axis, angle)
}

func toV3(v math.Vec3) sdfv3.Vec {
	return sdfv3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func toVec3(v sdfv3.Vec) math.Vec3 {
	return math.Vec3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
