// Command geoinspect prints the bounding volumes of a glTF or OBJ model and
// can export them as an STL debug mesh.
//
//	geoinspect [-stl out.stl] [-cells N] [-sphere] model.(gltf|glb|obj)
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"freak-engine/assets"
	"freak-engine/camera"
	"freak-engine/culling"
	"freak-engine/geom"
	"freak-engine/math"
	"freak-engine/picking"
	"freak-engine/sdfexport"
)

const (
	viewWidth  = 800
	viewHeight = 600
	minExtent  = 1e-3
)

type config struct {
	model   string
	stlPath string
	cells   int
	spheres bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("geoinspect: ")

	var cfg config
	flag.StringVar(&cfg.stlPath, "stl", "", "write the bounding volumes to this STL file")
	flag.IntVar(&cfg.cells, "cells", sdfexport.DefaultCells, "marching cubes resolution for -stl")
	flag.BoolVar(&cfg.spheres, "sphere", false, "export bounding spheres instead of boxes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: geoinspect [flags] model.(gltf|glb|obj)\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.model = flag.Arg(0)

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, out io.Writer) error {
	b, err := load(cfg.model)
	if err != nil {
		return err
	}
	for _, skipped := range b.Skipped {
		log.Printf("skipped: %v", skipped)
	}
	if b.Empty() {
		return fmt.Errorf("%s: no mesh geometry", cfg.model)
	}

	report(out, b)
	if err := inspectView(out, b); err != nil {
		return err
	}

	if cfg.stlPath != "" {
		shapes := boundingShapes(b, cfg.spheres)
		if err := sdfexport.WriteSTL(cfg.stlPath, shapes, sdfexport.Options{Cells: cfg.cells}); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %d bounding volumes to %s\n", len(shapes), cfg.stlPath)
	}
	return nil
}

func load(path string) (*assets.Bounds, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		return assets.LoadGLTF(path)
	case ".obj":
		return assets.LoadOBJ(path)
	}
	return nil, fmt.Errorf("%s: unsupported model format", path)
}

func report(out io.Writer, b *assets.Bounds) {
	for _, m := range b.Meshes {
		fmt.Fprintf(out, "%-24s tris=%-6d min=%s max=%s sphere=%s r=%.4g\n",
			m.Name, len(m.Indices)/3, vec(m.AABB.Min), vec(m.AABB.Max), vec(m.Sphere.Center), m.Sphere.Radius)
	}
	s := b.Sphere()
	fmt.Fprintf(out, "total: meshes=%d tris=%d min=%s max=%s sphere=%s r=%.4g\n",
		len(b.Meshes), b.TriangleCount(), vec(b.AABB.Min), vec(b.AABB.Max), vec(s.Center), s.Radius)
}

// inspectView frames the model with an orbit camera, counts the meshes in view
// and casts a ray through the center pixel.
func inspectView(out io.Writer, b *assets.Bounds) error {
	cam := camera.NewOrbitCamera(math.Vec3Zero, 1, math.DegToRad(60), float32(viewWidth)/viewHeight)
	s := b.Sphere()
	cam.Frame(s.Center, math.Max(s.Radius, minExtent))
	cam.FarPlane = cam.Distance + 2*s.Radius + 1

	items := make([]culling.Item, len(b.Meshes))
	targets := make([]picking.Target, 0, len(b.Meshes))
	for i, m := range b.Meshes {
		items[i] = culling.Item{ID: i, Bounds: m.AABB}
		if len(m.Indices) == 0 {
			continue
		}
		mesh, err := picking.NewMesh(m.Positions, m.Indices, math.Mat4Identity())
		if err != nil {
			return fmt.Errorf("mesh %q: %w", m.Name, err)
		}
		targets = append(targets, picking.Target{ID: i, Shape: mesh})
	}

	visible := culling.NewIndex(items...).Query(cam.CachedFrustum())
	fmt.Fprintf(out, "view: %d of %d meshes in the framed frustum\n", len(visible), len(items))

	hit := picking.Pick(cam.Camera, viewWidth/2, viewHeight/2, viewWidth, viewHeight, targets)
	if hit.Hit {
		fmt.Fprintf(out, "center ray: %s face %d at distance %.4g\n", b.Meshes[hit.ID].Name, hit.FaceIdx, hit.Distance)
	} else {
		fmt.Fprintln(out, "center ray: no hit")
	}
	return nil
}

func boundingShapes(b *assets.Bounds, spheres bool) []geom.Shape {
	shapes := make([]geom.Shape, 0, len(b.Meshes))
	for _, m := range b.Meshes {
		// Flat or single-point meshes still need a solid volume.
		if spheres {
			sp := m.Sphere
			sp.Radius = math.Max(sp.Radius, minExtent)
			shapes = append(shapes, sp)
			continue
		}
		shapes = append(shapes, m.AABB.Inflated(minExtent))
	}
	return shapes
}

func vec(v math.Vec3) string {
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X, v.Y, v.Z)
}
