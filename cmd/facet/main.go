// Command facet generates a primitive mesh and writes it to an STL
// file.
//
// Usage:
//
//	facet -shape sphere -o sphere.stl
//	facet -shape prism -width 10 -depth 20 -height 5 -o prism.stl
//	facet -shape cylinder -kernel sdfx -ascii -o cyl.stl
//
// The -kernel flag routes box, cylinder and sphere through a geometry
// kernel backend instead of the raw generators: "facet" for the pure
// face-list kernel, "sdfx" for SDF modeling with marching cubes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chazu/facet/pkg/geom"
	"github.com/chazu/facet/pkg/kernel"
	facetkernel "github.com/chazu/facet/pkg/kernel/facet"
	sdfxkernel "github.com/chazu/facet/pkg/kernel/sdfx"
	"github.com/chazu/facet/pkg/shape"
	"github.com/chazu/facet/pkg/solid"
	"github.com/chazu/facet/pkg/stl"
)

func main() {
	var (
		shapeName  = flag.String("shape", "sphere", "shape to generate: cube, prism, cylinder, sphere, icosahedron, circle, square, rectangle")
		out        = flag.String("o", "out.stl", "output STL file")
		ascii      = flag.Bool("ascii", false, "write ASCII STL instead of binary")
		kernelName = flag.String("kernel", "", "geometry kernel for box/cylinder/sphere: facet or sdfx (default: raw generators)")
		width      = flag.Float64("width", 10, "width (x) of prism/rectangle")
		depth      = flag.Float64("depth", 10, "depth (y) of prism")
		height     = flag.Float64("height", 10, "height (z) of prism/cylinder/rectangle")
		radius     = flag.Float64("radius", 1, "radius of cylinder/sphere/icosahedron/circle")
		size       = flag.Float64("size", 10, "edge length of cube/square")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("facet: ")

	obj, err := build(*shapeName, *kernelName, dims{
		width:  float32(*width),
		depth:  float32(*depth),
		height: float32(*height),
		radius: float32(*radius),
		size:   float32(*size),
	})
	if err != nil {
		log.Fatal(err)
	}

	write := stl.WriteFile
	if *ascii {
		write = stl.WriteASCIIFile
	}
	if err := write(*out, obj); err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(os.Stderr, "wrote %d faces to %s\n", obj.FaceCount(), *out)
}

type dims struct {
	width, depth, height, radius, size float32
}

// build creates the requested mesh, optionally through a kernel backend.
func build(shapeName, kernelName string, d dims) (*geom.Object, error) {
	if kernelName != "" {
		return buildWithKernel(shapeName, kernelName, d)
	}

	switch shapeName {
	case "cube":
		return solid.Cube(d.size), nil
	case "prism":
		return solid.RectangularPrism(d.width, d.depth, d.height), nil
	case "cylinder":
		return solid.Cylinder(d.height, d.radius), nil
	case "sphere":
		return solid.Sphere(d.radius), nil
	case "icosahedron":
		return solid.Icosahedron(d.radius), nil
	case "circle":
		return shape.Circle(d.radius), nil
	case "square":
		return shape.Square(d.size), nil
	case "rectangle":
		return shape.Rectangle(d.width, d.height), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", shapeName)
	}
}

// buildWithKernel routes the kernel-supported primitives through the
// selected backend.
func buildWithKernel(shapeName, kernelName string, d dims) (*geom.Object, error) {
	var k kernel.Kernel
	switch kernelName {
	case "facet":
		k = facetkernel.New()
	case "sdfx":
		k = sdfxkernel.New()
	default:
		return nil, fmt.Errorf("unknown kernel %q", kernelName)
	}

	var s kernel.Solid
	switch shapeName {
	case "cube":
		s = k.Box(d.size, d.size, d.size)
	case "prism":
		s = k.Box(d.width, d.depth, d.height)
	case "cylinder":
		s = k.Cylinder(d.height, d.radius, shape.Fragments)
	case "sphere":
		s = k.Sphere(d.radius)
	default:
		return nil, fmt.Errorf("shape %q is not supported by kernel backends", shapeName)
	}

	return k.ToMesh(s)
}
