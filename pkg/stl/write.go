// Package stl reads and writes triangle meshes in the STL interchange
// format, both the little-endian binary layout and the ASCII variant.
// Both writers are bulk and non-streaming: a failure mid-mesh leaves a
// truncated file behind.
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chazu/facet/pkg/geom"
)

const (
	headerSize = 80
	// faceSize is the binary record per face: normal and three vertices
	// as 3×float32 each, then a uint16 attribute byte count.
	faceSize = 4*3*4 + 2
)

// Write serializes obj to w in binary STL: an 80-byte zero header, a
// uint32 face count, then one 50-byte record per face. The attribute
// byte count of every record is zero.
func Write(w io.Writer, obj *geom.Object) error {
	bw := bufio.NewWriter(w)

	var header [headerSize]byte
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("stl: writing header: %w", err)
	}

	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(obj.Faces)))
	if _, err := bw.Write(count[:]); err != nil {
		return fmt.Errorf("stl: writing face count: %w", err)
	}

	var rec [faceSize]byte
	for i, f := range obj.Faces {
		putVec(rec[0:], f.Normal)
		putVec(rec[12:], f.Vertex[0])
		putVec(rec[24:], f.Vertex[1])
		putVec(rec[36:], f.Vertex[2])
		binary.LittleEndian.PutUint16(rec[48:], 0)
		if _, err := bw.Write(rec[:]); err != nil {
			return fmt.Errorf("stl: writing face %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("stl: flushing output: %w", err)
	}
	return nil
}

// putVec packs a vector as three little-endian float32s.
func putVec(b []byte, v geom.Vec) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(v.Z))
}

// WriteFile serializes obj to the named file in binary STL.
func WriteFile(filename string, obj *geom.Object) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	defer f.Close()

	if err := Write(f, obj); err != nil {
		return err
	}
	return f.Close()
}

// WriteASCII serializes obj to w in ASCII STL. Coordinates are written
// in scientific notation at default precision.
func WriteASCII(w io.Writer, obj *geom.Object) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "solid object")
	for _, f := range obj.Faces {
		fmt.Fprintf(bw, "facet normal %v\n", f.Normal)
		fmt.Fprintln(bw, "  outer loop")
		for _, v := range f.Vertex {
			fmt.Fprintf(bw, "    vertex %v\n", v)
		}
		fmt.Fprintln(bw, "  endloop")
		fmt.Fprintln(bw, "endfacet")
	}
	fmt.Fprintln(bw, "endsolid object")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("stl: flushing output: %w", err)
	}
	return nil
}

// WriteASCIIFile serializes obj to the named file in ASCII STL.
func WriteASCIIFile(filename string, obj *geom.Object) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("stl: %w", err)
	}
	defer f.Close()

	if err := WriteASCII(f, obj); err != nil {
		return err
	}
	return f.Close()
}
