package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/facet/pkg/geom"
)

// Read parses binary STL from r into a mesh. The 80-byte header is
// ignored; normals are taken from the file as-is, not rederived, so a
// write/read round trip preserves every face bit for bit. Attribute
// bytes are discarded.
func Read(r io.Reader) (*geom.Object, error) {
	var header struct {
		H     [headerSize]byte
		NFace uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("stl: reading header: %w", err)
	}

	obj := geom.New()
	rec := make([]byte, faceSize)
	for i := 0; i < int(header.NFace); i++ {
		if _, err := io.ReadFull(r, rec); err != nil {
			return nil, fmt.Errorf("stl: reading face %d of %d: %w", i, header.NFace, err)
		}
		f := geom.NewFace(getVec(rec[12:]), getVec(rec[24:]), getVec(rec[36:]))
		f.Normal = getVec(rec[0:])
		obj.Append(f)
	}

	return obj, nil
}

// getVec unpacks three little-endian float32s.
func getVec(b []byte) geom.Vec {
	return geom.V(
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:])),
	)
}

// ReadFile parses the named binary STL file.
func ReadFile(filename string) (*geom.Object, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("stl: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// ReadASCII parses ASCII STL from r. Parsing is line-oriented and
// whitespace-tolerant; the solid name is ignored.
func ReadASCII(r io.Reader) (*geom.Object, error) {
	sc := bufio.NewScanner(r)
	obj := geom.New()

	var (
		normal geom.Vec
		verts  []geom.Vec
		line   int
	)

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid", "endsolid", "outer", "endloop":
			// Structural lines carry no geometry.

		case "facet":
			if len(fields) != 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("stl: line %d: malformed facet line", line)
			}
			n, err := parseVec(fields[2:5])
			if err != nil {
				return nil, fmt.Errorf("stl: line %d: %w", line, err)
			}
			normal = n
			verts = verts[:0]

		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("stl: line %d: malformed vertex line", line)
			}
			v, err := parseVec(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("stl: line %d: %w", line, err)
			}
			verts = append(verts, v)

		case "endfacet":
			if len(verts) != 3 {
				return nil, fmt.Errorf("stl: line %d: facet has %d vertices, want 3", line, len(verts))
			}
			f := geom.NewFace(verts[0], verts[1], verts[2])
			f.Normal = normal
			obj.Append(f)

		default:
			return nil, fmt.Errorf("stl: line %d: unexpected token %q", line, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("stl: %w", err)
	}

	return obj, nil
}

// parseVec parses three decimal or scientific-notation coordinates.
func parseVec(fields []string) (geom.Vec, error) {
	var c [3]float32
	for i, s := range fields {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return geom.Vec{}, fmt.Errorf("bad coordinate %q: %w", s, err)
		}
		c[i] = float32(f)
	}
	return geom.V(c[0], c[1], c[2]), nil
}

// ReadASCIIFile parses the named ASCII STL file.
func ReadASCIIFile(filename string) (*geom.Object, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("stl: %w", err)
	}
	defer f.Close()
	return ReadASCII(f)
}
