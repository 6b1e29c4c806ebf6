package asset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrMesh marks malformed mesh input
var ErrMesh = errors.New("invalid mesh")

// LoadOBJ reads a Wavefront OBJ file as a wireframe mesh
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := DecodeOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return m, nil
}

// DecodeOBJ parses vertex positions and faces; each face contributes its boundary edges
// Normals, texture coordinates and materials are ignored
func DecodeOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{Name: "obj"}
	seen := make(map[[2]int]struct{})

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			m.Vertices = append(m.Vertices, v)

		case "f":
			idx, err := parseFace(fields[1:], len(m.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			for i := range idx {
				m.addEdge(seen, idx[i], idx[(i+1)%len(idx)])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(m.Vertices) == 0 {
		return nil, fmt.Errorf("no vertices: %w", ErrMesh)
	}
	return m, nil
}

// v <x> <y> <z> [w]
func parseVertex(fields []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	if len(fields) < 3 {
		return v, fmt.Errorf("vertex with %d coordinates: %w", len(fields), ErrMesh)
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, fmt.Errorf("vertex coordinate %q: %w", fields[i], ErrMesh)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// f v1[/vt1[/vn1]] v2... ; negative indices count back from the last vertex
func parseFace(fields []string, vertexCount int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face with %d corners: %w", len(fields), ErrMesh)
	}
	idx := make([]int, len(fields))
	for i, f := range fields {
		ref, _, _ := strings.Cut(f, "/")
		n, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("face index %q: %w", f, ErrMesh)
		}
		switch {
		case n > 0:
			idx[i] = n - 1
		case n < 0:
			idx[i] = vertexCount + n
		default:
			return nil, fmt.Errorf("face index 0: %w", ErrMesh)
		}
		if idx[i] < 0 || idx[i] >= vertexCount {
			return nil, fmt.Errorf("face index %d of %d vertices: %w", n, vertexCount, ErrMesh)
		}
	}
	return idx, nil
}
