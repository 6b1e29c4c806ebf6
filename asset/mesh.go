package asset

import "github.com/go-gl/mathgl/mgl32"

// Mesh is wireframe geometry in model space
type Mesh struct {
	Name     string
	Vertices []mgl32.Vec3
	Edges    [][2]int
}

// Cube returns an axis-aligned cube centred on the origin
func Cube(half float32) *Mesh {
	m := &Mesh{Name: "cube", Vertices: make([]mgl32.Vec3, 0, 8)}
	for i := 0; i < 8; i++ {
		v := mgl32.Vec3{-half, -half, -half}
		if i&1 != 0 {
			v[0] = half
		}
		if i&2 != 0 {
			v[1] = half
		}
		if i&4 != 0 {
			v[2] = half
		}
		m.Vertices = append(m.Vertices, v)
	}
	// Corners differing in exactly one bit share an edge
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				m.Edges = append(m.Edges, [2]int{i, j})
			}
		}
	}
	return m
}

// Bounds returns the model-space min and max corners; both are zero for an empty mesh
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], v[k])
			hi[k] = max(hi[k], v[k])
		}
	}
	return lo, hi
}

// addEdge records an undirected edge once
func (m *Mesh) addEdge(seen map[[2]int]struct{}, a, b int) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	key := [2]int{a, b}
	if _, ok := seen[key]; ok {
		return
	}
	seen[key] = struct{}{}
	m.Edges = append(m.Edges, key)
}
