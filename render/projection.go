package render

import "github.com/go-gl/mathgl/mgl32"

// clipReach limits how far outside the viewport an edge endpoint may land before the edge is dropped
const clipReach = 4.0

// Viewport is the cell rectangle the scene is drawn into
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Project maps a model-space point through mvp to viewport cells
// ok is false when the point is behind the eye or outside the depth range
func Project(mvp mgl32.Mat4, v mgl32.Vec3, vp Viewport) (x, y int, ndc mgl32.Vec3, ok bool) {
	clip := mvp.Mul4x1(v.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, ndc, false
	}
	ndc = clip.Vec3().Mul(1 / w)
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, ndc, false
	}

	x = vp.X + int((ndc.X()+1)/2*float32(vp.Width-1)+0.5)
	y = vp.Y + int((1-ndc.Y())/2*float32(vp.Height-1)+0.5)
	return x, y, ndc, true
}

// InView reports whether a projected cell lies inside the viewport
func (vp Viewport) InView(x, y int) bool {
	return x >= vp.X && x < vp.X+vp.Width && y >= vp.Y && y < vp.Y+vp.Height
}

// nearView rejects edges whose endpoints land far off screen
func nearView(ndc mgl32.Vec3) bool {
	return ndc.X() >= -clipReach && ndc.X() <= clipReach && ndc.Y() >= -clipReach && ndc.Y() <= clipReach
}

// line walks the cells between two points with Bresenham's algorithm, endpoints included
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
