package physics

import "github.com/go-gl/mathgl/mgl32"

// Positioned exposes the current world transform of a movable body
type Positioned interface {
	ModelMatrix() mgl32.Mat4
}

// Intersects reports whether a and b are closer than threshold on both x and y
// Only the translation columns of the model matrices are compared; each body spans
// threshold/2 per side, and touching edges (separation == threshold) do not collide
func Intersects(a, b Positioned, threshold float32) bool {
	ta := a.ModelMatrix().Col(3)
	tb := b.ModelMatrix().Col(3)
	return Overlap(ta.X(), ta.Y(), tb.X(), tb.Y(), threshold)
}

// Overlap is the coordinate form of Intersects
func Overlap(ax, ay, bx, by, threshold float32) bool {
	half := threshold / 2
	return !(ax+half <= bx-half ||
		ax-half >= bx+half ||
		ay+half <= by-half ||
		ay-half >= by+half)
}

// Separation returns the opposing x-axis translations applied on a colliding tick:
// negative for the first body, positive for the second
func Separation(impulse float32) (first, second mgl32.Vec3) {
	return mgl32.Vec3{-impulse, 0, 0}, mgl32.Vec3{impulse, 0, 0}
}
