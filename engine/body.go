package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drift-scene/camera"
)

// Body is a movable scene object tracked purely by its transforms
// The accumulated translation is the running state; Model is what collision and rendering see
type Body struct {
	translation mgl32.Mat4

	model      mgl32.Mat4
	view       mgl32.Mat4
	projection mgl32.Mat4
	mvp        mgl32.Mat4
}

// NewBody creates a body whose model starts at identity and whose accumulated translation starts at offset
func NewBody(offset mgl32.Vec3) *Body {
	return &Body{
		translation: mgl32.Translate3D(offset.X(), offset.Y(), offset.Z()),
		model:       mgl32.Ident4(),
		view:        mgl32.Ident4(),
		projection:  mgl32.Ident4(),
		mvp:         mgl32.Ident4(),
	}
}

// Translate accumulates d onto the running translation without touching Model
func (b *Body) Translate(d mgl32.Vec3) {
	b.translation = b.translation.Mul4(mgl32.Translate3D(d.X(), d.Y(), d.Z()))
}

// Commit assigns the accumulated translation to Model
func (b *Body) Commit() {
	b.model = b.translation
}

// Refresh adopts the camera's projection and view and recomputes MVP
func (b *Body) Refresh(cam *camera.Camera) {
	b.projection = cam.Projection
	b.view = cam.View
	b.mvp = b.projection.Mul4(b.view).Mul4(b.model)
}

// Translation returns the accumulated offset
func (b *Body) Translation() mgl32.Vec3 {
	return b.translation.Col(3).Vec3()
}

// ModelMatrix returns the committed model transform
func (b *Body) ModelMatrix() mgl32.Mat4 { return b.model }

func (b *Body) ViewMatrix() mgl32.Mat4       { return b.view }
func (b *Body) ProjectionMatrix() mgl32.Mat4 { return b.projection }
func (b *Body) MVP() mgl32.Mat4              { return b.mvp }
