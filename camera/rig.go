package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drift-scene/parameter"
	"github.com/lixenwraith/drift-scene/vmath"
)

// Preset is the initial placement of one rig slot
type Preset struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	WorldUp   mgl32.Vec3
}

// DefaultPresets returns the stock four-slot rig
func DefaultPresets() []Preset {
	presets := make([]Preset, len(parameter.RigPresets))
	for i, p := range parameter.RigPresets {
		presets[i] = Preset{
			Position:  vmath.Vec3From(p.Position),
			Direction: vmath.Vec3From(p.Direction),
			WorldUp:   vmath.Vec3From(p.WorldUp),
		}
	}
	return presets
}

// DefaultProjection returns the shared stock projection
func DefaultProjection() Projection {
	return Projection{
		FOV:    parameter.CameraFOV,
		Aspect: parameter.CameraAspect,
		Near:   parameter.CameraNear,
		Far:    parameter.CameraFar,
	}
}

// Rig is a fixed, index-stable set of cameras with one active slot
// Not safe for concurrent use; the frame loop is its only writer
type Rig struct {
	cameras []*Camera
	active  int
}

// NewRig builds one camera per preset, slot 0 active
// Any degenerate preset rejects the whole rig
func NewRig(presets []Preset, proj Projection) (*Rig, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("empty rig: %w", ErrCameraIndex)
	}

	r := &Rig{cameras: make([]*Camera, 0, len(presets))}
	for i, p := range presets {
		c, err := New(p.Position, p.Direction, p.WorldUp, proj)
		if err != nil {
			return nil, fmt.Errorf("camera %d: %w", i, err)
		}
		r.cameras = append(r.cameras, c)
	}
	return r, nil
}

// Len returns the number of slots
func (r *Rig) Len() int {
	return len(r.cameras)
}

// SetActive switches the active slot; out-of-range indices are rejected, never clamped
func (r *Rig) SetActive(index int) error {
	if index < 0 || index >= len(r.cameras) {
		return fmt.Errorf("select %d of %d: %w", index, len(r.cameras), ErrCameraIndex)
	}
	r.active = index
	return nil
}

// ActiveIndex returns the active slot
func (r *Rig) ActiveIndex() int {
	return r.active
}

// Active returns the active camera
func (r *Rig) Active() *Camera {
	return r.cameras[r.active]
}

// Camera returns the camera in a slot
func (r *Rig) Camera(index int) (*Camera, error) {
	if index < 0 || index >= len(r.cameras) {
		return nil, fmt.Errorf("camera %d of %d: %w", index, len(r.cameras), ErrCameraIndex)
	}
	return r.cameras[index], nil
}
