package camera

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/drift-scene/vmath"
)

var (
	// ErrDegenerateBasis is returned when direction and up reference are parallel or zero
	ErrDegenerateBasis = errors.New("degenerate camera basis")

	// ErrCameraIndex is returned for a rig slot outside the configured range
	ErrCameraIndex = errors.New("camera index out of range")
)

// Projection holds perspective parameters, FOV in degrees
type Projection struct {
	FOV    float32
	Aspect float32
	Near   float32
	Far    float32
}

// Matrix builds the perspective matrix
func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), p.Aspect, p.Near, p.Far)
}

// Camera is one viewpoint of the rig
// Right, Direction and Up form a right-handed orthogonal basis; View is kept in sync with them
type Camera struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Right     mgl32.Vec3
	Up        mgl32.Vec3

	FOV        float32
	Projection mgl32.Mat4
	View       mgl32.Mat4
}

// New constructs a camera, normalizing direction and deriving its basis from worldUp
func New(position, direction, worldUp mgl32.Vec3, proj Projection) (*Camera, error) {
	if vmath.IsZero(direction) {
		return nil, fmt.Errorf("direction %v: %w", direction, ErrDegenerateBasis)
	}

	c := &Camera{
		Position:   position,
		Direction:  direction.Normalize(),
		FOV:        proj.FOV,
		Projection: proj.Matrix(),
	}
	if err := c.ComputeBasis(worldUp); err != nil {
		return nil, err
	}
	return c, nil
}

// ComputeBasis sets Right = normalize(worldUp × Direction) and Up = Right × Direction, then refreshes View
// Leaves the camera untouched when worldUp is parallel to Direction
func (c *Camera) ComputeBasis(worldUp mgl32.Vec3) error {
	right := worldUp.Cross(c.Direction)
	if vmath.IsZero(right) {
		return fmt.Errorf("world-up %v against direction %v: %w", worldUp, c.Direction, ErrDegenerateBasis)
	}

	c.Right = right.Normalize()
	c.Up = c.Right.Cross(c.Direction)
	c.RecomputeView()
	return nil
}

// RecomputeView rebuilds View = lookAt(Position, Position+Direction, Up)
func (c *Camera) RecomputeView() {
	c.View = mgl32.LookAtV(c.Position, c.Position.Add(c.Direction), c.Up)
}

// Move translates along Direction
func (c *Camera) Move(delta float32) {
	c.Position = c.Position.Add(c.Direction.Mul(delta))
	c.RecomputeView()
}

// Strafe translates along Right
func (c *Camera) Strafe(delta float32) {
	c.Position = c.Position.Add(c.Right.Mul(delta))
	c.RecomputeView()
}

// Tilt adds deltaUp to Up without renormalizing its length
// The component along Direction is dropped so the basis stays orthogonal
// A result with no usable length is rejected and the camera is left unchanged
func (c *Camera) Tilt(deltaUp mgl32.Vec3) error {
	up := vmath.Reject(c.Up.Add(deltaUp), c.Direction)
	if vmath.IsZero(up) {
		return fmt.Errorf("tilt %v from up %v: %w", deltaUp, c.Up, ErrDegenerateBasis)
	}

	c.Up = up
	c.Right = c.Direction.Cross(up).Normalize()
	c.RecomputeView()
	return nil
}

// ViewProjection returns Projection × View
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.View)
}
