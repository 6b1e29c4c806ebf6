package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift-scene/vmath"
)

const eps = 1e-5

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], eps, "want %v, got %v", want, got)
	}
}

func matNear(a, b mgl32.Mat4) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func assertBasis(t *testing.T, c *Camera) {
	t.Helper()
	assert.True(t, vmath.Orthogonal(c.Right, c.Direction), "right·direction")
	assert.True(t, vmath.Orthogonal(c.Up, c.Direction), "up·direction")
	assert.True(t, vmath.Orthogonal(c.Right, c.Up), "right·up")
	assertVecNear(t, c.Direction.Mul(-1), c.Right.Cross(c.Up).Normalize())
	assert.True(t, matNear(c.View,
		mgl32.LookAtV(c.Position, c.Position.Add(c.Direction), c.Up)), "view is stale")
}

func TestNew_ForwardCameraBasis(t *testing.T) {
	c, err := New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, DefaultProjection())
	require.NoError(t, err)

	// right = normalize(up × dir), up = right × dir: the (1,0,0)/(0,1,0) pair scaled by -1
	assertVecNear(t, mgl32.Vec3{-1, 0, 0}, c.Right)
	assertVecNear(t, mgl32.Vec3{0, -1, 0}, c.Up)
	assert.InDelta(t, 1.0, c.Right.Len(), eps)
	assert.InDelta(t, 1.0, c.Up.Len(), eps)

	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 9}, c.Up)
	assert.True(t, matNear(c.View, want))

	// Origin sits 10 units in front of the eye
	origin := c.View.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assertVecNear(t, mgl32.Vec3{0, 0, -10}, origin.Vec3())
	assert.InDelta(t, 1.0, origin.W(), eps)
	assertBasis(t, c)
}

func TestNew_InvertedWorldUpGivesUprightCamera(t *testing.T) {
	c, err := New(mgl32.Vec3{0, 0, 7}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, -1, 0}, DefaultProjection())
	require.NoError(t, err)
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, c.Right)
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, c.Up)
	assertBasis(t, c)
}

func TestNew_NormalizesDirection(t *testing.T) {
	c, err := New(mgl32.Vec3{}, mgl32.Vec3{0, 0, -4}, mgl32.Vec3{0, 1, 0}, DefaultProjection())
	require.NoError(t, err)
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, c.Direction)
}

func TestNew_DegenerateBasis(t *testing.T) {
	tests := []struct {
		name      string
		direction mgl32.Vec3
		worldUp   mgl32.Vec3
	}{
		{"parallel", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}},
		{"antiparallel", mgl32.Vec3{0, -1, 0}, mgl32.Vec3{0, 2, 0}},
		{"zero direction", mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}},
		{"zero world-up", mgl32.Vec3{0, 0, -1}, mgl32.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(mgl32.Vec3{}, tt.direction, tt.worldUp, DefaultProjection())
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrDegenerateBasis))
		})
	}
}

func TestComputeBasis_RejectionKeepsCamera(t *testing.T) {
	c, err := New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, DefaultProjection())
	require.NoError(t, err)
	before := *c

	err = c.ComputeBasis(mgl32.Vec3{0, 0, 3})
	assert.ErrorIs(t, err, ErrDegenerateBasis)
	assert.Equal(t, before, *c)
}

func TestMoveAndStrafe(t *testing.T) {
	c, err := New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, DefaultProjection())
	require.NoError(t, err)

	c.Move(0.5)
	assertVecNear(t, mgl32.Vec3{0, 0, 9.5}, c.Position)

	c.Move(-1.5)
	assertVecNear(t, mgl32.Vec3{0, 0, 11}, c.Position)

	// Right is -X for this camera
	c.Strafe(2)
	assertVecNear(t, mgl32.Vec3{-2, 0, 11}, c.Position)
	assertBasis(t, c)
}

func TestTilt_AccumulatesWithoutRenormalizing(t *testing.T) {
	c, err := New(mgl32.Vec3{0, 0, 7}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, -1, 0}, DefaultProjection())
	require.NoError(t, err)

	require.NoError(t, c.Tilt(mgl32.Vec3{0, 1, 0}))
	assertVecNear(t, mgl32.Vec3{0, 2, 0}, c.Up)
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, c.Right)
	assertBasis(t, c)
}

func TestTilt_DropsComponentAlongDirection(t *testing.T) {
	c, err := New(mgl32.Vec3{0, 0, 7}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, -1, 0}, DefaultProjection())
	require.NoError(t, err)

	require.NoError(t, c.Tilt(mgl32.Vec3{0.5, 0, 3}))
	assertVecNear(t, mgl32.Vec3{0.5, 1, 0}, c.Up)
	assertBasis(t, c)
}

func TestTilt_ZeroUpRejected(t *testing.T) {
	c, err := New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, DefaultProjection())
	require.NoError(t, err)
	before := *c

	// up is (0,-1,0); adding (0,1,0) cancels it
	err = c.Tilt(mgl32.Vec3{0, 1, 0})
	assert.ErrorIs(t, err, ErrDegenerateBasis)
	assert.Equal(t, before, *c)
}

func TestBasisSurvivesCommandSequences(t *testing.T) {
	rng := vmath.NewFastRand(1234)
	tilts := []mgl32.Vec3{{0, 1, 0}, {0, -1, 0}, {0.25, 0, 0}, {0, 0.5, 2}}

	for _, p := range DefaultPresets() {
		c, err := New(p.Position, p.Direction, p.WorldUp, DefaultProjection())
		require.NoError(t, err)
		direction := c.Direction

		for i := 0; i < 500; i++ {
			delta := float32(rng.CenteredInt(20)) / 10
			switch rng.Intn(3) {
			case 0:
				c.Move(delta)
			case 1:
				c.Strafe(delta)
			case 2:
				_ = c.Tilt(tilts[rng.Intn(len(tilts))])
			}
		}

		assert.Equal(t, direction, c.Direction)
		assertBasis(t, c)
	}
}

func TestViewProjection(t *testing.T) {
	c, err := New(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, DefaultProjection())
	require.NoError(t, err)
	assert.True(t, matNear(c.ViewProjection(), c.Projection.Mul4(c.View)))
}
