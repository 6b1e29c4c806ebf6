package parameter

// Camera movement
const (
	// CameraSpeed is the distance a move or strafe command travels per tick
	CameraSpeed = 0.05

	// CameraTiltStep is the world-Y amount a tilt command adds to the up vector
	CameraTiltStep = 1.0
)

// Projection shared by every rig slot
const (
	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 45.0

	// CameraAspect matches a 1024x768 viewport
	CameraAspect = 1024.0 / 768.0

	CameraNear = 0.1
	CameraFar  = 100.0
)

// CameraPreset describes one rig slot before its basis is derived
type CameraPreset struct {
	Position  [3]float32
	Direction [3]float32
	WorldUp   [3]float32
}

// RigPresets is the stock four-slot rig
// Slots 0 and 2 look down -Z with an inverted up, slot 1 looks down -Z upright,
// slot 3 sits behind the scene looking down +Z
var RigPresets = []CameraPreset{
	{Position: [3]float32{0, 0, 10}, Direction: [3]float32{0, 0, -1}, WorldUp: [3]float32{0, 1, 0}},
	{Position: [3]float32{0, 0, 7}, Direction: [3]float32{0, 0, -1}, WorldUp: [3]float32{0, -1, 0}},
	{Position: [3]float32{0, 0, 20}, Direction: [3]float32{0, 0, -1}, WorldUp: [3]float32{0, 1, 0}},
	{Position: [3]float32{0, 0, -20}, Direction: [3]float32{0, 0, 1}, WorldUp: [3]float32{0, -1, 0}},
}

// MaxRigSize bounds the number of configurable slots (digit keys 1-9)
const MaxRigSize = 9
