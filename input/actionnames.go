package input

// actionRegistry maps canonical action names to intents
// Used by the keymap config loader to resolve action strings to bindings
var actionRegistry = map[string]Intent{
	// Unbind sentinel
	"none": IntentNone,

	"quit": IntentQuit,

	"move_forward": IntentMoveForward,
	"move_back":    IntentMoveBack,
	"strafe_left":  IntentStrafeLeft,
	"strafe_right": IntentStrafeRight,
	"tilt_up":      IntentTiltUp,
	"tilt_down":    IntentTiltDown,

	"camera_1": IntentSelectCamera1,
	"camera_2": IntentSelectCamera2,
	"camera_3": IntentSelectCamera3,
	"camera_4": IntentSelectCamera4,
	"camera_5": IntentSelectCamera5,
	"camera_6": IntentSelectCamera6,
	"camera_7": IntentSelectCamera7,
	"camera_8": IntentSelectCamera8,
	"camera_9": IntentSelectCamera9,
}

// ActionNames returns the known action names
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
