package input

// Intent is one discrete operator command
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit
	IntentResize

	// Camera movement on the active slot
	IntentMoveForward
	IntentMoveBack
	IntentStrafeLeft
	IntentStrafeRight
	IntentTiltUp
	IntentTiltDown

	// Camera selection, IntentSelectCamera1 + n selects slot n
	IntentSelectCamera1
	IntentSelectCamera2
	IntentSelectCamera3
	IntentSelectCamera4
	IntentSelectCamera5
	IntentSelectCamera6
	IntentSelectCamera7
	IntentSelectCamera8
	IntentSelectCamera9
)

// SelectSlot returns the zero-based camera slot for a select intent
func (i Intent) SelectSlot() (int, bool) {
	if i < IntentSelectCamera1 || i > IntentSelectCamera9 {
		return 0, false
	}
	return int(i - IntentSelectCamera1), true
}
