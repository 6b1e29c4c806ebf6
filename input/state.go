package input

import "github.com/gdamore/tcell/v2"

// Frame is the discrete key state collected for one tick
type Frame struct {
	MoveForward bool
	MoveBack    bool
	StrafeLeft  bool
	StrafeRight bool
	TiltUp      bool
	TiltDown    bool

	// SelectCamera is the 1-based slot requested this tick, 0 for none
	SelectCamera int

	Quit    bool
	Resized bool
}

// Apply folds one intent into the frame
// Repeated presses within a tick collapse to a single press
func (f *Frame) Apply(intent Intent) {
	switch intent {
	case IntentQuit:
		f.Quit = true
	case IntentResize:
		f.Resized = true
	case IntentMoveForward:
		f.MoveForward = true
	case IntentMoveBack:
		f.MoveBack = true
	case IntentStrafeLeft:
		f.StrafeLeft = true
	case IntentStrafeRight:
		f.StrafeRight = true
	case IntentTiltUp:
		f.TiltUp = true
	case IntentTiltDown:
		f.TiltDown = true
	default:
		if slot, ok := intent.SelectSlot(); ok {
			f.SelectCamera = slot + 1
		}
	}
}

// Collector resolves terminal events into the pending frame
type Collector struct {
	keys    *KeyTable
	pending Frame
}

func NewCollector(keys *KeyTable) *Collector {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Collector{keys: keys}
}

// Handle folds a terminal event into the pending frame
func (c *Collector) Handle(ev tcell.Event) Intent {
	intent := c.keys.Resolve(ev)
	c.pending.Apply(intent)
	return intent
}

// Take returns the pending frame and starts a new one
func (c *Collector) Take() Frame {
	f := c.pending
	c.pending = Frame{}
	return f
}
