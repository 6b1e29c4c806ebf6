package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings
// j/k/l/p select slots 1-4; digits select any configured slot
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyUp:     IntentMoveForward,
			tcell.KeyDown:   IntentMoveBack,
			tcell.KeyLeft:   IntentStrafeLeft,
			tcell.KeyRight:  IntentStrafeRight,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			'w': IntentTiltUp,
			's': IntentTiltDown,
			'j': IntentSelectCamera1,
			'k': IntentSelectCamera2,
			'l': IntentSelectCamera3,
			'p': IntentSelectCamera4,
			'1': IntentSelectCamera1,
			'2': IntentSelectCamera2,
			'3': IntentSelectCamera3,
			'4': IntentSelectCamera4,
			'5': IntentSelectCamera5,
			'6': IntentSelectCamera6,
			'7': IntentSelectCamera7,
			'8': IntentSelectCamera8,
			'9': IntentSelectCamera9,
		},
	}
}

// Resolve maps a terminal event to an intent
func (kt *KeyTable) Resolve(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return kt.Runes[ev.Rune()]
		}
		return kt.SpecialKeys[ev.Key()]
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

// Merge overlays non-nil override maps onto kt; IntentNone entries unbind
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for k, v := range override.SpecialKeys {
		if v == IntentNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = v
	}
	for r, v := range override.Runes {
		if v == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = v
	}
}
