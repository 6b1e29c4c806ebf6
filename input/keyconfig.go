package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName is the lowercase reverse of tcell.KeyNames, built once
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// Binding pairs a key name with an action name
// Key is case-sensitive for single runes ("W" and "w" differ)
type Binding struct {
	Key    string
	Action string
}

// LoadKeyConfig builds a sparse override KeyTable from bindings, later entries winning
// Single characters bind runes; longer names ("up", "esc", "ctrl-c") bind special keys
// Returns error on unknown action names or key names
func LoadKeyConfig(bindings []Binding) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Intent),
		Runes:       make(map[rune]Intent),
	}

	for _, b := range bindings {
		keyStr := b.Key
		intent, err := resolveAction(b.Action)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = intent
			continue
		}

		k, ok := keysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("key %q: unknown key name", keyStr)
		}
		kt.SpecialKeys[k] = intent
	}

	return kt, nil
}

func resolveAction(name string) (Intent, error) {
	intent, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return IntentNone, fmt.Errorf("unknown action %q", name)
	}
	return intent, nil
}

func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, true
	}
	return 0, false
}
