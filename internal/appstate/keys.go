package appstate

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Either Rune or Code is set.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

const (
	actionPaste    = "paste"
	actionCopy     = "copy"
	actionUndo     = "undo"
	actionClear    = "clear"
	actionActual   = "actual-size"
	actionDraw     = "draw"
	actionPan      = "pan"
	actionToggle   = "toggle-mode"
	actionNarrower = "pen-narrower"
	actionWider    = "pen-wider"
	actionZoomIn   = "zoom-in"
	actionZoomOut  = "zoom-out"
	actionQuit     = "quit"
)

// defaultBindings lists the shortcuts of every window action.
var defaultBindings = map[string]shortcutList{
	actionPaste:    {{Rune: 'v', Modifiers: key.ModControl}, {Code: key.CodeV, Modifiers: key.ModControl}},
	actionCopy:     {{Rune: 'c', Modifiers: key.ModControl}, {Code: key.CodeC, Modifiers: key.ModControl}},
	actionUndo:     {{Rune: 'z', Modifiers: key.ModControl}, {Code: key.CodeZ, Modifiers: key.ModControl}},
	actionClear:    {{Code: key.CodeDeleteForward}},
	actionActual:   {{Rune: '0', Modifiers: key.ModControl}, {Code: key.Code0, Modifiers: key.ModControl}},
	actionDraw:     {{Rune: 'd'}},
	actionPan:      {{Rune: 'm'}, {Rune: 'p'}},
	actionToggle:   {{Code: key.CodeTab}},
	actionNarrower: {{Rune: '['}},
	actionWider:    {{Rune: ']'}},
	actionZoomIn:   {{Rune: '+'}, {Rune: '='}, {Code: key.CodeKeypadPlusSign}},
	actionZoomOut:  {{Rune: '-'}, {Code: key.CodeKeypadHyphenMinus}},
	actionQuit:     {{Rune: 'q'}, {Code: key.CodeEscape}},
}

// keymap resolves key events to action names.
type keymap map[KeyShortcut]string

func newKeymap(bindings map[string]shortcutList) keymap {
	km := keymap{}
	for name, keys := range bindings {
		for _, sc := range keys.KeyboardShortcuts() {
			km[sc] = name
		}
	}
	return km
}

// lookup matches on the character first and falls back to the physical key.
// Shift is ignored for characters since it is already reflected in the rune.
func (km keymap) lookup(e key.Event) (string, bool) {
	mods := e.Modifiers & (key.ModShift | key.ModControl | key.ModAlt | key.ModMeta)
	if e.Rune > 0 && unicode.IsPrint(e.Rune) {
		if name, ok := km[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods &^ key.ModShift}]; ok {
			return name, true
		}
	}
	name, ok := km[KeyShortcut{Code: e.Code, Modifiers: mods}]
	return name, ok
}
