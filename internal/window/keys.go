package window

import (
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/sketchpad/internal/shape"
	"github.com/example/sketchpad/internal/tool"
)

// Actions understood by Session.Do besides "tool:<name>".
const (
	ActionSave      = "save"
	ActionCopy      = "copy"
	ActionCopyImage = "copyimage"
	ActionPaste     = "paste"
	ActionUndo      = "undo"
	ActionReset     = "reset"
	ActionExport    = "export"
	ActionQuit      = "quit"
	ActionCancel    = "cancel"
	ActionStroke    = "stroke"
	ActionFill      = "fill"
	ActionWider     = "wider"
	ActionThinner   = "thinner"
)

const toolPrefix = "tool:"

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// Binding pairs a shortcut with its action for help output.
type Binding struct {
	Shortcut KeyShortcut
	Action   string
}

var commandKeys = []Binding{
	{KeyShortcut{Rune: 's', Modifiers: key.ModControl}, ActionSave},
	{KeyShortcut{Rune: 'c', Modifiers: key.ModControl}, ActionCopy},
	{KeyShortcut{Rune: 'c', Modifiers: key.ModControl | key.ModShift}, ActionCopyImage},
	{KeyShortcut{Rune: 'v', Modifiers: key.ModControl}, ActionPaste},
	{KeyShortcut{Rune: 'z', Modifiers: key.ModControl}, ActionUndo},
	{KeyShortcut{Rune: 'n', Modifiers: key.ModControl}, ActionReset},
	{KeyShortcut{Rune: 'e', Modifiers: key.ModControl}, ActionExport},
	{KeyShortcut{Rune: 'q', Modifiers: key.ModControl}, ActionQuit},
	{KeyShortcut{Code: key.CodeEscape}, ActionCancel},
	{KeyShortcut{Rune: 'c'}, ActionStroke},
	{KeyShortcut{Rune: 'f'}, ActionFill},
	{KeyShortcut{Rune: ']'}, ActionWider},
	{KeyShortcut{Rune: '['}, ActionThinner},
	{KeyShortcut{Rune: 'm'}, toolPrefix + tool.NameMover},
	{KeyShortcut{Rune: 'x'}, toolPrefix + tool.NameDeleter},
	{KeyShortcut{Rune: 'u'}, toolPrefix + tool.NameDuplicator},
	{KeyShortcut{Rune: 'b'}, toolPrefix + tool.NameBucket},
}

// Bindings lists every shortcut. Digits 1-9 select the draw tools in
// shape.Kinds order.
func Bindings() []Binding {
	out := append([]Binding(nil), commandKeys...)
	for i, k := range shape.Kinds() {
		if i >= 9 {
			break
		}
		out = append(out, Binding{KeyShortcut{Rune: rune('1' + i)}, toolPrefix + string(k)})
	}
	return out
}

var keyboardAction = func() map[KeyShortcut]string {
	m := make(map[KeyShortcut]string)
	for _, b := range Bindings() {
		m[b.Shortcut] = b.Action
	}
	return m
}()

// actionFor maps a key press to an action name.
func actionFor(e key.Event) (string, bool) {
	if e.Direction != key.DirPress {
		return "", false
	}
	mods := e.Modifiers & (key.ModControl | key.ModShift)
	r := unicode.ToLower(e.Rune)
	// Some drivers report ctrl+letter as the ASCII control character.
	if mods&key.ModControl != 0 && r > 0 && r < 0x20 {
		r += 'a' - 1
	}
	if r > 0 {
		if a, ok := keyboardAction[KeyShortcut{Rune: r, Modifiers: mods}]; ok {
			return a, true
		}
		// Shifted punctuation and digits arrive with ModShift set.
		if a, ok := keyboardAction[KeyShortcut{Rune: r, Modifiers: mods &^ key.ModShift}]; ok {
			return a, true
		}
	}
	a, ok := keyboardAction[KeyShortcut{Code: e.Code, Modifiers: mods}]
	return a, ok
}

// String renders the shortcut as, for example, "ctrl+s" or "esc".
func (k KeyShortcut) String() string {
	var s string
	if k.Modifiers&key.ModControl != 0 {
		s += "ctrl+"
	}
	if k.Modifiers&key.ModShift != 0 {
		s += "shift+"
	}
	switch {
	case k.Rune != 0:
		s += string(k.Rune)
	case k.Code == key.CodeEscape:
		s += "esc"
	default:
		s += k.Code.String()
	}
	return s
}
