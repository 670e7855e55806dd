// ABOUTME: Defines the closed logical key variant, modifier set, and event kind for key events.
// ABOUTME: Event is the normalized (key, modifiers, kind) triple consumed by the encoder.

package key

import "strings"

// Code enumerates every logical key the codec knows about.
// The zero value is KeyUnrecognized.
type Code int

const (
	KeyUnrecognized Code = iota // Key outside the closed set
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEscape
	KeySpace
	KeyDelete
	KeyPause
	KeyPrintScreen
	KeyChar // Character key; Key.Rune holds the character
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyMetaLeft
	KeyMetaRight
)

// Key identifies a logical key. Rune is only meaningful when Code is KeyChar.
type Key struct {
	Code Code
	Rune rune
}

// New returns the Key for a named code.
func New(c Code) Key {
	return Key{Code: c}
}

// FromRune returns the character Key for r.
func FromRune(r rune) Key {
	return Key{Code: KeyChar, Rune: r}
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	Shift   Modifiers = 1 << iota // bit 0
	Alt                           // bit 1
	Control                       // bit 2
	Meta                          // bit 3 (super / command)
)

// Has reports whether every modifier in x is present in m.
func (m Modifiers) Has(x Modifiers) bool {
	return m&x == x
}

// modifierNames lists modifiers in display order.
var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{Control, "ctrl"},
	{Alt, "alt"},
	{Shift, "shift"},
	{Meta, "meta"},
}

// String renders the set as "ctrl+alt+shift+meta" (subset, in that order).
func (m Modifiers) String() string {
	parts := make([]string, 0, len(modifierNames))
	for _, mn := range modifierNames {
		if m.Has(mn.mod) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}

// SelfModifier returns the modifier a modifier key implies about itself,
// or zero for every other key.
func (k Key) SelfModifier() Modifiers {
	switch k.Code {
	case KeyShiftLeft, KeyShiftRight:
		return Shift
	case KeyAltLeft, KeyAltRight:
		return Alt
	case KeyControlLeft, KeyControlRight:
		return Control
	case KeyMetaLeft, KeyMetaRight:
		return Meta
	default:
		return 0
	}
}

// Kind is the phase of a key event.
type Kind int

const (
	KindDown   Kind = iota // Initial press (default)
	KindRepeat             // Auto-repeat while held
	KindUp                 // Release
)

// KindOf derives the event kind from host repeat/release flags.
// Release wins when both are asserted; neither means KindDown.
func KindOf(repeat, up bool) Kind {
	switch {
	case up:
		return KindUp
	case repeat:
		return KindRepeat
	default:
		return KindDown
	}
}

var kindNames = map[Kind]string{
	KindDown:   "down",
	KindRepeat: "repeat",
	KindUp:     "up",
}

// String returns "down", "repeat" or "up".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return KindDown, false
}

// Event is a normalized key event: which key, which modifiers the caller
// reported as held, and the event phase.
type Event struct {
	Key  Key
	Mods Modifiers
	Kind Kind
}

// Modifiers returns the caller-supplied set plus the key's own modifier bit,
// so that pressing left shift always carries Shift.
func (e Event) Modifiers() Modifiers {
	return e.Mods | e.Key.SelfModifier()
}

// String renders the event as a key spec, e.g. "ctrl+enter" or "shift+tab:repeat".
func (e Event) String() string {
	s := e.Key.String()
	if mods := e.Mods.String(); mods != "" {
		s = mods + "+" + s
	}
	if e.Kind != KindDown {
		s += ":" + e.Kind.String()
	}
	return s
}
