// ABOUTME: Human-readable key names and the "ctrl+shift+tab" key spec parser.
// ABOUTME: Names are case-folded with x/text; unknown names carry fuzzy "did you mean" suggestions.

package key

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

// ErrUnknownKey is returned by ParseSpec when a key name is not recognized.
var ErrUnknownKey = errors.New("unknown key")

// keyNames provides the canonical lowercase name for each named code.
var keyNames = map[Code]string{
	KeyF1:           "f1",
	KeyF2:           "f2",
	KeyF3:           "f3",
	KeyF4:           "f4",
	KeyF5:           "f5",
	KeyF6:           "f6",
	KeyF7:           "f7",
	KeyF8:           "f8",
	KeyF9:           "f9",
	KeyF10:          "f10",
	KeyF11:          "f11",
	KeyF12:          "f12",
	KeyUp:           "up",
	KeyDown:         "down",
	KeyLeft:         "left",
	KeyRight:        "right",
	KeyPageUp:       "pageup",
	KeyPageDown:     "pagedown",
	KeyHome:         "home",
	KeyEnd:          "end",
	KeyInsert:       "insert",
	KeyEnter:        "enter",
	KeyBackspace:    "backspace",
	KeyTab:          "tab",
	KeyEscape:       "escape",
	KeySpace:        "space",
	KeyDelete:       "delete",
	KeyPause:        "pause",
	KeyPrintScreen:  "printscreen",
	KeyShiftLeft:    "shift_left",
	KeyShiftRight:   "shift_right",
	KeyControlLeft:  "ctrl_left",
	KeyControlRight: "ctrl_right",
	KeyAltLeft:      "alt_left",
	KeyAltRight:     "alt_right",
	KeyMetaLeft:     "meta_left",
	KeyMetaRight:    "meta_right",
}

// aliases are accepted by ParseSpec in addition to the canonical names.
var aliases = map[string]Code{
	"esc":        KeyEscape,
	"return":     KeyEnter,
	"ret":        KeyEnter,
	"del":        KeyDelete,
	"bs":         KeyBackspace,
	"ins":        KeyInsert,
	"pgup":       KeyPageUp,
	"pgdown":     KeyPageDown,
	"pgdn":       KeyPageDown,
	"arrowup":    KeyUp,
	"arrowdown":  KeyDown,
	"arrowleft":  KeyLeft,
	"arrowright": KeyRight,
	"prtsc":      KeyPrintScreen,
	"print":      KeyPrintScreen,
	"break":      KeyPause,
}

var modifierAliases = map[string]Modifiers{
	"ctrl":    Control,
	"control": Control,
	"c":       Control,
	"shift":   Shift,
	"s":       Shift,
	"alt":     Alt,
	"opt":     Alt,
	"option":  Alt,
	"m":       Alt,
	"meta":    Meta,
	"super":   Meta,
	"cmd":     Meta,
	"win":     Meta,
}

// nameIndex maps every accepted folded name to its code.
var nameIndex = func() map[string]Code {
	m := make(map[string]Code, len(keyNames)+len(aliases))
	for c, n := range keyNames {
		m[n] = c
	}
	for n, c := range aliases {
		m[n] = c
	}
	return m
}()

// String returns the canonical name of k, or the character itself for KeyChar.
func (k Key) String() string {
	if k.Code == KeyChar {
		return string(k.Rune)
	}
	if name, ok := keyNames[k.Code]; ok {
		return name
	}
	return "unrecognized"
}

// ParseSpec parses a key spec such as "ctrl+enter", "Shift+Tab", "a" or
// "alt+f4:repeat" into an Event. A trailing ":down|repeat|up" sets the kind.
func ParseSpec(spec string) (Event, error) {
	var ev Event
	body := spec
	if i := strings.LastIndexByte(spec, ':'); i > 0 && i < len(spec)-1 {
		if kind, ok := ParseKind(spec[i+1:]); ok {
			ev.Kind = kind
			body = spec[:i]
		}
	}

	parts := splitSpec(body)
	if len(parts) == 0 {
		return Event{}, fmt.Errorf("empty key spec")
	}

	fold := cases.Fold()
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierAliases[fold.String(p)]
		if !ok {
			return Event{}, fmt.Errorf("unknown modifier %q in %q", p, spec)
		}
		ev.Mods |= mod
	}

	k, err := parseKeyName(parts[len(parts)-1])
	if err != nil {
		return Event{}, err
	}
	ev.Key = k
	return ev, nil
}

// splitSpec splits on '+' while keeping a literal trailing "+" key ("ctrl++").
func splitSpec(s string) []string {
	if s == "" {
		return nil
	}
	if s == "+" {
		return []string{"+"}
	}
	if strings.HasSuffix(s, "++") {
		head := splitSpec(strings.TrimSuffix(s, "++"))
		return append(head, "+")
	}
	return strings.Split(s, "+")
}

// parseKeyName resolves a single key name. A lone character is a character
// key and keeps its case; everything else is matched case-insensitively.
func parseKeyName(name string) (Key, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r == ' ' {
			return New(KeySpace), nil
		}
		return FromRune(r), nil
	}

	folded := cases.Fold().String(name)
	if c, ok := nameIndex[folded]; ok {
		return New(c), nil
	}

	if suggestion := Suggest(folded); suggestion != "" {
		return Key{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownKey, name, suggestion)
	}
	return Key{}, fmt.Errorf("%w %q", ErrUnknownKey, name)
}

// Suggest returns the closest known key name to name, or "" when nothing matches.
func Suggest(name string) string {
	candidates := make([]string, 0, len(nameIndex))
	for n := range nameIndex {
		candidates = append(candidates, n)
	}
	sort.Strings(candidates)
	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
