// ABOUTME: ParseRaw normalizes legacy terminal input bytes into key Events.
// ABOUTME: Handles printable runes, C0 controls, Alt-prefixed bytes, and CSI/SS3 sequences with xterm modifiers.

package key

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseRaw converts one unit of legacy terminal input into an Event.
// It returns false for empty input and for sequences it does not know.
func ParseRaw(data string) (Event, bool) {
	if len(data) == 0 {
		return Event{}, false
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Event{}, false
	}
	return Event{Key: FromRune(r)}, true
}

// parseSingleByte handles a single ASCII or C0 control byte.
func parseSingleByte(b byte) (Event, bool) {
	switch {
	case b == 0x0d:
		return Event{Key: New(KeyEnter)}, true
	case b == 0x09:
		return Event{Key: New(KeyTab)}, true
	case b == 0x7f, b == 0x08:
		return Event{Key: New(KeyBackspace)}, true
	case b == 0x1b:
		return Event{Key: New(KeyEscape)}, true
	case b == 0x20:
		return Event{Key: New(KeySpace)}, true
	case b == 0x00:
		return Event{Key: New(KeySpace), Mods: Control}, true
	case b >= 0x01 && b <= 0x1a:
		return Event{Key: FromRune(rune('a' + b - 1)), Mods: Control}, true
	case b >= 0x21 && b <= 0x7e:
		return Event{Key: FromRune(rune(b))}, true
	}
	return Event{}, false
}

// parseEscapeSequence handles ESC-prefixed input.
func parseEscapeSequence(data string) (Event, bool) {
	if ev, ok := legacySequences[data]; ok {
		return ev, true
	}

	if len(data) >= 3 && data[1] == '[' {
		return parseCSI(data[2:])
	}

	// Alt+<byte>: ESC followed by a single byte.
	if len(data) == 2 {
		ev, ok := parseSingleByte(data[1])
		if !ok || data[1] == 0x1b {
			return Event{}, false
		}
		ev.Mods |= Alt
		return ev, true
	}

	return Event{}, false
}

// parseCSI handles the modified forms CSI 1 ; <mod> <letter> and CSI <n> ; <mod> ~.
func parseCSI(body string) (Event, bool) {
	if body == "" {
		return Event{}, false
	}
	final := body[len(body)-1]
	params := body[:len(body)-1]

	numStr, modStr, _ := strings.Cut(params, ";")

	var k Code
	switch final {
	case '~':
		n, err := strconv.Atoi(numStr)
		if err != nil {
			return Event{}, false
		}
		c, ok := tildeCodes[n]
		if !ok {
			return Event{}, false
		}
		k = c
	default:
		c, ok := letterCodes[final]
		if !ok || (numStr != "" && numStr != "1") {
			return Event{}, false
		}
		k = c
	}

	ev := Event{Key: New(k)}
	if modStr != "" {
		mods, ok := xtermModifiers(modStr)
		if !ok {
			return Event{}, false
		}
		ev.Mods = mods
	}
	return ev, true
}

// xtermModifiers decodes an xterm modifier parameter (1 + bitmask).
func xtermModifiers(s string) (Modifiers, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 16 {
		return 0, false
	}
	return Modifiers(n - 1), true
}
