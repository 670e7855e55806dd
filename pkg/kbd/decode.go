// ABOUTME: Decode parses key reports produced by Build back into key Events.
// ABOUTME: The modifier value selects which offset to undo, so every shape inverts exactly.

package kbd

import (
	"strconv"
	"strings"

	"github.com/mauromedda/kbdproto/pkg/key"
)

// Decode parses any of the four key report shapes. Modifier keys' implied
// self bits are reported as plain modifiers.
func Decode(seq string) (key.Event, bool) {
	kind := key.KindDown
	if rest, ok := strings.CutPrefix(seq, releaseMarker); ok {
		kind = key.KindUp
		seq = rest
	}

	if !strings.HasPrefix(seq, csi) || !strings.HasSuffix(seq, string(rune(finalKey))) {
		return key.Event{}, false
	}

	body := seq[len(csi) : len(seq)-1]
	extended := strings.HasPrefix(body, ">")
	if extended {
		if kind == key.KindUp {
			return key.Event{}, false
		}
		body = body[1:]
	}

	fields, ok := splitInts(body)
	if !ok {
		return key.Event{}, false
	}

	var code, wire int
	switch {
	case !extended && len(fields) == 2:
		code, wire = fields[0], fields[1]
	case extended && len(fields) >= 3:
		cfg := ConfigFromFlags(fields[0])
		if cfg.CSIValue() != fields[0] || !cfg.Extended() {
			return key.Event{}, false
		}
		rest := fields[1:]
		if cfg.ReportEventTypes {
			if len(rest) != 3 {
				return key.Event{}, false
			}
			k, ok := KindFromEventType(rest[0])
			if !ok {
				return key.Event{}, false
			}
			kind = k
			rest = rest[1:]
		}
		if len(rest) != 2 {
			return key.Event{}, false
		}
		code, wire = rest[0], rest[1]
	default:
		return key.Event{}, false
	}

	mods, ok := ModifiersFromWire(wire)
	if !ok {
		return key.Event{}, false
	}
	k, ok := key.FromCode(Unoffset(code, RawBits(mods)))
	if !ok {
		return key.Event{}, false
	}
	return key.Event{Key: k, Mods: mods, Kind: kind}, true
}

// splitInts parses a ';'-separated list of non-negative integers.
func splitInts(s string) ([]int, bool) {
	if s == "" {
		return nil, false
	}
	parts := strings.Split(s, ";")
	out := make([]int, len(parts))
	for i, p := range parts {
		if p == "" || p[0] == '-' || p[0] == '+' {
			return nil, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}
