// ABOUTME: Modifier codec translating modifier sets to raw bitmasks and wire modifier values.
// ABOUTME: Bits are shift=1 alt=2 control=4 meta=8; the wire value is always bitmask+1.

package kbd

import "github.com/mauromedda/kbdproto/pkg/key"

// maxModifierBits is the largest combination of the four modifier bits.
const maxModifierBits = int(key.Shift | key.Alt | key.Control | key.Meta)

// RawBits returns the modifier bitmask for m.
func RawBits(m key.Modifiers) int {
	return int(m) & maxModifierBits
}

// WireModifier returns the modifier value as transmitted. Every combination,
// including the empty one, is sent as bitmask+1, so no modifiers is "1".
func WireModifier(bits int) int {
	return bits + 1
}

// ModifiersFromWire inverts WireModifier. It fails for values outside 1..16.
func ModifiersFromWire(wire int) (key.Modifiers, bool) {
	bits := wire - 1
	if bits < 0 || bits > maxModifierBits {
		return 0, false
	}
	return key.Modifiers(bits), true
}
