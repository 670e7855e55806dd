// ABOUTME: Offset rule applying exactly one modifier-dependent shift to a base key code.
// ABOUTME: Priority is control (-15) > shift (-20) > alt (-10); meta alone applies none.

package kbd

import "github.com/mauromedda/kbdproto/pkg/key"

const (
	controlOffset = 15
	shiftOffset   = 20
	altOffset     = 10
)

// offsetFor returns the single offset selected by the dominant modifier in bits.
func offsetFor(bits int) int {
	m := key.Modifiers(bits)
	switch {
	case m.Has(key.Control):
		return controlOffset
	case m.Has(key.Shift):
		return shiftOffset
	case m.Has(key.Alt):
		return altOffset
	default:
		return 0
	}
}

// Offset applies the dominant modifier's offset to code.
func Offset(code, bits int) int {
	return code - offsetFor(bits)
}

// Unoffset reverses Offset for the same modifier bits.
func Unoffset(code, bits int) int {
	return code + offsetFor(bits)
}
