// ABOUTME: Printable-key classification used by the complex-input deferral policy.
// ABOUTME: A key is printable when its label is visible and its character lies in 0x1D..0x7E.

package key

import "github.com/rivo/uniseg"

// Character range considered printable for deferral purposes.
const (
	printableLow  = 0x1D
	printableHigh = 0x7E
)

// Char returns the character a key produces natively, or 0 when it produces none.
func (k Key) Char() rune {
	switch k.Code {
	case KeyChar:
		return k.Rune
	case KeySpace:
		return ' '
	case KeyEnter:
		return '\r'
	case KeyTab:
		return '\t'
	case KeyEscape:
		return 0x1b
	case KeyBackspace, KeyDelete:
		return 0x7f
	default:
		return 0
	}
}

// Label returns the human-readable text a key types, or "" for keys that type nothing.
func (k Key) Label() string {
	switch k.Code {
	case KeyChar:
		return string(k.Rune)
	case KeySpace:
		return " "
	default:
		return ""
	}
}

// Printable reports whether k types a visible character, which makes a
// modified press of it ambiguous between a shortcut and composed input.
func Printable(k Key) bool {
	label := k.Label()
	if label == "" || uniseg.StringWidth(label) == 0 {
		return false
	}
	c := k.Char()
	return c >= printableLow && c <= printableHigh
}
