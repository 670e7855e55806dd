// ABOUTME: KeyCodeTable mapping the closed set of named keys to protocol key numbers.
// ABOUTME: Codes are non-contiguous within 11..127; keys outside the table have no private form.

package key

import "sort"

// Bounds of the protocol key-number range. Offset codes produced by the
// encoder stay within [MinWireCode, MaxCode].
const (
	MinCode     = 11
	MaxCode     = 127
	MinWireCode = 1
)

// codeTable holds the protocol number for each table key. The lowest entry is
// 21 so that the largest modifier offset (20) never drops a code below 1.
var codeTable = map[Code]int{
	KeyPause:       21,
	KeyPrintScreen: 23,
	KeyEscape:      27,
	KeyEnter:       28,
	KeyTab:         29,
	KeyUp:          30,
	KeyDown:        31,
	KeyLeft:        32,
	KeyRight:       33,
	KeyHome:        40,
	KeyEnd:         41,
	KeyPageUp:      42,
	KeyPageDown:    43,
	KeyInsert:      44,
	KeySpace:       46,
	KeyF1:          81,
	KeyF2:          82,
	KeyF3:          83,
	KeyF4:          84,
	KeyF5:          85,
	KeyF6:          86,
	KeyF7:          87,
	KeyF8:          88,
	KeyF9:          89,
	KeyF10:         90,
	KeyF11:         91,
	KeyF12:         92,
	KeyDelete:      126,
	KeyBackspace:   127,
}

// reverseTable maps protocol numbers back to keys; built once at init.
var reverseTable = func() map[int]Code {
	m := make(map[int]Code, len(codeTable))
	for c, n := range codeTable {
		m[n] = c
	}
	return m
}()

// Lookup returns the protocol number for k. ok is false when k has no entry,
// in which case the caller falls back to native handling.
func Lookup(k Key) (code int, ok bool) {
	if k.Code == KeyChar {
		return 0, false
	}
	code, ok = codeTable[k.Code]
	return code, ok
}

// FromCode is the inverse of Lookup.
func FromCode(code int) (Key, bool) {
	c, ok := reverseTable[code]
	if !ok {
		return Key{}, false
	}
	return New(c), true
}

// TableKeys returns every table key ordered by protocol number.
func TableKeys() []Key {
	keys := make([]Key, 0, len(codeTable))
	for c := range codeTable {
		keys = append(keys, New(c))
	}
	sort.Slice(keys, func(i, j int) bool {
		return codeTable[keys[i].Code] < codeTable[keys[j].Code]
	})
	return keys
}
