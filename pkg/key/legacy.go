// ABOUTME: Legacy escape sequence mappings for CSI and SS3 terminal key codes.
// ABOUTME: Maps raw escape strings and CSI parameters to Events for navigation and function keys.

package key

// legacySequences maps unmodified CSI and SS3 sequences to Events.
var legacySequences = map[string]Event{
	// CSI sequences
	"\x1b[A": {Key: Key{Code: KeyUp}},
	"\x1b[B": {Key: Key{Code: KeyDown}},
	"\x1b[C": {Key: Key{Code: KeyRight}},
	"\x1b[D": {Key: Key{Code: KeyLeft}},
	"\x1b[H": {Key: Key{Code: KeyHome}},
	"\x1b[F": {Key: Key{Code: KeyEnd}},
	"\x1b[Z": {Key: Key{Code: KeyTab}, Mods: Shift},
	"\x1b[P": {Key: Key{Code: KeyF1}},

	// SS3 variants (application cursor mode)
	"\x1bOA": {Key: Key{Code: KeyUp}},
	"\x1bOB": {Key: Key{Code: KeyDown}},
	"\x1bOC": {Key: Key{Code: KeyRight}},
	"\x1bOD": {Key: Key{Code: KeyLeft}},
	"\x1bOH": {Key: Key{Code: KeyHome}},
	"\x1bOF": {Key: Key{Code: KeyEnd}},
	"\x1bOP": {Key: Key{Code: KeyF1}},
	"\x1bOQ": {Key: Key{Code: KeyF2}},
	"\x1bOR": {Key: Key{Code: KeyF3}},
	"\x1bOS": {Key: Key{Code: KeyF4}},
}

// letterCodes maps CSI final letters to keys (CSI 1 ; <mod> <letter>).
var letterCodes = map[byte]Code{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// tildeCodes maps CSI <n> ~ numbers to keys, xterm numbering.
var tildeCodes = map[int]Code{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}
