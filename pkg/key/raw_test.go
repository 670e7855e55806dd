// ABOUTME: Table-driven tests for ParseRaw covering ASCII, control chars, Alt prefixes, and escape sequences.
// ABOUTME: Validates xterm modifier parameters on cursor and tilde-terminated function keys.

package key

import "testing"

func TestParseRaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Event
	}{
		// Printable ASCII and UTF-8
		{name: "lowercase a", data: "a", want: Event{Key: FromRune('a')}},
		{name: "uppercase A", data: "A", want: Event{Key: FromRune('A')}},
		{name: "tilde", data: "~", want: Event{Key: FromRune('~')}},
		{name: "space", data: " ", want: Event{Key: New(KeySpace)}},
		{name: "multibyte rune", data: "é", want: Event{Key: FromRune('é')}},

		// Control characters
		{name: "enter", data: "\r", want: Event{Key: New(KeyEnter)}},
		{name: "tab", data: "\t", want: Event{Key: New(KeyTab)}},
		{name: "backspace DEL", data: "\x7f", want: Event{Key: New(KeyBackspace)}},
		{name: "backspace BS", data: "\x08", want: Event{Key: New(KeyBackspace)}},
		{name: "escape", data: "\x1b", want: Event{Key: New(KeyEscape)}},
		{name: "ctrl+a", data: "\x01", want: Event{Key: FromRune('a'), Mods: Control}},
		{name: "ctrl+c", data: "\x03", want: Event{Key: FromRune('c'), Mods: Control}},
		{name: "ctrl+space", data: "\x00", want: Event{Key: New(KeySpace), Mods: Control}},

		// Alt prefix
		{name: "alt+x", data: "\x1bx", want: Event{Key: FromRune('x'), Mods: Alt}},
		{name: "alt+enter", data: "\x1b\r", want: Event{Key: New(KeyEnter), Mods: Alt}},

		// CSI / SS3
		{name: "arrow up", data: "\x1b[A", want: Event{Key: New(KeyUp)}},
		{name: "ss3 arrow left", data: "\x1bOD", want: Event{Key: New(KeyLeft)}},
		{name: "ss3 f1", data: "\x1bOP", want: Event{Key: New(KeyF1)}},
		{name: "backtab", data: "\x1b[Z", want: Event{Key: New(KeyTab), Mods: Shift}},
		{name: "page up", data: "\x1b[5~", want: Event{Key: New(KeyPageUp)}},
		{name: "insert", data: "\x1b[2~", want: Event{Key: New(KeyInsert)}},
		{name: "f5", data: "\x1b[15~", want: Event{Key: New(KeyF5)}},
		{name: "f12", data: "\x1b[24~", want: Event{Key: New(KeyF12)}},

		// Modified forms
		{name: "ctrl+up", data: "\x1b[1;5A", want: Event{Key: New(KeyUp), Mods: Control}},
		{name: "shift+right", data: "\x1b[1;2C", want: Event{Key: New(KeyRight), Mods: Shift}},
		{name: "ctrl+alt+home", data: "\x1b[1;7H", want: Event{Key: New(KeyHome), Mods: Control | Alt}},
		{name: "shift+delete", data: "\x1b[3;2~", want: Event{Key: New(KeyDelete), Mods: Shift}},
		{name: "meta+f6", data: "\x1b[17;9~", want: Event{Key: New(KeyF6), Mods: Meta}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseRaw(tt.data)
			if !ok {
				t.Fatalf("ParseRaw(%q) not recognized", tt.data)
			}
			if got != tt.want {
				t.Errorf("ParseRaw(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestParseRaw_Unknown(t *testing.T) {
	t.Parallel()

	for _, data := range []string{
		"",
		"\x1c",
		"\x1b[99~",
		"\x1b[2;5A",
		"\x1b[1;xA",
		"\x1b[1;99A",
		"\x1b\x1b",
		"\x1b[>1u",
		"ab",
	} {
		if ev, ok := ParseRaw(data); ok {
			t.Errorf("ParseRaw(%q) = %+v, want unrecognized", data, ev)
		}
	}
}
