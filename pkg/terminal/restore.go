// ABOUTME: RestoreOnPanic recovers from panics, pops pushed keyboard enhancement flags, and leaves raw mode.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the terminal.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mauromedda/kbdproto/pkg/kbd"
)

// Reset exits raw mode on t, first writing the pop sequence when pushed
// reports that enhancement flags were pushed. Errors are ignored; this
// runs on shutdown paths.
func Reset(t Terminal, pushed bool) {
	if pushed {
		_, _ = t.Write([]byte(kbd.PopSequence))
	}
	_ = t.ExitRawMode()
}

// RestoreOnPanic should be deferred at the top of main. On panic it resets
// the terminal, prints the panic value and stack trace, then exits with code 1.
func RestoreOnPanic(t Terminal, pushed bool) {
	r := recover()
	if r == nil {
		return
	}

	Reset(t, pushed)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it
// does NOT call os.Exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(t Terminal, pushed bool) {
	r := recover()
	if r == nil {
		return
	}

	Reset(t, pushed)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
