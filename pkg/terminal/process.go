// ABOUTME: ProcessTerminal implements Terminal over a pair of TTY files using golang.org/x/term.
// ABOUTME: Manages raw mode state on the input file; defaults to os.Stdin/os.Stdout.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by TTY file descriptors and x/term.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	oldState *term.State
}

// NewProcessTerminal returns a ProcessTerminal on os.Stdin and os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewFileTerminal(os.Stdin, os.Stdout)
}

// NewFileTerminal returns a ProcessTerminal reading from in and writing to out.
func NewFileTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// IsTerminal reports whether the input side is attached to a TTY.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd()))
}

// EnterRawMode switches the input TTY to raw mode, saving the previous state.
// Calling it while already raw is a no-op.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// IsRawMode reports whether EnterRawMode is in effect.
func (t *ProcessTerminal) IsRawMode() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.oldState != nil
}

// Read reads inbound bytes from the input file.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
