// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output, serves fed input to Read, and can answer writes via a responder.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
// It records written output, tracks raw-mode transitions, and plays back
// input queued with Feed or produced by a responder.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	rawMode    bool
	enterCount int
	exitCount  int
	responder  func(written []byte) []byte

	input     chan []byte
	closeOnce sync.Once

	readMu  sync.Mutex
	pending []byte
}

// NewVirtualTerminal returns an empty VirtualTerminal.
func NewVirtualTerminal() *VirtualTerminal {
	return &VirtualTerminal{
		input: make(chan []byte, 64),
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Read blocks until fed input is available or input is closed.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.readMu.Lock()
	defer v.readMu.Unlock()

	if len(v.pending) == 0 {
		data, ok := <-v.input
		if !ok {
			return 0, io.EOF
		}
		v.pending = data
	}
	n := copy(p, v.pending)
	v.pending = v.pending[n:]
	return n, nil
}

// Write appends data to the output buffer and, if a responder is set,
// feeds its answer back as input.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	n, err := v.buf.Write(p)
	respond := v.responder
	v.mu.Unlock()

	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	if respond != nil {
		if reply := respond(p); len(reply) > 0 {
			v.Feed(reply)
		}
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues data to be returned by Read.
func (v *VirtualTerminal) Feed(data []byte) {
	cp := make([]byte, len(data))
	copy(cp, data)
	v.input <- cp
}

// CloseInput makes Read return io.EOF once queued input is drained.
func (v *VirtualTerminal) CloseInput() {
	v.closeOnce.Do(func() { close(v.input) })
}

// SetResponder installs fn to answer every Write, emulating a terminal
// that replies to queries.
func (v *VirtualTerminal) SetResponder(fn func(written []byte) []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.responder = fn
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}
