// ABOUTME: CancelableTerminal wraps a ProcessTerminal so a blocked Read can be interrupted.
// ABOUTME: Close cancels, waits for in-flight reads to return, then releases the reader.

package terminal

import (
	"fmt"
	"sync"

	"github.com/muesli/cancelreader"
)

// ErrCanceled is returned by a Read interrupted by Close.
var ErrCanceled = cancelreader.ErrCanceled

// CancelableTerminal is a ProcessTerminal whose input reads can be cancelled.
type CancelableTerminal struct {
	*ProcessTerminal
	in cancelreader.CancelReader

	mu     sync.Mutex
	idle   *sync.Cond
	active int
	closed bool
}

// NewCancelable wraps t's input in a cancel reader.
func NewCancelable(t *ProcessTerminal) (*CancelableTerminal, error) {
	r, err := cancelreader.NewReader(t.in)
	if err != nil {
		return nil, fmt.Errorf("cancelable input: %w", err)
	}
	c := &CancelableTerminal{ProcessTerminal: t, in: r}
	c.idle = sync.NewCond(&c.mu)
	return c, nil
}

// Read reads from the cancelable input. After Close it returns ErrCanceled.
func (c *CancelableTerminal) Read(p []byte) (int, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return 0, ErrCanceled
	}
	c.active++
	c.mu.Unlock()

	n, err := c.in.Read(p)

	c.mu.Lock()
	c.active--
	if c.active == 0 {
		c.idle.Broadcast()
	}
	c.mu.Unlock()
	return n, err
}

// Close interrupts any pending Read and releases the reader once every
// in-flight Read has returned. The underlying file stays open.
func (c *CancelableTerminal) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	// The epoll wake-up is lost if the reader is closed before the
	// pending Read observes the cancel. A fallback reader cannot be
	// cancelled, so there is nothing to wait for.
	if c.in.Cancel() {
		c.mu.Lock()
		for c.active > 0 {
			c.idle.Wait()
		}
		c.mu.Unlock()
	}
	return c.in.Close()
}
