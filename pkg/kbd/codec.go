// ABOUTME: Codec holds the installed Config behind an atomic pointer for lock-free reads.
// ABOUTME: Install swaps a whole new value; Encode reads one snapshot per call.

package kbd

import (
	"sync/atomic"

	"github.com/mauromedda/kbdproto/pkg/key"
)

// Codec is the shared, concurrently usable holder of the installed Config.
// Key-event dispatch calls Encode while a reply reader calls Install.
type Codec struct {
	cfg atomic.Pointer[Config]
}

// NewCodec returns a Codec with cfg installed.
func NewCodec(cfg Config) *Codec {
	c := &Codec{}
	c.Install(cfg)
	return c
}

// Install replaces the installed configuration in one atomic store.
func (c *Codec) Install(cfg Config) {
	c.cfg.Store(&cfg)
}

// Update installs fn(current). fn may run more than once under contention
// and must be pure.
func (c *Codec) Update(fn func(Config) Config) Config {
	for {
		old := c.cfg.Load()
		var cur Config
		if old != nil {
			cur = *old
		}
		next := fn(cur)
		if c.cfg.CompareAndSwap(old, &next) {
			return next
		}
	}
}

// Config returns a snapshot of the installed configuration.
func (c *Codec) Config() Config {
	if p := c.cfg.Load(); p != nil {
		return *p
	}
	return Config{}
}

// Encoder returns an Encoder bound to the current snapshot.
func (c *Codec) Encoder() Encoder {
	return NewEncoder(c.Config())
}

// Encode encodes ev against the current snapshot.
func (c *Codec) Encode(ev key.Event) string {
	return c.Encoder().Encode(ev)
}
