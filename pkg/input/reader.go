// ABOUTME: Reader splits raw inbound terminal bytes into capability replies and legacy key events.
// ABOUTME: Handles CSI/SS3 framing, lone-ESC timeout (~50ms), and skips bracketed paste content.

package input

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mauromedda/kbdproto/pkg/key"
)

const (
	readBufSize  = 256
	escTimeout   = 50 * time.Millisecond
	maxCSILen    = 64
	bracketStart = "\x1b[200~"
	bracketEnd   = "\x1b[201~"
)

// Handlers receive what the Reader recognizes. Nil handlers are skipped.
type Handlers struct {
	// Reply receives private-marker CSI sequences ending in 'u' or 'c'
	// (ESC [ > ... u, ESC [ ? ... c, ...): negotiation traffic.
	Reply func(seq []byte)
	// Event receives legacy key input normalized by key.ParseRaw.
	Event func(key.Event)
	// Unknown receives complete sequences that were neither.
	Unknown func(seq []byte)
}

// Reader reads from an io.Reader and dispatches framed sequences to Handlers.
type Reader struct {
	reader   io.Reader
	handlers Handlers
	buf      []byte
	mu       sync.Mutex
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader, h Handlers) *Reader {
	return &Reader{
		reader:   r,
		handlers: h,
		buf:      make([]byte, 0, readBufSize),
	}
}

// Start reads until ctx is cancelled or the underlying reader fails.
// It blocks; run it in a goroutine for background reading. An incomplete
// unit left pending for escTimeout is resolved (a lone ESC becomes Escape).
func (b *Reader) Start(ctx context.Context) error {
	readCh := make(chan readResult)
	done := make(chan struct{})

	go b.readLoop(readCh, done)
	defer close(done)

	var timer *time.Timer
	var timeout <-chan time.Time
	arm := func(waiting bool) {
		if timer != nil {
			timer.Stop()
		}
		timer, timeout = nil, nil
		if waiting {
			timer = time.NewTimer(escTimeout)
			timeout = timer.C
		}
	}
	defer arm(false)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timeout:
			if !b.pasting() {
				b.expireOne()
			}
			arm(b.dispatch())
		case result, ok := <-readCh:
			if !ok {
				b.flushRemaining()
				return nil
			}
			if result.err != nil {
				b.flushRemaining()
				if errors.Is(result.err, io.EOF) {
					return nil
				}
				return result.err
			}
			b.append(result.data)
			arm(b.dispatch())
		}
	}
}

// readResult holds the outcome of a single Read call.
type readResult struct {
	data []byte
	err  error
}

// readLoop continuously reads from the reader and sends data on ch.
// It stops when done is closed, preventing goroutine leaks on context cancellation.
func (b *Reader) readLoop(ch chan<- readResult, done <-chan struct{}) {
	defer close(ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := b.reader.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case ch <- readResult{data: data}:
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case ch <- readResult{err: err}:
			case <-done:
			}
			return
		}
	}
}

// append adds incoming data to the internal buffer.
func (b *Reader) append(data []byte) {
	b.mu.Lock()
	b.buf = append(b.buf, data...)
	b.mu.Unlock()
}

// unit is one framed piece of input.
type unit struct {
	seq    []byte
	reply  bool
	ev     key.Event
	evOK   bool
	silent bool // consumed without notification (paste content)
}

// dispatch parses and delivers every complete unit in the buffer.
// It reports whether an incomplete unit remains pending.
func (b *Reader) dispatch() bool {
	for {
		b.mu.Lock()
		if len(b.buf) == 0 {
			b.mu.Unlock()
			return false
		}

		consumed, u, needsWait := b.tryParse()
		if needsWait {
			b.mu.Unlock()
			return true
		}
		if consumed == 0 {
			b.mu.Unlock()
			return false
		}
		u.seq = append([]byte(nil), b.buf[:consumed]...)
		b.buf = b.buf[consumed:]
		b.mu.Unlock()

		b.deliver(u)
	}
}

// deliver routes a unit to the matching handler.
func (b *Reader) deliver(u unit) {
	switch {
	case u.silent:
	case u.reply:
		if b.handlers.Reply != nil {
			b.handlers.Reply(u.seq)
		}
	case u.evOK:
		if b.handlers.Event != nil {
			b.handlers.Event(u.ev)
		}
	default:
		if b.handlers.Unknown != nil {
			b.handlers.Unknown(u.seq)
		}
	}
}

// tryParse frames one unit from the front of b.buf.
// Returns (consumed bytes, unit, needs-wait flag). Must be called with b.mu held.
func (b *Reader) tryParse() (int, unit, bool) {
	if consumed, waiting := b.skipBracketedPaste(); consumed > 0 || waiting {
		return consumed, unit{silent: true}, waiting
	}

	if b.buf[0] == 0x1b {
		if len(b.buf) == 1 {
			return 0, unit{}, true
		}
		return b.parseEscapeFromBuf()
	}

	if !utf8.FullRune(b.buf) {
		if len(b.buf) < utf8.UTFMax {
			return 0, unit{}, true
		}
		return 1, unit{}, false
	}

	r, size := utf8.DecodeRune(b.buf)
	if r == utf8.RuneError {
		return 1, unit{}, false
	}
	ev, ok := key.ParseRaw(string(b.buf[:size]))
	return size, unit{ev: ev, evOK: ok}, false
}

// parseEscapeFromBuf frames an ESC-prefixed unit.
// Must be called with b.mu held and len(b.buf) >= 2.
func (b *Reader) parseEscapeFromBuf() (int, unit, bool) {
	switch b.buf[1] {
	case '[':
		return b.parseCSIFromBuf()
	case 'O':
		if len(b.buf) < 3 {
			return 0, unit{}, true
		}
		ev, ok := key.ParseRaw(string(b.buf[:3]))
		return 3, unit{ev: ev, evOK: ok}, false
	case 0x1b:
		// ESC ESC: the first is a lone Escape.
		return 1, unit{ev: key.Event{Key: key.New(key.KeyEscape)}, evOK: true}, false
	}

	// Alt+<rune>
	rest := b.buf[1:]
	if !utf8.FullRune(rest) {
		return 0, unit{}, true
	}
	_, size := utf8.DecodeRune(rest)
	ev, ok := key.ParseRaw(string(b.buf[:1+size]))
	if !ok {
		if r, _ := utf8.DecodeRune(rest); r != utf8.RuneError {
			ev, ok = key.Event{Key: key.FromRune(r), Mods: key.Alt}, true
		}
	}
	return 1 + size, unit{ev: ev, evOK: ok}, false
}

// parseCSIFromBuf frames ESC [ params intermediates final.
func (b *Reader) parseCSIFromBuf() (int, unit, bool) {
	for i := 2; i < len(b.buf); i++ {
		c := b.buf[i]
		switch {
		case c >= 0x40 && c <= 0x7e:
			seq := b.buf[:i+1]
			if isReply(seq) {
				return i + 1, unit{reply: true}, false
			}
			ev, ok := key.ParseRaw(string(seq))
			return i + 1, unit{ev: ev, evOK: ok}, false
		case c >= 0x20 && c <= 0x3f:
			continue
		default:
			// Not a valid CSI byte: emit the ESC alone and re-parse the rest.
			return 1, unit{ev: key.Event{Key: key.New(key.KeyEscape)}, evOK: true}, false
		}
	}
	if len(b.buf) >= maxCSILen {
		return 1, unit{}, false
	}
	return 0, unit{}, true
}

// isReply reports whether a complete CSI sequence is negotiation traffic.
func isReply(seq []byte) bool {
	if len(seq) < 4 {
		return false
	}
	marker := seq[2]
	final := seq[len(seq)-1]
	return (marker == '>' || marker == '?') && (final == 'u' || final == 'c')
}

// skipBracketedPaste detects bracketed paste content. It returns the bytes
// to drop, or waiting=true while the end marker has not arrived.
// Must be called with b.mu held.
func (b *Reader) skipBracketedPaste() (consumed int, waiting bool) {
	s := string(b.buf)
	if len(s) < len(bracketStart) {
		return 0, false
	}
	if s[:len(bracketStart)] != bracketStart {
		return 0, false
	}
	for i := len(bracketStart); i <= len(s)-len(bracketEnd); i++ {
		if s[i:i+len(bracketEnd)] == bracketEnd {
			return i + len(bracketEnd), false
		}
	}
	return 0, true
}

// pasting reports whether a bracketed paste is open in the buffer.
func (b *Reader) pasting() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, waiting := b.skipBracketedPaste()
	return waiting
}

// expireOne gives up on the pending unit's first byte: a leading ESC is
// delivered as a lone Escape, anything else is dropped.
func (b *Reader) expireOne() {
	b.mu.Lock()
	if len(b.buf) == 0 {
		b.mu.Unlock()
		return
	}
	first := b.buf[0]
	b.buf = b.buf[1:]
	b.mu.Unlock()

	if first == 0x1b {
		b.deliver(unit{ev: key.Event{Key: key.New(key.KeyEscape)}, evOK: true})
	}
}

// flushRemaining dispatches any leftover bytes once input has ended.
func (b *Reader) flushRemaining() {
	for b.dispatch() {
		if b.pasting() {
			b.mu.Lock()
			b.buf = b.buf[:0]
			b.mu.Unlock()
			return
		}
		b.expireOne()
	}
}
