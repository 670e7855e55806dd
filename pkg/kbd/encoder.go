// ABOUTME: Encoder façade composing table lookup, modifier codec, deferral, offset, and sequence shape.
// ABOUTME: Encoder is an immutable value; WithConfig returns a new one instead of mutating.

package kbd

import "github.com/mauromedda/kbdproto/pkg/key"

// Encoder turns key events into protocol sequences under one fixed Config.
type Encoder struct {
	cfg Config
}

// NewEncoder returns an Encoder bound to cfg.
func NewEncoder(cfg Config) Encoder {
	return Encoder{cfg: cfg}
}

// Config returns the configuration the encoder was built with.
func (e Encoder) Config() Config {
	return e.cfg
}

// WithConfig returns a new Encoder holding cfg. e is left untouched.
func (e Encoder) WithConfig(cfg Config) Encoder {
	return Encoder{cfg: cfg}
}

// Encode returns the sequence for ev, or "" when the key has no protocol
// number or the event is deferred to native complex-input handling. The two
// empty cases are deliberately indistinguishable.
func (e Encoder) Encode(ev key.Event) string {
	code, ok := key.Lookup(ev.Key)
	if !ok {
		return ""
	}

	bits := RawBits(ev.Modifiers())
	if e.defers(ev.Key, bits) {
		return ""
	}

	code = Offset(code, bits)
	return Build(code, WireModifier(bits), EventType(ev.Kind), e.cfg)
}

// defers reports whether a modified printable key should be left to the
// host's input method.
func (e Encoder) defers(k key.Key, bits int) bool {
	return e.cfg.DeferOnComplexInput && bits != 0 && key.Printable(k)
}
