// ABOUTME: Mode negotiator decoding "ESC [ > flags u" replies into a replacement Config.
// ABOUTME: Malformed replies are ignored; the installed Config stays until a valid reply arrives.

package kbd

import "strconv"

// QuerySequence is the fixed outbound capability query.
const QuerySequence = "\x1b[>c"

// PopSequence asks the terminal to drop the most recently pushed flags.
const PopSequence = "\x1b[<u"

// PushSequence asks the terminal to enable the advertised flags of cfg.
func PushSequence(cfg Config) string {
	return Envelope(csiPrivate, finalKey, cfg.CSIValue())
}

// State is the negotiated protocol mode.
type State int

const (
	Legacy State = iota
	Extended
)

// String returns "legacy" or "extended".
func (s State) String() string {
	if s == Extended {
		return "extended"
	}
	return "legacy"
}

// ParseReply extracts the flag bitmask from a capability reply. The reply
// must be ESC [ > followed by at least one numeric parameter (further
// parameters separated by ';' or ':' are allowed and ignored) and the final
// byte 'u'.
func ParseReply(reply []byte) (flags int, ok bool) {
	if len(reply) < len(csiPrivate)+2 || string(reply[:len(csiPrivate)]) != csiPrivate {
		return 0, false
	}
	if reply[len(reply)-1] != finalKey {
		return 0, false
	}

	params := reply[len(csiPrivate) : len(reply)-1]
	end := 0
	for end < len(params) && params[end] >= '0' && params[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	for _, b := range params[end:] {
		if (b < '0' || b > '9') && b != ';' && b != ':' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(string(params[:end]))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Negotiator installs configurations decoded from terminal replies into a Codec.
type Negotiator struct {
	codec *Codec
}

// NewNegotiator returns a Negotiator driving codec.
func NewNegotiator(codec *Codec) *Negotiator {
	return &Negotiator{codec: codec}
}

// Handle decodes reply and, when it is a valid capability reply, installs
// the matching Config. Local policy flags of the current Config carry over.
// It reports whether a new Config was installed.
func (n *Negotiator) Handle(reply []byte) bool {
	flags, ok := ParseReply(reply)
	if !ok {
		return false
	}
	next := ConfigFromFlags(flags & flagMask)
	n.codec.Update(func(cur Config) Config {
		return next.WithLocalPolicy(cur)
	})
	return true
}

// State reports the mode implied by the installed Config.
func (n *Negotiator) State() State {
	if n.codec.Config().Extended() {
		return Extended
	}
	return Legacy
}

// Codec returns the Codec the negotiator installs into.
func (n *Negotiator) Codec() *Codec {
	return n.codec
}
