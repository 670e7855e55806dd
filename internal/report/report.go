// ABOUTME: Machine-readable reports for encode and probe results
// ABOUTME: Marshalled with easyjson (see report_easyjson.go) for the CLI's --json output

//go:generate easyjson -all report.go

package report

import (
	"io"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/kbdproto/internal/probe"
	"github.com/mauromedda/kbdproto/pkg/kbd"
	"github.com/mauromedda/kbdproto/pkg/key"
)

// Entry describes one encoded event.
type Entry struct {
	Input     string `json:"input"`
	Key       string `json:"key"`
	Modifiers string `json:"modifiers,omitempty"`
	Kind      string `json:"kind"`
	Sequence  string `json:"sequence"`
	Deferred  bool   `json:"deferred,omitempty"`
	Unmapped  bool   `json:"unmapped,omitempty"`
}

// Report is the result of encoding a batch of events under one config.
type Report struct {
	Config  string  `json:"config"`
	Flags   int     `json:"flags"`
	Entries []Entry `json:"entries"`
}

// Probe is the result of a capability probe.
type Probe struct {
	State     string   `json:"state"`
	Config    string   `json:"config"`
	Flags     int      `json:"flags"`
	Supported bool     `json:"supported"`
	Replies   []string `json:"replies"`
}

// NewEntry describes ev and the sequence it encoded to. An empty sequence
// is either unmapped (the key has no code) or deferred to native input.
func NewEntry(input string, ev key.Event, seq string) Entry {
	e := Entry{
		Input:     input,
		Key:       ev.Key.String(),
		Modifiers: ev.Mods.String(),
		Kind:      ev.Kind.String(),
		Sequence:  seq,
	}
	if seq == "" {
		if _, ok := key.Lookup(ev.Key); ok {
			e.Deferred = true
		} else {
			e.Unmapped = true
		}
	}
	return e
}

// New starts an empty report for cfg.
func New(cfg kbd.Config) *Report {
	return &Report{Config: cfg.String(), Flags: cfg.CSIValue(), Entries: []Entry{}}
}

// Add encodes ev with enc and appends the entry.
func (r *Report) Add(enc kbd.Encoder, input string, ev key.Event) Entry {
	e := NewEntry(input, ev, enc.Encode(ev))
	r.Entries = append(r.Entries, e)
	return e
}

// FromProbe converts a probe result.
func FromProbe(res probe.Result) *Probe {
	replies := res.Replies
	if replies == nil {
		replies = []string{}
	}
	return &Probe{
		State:     res.State.String(),
		Config:    res.Config.String(),
		Flags:     res.Config.CSIValue(),
		Supported: res.Supported,
		Replies:   replies,
	}
}

// Marshal encodes v as JSON. '<' and '>' are left unescaped so sequences
// such as "\u001b[>5u" stay readable.
func Marshal(v easyjson.Marshaler) ([]byte, error) {
	w := jwriter.Writer{NoEscapeHTML: true}
	v.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

// Write encodes v as one line of JSON on w.
func Write(w io.Writer, v easyjson.Marshaler) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v easyjson.Unmarshaler) error {
	return easyjson.Unmarshal(data, v)
}
