// ABOUTME: Sequence builder assembling legacy, extended, and release-marked CSI u key reports.
// ABOUTME: Envelope is the generic ESC-prefixed "intro fields;... final" helper the shapes share.

package kbd

import (
	"strconv"
	"strings"
)

// Wire fragments.
const (
	csi            = "\x1b["
	csiPrivate     = "\x1b[>"
	finalKey       = 'u'
	releaseMarker  = "~"
	fieldSeparator = ';'
)

// Envelope builds intro + fields joined by ';' + final,
// e.g. Envelope("\x1b[", 'u', 13, 5) == "\x1b[13;5u".
func Envelope(intro string, final byte, fields ...int) string {
	var b strings.Builder
	b.Grow(len(intro) + 4*len(fields) + 1)
	b.WriteString(intro)
	var num [20]byte
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(fieldSeparator)
		}
		b.Write(strconv.AppendInt(num[:0], int64(f), 10))
	}
	b.WriteByte(final)
	return b.String()
}

// Build assembles the key report for an already offset code and wire modifier.
//
// Shapes:
//   - legacy:                  ESC [ code ; mod u
//   - extended:                ESC [ > csi ; code ; mod u
//   - extended + event types:  ESC [ > csi ; event ; code ; mod u
//   - legacy release marker:   ~ESC [ code ; mod u
//
// The event field supersedes the release marker.
func Build(code, wireMod, eventType int, cfg Config) string {
	if !cfg.Extended() {
		seq := Envelope(csi, finalKey, code, wireMod)
		if eventType == EventRelease && cfg.MarkReleases {
			return releaseMarker + seq
		}
		return seq
	}
	if cfg.ReportEventTypes {
		return Envelope(csiPrivate, finalKey, cfg.CSIValue(), eventType, code, wireMod)
	}
	return Envelope(csiPrivate, finalKey, cfg.CSIValue(), code, wireMod)
}
