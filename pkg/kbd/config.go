// ABOUTME: Immutable encoder configuration: progressive-enhancement flags plus local policy.
// ABOUTME: CSIValue packs only the advertised flags; local policy is never sent to the terminal.

package kbd

import "strings"

// Progressive-enhancement flag bits as carried on the wire.
const (
	FlagReportEventTypes      = 1 << 0
	FlagReportAlternateKeys   = 1 << 1
	FlagReportAllKeysAsEscape = 1 << 2

	flagMask = FlagReportEventTypes | FlagReportAlternateKeys | FlagReportAllKeysAsEscape
)

// Config is an encoder configuration. It is a plain value: replace it
// wholesale, never mutate an installed one.
type Config struct {
	ReportEventTypes      bool
	ReportAlternateKeys   bool
	ReportAllKeysAsEscape bool

	// Local policy; never advertised.
	DeferOnComplexInput bool // Suppress modified printable keys in favour of native input
	MarkReleases        bool // Prefix legacy-mode releases with '~'
}

// ConfigFromFlags decodes a wire bitmask into the advertised flags.
// Bits above bit 2 are ignored.
func ConfigFromFlags(flags int) Config {
	return Config{
		ReportEventTypes:      flags&FlagReportEventTypes != 0,
		ReportAlternateKeys:   flags&FlagReportAlternateKeys != 0,
		ReportAllKeysAsEscape: flags&FlagReportAllKeysAsEscape != 0,
	}
}

// Extended reports whether any advertised flag is set.
func (c Config) Extended() bool {
	return c.ReportEventTypes || c.ReportAlternateKeys || c.ReportAllKeysAsEscape
}

// CSIValue packs the advertised flags into the wire bitmask.
func (c Config) CSIValue() int {
	v := 0
	if c.ReportEventTypes {
		v |= FlagReportEventTypes
	}
	if c.ReportAlternateKeys {
		v |= FlagReportAlternateKeys
	}
	if c.ReportAllKeysAsEscape {
		v |= FlagReportAllKeysAsEscape
	}
	return v
}

// WithLocalPolicy returns c carrying the local policy flags of from.
func (c Config) WithLocalPolicy(from Config) Config {
	c.DeferOnComplexInput = from.DeferOnComplexInput
	c.MarkReleases = from.MarkReleases
	return c
}

// String lists the set flags, e.g. "event-types+all-keys defer".
func (c Config) String() string {
	var flags []string
	if c.ReportEventTypes {
		flags = append(flags, "event-types")
	}
	if c.ReportAlternateKeys {
		flags = append(flags, "alternate-keys")
	}
	if c.ReportAllKeysAsEscape {
		flags = append(flags, "all-keys")
	}
	s := "legacy"
	if len(flags) > 0 {
		s = strings.Join(flags, "+")
	}
	if c.DeferOnComplexInput {
		s += " defer"
	}
	if c.MarkReleases {
		s += " mark-releases"
	}
	return s
}
