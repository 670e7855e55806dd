// ABOUTME: Defines the Terminal interface: raw mode plus the byte sink and source the codec talks through.
// ABOUTME: Implementations target a real TTY (ProcessTerminal) or an in-memory fake (VirtualTerminal).

package terminal

// Terminal abstracts the raw-byte transport to and from a terminal:
// raw mode control, reading inbound replies and input, and writing sequences.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}
