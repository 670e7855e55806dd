// ABOUTME: Event classifier mapping key event kinds to protocol event-type integers.
// ABOUTME: The mapping is total: down=1, repeat=2, up=3.

package kbd

import "github.com/mauromedda/kbdproto/pkg/key"

// Protocol event types.
const (
	EventPress   = 1
	EventRepeat  = 2
	EventRelease = 3
)

// EventType maps a key event kind to its protocol integer.
func EventType(k key.Kind) int {
	switch k {
	case key.KindRepeat:
		return EventRepeat
	case key.KindUp:
		return EventRelease
	default:
		return EventPress
	}
}

// KindFromEventType inverts EventType.
func KindFromEventType(ev int) (key.Kind, bool) {
	switch ev {
	case EventPress:
		return key.KindDown, true
	case EventRepeat:
		return key.KindRepeat, true
	case EventRelease:
		return key.KindUp, true
	default:
		return key.KindDown, false
	}
}
