// ABOUTME: Maps bubbletea key messages onto key.Event so the inspector can encode them
// ABOUTME: Bubbletea folds modifiers into distinct key types; this unfolds them again

package inspect

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/kbdproto/pkg/key"
)

// namedKeys covers bubbletea key types that are not plain runes or C0
// control letters. Tab, Enter, Escape and Backspace share values with
// ctrl+i, ctrl+m, ctrl+[ and ctrl+? so they are listed once here.
var namedKeys = map[tea.KeyType]key.Event{
	tea.KeyEnter:     {Key: key.New(key.KeyEnter)},
	tea.KeyTab:       {Key: key.New(key.KeyTab)},
	tea.KeyShiftTab:  {Key: key.New(key.KeyTab), Mods: key.Shift},
	tea.KeyBackspace: {Key: key.New(key.KeyBackspace)},
	tea.KeyEscape:    {Key: key.New(key.KeyEscape)},
	tea.KeySpace:     {Key: key.New(key.KeySpace)},
	tea.KeyCtrlAt:    {Key: key.New(key.KeySpace), Mods: key.Control},
	tea.KeyInsert:    {Key: key.New(key.KeyInsert)},
	tea.KeyDelete:    {Key: key.New(key.KeyDelete)},

	tea.KeyUp:    {Key: key.New(key.KeyUp)},
	tea.KeyDown:  {Key: key.New(key.KeyDown)},
	tea.KeyLeft:  {Key: key.New(key.KeyLeft)},
	tea.KeyRight: {Key: key.New(key.KeyRight)},

	tea.KeyShiftUp:    {Key: key.New(key.KeyUp), Mods: key.Shift},
	tea.KeyShiftDown:  {Key: key.New(key.KeyDown), Mods: key.Shift},
	tea.KeyShiftLeft:  {Key: key.New(key.KeyLeft), Mods: key.Shift},
	tea.KeyShiftRight: {Key: key.New(key.KeyRight), Mods: key.Shift},

	tea.KeyCtrlUp:    {Key: key.New(key.KeyUp), Mods: key.Control},
	tea.KeyCtrlDown:  {Key: key.New(key.KeyDown), Mods: key.Control},
	tea.KeyCtrlLeft:  {Key: key.New(key.KeyLeft), Mods: key.Control},
	tea.KeyCtrlRight: {Key: key.New(key.KeyRight), Mods: key.Control},

	tea.KeyCtrlShiftUp:    {Key: key.New(key.KeyUp), Mods: key.Control | key.Shift},
	tea.KeyCtrlShiftDown:  {Key: key.New(key.KeyDown), Mods: key.Control | key.Shift},
	tea.KeyCtrlShiftLeft:  {Key: key.New(key.KeyLeft), Mods: key.Control | key.Shift},
	tea.KeyCtrlShiftRight: {Key: key.New(key.KeyRight), Mods: key.Control | key.Shift},

	tea.KeyHome:          {Key: key.New(key.KeyHome)},
	tea.KeyEnd:           {Key: key.New(key.KeyEnd)},
	tea.KeyShiftHome:     {Key: key.New(key.KeyHome), Mods: key.Shift},
	tea.KeyShiftEnd:      {Key: key.New(key.KeyEnd), Mods: key.Shift},
	tea.KeyCtrlHome:      {Key: key.New(key.KeyHome), Mods: key.Control},
	tea.KeyCtrlEnd:       {Key: key.New(key.KeyEnd), Mods: key.Control},
	tea.KeyCtrlShiftHome: {Key: key.New(key.KeyHome), Mods: key.Control | key.Shift},
	tea.KeyCtrlShiftEnd:  {Key: key.New(key.KeyEnd), Mods: key.Control | key.Shift},

	tea.KeyPgUp:       {Key: key.New(key.KeyPageUp)},
	tea.KeyPgDown:     {Key: key.New(key.KeyPageDown)},
	tea.KeyCtrlPgUp:   {Key: key.New(key.KeyPageUp), Mods: key.Control},
	tea.KeyCtrlPgDown: {Key: key.New(key.KeyPageDown), Mods: key.Control},

	tea.KeyF1:  {Key: key.New(key.KeyF1)},
	tea.KeyF2:  {Key: key.New(key.KeyF2)},
	tea.KeyF3:  {Key: key.New(key.KeyF3)},
	tea.KeyF4:  {Key: key.New(key.KeyF4)},
	tea.KeyF5:  {Key: key.New(key.KeyF5)},
	tea.KeyF6:  {Key: key.New(key.KeyF6)},
	tea.KeyF7:  {Key: key.New(key.KeyF7)},
	tea.KeyF8:  {Key: key.New(key.KeyF8)},
	tea.KeyF9:  {Key: key.New(key.KeyF9)},
	tea.KeyF10: {Key: key.New(key.KeyF10)},
	tea.KeyF11: {Key: key.New(key.KeyF11)},
	tea.KeyF12: {Key: key.New(key.KeyF12)},

	tea.KeyCtrlBackslash:    {Key: key.FromRune('\\'), Mods: key.Control},
	tea.KeyCtrlCloseBracket: {Key: key.FromRune(']'), Mods: key.Control},
	tea.KeyCtrlCaret:        {Key: key.FromRune('^'), Mods: key.Control},
	tea.KeyCtrlUnderscore:   {Key: key.FromRune('_'), Mods: key.Control},
}

// Normalize converts a bubbletea key message into an Event. Pastes and
// multi-rune messages are rejected. Bubbletea reports no releases or
// repeats, so the kind is always KindDown.
func Normalize(msg tea.KeyMsg) (key.Event, bool) {
	if msg.Paste {
		return key.Event{}, false
	}

	ev, ok := namedKeys[msg.Type]
	switch {
	case ok:
	case msg.Type == tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return key.Event{}, false
		}
		r := msg.Runes[0]
		if r == ' ' {
			ev = key.Event{Key: key.New(key.KeySpace)}
		} else {
			ev = key.Event{Key: key.FromRune(r)}
		}
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		ev = key.Event{Key: key.FromRune(rune('a' + msg.Type - tea.KeyCtrlA)), Mods: key.Control}
	default:
		return key.Event{}, false
	}

	if msg.Alt {
		ev.Mods |= key.Alt
	}
	return ev, true
}
