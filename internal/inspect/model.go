// ABOUTME: Bubble Tea model echoing each key press with the sequence the codec encodes for it
// ABOUTME: Holds the last N lines; ConfigMsg swaps the codec's config while the view is live

package inspect

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/kbdproto/pkg/kbd"
	"github.com/mauromedda/kbdproto/pkg/key"
)

// DefaultHistory is how many key lines the view keeps.
const DefaultHistory = 20

// eventColumn is the display width reserved for the event name.
const eventColumn = 24

// ConfigMsg installs a new encoder config, or reports why none was loaded.
type ConfigMsg struct {
	Config kbd.Config
	Err    error
}

// Line is one inspected key press.
type Line struct {
	Event    key.Event
	Sequence string
	Unknown  string // set instead of Event for key messages Normalize rejects
}

// Model is the inspector. Value semantics; the codec is shared.
type Model struct {
	codec   *kbd.Codec
	styles  Styles
	lines   []Line
	history int
	status  string
	failed  bool
	width   int
}

// New creates a Model encoding with codec.
func New(codec *kbd.Codec) Model {
	return Model{
		codec:   codec,
		styles:  DefaultStyles(),
		history: DefaultHistory,
	}
}

// Init returns nil; no commands needed at startup.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key, config and window-size messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		ev, ok := Normalize(msg)
		if !ok {
			m = m.push(Line{Unknown: msg.String()})
			return m, nil
		}
		m = m.push(Line{Event: ev, Sequence: m.codec.Encode(ev)})
	case ConfigMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			m.failed = true
			return m, nil
		}
		m.codec.Install(msg.Config)
		m.status = "config reloaded"
		m.failed = false
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// Lines returns the retained lines, oldest first.
func (m Model) Lines() []Line {
	return m.lines
}

func (m Model) push(l Line) Model {
	lines := append(m.lines[:len(m.lines):len(m.lines)], l)
	if len(lines) > m.history {
		lines = lines[len(lines)-m.history:]
	}
	m.lines = lines
	return m
}

// View renders the header, the key lines and the footer.
func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("kbdproto inspect"))
	b.WriteString(s.Muted.Render("  " + m.codec.Config().String()))
	b.WriteByte('\n')

	for _, l := range m.lines {
		b.WriteString(m.renderLine(l))
		b.WriteByte('\n')
	}

	if m.status != "" {
		if m.failed {
			b.WriteString(s.Error.Render(m.status))
		} else {
			b.WriteString(s.Muted.Render(m.status))
		}
		b.WriteByte('\n')
	}
	b.WriteString(s.Muted.Render("ctrl+c quits"))
	return b.String()
}

func (m Model) renderLine(l Line) string {
	s := m.styles
	if l.Unknown != "" {
		return s.Muted.Render(fmt.Sprintf("%s  (not a protocol key)", l.Unknown))
	}

	name := runewidth.FillRight(l.Event.String(), eventColumn)
	var seq string
	switch {
	case l.Sequence != "":
		seq = s.Sequence.Render(strconv.QuoteToASCII(l.Sequence))
	case isMapped(l.Event):
		seq = s.Muted.Render("(deferred to native input)")
	default:
		seq = s.Muted.Render("(no protocol code)")
	}
	line := s.Event.Render(name) + " " + seq
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

func isMapped(ev key.Event) bool {
	_, ok := key.Lookup(ev.Key)
	return ok
}
