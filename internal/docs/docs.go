// ABOUTME: Protocol reference rendered for the terminal with glamour
// ABOUTME: The embedded text is followed by a key table generated from pkg/key

package docs

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/kbdproto/pkg/key"
)

//go:embed protocol.md
var protocol string

// Markdown returns the full reference as markdown.
func Markdown() string {
	var b strings.Builder
	b.WriteString(protocol)
	b.WriteString("\n## Key table\n\n| Key | Code |\n|---|---|\n")
	for _, k := range key.TableKeys() {
		code, _ := key.Lookup(k)
		fmt.Fprintf(&b, "| %s | %d |\n", k, code)
	}
	return b.String()
}

// Render renders the reference wrapped at width. style is a glamour
// standard style ("dark", "light", "notty", ...) or "auto".
func Render(width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := renderer.Render(Markdown())
	if err != nil {
		return "", fmt.Errorf("rendering reference: %w", err)
	}
	return strings.TrimRight(out, "\n "), nil
}
