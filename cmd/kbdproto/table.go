// ABOUTME: table subcommand: the protocol key numbers with their unmodified encodings
// ABOUTME: Header styled with lipgloss; columns padded with runewidth

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/kbdproto/pkg/kbd"
	"github.com/mauromedda/kbdproto/pkg/key"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func runTable(e *env, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("table: unexpected arguments %v", args)
	}

	keys := key.TableKeys()
	col := len("KEY")
	for _, k := range keys {
		col = max(col, runewidth.StringWidth(k.String()))
	}

	enc := kbd.NewEncoder(e.settings.EncoderConfig())
	fmt.Fprintln(e.stdout, headerStyle.Render(fmt.Sprintf("%s  %4s  %s", runewidth.FillRight("KEY", col), "CODE", "SEQUENCE")))
	for _, k := range keys {
		code, _ := key.Lookup(k)
		seq := enc.Encode(key.Event{Key: k})
		fmt.Fprintf(e.stdout, "%s  %4d  %s\n", runewidth.FillRight(k.String(), col), code, strconv.QuoteToASCII(seq))
	}
	return nil
}
