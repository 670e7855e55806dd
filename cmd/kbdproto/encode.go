// ABOUTME: encode subcommand: key specs (or live legacy input with --raw) to protocol sequences
// ABOUTME: Text output aligns specs with runewidth; --json emits an easyjson report

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"

	kbdlog "github.com/mauromedda/kbdproto/internal/log"
	"github.com/mauromedda/kbdproto/internal/report"
	"github.com/mauromedda/kbdproto/pkg/input"
	"github.com/mauromedda/kbdproto/pkg/kbd"
	"github.com/mauromedda/kbdproto/pkg/key"
	"github.com/mauromedda/kbdproto/pkg/terminal"
)

func runEncode(e *env, args []string) error {
	a, specs, fs, err := parseEncodeFlags(args, e.stderr)
	if err != nil {
		return err
	}
	cfg := a.config.apply(fs, e.settings.EncoderConfig())
	enc := kbd.NewEncoder(cfg)
	kbdlog.Debug("encode: config %s", cfg)

	if a.raw {
		return encodeRaw(e, enc)
	}
	if len(specs) == 0 {
		return errors.New("encode: no key specs given")
	}

	rep := report.New(cfg)
	for _, spec := range specs {
		ev, err := key.ParseSpec(spec)
		if err != nil {
			return err
		}
		if a.kind != "" {
			ev.Kind, _ = key.ParseKind(a.kind)
		}
		rep.Add(enc, spec, ev)
	}

	if a.json {
		return report.Write(e.stdout, rep)
	}
	writeEntries(e.stdout, rep.Entries)
	return nil
}

// writeEntries prints one aligned "input  sequence" line per entry.
func writeEntries(w io.Writer, entries []report.Entry) {
	col := 0
	for _, en := range entries {
		col = max(col, runewidth.StringWidth(en.Input))
	}
	for _, en := range entries {
		fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(en.Input, col), describe(en))
	}
}

func describe(en report.Entry) string {
	switch {
	case en.Unmapped:
		return "(no protocol code)"
	case en.Deferred:
		return "(deferred to native input)"
	default:
		return strconv.QuoteToASCII(en.Sequence)
	}
}

// encodeRaw reads legacy key input from the controlling terminal and
// prints each key's encoding until q or ctrl+c.
func encodeRaw(e *env, enc kbd.Encoder) error {
	term := terminal.NewProcessTerminal()
	if !term.IsTerminal() {
		return errors.New("encode --raw: stdin is not a terminal")
	}
	if err := term.EnterRawMode(); err != nil {
		return err
	}
	defer term.ExitRawMode()
	defer terminal.RestoreOnPanic(term, false)

	ctx, cancel := context.WithCancel(e.ctx)
	defer cancel()

	fmt.Fprintf(e.stdout, "config %s; press keys, q or ctrl+c to quit\r\n", enc.Config())
	reader := input.NewReader(term, input.Handlers{
		Event: func(ev key.Event) {
			if isQuit(ev) {
				cancel()
				return
			}
			en := report.NewEntry(ev.String(), ev, enc.Encode(ev))
			fmt.Fprintf(e.stdout, "%s  %s\r\n", runewidth.FillRight(en.Input, 16), describe(en))
		},
		Unknown: func(seq []byte) {
			fmt.Fprintf(e.stdout, "%s  (unrecognized input)\r\n", strconv.QuoteToASCII(string(seq)))
		},
	})

	err := reader.Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func isQuit(ev key.Event) bool {
	if ev.Key.Code != key.KeyChar {
		return false
	}
	return (ev.Key.Rune == 'q' && ev.Mods == 0) || (ev.Key.Rune == 'c' && ev.Mods == key.Control)
}
