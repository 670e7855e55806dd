// ABOUTME: probe subcommand: pushes the requested flags, queries the terminal, reports the result
// ABOUTME: Pops the pushed flags and leaves raw mode on the way out

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	kbdlog "github.com/mauromedda/kbdproto/internal/log"
	"github.com/mauromedda/kbdproto/internal/probe"
	"github.com/mauromedda/kbdproto/internal/report"
	"github.com/mauromedda/kbdproto/pkg/kbd"
	"github.com/mauromedda/kbdproto/pkg/terminal"
)

func runProbe(e *env, args []string) error {
	a, fs, err := parseProbeFlags(args, e.stderr)
	if err != nil {
		return err
	}

	timeout := a.timeout
	if timeout <= 0 {
		timeout, _ = e.settings.Timeout()
	}
	req := a.config.apply(fs, e.settings.EncoderConfig())

	term := terminal.NewProcessTerminal()
	if !term.IsTerminal() {
		return errors.New("probe: stdin is not a terminal")
	}
	res, err := probeTerminal(e, term, req, timeout)
	if err != nil && !errors.Is(err, probe.ErrNoReply) {
		return err
	}

	if a.json {
		return report.Write(e.stdout, report.FromProbe(res))
	}
	writeProbe(e.stdout, res, err)
	return nil
}

// probeTerminal runs one probe in raw mode. The codec starts from req's
// local policy so the result carries it. Input is read through a cancel
// reader so nothing keeps reading stdin once the probe returns.
func probeTerminal(e *env, pt *terminal.ProcessTerminal, req kbd.Config, timeout time.Duration) (probe.Result, error) {
	term, err := terminal.NewCancelable(pt)
	if err != nil {
		return probe.Result{}, err
	}
	defer term.Close()

	if err := term.EnterRawMode(); err != nil {
		return probe.Result{}, err
	}
	defer terminal.Reset(term, req.Extended())
	defer terminal.RestoreOnPanic(term, req.Extended())

	codec := kbd.NewCodec(kbd.Config{}.WithLocalPolicy(req))
	res, err := probe.Run(e.ctx, term, codec, probe.Options{Timeout: timeout, Request: req})
	kbdlog.Debug("probe: %+v err=%v", res, err)
	return res, err
}

func writeProbe(w io.Writer, res probe.Result, err error) {
	if errors.Is(err, probe.ErrNoReply) {
		fmt.Fprintln(w, "no reply: terminal is silent, using legacy mode")
	}
	fmt.Fprintf(w, "state:     %s\n", res.State)
	fmt.Fprintf(w, "config:    %s\n", res.Config)
	fmt.Fprintf(w, "supported: %t\n", res.Supported)
	for _, r := range res.Replies {
		fmt.Fprintf(w, "reply:     %q\n", r)
	}
}
