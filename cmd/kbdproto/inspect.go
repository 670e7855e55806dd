// ABOUTME: inspect subcommand: bubbletea view of live key presses and their encodings
// ABOUTME: Optionally probes first; reloads settings files through config.Watcher while running

package main

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/kbdproto/internal/config"
	"github.com/mauromedda/kbdproto/internal/inspect"
	kbdlog "github.com/mauromedda/kbdproto/internal/log"
	"github.com/mauromedda/kbdproto/pkg/kbd"
	"github.com/mauromedda/kbdproto/pkg/terminal"
)

func runInspect(e *env, args []string) error {
	a, fs, err := parseInspectFlags(args, e.stderr)
	if err != nil {
		return err
	}

	cfg := a.config.apply(fs, e.settings.EncoderConfig())
	codec := kbd.NewCodec(cfg)

	if a.probe {
		term := terminal.NewProcessTerminal()
		if !term.IsTerminal() {
			return errors.New("inspect --probe: stdin is not a terminal")
		}
		timeout, _ := e.settings.Timeout()
		res, err := probeTerminal(e, term, cfg, timeout)
		if err != nil {
			kbdlog.Warn("probe: %v", err)
		}
		codec.Install(res.Config.WithLocalPolicy(cfg))
	}

	ctx, cancel := context.WithCancel(e.ctx)
	defer cancel()

	p := inspect.NewProgram(ctx, inspect.New(codec))

	g, gctx := errgroup.WithContext(ctx)
	if a.watch {
		w := config.NewWatcher(e.cwd, func(s *config.Settings, err error) {
			if err != nil {
				p.Send(inspect.ConfigMsg{Err: fmt.Errorf("reloading settings: %w", err)})
				return
			}
			p.Send(inspect.ConfigMsg{Config: s.EncoderConfig()})
		})
		g.Go(func() error {
			if err := w.Run(gctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		return inspect.Run(p)
	})
	return g.Wait()
}
