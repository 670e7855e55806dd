// ABOUTME: CLI entry point for kbdproto with terminal crash recovery
// ABOUTME: Parses global flags, loads settings, and dispatches to a subcommand

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	// It fixes lipgloss's background guess in its init(), so bubbletea never
	// sends OSC 11 queries whose replies would mix with capability replies.
	_ "github.com/mauromedda/kbdproto/internal/termfix"

	"github.com/mauromedda/kbdproto/internal/config"
	kbdlog "github.com/mauromedda/kbdproto/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// env carries what every subcommand needs.
type env struct {
	ctx      context.Context
	stdout   io.Writer
	stderr   io.Writer
	cwd      string
	settings *config.Settings
}

type command struct {
	run     func(e *env, args []string) error
	summary string
}

var commands = map[string]command{
	"encode":   {run: runEncode, summary: "encode key specs such as ctrl+enter (or --raw for live input)"},
	"decode":   {run: runDecode, summary: "decode escaped sequences such as '\\x1b[13;5u'"},
	"table":    {run: runTable, summary: "list protocol key numbers"},
	"probe":    {run: runProbe, summary: "ask the terminal which flags it supports"},
	"inspect":  {run: runInspect, summary: "interactive view of key presses and their sequences"},
	"protocol": {run: runProtocol, summary: "show the wire format reference"},
}

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("kbdproto %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads settings and dispatches to the selected subcommand.
func run(args cliArgs) error {
	rest := args.remaining()
	if len(rest) == 0 {
		usage(os.Stderr)
		return fmt.Errorf("no command given")
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		usage(os.Stderr)
		return fmt.Errorf("unknown command %q", rest[0])
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	level, _ := settings.Level()
	if args.verbose {
		level = kbdlog.LevelDebug
	}
	kbdlog.SetLevel(level)
	kbdlog.Debug("settings: %s", settings.EncoderConfig())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := &env{
		ctx:      ctx,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		cwd:      cwd,
		settings: settings,
	}
	return cmd.run(e, rest[1:])
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: kbdproto [-v] <command> [flags] [args]\n\ncommands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-9s %s\n", name, commands[name].summary)
	}
	fmt.Fprintf(w, "\nrun 'kbdproto <command> -h' for command flags\n")
	fmt.Fprintf(w, "settings: %s\n", strings.Join(config.SettingsFiles("."), ", "))
}
