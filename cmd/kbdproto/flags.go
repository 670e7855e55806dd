// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Global -v/-version plus one FlagSet per subcommand

package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/mauromedda/kbdproto/pkg/kbd"
	"github.com/mauromedda/kbdproto/pkg/key"
)

type cliArgs struct {
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.verbose, "v", false, "Verbose (debug) logging on stderr")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")
	flag.Usage = func() { usage(flag.CommandLine.Output()) }

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}

// configFlags are the encoder settings a subcommand can override.
type configFlags struct {
	flags        int
	deferInput   bool
	markReleases bool
}

func (c *configFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&c.flags, "flags", -1, "Enhancement flag bitmask (1 event types, 2 alternate keys, 4 all keys); -1 uses settings")
	fs.BoolVar(&c.deferInput, "defer", false, "Leave modified printable keys to native input")
	fs.BoolVar(&c.markReleases, "mark-releases", false, "Prefix legacy releases with '~'")
}

// apply overrides base with the flags that were set explicitly.
func (c *configFlags) apply(fs *flag.FlagSet, base kbd.Config) kbd.Config {
	cfg := base
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "flags":
			if c.flags >= 0 {
				cfg = kbd.ConfigFromFlags(c.flags).WithLocalPolicy(cfg)
			}
		case "defer":
			cfg.DeferOnComplexInput = c.deferInput
		case "mark-releases":
			cfg.MarkReleases = c.markReleases
		}
	})
	return cfg
}

type encodeArgs struct {
	config configFlags
	kind   string
	json   bool
	raw    bool
}

func parseEncodeFlags(args []string, out io.Writer) (encodeArgs, []string, *flag.FlagSet, error) {
	var a encodeArgs
	fs := newFlagSet("encode", out)
	a.config.register(fs)
	fs.StringVar(&a.kind, "kind", "", "Force the event kind: down, repeat or up")
	fs.BoolVar(&a.json, "json", false, "Print a JSON report")
	fs.BoolVar(&a.raw, "raw", false, "Read live keys from the terminal until q or ctrl+c")
	if err := fs.Parse(args); err != nil {
		return a, nil, fs, err
	}
	if a.kind != "" {
		if _, ok := key.ParseKind(a.kind); !ok {
			return a, nil, fs, fmt.Errorf("--kind %q: want down, repeat or up", a.kind)
		}
	}
	return a, fs.Args(), fs, nil
}

type probeArgs struct {
	config  configFlags
	timeout time.Duration
	json    bool
}

func parseProbeFlags(args []string, out io.Writer) (probeArgs, *flag.FlagSet, error) {
	var a probeArgs
	fs := newFlagSet("probe", out)
	a.config.register(fs)
	fs.DurationVar(&a.timeout, "timeout", 0, "How long to wait for the terminal; 0 uses settings")
	fs.BoolVar(&a.json, "json", false, "Print a JSON report")
	err := fs.Parse(args)
	return a, fs, err
}

type inspectArgs struct {
	config configFlags
	probe  bool
	watch  bool
}

func parseInspectFlags(args []string, out io.Writer) (inspectArgs, *flag.FlagSet, error) {
	var a inspectArgs
	fs := newFlagSet("inspect", out)
	a.config.register(fs)
	fs.BoolVar(&a.probe, "probe", false, "Probe the terminal before starting")
	fs.BoolVar(&a.watch, "watch", true, "Reload settings files while running")
	err := fs.Parse(args)
	return a, fs, err
}

type protocolArgs struct {
	style string
	width int
}

func parseProtocolFlags(args []string, out io.Writer) (protocolArgs, error) {
	var a protocolArgs
	fs := newFlagSet("protocol", out)
	fs.StringVar(&a.style, "style", "auto", "Glamour style: auto, dark, light, notty")
	fs.IntVar(&a.width, "width", 80, "Wrap width")
	err := fs.Parse(args)
	return a, err
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}
