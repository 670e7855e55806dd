// ABOUTME: protocol subcommand: renders the wire format reference with glamour
// ABOUTME: Style and width come from flags; auto picks dark or light from the terminal

package main

import (
	"fmt"

	"github.com/mauromedda/kbdproto/internal/docs"
)

func runProtocol(e *env, args []string) error {
	a, err := parseProtocolFlags(args, e.stderr)
	if err != nil {
		return err
	}
	out, err := docs.Render(a.width, a.style)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, out)
	return nil
}
