// ABOUTME: decode subcommand: escaped protocol sequences back to key events
// ABOUTME: Accepts \x1b, \e, \033 and ^[ spellings of ESC

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mauromedda/kbdproto/pkg/kbd"
)

var escSpellings = strings.NewReplacer(`\e`, `\x1b`, `^[`, `\x1b`, `"`, `\"`)

// unescape turns a shell-friendly spelling of a sequence into its bytes.
func unescape(s string) (string, error) {
	out, err := strconv.Unquote(`"` + escSpellings.Replace(s) + `"`)
	if err != nil {
		return "", fmt.Errorf("unescaping %q: %w", s, err)
	}
	return out, nil
}

func runDecode(e *env, args []string) error {
	if len(args) == 0 {
		return errors.New("decode: no sequences given")
	}

	failed := 0
	for _, arg := range args {
		seq, err := unescape(arg)
		if err != nil {
			return err
		}
		ev, ok := kbd.Decode(seq)
		if !ok {
			fmt.Fprintf(e.stdout, "%s  (not a protocol sequence)\n", strconv.QuoteToASCII(seq))
			failed++
			continue
		}
		fmt.Fprintf(e.stdout, "%s  %s\n", strconv.QuoteToASCII(seq), ev)
	}
	if failed > 0 {
		return fmt.Errorf("decode: %d of %d sequences not recognized", failed, len(args))
	}
	return nil
}
