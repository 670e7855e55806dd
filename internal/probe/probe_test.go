// ABOUTME: Tests the capability probe against a VirtualTerminal that answers queries.
// ABOUTME: Covers flags replies, DA-only terminals, silence, write failures, and cancellation.

package probe

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauromedda/kbdproto/pkg/kbd"
	"github.com/mauromedda/kbdproto/pkg/key"
	"github.com/mauromedda/kbdproto/pkg/terminal"
)

func answering(reply string) *terminal.VirtualTerminal {
	vt := terminal.NewVirtualTerminal()
	vt.SetResponder(func(written []byte) []byte {
		if bytes.HasSuffix(written, []byte(kbd.QuerySequence)) {
			return []byte(reply)
		}
		return nil
	})
	return vt
}

func TestRun_InstallsFlagsReply(t *testing.T) {
	t.Parallel()

	vt := answering("\x1b[>5u")
	codec := kbd.NewCodec(kbd.Config{DeferOnComplexInput: true})

	res, err := Run(context.Background(), vt, codec, Options{Timeout: time.Second})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Supported || !res.Answered {
		t.Errorf("Supported=%v Answered=%v, want both", res.Supported, res.Answered)
	}
	if res.State != kbd.Extended {
		t.Errorf("State = %v, want extended", res.State)
	}
	want := kbd.Config{ReportEventTypes: true, ReportAllKeysAsEscape: true, DeferOnComplexInput: true}
	if res.Config != want || codec.Config() != want {
		t.Errorf("Config = %+v, codec = %+v, want %+v", res.Config, codec.Config(), want)
	}
	if len(res.Replies) != 1 || res.Replies[0] != "\x1b[>5u" {
		t.Errorf("Replies = %q", res.Replies)
	}

	// The codec now encodes in the extended form.
	got := codec.Encode(key.Event{Key: key.New(key.KeyEnter), Mods: key.Control})
	if got != "\x1b[>5;1;13;5u" {
		t.Errorf("Encode after probe = %q", got)
	}
}

func TestRun_WritesPushBeforeQuery(t *testing.T) {
	t.Parallel()

	vt := answering("\x1b[>1u")
	req := kbd.Config{ReportEventTypes: true}

	if _, err := Run(context.Background(), vt, kbd.NewCodec(kbd.Config{}), Options{Request: req}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if want := "\x1b[>1u\x1b[>c"; vt.Output() != want {
		t.Errorf("Output = %q, want %q", vt.Output(), want)
	}
}

func TestRun_DeviceAttributesOnly(t *testing.T) {
	t.Parallel()

	vt := answering("\x1b[>41;354;0c")
	codec := kbd.NewCodec(kbd.Config{})

	res, err := Run(context.Background(), vt, codec, Options{Timeout: time.Second})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Answered || res.Supported {
		t.Errorf("Answered=%v Supported=%v, want answered but unsupported", res.Answered, res.Supported)
	}
	if res.State != kbd.Legacy {
		t.Errorf("State = %v, want legacy", res.State)
	}
}

func TestRun_MalformedReplyLeavesConfig(t *testing.T) {
	t.Parallel()

	vt := answering("\x1b[>abcu\x1b[>0;1c")
	start := kbd.Config{ReportAlternateKeys: true}
	codec := kbd.NewCodec(start)

	res, err := Run(context.Background(), vt, codec, Options{Timeout: time.Second})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if codec.Config() != start {
		t.Errorf("config changed to %+v", codec.Config())
	}
	if res.Supported {
		t.Error("malformed reply reported as supported")
	}
}

func TestRun_NoReply(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal()
	codec := kbd.NewCodec(kbd.Config{})

	res, err := Run(context.Background(), vt, codec, Options{Timeout: 30 * time.Millisecond})
	if !errors.Is(err, ErrNoReply) {
		t.Fatalf("err = %v, want ErrNoReply", err)
	}
	if res.Answered || res.State != kbd.Legacy {
		t.Errorf("res = %+v", res)
	}
}

func TestRun_ClosedInput(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal()
	vt.CloseInput()

	_, err := Run(context.Background(), vt, kbd.NewCodec(kbd.Config{}), Options{Timeout: time.Second})
	if !errors.Is(err, ErrNoReply) {
		t.Errorf("err = %v, want ErrNoReply", err)
	}
}

func TestRun_ParentCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, terminal.NewVirtualTerminal(), kbd.NewCodec(kbd.Config{}), Options{Timeout: time.Second})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

type brokenTerminal struct{ *terminal.VirtualTerminal }

var errWrite = errors.New("write failed")

func (brokenTerminal) Write([]byte) (int, error) { return 0, errWrite }

func TestRun_WriteError(t *testing.T) {
	t.Parallel()

	bt := brokenTerminal{terminal.NewVirtualTerminal()}
	_, err := Run(context.Background(), bt, kbd.NewCodec(kbd.Config{}), Options{Timeout: time.Second})
	if !errors.Is(err, errWrite) {
		t.Errorf("err = %v, want %v", err, errWrite)
	}
}

func TestQueryBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  kbd.Config
		want string
	}{
		{name: "legacy request", req: kbd.Config{}, want: "\x1b[>c"},
		{name: "local policy only", req: kbd.Config{DeferOnComplexInput: true}, want: "\x1b[>c"},
		{name: "all flags", req: kbd.ConfigFromFlags(7), want: "\x1b[>7u\x1b[>c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := string(QueryBytes(tt.req)); got != tt.want {
				t.Errorf("QueryBytes = %q, want %q", got, tt.want)
			}
		})
	}
}
