// ABOUTME: Capability probe: pushes requested flags, sends the query, and installs the reply's config.
// ABOUTME: Writer and reader run in an errgroup; the first flags reply or a DA answer ends the probe.

package probe

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/kbdproto/internal/log"
	"github.com/mauromedda/kbdproto/pkg/input"
	"github.com/mauromedda/kbdproto/pkg/kbd"
	"github.com/mauromedda/kbdproto/pkg/terminal"
)

// DefaultTimeout bounds a probe when Options.Timeout is zero.
const DefaultTimeout = 500 * time.Millisecond

// ErrNoReply is returned when the terminal sent nothing before the timeout.
var ErrNoReply = errors.New("probe: terminal did not answer")

// Options controls a probe.
type Options struct {
	// Timeout for the whole exchange; DefaultTimeout when zero.
	Timeout time.Duration
	// Request is pushed before the query when it has advertised flags.
	Request kbd.Config
}

// Result is what a probe learned.
type Result struct {
	Config    kbd.Config // installed config after the probe
	State     kbd.State
	Replies   []string // every reply seen, in arrival order
	Answered  bool     // any reply arrived
	Supported bool     // a flags reply arrived and was installed
}

// Run performs one capability exchange over term and installs the
// negotiated config into codec. The caller owns raw mode.
func Run(ctx context.Context, term terminal.Terminal, codec *kbd.Codec, opts Options) (Result, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	readCtx, stop := context.WithCancel(ctx)
	defer stop()

	neg := kbd.NewNegotiator(codec)

	var (
		mu  sync.Mutex
		res Result
	)

	reader := input.NewReader(term, input.Handlers{
		Reply: func(seq []byte) {
			mu.Lock()
			defer mu.Unlock()

			res.Replies = append(res.Replies, string(seq))
			res.Answered = true
			if neg.Handle(seq) {
				res.Supported = true
				log.Debug("probe: installed %s from %q", codec.Config(), seq)
				stop()
				return
			}
			if seq[len(seq)-1] == 'c' {
				log.Debug("probe: device attributes %q without flags reply", seq)
				stop()
			}
		},
		Unknown: func(seq []byte) {
			log.Debug("probe: ignoring %q", seq)
		},
	})

	g, gctx := errgroup.WithContext(readCtx)
	g.Go(func() error {
		// Reader errors from cancellation are the normal way out.
		if err := reader.Start(gctx); err != nil && gctx.Err() == nil {
			return fmt.Errorf("reading replies: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		out := QueryBytes(opts.Request)
		log.Debug("probe: sending %q", out)
		if _, err := term.Write(out); err != nil {
			return fmt.Errorf("writing query: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	mu.Lock()
	defer mu.Unlock()

	res.Config = codec.Config()
	res.State = neg.State()
	if res.Answered {
		return res, nil
	}
	if err := ctx.Err(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return res, err
	}
	return res, ErrNoReply
}

// QueryBytes is what a probe writes: the push for req (when it advertises
// anything) followed by the capability query.
func QueryBytes(req kbd.Config) []byte {
	var out []byte
	if req.Extended() {
		out = append(out, kbd.PushSequence(req)...)
	}
	return append(out, kbd.QuerySequence...)
}
