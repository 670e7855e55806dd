// ABOUTME: Tests ProcessTerminal against a pseudo-terminal pair from creack/pty.
// ABOUTME: Verifies raw mode toggling, unaltered query/reply bytes, and cancelable reads.

package terminal

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/mauromedda/kbdproto/pkg/kbd"
)

func readWithTimeout(t *testing.T, r io.Reader, n int) []byte {
	t.Helper()

	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		buf := make([]byte, n)
		_, err := io.ReadFull(r, buf)
		ch <- result{buf, err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			t.Fatalf("read: %v", res.err)
		}
		return res.data
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out reading %d bytes", n)
		return nil
	}
}

func TestProcessTerminal_PTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	pt := NewFileTerminal(tty, tty)
	if !pt.IsTerminal() {
		t.Fatal("pty slave should be a terminal")
	}

	if err := pt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode: %v", err)
	}
	if !pt.IsRawMode() {
		t.Error("IsRawMode = false after EnterRawMode")
	}
	if err := pt.EnterRawMode(); err != nil {
		t.Fatalf("second EnterRawMode: %v", err)
	}

	// Outbound: the query reaches the terminal side unchanged.
	if _, err := pt.Write([]byte(kbd.QuerySequence)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := readWithTimeout(t, ptmx, len(kbd.QuerySequence)); string(got) != kbd.QuerySequence {
		t.Errorf("terminal received %q, want %q", got, kbd.QuerySequence)
	}

	// Inbound: a reply typed by the terminal arrives without line buffering.
	reply := "\x1b[>5u"
	if _, err := ptmx.Write([]byte(reply)); err != nil {
		t.Fatalf("pty write: %v", err)
	}
	if got := readWithTimeout(t, pt, len(reply)); string(got) != reply {
		t.Errorf("read %q, want %q", got, reply)
	}

	if err := pt.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode: %v", err)
	}
	if pt.IsRawMode() {
		t.Error("IsRawMode = true after ExitRawMode")
	}
}

func TestProcessTerminal_NotATerminal(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	pt := NewFileTerminal(r, w)
	if pt.IsTerminal() {
		t.Error("pipe reported as terminal")
	}
	if err := pt.EnterRawMode(); err == nil {
		t.Error("EnterRawMode on a pipe should fail")
	}
	if err := pt.ExitRawMode(); err != nil {
		t.Errorf("ExitRawMode without raw mode: %v", err)
	}
}

func TestCancelableTerminal_CloseInterruptsRead(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	ct, err := NewCancelable(NewFileTerminal(r, w))
	if err != nil {
		t.Fatalf("NewCancelable: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		_, err := ct.Read(make([]byte, 8))
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	_ = ct.Close()

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrCanceled) {
			t.Errorf("Read = %v, want ErrCanceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Read was not interrupted")
	}
}

func TestCancelableTerminal_PTYCloseInterruptsRead(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	ct, err := NewCancelable(NewFileTerminal(tty, tty))
	if err != nil {
		t.Fatalf("NewCancelable: %v", err)
	}
	if err := ct.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode: %v", err)
	}
	defer ct.ExitRawMode()

	readErr := make(chan error, 1)
	go func() {
		_, err := ct.Read(make([]byte, 8))
		readErr <- err
	}()

	// Let the Read block on the epoll wait before cancelling it.
	time.Sleep(50 * time.Millisecond)

	closed := make(chan error, 1)
	go func() { closed <- ct.Close() }()

	select {
	case err := <-closed:
		if err != nil {
			t.Errorf("Close: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return while a Read was pending")
	}

	select {
	case err := <-readErr:
		if !errors.Is(err, ErrCanceled) {
			t.Errorf("Read = %v, want ErrCanceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Read was not interrupted")
	}

	if _, err := ct.Read(make([]byte, 1)); !errors.Is(err, ErrCanceled) {
		t.Errorf("Read after Close = %v, want ErrCanceled", err)
	}
	if err := ct.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestCancelableTerminal_PassesInputThrough(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	ct, err := NewCancelable(NewFileTerminal(r, w))
	if err != nil {
		t.Fatalf("NewCancelable: %v", err)
	}
	defer ct.Close()

	if _, err := w.Write([]byte("\x1b[>1u")); err != nil {
		t.Fatal(err)
	}
	if got := readWithTimeout(t, ct, 5); string(got) != "\x1b[>1u" {
		t.Errorf("read %q", got)
	}
}
