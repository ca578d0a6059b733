// Package sink delivers rendered status lines to the window manager.
package sink

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ftahirops/xstatus/util"
)

// Publisher receives one status line per poll cycle.
type Publisher interface {
	Publish(ctx context.Context, line string) error
}

// XSetRoot sets the X root window name, which dwm shows as its status text.
type XSetRoot struct {
	Runner util.Runner
}

func (x *XSetRoot) Publish(ctx context.Context, line string) error {
	if _, err := x.Runner.Output(ctx, "xsetroot", "-name", line); err != nil {
		return fmt.Errorf("xsetroot: %w", err)
	}
	return nil
}

// Writer prints each line followed by a newline, for bars that read stdin
// (lemonbar, i3bar in text mode) or for piping into other tools.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Writer publishing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Publish(_ context.Context, line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintln(w.w, line)
	return err
}

// Names of the built-in sinks, as accepted by New.
const (
	NameXSetRoot = "xsetroot"
	NameStdout   = "stdout"
)

// New builds a sink by name.
func New(name string, runner util.Runner, stdout io.Writer) (Publisher, error) {
	switch name {
	case NameXSetRoot:
		return &XSetRoot{Runner: runner}, nil
	case NameStdout:
		return NewWriter(stdout), nil
	default:
		return nil, fmt.Errorf("unknown sink %q (want %s or %s)", name, NameXSetRoot, NameStdout)
	}
}
