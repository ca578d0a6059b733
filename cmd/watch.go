package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/ftahirops/xstatus/config"
	"github.com/ftahirops/xstatus/engine"
	"github.com/ftahirops/xstatus/ui"
)

const clearLine = "\r\033[K"

// runWatch prints a colored line per cycle. On a terminal the line is
// redrawn in place and truncated to the terminal width; otherwise each
// cycle is printed on its own line.
func runWatch(ctx context.Context, eng *engine.Engine, cfg config.Config, count int, out io.Writer) error {
	fd, inPlace := terminalFD(out)
	opts := cfg.FormatOptions()

	for n := 1; ; n++ {
		res := eng.Tick(ctx)
		if cfg.Strict && len(res.Errors) > 0 {
			if inPlace {
				fmt.Fprintln(out)
			}
			return fmt.Errorf("cycle %d: %w", n, res.Errors[0])
		}

		line := ui.RenderLine(res.Snapshot, res.Snapshot.Timestamp, opts)
		if inPlace {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				line = ansi.Truncate(line, w, "…")
			}
			fmt.Fprint(out, clearLine+line)
		} else {
			fmt.Fprintln(out, line)
		}

		if count > 0 && n >= count {
			break
		}
		select {
		case <-ctx.Done():
		case <-time.After(cfg.Interval):
			continue
		}
		break
	}

	if inPlace {
		fmt.Fprintln(out)
	}
	return nil
}

func terminalFD(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
