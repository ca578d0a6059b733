package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/ftahirops/xstatus/collector"
	"github.com/ftahirops/xstatus/config"
	"github.com/ftahirops/xstatus/engine"
	"github.com/ftahirops/xstatus/sink"
	"github.com/ftahirops/xstatus/ui"
	"github.com/ftahirops/xstatus/util"
)

// Version is set at build time via ldflags.
var Version = "0.1.0"

// Options holds CLI-only settings. Everything else lives in config.Config.
type Options struct {
	ConfigPath string
	Once       bool
	WatchMode  bool
	WatchCount int
	TUIMode    bool
}

func printUsage(fs *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `xstatus v%s: status line for dwm

Usage:
  xstatus [OPTIONS] [INTERVAL]

Modes:
  (default)         Publish a line every interval (xsetroot -name)
  --once            Print one line to stdout and exit
  --watch           Colored terminal preview, redrawn in place
  --tui             Interactive preview (bubbletea)

Options:
%s
Positional:
  INTERVAL          Interval in seconds: xstatus 5 = xstatus --interval 5s

Examples:
  xstatus &                          Feed dwm every second
  xstatus --sink stdout | lemonbar   Feed another bar
  xstatus --watch --count 5
  xstatus --strict --log-level debug
`, Version, fs.FlagUsages())
}

// Run parses flags and starts the application.
func Run() error {
	return run(os.Args[1:], os.Stdout)
}

func run(args []string, stdout io.Writer) error {
	var opts Options
	var showVersion bool

	fs := pflag.NewFlagSet("xstatus", pflag.ContinueOnError)
	fs.StringVar(&opts.ConfigPath, "config", config.Path(), "Config file (YAML)")
	interval := fs.Duration("interval", 0, "Poll interval (default from config, 1s)")
	sinkName := fs.String("sink", "", "Where to publish: xsetroot or stdout")
	strict := fs.Bool("strict", false, "Exit on the first collector failure instead of showing N/A")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.Once, "once", false, "Print a single line to stdout and exit")
	fs.BoolVar(&opts.WatchMode, "watch", false, "Colored terminal preview")
	fs.IntVar(&opts.WatchCount, "count", 0, "Number of cycles for --watch or the publish loop (0=infinite)")
	fs.BoolVar(&opts.TUIMode, "tui", false, "Interactive terminal preview")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if showVersion {
		fmt.Fprintf(stdout, "xstatus v%s\n", Version)
		return nil
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	// Flags override the file.
	if fs.Changed("interval") {
		cfg.Interval = *interval
	}
	// Support positional arg for interval: `xstatus 5` = `xstatus --interval 5s`
	if rest := fs.Args(); len(rest) > 0 {
		n, err := strconv.Atoi(rest[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid interval %q", rest[0])
		}
		cfg.Interval = time.Duration(n) * time.Second
	}
	if fs.Changed("sink") {
		cfg.Sink = *sinkName
	}
	if fs.Changed("strict") {
		cfg.Strict = *strict
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// The TUI owns the terminal; log lines would tear it.
	logOut := io.Writer(os.Stderr)
	if opts.TUIMode {
		logOut = io.Discard
	}
	logger := newLogger(logOut, cfg.LogLevel)

	runner := util.ExecRunner{}
	eng := engine.New(engine.Config{
		Registry: collector.NewRegistry(cfg.CollectorOptions(), runner),
		Format:   cfg.FormatOptions(),
		Logger:   logger,
		Strict:   cfg.Strict,
	})

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()

	switch {
	case opts.Once:
		return eng.Run(ctx, sink.NewWriter(stdout), cfg.Interval, 1)
	case opts.TUIMode:
		p := tea.NewProgram(ui.NewModel(eng, cfg.Interval, cfg.FormatOptions()), tea.WithAltScreen(), tea.WithContext(ctx))
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	case opts.WatchMode:
		return runWatch(ctx, eng, cfg, opts.WatchCount, stdout)
	}

	pub, err := sink.New(cfg.Sink, runner, stdout)
	if err != nil {
		return err
	}
	logger.Info("publishing", "sink", cfg.Sink, "interval", cfg.Interval, "strict", cfg.Strict)
	return eng.Run(ctx, pub, cfg.Interval, opts.WatchCount)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
