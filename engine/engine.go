package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ftahirops/xstatus/collector"
	"github.com/ftahirops/xstatus/format"
	"github.com/ftahirops/xstatus/model"
	"github.com/ftahirops/xstatus/sink"
)

// Config wires an Engine.
type Config struct {
	Registry *collector.Registry
	Format   format.Options
	Clock    Clock        // nil means RealClock
	Logger   *slog.Logger // nil means slog.Default()

	// Strict stops Run at the first cycle with a failed collector instead
	// of rendering placeholders.
	Strict bool
}

// Engine runs collection and formatting cycles.
type Engine struct {
	registry *collector.Registry
	format   format.Options
	clock    Clock
	logger   *slog.Logger
	strict   bool
	tickMu   sync.Mutex // serializes Tick() so cycles never overlap
}

// Result is the outcome of one cycle.
type Result struct {
	Snapshot *model.Snapshot
	Line     string
	Errors   []error
}

// New creates an engine from cfg.
func New(cfg Config) *Engine {
	e := &Engine{
		registry: cfg.Registry,
		format:   cfg.Format,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
		strict:   cfg.Strict,
	}
	if e.clock == nil {
		e.clock = RealClock{}
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Tick collects every metric once and renders the line. Failed collectors
// are logged and rendered as placeholders.
func (e *Engine) Tick(ctx context.Context) Result {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	snap := &model.Snapshot{Timestamp: e.clock.Now()}
	errs := e.registry.CollectAll(ctx, snap)
	for _, err := range errs {
		var f *collector.Failure
		if errors.As(err, &f) {
			e.logger.Warn("collector failed", "collector", f.Collector, "error", f.Err)
		} else {
			e.logger.Warn("collector failed", "error", err)
		}
	}

	line := format.Line(snap, snap.Timestamp, e.format)
	e.logger.Debug("cycle", "line", line, "failed", len(errs))
	return Result{Snapshot: snap, Line: line, Errors: errs}
}

// Run publishes one line every interval until ctx is cancelled or count
// cycles have run (count <= 0 runs forever). Publish failures are logged
// and the loop continues; in strict mode a collector failure ends it.
func (e *Engine) Run(ctx context.Context, pub sink.Publisher, interval time.Duration, count int) error {
	for n := 1; ; n++ {
		res := e.Tick(ctx)
		if e.strict && len(res.Errors) > 0 {
			return fmt.Errorf("cycle %d: %w", n, errors.Join(res.Errors...))
		}

		if err := pub.Publish(ctx, res.Line); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			e.logger.Error("publish failed", "error", err)
		}

		if (count > 0 && n >= count) || ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-e.clock.After(interval):
		}
	}
}
