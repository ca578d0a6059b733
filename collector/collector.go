package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/ftahirops/xstatus/model"
	"github.com/ftahirops/xstatus/util"
)

// Collector is the interface for all metric collectors.
type Collector interface {
	Name() string
	Collect(ctx context.Context, snap *model.Snapshot) error
}

// Options locates the data sources read by the default collectors.
type Options struct {
	PowerSupplyDir string
	BacklightDir   string
	MeminfoPath    string
	AudioCommand   string
	AudioSink      string
	AudioTimeout   time.Duration
}

// DefaultOptions returns the stock Linux locations.
func DefaultOptions() Options {
	return Options{
		PowerSupplyDir: "/sys/class/power_supply",
		BacklightDir:   "/sys/class/backlight/intel_backlight",
		MeminfoPath:    "/proc/meminfo",
		AudioCommand:   "pactl",
		AudioSink:      "@DEFAULT_SINK@",
		AudioTimeout:   2 * time.Second,
	}
}

// Registry holds all registered collectors.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates a registry with the four status collectors.
func NewRegistry(opts Options, runner util.Runner) *Registry {
	return &Registry{
		collectors: []Collector{
			&AudioCollector{
				Command: opts.AudioCommand,
				Sink:    opts.AudioSink,
				Timeout: opts.AudioTimeout,
				Runner:  runner,
			},
			&BrightnessCollector{Dir: opts.BacklightDir},
			&BatteryCollector{Dir: opts.PowerSupplyDir},
			&MemoryCollector{Path: opts.MeminfoPath},
		},
	}
}

// Add registers an additional collector.
func (r *Registry) Add(c Collector) {
	r.collectors = append(r.collectors, c)
}

// Names lists the registered collectors in run order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.collectors))
	for i, c := range r.collectors {
		names[i] = c.Name()
	}
	return names
}

// CollectAll runs all collectors, populating the snapshot. A failing
// collector leaves its field nil; its error is returned prefixed with the
// collector name and the remaining collectors still run.
func (r *Registry) CollectAll(ctx context.Context, snap *model.Snapshot) []error {
	var errs []error
	for _, c := range r.collectors {
		if err := c.Collect(ctx, snap); err != nil {
			errs = append(errs, &Failure{Collector: c.Name(), Err: err})
		}
	}
	return errs
}

// Failure ties a collector error to the collector that produced it.
type Failure struct {
	Collector string
	Err       error
}

func (f *Failure) Error() string { return fmt.Sprintf("%s: %v", f.Collector, f.Err) }
func (f *Failure) Unwrap() error { return f.Err }
