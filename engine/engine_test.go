package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ftahirops/xstatus/collector"
	"github.com/ftahirops/xstatus/format"
	"github.com/ftahirops/xstatus/sink"
)

// fakeClock never sleeps; it records every requested wait.
type fakeClock struct {
	now   time.Time
	waits []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.waits = append(c.waits, d)
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

type pactl struct {
	volume, mute string
	err          error
}

func (p pactl) Output(_ context.Context, _ string, args ...string) ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	if args[0] == "get-sink-volume" {
		return []byte(p.volume), nil
	}
	return []byte(p.mute), nil
}

type capture struct {
	lines []string
	err   error
}

func (c *capture) Publish(_ context.Context, line string) error {
	c.lines = append(c.lines, line)
	return c.err
}

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// fixtures lays out battery 3000/6000 on AC, backlight 120/240 and
// meminfo 2000000 free of 8000000.
func fixtures(t *testing.T) collector.Options {
	t.Helper()
	root := t.TempDir()
	opts := collector.DefaultOptions()
	opts.PowerSupplyDir = filepath.Join(root, "power_supply")
	opts.BacklightDir = filepath.Join(root, "backlight")
	opts.MeminfoPath = filepath.Join(root, "meminfo")

	write(t, filepath.Join(opts.PowerSupplyDir, "AC", "type"), "Mains\n")
	write(t, filepath.Join(opts.PowerSupplyDir, "AC", "online"), "1\n")
	write(t, filepath.Join(opts.PowerSupplyDir, "BAT0", "type"), "Battery\n")
	write(t, filepath.Join(opts.PowerSupplyDir, "BAT0", "capacity"), "50\n")
	write(t, filepath.Join(opts.PowerSupplyDir, "BAT0", "charge_now"), "3000\n")
	write(t, filepath.Join(opts.PowerSupplyDir, "BAT0", "charge_full"), "6000\n")
	write(t, filepath.Join(opts.BacklightDir, "brightness"), "120\n")
	write(t, filepath.Join(opts.BacklightDir, "max_brightness"), "240\n")
	write(t, opts.MeminfoPath, "MemTotal:        8000000 kB\nMemFree:         2000000 kB\n\n")
	return opts
}

var mutedAt65 = pactl{
	volume: "Volume: front-left: 42598 /  65% / -11.23 dB,   front-right: 42598 /  65% / -11.23 dB\n",
	mute:   "Mute: yes\n",
}

func newEngine(t *testing.T, opts collector.Options, r pactl, strict bool, logs io.Writer) (*Engine, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2026, 10, 15, 9, 30, 0, 0, time.Local)}
	if logs == nil {
		logs = io.Discard
	}
	eng := New(Config{
		Registry: collector.NewRegistry(opts, r),
		Format:   format.DefaultOptions(),
		Clock:    clk,
		Logger:   slog.New(slog.NewTextHandler(logs, nil)),
		Strict:   strict,
	})
	return eng, clk
}

func TestTickEndToEnd(t *testing.T) {
	eng, _ := newEngine(t, fixtures(t), mutedAt65, false, nil)

	res := eng.Tick(context.Background())
	if len(res.Errors) != 0 {
		t.Fatalf("errors: %v", res.Errors)
	}
	for _, want := range []string{"50.0", "b 50%", "6000000 / 8000000", "V(x) 65%", "09:30:00", "15/10/26"} {
		if !strings.Contains(res.Line, want) {
			t.Errorf("line %q missing %q", res.Line, want)
		}
	}
	want := "V(x) 65% | b 50% | B+ 50.0 | M 6000000 / 8000000 | 09:30:00 | 15/10/26"
	if res.Line != want {
		t.Errorf("line = %q; want %q", res.Line, want)
	}
}

func TestTickDegradesAndLogs(t *testing.T) {
	var logs bytes.Buffer
	opts := fixtures(t)
	r := pactl{err: errors.New(`exec: "pactl": executable file not found in $PATH`)}
	eng, _ := newEngine(t, opts, r, false, &logs)

	res := eng.Tick(context.Background())
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v; want one", res.Errors)
	}
	if !strings.HasPrefix(res.Line, "V N/A | b 50% | B+ 50.0") {
		t.Errorf("line = %q", res.Line)
	}
	if !strings.Contains(logs.String(), "collector=audio") {
		t.Errorf("failure not logged with collector name: %s", logs.String())
	}
}

func TestRunPublishesEveryInterval(t *testing.T) {
	eng, clk := newEngine(t, fixtures(t), mutedAt65, false, nil)
	pub := &capture{}

	if err := eng.Run(context.Background(), pub, 2*time.Second, 3); err != nil {
		t.Fatal(err)
	}
	if len(pub.lines) != 3 {
		t.Fatalf("published %d lines; want 3", len(pub.lines))
	}
	if len(clk.waits) != 2 {
		t.Errorf("waited %d times; want 2 (no wait after the last cycle)", len(clk.waits))
	}
	for _, d := range clk.waits {
		if d != 2*time.Second {
			t.Errorf("waited %s; want 2s", d)
		}
	}
	if !strings.Contains(pub.lines[2], "09:30:04") {
		t.Errorf("third line %q does not carry the advanced clock", pub.lines[2])
	}
}

func TestRunStrictStopsOnFailure(t *testing.T) {
	opts := fixtures(t)
	write(t, filepath.Join(opts.PowerSupplyDir, "usb", "type"), "USB\n")
	eng, _ := newEngine(t, opts, mutedAt65, true, nil)
	pub := &capture{}

	err := eng.Run(context.Background(), pub, time.Second, 0)
	if !errors.Is(err, collector.ErrClassification) {
		t.Fatalf("Run error = %v; want ErrClassification", err)
	}
	if len(pub.lines) != 0 {
		t.Errorf("strict run published %v", pub.lines)
	}
}

func TestRunContinuesAfterPublishError(t *testing.T) {
	var logs bytes.Buffer
	eng, _ := newEngine(t, fixtures(t), mutedAt65, false, &logs)
	pub := &capture{err: errors.New("unable to open display")}

	if err := eng.Run(context.Background(), pub, time.Second, 2); err != nil {
		t.Fatal(err)
	}
	if len(pub.lines) != 2 {
		t.Errorf("published %d times; want 2", len(pub.lines))
	}
	if !strings.Contains(logs.String(), "publish failed") {
		t.Errorf("publish error not logged: %s", logs.String())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	eng, _ := newEngine(t, fixtures(t), mutedAt65, false, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := eng.Run(ctx, sink.NewWriter(&buf), time.Hour, 0); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("wrote %q; want exactly one line before stopping", buf.String())
	}
}
