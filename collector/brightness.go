package collector

import (
	"context"
	"path/filepath"

	"github.com/ftahirops/xstatus/model"
)

// BrightnessCollector reads a backlight device such as
// /sys/class/backlight/intel_backlight.
type BrightnessCollector struct {
	Dir string
}

func (b *BrightnessCollector) Name() string { return "brightness" }

func (b *BrightnessCollector) Collect(_ context.Context, snap *model.Snapshot) error {
	br, err := b.Read()
	if err != nil {
		return err
	}
	snap.Brightness = &br
	return nil
}

// Read returns the current and maximum backlight levels.
func (b *BrightnessCollector) Read() (model.Brightness, error) {
	var br model.Brightness
	var err error

	if br.Current, err = ReadUint(filepath.Join(b.Dir, "brightness")); err != nil {
		return br, err
	}
	maxPath := filepath.Join(b.Dir, "max_brightness")
	if br.Max, err = ReadUint(maxPath); err != nil {
		return br, err
	}
	if br.Max == 0 {
		return br, &ParseError{Source: maxPath, Detail: "max_brightness is zero"}
	}

	br.Percentage = float64(br.Current) / float64(br.Max) * 100
	return br, nil
}
