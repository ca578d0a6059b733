package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ftahirops/xstatus/model"
)

// DeviceKind classifies a power_supply entry.
type DeviceKind int

const (
	KindUnknown DeviceKind = iota
	KindBattery
	KindAC
)

func (k DeviceKind) String() string {
	switch k {
	case KindBattery:
		return "battery"
	case KindAC:
		return "ac"
	default:
		return "unknown"
	}
}

// ClassifyDevice maps the contents of a power_supply "type" file to a kind.
func ClassifyDevice(typ string) DeviceKind {
	switch typ {
	case "Battery":
		return KindBattery
	case "Mains":
		return KindAC
	default:
		return KindUnknown
	}
}

// BatteryCollector reads the battery and AC adapter under
// /sys/class/power_supply.
type BatteryCollector struct {
	Dir string
}

func (b *BatteryCollector) Name() string { return "battery" }

func (b *BatteryCollector) Collect(_ context.Context, snap *model.Snapshot) error {
	bat, err := b.Read()
	if err != nil {
		return err
	}
	snap.Battery = &bat
	return nil
}

// Read enumerates the power supplies. The first battery wins; an AC-only
// host yields a zero battery with the adapter state. Any device that is
// neither battery nor mains fails the whole read.
func (b *BatteryCollector) Read() (model.Battery, error) {
	var bat model.Battery

	entries, err := os.ReadDir(b.Dir)
	if err != nil {
		return bat, &ReadError{Path: b.Dir, Err: err}
	}

	found := false
	for _, e := range entries {
		dev := filepath.Join(b.Dir, e.Name())
		typ, err := ReadString(filepath.Join(dev, "type"))
		if err != nil {
			return bat, err
		}

		switch ClassifyDevice(typ) {
		case KindBattery:
			if found {
				continue
			}
			charging := bat.Charging
			if bat, err = readBattery(dev); err != nil {
				return bat, err
			}
			bat.Charging = charging
			found = true
		case KindAC:
			online, err := ReadUint(filepath.Join(dev, "online"))
			if err != nil {
				return bat, err
			}
			bat.Charging = online == 1
		case KindUnknown:
			return bat, &ClassificationError{Path: dev, Type: typ}
		}
	}
	return bat, nil
}

func readBattery(dev string) (model.Battery, error) {
	var bat model.Battery
	var err error

	if bat.Capacity, err = ReadUint(filepath.Join(dev, "capacity")); err != nil {
		return bat, err
	}

	// Some firmwares report energy (µWh) instead of charge (µAh).
	now, full := "charge_now", "charge_full"
	if _, statErr := os.Stat(filepath.Join(dev, now)); os.IsNotExist(statErr) {
		if _, statErr := os.Stat(filepath.Join(dev, "energy_now")); statErr == nil {
			now, full = "energy_now", "energy_full"
		}
	}
	if bat.ChargeNow, err = ReadUint(filepath.Join(dev, now)); err != nil {
		return bat, err
	}
	if bat.ChargeFull, err = ReadUint(filepath.Join(dev, full)); err != nil {
		return bat, err
	}
	if bat.ChargeFull == 0 {
		return bat, &ParseError{Source: filepath.Join(dev, full), Detail: fmt.Sprintf("%s is zero", full)}
	}

	bat.Percentage = float64(bat.ChargeNow) / float64(bat.ChargeFull) * 100
	return bat, nil
}
