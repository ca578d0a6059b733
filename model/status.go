package model

import "time"

// Battery holds one battery reading plus the AC adapter state.
type Battery struct {
	ChargeNow  uint64 // device units (µAh or µWh)
	ChargeFull uint64
	Capacity   uint64 // device-reported percentage, may drift from Percentage

	// Percentage is ChargeNow/ChargeFull*100. Not clamped: a device that
	// reports charge_now > charge_full shows up as >100.
	Percentage float64
	Charging   bool // AC adapter online
}

// Brightness holds the backlight level.
type Brightness struct {
	Current    uint64
	Max        uint64
	Percentage float64
}

// Volume holds the default audio sink state.
type Volume struct {
	Level int // percent, may exceed 100 when the sink is boosted
	Muted bool
}

// Memory holds /proc/meminfo figures in kB.
type Memory struct {
	Free      uint64
	Total     uint64
	Available uint64 // 0 when the kernel does not report MemAvailable
	Used      uint64 // Total - Free
}

// Snapshot is one poll cycle. A nil metric means its collector failed
// during this cycle.
type Snapshot struct {
	Timestamp  time.Time
	Battery    *Battery
	Brightness *Brightness
	Volume     *Volume
	Memory     *Memory
}
