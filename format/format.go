// Package format renders a snapshot as a dwm status line.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/ftahirops/xstatus/model"
)

// Options controls the line layout.
type Options struct {
	Separator   string
	TimeLayout  string
	DateLayout  string
	Placeholder string // shown for a metric whose collector failed
}

// DefaultOptions matches the classic layout:
//
//	V(x) 65% | b 50% | B+ 50.0 | M 6000000 / 8000000 | 14:03:09 | 15/10/26
func DefaultOptions() Options {
	return Options{
		Separator:   " | ",
		TimeLayout:  "15:04:05",
		DateLayout:  "02/01/06",
		Placeholder: "N/A",
	}
}

// Field is one rendered segment of the line.
type Field struct {
	Label string // "V", "b", "B", "M", "time", "date"
	Text  string
	OK    bool // false when the placeholder was used
}

// Fields renders each segment in display order: volume, brightness,
// battery, memory, time, date.
func Fields(snap *model.Snapshot, now time.Time, opts Options) []Field {
	fields := make([]Field, 0, 6)

	if v := snap.Volume; v != nil {
		mute := ""
		if v.Muted {
			mute = "(x)"
		}
		fields = append(fields, Field{"V", fmt.Sprintf("V%s %d%%", mute, v.Level), true})
	} else {
		fields = append(fields, Field{"V", "V " + opts.Placeholder, false})
	}

	if b := snap.Brightness; b != nil {
		fields = append(fields, Field{"b", fmt.Sprintf("b %.0f%%", b.Percentage), true})
	} else {
		fields = append(fields, Field{"b", "b " + opts.Placeholder, false})
	}

	if b := snap.Battery; b != nil {
		sign := "-"
		if b.Charging {
			sign = "+"
		}
		fields = append(fields, Field{"B", fmt.Sprintf("B%s %.1f", sign, b.Percentage), true})
	} else {
		fields = append(fields, Field{"B", "B " + opts.Placeholder, false})
	}

	if m := snap.Memory; m != nil {
		fields = append(fields, Field{"M", fmt.Sprintf("M %d / %d", m.Used, m.Total), true})
	} else {
		fields = append(fields, Field{"M", "M " + opts.Placeholder, false})
	}

	fields = append(fields,
		Field{"time", now.Format(opts.TimeLayout), true},
		Field{"date", now.Format(opts.DateLayout), true},
	)
	return fields
}

// Line joins Fields with the separator. It never fails.
func Line(snap *model.Snapshot, now time.Time, opts Options) string {
	fields := Fields(snap, now, opts)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Text
	}
	return strings.Join(parts, opts.Separator)
}
