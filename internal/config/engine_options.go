package config

import (
	"fmt"
	"time"

	"github.com/ja-he/planlayout/internal/daypart"
	"github.com/ja-he/planlayout/internal/layout"
	"github.com/ja-he/planlayout/internal/model"
)

// Location returns the configured time zone.
func (c Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone '%s' (%w)", c.Timezone, err)
	}
	return loc, nil
}

// EngineOptions converts the configuration into layout engine options.
func (c Config) EngineOptions() (layout.Options, error) {
	opts := layout.DefaultOptions()

	loc, err := c.Location()
	if err != nil {
		return opts, err
	}
	opts.Location = loc

	if c.Layout.VisibleRange.From != nil {
		opts.DefaultRange.From = *c.Layout.VisibleRange.From
	}
	if c.Layout.VisibleRange.To != nil {
		opts.DefaultRange.To = *c.Layout.VisibleRange.To
	}
	if err := opts.DefaultRange.Validate(); err != nil {
		return opts, err
	}

	if c.Layout.SlotInterval != "" {
		interval, err := time.ParseDuration(c.Layout.SlotInterval)
		if err != nil {
			return opts, fmt.Errorf("invalid slot interval '%s' (%w)", c.Layout.SlotInterval, err)
		}
		if interval <= 0 {
			return opts, fmt.Errorf("slot interval must be positive, got '%s'", c.Layout.SlotInterval)
		}
		opts.Geometry.SlotInterval = interval
	}
	if c.Layout.SlotHeight < 0 || c.Layout.HourBlockHeight < 0 {
		return opts, fmt.Errorf("heights must not be negative")
	}
	if c.Layout.SlotHeight > 0 {
		opts.Geometry.SlotHeight = c.Layout.SlotHeight
	}
	if c.Layout.HourBlockHeight > 0 {
		opts.Geometry.HourBlockHeight = c.Layout.HourBlockHeight
	}

	switch c.Layout.MultiDayTieBreak {
	case "", TieBreakLongerSpanFirst:
		opts.TieBreak = layout.LongerSpanFirst
	case TieBreakInputOrder:
		opts.TieBreak = layout.InputOrder
	default:
		return opts, fmt.Errorf("unknown multi-day tie break '%s'", c.Layout.MultiDayTieBreak)
	}

	return opts, nil
}

// DaypartPolicy builds the daypart policy from the configured dayparts.
// The last configured daypart is the fallback for unknown names.
func (c Config) DaypartPolicy() (*daypart.Policy, error) {
	if len(c.Dayparts) == 0 {
		return nil, fmt.Errorf("no dayparts configured")
	}
	windows := make(map[string]daypart.Window, len(c.Dayparts))
	for _, d := range c.Dayparts {
		start, err := model.TimestampFromString(d.Start)
		if err != nil {
			return nil, fmt.Errorf("daypart '%s' has invalid start (%w)", d.Name, err)
		}
		end, err := model.TimestampFromString(d.End)
		if err != nil {
			return nil, fmt.Errorf("daypart '%s' has invalid end (%w)", d.Name, err)
		}
		windows[d.Name] = daypart.Window{Start: start, End: end}
	}
	return daypart.NewPolicy(windows, c.Dayparts[len(c.Dayparts)-1].Name)
}
