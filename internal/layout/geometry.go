package layout

import (
	"math"
	"time"

	"github.com/ja-he/planlayout/internal/model"
)

const minutesPerDay = 24 * 60

// GeometryParams are the vertical scale parameters for event boxes.
type GeometryParams struct {
	// SlotInterval is the duration one grid slot represents.
	SlotInterval time.Duration
	// SlotHeight is the height of a single slot.
	SlotHeight float64
	// HourBlockHeight is the height of an hour when no visible range is used.
	HourBlockHeight float64
}

// DefaultGeometryParams returns half-hour slots of 32 units and 64 unit hour
// blocks.
func DefaultGeometryParams() GeometryParams {
	return GeometryParams{
		SlotInterval:    30 * time.Minute,
		SlotHeight:      32,
		HourBlockHeight: 64,
	}
}

// Box is the drawable rectangle of an event.
// Top and Height are in the vertical units of GeometryParams, Left and Width
// are percentages of the column width.
type Box struct {
	Top    float64 `json:"top" yaml:"top"`
	Height float64 `json:"height" yaml:"height"`
	Width  float64 `json:"width" yaml:"width"`
	Left   float64 `json:"left" yaml:"left"`
}

// FullWidth returns the box stretched over the whole column.
func (b Box) FullWidth() Box {
	b.Width = 100
	b.Left = 0
	return b
}

// MapGeometry converts an event's interval on the day beginning at dayStart
// into a box.
//
// The start is clamped to dayStart, the end is not clamped, so boxes of
// events running past midnight extend beyond the day.
// With a visible range, the vertical position is measured in slots from the
// range's first hour; without one, the full day is mapped proportionally
// onto 24 hour blocks.
// Minutes are read off the wall clock, so on days with a daylight saving
// transition boxes still line up with the labelled hour rows.
// Horizontally, the column is split evenly between trackCount tracks.
func MapGeometry(
	start, end time.Time,
	dayStart time.Time,
	trackIndex, trackCount int,
	visible *VisibleRange,
	params GeometryParams,
) Box {
	params = params.withDefaults()

	startClamped := start
	if startClamped.Before(dayStart) {
		startClamped = dayStart
	}
	startMinutes := wallClockMinutes(startClamped, dayStart)
	endMinutes := wallClockMinutes(end, dayStart)
	durationMinutes := math.Max(0, endMinutes-startMinutes)

	var box Box
	if visible != nil {
		slotMinutes := params.SlotInterval.Minutes()
		offset := (startMinutes - float64(visible.From*60)) / slotMinutes
		slotIndex := math.Floor(offset)
		fractional := offset - slotIndex
		box.Top = slotIndex*params.SlotHeight + fractional*params.SlotHeight
		box.Height = (durationMinutes / slotMinutes) * params.SlotHeight
	} else {
		dayHeight := params.HourBlockHeight * 24
		box.Top = (startMinutes / minutesPerDay) * dayHeight
		box.Height = (durationMinutes / minutesPerDay) * dayHeight
	}

	if trackCount < 1 {
		trackCount = 1
	}
	if trackIndex < 0 {
		trackIndex = 0
	}
	box.Width = 100 / float64(trackCount)
	box.Left = float64(trackIndex) * box.Width

	return box
}

// wallClockMinutes returns the minutes from dayStart's midnight to t as shown
// on a clock in dayStart's location, counting whole days for later dates.
func wallClockMinutes(t, dayStart time.Time) float64 {
	t = t.In(dayStart.Location())
	days := model.DateFromGotime(dayStart).DaysUntil(model.DateFromGotime(t))
	return float64(days*minutesPerDay+t.Hour()*60+t.Minute()) + float64(t.Second())/60
}

func (p GeometryParams) withDefaults() GeometryParams {
	defaults := DefaultGeometryParams()
	if p.SlotInterval <= 0 {
		p.SlotInterval = defaults.SlotInterval
	}
	if p.SlotHeight <= 0 {
		p.SlotHeight = defaults.SlotHeight
	}
	if p.HourBlockHeight <= 0 {
		p.HourBlockHeight = defaults.HourBlockHeight
	}
	return p
}
