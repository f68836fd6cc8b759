package layout_test

import (
	"math"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/ja-he/planlayout/internal/layout"
	"github.com/ja-he/planlayout/internal/model"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMapGeometry(t *testing.T) {
	params := layout.DefaultGeometryParams()
	visible := &layout.VisibleRange{From: 8, To: 22}

	t.Run("slot mapping", func(t *testing.T) {
		e := ev("a", 9, 15, 10, 0)
		box := layout.MapGeometry(e.Start, e.End, baseDate, 0, 1, visible, params)
		// 75 minutes after 08:00 is 2.5 slots
		if !approx(box.Top, 80) {
			t.Error("expected top 80, got", box.Top)
		}
		// 45 minutes are 1.5 slots
		if !approx(box.Height, 48) {
			t.Error("expected height 48, got", box.Height)
		}
		if box.Width != 100 || box.Left != 0 {
			t.Error("expected full width for single track, got", box.Width, box.Left)
		}
	})

	t.Run("two tracks", func(t *testing.T) {
		a, b := ev("a", 9, 0, 10, 0), ev("b", 9, 30, 10, 30)
		boxA := layout.MapGeometry(a.Start, a.End, baseDate, 0, 2, visible, params)
		boxB := layout.MapGeometry(b.Start, b.End, baseDate, 1, 2, visible, params)
		if boxA.Width != 50 || boxA.Left != 0 {
			t.Error("expected a at 0%/50%, got", boxA.Left, boxA.Width)
		}
		if boxB.Width != 50 || boxB.Left != 50 {
			t.Error("expected b at 50%/50%, got", boxB.Left, boxB.Width)
		}
	})

	t.Run("start clamped to day", func(t *testing.T) {
		start := baseDate.Add(-2 * time.Hour)
		end := baseDate.Add(9 * time.Hour)
		box := layout.MapGeometry(start, end, baseDate, 0, 1, &layout.VisibleRange{From: 0, To: 24}, params)
		if box.Top != 0 {
			t.Error("expected top 0 for event from previous day, got", box.Top)
		}
		if !approx(box.Height, 18*32) {
			t.Error("expected height of 18 slots, got", box.Height)
		}
	})

	t.Run("end not clamped", func(t *testing.T) {
		start := baseDate.Add(23 * time.Hour)
		end := baseDate.Add(25 * time.Hour)
		box := layout.MapGeometry(start, end, baseDate, 0, 1, &layout.VisibleRange{From: 0, To: 24}, params)
		if !approx(box.Height, 4*32) {
			t.Error("expected box to extend past the day, got height", box.Height)
		}
	})

	t.Run("zero duration", func(t *testing.T) {
		e := ev("p", 12, 0, 12, 0)
		box := layout.MapGeometry(e.Start, e.End, baseDate, 0, 1, visible, params)
		if box.Height != 0 {
			t.Error("expected zero height, got", box.Height)
		}
	})

	t.Run("never negative", func(t *testing.T) {
		// ends before the day even begins
		start := baseDate.Add(-3 * time.Hour)
		end := baseDate.Add(-1 * time.Hour)
		box := layout.MapGeometry(start, end, baseDate, 0, 1, visible, params)
		if box.Height < 0 || box.Width < 0 {
			t.Error("expected non-negative dimensions, got", box.Height, box.Width)
		}
	})

	t.Run("proportional without visible range", func(t *testing.T) {
		e := ev("a", 6, 0, 12, 0)
		box := layout.MapGeometry(e.Start, e.End, baseDate, 0, 1, nil, params)
		if !approx(box.Top, 6*64) {
			t.Error("expected top 384, got", box.Top)
		}
		if !approx(box.Height, 6*64) {
			t.Error("expected height 384, got", box.Height)
		}
	})

	t.Run("zero params fall back to defaults", func(t *testing.T) {
		e := ev("a", 8, 30, 9, 0)
		box := layout.MapGeometry(e.Start, e.End, baseDate, 0, 0, visible, layout.GeometryParams{})
		if !approx(box.Top, 32) || !approx(box.Height, 32) || box.Width != 100 {
			t.Error("expected defaults to apply, got", box)
		}
	})
}

// On the days clocks change, boxes still have to line up with the hour rows,
// which are labelled by wall-clock time.
func TestMapGeometryDaylightSaving(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatal("could not load location:", err)
	}
	params := layout.DefaultGeometryParams()
	visible := &layout.VisibleRange{From: 8, To: 22}

	for name, date := range map[string]model.Date{
		"regular day":  {Year: 2023, Month: 3, Day: 25},
		"spring ahead": {Year: 2023, Month: 3, Day: 26},
		"fall back":    {Year: 2023, Month: 10, Day: 29},
	} {
		t.Run(name, func(t *testing.T) {
			dayStart := date.Start(berlin)
			start := time.Date(date.Year, time.Month(date.Month), date.Day, 9, 0, 0, 0, berlin)
			end := time.Date(date.Year, time.Month(date.Month), date.Day, 10, 0, 0, 0, berlin)
			box := layout.MapGeometry(start, end, dayStart, 0, 1, visible, params)
			// 09:00 is two slots below the 08:00 row
			if !approx(box.Top, 64) {
				t.Error("expected top 64, got", box.Top)
			}
			if !approx(box.Height, 64) {
				t.Error("expected height 64, got", box.Height)
			}
		})
	}

	t.Run("across the switch without visible range", func(t *testing.T) {
		// 23:00 on the 25th until 04:00 on the 26th reads as 5 hours
		//
		//   25th |  [=
		//   26th |=====]   (02:00 skipped)
		dayStart := model.Date{Year: 2023, Month: 3, Day: 25}.Start(berlin)
		start := time.Date(2023, 3, 25, 23, 0, 0, 0, berlin)
		end := time.Date(2023, 3, 26, 4, 0, 0, 0, berlin)
		box := layout.MapGeometry(start, end, dayStart, 0, 1, nil, params)
		if !approx(box.Top, 23*64) {
			t.Error("expected top at the 23:00 block, got", box.Top)
		}
		if !approx(box.Height, 5*64) {
			t.Error("expected height of 5 hour blocks, got", box.Height)
		}
	})

	t.Run("day layout", func(t *testing.T) {
		opts := layout.DefaultOptions()
		opts.Location = berlin
		e, err := layout.NewEngine(opts)
		if err != nil {
			t.Fatal("unexpected error creating engine:", err)
		}
		date := model.Date{Year: 2023, Month: 10, Day: 29}
		meeting := model.Event{
			ID:    "meeting",
			Kind:  model.KindEvent,
			Start: time.Date(2023, 10, 29, 9, 0, 0, 0, berlin),
			End:   time.Date(2023, 10, 29, 10, 0, 0, 0, berlin),
		}
		l := e.LayoutDay([]model.Event{meeting}, date)
		box := boxFor(t, l, "meeting")
		if !approx(box.Top, 64) {
			t.Error("expected meeting on the 09:00 row, got top", box.Top)
		}
	})
}
