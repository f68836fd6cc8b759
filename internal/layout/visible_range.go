package layout

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/planlayout/internal/model"
)

// VisibleRange is the window of hours [From, To) rendered for a day.
type VisibleRange struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// DefaultVisibleRange is 08:00 to 22:00.
func DefaultVisibleRange() VisibleRange {
	return VisibleRange{From: 8, To: 22}
}

// Validate checks that the range lies within a day and is not empty.
func (r VisibleRange) Validate() error {
	if r.From < 0 || r.To > 24 || r.From >= r.To {
		return fmt.Errorf("invalid visible range %d-%d (need 0 <= from < to <= 24)", r.From, r.To)
	}
	return nil
}

// Hours returns the hours [From, From+1, ..., To-1] for grid rows.
func (r VisibleRange) Hours() []int {
	hours := make([]int, 0, r.To-r.From)
	for h := r.From; h < r.To; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Union returns the smallest range covering both ranges.
func (r VisibleRange) Union(other VisibleRange) VisibleRange {
	if other.From < r.From {
		r.From = other.From
	}
	if other.To > r.To {
		r.To = other.To
	}
	return r
}

// ResolveVisibleRange widens the default range so that it covers every event
// of the given day.
//
// An event starting before its hour's From lowers From to its start hour; an
// event ending after To raises To to its end hour, rounded up when the end
// is not on the full hour. Events reaching into the day from a previous date
// start at hour 0, events continuing past the day end at hour 24. To is
// capped at 24. Events with unusable instants are skipped.
func ResolveVisibleRange(defaults VisibleRange, day model.Date, events []model.Event) VisibleRange {
	result := defaults
	for i := range events {
		e := &events[i]
		if !e.Valid() {
			log.Debug().Str("event-id", string(e.ID)).Time("start", e.Start).Time("end", e.End).Msg("skipping event with unusable instants for visible range")
			continue
		}

		startHour := e.Start.Hour()
		if e.FirstDate().IsBefore(day) {
			startHour = 0
		}
		endHour := e.End.Hour()
		if e.End.Minute() > 0 || e.End.Second() > 0 || e.End.Nanosecond() > 0 {
			endHour++
		}
		if e.LastDate().IsAfter(day) || model.DateFromGotime(e.End).IsAfter(day) && e.End.After(e.Start) {
			endHour = 24
		}

		if startHour < result.From {
			result.From = startHour
		}
		if endHour > result.To {
			result.To = endHour
		}
	}
	if result.To > 24 {
		result.To = 24
	}
	if result.From < 0 {
		result.From = 0
	}
	return result
}
