package layout

import (
	"time"

	"github.com/ja-he/planlayout/internal/model"
)

// ActiveAt returns the events whose interval contains now, including both
// endpoints.
func ActiveAt(events []model.Event, now time.Time) []model.Event {
	active := make([]model.Event, 0)
	for i := range events {
		if events[i].Valid() && events[i].Covers(now) {
			active = append(active, events[i])
		}
	}
	return active
}
