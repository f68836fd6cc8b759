package storage_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ja-he/planlayout/internal/model"
	"github.com/ja-he/planlayout/internal/storage"
)

type staticSource struct {
	events []model.Event
	err    error
}

func (s staticSource) GetEventsCoveringTimerange(start, end time.Time) ([]model.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	return model.EventList{Events: s.events}.CoveringTimerange(start, end).Events, nil
}

func TestCombinedSource(t *testing.T) {
	day := time.Date(2022, 11, 14, 0, 0, 0, 0, time.UTC)
	event := func(id string, h int) model.Event {
		return model.Event{ID: model.EventID(id), Start: day.Add(time.Duration(h) * time.Hour), End: day.Add(time.Duration(h+1) * time.Hour)}
	}

	combined := storage.CombinedSource{
		staticSource{events: []model.Event{event("a", 9), event("b", 30)}},
		staticSource{events: []model.Event{event("a", 10), event("c", 11)}},
	}

	events, err := combined.GetEventsCoveringTimerange(day, day.Add(24*time.Hour))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	ids := model.EventList{Events: events}.IDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
		t.Error("expected a (from the first source) and c, got", ids)
	}
	if !events[0].Start.Equal(day.Add(9 * time.Hour)) {
		t.Error("expected the first source's a to win")
	}

	failing := append(combined, staticSource{err: errors.New("unavailable")})
	if _, err := failing.GetEventsCoveringTimerange(day, day.Add(24*time.Hour)); err == nil {
		t.Error("expected error from failing source")
	}
}
