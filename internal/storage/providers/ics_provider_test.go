package providers_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ja-he/planlayout/internal/model"
	"github.com/ja-he/planlayout/internal/storage/providers"
)

func writeICS(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendar.ics")
	content := strings.Join(append(append([]string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:-//planlayout//test//EN"}, lines...), "END:VCALENDAR", ""), "\r\n")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatal("could not write test file:", err)
	}
	return path
}

func byID(events []model.Event) map[model.EventID]model.Event {
	result := map[model.EventID]model.Event{}
	for _, e := range events {
		result[e.ID] = e
	}
	return result
}

func utc(year, month, day, hour, minute int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}

func TestICSProvider(t *testing.T) {
	path := writeICS(t,
		"BEGIN:VEVENT",
		"UID:single",
		"SUMMARY:Lecture",
		"DTSTART:20221114T090000Z",
		"DTEND:20221114T100000Z",
		"END:VEVENT",

		"BEGIN:VEVENT",
		"UID:allday",
		"SUMMARY:Field trip",
		"DTSTART;VALUE=DATE:20221115",
		"DTEND;VALUE=DATE:20221117",
		"END:VEVENT",

		"BEGIN:VEVENT",
		"UID:weekly",
		"SUMMARY:Tutorial",
		"DTSTART:20221101T120000Z",
		"DTEND:20221101T130000Z",
		"RRULE:FREQ=WEEKLY;COUNT=4",
		"EXDATE:20221108T120000Z",
		"END:VEVENT",

		"BEGIN:VEVENT",
		"UID:weekly",
		"RECURRENCE-ID:20221115T120000Z",
		"SUMMARY:Tutorial (moved)",
		"DTSTART:20221115T140000Z",
		"DTEND:20221115T150000Z",
		"END:VEVENT",

		"BEGIN:VEVENT",
		"SUMMARY:No UID",
		"DTSTART:20221114T090000Z",
		"DTEND:20221114T100000Z",
		"END:VEVENT",
	)
	p := providers.NewICSProvider(path, time.UTC)

	t.Run("week", func(t *testing.T) {
		events, err := p.GetEventsCoveringTimerange(utc(2022, 11, 14, 0, 0), utc(2022, 11, 21, 0, 0))
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if len(events) != 3 {
			t.Fatalf("expected 3 events, got %d: %v", len(events), model.EventList{Events: events}.IDs())
		}
		got := byID(events)

		single, ok := got["single"]
		if !ok || !single.Start.Equal(utc(2022, 11, 14, 9, 0)) || !single.End.Equal(utc(2022, 11, 14, 10, 0)) || single.Title != "Lecture" {
			t.Error("unexpected single event", single)
		}

		allday, ok := got["allday"]
		if !ok || !allday.Start.Equal(utc(2022, 11, 15, 0, 0)) || !allday.End.Equal(utc(2022, 11, 17, 0, 0)) {
			t.Error("unexpected all-day event", allday)
		}
		if !allday.SpansMultipleDays() {
			t.Error("expected two-day all-day event to span multiple days")
		}

		moved, ok := got["weekly#20221115T120000Z"]
		if !ok || !moved.Start.Equal(utc(2022, 11, 15, 14, 0)) || moved.Title != "Tutorial (moved)" {
			t.Error("expected overridden occurrence, got", moved)
		}
	})

	t.Run("exdate", func(t *testing.T) {
		events, err := p.GetEventsCoveringTimerange(utc(2022, 11, 1, 0, 0), utc(2022, 11, 12, 0, 0))
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		ids := model.EventList{Events: events}.IDs()
		if len(ids) != 1 || ids[0] != "weekly#20221101T120000Z" {
			t.Error("expected only the first occurrence, got", ids)
		}
	})

	t.Run("after last occurrence", func(t *testing.T) {
		events, err := p.GetEventsCoveringTimerange(utc(2022, 11, 23, 0, 0), utc(2022, 12, 31, 0, 0))
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if len(events) != 0 {
			t.Error("expected no events, got", model.EventList{Events: events}.IDs())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := providers.NewICSProvider(filepath.Join(t.TempDir(), "nope.ics"), time.UTC).
			GetEventsCoveringTimerange(utc(2022, 11, 14, 0, 0), utc(2022, 11, 21, 0, 0))
		if err == nil {
			t.Error("expected error")
		}
	})
}

func TestICSProviderFloatingTimes(t *testing.T) {
	// a zone that is guaranteed not to be the machine's
	_, localOffset := time.Date(2022, 11, 14, 9, 0, 0, 0, time.Local).Zone()
	loc := time.FixedZone("elsewhere", localOffset+3*60*60)

	path := writeICS(t,
		"BEGIN:VEVENT",
		"UID:daily",
		"SUMMARY:Standup",
		"DTSTART:20221114T090000",
		"DTEND:20221114T091500",
		"RRULE:FREQ=DAILY;COUNT=3",
		"EXDATE:20221115T090000",
		"END:VEVENT",
	)
	p := providers.NewICSProvider(path, loc)

	events, err := p.GetEventsCoveringTimerange(
		time.Date(2022, 11, 14, 0, 0, 0, 0, loc),
		time.Date(2022, 11, 17, 0, 0, 0, 0, loc),
	)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 occurrences, got %d: %v", len(events), model.EventList{Events: events}.IDs())
	}
	for i, day := range []int{14, 16} {
		start := time.Date(2022, 11, day, 9, 0, 0, 0, loc)
		if !events[i].Start.Equal(start) || !events[i].End.Equal(start.Add(15*time.Minute)) {
			t.Errorf("expected occurrence on the %dth at 09:00-09:15 in the provider's zone, got %s-%s", day, events[i].Start, events[i].End)
		}
	}
}
