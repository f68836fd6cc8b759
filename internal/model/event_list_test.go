package model_test

import (
	"testing"
	"time"

	"github.com/ja-he/planlayout/internal/model"
)

func TestEventList(t *testing.T) {
	sunday := model.Date{Year: 2022, Month: 11, Day: 13}

	// sun                mon
	// |  a  |            |
	// |   b-+------------+--|
	// |     c            |
	//                    |  d  |
	l := model.EventList{Events: []model.Event{
		{ID: "a", Start: at(9, 0), End: at(10, 0)},
		{ID: "b", Start: at(20, 0), End: at(26, 0)},
		{ID: "c", Start: at(9, 0), End: at(9, 0)},
		{ID: "d", Start: at(33, 0), End: at(34, 0)},
		{ID: "broken", Start: at(12, 0), End: at(11, 0)},
	}}

	t.Run("sorted by start is stable", func(t *testing.T) {
		ids := l.SortedByStart().IDs()
		expected := []model.EventID{"a", "c", "broken", "b", "d"}
		for i := range expected {
			if ids[i] != expected[i] {
				t.Fatalf("expected %v, got %v", expected, ids)
			}
		}
		if l.Events[0].ID != "a" || l.Events[3].ID != "d" {
			t.Error("expected receiver to be unchanged")
		}
	})

	t.Run("on date", func(t *testing.T) {
		if ids := l.OnDate(sunday).IDs(); len(ids) != 3 {
			t.Error("expected a, b and c on sunday, got", ids)
		}
		if ids := l.OnDate(sunday.Next()).IDs(); len(ids) != 2 || ids[0] != "b" || ids[1] != "d" {
			t.Error("expected b and d on monday, got", ids)
		}
	})

	t.Run("covering timerange", func(t *testing.T) {
		ids := l.CoveringTimerange(at(10, 0), at(21, 0)).IDs()
		if len(ids) != 1 || ids[0] != "b" {
			t.Error("expected only b, got", ids)
		}
		ids = l.CoveringTimerange(at(9, 0), at(9, 1)).IDs()
		if len(ids) != 2 || ids[0] != "a" || ids[1] != "c" {
			t.Error("expected a and c, got", ids)
		}
	})

	t.Run("partition", func(t *testing.T) {
		single, multi := l.PartitionByDaySpan()
		if len(single.Events) != 3 || len(multi.Events) != 1 || multi.Events[0].ID != "b" {
			t.Error("unexpected partition", single.IDs(), multi.IDs())
		}
	})

	t.Run("lookup", func(t *testing.T) {
		if e := l.GetEventByID("d"); e == nil || !e.Start.Equal(at(33, 0)) {
			t.Error("expected to find d")
		}
		if l.GetEventByID("nope") != nil {
			t.Error("expected nil for unknown id")
		}
	})

	t.Run("in location", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		moved := l.In(loc)
		if moved.Events[0].Start.Hour() != 11 || !moved.Events[0].Start.Equal(l.Events[0].Start) {
			t.Error("expected same instant at 11:00, got", moved.Events[0].Start)
		}
	})
}
