package model

import (
	"sort"
	"time"
)

// EventList is an ordered list of events. Its operations never modify the
// receiver's events but return new lists.
type EventList struct {
	Events []Event
}

// GetEventByID returns the first event with the given ID, or nil.
func (l EventList) GetEventByID(id EventID) *Event {
	for i := range l.Events {
		if l.Events[i].ID == id {
			return &l.Events[i]
		}
	}
	return nil
}

// SortedByStart returns the events ordered ascending by start. The sort is
// stable, so events with equal starts keep their relative order.
func (l EventList) SortedByStart() EventList {
	sorted := make([]Event, len(l.Events))
	copy(sorted, l.Events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return EventList{Events: sorted}
}

// In returns the events converted to the given location.
func (l EventList) In(loc *time.Location) EventList {
	result := make([]Event, len(l.Events))
	for i := range l.Events {
		result[i] = l.Events[i].In(loc)
	}
	return EventList{Events: result}
}

// Filter returns the events for which keep returns true.
func (l EventList) Filter(keep func(*Event) bool) EventList {
	result := make([]Event, 0, len(l.Events))
	for i := range l.Events {
		if keep(&l.Events[i]) {
			result = append(result, l.Events[i])
		}
	}
	return EventList{Events: result}
}

// Valid returns the events with usable instants.
func (l EventList) Valid() EventList {
	return l.Filter(func(e *Event) bool { return e.Valid() })
}

// OnDate returns the events that occupy any part of the given date.
func (l EventList) OnDate(d Date) EventList {
	return l.Filter(func(e *Event) bool { return e.Valid() && e.TouchesDate(d) })
}

// CoveringTimerange returns the events intersecting [start, end).
func (l EventList) CoveringTimerange(start, end time.Time) EventList {
	return l.Filter(func(e *Event) bool {
		if !e.Valid() {
			return false
		}
		if e.Start.Equal(e.End) {
			return !e.Start.Before(start) && e.Start.Before(end)
		}
		return e.Start.Before(end) && e.End.After(start)
	})
}

// PartitionByDaySpan splits the list into events confined to a single date
// and events spanning multiple dates.
func (l EventList) PartitionByDaySpan() (single EventList, multi EventList) {
	for i := range l.Events {
		e := l.Events[i]
		if !e.Valid() {
			continue
		}
		if e.SpansMultipleDays() {
			multi.Events = append(multi.Events, e)
		} else {
			single.Events = append(single.Events, e)
		}
	}
	return single, multi
}

// IDs returns the IDs of the events in order.
func (l EventList) IDs() []EventID {
	ids := make([]EventID, len(l.Events))
	for i := range l.Events {
		ids[i] = l.Events[i].ID
	}
	return ids
}
