package model

import (
	"time"
)

// EventID identifies an event across layout passes.
type EventID string

// EventKind distinguishes what an event was derived from.
type EventKind string

const (
	KindEvent  EventKind = "event"
	KindTask   EventKind = "task"
	KindCourse EventKind = "course"
)

// Event is an immutable calendar event as supplied by an event source.
// Start must not be after End; equal instants denote a point event.
type Event struct {
	ID             EventID   `json:"id" yaml:"id"`
	Title          string    `json:"title" yaml:"title"`
	Description    string    `json:"description,omitempty" yaml:"description,omitempty"`
	Color          string    `json:"color" yaml:"color"`
	SecondaryColor string    `json:"secondary-color,omitempty" yaml:"secondary-color,omitempty"`
	Kind           EventKind `json:"kind" yaml:"kind"`
	CourseRef      string    `json:"course,omitempty" yaml:"course,omitempty"`
	Start          time.Time `json:"start" yaml:"start"`
	End            time.Time `json:"end" yaml:"end"`
}

// Duration returns the length of the event.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Valid returns whether the event has usable instants, i.e. both are set
// and the end is not before the start.
func (e *Event) Valid() bool {
	return !e.Start.IsZero() && !e.End.IsZero() && !e.End.Before(e.Start)
}

// In returns a copy of the event with both instants in the given location.
func (e Event) In(loc *time.Location) Event {
	e.Start = e.Start.In(loc)
	e.End = e.End.In(loc)
	return e
}

func (e *Event) String() string {
	return e.Start.String() + "|" + e.End.String() + "|" + string(e.Kind) + "|" + string(e.ID) + "|" + e.Title
}

// ByStartConsideringDuration orders events by start, longer events first on
// equal starts.
type ByStartConsideringDuration []Event

func (a ByStartConsideringDuration) Len() int      { return len(a) }
func (a ByStartConsideringDuration) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ByStartConsideringDuration) Less(i, j int) bool {
	secondStartsLater := a[j].Start.After(a[i].Start)
	sameStart := a[i].Start.Equal(a[j].Start)
	secondEndEarlier := a[i].End.After(a[j].End)

	return secondStartsLater || (sameStart && secondEndEarlier)
}

// Overlaps returns whether the half-open ranges [start, end) of both events
// intersect. A point event only overlaps ranged events it lies strictly
// inside of.
func (b *Event) Overlaps(a *Event) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Covers returns whether the instant lies within [start, end], inclusive of
// both endpoints.
func (e *Event) Covers(t time.Time) bool {
	return !t.Before(e.Start) && !t.After(e.End)
}

// FirstDate returns the date the event starts on.
func (e *Event) FirstDate() Date {
	return DateFromGotime(e.Start)
}

// LastDate returns the last date the event occupies. An end exactly at
// midnight is exclusive, so an event ending at 00:00 does not occupy the day
// it ends on (unless it is a point event).
func (e *Event) LastDate() Date {
	return lastDateOf(e.Start, e.End)
}

// SpansMultipleDays returns whether the event occupies more than one date.
func (e *Event) SpansMultipleDays() bool {
	return e.LastDate().IsAfter(e.FirstDate())
}

// TouchesDate returns whether the event occupies any part of the given date.
func (e *Event) TouchesDate(d Date) bool {
	return !d.IsBefore(e.FirstDate()) && !d.IsAfter(e.LastDate())
}

func lastDateOf(start, end time.Time) Date {
	last := DateFromGotime(end)
	if end.After(start) && end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 && end.Nanosecond() == 0 {
		last = last.Prev()
	}
	return last
}

// LastDateOf returns the last date occupied by the range [start, end] with
// the same midnight rule as Event.LastDate.
func LastDateOf(start, end time.Time) Date {
	return lastDateOf(start, end)
}
