package model

import (
	"fmt"
	"strings"
	"time"
)

// RawEvent is an event as found in an external document, with its instants
// still in textual form.
type RawEvent struct {
	ID             string `yaml:"id"`
	Title          string `yaml:"title"`
	Description    string `yaml:"description,omitempty"`
	Color          string `yaml:"color,omitempty"`
	SecondaryColor string `yaml:"secondary-color,omitempty"`
	Kind           string `yaml:"kind,omitempty"`
	Course         string `yaml:"course,omitempty"`
	Start          string `yaml:"start"`
	End            string `yaml:"end"`
}

// instantLayouts are tried in order by ParseInstant.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInstant parses an instant in one of the supported unambiguous formats.
// Formats without zone information are interpreted in loc.
func ParseInstant(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	for _, layout := range instantLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse instant '%s'", s)
}

// Parse converts the raw event into an Event.
func (r RawEvent) Parse(loc *time.Location) (Event, error) {
	start, err := ParseInstant(r.Start, loc)
	if err != nil {
		return Event{}, fmt.Errorf("event '%s' has malformed start (%w)", r.ID, err)
	}
	end, err := ParseInstant(r.End, loc)
	if err != nil {
		return Event{}, fmt.Errorf("event '%s' has malformed end (%w)", r.ID, err)
	}
	if end.Before(start) {
		return Event{}, fmt.Errorf("event '%s' ends (%s) before it starts (%s)", r.ID, end, start)
	}

	kind := EventKind(r.Kind)
	if kind == "" {
		kind = KindEvent
	}

	return Event{
		ID:             EventID(r.ID),
		Title:          r.Title,
		Description:    r.Description,
		Color:          r.Color,
		SecondaryColor: r.SecondaryColor,
		Kind:           kind,
		CourseRef:      r.Course,
		Start:          start,
		End:            end,
	}, nil
}
