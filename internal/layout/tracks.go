// Package layout computes non-overlapping visual arrangements of calendar
// events: track assignment and box geometry for day columns, visible hour
// windows, row packing of multi-day events across a week, month cell grids
// and the set of events happening at a given instant.
//
// All functions are pure; nothing here reads a clock or keeps state between
// calls.
package layout

import (
	"errors"
	"fmt"

	"github.com/ja-he/planlayout/internal/model"
)

// ErrUnsortedInput is returned when events handed to AssignSortedTracks are
// not in ascending start order.
var ErrUnsortedInput = errors.New("events not sorted ascending by start")

// A Track is a lane of events of which no two overlap.
type Track []model.Event

// TrackPlacement records which track an event was assigned to.
type TrackPlacement struct {
	Event model.Event
	Track int
}

// TrackAssignment is the result of distributing a day's events over tracks.
type TrackAssignment struct {
	Tracks []Track
	// Placements are in assignment (i.e. start) order.
	Placements []TrackPlacement
}

// Count returns the total number of tracks.
func (a *TrackAssignment) Count() int {
	return len(a.Tracks)
}

// IndexOf returns the track of the first placed event with the given ID.
func (a *TrackAssignment) IndexOf(id model.EventID) (int, bool) {
	for _, p := range a.Placements {
		if p.Event.ID == id {
			return p.Track, true
		}
	}
	return -1, false
}

// OverlapsOutsideTrack returns whether the placed event at the given index
// overlaps any event assigned to a track other than its own.
func (a *TrackAssignment) OverlapsOutsideTrack(placement int) bool {
	p := a.Placements[placement]
	for trackIndex, track := range a.Tracks {
		if trackIndex == p.Track {
			continue
		}
		for i := range track {
			if p.Event.Overlaps(&track[i]) {
				return true
			}
		}
	}
	return false
}

// AssignTracks distributes the events over the minimum ordered set of tracks
// such that no two events sharing a track overlap.
// The events are sorted by start first (stably), so any order is accepted.
func AssignTracks(events []model.Event) *TrackAssignment {
	return assignTracks(model.EventList{Events: events}.SortedByStart().Events)
}

// AssignSortedTracks assigns each event, in the given order, to the first
// track whose most recently appended event ends at or before the event's
// start, opening a new track if there is none.
//
// Checking only the last member of each track is sufficient solely because
// events arrive in non-decreasing start order; if they do not,
// ErrUnsortedInput is returned and nothing is assigned.
func AssignSortedTracks(events []model.Event) (*TrackAssignment, error) {
	for i := 1; i < len(events); i++ {
		if events[i].Start.Before(events[i-1].Start) {
			return nil, fmt.Errorf("event '%s' at position %d starts before its predecessor (%w)", events[i].ID, i, ErrUnsortedInput)
		}
	}
	return assignTracks(events), nil
}

// assignTracks is AssignSortedTracks without the order check.
func assignTracks(events []model.Event) *TrackAssignment {
	assignment := &TrackAssignment{
		Tracks:     make([]Track, 0),
		Placements: make([]TrackPlacement, 0, len(events)),
	}
	for _, e := range events {
		trackIndex := -1
		for i, track := range assignment.Tracks {
			last := track[len(track)-1]
			if !last.End.After(e.Start) {
				trackIndex = i
				break
			}
		}
		if trackIndex == -1 {
			assignment.Tracks = append(assignment.Tracks, Track{})
			trackIndex = len(assignment.Tracks) - 1
		}
		assignment.Tracks[trackIndex] = append(assignment.Tracks[trackIndex], e)
		assignment.Placements = append(assignment.Placements, TrackPlacement{Event: e, Track: trackIndex})
	}
	return assignment
}
