package storage

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/planlayout/internal/model"
)

// EventSource is the abstracted source of events, which can be implemented
// over various storage systems (files, calendar feeds, ...).
//
// Sources are read-only; the layout engine never writes back.
type EventSource interface {
	// GetEventsCoveringTimerange returns the events intersecting [start, end).
	GetEventsCoveringTimerange(start, end time.Time) ([]model.Event, error)
}

// CombinedSource queries all of its sources in order and concatenates their
// events. Events whose ID was already returned by an earlier source are
// dropped.
type CombinedSource []EventSource

// GetEventsCoveringTimerange ...
func (c CombinedSource) GetEventsCoveringTimerange(start, end time.Time) ([]model.Event, error) {
	result := []model.Event{}
	seen := map[model.EventID]struct{}{}
	for i, source := range c {
		events, err := source.GetEventsCoveringTimerange(start, end)
		if err != nil {
			return nil, fmt.Errorf("source %d failed (%w)", i, err)
		}
		for _, e := range events {
			if _, dup := seen[e.ID]; dup {
				log.Warn().Str("event-id", string(e.ID)).Int("source", i).Msg("dropping event with duplicate ID")
				continue
			}
			seen[e.ID] = struct{}{}
			result = append(result, e)
		}
	}
	return result, nil
}
