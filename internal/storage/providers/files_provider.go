package providers

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/planlayout/internal/daypart"
	"github.com/ja-he/planlayout/internal/model"
)

// EventsDocument is the YAML document read by FilesProvider.
//
//	events:
//	  - id: standup
//	    title: Standup
//	    start: 2022-11-14 09:00
//	    end: 2022-11-14 09:15
//	tasks:
//	  - id: essay
//	    title: Hand in essay
//	    due: 2022-11-16
//	    daypart: afternoon
type EventsDocument struct {
	Events []model.RawEvent `yaml:"events"`
	Tasks  []RawTask        `yaml:"tasks"`
}

// RawTask is a task with a date-only due date, which is placed in the window
// of its daypart.
type RawTask struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Color       string `yaml:"color,omitempty"`
	Course      string `yaml:"course,omitempty"`
	Due         string `yaml:"due"`
	Daypart     string `yaml:"daypart,omitempty"`
}

// FilesProvider provides the events of a YAML events document on disk.
// The file is read once, on the first query.
type FilesProvider struct {
	Path string

	loc      *time.Location
	dayparts *daypart.Policy

	mtx    sync.Mutex
	events []model.Event
	loaded bool
}

// NewFilesProvider returns a source over the file at the given path.
// Instants without zone information are interpreted in loc.
func NewFilesProvider(path string, loc *time.Location, dayparts *daypart.Policy) *FilesProvider {
	return &FilesProvider{
		Path:     path,
		loc:      loc,
		dayparts: dayparts,
	}
}

// GetEventsCoveringTimerange ...
func (p *FilesProvider) GetEventsCoveringTimerange(start, end time.Time) ([]model.Event, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.loaded {
		data, err := os.ReadFile(p.Path)
		if err != nil {
			return nil, fmt.Errorf("can't read events file '%s' (%w)", p.Path, err)
		}
		events, err := ParseEventsDocument(data, p.loc, p.dayparts)
		if err != nil {
			return nil, fmt.Errorf("can't parse events file '%s' (%w)", p.Path, err)
		}
		p.events = events
		p.loaded = true
	}

	return model.EventList{Events: p.events}.CoveringTimerange(start, end).Events, nil
}

// ParseEventsDocument parses an events document. Malformed entries are
// logged and skipped; only an unparseable document is an error.
func ParseEventsDocument(data []byte, loc *time.Location, dayparts *daypart.Policy) ([]model.Event, error) {
	var doc EventsDocument
	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}

	result := make([]model.Event, 0, len(doc.Events)+len(doc.Tasks))
	for _, raw := range doc.Events {
		e, err := raw.Parse(loc)
		if err != nil {
			log.Warn().Err(err).Str("event-id", raw.ID).Msg("skipping malformed event")
			continue
		}
		result = append(result, e)
	}

	for _, raw := range doc.Tasks {
		if dayparts == nil {
			log.Warn().Str("task-id", raw.ID).Msg("skipping task, no dayparts configured")
			continue
		}
		e, err := raw.toEvent(loc, dayparts)
		if err != nil {
			log.Warn().Err(err).Str("task-id", raw.ID).Msg("skipping malformed task")
			continue
		}
		result = append(result, e)
	}

	log.Debug().Int("events", len(doc.Events)).Int("tasks", len(doc.Tasks)).Int("usable", len(result)).Msg("parsed events document")
	return result, nil
}

func (t RawTask) toEvent(loc *time.Location, dayparts *daypart.Policy) (model.Event, error) {
	due, err := model.FromString(t.Due)
	if err != nil {
		return model.Event{}, fmt.Errorf("task '%s' has malformed due date (%w)", t.ID, err)
	}
	if _, known := dayparts.Window(t.Daypart); !known && t.Daypart != "" {
		log.Debug().Str("task-id", t.ID).Str("daypart", t.Daypart).Msg("unknown daypart, using fallback")
	}
	start, end := dayparts.Resolve(due, t.Daypart, loc)

	return model.Event{
		ID:          model.EventID(t.ID),
		Title:       t.Title,
		Description: t.Description,
		Color:       t.Color,
		Kind:        model.KindTask,
		CourseRef:   t.Course,
		Start:       start,
		End:         end,
	}, nil
}
