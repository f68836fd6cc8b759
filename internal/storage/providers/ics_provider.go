package providers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/rs/zerolog/log"
	"github.com/teambition/rrule-go"

	"github.com/ja-he/planlayout/internal/model"
)

// MaxOccurrencesPerEvent caps the expansion of a single recurring event
// within one query.
const MaxOccurrencesPerEvent = 5000

// ICSProvider provides the events of an iCalendar file, with recurring events
// expanded into their occurrences within the queried range.
// The file is read once, on the first query.
type ICSProvider struct {
	Path string

	loc *time.Location

	mtx       sync.Mutex
	vevents   []icsEvent
	overrides map[string][]icsEvent
	loaded    bool
}

// icsEvent is a VEVENT reduced to what is needed for expansion.
type icsEvent struct {
	uid         string
	summary     string
	description string
	color       string

	start  time.Time
	end    time.Time
	allDay bool

	rrule   string
	exDates []time.Time

	// set for overrides of a single occurrence of a recurring event
	recurrenceID *time.Time
}

// NewICSProvider returns a source over the iCalendar file at the given path.
// All-day and floating times are interpreted in loc.
func NewICSProvider(path string, loc *time.Location) *ICSProvider {
	if loc == nil {
		loc = time.Local
	}
	return &ICSProvider{
		Path: path,
		loc:  loc,
	}
}

// GetEventsCoveringTimerange ...
func (p *ICSProvider) GetEventsCoveringTimerange(start, end time.Time) ([]model.Event, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.loaded {
		f, err := os.Open(p.Path)
		if err != nil {
			return nil, fmt.Errorf("can't open calendar file '%s' (%w)", p.Path, err)
		}
		defer f.Close()
		err = p.read(f)
		if err != nil {
			return nil, fmt.Errorf("can't parse calendar file '%s' (%w)", p.Path, err)
		}
		p.loaded = true
	}

	result := []model.Event{}
	for _, ev := range p.vevents {
		result = append(result, p.expand(ev, start, end)...)
	}
	return model.EventList{Events: result}.CoveringTimerange(start, end).Events, nil
}

func (p *ICSProvider) read(r io.Reader) error {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return err
	}

	p.vevents = []icsEvent{}
	p.overrides = map[string][]icsEvent{}
	for _, ve := range cal.Events() {
		ev, err := p.parseVEvent(ve)
		if err != nil {
			log.Warn().Err(err).Str("file", p.Path).Msg("skipping malformed VEVENT")
			continue
		}
		if ev.recurrenceID != nil {
			p.overrides[ev.uid] = append(p.overrides[ev.uid], ev)
		} else {
			p.vevents = append(p.vevents, ev)
		}
	}

	log.Debug().Str("file", p.Path).Int("vevents", len(p.vevents)).Msg("parsed calendar file")
	return nil
}

func (p *ICSProvider) parseVEvent(ve *ical.VEvent) (icsEvent, error) {
	var ev icsEvent

	uidProp := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || uidProp.Value == "" {
		return ev, errors.New("missing UID")
	}
	ev.uid = uidProp.Value

	if prop := ve.GetProperty(ical.ComponentPropertySummary); prop != nil {
		ev.summary = prop.Value
	}
	if prop := ve.GetProperty(ical.ComponentPropertyDescription); prop != nil {
		ev.description = prop.Value
	}
	if prop := ve.GetProperty("COLOR"); prop != nil {
		ev.color = prop.Value
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return ev, fmt.Errorf("event '%s' has no DTSTART", ev.uid)
	}
	ev.allDay = isDateValue(dtStart)

	start, err := p.parseTime(dtStart.Value, dtStart.ICalParameters)
	if err != nil {
		return ev, fmt.Errorf("event '%s' has malformed DTSTART (%w)", ev.uid, err)
	}
	ev.start = start
	ev.end = start
	if ev.allDay {
		ev.end = start.AddDate(0, 0, 1)
	}
	if dtEnd := ve.GetProperty(ical.ComponentPropertyDtEnd); dtEnd != nil {
		end, err := p.parseTime(dtEnd.Value, dtEnd.ICalParameters)
		if err != nil {
			return ev, fmt.Errorf("event '%s' has malformed DTEND (%w)", ev.uid, err)
		}
		ev.end = end
	}
	if ev.end.Before(ev.start) {
		return ev, fmt.Errorf("event '%s' ends before it starts", ev.uid)
	}

	if prop := ve.GetProperty(ical.ComponentPropertyRrule); prop != nil {
		ev.rrule = prop.Value
	}

	for _, prop := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(prop.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			t, err := p.parseTime(part, prop.ICalParameters)
			if err != nil {
				log.Debug().Err(err).Str("uid", ev.uid).Msg("ignoring malformed EXDATE")
				continue
			}
			ev.exDates = append(ev.exDates, t)
		}
	}

	if prop := ve.GetProperty("RECURRENCE-ID"); prop != nil {
		t, err := p.parseTime(prop.Value, prop.ICalParameters)
		if err != nil {
			return ev, fmt.Errorf("event '%s' has malformed RECURRENCE-ID (%w)", ev.uid, err)
		}
		ev.recurrenceID = &t
	}

	return ev, nil
}

// expand returns the occurrences of the event that may intersect
// [rangeStart, rangeEnd).
func (p *ICSProvider) expand(ev icsEvent, rangeStart, rangeEnd time.Time) []model.Event {
	if ev.rrule == "" {
		return []model.Event{ev.toEvent(model.EventID(ev.uid), ev.start, ev.end)}
	}

	r, err := rrule.StrToRRule(ev.rrule)
	if err != nil {
		log.Warn().Err(err).Str("uid", ev.uid).Str("rrule", ev.rrule).Msg("can't parse RRULE, using first occurrence only")
		return []model.Event{ev.toEvent(model.EventID(ev.uid), ev.start, ev.end)}
	}
	r.DTStart(ev.start)

	set := rrule.Set{}
	set.RRule(r)
	for _, ex := range ev.exDates {
		set.ExDate(ex.In(ev.start.Location()))
	}

	// occurrences starting before the range may still reach into it
	from := rangeStart.Add(-ev.end.Sub(ev.start)).In(ev.start.Location())
	occurrences := set.Between(from, rangeEnd.In(ev.start.Location()), true)
	if len(occurrences) > MaxOccurrencesPerEvent {
		log.Warn().Str("uid", ev.uid).Int("cap", MaxOccurrencesPerEvent).Msg("truncating occurrences of recurring event")
		occurrences = occurrences[:MaxOccurrencesPerEvent]
	}

	result := make([]model.Event, 0, len(occurrences))
	for _, occStart := range occurrences {
		var occEnd time.Time
		if ev.allDay {
			days := model.DateFromGotime(ev.start).DaysUntil(model.DateFromGotime(ev.end))
			occEnd = occStart.AddDate(0, 0, days)
		} else {
			occEnd = occStart.Add(ev.end.Sub(ev.start))
		}

		id := model.EventID(ev.uid + "#" + occStart.UTC().Format("20060102T150405Z"))
		if override, ok := p.findOverride(ev.uid, occStart); ok {
			result = append(result, override.toEvent(id, override.start, override.end))
			continue
		}
		result = append(result, ev.toEvent(id, occStart, occEnd))
	}
	return result
}

func (p *ICSProvider) findOverride(uid string, occStart time.Time) (icsEvent, bool) {
	for _, o := range p.overrides[uid] {
		if o.recurrenceID.Equal(occStart) {
			return o, true
		}
	}
	return icsEvent{}, false
}

func (ev icsEvent) toEvent(id model.EventID, start, end time.Time) model.Event {
	return model.Event{
		ID:          id,
		Title:       ev.summary,
		Description: ev.description,
		Color:       ev.color,
		Kind:        model.KindEvent,
		Start:       start,
		End:         end,
	}
}

// parseTime parses a DATE or DATE-TIME value, honoring a TZID parameter.
// Date and floating values are interpreted in the provider's location.
func (p *ICSProvider) parseTime(value string, params map[string][]string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty time value")
	}

	loc := p.loc
	if tzids, ok := params["TZID"]; ok && len(tzids) > 0 {
		tz, err := time.LoadLocation(tzids[0])
		if err != nil {
			return time.Time{}, fmt.Errorf("unknown TZID '%s' (%w)", tzids[0], err)
		}
		loc = tz
	}

	switch {
	case strings.HasSuffix(value, "Z"):
		return time.Parse("20060102T150405Z", value)
	case strings.Contains(value, "T"):
		return time.ParseInLocation("20060102T150405", value, loc)
	default:
		return time.ParseInLocation("20060102", value, loc)
	}
}

func isDateValue(prop *ical.IANAProperty) bool {
	if vs, ok := prop.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(prop.Value, "T")
}
