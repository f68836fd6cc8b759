package layout

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/planlayout/internal/model"
)

// Options parameterize an Engine.
type Options struct {
	Geometry     GeometryParams
	DefaultRange VisibleRange
	TieBreak     TieBreak
	// Location is the zone dates are interpreted in.
	Location *time.Location
}

// DefaultOptions returns the default geometry, an 08:00-22:00 range,
// longer-span-first tie-breaking and the local time zone.
func DefaultOptions() Options {
	return Options{
		Geometry:     DefaultGeometryParams(),
		DefaultRange: DefaultVisibleRange(),
		TieBreak:     LongerSpanFirst,
		Location:     time.Local,
	}
}

// An Engine composes the layout functions into per-view results.
// It holds configuration only, every call recomputes from the given events.
type Engine struct {
	opts Options
}

// NewEngine returns an engine for the given options.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.DefaultRange.Validate(); err != nil {
		return nil, fmt.Errorf("invalid default range (%w)", err)
	}
	opts.Geometry = opts.Geometry.withDefaults()
	if opts.TieBreak == nil {
		opts.TieBreak = LongerSpanFirst
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Engine{opts: opts}, nil
}

// EventBox is the geometry computed for one event in a day column.
type EventBox struct {
	EventID model.EventID `json:"event-id" yaml:"event-id"`
	Track   int           `json:"track" yaml:"track"`
	Box     `json:",inline" yaml:",inline"`
}

// DayLayout is the arrangement of a single day column.
// Range is nil for agenda layouts, which map the full day proportionally.
type DayLayout struct {
	Date       model.Date    `json:"date" yaml:"date"`
	Range      *VisibleRange `json:"range,omitempty" yaml:"range,omitempty"`
	Hours      []int         `json:"hours,omitempty" yaml:"hours,omitempty"`
	TrackCount int           `json:"track-count" yaml:"track-count"`
	Boxes      []EventBox    `json:"boxes" yaml:"boxes"`
}

// WeekLayout is the arrangement of a Monday-first week.
type WeekLayout struct {
	WeekStart model.Date   `json:"week-start" yaml:"week-start"`
	Range     VisibleRange `json:"range" yaml:"range"`
	Days      []DayLayout  `json:"days" yaml:"days"`
	// Band holds the multi-day rows, a cell per row and day column.
	Band [][]BandCell `json:"band,omitempty" yaml:"band,omitempty"`
}

// CellEvents is a month grid cell with the events occurring on its date.
type CellEvents struct {
	DayCell  `json:",inline" yaml:",inline"`
	EventIDs []model.EventID `json:"event-ids" yaml:"event-ids"`
}

// MonthLayout is the grid of a month.
type MonthLayout struct {
	Month model.Date   `json:"month" yaml:"month"`
	Cells []CellEvents `json:"cells" yaml:"cells"`
}

// YearLayout holds the grids of all months of a year.
type YearLayout struct {
	Year   int           `json:"year" yaml:"year"`
	Months []MonthLayout `json:"months" yaml:"months"`
}

// LayoutDay arranges all events touching the given date, with the visible
// range widened to cover them.
func (e *Engine) LayoutDay(events []model.Event, date model.Date) DayLayout {
	dayEvents := e.normalize(events).OnDate(date).Events
	visible := ResolveVisibleRange(e.opts.DefaultRange, date, dayEvents)
	return e.layoutColumn(dayEvents, date, &visible)
}

// LayoutAgenda arranges the events touching the given date over the full
// day, without a visible range.
func (e *Engine) LayoutAgenda(events []model.Event, date model.Date) DayLayout {
	dayEvents := e.normalize(events).OnDate(date).Events
	return e.layoutColumn(dayEvents, date, nil)
}

// LayoutWeek arranges the week the given date is in. Events confined to a
// single date go into their day's column, all seven columns sharing one
// visible range; events spanning multiple dates are packed into the band.
func (e *Engine) LayoutWeek(events []model.Event, date model.Date) WeekLayout {
	monday, _ := date.WeekBounds()
	single, multi := e.normalize(events).PartitionByDaySpan()

	visible := e.opts.DefaultRange
	columns := make([][]model.Event, DaysPerWeek)
	for i := range columns {
		day := monday.Forward(i)
		columns[i] = single.OnDate(day).Events
		visible = visible.Union(ResolveVisibleRange(e.opts.DefaultRange, day, columns[i]))
	}

	week := WeekLayout{
		WeekStart: monday,
		Range:     visible,
		Days:      make([]DayLayout, DaysPerWeek),
	}
	for i := range columns {
		columnRange := visible
		week.Days[i] = e.layoutColumn(columns[i], monday.Forward(i), &columnRange)
	}

	rows := PackMultiDay(multi.Events, monday.Start(e.opts.Location), e.opts.TieBreak)
	if len(rows) > 0 {
		week.Band = ClassifyBand(rows)
	}
	return week
}

// LayoutMonth builds the grid of the month the given date is in and attaches
// to each cell the events touching its date, ordered by start with longer
// events first on equal starts.
func (e *Engine) LayoutMonth(events []model.Event, date model.Date) MonthLayout {
	return e.layoutMonth(e.cellOrder(events), date)
}

// LayoutYear builds the grids of all months of the given year.
func (e *Engine) LayoutYear(events []model.Event, year int) YearLayout {
	sorted := e.cellOrder(events)
	result := YearLayout{Year: year, Months: make([]MonthLayout, 0, 12)}
	for month := 1; month <= 12; month++ {
		result.Months = append(result.Months, e.layoutMonth(sorted, model.Date{Year: year, Month: month, Day: 1}))
	}
	return result
}

// Active returns the IDs of the events happening at now.
func (e *Engine) Active(events []model.Event, now time.Time) []model.EventID {
	return model.EventList{Events: ActiveAt(e.normalize(events).Events, now)}.IDs()
}

func (e *Engine) cellOrder(events []model.Event) model.EventList {
	ordered := e.normalize(events)
	sort.Stable(model.ByStartConsideringDuration(ordered.Events))
	return ordered
}

func (e *Engine) layoutMonth(sorted model.EventList, date model.Date) MonthLayout {
	grid := BuildMonthGrid(date)
	result := MonthLayout{
		Month: date.GetFirstOfMonth(),
		Cells: make([]CellEvents, len(grid)),
	}
	for i, cell := range grid {
		result.Cells[i] = CellEvents{
			DayCell:  cell,
			EventIDs: sorted.OnDate(cell.Date).IDs(),
		}
	}
	return result
}

func (e *Engine) layoutColumn(dayEvents []model.Event, date model.Date, visible *VisibleRange) DayLayout {
	assignment := AssignTracks(dayEvents)
	dayStart := date.Start(e.opts.Location)

	result := DayLayout{
		Date:       date,
		Range:      visible,
		TrackCount: assignment.Count(),
		Boxes:      make([]EventBox, 0, len(assignment.Placements)),
	}
	if visible != nil {
		result.Hours = visible.Hours()
	}

	for i, p := range assignment.Placements {
		box := MapGeometry(p.Event.Start, p.Event.End, dayStart, p.Track, assignment.Count(), visible, e.opts.Geometry)
		if !assignment.OverlapsOutsideTrack(i) {
			box = box.FullWidth()
		}
		result.Boxes = append(result.Boxes, EventBox{EventID: p.Event.ID, Track: p.Track, Box: box})
	}
	return result
}

// normalize moves all events into the engine's location and drops those
// with unusable instants.
func (e *Engine) normalize(events []model.Event) model.EventList {
	all := model.EventList{Events: events}
	for _, dropped := range all.Filter(func(ev *model.Event) bool { return !ev.Valid() }).Events {
		log.Warn().Str("event-id", string(dropped.ID)).Time("start", dropped.Start).Time("end", dropped.End).Msg("dropping event with unusable instants from layout")
	}
	return all.Valid().In(e.opts.Location)
}
