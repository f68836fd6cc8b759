package layout

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/planlayout/internal/model"
)

// DaysPerWeek is the number of columns of a week grid.
const DaysPerWeek = 7

// A Placement is an event clipped to a week, as the inclusive range of day
// columns [StartIndex, EndIndex] it occupies.
type Placement struct {
	Event      model.Event `json:"event" yaml:"event"`
	StartIndex int         `json:"start-index" yaml:"start-index"`
	EndIndex   int         `json:"end-index" yaml:"end-index"`

	adjustedStart time.Time
}

// Span returns the number of additional columns the placement covers beyond
// its first.
func (p Placement) Span() int {
	return p.EndIndex - p.StartIndex
}

// A Row is a horizontal band of placements of which no two share a column.
type Row []Placement

// A TieBreak orders two placements with identical clipped starts. It reports
// whether a should be packed before b.
type TieBreak func(a, b Placement) bool

// LongerSpanFirst packs the placement covering more columns first.
func LongerSpanFirst(a, b Placement) bool {
	return a.Span() > b.Span()
}

// InputOrder keeps the order the events were given in.
func InputOrder(a, b Placement) bool {
	return false
}

// PackMultiDay assigns events to rows across the Monday-first week beginning
// at weekStart, first-fit in order of clipped start with ties broken by the
// given policy (LongerSpanFirst if nil).
//
// Events not intersecting [weekStart, weekStart+7d) are ignored; if none
// intersects, no rows are returned.
func PackMultiDay(events []model.Event, weekStart time.Time, tieBreak TieBreak) []Row {
	if tieBreak == nil {
		tieBreak = LongerSpanFirst
	}
	weekEnd := weekStart.AddDate(0, 0, DaysPerWeek)
	weekStartDate := model.DateFromGotime(weekStart)

	placements := make([]Placement, 0, len(events))
	for _, e := range events {
		if !e.Valid() {
			log.Debug().Str("event-id", string(e.ID)).Msg("skipping event with unusable instants for multi-day packing")
			continue
		}
		if !intersectsWeek(&e, weekStart, weekEnd) {
			continue
		}

		adjustedStart := e.Start
		if adjustedStart.Before(weekStart) {
			adjustedStart = weekStart
		}
		adjustedEnd := e.End
		if adjustedEnd.After(weekEnd) {
			adjustedEnd = weekEnd
		}

		startIndex := clampDayIndex(weekStartDate.DaysUntil(model.DateFromGotime(adjustedStart)))
		endIndex := clampDayIndex(weekStartDate.DaysUntil(model.LastDateOf(adjustedStart, adjustedEnd)))
		if endIndex < startIndex {
			endIndex = startIndex
		}

		placements = append(placements, Placement{
			Event:         e,
			StartIndex:    startIndex,
			EndIndex:      endIndex,
			adjustedStart: adjustedStart,
		})
	}
	if len(placements) == 0 {
		return nil
	}

	sort.SliceStable(placements, func(i, j int) bool {
		a, b := placements[i], placements[j]
		if !a.adjustedStart.Equal(b.adjustedStart) {
			return a.adjustedStart.Before(b.adjustedStart)
		}
		return tieBreak(a, b)
	})

	rows := make([]Row, 0)
	for _, candidate := range placements {
		rowIndex := -1
		for i, row := range rows {
			if fitsInRow(row, candidate) {
				rowIndex = i
				break
			}
		}
		if rowIndex == -1 {
			rows = append(rows, Row{})
			rowIndex = len(rows) - 1
		}
		rows[rowIndex] = append(rows[rowIndex], candidate)
	}
	return rows
}

func fitsInRow(row Row, candidate Placement) bool {
	for _, existing := range row {
		if !dayRangesDisjoint(existing.StartIndex, existing.EndIndex, candidate.StartIndex, candidate.EndIndex) {
			return false
		}
	}
	return true
}

// dayRangesDisjoint returns whether the inclusive column ranges share no
// column.
func dayRangesDisjoint(aStart, aEnd, bStart, bEnd int) bool {
	return aEnd < bStart || aStart > bEnd
}

// intersectsWeek covers events starting within the week, ending within it,
// spanning across it, or being fully contained in it.
func intersectsWeek(e *model.Event, weekStart, weekEnd time.Time) bool {
	if !e.Start.Before(weekEnd) {
		return false
	}
	if e.Start.Equal(e.End) {
		return !e.Start.Before(weekStart)
	}
	return e.End.After(weekStart)
}

func clampDayIndex(i int) int {
	switch {
	case i < 0:
		return 0
	case i > DaysPerWeek-1:
		return DaysPerWeek - 1
	default:
		return i
	}
}
