package layout

import (
	"fmt"
	"time"

	"github.com/ja-he/planlayout/internal/model"
)

// Request is a layout pass over a set of events for a view.
type Request struct {
	Mode   model.ViewMode
	Date   model.Date
	Now    time.Time
	Events []model.Event
}

// Result holds the layout of the requested view; exactly one of the view
// fields is set.
type Result struct {
	Mode   model.ViewMode `json:"mode" yaml:"mode"`
	Day    *DayLayout     `json:"day,omitempty" yaml:"day,omitempty"`
	Week   *WeekLayout    `json:"week,omitempty" yaml:"week,omitempty"`
	Month  *MonthLayout   `json:"month,omitempty" yaml:"month,omitempty"`
	Year   *YearLayout    `json:"year,omitempty" yaml:"year,omitempty"`
	Agenda *DayLayout     `json:"agenda,omitempty" yaml:"agenda,omitempty"`
	// Active are the events happening at the request's Now, if given.
	Active []model.EventID `json:"active,omitempty" yaml:"active,omitempty"`
}

// Layout dispatches the request to the layout of its view mode.
func (e *Engine) Layout(req Request) (*Result, error) {
	result := &Result{Mode: req.Mode}

	switch req.Mode {
	case model.ViewDay:
		day := e.LayoutDay(req.Events, req.Date)
		result.Day = &day
	case model.ViewWeek:
		week := e.LayoutWeek(req.Events, req.Date)
		result.Week = &week
	case model.ViewMonth:
		month := e.LayoutMonth(req.Events, req.Date)
		result.Month = &month
	case model.ViewYear:
		year := e.LayoutYear(req.Events, req.Date.Year)
		result.Year = &year
	case model.ViewAgenda:
		agenda := e.LayoutAgenda(req.Events, req.Date)
		result.Agenda = &agenda
	default:
		return nil, fmt.Errorf("cannot lay out unknown view mode '%s'", req.Mode)
	}

	if !req.Now.IsZero() {
		result.Active = e.Active(req.Events, req.Now)
	}
	return result, nil
}
