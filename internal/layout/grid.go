package layout

import (
	"github.com/ja-he/planlayout/internal/model"
)

// DayCell is a single cell of a month grid.
type DayCell struct {
	DayOfMonth      int        `json:"day-of-month" yaml:"day-of-month"`
	Date            model.Date `json:"date" yaml:"date"`
	InCurrentPeriod bool       `json:"in-current-period" yaml:"in-current-period"`
}

// BuildMonthGrid returns the cells of a Monday-first calendar grid for the
// month the given date is in, padded with days of the adjacent months so
// that the cell count is a multiple of seven.
func BuildMonthGrid(month model.Date) []DayCell {
	first, last := month.MonthBounds()

	leading := first.MondayIndex()
	cells := make([]DayCell, 0, 42)

	for d := first.Backward(leading); d.IsBefore(first); d = d.Next() {
		cells = append(cells, DayCell{DayOfMonth: d.Day, Date: d, InCurrentPeriod: false})
	}
	for d := first; !d.IsAfter(last); d = d.Next() {
		cells = append(cells, DayCell{DayOfMonth: d.Day, Date: d, InCurrentPeriod: true})
	}
	trailing := (DaysPerWeek - len(cells)%DaysPerWeek) % DaysPerWeek
	d := last
	for i := 0; i < trailing; i++ {
		d = d.Next()
		cells = append(cells, DayCell{DayOfMonth: d.Day, Date: d, InCurrentPeriod: false})
	}

	return cells
}
