package layout

import (
	"fmt"

	"github.com/ja-he/planlayout/internal/model"
)

// Position tells how a multi-day capsule continues from a day column.
type Position int

const (
	// PositionNone is a capsule that begins and ends in the same column.
	PositionNone Position = iota
	// PositionFirst begins the capsule, which continues to later columns.
	PositionFirst
	// PositionMiddle is strictly inside the capsule.
	PositionMiddle
	// PositionLast ends the capsule, which began in an earlier column.
	PositionLast
)

func (p Position) String() string {
	switch p {
	case PositionNone:
		return "none"
	case PositionFirst:
		return "first"
	case PositionMiddle:
		return "middle"
	case PositionLast:
		return "last"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// MarshalText renders the position by name.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// BandCell is what a single (row, day) cell of the multi-day band shows.
// Filler cells carry no event and only keep the row aligned across columns.
type BandCell struct {
	EventID  model.EventID `json:"event-id,omitempty" yaml:"event-id,omitempty"`
	DayIndex int           `json:"day-index" yaml:"day-index"`
	Position Position      `json:"position" yaml:"position"`
	Filler   bool          `json:"filler,omitempty" yaml:"filler,omitempty"`
}

// ClassifyBand resolves packed rows into a cell per row and day column.
func ClassifyBand(rows []Row) [][]BandCell {
	band := make([][]BandCell, len(rows))
	for r, row := range rows {
		cells := make([]BandCell, DaysPerWeek)
		for day := 0; day < DaysPerWeek; day++ {
			cells[day] = BandCell{DayIndex: day, Filler: true}
			for _, p := range row {
				if day < p.StartIndex || day > p.EndIndex {
					continue
				}
				cells[day] = BandCell{
					EventID:  p.Event.ID,
					DayIndex: day,
					Position: classify(day, p),
				}
				break
			}
		}
		band[r] = cells
	}
	return band
}

func classify(day int, p Placement) Position {
	switch {
	case p.StartIndex == p.EndIndex:
		return PositionNone
	case day == p.StartIndex:
		return PositionFirst
	case day == p.EndIndex:
		return PositionLast
	default:
		return PositionMiddle
	}
}
