package model

// ViewMode is the kind of calendar view a layout is requested for.
type ViewMode string

const (
	ViewDay    ViewMode = "day"
	ViewWeek   ViewMode = "week"
	ViewMonth  ViewMode = "month"
	ViewYear   ViewMode = "year"
	ViewAgenda ViewMode = "agenda"
)
