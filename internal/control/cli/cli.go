// Package cli provides the command-line interface for planlayout.
package cli

// CommandLineOpts are the command line options, for `go-flags` to parse
// command line args into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	DayCommand     DayCommand     `command:"day" description:"lay out the events of a day"`
	WeekCommand    WeekCommand    `command:"week" description:"lay out the events of a week, multi-day events in a band"`
	MonthCommand   MonthCommand   `command:"month" description:"assign the events of a month to its grid cells"`
	YearCommand    YearCommand    `command:"year" description:"assign the events of a year to the grid cells of its months"`
	AgendaCommand  AgendaCommand  `command:"agenda" description:"lay out the events of a day over the full 24 hours"`
	NowCommand     NowCommand     `command:"now" description:"list the events happening at an instant"`
	VersionCommand VersionCommand `command:"version" description:"show the program version"`
}

// Opts holds the parsed command line options.
var Opts CommandLineOpts
