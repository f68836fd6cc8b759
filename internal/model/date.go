package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Date represents a date, i.e. a year, month and day.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateFromGotime returns the date of the given time in that time's location.
func DateFromGotime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Prev returns the previous date.
func (d Date) Prev() Date {
	if d.Day == 1 {
		if d.Month == 1 {
			d.Year--
			d.Month = 12
			d.Day = 31
		} else {
			d.Month--
			d.Day = d.GetLastOfMonth().Day
		}
	} else {
		d.Day--
	}
	return d
}

// Next returns the next date.
func (d Date) Next() Date {
	if d == d.GetLastOfMonth() {
		d.Day = 1
		if d.Month == 12 {
			d.Month = 1
			d.Year++
		} else {
			d.Month++
		}
	} else {
		d.Day++
	}
	return d
}

// Backward returns a date that is `by`-many days before the receiver.
func (d Date) Backward(by int) Date {
	for i := 0; i < by; i++ {
		d = d.Prev()
	}
	return d
}

// Forward returns a date that is `by`-many days after the receiver.
func (d Date) Forward(by int) Date {
	for i := 0; i < by; i++ {
		d = d.Next()
	}
	return d
}

// DaysUntil returns the number of days from the receiver until the given
// date is reached (e.g. from 2021-12-14 until 2021-12-19 -> 5 days).
// The result is negative if `other` lies before the receiver.
func (d Date) DaysUntil(other Date) int {
	return int(other.utcMidnight().Sub(d.utcMidnight()).Hours() / 24)
}

// IsAfter returns whether the receiver is after the given date.
func (d Date) IsAfter(other Date) bool {
	switch {
	case d.Year != other.Year:
		return d.Year > other.Year
	case d.Month != other.Month:
		return d.Month > other.Month
	default:
		return d.Day > other.Day
	}
}

// IsBefore returns whether the receiver is before the given date.
func (d Date) IsBefore(other Date) bool {
	return other.IsAfter(d)
}

// GetFirstOfMonth returns the first date of the month of the receiver.
func (d Date) GetFirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// GetLastOfMonth returns the last date of the month of the receiver.
func (d Date) GetLastOfMonth() Date {
	var lastDay int

	switch {
	case d.Month == 2 && d.isLeapYear():
		lastDay = 29
	default:
		lastDay = lastDaysOfMonth[d.Month]
	}

	return Date{Year: d.Year, Month: d.Month, Day: lastDay}
}

// MonthBounds returns the first and last date of the month the receiver is in.
func (d Date) MonthBounds() (first Date, last Date) {
	return d.GetFirstOfMonth(), d.GetLastOfMonth()
}

// WeekBounds returns the monday and sunday of the week the receiver is in.
func (d Date) WeekBounds() (monday Date, sunday Date) {
	monday = d.Backward(d.MondayIndex())
	return monday, monday.Forward(6)
}

// MondayIndex returns the column of the receiver in a Monday-first week,
// i.e. 0 for Monday through 6 for Sunday.
func (d Date) MondayIndex() int {
	return (int(d.ToWeekday()) + 6) % 7
}

// ToWeekday returns the weekday of the receiver.
func (d Date) ToWeekday() time.Weekday {
	return d.utcMidnight().Weekday()
}

// Start returns the instant the receiver begins at in the given location.
func (d Date) Start(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// End returns the instant the day after the receiver begins at in the given
// location, i.e. the exclusive end of the receiver.
func (d Date) End(loc *time.Location) time.Time {
	return d.Next().Start(loc)
}

// Valid returns whether the date is valid.
// A date such as the 31st of February is invalid, for example.
func (d Date) Valid() bool {
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= d.GetLastOfMonth().Day
}

// String returns the date in the format "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText renders the date in the format "YYYY-MM-DD".
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a date in the format "YYYY-MM-DD".
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := FromString(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var dateRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// FromString creates a date from a string in the format "YYYY-MM-DD".
func FromString(s string) (Date, error) {
	parsed := dateRegex.FindStringSubmatch(s)
	if len(parsed) != 4 {
		return Date{}, fmt.Errorf("date string '%s' does not match YYYY-MM-DD", s)
	}

	year, errY := strconv.Atoi(parsed[1])
	month, errM := strconv.Atoi(parsed[2])
	day, errD := strconv.Atoi(parsed[3])
	if errY != nil || errM != nil || errD != nil {
		return Date{}, fmt.Errorf("could not convert string '%s' (assuming YYYY-MM-DD format) to integers", s)
	}

	result := Date{Year: year, Month: month, Day: day}
	if !result.Valid() {
		return Date{}, fmt.Errorf("day %s (from string '%s') not valid", result, s)
	}
	return result, nil
}

func (d Date) utcMidnight() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) isLeapYear() bool {
	return d.Year%4 == 0 && (!(d.Year%100 == 0) || d.Year%400 == 0)
}

var lastDaysOfMonth = map[int]int{
	1:  31,
	2:  28,
	3:  31,
	4:  30,
	5:  31,
	6:  30,
	7:  31,
	8:  31,
	9:  30,
	10: 31,
	11: 30,
	12: 31,
}
