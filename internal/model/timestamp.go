package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a time of day with minute precision.
type Timestamp struct {
	Hour, Minute int
}

// TimestampFromString parses a timestamp in the "HH:MM" format.
// "24:00" is accepted to denote the end of a day.
func TimestampFromString(s string) (Timestamp, error) {
	components := strings.Split(s, ":")
	if len(components) != 2 || len(components[0]) != 2 || len(components[1]) != 2 {
		return Timestamp{}, fmt.Errorf("given string '%s' which does not fit the HH:MM format", s)
	}
	h, err := strconv.Atoi(components[0])
	if err != nil {
		return Timestamp{}, fmt.Errorf("error converting hour string '%s' to a number (%w)", components[0], err)
	}
	m, err := strconv.Atoi(components[1])
	if err != nil {
		return Timestamp{}, fmt.Errorf("error converting minute string '%s' to a number (%w)", components[1], err)
	}
	t := Timestamp{Hour: h, Minute: m}
	if !t.Legal() && t != (Timestamp{Hour: 24}) {
		return Timestamp{}, fmt.Errorf("timestamp '%s' out of range", s)
	}
	return t, nil
}

// String returns the timestamp in the "HH:MM" format.
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// IsBefore returns whether the receiver is earlier in the day than b.
func (t Timestamp) IsBefore(b Timestamp) bool {
	return t.ToMinutes() < b.ToMinutes()
}

// IsAfter returns whether the receiver is later in the day than b.
func (t Timestamp) IsAfter(b Timestamp) bool {
	return t.ToMinutes() > b.ToMinutes()
}

// Legal returns whether the receiver is a valid time of day.
func (t Timestamp) Legal() bool {
	return (t.Hour < 24 && t.Minute < 60) && (t.Hour >= 0 && t.Minute >= 0)
}

// ToMinutes returns the number of minutes into the day (from 00:00) that
// this timestamp is.
func (t Timestamp) ToMinutes() int {
	return t.Hour*60 + t.Minute
}

// On returns the instant at the receiver's time of day on the given date.
func (t Timestamp) On(d Date, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, t.Hour, t.Minute, 0, 0, loc)
}
