package config

// Default returns the default configuration.
func Default() Config {
	from, to := 8, 22
	return Config{
		Timezone: "Local",
		Layout: Layout{
			VisibleRange:     VisibleRange{From: &from, To: &to},
			SlotInterval:     "30m",
			SlotHeight:       32,
			HourBlockHeight:  64,
			MultiDayTieBreak: TieBreakLongerSpanFirst,
		},
		Dayparts: []Daypart{
			{Name: "morning", Start: "08:00", End: "12:00"},
			{Name: "afternoon", Start: "13:00", End: "17:00"},
			{Name: "evening", Start: "18:00", End: "21:00"},
			{Name: "allday", Start: "00:00", End: "24:00"},
		},
		KindColors: map[string]string{
			"event":  "cornflowerblue",
			"task":   "goldenrod",
			"course": "seagreen",
		},
	}
}
