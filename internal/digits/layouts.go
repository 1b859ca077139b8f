package digits

func timeSlots(seconds bool) []Slot {
	slots := []Slot{
		{Min: 0, Max: 2},
		{Min: 0, Max: 9},
		{Sep: ':'},
		{Min: 0, Max: 5},
		{Min: 0, Max: 9},
	}

	if seconds {
		slots = append(slots,
			Slot{Sep: ':'},
			Slot{Min: 0, Max: 5},
			Slot{Min: 0, Max: 9},
		)
	}

	return slots
}

// ClockTimeLayout is HH:MM:SS for setting the clock.
func ClockTimeLayout() Layout {
	return Layout{
		Title: "Set the time:",
		Slots: timeSlots(true),
		Groups: []Group{
			{Start: 0, End: 1, Validate: ValidateHour},
			{Start: 3, End: 4},
			{Start: 6, End: 7},
		},
	}
}

// DateLayout is DD/MM/YYYY, starting at 01/01/1970.
func DateLayout() Layout {
	return Layout{
		Title: "Set the date:",
		Slots: []Slot{
			{Min: 0, Max: 3},
			{Min: 0, Max: 9},
			{Sep: '/'},
			{Min: 0, Max: 1},
			{Min: 0, Max: 9},
			{Sep: '/'},
			{Min: 0, Max: 9},
			{Min: 0, Max: 9},
			{Min: 0, Max: 9},
			{Min: 0, Max: 9},
		},
		Groups: []Group{
			{Start: 0, End: 1, Validate: ValidateDay},
			{Start: 3, End: 4, Validate: ValidateMonth},
			{Start: 6, End: 9, Validate: ValidateYear},
		},
		Initial: []int{0, 1, 0, 0, 1, 0, 1, 9, 7, 0},
		Final: func(n []int) error {
			return ValidateDate(n[0], n[1], n[2])
		},
	}
}

// ScheduleTimeLayout is HH:MM for a feed. conflicts reports whether a minute
// of the day clashes with another feed.
func ScheduleTimeLayout(conflicts func(minutes int) bool) Layout {
	return Layout{
		Title: "Time to feed:",
		Slots: timeSlots(false),
		Groups: []Group{
			{Start: 0, End: 1, Validate: ValidateHour},
			{Start: 3, End: 4},
		},
		Final: ValidateFeedTime(conflicts),
	}
}

func singleDigit(title string) Layout {
	return Layout{
		Title:  title,
		Slots:  []Slot{{Min: 1, Max: 9}},
		Groups: []Group{{Start: 0, End: 0}},
	}
}

// CountLayout asks for the number of daily feeds.
func CountLayout() Layout {
	return singleDigit("Daily feeds:")
}

// RotationsLayout asks for the rotations of one feed.
func RotationsLayout() Layout {
	return singleDigit("Number of rotations:")
}
