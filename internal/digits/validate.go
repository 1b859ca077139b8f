package digits

// MinYear is the earliest year the clock accepts.
const MinYear = 1970

// IsLeapYear reports whether year has a 29th of February.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month in year, or 0 for a month
// outside 1..12.
func DaysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// ValidateHour rejects hours above 23.
func ValidateHour(hour int) error {
	if hour > 23 {
		return invalid("hour", "Max hour: 23")
	}
	return nil
}

// ValidateDay checks a day of month against 1..31. The month is checked later
// by ValidateDate.
func ValidateDay(day int) error {
	switch {
	case day < 1:
		return invalid("day", "Min day: 01")
	case day > 31:
		return invalid("day", "Max day: 31")
	}
	return nil
}

// ValidateMonth checks a month against 1..12.
func ValidateMonth(month int) error {
	switch {
	case month < 1:
		return invalid("month", "Min month: 01")
	case month > 12:
		return invalid("month", "Max month: 12")
	}
	return nil
}

// ValidateYear rejects years before MinYear.
func ValidateYear(year int) error {
	if year < MinYear {
		return invalid("year", "Min year: 1970")
	}
	return nil
}

// ValidateDate checks that day exists in month of year.
func ValidateDate(day, month, year int) error {
	if err := ValidateMonth(month); err != nil {
		return invalid("date", "Date entered invalid")
	}

	if day < 1 || day > DaysInMonth(month, year) {
		return invalid("date", "Date entered invalid")
	}

	return nil
}

// ValidateFeedTime rejects a schedule time that conflicts with another feed.
func ValidateFeedTime(conflicts func(minutes int) bool) func([]int) error {
	return func(n []int) error {
		if conflicts != nil && conflicts(n[0]*60+n[1]) {
			return invalid("feed_time", "Time conflict, retry")
		}
		return nil
	}
}
