// Package weeknum computes locale week numbers for the canteen calendar:
// weeks start on Sunday, and the first week of a year is the week containing
// January 3rd. This is not the ISO 8601 rule; it mirrors the numbering the
// canteen publishes its menus under.
package weeknum

import "time"

const firstWeekContains = 3 // day of January anchoring week 1

// Of returns the week number of t in the canteen calendar.
func Of(t time.Time) int {
	sow := startOfWeek(t)
	soy := startOfWeekYear(t)
	return int(sow.Sub(soy)/(7*24*time.Hour)) + 1
}

// Current returns the week number of the current date.
func Current() int {
	return Of(time.Now())
}

// startOfWeek truncates t to the preceding (or same) Sunday at midnight UTC.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// startOfWeekYear returns the start of week 1 for the week-year containing t.
// The week-year boundary is the week holding January 3rd: dates in the last
// days of December can already belong to the next week-year.
func startOfWeekYear(t time.Time) time.Time {
	year := weekYear(t)
	anchor := time.Date(year, time.January, firstWeekContains, 0, 0, 0, 0, time.UTC)
	return startOfWeek(anchor)
}

// weekYear resolves which year's week numbering t falls under.
func weekYear(t time.Time) int {
	year := t.Year()
	thisStart := startOfWeek(time.Date(year, time.January, firstWeekContains, 0, 0, 0, 0, time.UTC))
	nextStart := startOfWeek(time.Date(year+1, time.January, firstWeekContains, 0, 0, 0, 0, time.UTC))

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case !day.Before(nextStart):
		return year + 1
	case !day.Before(thisStart):
		return year
	default:
		return year - 1
	}
}
