// Package calendar holds proleptic Gregorian calendar arithmetic used by the
// date parser.
package calendar

import "time"

const (
	MinYear = 1
	MaxYear = 9999
)

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysIn returns the number of days in month of year, or 0 for an invalid month.
func DaysIn(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// OrdinalToMonthDay converts a 1-based day of year into month and day.
// ok is false when ordinal is outside the year.
func OrdinalToMonthDay(year, ordinal int) (month, day int, ok bool) {
	if ordinal < 1 || ordinal > DaysInYear(year) {
		return 0, 0, false
	}
	day = ordinal
	for month = 1; month <= 12; month++ {
		n := DaysIn(year, month)
		if day <= n {
			return month, day, true
		}
		day -= n
	}
	return 0, 0, false
}

// IsValidDate reports whether year, month and day name a real calendar date.
func IsValidDate(year, month, day int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
