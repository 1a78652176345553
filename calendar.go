// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldays

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

func leapDays(year int) int {
	if IsLeap(year) {
		return 1
	}
	return 0
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	return 365 + leapDays(year)
}

// DaysInMonth returns the number of days in the given month (1-12) for the
// given year. It returns 0 for an invalid month.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		return 28 + leapDays(year)
	case 4, 6, 9, 11:
		return 30
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	}
	return 0
}

// DaysInQuarter returns the number of days in the given quarter (1-4)
// for the given year. It returns 0 for an invalid quarter.
func DaysInQuarter(year, quarter int) int {
	switch quarter {
	case 1:
		return 90 + leapDays(year)
	case 2:
		return 91
	case 3, 4:
		return 92
	}
	return 0
}

// WeeksInYear returns the number of weeks, 52 or 53, in the given ISO
// week-numbering year. A year has 53 weeks when it starts on a Thursday,
// or on a Wednesday in a leap year.
func WeeksInYear(year int) int {
	switch Weekday(weekdayOf(daysBeforeYear(int64(year)) + 1)) {
	case Thursday:
		return 53
	case Wednesday:
		if IsLeap(year) {
			return 53
		}
	}
	return 52
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// weekdayOf returns 1 (Monday) through 7 (Sunday), day 1 is a Monday.
func weekdayOf(n int64) int64 {
	return floorMod(n-1, 7) + 1
}

// daysBeforeYear returns the day number of the last day of year-1.
func daysBeforeYear(year int64) int64 {
	y := year - 1
	return 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400)
}

// daysBeforeMonth returns the number of days in the year preceding the
// first day of month. March onwards uses the March based month index so
// that February's length only enters as the leap day.
func daysBeforeMonth(year, month int64) int64 {
	if month < 3 {
		return 31 * (month - 1)
	}
	return (153*(month-3)+2)/5 + 59 + int64(leapDays(int(year)))
}
