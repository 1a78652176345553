// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package caldays provides a canonical integer day number for proleptic
// Gregorian dates and O(1) conversions between it and calendar (year,
// month, day), ordinal (year, day of year), quarter (year, quarter, day of
// quarter) and ISO week (week-year, week, weekday) representations.
//
// Day 1 is 0001-01-01. The full int32 range is usable and corresponds to
// the dates -5879610-06-22 through 5879611-07-11. Validation of field
// values, including the permitted range of years, is performed by Range.
//
// All functions are pure and safe for concurrent use.
package caldays

import (
	"math"
	"strconv"
	"time"
)

// Day is a day number, ie. the number of days since 0000-12-31 in the
// proleptic Gregorian calendar. Ordering of Day values is chronological.
type Day int32

const (
	// MinDay is the earliest representable day, -5879610-06-22.
	MinDay = Day(math.MinInt32)
	// MaxDay is the latest representable day, 5879611-07-11.
	MaxDay = Day(math.MaxInt32)
)

// Weekday is an ISO 8601 day of the week, Monday is 1 and Sunday is 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNames[w-1]
}

// Std returns the equivalent time.Weekday.
func (w Weekday) Std() time.Weekday {
	return time.Weekday(w % 7)
}

// Weekday returns the day of the week for d.
func (d Day) Weekday() Weekday {
	return Weekday(weekdayOf(int64(d)))
}

// Add returns the day n days after d. The result is not checked for
// overflow.
func (d Day) Add(n int) Day {
	return d + Day(n)
}

// Sub returns the number of days from o to d.
func (d Day) Sub(o Day) int {
	return int(int64(d) - int64(o))
}

// FromTime returns the Day for the calendar date of t in t's location.
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return FromYMD(y, int(m), d)
}
