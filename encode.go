// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldays

// The encoders below assume validated fields and are undefined for
// values that Range would reject; use the Range methods or the
// From*Checked functions for untrusted input.

// FromYMD returns the Day for the given year, month (1-12) and day of
// month.
func FromYMD(year, month, day int) Day {
	return Day(fromYMD(int64(year), int64(month), int64(day)))
}

// FromYD returns the Day for the given year and day of year (1-366).
func FromYD(year, day int) Day {
	return Day(fromYD(int64(year), int64(day)))
}

// FromYQD returns the Day for the given year, quarter (1-4) and day of
// quarter (1-92).
func FromYQD(year, quarter, day int) Day {
	return Day(fromYQD(int64(year), int64(quarter), int64(day)))
}

// FromYWD returns the Day for the given ISO week-numbering year, week
// (1-53) and weekday (1 is Monday, 7 is Sunday).
func FromYWD(year, week, weekday int) Day {
	return Day(fromYWD(int64(year), int64(week), int64(weekday)))
}

// YMD returns the year, month and day of month for d.
func (d Day) YMD() (year, month, day int) {
	y, m, dd := toYMD(int64(d))
	return int(y), int(m), int(dd)
}

// YD returns the year and day of year for d.
func (d Day) YD() (year, day int) {
	y, _, _ := toYMD(int64(d))
	return int(y), int(int64(d) - daysBeforeYear(y))
}

// YQD returns the year, quarter and day of quarter for d.
func (d Day) YQD() (year, quarter, day int) {
	y, m, _ := toYMD(int64(d))
	q := (m + 2) / 3
	doq := int64(d) - daysBeforeYear(y) - daysBeforeMonth(y, 3*q-2)
	return int(y), int(q), int(doq)
}

// YWD returns the ISO week-numbering year, week and weekday for d. The
// week-numbering year is that of the Thursday of d's week and so may be
// one more or one less than the calendar year of d.
func (d Day) YWD() (year, week, weekday int) {
	n := int64(d)
	y, _, _ := toYMD(n)
	wd := weekdayOf(n)
	thursday := n - daysBeforeYear(y) + 4 - wd
	switch {
	case thursday < 1:
		y--
		thursday += int64(DaysInYear(int(y)))
	case thursday > int64(DaysInYear(int(y))):
		thursday -= int64(DaysInYear(int(y)))
		y++
	}
	return int(y), int((thursday-1)/7 + 1), int(wd)
}

// Year returns the calendar year of d.
func (d Day) Year() int {
	y, _, _ := toYMD(int64(d))
	return int(y)
}

// fromYMD counts days from 0000-03-01 in 400 year eras of 146097 days,
// with the year starting in March so that the leap day is the last day
// of the year.
func fromYMD(y, m, d int64) int64 {
	if m <= 2 {
		y--
		m += 9
	} else {
		m -= 3
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	doy := (153*m+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 305
}

func toYMD(n int64) (y, m, d int64) {
	z := n + 305
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	y = yoe + era*400
	if m <= 2 {
		y++
	}
	return
}

func fromYD(y, d int64) int64 {
	return daysBeforeYear(y) + d
}

func fromYQD(y, q, d int64) int64 {
	return daysBeforeYear(y) + daysBeforeMonth(y, 3*q-2) + d
}

// fromYWD anchors on January 4th which always falls in week 1.
func fromYWD(y, w, d int64) int64 {
	jan4 := daysBeforeYear(y) + 4
	monday := jan4 - weekdayOf(jan4) + 1
	return monday + (w-1)*7 + d - 1
}
