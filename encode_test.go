// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldays_test

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/caldays"
)

func TestEncodings(t *testing.T) {
	for _, tc := range []struct {
		y, m, d     int
		day         caldays.Day
		doy         int
		q, doq      int
		wy, w, wd   int
		description string
	}{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, "first day"},
		{1970, 1, 1, 719163, 1, 1, 1, 1970, 1, 4, "unix epoch"},
		{2012, 12, 24, 734861, 359, 4, 85, 2012, 52, 1, "leap year"},
		{9999, 12, 31, 3652059, 365, 4, 92, 9999, 52, 5, "last ISO 8601 day"},
		{2008, 12, 29, 733405, 364, 4, 90, 2009, 1, 1, "week year after"},
		{2010, 1, 3, 733775, 3, 1, 3, 2009, 53, 7, "week year before"},
		{2024, 2, 29, 738945, 60, 1, 60, 2024, 9, 4, "leap day"},
		{0, 12, 31, 0, 366, 4, 92, 0, 52, 7, "day zero"},
		{0, 1, 1, -365, 1, 1, 1, -1, 52, 6, "year zero"},
		{-5879610, 6, 22, caldays.MinDay, 173, 2, 83, -5879610, 25, 5, "min day"},
		{5879611, 7, 11, caldays.MaxDay, 192, 3, 11, 5879611, 28, 1, "max day"},
	} {
		day := caldays.FromYMD(tc.y, tc.m, tc.d)
		if got, want := day, tc.day; got != want {
			t.Errorf("%v: got %v, want %v", tc.description, got, want)
			continue
		}
		if got, want := caldays.FromYD(tc.y, tc.doy), tc.day; got != want {
			t.Errorf("%v: got %v, want %v", tc.description, got, want)
		}
		if got, want := caldays.FromYQD(tc.y, tc.q, tc.doq), tc.day; got != want {
			t.Errorf("%v: got %v, want %v", tc.description, got, want)
		}
		if got, want := caldays.FromYWD(tc.wy, tc.w, tc.wd), tc.day; got != want {
			t.Errorf("%v: got %v, want %v", tc.description, got, want)
		}
		if y, doy := day.YD(); y != tc.y || doy != tc.doy {
			t.Errorf("%v: got %v-%v, want %v-%v", tc.description, y, doy, tc.y, tc.doy)
		}
		if y, q, doq := day.YQD(); y != tc.y || q != tc.q || doq != tc.doq {
			t.Errorf("%v: got %v-Q%v-%v, want %v-Q%v-%v", tc.description, y, q, doq, tc.y, tc.q, tc.doq)
		}
		if y, w, wd := day.YWD(); y != tc.wy || w != tc.w || wd != tc.wd {
			t.Errorf("%v: got %v-W%v-%v, want %v-W%v-%v", tc.description, y, w, wd, tc.wy, tc.w, tc.wd)
		}
		if got, want := day.Year(), tc.y; got != want {
			t.Errorf("%v: got %v, want %v", tc.description, got, want)
		}
	}
}

func roundTrip(t *testing.T, day caldays.Day) {
	t.Helper()
	y, m, d := day.YMD()
	if m < 1 || m > 12 || d < 1 || d > caldays.DaysInMonth(y, m) {
		t.Fatalf("%v: invalid calendar date %v-%v-%v", day, y, m, d)
	}
	if got, want := caldays.FromYMD(y, m, d), day; got != want {
		t.Fatalf("%v-%v-%v: got %v, want %v", y, m, d, got, want)
	}
	y, doy := day.YD()
	if doy < 1 || doy > caldays.DaysInYear(y) {
		t.Fatalf("%v: invalid ordinal date %v-%v", day, y, doy)
	}
	if got, want := caldays.FromYD(y, doy), day; got != want {
		t.Fatalf("%v-%v: got %v, want %v", y, doy, got, want)
	}
	y, q, doq := day.YQD()
	if q < 1 || q > 4 || doq < 1 || doq > caldays.DaysInQuarter(y, q) {
		t.Fatalf("%v: invalid quarter date %v-Q%v-%v", day, y, q, doq)
	}
	if got, want := caldays.FromYQD(y, q, doq), day; got != want {
		t.Fatalf("%v-Q%v-%v: got %v, want %v", y, q, doq, got, want)
	}
	y, w, wd := day.YWD()
	if w < 1 || w > caldays.WeeksInYear(y) || wd < 1 || wd > 7 {
		t.Fatalf("%v: invalid week date %v-W%v-%v", day, y, w, wd)
	}
	if got, want := caldays.FromYWD(y, w, wd), day; got != want {
		t.Fatalf("%v-W%v-%v: got %v, want %v", y, w, wd, got, want)
	}
}

func TestRoundTripDefaultRange(t *testing.T) {
	r := caldays.Default()
	for day := r.Min(); day <= r.Max(); day++ {
		roundTrip(t, day)
	}
}

func TestRoundTripExtendedRange(t *testing.T) {
	for day := caldays.MinDay; day < caldays.MinDay+100000; day++ {
		roundTrip(t, day)
	}
	for day := caldays.MaxDay - 100000; ; day++ {
		roundTrip(t, day)
		if day == caldays.MaxDay {
			break
		}
	}
	for i := int64(math.MinInt32); i <= math.MaxInt32; i += 9973 {
		roundTrip(t, caldays.Day(i))
	}
}

func TestAgainstTimePackage(t *testing.T) {
	start := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	for when := start; !when.After(end); when = when.AddDate(0, 0, 7) {
		day := caldays.FromTime(when)
		if got, want := day.Weekday().Std(), when.Weekday(); got != want {
			t.Fatalf("%v: got %v, want %v", when, got, want)
		}
		y, doy := day.YD()
		if y != when.Year() || doy != when.YearDay() {
			t.Fatalf("%v: got %v-%v, want %v", when, y, doy, when.YearDay())
		}
		wy, w, _ := day.YWD()
		ty, tw := when.ISOWeek()
		if wy != ty || w != tw {
			t.Fatalf("%v: got %v-W%v, want %v-W%v", when, wy, w, ty, tw)
		}
	}
	unix := caldays.FromYMD(1970, 1, 1)
	for _, when := range []time.Time{
		time.Date(2012, 12, 24, 0, 0, 0, 0, time.UTC),
		time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC),
	} {
		if got, want := caldays.FromTime(when).Sub(unix), int(when.Unix()/86400); got != want {
			t.Errorf("%v: got %v, want %v", when, got, want)
		}
	}
}
