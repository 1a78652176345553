// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldays_test

import (
	"testing"
	"time"

	"cloudeng.io/caldays"
)

func TestWeekday(t *testing.T) {
	for _, tc := range []struct {
		day     caldays.Day
		weekday caldays.Weekday
	}{
		{1, caldays.Monday},
		{7, caldays.Sunday},
		{8, caldays.Monday},
		{0, caldays.Sunday},
		{-6, caldays.Monday},
		{caldays.FromYMD(2012, 12, 24), caldays.Monday},
		{caldays.FromYMD(1970, 1, 1), caldays.Thursday},
		{caldays.FromYMD(2026, 10, 19), caldays.Monday},
		{caldays.MinDay, caldays.FromYMD(-5879610, 6, 22).Weekday()},
	} {
		if got, want := tc.day.Weekday(), tc.weekday; got != want {
			t.Errorf("%v: got %v, want %v", tc.day, got, want)
		}
	}

	for _, tc := range []struct {
		weekday caldays.Weekday
		std     time.Weekday
		name    string
	}{
		{caldays.Monday, time.Monday, "Monday"},
		{caldays.Saturday, time.Saturday, "Saturday"},
		{caldays.Sunday, time.Sunday, "Sunday"},
		{caldays.Weekday(0), time.Sunday, "Weekday(0)"},
	} {
		if got, want := tc.weekday.Std(), tc.std; tc.weekday != 0 && got != want {
			t.Errorf("%v: got %v, want %v", tc.weekday, got, want)
		}
		if got, want := tc.weekday.String(), tc.name; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestFromTime(t *testing.T) {
	epoch := caldays.FromYMD(1970, 1, 1)
	if got, want := epoch, caldays.Day(719163); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i, when := range []time.Time{
		time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2012, 12, 24, 23, 59, 59, 0, time.UTC),
		time.Date(2000, 2, 29, 12, 0, 0, 0, time.FixedZone("X", -11*3600)),
		time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
	} {
		d := caldays.FromTime(when)
		y, m, dd := d.YMD()
		if y != when.Year() || m != int(when.Month()) || dd != when.Day() {
			t.Errorf("%v: got %v-%v-%v, want %v", i, y, m, dd, when)
		}
		if got, want := d.Weekday().Std(), when.Weekday(); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	d := caldays.FromYMD(2012, 12, 24)
	if got, want := d.Add(8), caldays.FromYMD(2013, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Add(-24), caldays.FromYMD(2012, 11, 30); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := caldays.FromYMD(2013, 1, 1).Sub(d), 8; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := caldays.Day(1).Sub(caldays.FromYMD(0, 1, 1)), 366; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !(caldays.FromYMD(1999, 12, 31) < caldays.FromYMD(2000, 1, 1)) {
		t.Errorf("day numbers are not ordered chronologically")
	}
}
