// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso8601

import "time"

// TimeOfDay represents a time of day as seconds since midnight plus
// a fractional second. 24:00:00 is represented as 86400 seconds.
type TimeOfDay struct {
	Seconds     int
	Nanoseconds int
}

func (t TimeOfDay) Hour() int {
	return t.Seconds / 3600
}

func (t TimeOfDay) Minute() int {
	return t.Seconds / 60 % 60
}

func (t TimeOfDay) Second() int {
	return t.Seconds % 60
}

// Duration returns the time.Duration since midnight for the TimeOfDay.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Seconds)*time.Second + time.Duration(t.Nanoseconds)
}

func newTimeOfDay(h, m, s, f, n int) (TimeOfDay, int) {
	if h > 23 || m > 59 || s > 59 {
		if h != 24 || m != 0 || s != 0 || f != 0 {
			return TimeOfDay{}, 0
		}
	}
	return TimeOfDay{Seconds: h*3600 + m*60 + s, Nanoseconds: f}, n
}

// fraction scans an optional '.' or ',' followed by one or more digits
// at b[i:]. It returns the fraction in nanoseconds and the index
// following it, or ok false if a separator is not followed by a digit.
func fraction(b []byte, i int) (nsec, next int, ok bool) {
	if i >= len(b) || (b[i] != '.' && b[i] != ',') {
		return 0, i, true
	}
	nsec, n := parseFraction(b, i+1)
	if n == 0 {
		return 0, 0, false
	}
	return nsec, i + 1 + n, true
}

// ParseTimeBasic scans a time of day in the basic format, one of hh,
// hhmm, hhmmss or hhmmss followed by a '.' or ',' and a fraction.
func ParseTimeBasic(b []byte) (TimeOfDay, int) {
	var h, m, s, f int
	n := countDigits(b, 0)
	switch n {
	case 2:
		h = parseNumber(b, 0, 2)
	case 4:
		h = parseNumber(b, 0, 2)
		m = parseNumber(b, 2, 2)
	case 6:
		h = parseNumber(b, 0, 2)
		m = parseNumber(b, 2, 2)
		s = parseNumber(b, 4, 2)
		var ok bool
		if f, n, ok = fraction(b, n); !ok {
			return TimeOfDay{}, 0
		}
	default:
		return TimeOfDay{}, 0
	}
	return newTimeOfDay(h, m, s, f, n)
}

// ParseTimeExtended scans a time of day in the extended format, one of
// hh, hh:mm, hh:mm:ss or hh:mm:ss followed by a '.' or ',' and a
// fraction.
func ParseTimeExtended(b []byte) (TimeOfDay, int) {
	if countDigits(b, 0) != 2 {
		return TimeOfDay{}, 0
	}
	h := parseNumber(b, 0, 2)
	if len(b) < 3 || b[2] != ':' {
		return newTimeOfDay(h, 0, 0, 0, 2)
	}
	if countDigits(b, 3) != 2 {
		return TimeOfDay{}, 0
	}
	m := parseNumber(b, 3, 2)
	if len(b) < 6 || b[5] != ':' {
		return newTimeOfDay(h, m, 0, 0, 5)
	}
	if countDigits(b, 6) != 2 {
		return TimeOfDay{}, 0
	}
	s := parseNumber(b, 6, 2)
	f, n, ok := fraction(b, 8)
	if !ok {
		return TimeOfDay{}, 0
	}
	return newTimeOfDay(h, m, s, f, n)
}

// ParseTime scans a time of day with an optional leading 'T'
// designator. The extended format is used if the two digits of the
// hour are followed by a ':', the basic format otherwise. The returned
// count includes the designator.
func ParseTime(b []byte) (TimeOfDay, int) {
	r := 0
	if len(b) > 0 && b[0] == 'T' {
		r = 1
		b = b[1:]
	}
	if len(b) < 2 {
		return TimeOfDay{}, 0
	}
	var t TimeOfDay
	var n int
	if len(b) > 2 && b[2] == ':' {
		t, n = ParseTimeExtended(b)
	} else {
		t, n = ParseTimeBasic(b)
	}
	if n == 0 {
		return TimeOfDay{}, 0
	}
	return t, r + n
}
