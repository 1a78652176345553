// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso8601

import "time"

// Offset is a zone offset in minutes east of UTC.
type Offset int

// Duration returns the offset as a time.Duration.
func (o Offset) Duration() time.Duration {
	return time.Duration(o) * time.Minute
}

func zoneSign(c byte) int {
	switch c {
	case '+':
		return 1
	case '-':
		return -1
	}
	return 0
}

func (o Options) newOffset(sign, h, m, n int) (Offset, int) {
	if h > 23 || m > 59 {
		return 0, 0
	}
	if o.StrictZone && sign < 0 && h == 0 && m == 0 {
		return 0, 0
	}
	return Offset(sign * (h*60 + m)), n
}

// ParseZoneBasic is Options{}.ParseZoneBasic.
func ParseZoneBasic(b []byte) (Offset, int) {
	return Options{}.ParseZoneBasic(b)
}

// ParseZoneBasic scans a zone offset in the basic format, one of Z,
// ±hh or ±hhmm.
func (o Options) ParseZoneBasic(b []byte) (Offset, int) {
	if len(b) < 1 {
		return 0, 0
	}
	if b[0] == 'Z' {
		return 0, 1
	}
	sign := zoneSign(b[0])
	if sign == 0 || len(b) < 3 {
		return 0, 0
	}
	switch countDigits(b, 1) {
	case 2:
		return o.newOffset(sign, parseNumber(b, 1, 2), 0, 3)
	case 4:
		return o.newOffset(sign, parseNumber(b, 1, 2), parseNumber(b, 3, 2), 5)
	}
	return 0, 0
}

// ParseZoneExtended is Options{}.ParseZoneExtended.
func ParseZoneExtended(b []byte) (Offset, int) {
	return Options{}.ParseZoneExtended(b)
}

// ParseZoneExtended scans a zone offset in the extended format, one of
// Z, ±hh or ±hh:mm.
func (o Options) ParseZoneExtended(b []byte) (Offset, int) {
	if len(b) < 1 {
		return 0, 0
	}
	if b[0] == 'Z' {
		return 0, 1
	}
	sign := zoneSign(b[0])
	if sign == 0 || countDigits(b, 1) != 2 {
		return 0, 0
	}
	h := parseNumber(b, 1, 2)
	if len(b) < 4 || b[3] != ':' {
		return o.newOffset(sign, h, 0, 3)
	}
	if countDigits(b, 4) != 2 {
		return 0, 0
	}
	return o.newOffset(sign, h, parseNumber(b, 4, 2), 6)
}

// ParseZone is Options{}.ParseZone.
func ParseZone(b []byte) (Offset, int) {
	return Options{}.ParseZone(b)
}

// ParseZone scans a zone offset using the extended format if the hour
// is followed by a ':' and the basic format otherwise.
func (o Options) ParseZone(b []byte) (Offset, int) {
	if len(b) > 3 && b[3] == ':' {
		return o.ParseZoneExtended(b)
	}
	return o.ParseZoneBasic(b)
}

// ParseZoneLenient scans a zone offset in any of the following forms,
// negative zero offsets are always accepted:
//
//	z Z GMT UTC
//	±h ±hh ±hhmm ±h:mm ±hh:mm
//	GMT or UTC followed by any of the signed forms
func ParseZoneLenient(b []byte) (Offset, int) {
	if len(b) < 1 {
		return 0, 0
	}
	switch b[0] {
	case 'z', 'Z':
		return 0, 1
	case 'G', 'U':
		if len(b) < 3 || (string(b[:3]) != "GMT" && string(b[:3]) != "UTC") {
			return 0, 0
		}
		if len(b) == 3 || zoneSign(b[3]) == 0 {
			return 0, 3
		}
		off, n := lenientOffset(b[3:])
		if n == 0 {
			return 0, 0
		}
		return off, n + 3
	}
	return lenientOffset(b)
}

// lenientOffset scans ±h, ±hh, ±hhmm, ±h:mm or ±hh:mm.
func lenientOffset(b []byte) (Offset, int) {
	sign := zoneSign(b[0])
	if sign == 0 || len(b) < 2 {
		return 0, 0
	}
	var h, m, n int
	switch countDigits(b, 1) {
	case 1:
		h, n = parseNumber(b, 1, 1), 2
	case 2:
		h, n = parseNumber(b, 1, 2), 3
	case 4:
		return Options{}.newOffset(sign, parseNumber(b, 1, 2), parseNumber(b, 3, 2), 5)
	default:
		return 0, 0
	}
	if n < len(b) && b[n] == ':' {
		if countDigits(b, n+1) != 2 {
			return 0, 0
		}
		m = parseNumber(b, n+1, 2)
		n += 3
	}
	return Options{}.newOffset(sign, h, m, n)
}
