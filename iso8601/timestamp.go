// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso8601

import "cloudeng.io/caldays"

// Timestamp is a date with an optional time of day and zone offset.
// The zone offset is only ever present with a time of day.
type Timestamp struct {
	Date    caldays.Day
	Time    TimeOfDay
	Offset  Offset
	HasTime bool
	HasZone bool
}

// ParseTimestamp is Options{}.ParseTimestamp.
func ParseTimestamp(b []byte) (Timestamp, int) {
	return Options{}.ParseTimestamp(b)
}

// ParseTimestamp scans a date optionally followed by a 'T', a time of
// day and a zone offset as accepted by ParseDate, ParseTime and
// ParseZone respectively, eg. 2012-12-24T15:30:45.5+01:00. A 'T' that
// is not followed by a valid time, or a zone designator that is not a
// valid offset, causes the whole timestamp to be rejected.
func (o Options) ParseTimestamp(b []byte) (Timestamp, int) {
	var ts Timestamp
	d, n := o.ParseDate(b)
	if n == 0 {
		return Timestamp{}, 0
	}
	ts.Date = d
	if n == len(b) || b[n] != 'T' {
		return ts, n
	}
	t, tn := ParseTime(b[n:])
	if tn == 0 {
		return Timestamp{}, 0
	}
	ts.Time, ts.HasTime = t, true
	n += tn
	if n == len(b) || (b[n] != 'Z' && zoneSign(b[n]) == 0) {
		return ts, n
	}
	off, zn := o.ParseZone(b[n:])
	if zn == 0 {
		return Timestamp{}, 0
	}
	ts.Offset, ts.HasZone = off, true
	return ts, n + zn
}
