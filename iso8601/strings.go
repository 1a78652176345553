// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso8601

import (
	"fmt"

	"cloudeng.io/caldays"
	"cloudeng.io/errors"
)

var (
	ErrInvalidDate      = errors.New("invalid ISO8601 date")
	ErrInvalidTime      = errors.New("invalid ISO8601 time")
	ErrInvalidZone      = errors.New("invalid ISO8601 zone offset")
	ErrInvalidTimestamp = errors.New("invalid ISO8601 timestamp")
)

func wholeInput(s string, n int, sentinel error) error {
	switch {
	case n == 0:
		return fmt.Errorf("%q: %w", s, sentinel)
	case n != len(s):
		return fmt.Errorf("%q: unexpected trailing text %q: %w", s, s[n:], sentinel)
	}
	return nil
}

// ParseDateString is like ParseDate but requires that all of s be
// consumed and returns an error that wraps ErrInvalidDate on failure.
func (o Options) ParseDateString(s string) (caldays.Day, error) {
	d, n := o.ParseDate([]byte(s))
	if err := wholeInput(s, n, ErrInvalidDate); err != nil {
		return 0, err
	}
	return d, nil
}

// ParseTimeString is like ParseTime but requires that all of s be
// consumed and returns an error that wraps ErrInvalidTime on failure.
func ParseTimeString(s string) (TimeOfDay, error) {
	t, n := ParseTime([]byte(s))
	if err := wholeInput(s, n, ErrInvalidTime); err != nil {
		return TimeOfDay{}, err
	}
	return t, nil
}

// ParseZoneString is like ParseZone but requires that all of s be
// consumed and returns an error that wraps ErrInvalidZone on failure.
func (o Options) ParseZoneString(s string) (Offset, error) {
	off, n := o.ParseZone([]byte(s))
	if err := wholeInput(s, n, ErrInvalidZone); err != nil {
		return 0, err
	}
	return off, nil
}

// ParseTimestampString is like ParseTimestamp but requires that all of s
// be consumed and returns an error that wraps ErrInvalidTimestamp on
// failure.
func (o Options) ParseTimestampString(s string) (Timestamp, error) {
	ts, n := o.ParseTimestamp([]byte(s))
	if err := wholeInput(s, n, ErrInvalidTimestamp); err != nil {
		return Timestamp{}, err
	}
	return ts, nil
}
