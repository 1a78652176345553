// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package iso8601 provides scanners for ISO 8601 date, time of day and
// zone offset literals. Each scanner examines a byte slice, returns the
// decoded value and the number of bytes consumed, with 0 indicating that
// no valid literal was found. Scanners never allocate and never return a
// partially decoded value.
//
// The supported date formats are:
//
//	Basic      Extended
//	20121224   2012-12-24   Calendar date
//	2012359    2012-359     Ordinal date
//	2012W521   2012-W52-1   Week date
//	2012Q485   2012-Q4-85   Quarter date
//
// With Options.ExtendedRange, signed years and years with 3, 5, 6 or 7
// digits are also accepted, eg. -5879610-06-22 and 5879611-07-11.
// Composing dates, times and offsets into a single timestamp is
// provided by ParseTimestamp.
package iso8601

import "cloudeng.io/caldays"

// Options controls which literals are accepted. The zero value
// accepts ISO 8601 dates for years 0001 through 9999, quarter dates
// and signed zero offsets.
type Options struct {
	// ExtendedRange enables signed years and years of 3, 5, 6 or 7
	// digits up to caldays.MaxExtendedYear.
	ExtendedRange bool `yaml:"extended_range"`
	// YearZero allows year 0 and, with ExtendedRange, negative years.
	YearZero bool `yaml:"year_zero"`
	// NoQuarters rejects quarter dates.
	NoQuarters bool `yaml:"no_quarters"`
	// StrictZone rejects offsets of negative zero, eg. -00 or -00:00.
	StrictZone bool `yaml:"strict_zone"`
	// Years, if set, overrides the range of years derived from
	// ExtendedRange and YearZero.
	Years *caldays.Range `yaml:"years,omitempty"`
}

// Strict returns a copy of o that rejects quarter dates and negative
// zero offsets.
func (o Options) Strict() Options {
	o.NoQuarters = true
	o.StrictZone = true
	return o
}

// Range returns the range of years used to validate dates.
func (o Options) Range() caldays.Range {
	if o.Years != nil {
		return *o.Years
	}
	r := caldays.Default()
	if o.ExtendedRange {
		r.MaxYear = caldays.MaxExtendedYear
	}
	if o.YearZero {
		r.MinYear = 0
		if o.ExtendedRange {
			r.MinYear = caldays.MinExtendedYear
		}
	}
	return r
}
