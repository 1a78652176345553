// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldays

import (
	"fmt"

	"cloudeng.io/errors"
	"github.com/go-playground/validator/v10"
)

const (
	// MinExtendedYear is the earliest year that can be represented, albeit
	// only from June 22nd onwards.
	MinExtendedYear = -5879610
	// MaxExtendedYear is the latest year that can be represented, albeit
	// only up to July 11th.
	MaxExtendedYear = 5879611
)

// ErrInvalidRange is returned by Range.Validate.
var ErrInvalidRange = errors.New("invalid year range")

// Range is the inclusive range of years accepted when validating and
// constructing day numbers from field values. Days outside of
// [MinDay, MaxDay] are always rejected regardless of the range.
type Range struct {
	MinYear int `yaml:"min_year" validate:"gte=-5879610,lte=5879611"`
	MaxYear int `yaml:"max_year" validate:"gte=-5879610,lte=5879611,gtefield=MinYear"`
}

// Default returns the ISO 8601 range of years 0001 through 9999.
func Default() Range {
	return Range{MinYear: 1, MaxYear: 9999}
}

// Extended returns the largest range supported, spanning all of MinDay
// to MaxDay.
func Extended() Range {
	return Range{MinYear: MinExtendedYear, MaxYear: MaxExtendedYear}
}

// Validate returns an error if the range is empty or extends beyond
// MinExtendedYear or MaxExtendedYear.
func (r Range) Validate() error {
	// Validate only runs when configuration is loaded, so the validator
	// and its struct cache are not kept between calls.
	err := validator.New().Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := &errors.M{}
	for _, fe := range verrs {
		errs.Append(fmt.Errorf("%v: %v does not satisfy %v %v: %w", fe.Field(), fe.Value(), fe.Tag(), fe.Param(), ErrInvalidRange))
	}
	return errs.Err()
}

func (r Range) validYear(y int) bool {
	return y >= r.MinYear && y <= r.MaxYear
}

func inDomain(n int64) bool {
	return n >= int64(MinDay) && n <= int64(MaxDay)
}

// Min returns the first day of the range.
func (r Range) Min() Day {
	return Day(max(daysBeforeYear(int64(r.MinYear))+1, int64(MinDay)))
}

// Max returns the last day of the range.
func (r Range) Max() Day {
	return Day(min(daysBeforeYear(int64(r.MaxYear)+1), int64(MaxDay)))
}

// Contains returns true if d falls within the range.
func (r Range) Contains(d Day) bool {
	return r.validYear(d.Year())
}

// FromYMD validates the year, month and day and returns the
// corresponding Day. It returns false if any field is out of range.
func (r Range) FromYMD(year, month, day int) (Day, bool) {
	if !r.validYear(year) || month < 1 || month > 12 || day < 1 || day > DaysInMonth(year, month) {
		return 0, false
	}
	return checked(fromYMD(int64(year), int64(month), int64(day)))
}

// FromYD validates the year and day of year and returns the corresponding
// Day. It returns false if either is out of range.
func (r Range) FromYD(year, day int) (Day, bool) {
	if !r.validYear(year) || day < 1 || day > DaysInYear(year) {
		return 0, false
	}
	return checked(fromYD(int64(year), int64(day)))
}

// FromYQD validates the year, quarter and day of quarter and returns the
// corresponding Day. It returns false if any field is out of range.
func (r Range) FromYQD(year, quarter, day int) (Day, bool) {
	if !r.validYear(year) || quarter < 1 || quarter > 4 || day < 1 || day > DaysInQuarter(year, quarter) {
		return 0, false
	}
	return checked(fromYQD(int64(year), int64(quarter), int64(day)))
}

// FromYWD validates the ISO week-numbering year, week and weekday and
// returns the corresponding Day. It returns false if any field is out of
// range. The year is checked against the range as a week-numbering year.
func (r Range) FromYWD(year, week, weekday int) (Day, bool) {
	if !r.validYear(year) || week < 1 || week > WeeksInYear(year) || weekday < 1 || weekday > 7 {
		return 0, false
	}
	return checked(fromYWD(int64(year), int64(week), int64(weekday)))
}

func checked(n int64) (Day, bool) {
	if !inDomain(n) {
		return 0, false
	}
	return Day(n), true
}

// ValidYMD returns true if the year, month and day are valid for r.
func (r Range) ValidYMD(year, month, day int) bool {
	_, ok := r.FromYMD(year, month, day)
	return ok
}

// ValidYD returns true if the year and day of year are valid for r.
func (r Range) ValidYD(year, day int) bool {
	_, ok := r.FromYD(year, day)
	return ok
}

// ValidYQD returns true if the year, quarter and day of quarter are valid for r.
func (r Range) ValidYQD(year, quarter, day int) bool {
	_, ok := r.FromYQD(year, quarter, day)
	return ok
}

// ValidYWD returns true if the week-numbering year, week and weekday are
// valid for r.
func (r Range) ValidYWD(year, week, weekday int) bool {
	_, ok := r.FromYWD(year, week, weekday)
	return ok
}

// FromYMDChecked is Default().FromYMD.
func FromYMDChecked(year, month, day int) (Day, bool) {
	return Default().FromYMD(year, month, day)
}

// FromYDChecked is Default().FromYD.
func FromYDChecked(year, day int) (Day, bool) {
	return Default().FromYD(year, day)
}

// FromYQDChecked is Default().FromYQD.
func FromYQDChecked(year, quarter, day int) (Day, bool) {
	return Default().FromYQD(year, quarter, day)
}

// FromYWDChecked is Default().FromYWD.
func FromYWDChecked(year, week, weekday int) (Day, bool) {
	return Default().FromYWD(year, week, weekday)
}

// ValidYMD is Default().ValidYMD.
func ValidYMD(year, month, day int) bool {
	return Default().ValidYMD(year, month, day)
}

// ValidYD is Default().ValidYD.
func ValidYD(year, day int) bool {
	return Default().ValidYD(year, day)
}

// ValidYQD is Default().ValidYQD.
func ValidYQD(year, quarter, day int) bool {
	return Default().ValidYQD(year, quarter, day)
}

// ValidYWD is Default().ValidYWD.
func ValidYWD(year, week, weekday int) bool {
	return Default().ValidYWD(year, week, weekday)
}
