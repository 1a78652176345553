// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso8601

import (
	"fmt"

	"cloudeng.io/caldays"
	"gopkg.in/yaml.v3"
)

// Date is a caldays.Day that can be unmarshaled from YAML as either an
// integer day number or any ISO8601 date literal accepted with
// ExtendedRange and YearZero set. Basic calendar and ordinal dates, such
// as 20121224, must be quoted to be interpreted as dates rather than day
// numbers.
// It is always marshaled as an integer day number.
type Date caldays.Day

// Day returns d as a caldays.Day.
func (d Date) Day() caldays.Day {
	return caldays.Day(d)
}

func (d Date) MarshalYAML() (any, error) {
	return int64(d), nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %v: expected a date: %w", value.Line, ErrInvalidDate)
	}
	if value.ShortTag() == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("line %v: %w", value.Line, err)
		}
		if n < int64(caldays.MinDay) || n > int64(caldays.MaxDay) {
			return fmt.Errorf("line %v: day number %v out of range: %w", value.Line, n, ErrInvalidDate)
		}
		*d = Date(n)
		return nil
	}
	if err := d.UnmarshalText([]byte(value.Value)); err != nil {
		return fmt.Errorf("line %v: %w", value.Line, err)
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	day, err := Options{ExtendedRange: true, YearZero: true}.ParseDateString(string(text))
	if err != nil {
		return err
	}
	*d = Date(day)
	return nil
}
