// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso8601

import (
	"context"
	"fmt"

	"cloudeng.io/caldays"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

var ErrInvalidOptions = errors.New("invalid ISO8601 options")

// Validate returns an error if o.Years is not a valid range or if it
// includes years that cannot be written given o's other settings.
func (o Options) Validate() error {
	if o.Years == nil {
		return nil
	}
	errs := &errors.M{}
	errs.Append(o.Years.Validate())
	if o.Years.MinYear < 1 && !o.YearZero {
		errs.Append(fmt.Errorf("years: min_year %v requires year_zero: %w", o.Years.MinYear, ErrInvalidOptions))
	}
	if o.Years.MinYear < 0 && !o.ExtendedRange {
		errs.Append(fmt.Errorf("years: min_year %v requires extended_range: %w", o.Years.MinYear, ErrInvalidOptions))
	}
	if o.Years.MaxYear > caldays.Default().MaxYear && !o.ExtendedRange {
		errs.Append(fmt.Errorf("years: max_year %v requires extended_range: %w", o.Years.MaxYear, ErrInvalidOptions))
	}
	return errs.Err()
}

// ParseOptions parses YAML encoded Options, eg:
//
//	extended_range: true
//	year_zero: true
//	strict_zone: true
//	years:
//	  min_year: -10000
//	  max_year: 10000
//
// Unknown fields are reported as errors.
func ParseOptions(spec []byte) (Options, error) {
	var o Options
	if err := cmdyaml.ParseConfigStrict(spec, &o); err != nil {
		return Options{}, err
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// LoadOptions reads and parses the YAML encoded Options in filename
// as per ParseOptions. The file is read using cmdyaml.ParseConfigFileStrict
// and hence may be read from an fs.ReadFileFS stored in ctx.
func LoadOptions(ctx context.Context, filename string) (Options, error) {
	logger := ctxlog.Logger(ctx)
	var o Options
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &o); err != nil {
		logger.Warn("failed to load ISO8601 options", "file", filename, "error", err)
		return Options{}, err
	}
	if err := o.Validate(); err != nil {
		logger.Warn("invalid ISO8601 options", "file", filename, "error", err)
		return Options{}, fmt.Errorf("%v: %w", filename, err)
	}
	r := o.Range()
	logger.Info("loaded ISO8601 options",
		"file", filename,
		"extended_range", o.ExtendedRange,
		"year_zero", o.YearZero,
		"no_quarters", o.NoQuarters,
		"strict_zone", o.StrictZone,
		"min_year", r.MinYear,
		"max_year", r.MaxYear)
	return o, nil
}
