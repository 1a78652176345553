// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso8601

import "cloudeng.io/caldays"

type format int

const (
	calendarDate format = iota + 1
	ordinalDate
	weekDate
	quarterDate
)

// literal is a structurally valid date literal whose fields have not
// yet been validated. n is the number of bytes scanned, 0 if the
// literal was not recognised.
type literal struct {
	format format
	year   int
	x, d   int
	n      int
}

// ParseDate is Options{}.ParseDate.
func ParseDate(b []byte) (caldays.Day, int) {
	return Options{}.ParseDate(b)
}

// ParseDate scans a calendar, ordinal, week or quarter date at the
// start of b and returns the corresponding Day and the number of bytes
// consumed. Dates that are well formed but invalid, such as 2012-02-30,
// or that lie outside of o.Range() are rejected. Only the number of bytes
// consumed signals success: it is 0 for a rejected date, whereas the
// returned Day may legitimately be 0, ie. 0000-12-31 with YearZero set.
func (o Options) ParseDate(b []byte) (caldays.Day, int) {
	lit := o.scanDate(b)
	if lit.n == 0 {
		return 0, 0
	}
	day, ok := o.construct(lit)
	if !ok {
		return 0, 0
	}
	return day, lit.n
}

func (o Options) scanDate(b []byte) literal {
	sign, i := 1, 0
	if o.ExtendedRange && len(b) > 0 && b[0] == '-' {
		sign, i = -1, 1
	}
	p := b[i:]
	lit := literal{}
	n := countDigits(p, 0)
	switch n {
	case 4:
		lit.year = parseNumber(p, 0, 4)
	case 3, 5, 6, 7:
		if o.ExtendedRange && countDelims(p) > 0 {
			lit.year = parseNumber(p, 0, n)
			break
		}
		if n != 7 {
			return literal{}
		}
		// 2012359
		return literal{
			format: ordinalDate,
			year:   sign * parseNumber(p, 0, 4),
			d:      parseNumber(p, 4, 3),
			n:      i + 7,
		}
	case 8:
		// 20121224
		return literal{
			format: calendarDate,
			year:   sign * parseNumber(p, 0, 4),
			x:      parseNumber(p, 4, 2),
			d:      parseNumber(p, 6, 2),
			n:      i + 8,
		}
	default:
		return literal{}
	}
	lit.year *= sign
	i += n

	rest := p[n:]
	if len(rest) < 4 {
		return literal{}
	}
	m := countDigits(rest, 1)
	switch rest[0] {
	case '-':
	case 'Q':
		// 2012Q485
		if o.NoQuarters || m != 3 {
			return literal{}
		}
		lit.format, lit.x, lit.d, lit.n = quarterDate, parseNumber(rest, 1, 1), parseNumber(rest, 2, 2), i+4
		return lit
	case 'W':
		// 2012W521
		if m != 3 {
			return literal{}
		}
		lit.format, lit.x, lit.d, lit.n = weekDate, parseNumber(rest, 1, 2), parseNumber(rest, 3, 1), i+4
		return lit
	default:
		return literal{}
	}

	switch m {
	case 0:
	case 2:
		// 2012-12-24
		if rest[3] != '-' || countDigits(rest, 4) != 2 {
			return literal{}
		}
		lit.format, lit.x, lit.d, lit.n = calendarDate, parseNumber(rest, 1, 2), parseNumber(rest, 4, 2), i+6
		return lit
	case 3:
		// 2012-359
		lit.format, lit.d, lit.n = ordinalDate, parseNumber(rest, 1, 3), i+4
		return lit
	default:
		return literal{}
	}

	if len(rest) < 6 {
		return literal{}
	}
	m = countDigits(rest, 2)
	switch rest[1] {
	case 'Q':
		// 2012-Q4-85
		if o.NoQuarters || m != 1 || rest[3] != '-' || countDigits(rest, 4) != 2 {
			return literal{}
		}
		lit.format, lit.x, lit.d, lit.n = quarterDate, parseNumber(rest, 2, 1), parseNumber(rest, 4, 2), i+6
		return lit
	case 'W':
		// 2012-W52-1
		if m != 2 || rest[4] != '-' || countDigits(rest, 5) != 1 {
			return literal{}
		}
		lit.format, lit.x, lit.d, lit.n = weekDate, parseNumber(rest, 2, 2), parseNumber(rest, 5, 1), i+6
		return lit
	}
	return literal{}
}

// construct validates the fields of lit and returns the Day they
// represent.
func (o Options) construct(lit literal) (caldays.Day, bool) {
	r := o.Range()
	switch lit.format {
	case calendarDate:
		return r.FromYMD(lit.year, lit.x, lit.d)
	case ordinalDate:
		return r.FromYD(lit.year, lit.d)
	case weekDate:
		return r.FromYWD(lit.year, lit.x, lit.d)
	case quarterDate:
		return r.FromYQD(lit.year, lit.x, lit.d)
	}
	return 0, false
}
