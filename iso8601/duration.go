// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso8601

import (
	"fmt"
	"math"
	"time"

	"cloudeng.io/errors"
)

var ErrInvalidDuration = errors.New("invalid ISO8601 duration")

const (
	durationDay   = time.Hour * 24
	durationYear  = durationDay * 365
	durationMonth = durationYear / 12
	durationWeek  = durationDay * 7
)

type designator struct {
	id   byte
	unit time.Duration
}

// Designators in the order in which they must appear, the date
// designators precede the 'T' and the time designators follow it.
var (
	dateDesignators = [...]designator{{'Y', durationYear}, {'M', durationMonth}, {'W', durationWeek}, {'D', durationDay}}
	timeDesignators = [...]designator{{'H', time.Hour}, {'M', time.Minute}, {'S', time.Second}}
)

// maxDurationDigits bounds the integer part of a component so that
// accumulating its digits cannot overflow an int64. Overflow of the
// resulting duration is checked separately.
const maxDurationDigits = 18

// scanComponent scans a number with an optional fraction followed by
// a designator, eg. 1.5H.
func scanComponent(dur string, b []byte, i int) (whole int64, nsec, next int, err error) {
	n := countDigits(b, i)
	if n == 0 || n > maxDurationDigits {
		return 0, 0, 0, fmt.Errorf("invalid number at offset %v: %q: %w", i, dur, ErrInvalidDuration)
	}
	for _, c := range b[i : i+n] {
		whole = whole*10 + int64(c-'0')
	}
	var ok bool
	if nsec, next, ok = fraction(b, i+n); !ok {
		return 0, 0, 0, fmt.Errorf("invalid fraction at offset %v: %q: %w", i+n, dur, ErrInvalidDuration)
	}
	if next >= len(b) {
		return 0, 0, 0, fmt.Errorf("missing designator: %q: %w", dur, ErrInvalidDuration)
	}
	return whole, nsec, next, nil
}

// ParseDuration parses a duration in the ISO8601 format
// [-]PnYnMnWnDTnHnMnS. Each component is optional but must appear at most
// once and in the order shown; any component may have a fraction. Years
// are 365 days and months are a twelfth of a year.
func ParseDuration(dur string) (time.Duration, error) {
	i, neg := 0, false
	if len(dur) > 0 && dur[0] == '-' {
		i, neg = 1, true
	}
	if i >= len(dur) || dur[i] != 'P' {
		return 0, fmt.Errorf("duration must start with P or -P: %q: %w", dur, ErrInvalidDuration)
	}
	i++
	b := []byte(dur)
	designators := dateDesignators[:]
	inTime := false
	var result time.Duration
	for i < len(dur) {
		if dur[i] == 'T' {
			if inTime {
				return 0, fmt.Errorf("repeated T: %q: %w", dur, ErrInvalidDuration)
			}
			designators, inTime = timeDesignators[:], true
			i++
			continue
		}
		whole, nsec, next, err := scanComponent(dur, b, i)
		if err != nil {
			return 0, err
		}
		found := -1
		for j, d := range designators {
			if d.id == dur[next] {
				found = j
				break
			}
		}
		if found < 0 {
			return 0, fmt.Errorf("invalid or out of order duration designator: %c: %q: %w", dur[next], dur, ErrInvalidDuration)
		}
		unit := designators[found].unit
		if whole > math.MaxInt64/int64(unit) {
			return 0, fmt.Errorf("duration overflows: %q: %w", dur, ErrInvalidDuration)
		}
		component := time.Duration(whole) * unit
		frac := time.Duration(float64(unit) * float64(nsec) / 1e9)
		if component > math.MaxInt64-frac {
			return 0, fmt.Errorf("duration overflows: %q: %w", dur, ErrInvalidDuration)
		}
		component += frac
		if result > math.MaxInt64-component {
			return 0, fmt.Errorf("duration overflows: %q: %w", dur, ErrInvalidDuration)
		}
		result += component
		designators = designators[found+1:]
		i = next + 1
	}
	if neg {
		result = -result
	}
	return result, nil
}
