// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso8601

// countDigits returns the number of consecutive decimal digits in b
// starting at i.
func countDigits(b []byte, i int) int {
	n := i
	for ; i < len(b); i++ {
		if b[i]-'0' > 9 {
			break
		}
	}
	return i - n
}

// countDelims returns the number of '-', 'W' and 'Q' characters in the
// leading run of digits and delimiters in b.
func countDelims(b []byte) int {
	n := 0
	for _, c := range b {
		switch {
		case c-'0' <= 9:
		case c == '-', c == 'W', c == 'Q':
			n++
		default:
			return n
		}
	}
	return n
}

// parseNumber returns the value of the width digits at b[i:], which
// the caller has already checked with countDigits.
func parseNumber(b []byte, i, width int) int {
	v := 0
	for _, c := range b[i : i+width] {
		v = v*10 + int(c-'0')
	}
	return v
}

var pow10 = [10]int{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// parseFraction scans the digits of a decimal fraction at b[i:] and
// returns it in nanoseconds along with the number of digits consumed.
// Digits beyond the ninth are consumed but ignored.
func parseFraction(b []byte, i int) (nsec, n int) {
	n = countDigits(b, i)
	if n == 0 {
		return 0, 0
	}
	w := min(n, 9)
	return parseNumber(b, i, w) * pow10[9-w], n
}
