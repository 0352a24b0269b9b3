// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate

// Compare returns -1, 0 or +1 depending on whether a is before, the same as,
// or after b. Dates are ordered by their earliest instant, Dates with no
// earliest instant sort first and Dates with the same earliest instant are
// ordered by increasing precision, so that "1990s" < "1990" < "Jan 1990" <
// "Mon Jan 01 1990". It is suitable for use with slices.SortFunc.
func Compare(a, b Date) int {
	at, aok := a.Time()
	bt, bok := b.Time()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	if c := at.Compare(bt); c != 0 {
		return c
	}
	switch ap, bp := a.Precision(), b.Precision(); {
	case ap < bp:
		return -1
	case ap > bp:
		return 1
	}
	return 0
}

// Before returns true if d sorts before other as per Compare.
func (d Date) Before(other Date) bool {
	return Compare(d, other) < 0
}
