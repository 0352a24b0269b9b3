// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate

import (
	"fmt"
	"strconv"
)

// Formatter formats Dates using the configured month names and locale.
// The zero value uses DefaultMonthNames and DefaultLocale.
type Formatter struct {
	Names  MonthNames
	Locale string
}

// MonthName returns the abbreviated name of the Date's month or an empty
// string if the month is not set.
func (f Formatter) MonthName(d Date) string {
	if !d.hasMonth {
		return ""
	}
	return f.Names.Name(f.Locale, d.month)
}

// String returns the human readable form of the Date, which depends on its
// precision:
//
//	decade: "1990s"
//	year:   "1994"
//	month:  "Jun 1994"
//	day:    "Tue Jun 14 1994"
//	unset:  ""
//
// With the default month names the result is accepted by Parse.
func (f Formatter) String(d Date) string {
	switch d.Precision() {
	case DecadePrecision:
		return d.decade
	case YearPrecision:
		return formatYear(d.year)
	case MonthPrecision:
		name := f.MonthName(d)
		if len(name) == 0 {
			// Out of range month, the year is all that can be parsed back.
			return formatYear(d.year)
		}
		return name + " " + formatYear(d.year)
	case DayPrecision:
		t, _ := d.Time()
		return t.Format(DayLayout)
	}
	return ""
}

func formatYear(year int) string {
	return fmt.Sprintf("%04d", year)
}

// GEDCOM is like String except that a decade is rendered using the GEDCOM
// approximation keyword and the decade's first year, eg. "ABT 1990".
func (f Formatter) GEDCOM(d Date) string {
	if d.OnlyDecadeAvailable() {
		if year, ok := d.EarliestYear(); ok {
			return "ABT " + strconv.Itoa(year)
		}
	}
	return f.String(d)
}

// MonthName returns the abbreviated name of the Date's month in the
// requested locale, falling back to DefaultLocale for unknown locales.
// An empty string is returned if the month is not set.
func (d Date) MonthName(locale string) string {
	return Formatter{Locale: locale}.MonthName(d)
}

// String implements fmt.Stringer, see Formatter.String.
func (d Date) String() string {
	return Formatter{}.String(d)
}

// GEDCOM returns the date in a form suitable for use in a GEDCOM file,
// see Formatter.GEDCOM.
func (d Date) GEDCOM() string {
	return Formatter{}.GEDCOM(d)
}
