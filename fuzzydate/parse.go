// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	decadeRe       = regexp.MustCompile(`^\d\d\d\ds$`)
	yearRe         = regexp.MustCompile(`^\d{4}$`)
	numericMonthRe = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	namedMonthRe   = regexp.MustCompile(`^([A-Za-z]+\.?),?\s+(\d{4})$`)
)

// DayLayout is the layout used to format, and preferentially parse, dates
// with day precision.
const DayLayout = "Mon Jan 02 2006"

// dayLayouts are tried in order, any successful parse yields a Date
// with day precision.
var dayLayouts = []string{
	DayLayout,
	"Mon Jan 2 2006",
	"Jan 2 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, Jan 2, 2006",
	"Monday, January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	time.DateOnly,
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
	time.UnixDate,
}

// Parse creates a Date from text. The following forms are recognised:
//
//   - "" or whitespace: an unset Date.
//   - "1990s": decade only.
//   - "1994": year only.
//   - "Jun 1994", "June 1994" or "1994-06": year and month.
//   - "Tue Jun 14 1994", "1994-06-14", "14 June 1994" and the other
//     common layouts listed in dayLayouts: exact day.
//
// Text that cannot be interpreted yields an unset Date.
func Parse(text string) Date {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return Date{}
	}
	if decadeRe.MatchString(text) {
		return newDecade(text)
	}
	if yearRe.MatchString(text) {
		year, _ := strconv.Atoi(text)
		return newYear(year)
	}
	if year, month, ok := parseYearMonth(text); ok {
		return newMonth(year, month)
	}
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return FromTime(t)
		}
	}
	return Date{}
}

func parseYearMonth(text string) (year, month int, ok bool) {
	if m := numericMonthRe.FindStringSubmatch(text); m != nil {
		if month, ok = parseNumericMonth(m[2]); !ok {
			return
		}
		year, _ = strconv.Atoi(m[1])
		return
	}
	if m := namedMonthRe.FindStringSubmatch(text); m != nil {
		if month, ok = parseMonthName(m[1]); !ok {
			return
		}
		year, _ = strconv.Atoi(m[2])
		return
	}
	return
}
