// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fuzzydate provides support for dates of varying precision, as
// commonly found in genealogical records, ranging from an unknown year within
// a decade (eg. "1990s") to an exact day.
//
// A Date is created from one of the Source representations and is immutable
// thereafter. Creation never fails: text or fields that cannot be
// interpreted simply result in a Date with less, or no, information and
// callers must use IsSet, Precision or the field accessors to determine
// what is known.
//
// For all Dates, a finer field is only ever set if all of the coarser fields
// are also set, ie. day implies month, month implies year and year
// implies decade.
package fuzzydate

import (
	"strconv"
	"time"
)

// Precision represents the finest level of detail known for a Date.
type Precision int

const (
	Unset Precision = iota
	DecadePrecision
	YearPrecision
	MonthPrecision
	DayPrecision
)

func (p Precision) String() string {
	switch p {
	case DecadePrecision:
		return "decade"
	case YearPrecision:
		return "year"
	case MonthPrecision:
		return "month"
	case DayPrecision:
		return "day"
	}
	return "unset"
}

// Date represents a date whose precision may be a decade, a year, a month
// within a year or an exact day. The zero value is an unset date. Dates are
// comparable using ==.
type Date struct {
	decade                    string
	year, month, day          int
	hasYear, hasMonth, hasDay bool
}

// New creates a Date from the supplied Source.
func New(src Source) Date {
	switch v := src.(type) {
	case Text:
		return Parse(string(v))
	case Instant:
		return FromTime(time.Time(v))
	case Record:
		return FromRecord(v)
	}
	return Date{}
}

// FromTime creates a Date with day precision from the year, month and day
// of t in t's location. The zero time.Time yields an unset Date.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return newDay(y, int(m), d)
}

// FromRecord creates a Date from a partial record. The decade is used
// verbatim, year, month and day are interpreted as integers and any that
// cannot be are treated as unset. A field is ignored if any coarser field
// is unset. The decade is derived from the year if not supplied.
func FromRecord(r Record) Date {
	var d Date
	if dec, ok := r.Decade.Text(); ok {
		d.decade = dec
	}
	if d.year, d.hasYear = r.Year.Int(); !d.hasYear {
		return d.withDerivedDecade()
	}
	if d.month, d.hasMonth = r.Month.Int(); !d.hasMonth {
		return d.withDerivedDecade()
	}
	d.day, d.hasDay = r.Day.Int()
	return d.withDerivedDecade()
}

func newDecade(decade string) Date {
	return Date{decade: decade}
}

func newYear(year int) Date {
	return Date{year: year, hasYear: true}.withDerivedDecade()
}

func newMonth(year, month int) Date {
	return Date{year: year, month: month, hasYear: true, hasMonth: true}.withDerivedDecade()
}

func newDay(year, month, day int) Date {
	return Date{
		year: year, month: month, day: day,
		hasYear: true, hasMonth: true, hasDay: true,
	}.withDerivedDecade()
}

func (d Date) withDerivedDecade() Date {
	if d.hasYear && len(d.decade) == 0 {
		d.decade = DecadeOf(d.year)
	}
	return d
}

// DecadeOf returns the decade label for year, formed by replacing the
// year's last digit with "0s", eg. 1994 yields "1990s".
func DecadeOf(year int) string {
	y := strconv.Itoa(year)
	return y[:len(y)-1] + "0s"
}

// IsSet returns true if the Date carries any information at all.
func (d Date) IsSet() bool {
	return len(d.decade) > 0
}

// OnlyDecadeAvailable returns true if the decade is known but the year is not.
func (d Date) OnlyDecadeAvailable() bool {
	return d.IsSet() && !d.hasYear
}

// Precision returns the finest precision available.
func (d Date) Precision() Precision {
	switch {
	case d.hasDay:
		return DayPrecision
	case d.hasMonth:
		return MonthPrecision
	case d.hasYear:
		return YearPrecision
	case d.IsSet():
		return DecadePrecision
	}
	return Unset
}

// Decade returns the decade label, eg. "1990s", if set.
func (d Date) Decade() (string, bool) {
	return d.decade, d.IsSet()
}

// Year returns the year, if set.
func (d Date) Year() (int, bool) {
	return d.year, d.hasYear
}

// Month returns the month, 1-12, if set.
func (d Date) Month() (int, bool) {
	return d.month, d.hasMonth
}

// Day returns the day of the month, starting at 1, if set.
func (d Date) Day() (int, bool) {
	return d.day, d.hasDay
}

// EarliestYear returns the year if set, or the first year of the decade
// otherwise. It returns false for an unset Date or for a decade label
// that does not start with a number.
func (d Date) EarliestYear() (int, bool) {
	if d.hasYear {
		return d.year, true
	}
	if !d.IsSet() {
		return 0, false
	}
	return leadingInt(d.decade)
}

// EarliestMonth returns the month if set, or 1 (January) if the Date
// is set but its month is not.
func (d Date) EarliestMonth() (int, bool) {
	if d.hasMonth {
		return d.month, true
	}
	if !d.IsSet() {
		return 0, false
	}
	return 1, true
}

// EarliestDay returns the day if set, or 1 if the Date is set but its day
// is not.
func (d Date) EarliestDay() (int, bool) {
	if d.hasDay {
		return d.day, true
	}
	if !d.IsSet() {
		return 0, false
	}
	return 1, true
}

// BestPrecisionYear returns the year as a string if known, the decade if
// only that is known and an empty string for an unset Date.
func (d Date) BestPrecisionYear() string {
	if d.hasYear {
		return strconv.Itoa(d.year)
	}
	return d.decade
}

// Record returns a sparse Record containing only those fields that are set.
func (d Date) Record() Record {
	var r Record
	if d.IsSet() {
		r.Decade = String(d.decade)
	}
	if d.hasYear {
		r.Year = Int(d.year)
	}
	if d.hasMonth {
		r.Month = Int(d.month)
	}
	if d.hasDay {
		r.Day = Int(d.day)
	}
	return r
}

// Time returns the earliest instant consistent with the Date, in UTC, ie.
// midnight on the first day of the known period. It returns false if
// the Date is unset.
func (d Date) Time() (time.Time, bool) {
	return d.TimeIn(time.UTC)
}

// TimeIn is like Time but returns the instant in the specified location.
func (d Date) TimeIn(loc *time.Location) (time.Time, bool) {
	year, ok := d.EarliestYear()
	if !ok {
		return time.Time{}, false
	}
	month, _ := d.EarliestMonth()
	day, _ := d.EarliestDay()
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
}

// UnixMilli returns the number of milliseconds since the Unix epoch for
// the instant returned by Time.
func (d Date) UnixMilli() (int64, bool) {
	t, ok := d.Time()
	if !ok {
		return 0, false
	}
	return t.UnixMilli(), true
}
