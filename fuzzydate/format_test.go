// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate_test

import (
	"testing"

	"cloudeng.io/pedigree/fuzzydate"
)

func TestFormat(t *testing.T) {
	for _, tc := range []struct {
		date        fuzzydate.Date
		str, gedcom string
	}{
		{fuzzydate.Date{}, "", ""},
		{fuzzydate.Parse("1990s"), "1990s", "ABT 1990"},
		{fuzzydate.Parse("1800s"), "1800s", "ABT 1800"},
		{fuzzydate.Parse("1994"), "1994", "1994"},
		{fuzzydate.Parse("1994-06"), "Jun 1994", "Jun 1994"},
		{fuzzydate.Parse("1994-06-14"), "Tue Jun 14 1994", "Tue Jun 14 1994"},
		{fuzzydate.Parse("1994-06-01"), "Wed Jun 01 1994", "Wed Jun 01 1994"},
		{fuzzydate.Parse("2000-01-01"), "Sat Jan 01 2000", "Sat Jan 01 2000"},
		{fuzzydate.Parse("0994"), "0994", "0994"},
		{fuzzydate.Parse("0994-03"), "Mar 0994", "Mar 0994"},
		{fuzzydate.FromRecord(fuzzydate.Record{Year: fuzzydate.Int(1994), Month: fuzzydate.Int(13)}), "1994", "1994"},
		{fuzzydate.FromRecord(fuzzydate.Record{Year: fuzzydate.Int(1994), Month: fuzzydate.Int(0)}), "1994", "1994"},
	} {
		if got, want := tc.date.String(), tc.str; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		if got, want := tc.date.GEDCOM(), tc.gedcom; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		if got, want := (fuzzydate.Formatter{}).String(tc.date), tc.str; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		text, err := tc.date.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if got, want := string(text), tc.str; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestMonthName(t *testing.T) {
	d := fuzzydate.Parse("Mar 1901")
	for _, locale := range []string{"", "en", "xx", "fr"} {
		if got, want := d.MonthName(locale), "Mar"; got != want {
			t.Errorf("%q: got %q, want %q", locale, got, want)
		}
	}
	for _, text := range []string{"", "1900s", "1901"} {
		if got, want := fuzzydate.Parse(text).MonthName("en"), ""; got != want {
			t.Errorf("%q: got %q, want %q", text, got, want)
		}
	}

	names := fuzzydate.DefaultMonthNames()
	names["fr"] = [12]string{"janv", "févr", "mars", "avr", "mai", "juin", "juil", "août", "sept", "oct", "nov", "déc"}
	fr := fuzzydate.Formatter{Names: names, Locale: "fr"}
	if got, want := fr.MonthName(d), "mars"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := fr.String(fuzzydate.Parse("1901-08")), "août 1901"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// Day precision is always rendered in English so that it can be parsed.
	if got, want := fr.String(fuzzydate.Parse("1901-02-05")), "Tue Feb 05 1901"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	unknown := fuzzydate.Formatter{Names: names, Locale: "de"}
	if got, want := unknown.MonthName(d), "Mar"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
