// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Source is the set of representations that a Date may be created from.
// It is implemented by Empty, Text, Instant and Record only.
type Source interface {
	source()
}

// Empty represents the absence of any date information.
type Empty struct{}

// Text is a free form textual date, eg. "1990s", "1994", "Jun 1994",
// "Tue Jun 14 1994" or "1994-06-14".
type Text string

// Instant is a concrete point in time; only its year, month and day,
// in its own location, are used.
type Instant time.Time

// Record is a partial, structured date as typically found in persisted
// pedigree data. Each field may be absent, null, a string or an integer.
type Record struct {
	Decade Field `json:"decade,omitzero" yaml:"decade,omitempty"`
	Year   Field `json:"year,omitzero" yaml:"year,omitempty"`
	Month  Field `json:"month,omitzero" yaml:"month,omitempty"`
	Day    Field `json:"day,omitzero" yaml:"day,omitempty"`
}

func (Empty) source()   {}
func (Text) source()    {}
func (Instant) source() {}
func (Record) source()  {}

type fieldKind int

const (
	absentField fieldKind = iota
	nullField
	stringField
	numberField
)

// Field is an optional value within a Record. The zero value is an absent
// field.
type Field struct {
	kind fieldKind
	raw  string
}

// Int returns a Field containing the integer n.
func Int(n int) Field {
	return Field{kind: numberField, raw: strconv.Itoa(n)}
}

// String returns a Field containing the string s.
func String(s string) Field {
	return Field{kind: stringField, raw: s}
}

// Null returns a Field that is present but explicitly null.
func Null() Field {
	return Field{kind: nullField}
}

// IsZero returns true if the field is absent.
func (f Field) IsZero() bool {
	return f.kind == absentField
}

// IsNull returns true if the field is present but null.
func (f Field) IsNull() bool {
	return f.kind == nullField
}

// Text returns the field's value as text, it returns false if the
// field is absent or null.
func (f Field) Text() (string, bool) {
	if f.kind == absentField || f.kind == nullField {
		return "", false
	}
	return f.raw, true
}

// Int returns the field's value as an integer. For text, any leading
// whitespace, an optional sign and the leading decimal digits are used, so
// that "14", " 14" and "14th" all yield 14. Numbers, including those with
// a fraction or exponent such as 1.994e3, are truncated toward zero. It
// returns false if the field is absent, null or has no integer value.
func (f Field) Int() (int, bool) {
	s, ok := f.Text()
	if !ok {
		return 0, false
	}
	if f.kind == numberField {
		return truncatedInt(s)
	}
	return leadingInt(s)
}

func (f Field) String() string {
	switch f.kind {
	case absentField:
		return "<absent>"
	case nullField:
		return "null"
	case stringField:
		return strconv.Quote(f.raw)
	}
	return f.raw
}

func truncatedInt(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) >= math.MaxInt32 {
		return 0, false
	}
	return int(math.Trunc(v)), true
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
