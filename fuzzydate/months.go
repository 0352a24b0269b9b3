// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
)

// DefaultLocale is the locale used when none, or an unknown one, is requested.
const DefaultLocale = "en"

var (
	englishMonthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	months            = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

// MonthNames maps a locale, eg. "en", to the abbreviated names of the
// twelve months in that locale.
type MonthNames map[string][12]string

// DefaultMonthNames returns a new MonthNames containing only the
// DefaultLocale.
func DefaultMonthNames() MonthNames {
	return MonthNames{DefaultLocale: englishMonthNames}
}

// Name returns the name of month (1-12) in the requested locale. An
// unknown locale is silently replaced by DefaultLocale and the built-in
// English names are used if DefaultLocale is not present. An empty string
// is returned for an out of range month.
func (mn MonthNames) Name(locale string, month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	names, ok := mn[locale]
	if !ok {
		if names, ok = mn[DefaultLocale]; !ok {
			names = englishMonthNames
		}
	}
	return names[month-1]
}

// Locales returns the sorted list of locales.
func (mn MonthNames) Locales() []string {
	return slices.Sorted(maps.Keys(mn))
}

// Validate returns an error for every locale that contains an empty month
// name.
func (mn MonthNames) Validate() error {
	var errs errors.M
	for _, locale := range mn.Locales() {
		for i, name := range mn[locale] {
			if len(strings.TrimSpace(name)) == 0 {
				errs.Append(fmt.Errorf("locale %q: missing name for month %v", locale, i+1))
			}
		}
	}
	return errs.Err()
}

// ParseMonthNames parses a YAML specification of month names of the form:
//
//	fr: [janv, févr, mars, avr, mai, juin, juil, août, sept, oct, nov, déc]
//
// The returned MonthNames contains the default locale in addition to
// those specified, which may override it.
func ParseMonthNames(spec []byte) (MonthNames, error) {
	var cfg map[string][]string
	if err := cmdutil.ParseYAMLConfig(spec, &cfg); err != nil {
		return nil, err
	}
	return monthNamesFromConfig(cfg)
}

// LoadMonthNames is like ParseMonthNames but reads the YAML specification
// from the named file.
func LoadMonthNames(filename string) (MonthNames, error) {
	var cfg map[string][]string
	if err := cmdutil.ParseYAMLConfigFile(filename, &cfg); err != nil {
		return nil, err
	}
	mn, err := monthNamesFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", filename, err)
	}
	return mn, nil
}

func monthNamesFromConfig(cfg map[string][]string) (MonthNames, error) {
	mn := DefaultMonthNames()
	var errs errors.M
	for _, locale := range slices.Sorted(maps.Keys(cfg)) {
		names := cfg[locale]
		if len(names) != 12 {
			errs.Append(fmt.Errorf("locale %q: expected 12 month names, got %v", locale, len(names)))
			continue
		}
		mn[locale] = [12]string(names)
	}
	errs.Append(mn.Validate())
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return mn, nil
}

// parseMonthName parses a month name of the form "Jan" to "Dec" or any other
// longer prefix of "January" to "December" in either lower or upper case.
func parseMonthName(val string) (int, bool) {
	lc := strings.ToLower(strings.TrimSuffix(val, "."))
	if len(lc) < 3 {
		return 0, false
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return i + 1, true
		}
	}
	return 0, false
}

// parseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func parseNumericMonth(val string) (int, bool) {
	if len(val) == 0 || len(val) > 2 {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}
