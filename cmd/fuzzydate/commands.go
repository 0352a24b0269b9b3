// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pedigree/fuzzydate"
	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"
)

var errNoDates = errors.New("no dates specified")

func parse(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*parseFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	return parseDates(ctx, os.Stdout, args)
}

func format(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*formatFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	formatter := fuzzydate.Formatter{Locale: fv.Locale}
	if len(fv.MonthNames) > 0 {
		names, err := fuzzydate.LoadMonthNames(fv.MonthNames)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Info("loaded month names", "file", fv.MonthNames, "locales", names.Locales())
		formatter.Names = names
	}
	return formatDates(ctx, os.Stdout, formatter, fv.GEDCOM, args)
}

func earliest(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*earliestFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	return earliestDates(ctx, os.Stdout, args)
}

func sortDates(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*sortFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	return orderDates(ctx, os.Stdout, fv.Reverse, args)
}

func decode(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*decodeFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	buf, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	dates, err := decodeDates(args[0], buf)
	if err != nil {
		return err
	}
	return printDecoded(ctx, os.Stdout, dates)
}

func parseArgs(ctx context.Context, args []string) ([]fuzzydate.Date, error) {
	if len(args) == 0 {
		return nil, errNoDates
	}
	logger := ctxlog.Logger(ctx)
	dates := make([]fuzzydate.Date, len(args))
	for i, arg := range args {
		dates[i] = fuzzydate.Parse(arg)
		logger.Debug("parsed", "text", arg, "precision", dates[i].Precision().String())
	}
	return dates, nil
}

func parseDates(ctx context.Context, out io.Writer, args []string) error {
	dates, err := parseArgs(ctx, args)
	if err != nil {
		return err
	}
	for _, d := range dates {
		buf, err := json.Marshal(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", buf)
	}
	return nil
}

func formatDates(ctx context.Context, out io.Writer, formatter fuzzydate.Formatter, gedcom bool, args []string) error {
	dates, err := parseArgs(ctx, args)
	if err != nil {
		return err
	}
	for _, d := range dates {
		if gedcom {
			fmt.Fprintln(out, formatter.GEDCOM(d))
			continue
		}
		fmt.Fprintln(out, formatter.String(d))
	}
	return nil
}

func earliestDates(ctx context.Context, out io.Writer, args []string) error {
	dates, err := parseArgs(ctx, args)
	if err != nil {
		return err
	}
	var errs errors.M
	for i, d := range dates {
		when, ok := d.Time()
		if !ok {
			errs.Append(fmt.Errorf("%q: no date information", args[i]))
			continue
		}
		fmt.Fprintf(out, "%s\t%v\t%s\n", when.Format(time.RFC3339), when.UnixMilli(), d.Precision())
	}
	return errs.Err()
}

func orderDates(ctx context.Context, out io.Writer, reverse bool, args []string) error {
	dates, err := parseArgs(ctx, args)
	if err != nil {
		return err
	}
	slices.SortStableFunc(dates, fuzzydate.Compare)
	if reverse {
		slices.Reverse(dates)
	}
	for _, d := range dates {
		if !d.IsSet() {
			ctxlog.Logger(ctx).Warn("ignoring unset date")
			continue
		}
		fmt.Fprintln(out, d)
	}
	return nil
}

// decodeDates decodes a list of dates, each of which may be a string or a
// record, from JSON or, for files with a .yaml or .yml extension, YAML.
func decodeDates(filename string, buf []byte) ([]fuzzydate.Date, error) {
	var dates []fuzzydate.Date
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(buf, &dates); err != nil {
			return nil, fmt.Errorf("%v: %w", filename, err)
		}
	default:
		if err := json.Unmarshal(buf, &dates); err != nil {
			return nil, fmt.Errorf("%v: %w", filename, err)
		}
	}
	return dates, nil
}

func printDecoded(ctx context.Context, out io.Writer, dates []fuzzydate.Date) error {
	logger := ctxlog.Logger(ctx)
	for i, d := range dates {
		if !d.IsSet() {
			logger.Debug("no date information", "index", i)
		}
		fmt.Fprintf(out, "%v\t%s\t%s\n", i, d.Precision(), d)
	}
	return nil
}
