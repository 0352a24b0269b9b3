// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command fuzzydate parses, formats and orders dates of varying precision
// as used in genealogical records.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
}

type parseFlags struct {
	CommonFlags
}

type formatFlags struct {
	CommonFlags
	GEDCOM     bool   `subcmd:"gedcom,false,'use the GEDCOM form for approximate dates, eg. ABT 1990'"`
	Locale     string `subcmd:"locale,en,locale to use for month names"`
	MonthNames string `subcmd:"month-names,,'YAML file containing month names for additional locales'"`
}

type earliestFlags struct {
	CommonFlags
}

type sortFlags struct {
	CommonFlags
	Reverse bool `subcmd:"reverse,false,'sort latest first'"`
}

type decodeFlags struct {
	CommonFlags
}

func init() {
	parseFlagSet := subcmd.NewFlagSet()
	parseFlagSet.MustRegisterFlagStruct(&parseFlags{}, nil, nil)
	formatFlagSet := subcmd.NewFlagSet()
	formatFlagSet.MustRegisterFlagStruct(&formatFlags{}, nil, nil)
	earliestFlagSet := subcmd.NewFlagSet()
	earliestFlagSet.MustRegisterFlagStruct(&earliestFlags{}, nil, nil)
	sortFlagSet := subcmd.NewFlagSet()
	sortFlagSet.MustRegisterFlagStruct(&sortFlags{}, nil, nil)
	decodeFlagSet := subcmd.NewFlagSet()
	decodeFlagSet.MustRegisterFlagStruct(&decodeFlags{}, nil, nil)

	parseCmd := subcmd.NewCommand("parse", parseFlagSet, parse)
	parseCmd.Document("parse dates and print the set fields of each as JSON", "<date>...")

	formatCmd := subcmd.NewCommand("format", formatFlagSet, format)
	formatCmd.Document("parse dates and print them in their canonical human readable, or GEDCOM, form", "<date>...")

	earliestCmd := subcmd.NewCommand("earliest", earliestFlagSet, earliest)
	earliestCmd.Document("print the earliest instant consistent with each date", "<date>...")

	sortCmd := subcmd.NewCommand("sort", sortFlagSet, sortDates)
	sortCmd.Document("print dates in chronological order, less precise dates first", "<date>...")

	decodeCmd := subcmd.NewCommand("decode", decodeFlagSet, decode, subcmd.ExactlyNumArguments(1))
	decodeCmd.Document("decode a JSON or YAML list of dates or date records and print each one", "<file>")

	cmdSet = subcmd.NewCommandSet(parseCmd, formatCmd, earliestCmd, sortCmd, decodeCmd)
	cmdSet.Document(`parse, format and order dates of varying precision.

Dates may be specified as a decade (1990s), a year (1994), a month
(Jun 1994, 1994-06) or an exact day (Tue Jun 14 1994, 1994-06-14, 14 June 1994 etc).`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

// withLogger returns a context containing the logger configured by the
// common flags along with a function to be called to release it.
func (cf *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}
