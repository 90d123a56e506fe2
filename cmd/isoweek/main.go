// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command isoweek prints ISO 8601 calendar weeks and performs simple
// date arithmetic using cloudeng.io/calendar.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	UTC    bool   `subcmd:"utc,false,interpret today and timestamps in UTC rather than local time"`
	Format string `subcmd:"format,text,'output format: text, json or yaml'"`
}

func init() {
	weekCmd := subcmd.NewCommand("week",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		weekRunner, subcmd.AtLeastNArguments(0))
	weekCmd.Document(`print the ISO 8601 week of each date, or of today if no dates are given. Dates are specified as YYYY-MM-DD or as RFC 3339 timestamps.`, "[date]...")

	ymdCmd := subcmd.NewCommand("ymd",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		ymdRunner, subcmd.ExactlyNumArguments(3))
	ymdCmd.Document(`print the date and ISO 8601 week for a year, one-based month and day.`, "<year>", "<month>", "<day>")

	addDaysCmd := subcmd.NewCommand("add-days",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		addDaysRunner, subcmd.ExactlyNumArguments(2))
	addDaysCmd.Document(`print the date n days after (or before, if n is negative) the specified date.`, "<date>", "<n>")

	addWeeksCmd := subcmd.NewCommand("add-weeks",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		addWeeksRunner, subcmd.ExactlyNumArguments(2))
	addWeeksCmd.Document(`print the ISO 8601 week n weeks after (or before, if n is negative) the week of the specified date.`, "<date>", "<n>")

	daysBetweenCmd := subcmd.NewCommand("days-between",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		daysBetweenRunner, subcmd.ExactlyNumArguments(2))
	daysBetweenCmd.Document(`print the number of days from the first date to the second.`, "<from>", "<to>")

	weeksCmd := subcmd.NewCommand("weeks",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		weeksRunner, subcmd.ExactlyNumArguments(2))
	weeksCmd.Document(`list the ISO 8601 weeks from the week of the first date to the week of the second, inclusive.`, "<from>", "<to>")

	cmdSet = subcmd.NewCommandSet(weekCmd, ymdCmd, addDaysCmd, addWeeksCmd, daysBetweenCmd, weeksCmd)
	cmdSet.Document(`work with ISO 8601 calendar weeks and Gregorian calendar dates.

Dates before 15 October 1582, the first day of the Gregorian calendar,
are rejected.`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
