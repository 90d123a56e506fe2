// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/calendar"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// app holds the state shared by all commands once flags are parsed.
type app struct {
	out    io.Writer
	utc    bool
	format string
	now    func() time.Time
}

// newApp creates the logger described by the logging flags, stores it
// in the returned context and returns a function to close it.
func (cf *CommonFlags) newApp(ctx context.Context) (context.Context, *app, func(), error) {
	switch cf.Format {
	case "text", "json", "yaml":
	default:
		return ctx, nil, nil, fmt.Errorf("unsupported output format: %q", cf.Format)
	}
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	a := &app{
		out:    os.Stdout,
		utc:    cf.UTC,
		format: cf.Format,
		now:    time.Now,
	}
	return ctx, a, func() { logger.Close() }, nil
}

// today returns the current date in UTC or local time.
func (a *app) today() (calendar.CalendarDate, error) {
	return a.fromTime(a.now())
}

func (a *app) fromTime(t time.Time) (calendar.CalendarDate, error) {
	if a.utc {
		return calendar.FromUTCDate(t)
	}
	return calendar.FromLocalDate(t)
}

// parseDate parses YYYY-MM-DD, validating the components with the
// calendar package rather than time.Parse, or an RFC 3339 timestamp.
func (a *app) parseDate(val string) (calendar.CalendarDate, error) {
	if strings.Contains(val, "T") {
		t, err := time.Parse(time.RFC3339, val)
		if err != nil {
			return calendar.CalendarDate{}, fmt.Errorf("invalid timestamp %q: %w", val, err)
		}
		return a.fromTime(t)
	}
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return calendar.CalendarDate{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", val, calendar.ErrInvalidCalendarDate)
	}
	return parseYMD(parts[0], parts[1], parts[2])
}

// parseYMD parses a year, one-based month and day. Components that are not
// integers, such as 1.5, are invalid calendar dates.
func parseYMD(year, month, day string) (calendar.CalendarDate, error) {
	var ymd [3]int
	for i, v := range []string{year, month, day} {
		n, err := strconv.Atoi(v)
		if err != nil {
			return calendar.CalendarDate{}, fmt.Errorf("%q is not an integer: %w", v, calendar.ErrInvalidCalendarDate)
		}
		ymd[i] = n
	}
	return calendar.FromYearMonth1Day(ymd[0], ymd[1], ymd[2])
}

func parseCount(val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", val, err)
	}
	return n, nil
}

// write displays rows in the requested format. Text output uses each
// row's String method, one per line.
func write[T fmt.Stringer](a *app, rows []T) error {
	switch a.format {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(a.out, r.String()); err != nil {
			return err
		}
	}
	return nil
}
