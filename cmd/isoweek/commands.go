// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/calendar"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

type weekRow struct {
	Date    calendar.CalendarDate `json:"date" yaml:"date"`
	Weekday string                `json:"weekday" yaml:"weekday"`
	Week    calendar.CalendarWeek `json:"week" yaml:"week"`
	First   calendar.CalendarDate `json:"first" yaml:"first"`
	Last    calendar.CalendarDate `json:"last" yaml:"last"`
}

func (r weekRow) String() string {
	return fmt.Sprintf("%v %v %v %v..%v", r.Date, r.Weekday, r.Week, r.First, r.Last)
}

func newWeekRow(cd calendar.CalendarDate) (weekRow, error) {
	cw, err := cd.Week()
	if err != nil {
		return weekRow{}, err
	}
	return weekRow{
		Date:    cd,
		Weekday: cd.Weekday().String(),
		Week:    cw,
		First:   cw.FirstDate(),
		Last:    cw.LastDate(),
	}, nil
}

type addDaysRow struct {
	Date   calendar.CalendarDate `json:"date" yaml:"date"`
	Days   int                   `json:"days" yaml:"days"`
	Result calendar.CalendarDate `json:"result" yaml:"result"`
}

func (r addDaysRow) String() string {
	return fmt.Sprintf("%v %+d days: %v", r.Date, r.Days, r.Result)
}

type addWeeksRow struct {
	Week   calendar.CalendarWeek `json:"week" yaml:"week"`
	Weeks  int                   `json:"weeks" yaml:"weeks"`
	Result calendar.CalendarWeek `json:"result" yaml:"result"`
}

func (r addWeeksRow) String() string {
	return fmt.Sprintf("%v %+d weeks: %v", r.Week, r.Weeks, r.Result)
}

type daysBetweenRow struct {
	From calendar.CalendarDate `json:"from" yaml:"from"`
	To   calendar.CalendarDate `json:"to" yaml:"to"`
	Days int                   `json:"days" yaml:"days"`
}

func (r daysBetweenRow) String() string {
	return fmt.Sprintf("%v..%v: %d days", r.From, r.To, r.Days)
}

type weekSpanRow struct {
	Week  calendar.CalendarWeek `json:"week" yaml:"week"`
	First calendar.CalendarDate `json:"first" yaml:"first"`
	Last  calendar.CalendarDate `json:"last" yaml:"last"`
}

func (r weekSpanRow) String() string {
	return fmt.Sprintf("%v %v..%v", r.Week, r.First, r.Last)
}

func weekRunner(ctx context.Context, values interface{}, args []string) error {
	ctx, a, done, err := values.(*CommonFlags).newApp(ctx)
	if err != nil {
		return err
	}
	defer done()
	return a.week(ctx, args)
}

func ymdRunner(ctx context.Context, values interface{}, args []string) error {
	ctx, a, done, err := values.(*CommonFlags).newApp(ctx)
	if err != nil {
		return err
	}
	defer done()
	return a.ymd(ctx, args[0], args[1], args[2])
}

func addDaysRunner(ctx context.Context, values interface{}, args []string) error {
	ctx, a, done, err := values.(*CommonFlags).newApp(ctx)
	if err != nil {
		return err
	}
	defer done()
	return a.addDays(ctx, args[0], args[1])
}

func addWeeksRunner(ctx context.Context, values interface{}, args []string) error {
	ctx, a, done, err := values.(*CommonFlags).newApp(ctx)
	if err != nil {
		return err
	}
	defer done()
	return a.addWeeks(ctx, args[0], args[1])
}

func daysBetweenRunner(ctx context.Context, values interface{}, args []string) error {
	ctx, a, done, err := values.(*CommonFlags).newApp(ctx)
	if err != nil {
		return err
	}
	defer done()
	return a.daysBetween(ctx, args[0], args[1])
}

func weeksRunner(ctx context.Context, values interface{}, args []string) error {
	ctx, a, done, err := values.(*CommonFlags).newApp(ctx)
	if err != nil {
		return err
	}
	defer done()
	return a.weeks(ctx, args[0], args[1])
}

// week displays the week of every valid date and returns an error
// listing all of the invalid ones.
func (a *app) week(ctx context.Context, args []string) error {
	logger := ctxlog.Logger(ctx)
	var dates []calendar.CalendarDate
	errs := &errors.M{}
	if len(args) == 0 {
		cd, err := a.today()
		if err != nil {
			return err
		}
		dates = append(dates, cd)
	}
	for _, arg := range args {
		cd, err := a.parseDate(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		dates = append(dates, cd)
	}
	rows := make([]weekRow, 0, len(dates))
	for _, cd := range dates {
		row, err := newWeekRow(cd)
		if err != nil {
			errs.Append(err)
			continue
		}
		logger.Debug("week", "date", row.Date, "week", row.Week)
		rows = append(rows, row)
	}
	if err := write(a, rows); err != nil {
		return err
	}
	return errs.Err()
}

func (a *app) ymd(ctx context.Context, year, month, day string) error {
	cd, err := parseYMD(year, month, day)
	if err != nil {
		return err
	}
	row, err := newWeekRow(cd)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("ymd", "date", row.Date, "week", row.Week)
	return write(a, []weekRow{row})
}

func (a *app) addDays(ctx context.Context, date, days string) error {
	cd, err := a.parseDate(date)
	if err != nil {
		return err
	}
	n, err := parseCount(days)
	if err != nil {
		return err
	}
	result, err := cd.AddDays(n)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("add-days", "date", cd, "days", n, "result", result)
	return write(a, []addDaysRow{{Date: cd, Days: n, Result: result}})
}

func (a *app) addWeeks(ctx context.Context, date, weeks string) error {
	cd, err := a.parseDate(date)
	if err != nil {
		return err
	}
	n, err := parseCount(weeks)
	if err != nil {
		return err
	}
	cw, err := cd.Week()
	if err != nil {
		return err
	}
	result, err := cw.AddWeeks(n)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("add-weeks", "week", cw, "weeks", n, "result", result)
	return write(a, []addWeeksRow{{Week: cw, Weeks: n, Result: result}})
}

func (a *app) daysBetween(ctx context.Context, from, to string) error {
	fromDate, toDate, err := a.parseRange(from, to)
	if err != nil {
		return err
	}
	days := toDate.DaysSince(fromDate)
	ctxlog.Logger(ctx).Debug("days-between", "from", fromDate, "to", toDate, "days", days)
	return write(a, []daysBetweenRow{{From: fromDate, To: toDate, Days: days}})
}

// weeks lists the weeks between two dates, in either order.
func (a *app) weeks(ctx context.Context, from, to string) error {
	fromDate, toDate, err := a.parseRange(from, to)
	if err != nil {
		return err
	}
	if fromDate.After(toDate) {
		fromDate, toDate = toDate, fromDate
	}
	cw, err := fromDate.Week()
	if err != nil {
		return err
	}
	last, err := toDate.Week()
	if err != nil {
		return err
	}
	var rows []weekSpanRow
	for cw.Compare(last) <= 0 {
		rows = append(rows, weekSpanRow{Week: cw, First: cw.FirstDate(), Last: cw.LastDate()})
		if cw, err = cw.AddWeeks(1); err != nil {
			return err
		}
	}
	ctxlog.Logger(ctx).Debug("weeks", "from", rows[0].Week, "to", last, "count", len(rows))
	return write(a, rows)
}

func (a *app) parseRange(from, to string) (calendar.CalendarDate, calendar.CalendarDate, error) {
	errs := &errors.M{}
	fromDate, err := a.parseDate(from)
	errs.Append(err)
	toDate, err := a.parseDate(to)
	errs.Append(err)
	return fromDate, toDate, errs.Err()
}
