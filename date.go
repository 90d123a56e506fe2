// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides immutable value types for Gregorian calendar
// dates and ISO 8601 calendar weeks.
//
// A CalendarDate is a year, zero-based month and one-based day that is
// guaranteed to denote a real day in the Gregorian calendar on or after
// 15 October 1582, the first day on which that calendar was in use.
// A CalendarWeek is obtained by reducing a CalendarDate to the ISO 8601
// week that contains it:
//
//	cd, err := calendar.FromYearMonth1Day(2006, 6, 27)
//	wk, err := cd.Week()
//	fmt.Println(cd, wk) // 2006-06-27 2006-W26
//
// All operations return new values and all values are safe for concurrent
// use.
package calendar

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var (
	// ErrOutOfRange is returned for dates that precede the start of the
	// Gregorian calendar, 1582-10-15, or that fall after MaxYear.
	ErrOutOfRange = errors.New("date is out of range")
	// ErrInvalidCalendarDate is returned for a year, month and day that
	// do not denote a real calendar day.
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
)

const secondsPerDay = 24 * 60 * 60

// MaxYear is the latest year that can be represented.
const MaxYear = 1_000_000_000

// "When the new calendar was put in use [...] the Julian calendar day
// Thursday, 4 October 1582 was followed by the first day of the
// Gregorian calendar, Friday, 15 October 1582".
var firstGregorianDate = CalendarDate{year: 1582, month0: 9, day1: 15}

var (
	firstUnix = time.Date(1582, 10, 15, 0, 0, 0, 0, time.UTC).Unix()
	lastUnix  = time.Date(MaxYear, 12, 31, 0, 0, 0, 0, time.UTC).Unix()
)

// CalendarDate represents a day in the Gregorian calendar. Use one of the
// From functions to create a CalendarDate; the zero value is not a valid
// date.
type CalendarDate struct {
	year   int
	month0 int
	day1   int
	// midnight UTC as seconds since the unix epoch, derived from the
	// fields above.
	unix int64
}

// FromLocalDate returns the CalendarDate of t in the local time zone.
func FromLocalDate(t time.Time) (CalendarDate, error) {
	y, m, d := t.In(time.Local).Date()
	return newCalendarDate(y, int(m)-1, d)
}

// FromUTCDate returns the CalendarDate of t in UTC.
func FromUTCDate(t time.Time) (CalendarDate, error) {
	y, m, d := t.UTC().Date()
	return newCalendarDate(y, int(m)-1, d)
}

// FromYearMonth0Day returns the CalendarDate for the specified year,
// zero-based month (0-11) and one-based day (1-31).
func FromYearMonth0Day(year, month0, day1 int) (CalendarDate, error) {
	return newCalendarDate(year, month0, day1)
}

// FromYearMonth1Day returns the CalendarDate for the specified year,
// one-based month (1-12) and one-based day (1-31).
func FromYearMonth1Day(year, month1, day1 int) (CalendarDate, error) {
	return newCalendarDate(year, month1-1, day1)
}

// Must is like the From functions but panics on error.
func Must(cd CalendarDate, err error) CalendarDate {
	if err != nil {
		panic(err)
	}
	return cd
}

// newCalendarDate validates its arguments by asking time.Date to
// normalize them and rejecting any that do not survive unchanged.
func newCalendarDate(year, month0, day1 int) (CalendarDate, error) {
	cd := CalendarDate{year: year, month0: month0, day1: day1}
	if cd.Compare(firstGregorianDate) < 0 {
		return CalendarDate{}, fmt.Errorf("%v: %w", cd.components(), ErrOutOfRange)
	}
	if year > MaxYear {
		return CalendarDate{}, fmt.Errorf("%v: %w", cd.components(), ErrOutOfRange)
	}
	midnight := time.Date(year, time.Month(month0+1), day1, 0, 0, 0, 0, time.UTC)
	y, m, d := midnight.Date()
	if y != year || int(m)-1 != month0 || d != day1 {
		return CalendarDate{}, fmt.Errorf("%v: %w", cd.components(), ErrInvalidCalendarDate)
	}
	cd.unix = midnight.Unix()
	return cd, nil
}

// components formats the raw fields, for use in error messages where the
// month may be out of range.
func (cd CalendarDate) components() string {
	return fmt.Sprintf("year %d, month0 %d, day1 %d", cd.year, cd.month0, cd.day1)
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return cd.year
}

// Month0 returns the zero-based month, 0-11.
func (cd CalendarDate) Month0() int {
	return cd.month0
}

// Month returns the month as a time.Month.
func (cd CalendarDate) Month() time.Month {
	return time.Month(cd.month0 + 1)
}

// Day1 returns the one-based day of the month.
func (cd CalendarDate) Day1() int {
	return cd.day1
}

// IsZero returns true for the zero value, which is not a valid date.
func (cd CalendarDate) IsZero() bool {
	return cd.day1 == 0
}

// DayOfWeek returns the day of the week with 0 for Sunday through to 6
// for Saturday.
func (cd CalendarDate) DayOfWeek() int {
	return int(cd.Weekday())
}

// Weekday returns the day of the week as a time.Weekday.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.MidnightUTC().Weekday()
}

// Part represents a field to be overridden by SetParts.
type Part func(*parts)

type parts struct {
	year, month0, day1 int
}

// WithYear overrides the year.
func WithYear(year int) Part {
	return func(p *parts) {
		p.year = year
	}
}

// WithMonth0 overrides the month using a zero-based month.
func WithMonth0(month0 int) Part {
	return func(p *parts) {
		p.month0 = month0
	}
}

// WithMonth1 overrides the month using a one-based month.
func WithMonth1(month1 int) Part {
	return func(p *parts) {
		p.month0 = month1 - 1
	}
}

// WithDay1 overrides the day of the month.
func WithDay1(day1 int) Part {
	return func(p *parts) {
		p.day1 = day1
	}
}

// SetParts returns a new CalendarDate with the specified parts overridden
// and all others taken from cd. The result is validated in the same way as
// for FromYearMonth0Day, so that, for example, setting the day to 30 for
// a date in February fails.
func (cd CalendarDate) SetParts(opts ...Part) (CalendarDate, error) {
	p := parts{year: cd.year, month0: cd.month0, day1: cd.day1}
	for _, fn := range opts {
		fn(&p)
	}
	return newCalendarDate(p.year, p.month0, p.day1)
}

// AddDays returns the date n days after cd; n may be negative.
// ErrOutOfRange is returned if the result precedes 1582-10-15 or is
// later than the last day of MaxYear.
func (cd CalendarDate) AddDays(n int) (CalendarDate, error) {
	// Both bounds are exact since all midnights are whole days apart.
	lo, hi := (firstUnix-cd.unix)/secondsPerDay, (lastUnix-cd.unix)/secondsPerDay
	if int64(n) < lo || int64(n) > hi {
		return CalendarDate{}, fmt.Errorf("%v %+d days: %w", cd, n, ErrOutOfRange)
	}
	return FromUTCDate(time.Unix(cd.unix+int64(n)*secondsPerDay, 0))
}

// DaysSince returns the number of days from other to cd, which is
// negative when other is later than cd.
func (cd CalendarDate) DaysSince(other CalendarDate) int {
	return int((cd.unix - other.unix) / secondsPerDay)
}

// Compare returns -1, 0 or +1 depending on whether cd is before, the same
// as, or after other.
func (cd CalendarDate) Compare(other CalendarDate) int {
	switch {
	case cd.year != other.year:
		return sign(cd.year - other.year)
	case cd.month0 != other.month0:
		return sign(cd.month0 - other.month0)
	}
	return sign(cd.day1 - other.day1)
}

// Before returns true if cd is before other.
func (cd CalendarDate) Before(other CalendarDate) bool {
	return cd.Compare(other) < 0
}

// After returns true if cd is after other.
func (cd CalendarDate) After(other CalendarDate) bool {
	return cd.Compare(other) > 0
}

// Equal returns true if cd and other are the same date.
func (cd CalendarDate) Equal(other CalendarDate) bool {
	return cd.Compare(other) == 0
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// MidnightUTC returns the time at 00:00:00 UTC on cd.
func (cd CalendarDate) MidnightUTC() time.Time {
	return time.Unix(cd.unix, 0).UTC()
}

// MidnightLocal returns the time at 00:00:00 local time on cd. If
// midnight does not exist, or occurs twice, on cd because of a daylight
// saving transition, the result is that returned by time.Date.
func (cd CalendarDate) MidnightLocal() time.Time {
	return time.Date(cd.year, cd.Month(), cd.day1, 0, 0, 0, 0, time.Local)
}

// Week returns the ISO 8601 calendar week that contains cd.
func (cd CalendarDate) Week() (CalendarWeek, error) {
	return FromCalendarDate(cd)
}

// String returns the date formatted as YYYY-MM-DD.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.year, cd.month0+1, cd.day1)
}

// GoString implements fmt.GoStringer.
func (cd CalendarDate) GoString() string {
	return "<CalendarDate " + cd.String() + ">"
}

// LogValue implements slog.LogValuer.
func (cd CalendarDate) LogValue() slog.Value {
	return slog.StringValue(cd.String())
}

// MarshalText implements encoding.TextMarshaler.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return []byte(cd.String()), nil
}
