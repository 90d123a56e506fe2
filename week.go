// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"log/slog"
	"math"
)

// CalendarWeek represents an ISO 8601 calendar week. Weeks start on a
// Monday and week 1 of a year is the week that contains the first
// Thursday of that year, hence the first and last few days of a calendar
// year may belong to a week of the adjacent year.
// A CalendarWeek can only be created from a CalendarDate.
type CalendarWeek struct {
	year      int
	week      int
	firstDate CalendarDate
	lastDate  CalendarDate
}

// FromCalendarDate returns the calendar week containing cd. The three
// days from 1582-10-15 to 1582-10-17 belong to a week whose Monday
// precedes the Gregorian calendar and ErrOutOfRange is returned for them.
// Similarly, ErrOutOfRange is returned for the final days of MaxYear if
// their week ends after MaxYear. Weeks of ISO year 1582 are otherwise
// supported even though 1582-01-01, the New Year's Day from which they
// are numbered, is not a valid CalendarDate.
func FromCalendarDate(cd CalendarDate) (CalendarWeek, error) {
	// Every week has exactly one Thursday and the year that this Thursday
	// falls in is the week's year. Sunday is counted as the 7th day of
	// the week so that the offset lies in [-3, +3].
	dow := cd.DayOfWeek()
	if dow == 0 {
		dow = 7
	}
	thursday, err := cd.AddDays(4 - dow)
	if err != nil {
		return CalendarWeek{}, fmt.Errorf("week of %v: %w", cd, err)
	}
	monday, err := thursday.AddDays(-3)
	if err != nil {
		return CalendarWeek{}, fmt.Errorf("week of %v: %w", cd, err)
	}
	sunday, err := thursday.AddDays(3)
	if err != nil {
		return CalendarWeek{}, fmt.Errorf("week of %v: %w", cd, err)
	}
	// The first Thursday of the year is within 6 days of new year's day.
	// New year's day is not built as a CalendarDate since 1582-01-01
	// precedes the Gregorian calendar.
	sinceNewYear := thursday.MidnightUTC().YearDay() - 1
	sinceFirstThursday := sinceNewYear - sinceNewYear%7
	return CalendarWeek{
		year:      thursday.Year(),
		week:      sinceFirstThursday/7 + 1,
		firstDate: monday,
		lastDate:  sunday,
	}, nil
}

// Year returns the ISO 8601 week-numbering year, which may differ from
// the calendar year of some of the days in the week.
func (cw CalendarWeek) Year() int {
	return cw.year
}

// Week returns the week number, 1-53.
func (cw CalendarWeek) Week() int {
	return cw.week
}

// FirstDate returns the Monday of the week.
func (cw CalendarWeek) FirstDate() CalendarDate {
	return cw.firstDate
}

// LastDate returns the Sunday of the week. It is validated along with
// the rest of the week by FromCalendarDate.
func (cw CalendarWeek) LastDate() CalendarDate {
	return cw.lastDate
}

// Contains returns true if cd falls within the week.
func (cw CalendarWeek) Contains(cd CalendarDate) bool {
	n := cd.DaysSince(cw.firstDate)
	return !cw.IsZero() && n >= 0 && n < 7
}

// IsZero returns true for the zero value.
func (cw CalendarWeek) IsZero() bool {
	return cw.week == 0
}

// AddWeeks returns the week n weeks after cw; n may be negative. The
// result is derived from the date n weeks after the first date of cw
// rather than by adjusting the week number so that years with 52 and 53
// weeks need no special handling.
func (cw CalendarWeek) AddWeeks(n int) (CalendarWeek, error) {
	if n > math.MaxInt/7 || n < math.MinInt/7 {
		return CalendarWeek{}, fmt.Errorf("%v %+d weeks: %w", cw, n, ErrOutOfRange)
	}
	cd, err := cw.firstDate.AddDays(7 * n)
	if err != nil {
		return CalendarWeek{}, err
	}
	return FromCalendarDate(cd)
}

// Compare returns -1, 0 or +1 depending on whether cw is before, the same
// as, or after other.
func (cw CalendarWeek) Compare(other CalendarWeek) int {
	if cw.year != other.year {
		return sign(cw.year - other.year)
	}
	return sign(cw.week - other.week)
}

// String returns the week formatted as YYYY-Www.
func (cw CalendarWeek) String() string {
	return fmt.Sprintf("%04d-W%02d", cw.year, cw.week)
}

// GoString implements fmt.GoStringer.
func (cw CalendarWeek) GoString() string {
	return "<CalendarWeek " + cw.String() + ">"
}

// LogValue implements slog.LogValuer.
func (cw CalendarWeek) LogValue() slog.Value {
	return slog.StringValue(cw.String())
}

// MarshalText implements encoding.TextMarshaler.
func (cw CalendarWeek) MarshalText() ([]byte, error) {
	return []byte(cw.String()), nil
}
