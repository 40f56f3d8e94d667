// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package julianday provides conversions between proleptic Gregorian
// calendar dates and linear day counts: the Julian day number (JDN), the
// continuous count of days since the beginning of the Julian period, and
// the modified Julian day (MJD), the same count offset so that day zero
// falls on November 17, 1858. Conversions use the Fliegel-Van Flandern
// closed-form integer algorithms; there is no floating point, no
// time-of-day component and no timezone handling.
//
// Both conversions are exact inverses of each other over the supported
// range. All intermediate operands remain non-negative, and hence Go's
// truncating integer division coincides with the floor division the
// algorithms assume, for day counts >= -32044 and years >= -4800;
// every date with a non-negative year is well inside that range.
//
// Note that MJD here is a whole-day count offset from JulianDay by
// exactly 2400001, not the astronomical convention of JD - 2400000.5
// with noon-based fractional days. See ModifiedJulianDayOffset.
package julianday

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// JulianDay represents a Julian day number as a signed count of days.
// Consecutive calendar days differ by exactly one and chronological
// order of dates is preserved as numeric order of day counts.
type JulianDay int64

// NewJulianDay creates a new JulianDay from a raw day count. The count
// is not validated; any integer is a structurally valid JulianDay.
func NewJulianDay(days int64) JulianDay {
	return JulianDay(days)
}

// Days returns the raw day count.
func (jd JulianDay) Days() int64 {
	return int64(jd)
}

// JulianDayFromDate returns the Julian day number for the given
// calendar date, interpreted as a proleptic Gregorian date. The date is
// assumed to be valid as per datetime.CalendarDate.
func JulianDayFromDate(cd datetime.CalendarDate) JulianDay {
	year, month, day := int64(cd.Year()), int64(cd.Month()), int64(cd.Day())
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return JulianDay(day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045)
}

// JulianDayFromTime returns the Julian day number for the calendar date
// of the specified time.Time in its location.
func JulianDayFromTime(t time.Time) JulianDay {
	return JulianDayFromDate(datetime.NewCalendarDate(t.Year(), datetime.Month(t.Month()), t.Day()))
}

// Date returns the proleptic Gregorian calendar date for the Julian day
// number. It is the exact inverse of JulianDayFromDate for all day
// counts >= -32044.
func (jd JulianDay) Date() datetime.CalendarDate {
	a := int64(jd) + 32044
	b := (4*a + 3) / 146097
	c := a - b*146097/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day := e - (153*m+2)/5 + 1
	month := m + 3 - 12*(m/10)
	year := b*100 + d - 4800 + m/10
	return datetime.NewCalendarDate(int(year), datetime.Month(month), int(day))
}

// Time returns midnight at the start of the Julian day's calendar date
// in the specified location.
func (jd JulianDay) Time(loc *time.Location) time.Time {
	cd := jd.Date()
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, loc)
}

// Modified returns the equivalent ModifiedJulianDay.
func (jd JulianDay) Modified() ModifiedJulianDay {
	return ModifiedJulianDay(int64(jd) - ModifiedJulianDayOffset)
}

func (jd JulianDay) String() string {
	return fmt.Sprintf("JD %d", int64(jd))
}
