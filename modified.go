// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julianday

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// ModifiedJulianDayOffset relates the two day counts as
// MJD = JD - ModifiedJulianDayOffset, so that ModifiedJulianDay zero and
// JulianDay 2400001 both fall on November 17, 1858. Astronomical systems
// conventionally define MJD as JD - 2400000.5 with noon-based fractional
// Julian dates; this package counts whole days from midnight and uses an
// integer offset of 2400001 instead. Take care when exchanging MJD
// values with systems that follow the half-day convention.
const ModifiedJulianDayOffset = 2400001

// ModifiedJulianDay represents a modified Julian day as a signed count
// of days since November 17, 1858. It shares JulianDay's ordering and
// unit-step invariants, differing only by the fixed offset.
type ModifiedJulianDay int64

// NewModifiedJulianDay creates a new ModifiedJulianDay from a raw day
// count. The count is not validated; any integer is a structurally
// valid ModifiedJulianDay.
func NewModifiedJulianDay(days int64) ModifiedJulianDay {
	return ModifiedJulianDay(days)
}

// Days returns the raw day count.
func (mjd ModifiedJulianDay) Days() int64 {
	return int64(mjd)
}

// ModifiedJulianDayFromDate returns the modified Julian day for the
// given calendar date, interpreted as a proleptic Gregorian date.
func ModifiedJulianDayFromDate(cd datetime.CalendarDate) ModifiedJulianDay {
	return JulianDayFromDate(cd).Modified()
}

// ModifiedJulianDayFromTime returns the modified Julian day for the
// calendar date of the specified time.Time in its location.
func ModifiedJulianDayFromTime(t time.Time) ModifiedJulianDay {
	return JulianDayFromTime(t).Modified()
}

// JulianDay returns the equivalent JulianDay.
func (mjd ModifiedJulianDay) JulianDay() JulianDay {
	return JulianDay(int64(mjd) + ModifiedJulianDayOffset)
}

// Date returns the proleptic Gregorian calendar date for the modified
// Julian day.
func (mjd ModifiedJulianDay) Date() datetime.CalendarDate {
	return mjd.JulianDay().Date()
}

// Time returns midnight at the start of the modified Julian day's
// calendar date in the specified location.
func (mjd ModifiedJulianDay) Time(loc *time.Location) time.Time {
	return mjd.JulianDay().Time(loc)
}

func (mjd ModifiedJulianDay) String() string {
	return fmt.Sprintf("MJD %d", int64(mjd))
}
