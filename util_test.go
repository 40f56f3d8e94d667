// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package julianday_test

import "cloudeng.io/datetime"

func newCalendarDate(year, month, day int) datetime.CalendarDate {
	return datetime.NewCalendarDate(year, datetime.Month(month), day)
}
