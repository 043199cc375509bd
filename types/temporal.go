// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package types

import (
	"strings"
	"time"

	"github.com/reifydb/reifydb/diag"
)

// Date is the integral representation of a date: days since the Unix
// epoch (1970-01-01), signed so dates before the epoch are representable.
type Date int32

// DateTime is the integral representation of an instant: seconds since the
// Unix epoch plus a nanosecond remainder in [0, 1e9).
type DateTime struct {
	Seconds int64
	Nanos   uint32
}

// Time is the integral representation of a time-of-day: nanoseconds since
// midnight, always non-negative.
type Time uint64

// Interval is the integral representation of a calendar interval: a
// months/days/nanos triple, matching how calendar arithmetic (month-aware)
// differs from a fixed-duration nanosecond count.
type Interval struct {
	Months int32
	Days   int32
	Nanos  int64
}

const secondsPerDay = 86400

// DateFromTime truncates t (interpreted in UTC) to a Date.
func DateFromTime(t time.Time) Date {
	t = t.UTC()
	days := t.Unix() / secondsPerDay
	if t.Unix()%secondsPerDay < 0 {
		days--
	}
	return Date(days)
}

// Time returns the Date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Unix(int64(d)*secondsPerDay, 0).UTC()
}

// DateTimeFromTime converts t to the seconds+nanos representation.
func DateTimeFromTime(t time.Time) DateTime {
	t = t.UTC()
	return DateTime{Seconds: t.Unix(), Nanos: uint32(t.Nanosecond())}
}

// Time returns the DateTime as a time.Time in UTC.
func (dt DateTime) Time() time.Time {
	return time.Unix(dt.Seconds, int64(dt.Nanos)).UTC()
}

// TimeFromTime extracts the nanos-since-midnight component of t.
func TimeFromTime(t time.Time) Time {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Time(t.Sub(midnight).Nanoseconds())
}

// ParseDate parses an RFC 3339 date ("2006-01-02"). Parsing is delegated to
// the standard library's time package: no third-party calendar-parsing
// library in the example pack improves on it for a fixed ISO-8601 layout.
func ParseDate(s string) (Date, *diag.Diagnostic) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return 0, diag.New(diag.CodeParseTemporal, "invalid date literal: "+err.Error()).
			WithFragment(diag.Fragment{Text: s})
	}
	return DateFromTime(t), nil
}

// ParseDateTime parses an RFC 3339 timestamp.
func ParseDateTime(s string) (DateTime, *diag.Diagnostic) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return DateTime{}, diag.New(diag.CodeParseTemporal, "invalid datetime literal: "+err.Error()).
			WithFragment(diag.Fragment{Text: s})
	}
	return DateTimeFromTime(t), nil
}

// ParseTime parses a time-of-day ("15:04:05.999999999").
func ParseTime(s string) (Time, *diag.Diagnostic) {
	t, err := time.Parse("15:04:05.999999999", strings.TrimSpace(s))
	if err != nil {
		return 0, diag.New(diag.CodeParseTemporal, "invalid time literal: "+err.Error()).
			WithFragment(diag.Fragment{Text: s})
	}
	return TimeFromTime(t), nil
}
