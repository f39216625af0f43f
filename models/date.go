// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire and storage representation of a calendar date.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a value cannot be interpreted as a calendar date.
var ErrInvalidDate = errors.New("invalid calendar date")

// Date is a calendar day without a time-of-day component.
//
// Internally it is kept as midnight UTC so that two dates for the same day are
// always equal with ==, regardless of the location the source time.Time was in.
// Date is used as the grouping key throughout the statistics code.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its components. Out-of-range values are
// normalised the same way [time.Date] does (e.g. February 30 becomes March 1/2).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Year, Month and Day return the calendar components of d.
func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Between reports whether d lies in [start, end], both ends inclusive.
func (d Date) Between(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

// String returns the date in [DateLayout] form. It is also the key used
// when dates are grouped into maps.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD" and, for compatibility with clients that
// send full timestamps, RFC 3339 strings (the time of day is dropped).
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	if parsed, err := ParseDate(s); err == nil {
		*d = parsed
		return nil
	}

	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	*d = DateOf(ts)
	return nil
}

// Value implements [driver.Valuer]. Dates are stored as YYYY-MM-DD text so the
// same value works for both the Postgres DATE column and SQLite.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements [sql.Scanner].
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) >= len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
