// Package iso8601 parses ISO-8601 timestamps.
//
// Accepted syntax:
//
//	timestamp := date ["T" time]
//	date      := YYYYMMDD | YYYYDDD | YYYY-MM-DD | YYYY-DDD
//	time      := body ["Z" | ("+"|"-") offset]
//	body      := hh | hhmm | hhmmss | hh:mm[:ss], each with an optional ".fraction"
//	offset    := body without seconds
//
// A decimal fraction applies to the finest component written and is spread
// over the finer ones: 21.577 reads as 21:34:37.200000.
//
// All functions are pure and safe for concurrent use.
package iso8601

import (
	"strings"

	isoerrors "github.com/jacoelho/iso8601/errors"
	"github.com/jacoelho/iso8601/internal/datelex"
	"github.com/jacoelho/iso8601/internal/timelex"
	"github.com/jacoelho/iso8601/internal/tzoffset"
)

// DateTimeSeparator divides the date and time segments.
const DateTimeSeparator = "T"

// Date is a calendar date produced by ParseDate.
type Date = datelex.Parts

// TimeParams holds the time components produced by ParseTime.
type TimeParams = timelex.Params

// TimeUnit names a component of TimeParams.
type TimeUnit = timelex.Unit

// Time units from coarsest to finest. TimeParams.Last holds the finest unit
// present in the input, or UnitNone for an empty time.
const (
	UnitNone        = timelex.UnitNone
	UnitHour        = timelex.UnitHour
	UnitMinute      = timelex.UnitMinute
	UnitSecond      = timelex.UnitSecond
	UnitMicrosecond = timelex.UnitMicrosecond
)

// Parse parses an ISO-8601 timestamp with the default options.
func Parse(timestamp string) (Timestamp, error) {
	return ParseWithOptions(timestamp, NewOptions())
}

// ParseWithOptions parses an ISO-8601 timestamp. The seconds policy of opts
// does not apply here: timestamps always accept seconds.
func ParseWithOptions(timestamp string, opts Options) (Timestamp, error) {
	if timestamp == "" {
		return Timestamp{}, isoerrors.NewFormat(isoerrors.ErrEmptyTimestamp,
			"timestamp has to be a non-empty string", "")
	}
	strict := opts.resolved().forceLeadingZeroes

	date, clock, hasClock := strings.Cut(timestamp, DateTimeSeparator)
	if date == "" {
		return Timestamp{}, isoerrors.NewFormat(isoerrors.ErrEmptyDate,
			"date part of timestamp cannot be empty", timestamp)
	}
	if hasClock && strings.Contains(clock, DateTimeSeparator) {
		return Timestamp{}, isoerrors.NewFormat(isoerrors.ErrDateTimeSeparator,
			"too many date/time separators", timestamp)
	}

	d, err := datelex.Parse(date, strict)
	if err != nil {
		return Timestamp{}, err
	}
	ts := Timestamp{year: d.Year, month: d.Month, day: d.Day}
	if clock == "" {
		return ts, nil
	}

	body, zone, err := splitZone(clock, strict)
	if err != nil {
		return Timestamp{}, err
	}
	p, err := timelex.Parse(body, timelex.Options{Strict: strict, AllowSeconds: true})
	if err != nil {
		return Timestamp{}, err
	}
	ts.hour = p.Hour
	ts.minute = p.Minute
	ts.second = p.Second
	ts.microsecond = p.Microsecond
	ts.zone = zone
	return ts, nil
}

// ParseValue parses v as a timestamp. v must be a string or a []byte;
// any other type fails with a type error.
func ParseValue(v any, opts Options) (Timestamp, error) {
	switch s := v.(type) {
	case string:
		return ParseWithOptions(s, opts)
	case []byte:
		return ParseWithOptions(string(s), opts)
	default:
		return Timestamp{}, isoerrors.NewType(v)
	}
}

// ParseDate parses a date segment with the default options.
func ParseDate(date string) (Date, error) {
	return ParseDateWithOptions(date, NewOptions())
}

// ParseDateWithOptions parses a date segment.
func ParseDateWithOptions(date string, opts Options) (Date, error) {
	return datelex.Parse(date, opts.resolved().forceLeadingZeroes)
}

// ParseTime parses a time segment, without timezone, with the default options.
func ParseTime(clock string) (TimeParams, error) {
	return ParseTimeWithOptions(clock, NewOptions())
}

// ParseTimeWithOptions parses a time segment without timezone.
func ParseTimeWithOptions(clock string, opts Options) (TimeParams, error) {
	r := opts.resolved()
	return timelex.Parse(clock, timelex.Options{
		Strict:       r.forceLeadingZeroes,
		AllowSeconds: r.allowSeconds,
	})
}

// splitZone separates the time body from a trailing timezone designator.
func splitZone(clock string, strict bool) (string, Zone, error) {
	i := strings.IndexAny(clock, tzoffset.Markers)
	if i == -1 {
		return clock, Zone{}, nil
	}
	body, rest := clock[:i], clock[i+1:]
	if strings.ContainsAny(rest, tzoffset.Markers) {
		return "", Zone{}, isoerrors.NewFormat(isoerrors.ErrTimezoneFormat, "too many timezones", clock)
	}
	off, err := tzoffset.Parse(clock[i], rest, strict)
	if err != nil {
		return "", Zone{}, err
	}
	if off.UTC {
		return body, UTC, nil
	}
	return body, FixedZone(off.Duration), nil
}
