package iso8601

import (
	"fmt"
	"strconv"
	"time"
)

type zoneKind uint8

const (
	zoneNaive zoneKind = iota
	zoneUTC
	zoneFixed
)

// Zone is the timezone of a Timestamp: naive (no designator), UTC ('Z'),
// or a fixed offset from UTC.
type Zone struct {
	offset time.Duration
	kind   zoneKind
}

// UTC is the zone of timestamps ending in 'Z'.
var UTC = Zone{kind: zoneUTC}

// FixedZone returns a zone offset from UTC by d.
func FixedZone(d time.Duration) Zone {
	return Zone{kind: zoneFixed, offset: d}
}

// IsNaive reports whether the timestamp carried no timezone designator.
func (z Zone) IsNaive() bool { return z.kind == zoneNaive }

// IsUTC reports whether the zone was written as 'Z'.
func (z Zone) IsUTC() bool { return z.kind == zoneUTC }

// Offset returns the offset from UTC and false for naive zones.
func (z Zone) Offset() (time.Duration, bool) {
	if z.kind == zoneNaive {
		return 0, false
	}
	return z.offset, true
}

// Equal reports whether both zones are naive or both have the same offset.
// 'Z' and +00:00 are equal.
func (z Zone) Equal(other Zone) bool {
	if z.IsNaive() || other.IsNaive() {
		return z.IsNaive() == other.IsNaive()
	}
	return z.offset == other.offset
}

// Location converts the zone to a time.Location. Naive zones map to UTC.
func (z Zone) Location() *time.Location {
	if z.kind == zoneFixed {
		return time.FixedZone("", int(z.offset/time.Second))
	}
	return time.UTC
}

// String returns "" for naive zones, "Z" for UTC, and ±hh:mm otherwise.
func (z Zone) String() string {
	return string(z.appendDesignator(nil, true))
}

func (z Zone) appendDesignator(b []byte, extended bool) []byte {
	switch z.kind {
	case zoneNaive:
		return b
	case zoneUTC:
		return append(b, 'Z')
	}
	d := z.offset
	sign := byte('+')
	if d < 0 {
		sign = '-'
		d = -d
	}
	b = append(b, sign)
	b = appendPadded(b, int(d/time.Hour), 2)
	if extended {
		b = append(b, ':')
	}
	return appendPadded(b, int(d%time.Hour/time.Minute), 2)
}

// Timestamp is a parsed ISO-8601 date and time. It is immutable; use the
// accessors to read its fields.
type Timestamp struct {
	zone        Zone
	year        int
	month       int
	day         int
	hour        int
	minute      int
	second      int
	microsecond int
}

// Year returns the year, 1 through 9999.
func (t Timestamp) Year() int { return t.year }

// Month returns the month, 1 through 12.
func (t Timestamp) Month() int { return t.month }

// Day returns the day of the month.
func (t Timestamp) Day() int { return t.day }

// Hour returns the hour, 0 through 23. Time components absent from the input read as zero.
func (t Timestamp) Hour() int { return t.hour }

// Minute returns the minute, 0 through 59.
func (t Timestamp) Minute() int { return t.minute }

// Second returns the second, 0 through 59.
func (t Timestamp) Second() int { return t.second }

// Microsecond returns the microsecond, 0 through 999999.
func (t Timestamp) Microsecond() int { return t.microsecond }

// Zone returns the timezone designator of t; it is naive when the input had none.
func (t Timestamp) Zone() Zone { return t.zone }

// Date returns the calendar date of t.
func (t Timestamp) Date() Date {
	return Date{Year: t.year, Month: t.month, Day: t.day}
}

// Time converts t to a time.Time. Naive timestamps are interpreted as UTC.
func (t Timestamp) Time() time.Time {
	return time.Date(t.year, time.Month(t.month), t.day, t.hour, t.minute, t.second,
		t.microsecond*int(time.Microsecond), t.zone.Location())
}

// Equal reports whether t and u have the same fields and equal zones.
func (t Timestamp) Equal(u Timestamp) bool {
	return t.year == u.year && t.month == u.month && t.day == u.day &&
		t.hour == u.hour && t.minute == u.minute && t.second == u.second &&
		t.microsecond == u.microsecond && t.zone.Equal(u.zone)
}

// Layout selects the representation written by Format.
type Layout uint8

const (
	// LayoutExtended writes YYYY-MM-DDThh:mm:ss[.ffffff][Z|±hh:mm].
	LayoutExtended Layout = iota
	// LayoutBasic writes YYYYMMDDThhmmss[.ffffff][Z|±hhmm].
	LayoutBasic
)

// Format writes t in the given layout. The result parses back to an equal Timestamp.
func (t Timestamp) Format(layout Layout) string {
	return string(t.AppendFormat(make([]byte, 0, 32), layout))
}

// AppendFormat is like Format but appends to b.
func (t Timestamp) AppendFormat(b []byte, layout Layout) []byte {
	extended := layout == LayoutExtended
	b = appendPadded(b, t.year, 4)
	if extended {
		b = append(b, '-')
	}
	b = appendPadded(b, t.month, 2)
	if extended {
		b = append(b, '-')
	}
	b = appendPadded(b, t.day, 2)
	b = append(b, 'T')
	b = appendPadded(b, t.hour, 2)
	if extended {
		b = append(b, ':')
	}
	b = appendPadded(b, t.minute, 2)
	if extended {
		b = append(b, ':')
	}
	b = appendPadded(b, t.second, 2)
	if t.microsecond != 0 {
		b = append(b, '.')
		b = appendPadded(b, t.microsecond, 6)
	}
	return t.zone.appendDesignator(b, extended)
}

// String returns t in the extended layout.
func (t Timestamp) String() string {
	return t.Format(LayoutExtended)
}

// MarshalText implements encoding.TextMarshaler using the extended layout.
func (t Timestamp) MarshalText() ([]byte, error) {
	return t.AppendFormat(make([]byte, 0, 32), LayoutExtended), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the default options.
func (t *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshal timestamp: %w", err)
	}
	*t = parsed
	return nil
}

func appendPadded(b []byte, v, width int) []byte {
	var buf [20]byte
	s := strconv.AppendInt(buf[:0], int64(v), 10)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}
