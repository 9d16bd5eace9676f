package iso8601_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jacoelho/iso8601"
	isoerrors "github.com/jacoelho/iso8601/errors"
)

type fields struct {
	year, month, day, hour, minute, second, microsecond int
}

func fieldsOf(ts iso8601.Timestamp) fields {
	return fields{
		ts.Year(), ts.Month(), ts.Day(),
		ts.Hour(), ts.Minute(), ts.Second(), ts.Microsecond(),
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want fields
	}{
		{name: "basic date", in: "20211231", want: fields{2021, 12, 31, 0, 0, 0, 0}},
		{name: "extended date", in: "2021-12-31", want: fields{2021, 12, 31, 0, 0, 0, 0}},
		{name: "ordinal date", in: "1981095", want: fields{1981, 4, 5, 0, 0, 0, 0}},
		{name: "extended ordinal", in: "1981-095T12", want: fields{1981, 4, 5, 12, 0, 0, 0}},
		{name: "basic time", in: "20211231T211031", want: fields{2021, 12, 31, 21, 10, 31, 0}},
		{name: "extended time", in: "2021-12-31T21:10:31", want: fields{2021, 12, 31, 21, 10, 31, 0}},
		{name: "hour fraction", in: "2019-12-18T21.577", want: fields{2019, 12, 18, 21, 34, 37, 200000}},
		{name: "second fraction", in: "2019-12-18T21:10:31.5", want: fields{2019, 12, 18, 21, 10, 31, 500000}},
		{name: "fraction below next second", in: "2021-01-01T00:00:59.9999999999996", want: fields{2021, 1, 1, 0, 0, 59, 999999}},
		{name: "empty time", in: "2019-12-18T", want: fields{2019, 12, 18, 0, 0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := iso8601.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, fieldsOf(ts))
			require.True(t, ts.Zone().IsNaive())
		})
	}
}

func TestParseTimezones(t *testing.T) {
	ts, err := iso8601.Parse("2021-01-01T00:00:00Z")
	require.NoError(t, err)
	require.True(t, ts.Zone().IsUTC())
	offset, ok := ts.Zone().Offset()
	require.True(t, ok)
	require.Zero(t, offset)

	ts, err = iso8601.Parse("2021-01-01T00:00:00+05:30")
	require.NoError(t, err)
	offset, ok = ts.Zone().Offset()
	require.True(t, ok)
	require.Equal(t, 5*time.Hour+30*time.Minute, offset)

	ts, err = iso8601.Parse("20210101T000000-0800")
	require.NoError(t, err)
	offset, _ = ts.Zone().Offset()
	require.Equal(t, -8*time.Hour, offset)

	ts, err = iso8601.Parse("2021-01-01T12-03")
	require.NoError(t, err)
	require.Equal(t, 12, ts.Hour())
	offset, _ = ts.Zone().Offset()
	require.Equal(t, -3*time.Hour, offset)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind isoerrors.Kind
		code isoerrors.ErrorCode
	}{
		{name: "empty", in: "", kind: isoerrors.KindFormat, code: isoerrors.ErrEmptyTimestamp},
		{name: "empty date", in: "T12:00", kind: isoerrors.KindFormat, code: isoerrors.ErrEmptyDate},
		{name: "two separators", in: "2021-01-01T12T13", kind: isoerrors.KindFormat, code: isoerrors.ErrDateTimeSeparator},
		{name: "two timezones", in: "2021-01-01T12:00+01:00-02:00", kind: isoerrors.KindFormat, code: isoerrors.ErrTimezoneFormat},
		{name: "text after z", in: "2021-01-01T12:00Z05", kind: isoerrors.KindFormat, code: isoerrors.ErrTimezoneFormat},
		{name: "offset seconds", in: "2021-01-01T12:00+05:30:00", kind: isoerrors.KindFormat, code: isoerrors.ErrSecondsNotAllowed},
		{name: "unpadded ordinal", in: "1981-95", kind: isoerrors.KindFormat, code: isoerrors.ErrLeadingZeroes},
		{name: "unpadded time", in: "2021-01-01T1:00", kind: isoerrors.KindFormat, code: isoerrors.ErrLeadingZeroes},
		{name: "hour out of range", in: "2021-01-01T24", kind: isoerrors.KindRange, code: isoerrors.ErrOutOfRange},
		{name: "day out of range", in: "2021-02-30", kind: isoerrors.KindRange, code: isoerrors.ErrOutOfRange},
		{name: "offset out of range", in: "2021-01-01T12:00+24:00", kind: isoerrors.KindRange, code: isoerrors.ErrOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := iso8601.Parse(tc.in)
			require.Error(t, err)
			pe, ok := isoerrors.AsParseError(err)
			require.True(t, ok, "error %v is not a parse error", err)
			require.Equal(t, tc.kind, pe.Kind, "error %v", err)
			require.Equal(t, string(tc.code), pe.Code, "error %v", err)
		})
	}
}

func TestParseWithOptionsLenient(t *testing.T) {
	opts := iso8601.NewOptions().WithForceLeadingZeroes(false)
	require.False(t, opts.ForceLeadingZeroes())

	ts, err := iso8601.ParseWithOptions("1981-4-5T1:2:3+5:30", opts)
	require.NoError(t, err)
	require.Equal(t, fields{1981, 4, 5, 1, 2, 3, 0}, fieldsOf(ts))
	offset, _ := ts.Zone().Offset()
	require.Equal(t, 5*time.Hour+30*time.Minute, offset)

	_, err = iso8601.Parse("1981-4-5T1:2:3+5:30")
	require.True(t, isoerrors.IsKind(err, isoerrors.KindFormat))
}

func TestParseValue(t *testing.T) {
	ts, err := iso8601.ParseValue("2021-01-01", iso8601.NewOptions())
	require.NoError(t, err)
	require.Equal(t, 2021, ts.Year())

	ts, err = iso8601.ParseValue([]byte("20210102"), iso8601.NewOptions())
	require.NoError(t, err)
	require.Equal(t, 2, ts.Day())

	_, err = iso8601.ParseValue(20210101, iso8601.NewOptions())
	require.True(t, isoerrors.IsKind(err, isoerrors.KindType))
}

func TestParseDate(t *testing.T) {
	d, err := iso8601.ParseDate("1981095")
	require.NoError(t, err)
	require.Equal(t, iso8601.Date{Year: 1981, Month: 4, Day: 5}, d)

	d, err = iso8601.ParseDate("1981-095")
	require.NoError(t, err)
	require.Equal(t, iso8601.Date{Year: 1981, Month: 4, Day: 5}, d)

	_, err = iso8601.ParseDate("1981-95")
	require.True(t, isoerrors.IsKind(err, isoerrors.KindFormat))

	d, err = iso8601.ParseDateWithOptions("1981-95", iso8601.NewOptions().WithForceLeadingZeroes(false))
	require.NoError(t, err)
	require.Equal(t, iso8601.Date{Year: 1981, Month: 4, Day: 5}, d)
}

func TestParseTime(t *testing.T) {
	p, err := iso8601.ParseTime("211031")
	require.NoError(t, err)
	require.Equal(t, iso8601.TimeParams{Hour: 21, Minute: 10, Second: 31, Last: iso8601.UnitSecond}, p)
	require.False(t, p.Has(iso8601.UnitMicrosecond))

	_, err = iso8601.ParseTime("60")
	require.True(t, isoerrors.IsKind(err, isoerrors.KindRange))

	_, err = iso8601.ParseTimeWithOptions("21:10:31", iso8601.NewOptions().WithAllowSeconds(false))
	pe, ok := isoerrors.AsParseError(err)
	require.True(t, ok)
	require.Equal(t, string(isoerrors.ErrSecondsNotAllowed), pe.Code)
}

func TestTimestampTime(t *testing.T) {
	ts, err := iso8601.Parse("2021-01-01T10:00:00.25+05:30")
	require.NoError(t, err)
	got := ts.Time()
	want := time.Date(2021, 1, 1, 4, 30, 0, 250*int(time.Millisecond), time.UTC)
	require.True(t, got.Equal(want), "Time() = %v, want %v", got, want)
	_, offset := got.Zone()
	require.Equal(t, 5*3600+30*60, offset)

	naive, err := iso8601.Parse("2021-01-01T10:00")
	require.NoError(t, err)
	require.Equal(t, time.UTC, naive.Time().Location())
}

func TestTimestampFormat(t *testing.T) {
	tests := []struct {
		in       string
		extended string
		basic    string
	}{
		{in: "2021-01-01", extended: "2021-01-01T00:00:00", basic: "20210101T000000"},
		{in: "2019-12-18T21.577Z", extended: "2019-12-18T21:34:37.200000Z", basic: "20191218T213437.200000Z"},
		{in: "2021-01-01T10:00-03:30", extended: "2021-01-01T10:00:00-03:30", basic: "20210101T100000-0330"},
		{in: "2021-01-01T10:00+00:00", extended: "2021-01-01T10:00:00+00:00", basic: "20210101T100000+0000"},
	}

	for _, tc := range tests {
		ts, err := iso8601.Parse(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.extended, ts.String())
		require.Equal(t, tc.basic, ts.Format(iso8601.LayoutBasic))
	}
}

func TestTimestampEqual(t *testing.T) {
	utc, err := iso8601.Parse("2021-01-01T00:00Z")
	require.NoError(t, err)
	zero, err := iso8601.Parse("20210101T0000+00")
	require.NoError(t, err)
	naive, err := iso8601.Parse("2021-01-01")
	require.NoError(t, err)

	require.True(t, utc.Equal(zero))
	require.False(t, utc.Equal(naive))
	require.True(t, naive.Equal(naive))
}

func TestTimestampTextRoundTrip(t *testing.T) {
	ts, err := iso8601.Parse("2019-12-18T21.577-01:00")
	require.NoError(t, err)

	text, err := ts.MarshalText()
	require.NoError(t, err)

	var back iso8601.Timestamp
	require.NoError(t, back.UnmarshalText(text))
	require.True(t, ts.Equal(back), "round trip %s -> %s", ts, back)

	require.Error(t, back.UnmarshalText([]byte("not a timestamp")))
}

func TestReparseIsIdempotent(t *testing.T) {
	inputs := []string{
		"2019-12-18T21.577",
		"2021-01-01T00:00:00Z",
		"2021-01-01T00:00:00+05:30",
		"1981095T235959.999999-12:00",
		"2020-366T00:00:00.000001",
		"20211231T2359.99",
	}
	for _, in := range inputs {
		ts, err := iso8601.Parse(in)
		require.NoError(t, err, in)
		for _, layout := range []iso8601.Layout{iso8601.LayoutExtended, iso8601.LayoutBasic} {
			again, err := iso8601.Parse(ts.Format(layout))
			require.NoError(t, err, ts.Format(layout))
			require.True(t, ts.Equal(again), "%s reparsed as %s", ts.Format(layout), again)
		}
	}
}
