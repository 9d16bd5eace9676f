// Package datelex parses the date segment of an ISO-8601 timestamp.
//
// Supported layouts:
//
//	YYYYMMDD    basic calendar date
//	YYYYDDD     basic ordinal date
//	YYYY-MM-DD  extended calendar date
//	YYYY-DDD    extended ordinal date
package datelex

import (
	"strings"

	isoerrors "github.com/jacoelho/iso8601/errors"
	"github.com/jacoelho/iso8601/internal/calendar"
	"github.com/jacoelho/iso8601/internal/digits"
)

// Separator divides extended date values.
const Separator = "-"

// Parts is a fully parsed calendar date.
type Parts struct {
	Year  int
	Month int
	Day   int
}

// Parse parses date. When strict is set, extended layouts must carry
// zero-padded groups (YYYY, MM, DD, DDD).
func Parse(date string, strict bool) (Parts, error) {
	switch strings.Count(date, Separator) {
	case 0:
		return parseBasic(date)
	case 1:
		year, ordinal, _ := strings.Cut(date, Separator)
		if strict {
			if err := checkYearLength(year, date); err != nil {
				return Parts{}, err
			}
			if len(ordinal) != 3 {
				return Parts{}, isoerrors.NewFormat(isoerrors.ErrLeadingZeroes,
					"ordinal date has to have 3 chars in format DDD", date)
			}
		}
		return parseOrdinal(year, ordinal, date)
	case 2:
		groups := strings.Split(date, Separator)
		if strict {
			if err := checkYearLength(groups[0], date); err != nil {
				return Parts{}, err
			}
			if len(groups[1]) != 2 {
				return Parts{}, isoerrors.NewFormat(isoerrors.ErrLeadingZeroes,
					"date month has to have 2 chars in format MM", date)
			}
			if len(groups[2]) != 2 {
				return Parts{}, isoerrors.NewFormat(isoerrors.ErrLeadingZeroes,
					"date day has to have 2 chars in format DD", date)
			}
		}
		return parseCalendar(groups[0], groups[1], groups[2], date)
	default:
		return Parts{}, isoerrors.NewFormat(isoerrors.ErrDateFormat,
			"too many date value separators", date)
	}
}

func parseBasic(date string) (Parts, error) {
	switch len(date) {
	case 8:
		return parseCalendar(date[0:4], date[4:6], date[6:8], date)
	case 7:
		return parseOrdinal(date[0:4], date[4:7], date)
	default:
		return Parts{}, isoerrors.NewFormat(isoerrors.ErrDateFormat,
			"invalid basic date format", date)
	}
}

func parseCalendar(yearText, monthText, dayText, input string) (Parts, error) {
	year, err := component(yearText, "year", input)
	if err != nil {
		return Parts{}, err
	}
	month, err := component(monthText, "month", input)
	if err != nil {
		return Parts{}, err
	}
	day, err := component(dayText, "day", input)
	if err != nil {
		return Parts{}, err
	}
	if err := checkYear(year, input); err != nil {
		return Parts{}, err
	}
	if month < 1 || month > 12 {
		return Parts{}, isoerrors.NewRange("month", month, 1, 12, input)
	}
	if !calendar.IsValidDate(year, month, day) {
		return Parts{}, isoerrors.NewRange("day", day, 1, calendar.DaysIn(year, month), input)
	}
	return Parts{Year: year, Month: month, Day: day}, nil
}

func parseOrdinal(yearText, ordinalText, input string) (Parts, error) {
	year, err := component(yearText, "year", input)
	if err != nil {
		return Parts{}, err
	}
	ordinal, err := component(ordinalText, "ordinal day", input)
	if err != nil {
		return Parts{}, err
	}
	if err := checkYear(year, input); err != nil {
		return Parts{}, err
	}
	month, day, ok := calendar.OrdinalToMonthDay(year, ordinal)
	if !ok {
		return Parts{}, isoerrors.NewRange("ordinal day", ordinal, 1, calendar.DaysInYear(year), input)
	}
	return Parts{Year: year, Month: month, Day: day}, nil
}

func component(text, name, input string) (int, error) {
	n, ok := digits.Parse(text)
	if !ok {
		return 0, isoerrors.NewFormatf(isoerrors.ErrDigits, input, "date %s %q is not a number", name, text)
	}
	return n, nil
}

func checkYear(year int, input string) error {
	if year < calendar.MinYear || year > calendar.MaxYear {
		return isoerrors.NewRange("year", year, calendar.MinYear, calendar.MaxYear, input)
	}
	return nil
}

func checkYearLength(year, input string) error {
	if len(year) != 4 {
		return isoerrors.NewFormat(isoerrors.ErrLeadingZeroes,
			"date year has to have 4 chars in format YYYY", input)
	}
	return nil
}
