// Package timelex parses the time segment of an ISO-8601 timestamp and the
// offset part of a timezone designator.
//
// Supported layouts, each optionally followed by a decimal fraction that
// applies to its finest component:
//
//	hh, hhmm, hhmmss        basic
//	hh:mm, hh:mm:ss         extended
package timelex

import (
	"strconv"
	"strings"

	isoerrors "github.com/jacoelho/iso8601/errors"
	"github.com/jacoelho/iso8601/internal/digits"
)

const (
	// Separator divides extended time values.
	Separator = ":"
	// DecimalMark introduces a decimal fraction.
	DecimalMark = "."
)

// Options controls time parsing.
type Options struct {
	// Strict requires two-character groups in the extended layout.
	Strict bool
	// AllowSeconds permits a seconds component. Timezone offsets disallow it.
	AllowSeconds bool
}

// Parse parses a time segment into Params.
func Parse(s string, opts Options) (Params, error) {
	body, fraction, err := splitFraction(s)
	if err != nil {
		return Params{}, err
	}

	var groups []string
	switch strings.Count(body, Separator) {
	case 0:
		switch len(body) {
		case 2, 4, 6:
			groups = digits.Chunks(body, 2)
		default:
			return Params{}, isoerrors.NewFormat(isoerrors.ErrTimeFormat,
				"incorrectly formatted basic time format", s)
		}
	case 1, 2:
		groups = strings.Split(body, Separator)
		if opts.Strict {
			for i, g := range groups {
				if len(g) != 2 {
					return Params{}, isoerrors.NewFormatf(isoerrors.ErrLeadingZeroes, s,
						"time %s has to have 2 chars", Unit(i+1))
				}
			}
		}
	default:
		return Params{}, isoerrors.NewFormat(isoerrors.ErrTimeFormat,
			"too many time value separators", s)
	}

	var p Params
	for i, g := range groups {
		u := Unit(i + 1)
		n, ok := digits.Parse(g)
		if !ok {
			return Params{}, isoerrors.NewFormatf(isoerrors.ErrDigits, s, "time %s %q is not a number", u, g)
		}
		p.set(u, n)
	}

	if !opts.AllowSeconds && p.Has(UnitSecond) {
		return Params{}, isoerrors.NewFormat(isoerrors.ErrSecondsNotAllowed, "seconds are not allowed", s)
	}
	if fraction != 0 {
		cascade(&p, fraction)
		if !opts.AllowSeconds && (p.Second != 0 || p.Microsecond != 0) {
			return Params{}, isoerrors.NewFormat(isoerrors.ErrSecondsNotAllowed,
				"decimal fraction produces seconds where they are not allowed", s)
		}
	}

	if err := checkRange(p, s); err != nil {
		return Params{}, err
	}
	return p, nil
}

// splitFraction separates the decimal fraction from the time body.
func splitFraction(s string) (string, float64, error) {
	body, frac, found := strings.Cut(s, DecimalMark)
	if !found {
		return s, 0, nil
	}
	if strings.Contains(frac, DecimalMark) {
		return "", 0, isoerrors.NewFormat(isoerrors.ErrDecimalFraction, "too many decimal fractions", s)
	}
	if !digits.All(frac) {
		return "", 0, isoerrors.NewFormatf(isoerrors.ErrDecimalFraction, s, "invalid decimal fraction %q", frac)
	}
	r, err := strconv.ParseFloat("0."+frac, 64)
	if err != nil {
		return "", 0, isoerrors.NewFormatf(isoerrors.ErrDecimalFraction, s, "invalid decimal fraction %q", frac)
	}
	return body, r, nil
}

func checkRange(p Params, input string) error {
	for u := UnitHour; u <= p.Last; u++ {
		v, _ := p.Get(u)
		if v < 0 || v > u.Max() {
			return isoerrors.NewRange(u.String(), v, 0, u.Max(), input)
		}
	}
	return nil
}
