// Package tzoffset builds timezone offsets from ISO-8601 designators.
package tzoffset

import (
	"time"

	isoerrors "github.com/jacoelho/iso8601/errors"
	"github.com/jacoelho/iso8601/internal/timelex"
)

// Designator markers.
const (
	UTC   = 'Z'
	Plus  = '+'
	Minus = '-'
)

// Markers lists every byte that introduces a timezone designator.
const Markers = string(UTC) + string(Plus) + string(Minus)

// Offset is a parsed timezone designator.
type Offset struct {
	Duration time.Duration
	UTC      bool
}

// Parse builds an Offset from a marker and the text that follows it.
// 'Z' must stand alone; '+' and '-' take an hh, hhmm, or hh:mm offset.
func Parse(marker byte, offset string, strict bool) (Offset, error) {
	switch marker {
	case UTC:
		if offset != "" {
			return Offset{}, isoerrors.NewFormatf(isoerrors.ErrTimezoneFormat, offset,
				"unexpected text after %c designator", UTC)
		}
		return Offset{UTC: true}, nil
	case Plus, Minus:
		p, err := timelex.Parse(offset, timelex.Options{Strict: strict})
		if err != nil {
			return Offset{}, err
		}
		d := time.Duration(p.Hour)*time.Hour + time.Duration(p.Minute)*time.Minute
		if marker == Minus {
			d = -d
		}
		return Offset{Duration: d}, nil
	default:
		return Offset{}, isoerrors.NewFormatf(isoerrors.ErrTimezoneFormat, string(marker),
			"unknown timezone designator %q", marker)
	}
}
