package timelex

import (
	"math"
	"strconv"
)

// fractionPrecision is the number of decimal places kept between cascade steps.
const fractionPrecision = 6

// cascade distributes the fraction r attached to the finest present unit into
// the finer units. 21.577 hours becomes 21:34:37.200000.
func cascade(p *Params, r float64) {
	for cursor := p.Last; r != 0; {
		var scale float64
		switch cursor {
		case UnitHour, UnitMinute:
			scale = 60
		case UnitSecond:
			scale = 1e6
		default:
			return
		}
		cursor = cursor.next()
		raw := scale * r
		scaled := roundFraction(raw)
		if scaled > float64(cursor.Max()) {
			// Rounding must never carry into the coarser unit.
			p.set(cursor, int(math.Floor(raw)))
			return
		}
		whole := math.Floor(scaled)
		p.set(cursor, int(whole))
		r = roundFraction(scaled - whole)
	}
}

// roundFraction rounds v to fractionPrecision decimal places using the exact
// binary value, so 0.6199999999999974 becomes 0.62.
func roundFraction(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', fractionPrecision, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
