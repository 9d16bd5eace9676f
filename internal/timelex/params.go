package timelex

// Unit names a time component. Units are ordered from coarsest to finest.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitHour
	UnitMinute
	UnitSecond
	UnitMicrosecond
)

type unitBounds struct {
	name string
	max  int
}

var units = [...]unitBounds{
	UnitHour:        {name: "hour", max: 23},
	UnitMinute:      {name: "minute", max: 59},
	UnitSecond:      {name: "second", max: 59},
	UnitMicrosecond: {name: "microsecond", max: 999999},
}

// String returns the unit name.
func (u Unit) String() string {
	if u == UnitNone || int(u) >= len(units) {
		return "none"
	}
	return units[u].name
}

// Max returns the largest value the unit accepts.
func (u Unit) Max() int {
	if u == UnitNone || int(u) >= len(units) {
		return 0
	}
	return units[u].max
}

// next returns the next finer unit, or UnitNone past microseconds.
func (u Unit) next() Unit {
	if u >= UnitMicrosecond {
		return UnitNone
	}
	return u + 1
}

// Params holds parsed time components. Components from UnitHour through Last
// are present; finer ones are absent and read as zero.
type Params struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
	Last        Unit
}

// Has reports whether u was parsed or produced by a decimal fraction.
func (p Params) Has(u Unit) bool {
	return u != UnitNone && u <= p.Last
}

// Get returns the value of u and whether it is present.
func (p Params) Get(u Unit) (int, bool) {
	if !p.Has(u) {
		return 0, false
	}
	return *p.field(u), true
}

// set stores v for u and advances Last when u extends the present prefix.
func (p *Params) set(u Unit, v int) {
	*p.field(u) = v
	if u > p.Last {
		p.Last = u
	}
}

func (p *Params) field(u Unit) *int {
	switch u {
	case UnitHour:
		return &p.Hour
	case UnitMinute:
		return &p.Minute
	case UnitSecond:
		return &p.Second
	case UnitMicrosecond:
		return &p.Microsecond
	default:
		panic("timelex: no field for unit none")
	}
}
