package iso8601

type boolOption struct {
	value bool
	set   bool
}

func (o boolOption) resolved(def bool) bool {
	if !o.set {
		return def
	}
	return o.value
}

// Options configures parsing. The zero value applies the defaults:
// zero-padded extended groups are required and seconds are allowed.
type Options struct {
	forceLeadingZeroes boolOption
	allowSeconds       boolOption
}

type resolvedOptions struct {
	forceLeadingZeroes bool
	allowSeconds       bool
}

// NewOptions returns the default options value.
func NewOptions() Options {
	return Options{}
}

// WithForceLeadingZeroes controls whether extended-format groups must be
// zero-padded (YYYY, MM, DD, DDD, hh, mm, ss). Basic formats are always fixed width.
func (o Options) WithForceLeadingZeroes(value bool) Options {
	o.forceLeadingZeroes = boolOption{value: value, set: true}
	return o
}

// WithAllowSeconds controls whether ParseTimeWithOptions accepts a seconds
// component. Timestamps always allow seconds; timezone offsets never do.
func (o Options) WithAllowSeconds(value bool) Options {
	o.allowSeconds = boolOption{value: value, set: true}
	return o
}

// ForceLeadingZeroes reports the effective leading-zero policy.
func (o Options) ForceLeadingZeroes() bool {
	return o.resolved().forceLeadingZeroes
}

// AllowSeconds reports the effective seconds policy for time parsing.
func (o Options) AllowSeconds() bool {
	return o.resolved().allowSeconds
}

func (o Options) resolved() resolvedOptions {
	return resolvedOptions{
		forceLeadingZeroes: o.forceLeadingZeroes.resolved(true),
		allowSeconds:       o.allowSeconds.resolved(true),
	}
}
