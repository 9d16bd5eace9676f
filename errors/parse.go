package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a parse failure.
type Kind uint8

const (
	// KindFormat marks structurally malformed input.
	KindFormat Kind = iota + 1
	// KindRange marks a numeric component outside its bounds.
	KindRange
	// KindType marks an input value of an unsupported Go type.
	KindType
)

// String returns a stable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindRange:
		return "range"
	case KindType:
		return "type"
	default:
		return "unknown"
	}
}

// ErrorCode identifies the rule a timestamp violated.
type ErrorCode string

const (
	// ErrEmptyTimestamp indicates an empty input string.
	ErrEmptyTimestamp ErrorCode = "iso-empty-timestamp"
	// ErrEmptyDate indicates the date segment before 'T' is empty.
	ErrEmptyDate ErrorCode = "iso-empty-date"
	// ErrDateTimeSeparator indicates more than one 'T' separator.
	ErrDateTimeSeparator ErrorCode = "iso-datetime-separator"
	// ErrDateFormat indicates an unsupported date layout.
	ErrDateFormat ErrorCode = "iso-date-format"
	// ErrTimeFormat indicates an unsupported time layout.
	ErrTimeFormat ErrorCode = "iso-time-format"
	// ErrLeadingZeroes indicates an extended-format group without zero padding.
	ErrLeadingZeroes ErrorCode = "iso-leading-zeroes"
	// ErrDigits indicates a component that is empty or not made of ASCII digits.
	ErrDigits ErrorCode = "iso-digits"
	// ErrDecimalFraction indicates a malformed or repeated decimal fraction.
	ErrDecimalFraction ErrorCode = "iso-decimal-fraction"
	// ErrTimezoneFormat indicates a malformed timezone designator.
	ErrTimezoneFormat ErrorCode = "iso-timezone-format"
	// ErrSecondsNotAllowed indicates seconds where only hours and minutes are allowed.
	ErrSecondsNotAllowed ErrorCode = "iso-seconds-not-allowed"
	// ErrOutOfRange indicates a component outside its allowed range.
	ErrOutOfRange ErrorCode = "iso-out-of-range"
	// ErrUnsupportedType indicates a non-string input value.
	ErrUnsupportedType ErrorCode = "iso-unsupported-type"
)

// ParseError describes why a timestamp, date, or time could not be parsed.
// Range failures carry the offending unit and its bounds.
type ParseError struct {
	Code    string
	Message string
	Input   string
	Unit    string
	Kind    Kind
	Value   int
	Min     int
	Max     int
}

// Error formats the failure with its code, message, and context.
func (e *ParseError) Error() string {
	if e == nil {
		return "parse error <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.Kind == KindRange && e.Unit != "" {
		b.WriteString(fmt.Sprintf(" (%s %d not in %d..%d)", e.Unit, e.Value, e.Min, e.Max))
	}
	if e.Input != "" {
		b.WriteString(fmt.Sprintf(" in %q", e.Input))
	}
	return b.String()
}

// NewFormat builds a format error.
func NewFormat(code ErrorCode, msg, input string) *ParseError {
	return &ParseError{Code: string(code), Kind: KindFormat, Message: msg, Input: input}
}

// NewFormatf formats a message and builds a format error.
func NewFormatf(code ErrorCode, input, format string, args ...any) *ParseError {
	return NewFormat(code, fmt.Sprintf(format, args...), input)
}

// NewRange builds a range error for unit holding value outside [lo, hi].
func NewRange(unit string, value, lo, hi int, input string) *ParseError {
	return &ParseError{
		Code:    string(ErrOutOfRange),
		Kind:    KindRange,
		Message: "invalid " + unit,
		Input:   input,
		Unit:    unit,
		Value:   value,
		Min:     lo,
		Max:     hi,
	}
}

// NewType builds a type error for an unsupported input value.
func NewType(v any) *ParseError {
	return &ParseError{
		Code:    string(ErrUnsupportedType),
		Kind:    KindType,
		Message: fmt.Sprintf("timestamp has to be a string, got %T", v),
	}
}

// AsParseError extracts a parse error from err.
func AsParseError(err error) (*ParseError, bool) {
	if err == nil {
		return nil, false
	}
	var pe *ParseError
	if errors.As(err, &pe) && pe != nil {
		return pe, true
	}
	return nil, false
}

// IsKind reports whether err carries a parse error of the given kind.
func IsKind(err error, kind Kind) bool {
	pe, ok := AsParseError(err)
	return ok && pe.Kind == kind
}
