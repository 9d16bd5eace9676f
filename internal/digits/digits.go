// Package digits parses unsigned ASCII decimal groups.
package digits

// maxDigits bounds group length so the accumulator cannot overflow int.
const maxDigits = 18

// Parse parses a non-empty string made only of ASCII digits.
func Parse(s string) (int, bool) {
	if s == "" || len(s) > maxDigits {
		return 0, false
	}
	return parseFixed(s, 0, len(s))
}

// parseFixed parses length ASCII digits starting at start.
func parseFixed(s string, start, length int) (int, bool) {
	if start < 0 || length <= 0 || length > maxDigits || start+length > len(s) {
		return 0, false
	}
	n := 0
	for i := 0; i < length; i++ {
		ch := s[start+i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}

// All reports whether s is non-empty and made only of ASCII digits.
func All(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Chunks splits s into consecutive groups of size bytes; the last group may be shorter.
func Chunks(s string, size int) []string {
	if size <= 0 || s == "" {
		return nil
	}
	out := make([]string, 0, (len(s)+size-1)/size)
	for i := 0; i < len(s); i += size {
		end := min(i+size, len(s))
		out = append(out, s[i:end])
	}
	return out
}
