package navigation

import (
	"math"
	"strconv"
)

// NaN marks an integer that was present in a URL but could not be parsed.
// It is kept in decoded state rather than dropped, and is never encoded.
const NaN = math.MinInt

// Truthy reports whether n is neither zero nor NaN.
func Truthy(n int) bool {
	return n != 0 && n != NaN
}

// FormatInt renders n in base 10, or "NaN" for the sentinel.
func FormatInt(n int) string {
	if n == NaN {
		return "NaN"
	}
	return strconv.Itoa(n)
}

// ParseInt parses the leading base-10 integer of s the way URL components
// are read: leading whitespace and an optional sign are accepted, and
// anything after the digits is ignored ("12abc" is 12). Input without
// leading digits yields NaN.
func ParseInt(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return NaN
	}

	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		// out of range
		return NaN
	}
	if neg {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
