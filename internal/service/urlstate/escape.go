package urlstate

import (
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// encodeURIComponent percent-encodes every byte of s except letters, digits
// and - _ . ! ~ * ' ( ). This is the set browsers leave alone in URI
// components, which url.QueryEscape and url.PathEscape do not match.
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// decodeURIComponent undoes percent-encoding. Malformed input is returned
// unchanged so that decoding a URL never fails.
func decodeURIComponent(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// isAffirmative reports whether a query value means "yes".
func isAffirmative(s string) bool {
	switch strings.ToLower(s) {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}
