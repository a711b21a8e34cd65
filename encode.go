package twitter

import "strings"

// Pair is a text key/value parameter.
type Pair struct {
	Key   string
	Value string
}

const upperhex = "0123456789ABCDEF"

// percentEncode escapes s per RFC 3986 section 2.1 as OAuth 1.0a requires:
// only unreserved characters are left as-is, space becomes %20.
func percentEncode(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

// createQuery joins pairs as k1=v1&k2=v2 in input order.
func createQuery(pairs []Pair) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(percentEncode(p.Key))
		b.WriteByte('=')
		b.WriteString(percentEncode(p.Value))
	}
	return b.String()
}
