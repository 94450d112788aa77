package utils

import (
	"strings"
)

// QueryParams is an insertion-ordered query string, serialized the way an HTML
// form does it (application/x-www-form-urlencoded, space as '+').
// Unlike url.Values it keeps the original parameter order on Encode.
type QueryParams struct {
	pairs []queryPair
}

type queryPair struct {
	key   string
	value string
}

// ParseQueryParams reads a raw query (without the leading '?'). Malformed
// percent escapes are kept literally instead of failing.
func ParseQueryParams(rawQuery string) *QueryParams {
	q := &QueryParams{}
	rawQuery = strings.TrimPrefix(rawQuery, "?")
	for rawQuery != "" {
		var part string
		part, rawQuery, _ = strings.Cut(rawQuery, "&")
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		q.pairs = append(q.pairs, queryPair{key: formDecode(key), value: formDecode(value)})
	}
	return q
}

// Len returns the number of pairs, duplicates included.
func (q *QueryParams) Len() int { return len(q.pairs) }

// Get returns the first value stored under key.
func (q *QueryParams) Get(key string) (string, bool) {
	for _, p := range q.pairs {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

// Set replaces the first pair named key in place and drops any later
// duplicates. A key that is not present is appended.
func (q *QueryParams) Set(key, value string) {
	found := false
	kept := q.pairs[:0]
	for _, p := range q.pairs {
		if p.key != key {
			kept = append(kept, p)
			continue
		}
		if !found {
			found = true
			kept = append(kept, queryPair{key: key, value: value})
		}
	}
	q.pairs = kept
	if !found {
		q.pairs = append(q.pairs, queryPair{key: key, value: value})
	}
}

// Del removes every pair named key.
func (q *QueryParams) Del(key string) {
	kept := q.pairs[:0]
	for _, p := range q.pairs {
		if p.key != key {
			kept = append(kept, p)
		}
	}
	q.pairs = kept
}

// Encode serializes the pairs in order.
func (q *QueryParams) Encode() string {
	if len(q.pairs) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(formEncode(p.key))
		sb.WriteByte('=')
		sb.WriteString(formEncode(p.value))
	}
	return sb.String()
}

// tblFormUnreserved marks the bytes the urlencoded serializer leaves as-is:
// ASCII alphanumerics and "*-._".
var tblFormUnreserved = [128]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0,
}

const upperhex = "0123456789ABCDEF"

func formEncode(s string) string {
	hexCount := 0
	for i := 0; i < len(s); i++ {
		if c := s[i]; c > 127 || tblFormUnreserved[c] == 0 {
			hexCount++
		}
	}
	if hexCount == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2*hexCount)
	hexBuf := [3]byte{'%', 0, 0}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == ' ':
			sb.WriteByte('+')
		case c > 127 || tblFormUnreserved[c] == 0:
			hexBuf[1] = upperhex[c>>4]
			hexBuf[2] = upperhex[c&15]
			sb.Write(hexBuf[:])
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// formDecode is the lenient counterpart of formEncode: '+' becomes a space,
// valid escapes are decoded, anything else passes through.
func formDecode(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			buf = append(buf, ' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			buf = append(buf, c)
		}
	}
	return strings.ToValidUTF8(string(buf), "�")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
