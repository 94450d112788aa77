package utils

import (
	"strings"
	"unicode/utf8"
)

// FormatUTMQuery renders a serialized tag query for display or copy.
// With encode off the query is fully decoded; with encode on, spaces are
// written as '+' or "%20" depending on spaceAsPlus.
func FormatUTMQuery(query string, encode, spaceAsPlus bool) string {
	if !encode {
		return SafeDecodeURIComponent(query)
	}
	return ApplySpaceEncodingToQuery(query, spaceAsPlus)
}

// FormatUTMURL renders a serialized full URL for display or copy.
// Decoding keeps reserved separators escaped so the URL stays unambiguous.
func FormatUTMURL(fullURL string, encode, spaceAsPlus bool) string {
	if !encode {
		return SafeDecodeURI(fullURL)
	}
	return ApplySpaceEncodingToURL(fullURL, spaceAsPlus)
}

// ApplySpaceEncodingToQuery rewrites '+' as "%20" unless usePlus is set.
// A literal plus is always serialized as "%2B", so every '+' here is a space.
func ApplySpaceEncodingToQuery(query string, usePlus bool) string {
	if query == "" || usePlus {
		return query
	}
	return strings.ReplaceAll(query, "+", "%20")
}

// ApplySpaceEncodingToURL applies ApplySpaceEncodingToQuery to the query
// component only; path and fragment are left alone.
func ApplySpaceEncodingToURL(fullURL string, usePlus bool) string {
	if fullURL == "" || usePlus {
		return fullURL
	}
	base, fragment := fullURL, ""
	if i := strings.IndexByte(fullURL, '#'); i >= 0 {
		base, fragment = fullURL[:i], fullURL[i:]
	}
	path, query, ok := strings.Cut(base, "?")
	if !ok {
		return fullURL
	}
	return path + "?" + ApplySpaceEncodingToQuery(query, false) + fragment
}

// uriReserved are the separators SafeDecodeURI leaves percent-encoded.
const uriReserved = ";/?:@&=+$,#"

// SafeDecodeURI decodes escapes in a full URL except those of reserved
// separators. Malformed input is returned unchanged.
func SafeDecodeURI(s string) string {
	if decoded, ok := percentDecode(s, func(b byte) bool {
		return strings.IndexByte(uriReserved, b) >= 0
	}); ok {
		return decoded
	}
	return s
}

// SafeDecodeURIComponent decodes every escape in s. '+' is not treated as a
// space. Malformed input is returned unchanged.
func SafeDecodeURIComponent(s string) string {
	if decoded, ok := percentDecode(s, nil); ok {
		return decoded
	}
	return s
}

// percentDecode decodes %XX sequences, keeping the escape verbatim when keep
// reports true for the decoded byte. It fails on truncated or non-hex escapes
// and when the result is not valid UTF-8.
func percentDecode(s string, keep func(byte) bool) (string, bool) {
	if strings.IndexByte(s, '%') < 0 {
		return s, true
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			buf = append(buf, s[i])
			continue
		}
		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			return "", false
		}
		b := unhex(s[i+1])<<4 | unhex(s[i+2])
		if b < utf8.RuneSelf && keep != nil && keep(b) {
			buf = append(buf, s[i:i+3]...)
		} else {
			buf = append(buf, b)
		}
		i += 2
	}
	if !utf8.Valid(buf) {
		return "", false
	}
	return string(buf), true
}
