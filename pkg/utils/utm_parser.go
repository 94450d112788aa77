package utils

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/purell"
	"golang.org/x/net/idna"
)

var (
	ErrMissingURL = errors.New("destination url is empty")
	ErrInvalidURL = errors.New("destination url is not a valid absolute url")
)

// ParseError reports why a destination URL could not be used.
// Error returns the message shown next to the destination field.
type ParseError struct {
	Kind  error // ErrMissingURL or ErrInvalidURL
	Input string
}

func (e *ParseError) Error() string {
	if errors.Is(e.Kind, ErrMissingURL) {
		return "Add a destination URL."
	}
	return "Enter a valid URL."
}

func (e *ParseError) Unwrap() error { return e.Kind }

// baseURLNormalization mirrors what a browser does to a parsed absolute URL.
const baseURLNormalization = purell.FlagLowercaseScheme | purell.FlagLowercaseHost | purell.FlagRemoveDefaultPort

// hostProfile converts internationalized hosts to their ASCII (punycode) form
// with the lenient rules browsers apply: no STD3 or hyphen checks.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
	idna.CheckHyphens(false),
)

// parseAttempts is the ordered fallback chain: the input as typed, then with https:// forced.
var parseAttempts = []func(string) string{
	func(s string) string { return s },
	func(s string) string { return "https://" + s },
}

// ParseBaseURL turns the destination field into an absolute URL.
// Bare domains like "example.com/page" are retried with an https:// prefix;
// http:// is never inferred.
func ParseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &ParseError{Kind: ErrMissingURL, Input: raw}
	}
	for _, attempt := range parseAttempts {
		if u, ok := parseAbsolute(attempt(trimmed)); ok {
			return u, nil
		}
	}
	return nil, &ParseError{Kind: ErrInvalidURL, Input: raw}
}

func parseAbsolute(candidate string) (*url.URL, bool) {
	u, err := url.Parse(candidate)
	if err != nil || !u.IsAbs() {
		return nil, false
	}
	if isHierarchicalScheme(u.Scheme) {
		if u.Host == "" || u.Opaque != "" {
			return nil, false
		}
		host, ok := asciiHost(u)
		if !ok {
			return nil, false
		}
		u.Host = host
		purell.NormalizeURL(u, baseURLNormalization)
		if u.Path == "" {
			u.Path = "/"
		}
	}
	return u, true
}

// asciiHost returns u.Host with any non-ASCII hostname converted to punycode.
// The port, if any, is kept.
func asciiHost(u *url.URL) (string, bool) {
	if isASCII(u.Host) {
		return u.Host, true
	}
	name, port := u.Hostname(), u.Port()
	if strings.Contains(name, ":") {
		// bracketed IPv6 literals are ASCII only
		return "", false
	}
	ascii, err := hostProfile.ToASCII(name)
	if err != nil || ascii == "" {
		return "", false
	}
	if port != "" {
		return net.JoinHostPort(ascii, port), true
	}
	return ascii, true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// isHierarchicalScheme reports schemes that always carry an authority.
func isHierarchicalScheme(scheme string) bool {
	switch strings.ToLower(scheme) {
	case "http", "https", "ws", "wss", "ftp":
		return true
	}
	return false
}
