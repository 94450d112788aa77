package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"absolute", "https://example.com/landing?ref=abc", "https://example.com/landing?ref=abc"},
		{"bare domain gets https", "example.com/page", "https://example.com/page"},
		{"bare host gets root path", "example.com", "https://example.com/"},
		{"http is kept", "http://example.com", "http://example.com/"},
		{"surrounding whitespace", "  https://example.com/a  ", "https://example.com/a"},
		{"normalized host and port", "HTTPS://Example.COM:443/Path", "https://example.com/Path"},
		{"fragment kept", "example.com/a#top", "https://example.com/a#top"},
		{"internationalized host", "пример.рф/landing", "https://xn--e1afmkfd.xn--p1ai/landing"},
		{"internationalized host is case folded", "https://ПРИМЕР.рф/", "https://xn--e1afmkfd.xn--p1ai/"},
		{"internationalized host keeps port", "https://пример.рф:8080/a", "https://xn--e1afmkfd.xn--p1ai:8080/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestParseBaseURL_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    error
		message string
	}{
		{"empty", "", ErrMissingURL, "Add a destination URL."},
		{"whitespace", "   ", ErrMissingURL, "Add a destination URL."},
		{"space in host", "exa mple.com", ErrInvalidURL, "Enter a valid URL."},
		{"bad escape in host", "https://%zz.com", ErrInvalidURL, "Enter a valid URL."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := ParseBaseURL(tt.raw)
			require.Error(t, err)
			assert.Nil(t, u)
			assert.True(t, errors.Is(err, tt.kind))
			assert.Equal(t, tt.message, err.Error())

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.raw, perr.Input)
		})
	}
}
