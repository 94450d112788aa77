package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeURLString_MarshalJSON(t *testing.T) {
	data, err := SafeURLString("https://example.com/?a=1&b=<2>").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"https://example.com/?a=1&b=<2>"`, string(data))
}

func TestSafeURLString_UnescapedEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(UTMActionResponse{Text: "https://example.com/?a=1&b=2", OK: true}))
	assert.Equal(t, `{"text":"https://example.com/?a=1&b=2","ok":true}`+"\n", buf.String())
}

func TestSafeURLString_UnmarshalJSON(t *testing.T) {
	var s SafeURLString
	require.NoError(t, json.Unmarshal([]byte(`"a&b"`), &s))
	assert.Equal(t, SafeURLString("a&b"), s)
}
