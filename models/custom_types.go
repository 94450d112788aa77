package models

import (
	"bytes"
	"encoding/json"
)

// SafeURLString is a URL or query string that marshals without HTML
// escaping. encoding/json re-escapes Marshaler output when its own escaping
// is on, so responses carrying it are written with gin's PureJSON.
type SafeURLString string

func (s SafeURLString) MarshalJSON() ([]byte, error) {
	return marshalUnescaped(string(s))
}

func (s *SafeURLString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = SafeURLString(str)
	return nil
}

func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	// Encode terminates every value with a newline
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
