// Package settings holds the persisted builder record: its defaults, the
// field-wise normalization applied on load and the sqlite-backed store.
package settings

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/vit0-9/utm_builder/pkg/utils"
)

// DefaultKey names the persisted record. Bump the suffix on incompatible changes.
const DefaultKey = "utm-settings-v1"

// Settings is the full field set of the builder form.
type Settings struct {
	BaseURL     string `json:"baseUrl"`
	Source      string `json:"source"`
	Medium      string `json:"medium"`
	Campaign    string `json:"campaign"`
	Term        string `json:"term"`
	Content     string `json:"content"`
	KeepQuery   bool   `json:"keepQuery"`
	Lowercase   bool   `json:"lowercase"`
	Encode      bool   `json:"encode"`
	SpaceAsPlus bool   `json:"spaceAsPlus"`
	Preset      string `json:"preset"`
}

// Defaults returns the documented default bundle.
func Defaults() Settings {
	return Settings{
		BaseURL:     "https://example.com/landing",
		Source:      "newsletter",
		Medium:      "email",
		Campaign:    "spring_launch",
		KeepQuery:   true,
		Lowercase:   true,
		Encode:      true,
		SpaceAsPlus: true,
		Preset:      utils.CustomPresetKey,
	}
}

// Tags returns the raw (unsanitized) tag fields.
func (s Settings) Tags() utils.TagSet {
	return utils.TagSet{
		Source:   s.Source,
		Medium:   s.Medium,
		Campaign: s.Campaign,
		Term:     s.Term,
		Content:  s.Content,
	}
}

// WithTags replaces the five tag fields.
func (s Settings) WithTags(t utils.TagSet) Settings {
	s.Source, s.Medium, s.Campaign, s.Term, s.Content = t.Source, t.Medium, t.Campaign, t.Term, t.Content
	return s
}

// Options returns the composition options stored in the record.
func (s Settings) Options() utils.CompositionOptions {
	return utils.CompositionOptions{
		KeepExistingQuery: s.KeepQuery,
		LowercaseValues:   s.Lowercase,
		EncodeOutput:      s.Encode,
		SpaceAsPlus:       s.SpaceAsPlus,
	}
}

// Normalize merges a decoded record into the defaults one field at a time.
// Missing or mistyped fields keep their default; an unknown preset becomes custom.
func Normalize(raw map[string]any) Settings {
	s := Defaults()
	stringField(raw, "baseUrl", &s.BaseURL)
	stringField(raw, "source", &s.Source)
	stringField(raw, "medium", &s.Medium)
	stringField(raw, "campaign", &s.Campaign)
	stringField(raw, "term", &s.Term)
	stringField(raw, "content", &s.Content)
	boolField(raw, "keepQuery", &s.KeepQuery)
	boolField(raw, "lowercase", &s.Lowercase)
	boolField(raw, "encode", &s.Encode)
	boolField(raw, "spaceAsPlus", &s.SpaceAsPlus)
	stringField(raw, "preset", &s.Preset)
	if !utils.IsUTMPresetKey(s.Preset) {
		s.Preset = utils.CustomPresetKey
	}
	return s
}

func stringField(raw map[string]any, key string, dst *string) {
	if v, ok := raw[key].(string); ok {
		*dst = v
	}
}

func boolField(raw map[string]any, key string, dst *bool) {
	if v, ok := raw[key].(bool); ok {
		*dst = v
	}
}

// Decode parses a stored record. Valid JSON that is not an object yields the
// defaults; malformed JSON is an error.
func Decode(data []byte) (Settings, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	obj, _ := raw.(map[string]any)
	return Normalize(obj), nil
}

// Encode serializes the full record.
func Encode(s Settings) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}
