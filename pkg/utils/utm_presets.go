package utils

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

//go:embed utm_presets.json
var utmPresetsJSON embed.FS

// CustomPresetKey is the sentinel preset that never overwrites tag fields.
const CustomPresetKey = "custom"

var ErrUnknownPreset = errors.New("unknown preset")

// UTMPreset is a named bundle of tag values for a common traffic channel.
// Values is nil for the custom sentinel.
type UTMPreset struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Values *TagSet `json:"values"`
}

// IsCustom reports whether applying the preset leaves fields untouched.
func (p UTMPreset) IsCustom() bool { return p.Values == nil }

// clone returns p with its own copy of Values.
func (p UTMPreset) clone() UTMPreset {
	if p.Values != nil {
		v := *p.Values
		p.Values = &v
	}
	return p
}

var (
	utmPresets     []UTMPreset
	utmPresetIndex map[string]int
	presetsOnce    sync.Once
	presetsErr     error
)

func loadUTMPresets() {
	presetsOnce.Do(func() {
		data, err := utmPresetsJSON.ReadFile("utm_presets.json")
		if err != nil {
			presetsErr = fmt.Errorf("read embedded utm_presets.json: %w", err)
			slog.Error("failed to load preset catalog", "error", presetsErr)
			return
		}
		var presets []UTMPreset
		if err := json.Unmarshal(data, &presets); err != nil {
			presetsErr = fmt.Errorf("decode utm_presets.json: %w", err)
			slog.Error("failed to load preset catalog", "error", presetsErr)
			return
		}

		utmPresetIndex = make(map[string]int, len(presets))
		for i, p := range presets {
			utmPresetIndex[p.Key] = i
		}
		utmPresets = presets
		slog.Debug("loaded preset catalog", "count", len(presets))
	})
}

// UTMPresets returns the catalog in display order.
func UTMPresets() ([]UTMPreset, error) {
	loadUTMPresets()
	if presetsErr != nil {
		return nil, presetsErr
	}
	out := make([]UTMPreset, len(utmPresets))
	for i, p := range utmPresets {
		out[i] = p.clone()
	}
	return out, nil
}

// LookupUTMPreset finds a preset by key.
func LookupUTMPreset(key string) (UTMPreset, error) {
	loadUTMPresets()
	if presetsErr != nil {
		return UTMPreset{}, presetsErr
	}
	i, ok := utmPresetIndex[key]
	if !ok {
		return UTMPreset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, key)
	}
	return utmPresets[i].clone(), nil
}

// IsUTMPresetKey reports whether key names a catalog entry.
func IsUTMPresetKey(key string) bool {
	_, err := LookupUTMPreset(key)
	return err == nil
}
