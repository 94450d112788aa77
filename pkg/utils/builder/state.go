// Package builder keeps the UTM form state explicit: pure transitions over
// settings.Settings, a rendered View, gated copy/open actions and the
// Controller that adapts UI events into those transitions.
package builder

import (
	"errors"

	"github.com/vit0-9/utm_builder/pkg/utils"
	"github.com/vit0-9/utm_builder/pkg/utils/settings"
)

var (
	ErrNotReady = errors.New("required utm fields are missing")
	ErrNoTags   = errors.New("no utm values to copy")
)

// Status messages shown after an action.
const (
	MsgNotReady   = "Fill in the required fields first."
	MsgNoTags     = "Add UTM values first."
	MsgCopyFailed = "Copy failed."
	MsgOpenFailed = "Could not open the browser."
)

// statusMessage maps an action gate error to its status line.
func statusMessage(err error) string {
	if errors.Is(err, ErrNoTags) {
		return MsgNoTags
	}
	return MsgNotReady
}

// Edit is a partial update of the form. Nil fields are left unchanged.
type Edit struct {
	BaseURL     *string `json:"baseUrl,omitempty"`
	Source      *string `json:"source,omitempty"`
	Medium      *string `json:"medium,omitempty"`
	Campaign    *string `json:"campaign,omitempty"`
	Term        *string `json:"term,omitempty"`
	Content     *string `json:"content,omitempty"`
	KeepQuery   *bool   `json:"keepQuery,omitempty"`
	Lowercase   *bool   `json:"lowercase,omitempty"`
	Encode      *bool   `json:"encode,omitempty"`
	SpaceAsPlus *bool   `json:"spaceAsPlus,omitempty"`
}

// ApplyEdit returns s with e applied. Changing any tag field by hand reverts
// the active preset to custom.
func ApplyEdit(s settings.Settings, e Edit) settings.Settings {
	before := s.Tags()

	setString(&s.BaseURL, e.BaseURL)
	setString(&s.Source, e.Source)
	setString(&s.Medium, e.Medium)
	setString(&s.Campaign, e.Campaign)
	setString(&s.Term, e.Term)
	setString(&s.Content, e.Content)
	setBool(&s.KeepQuery, e.KeepQuery)
	setBool(&s.Lowercase, e.Lowercase)
	setBool(&s.Encode, e.Encode)
	setBool(&s.SpaceAsPlus, e.SpaceAsPlus)

	if s.Tags() != before {
		s.Preset = utils.CustomPresetKey
	}
	return s
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// ApplyPreset marks key as the active preset and copies its values into the
// tag fields. The custom preset only changes the marker.
func ApplyPreset(s settings.Settings, key string) (settings.Settings, error) {
	preset, err := utils.LookupUTMPreset(key)
	if err != nil {
		return s, err
	}
	s.Preset = preset.Key
	if preset.IsCustom() {
		return s, nil
	}
	return s.WithTags(*preset.Values), nil
}

// Reset returns the default bundle.
func Reset() settings.Settings {
	return settings.Defaults()
}
