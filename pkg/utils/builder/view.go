package builder

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vit0-9/utm_builder/pkg/utils"
	"github.com/vit0-9/utm_builder/pkg/utils/settings"
)

// Output size classes used to shrink long URLs.
const (
	FitCompact      = "is-compact"
	FitExtraCompact = "is-extra-compact"
)

// Segment is a run of the display URL; UTM keys are marked for highlighting.
type Segment struct {
	Text      string `json:"text"`
	Highlight bool   `json:"highlight,omitempty"`
}

// View is everything the form shows for one state.
type View struct {
	DisplayURL      string    `json:"display_url"`
	DisplayQuery    string    `json:"display_query"`
	ErrorMessage    string    `json:"error,omitempty"`
	MissingRequired []string  `json:"missing_required"`
	Segments        []Segment `json:"segments,omitempty"`
	Fit             string    `json:"fit,omitempty"`
	URLReady        bool      `json:"url_ready"`
	TagsReady       bool      `json:"tags_ready"`

	Result utils.CompositionResult `json:"-"`
}

// Compose runs the composer over the current field values.
func Compose(s settings.Settings, required utils.RequiredTags) utils.CompositionResult {
	return utils.GenerateUTMLink(s.BaseURL, s.Tags(), s.Options(), required)
}

// Render computes the View for s. URL errors take precedence over the
// missing-tags advisory.
func Render(s settings.Settings, required utils.RequiredTags) View {
	res := Compose(s, required)

	displayURL := utils.FormatUTMURL(res.FullURL, s.Encode, s.SpaceAsPlus)
	displayQuery := utils.FormatUTMQuery(res.TagQuery, s.Encode, s.SpaceAsPlus)

	v := View{
		DisplayURL:      displayURL,
		DisplayQuery:    "-",
		ErrorMessage:    res.ErrorMessage(),
		MissingRequired: res.MissingRequired,
		Segments:        HighlightUTMKeys(displayURL),
		Fit:             fitClass(displayURL),
		URLReady:        res.Ready(),
		TagsReady:       res.TagsReady(),
		Result:          res,
	}
	if v.MissingRequired == nil {
		v.MissingRequired = []string{}
	}
	if displayQuery != "" {
		v.DisplayQuery = "?" + displayQuery
	}
	if v.ErrorMessage == "" && len(res.MissingRequired) > 0 {
		v.ErrorMessage = "Missing required: " + strings.Join(res.MissingRequired, ", ") + "."
	}
	return v
}

var utmKeyPattern = regexp.MustCompile(`(?i)utm_[a-z0-9_]+=`)

// HighlightUTMKeys splits text so every utm_* key directly followed by '='
// is its own highlighted segment.
func HighlightUTMKeys(text string) []Segment {
	if text == "" {
		return nil
	}
	var segments []Segment
	last := 0
	for _, m := range utmKeyPattern.FindAllStringIndex(text, -1) {
		start, end := m[0], m[1]-1 // leave '=' in the plain text
		if start > last {
			segments = append(segments, Segment{Text: text[last:start]})
		}
		segments = append(segments, Segment{Text: text[start:end], Highlight: true})
		last = end
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

func fitClass(text string) string {
	switch n := utf8.RuneCountInString(text); {
	case n >= 140:
		return FitExtraCompact
	case n >= 110:
		return FitCompact
	}
	return ""
}

// CopyURLText is the string "copy full URL" writes.
func CopyURLText(s settings.Settings, required utils.RequiredTags) (string, error) {
	res := Compose(s, required)
	if res.Err != nil || len(res.MissingRequired) > 0 {
		return "", ErrNotReady
	}
	return utils.FormatUTMURL(res.FullURL, s.Encode, s.SpaceAsPlus), nil
}

// CopyTagsText is the string "copy tags only" writes, with a leading '?'.
func CopyTagsText(s settings.Settings, required utils.RequiredTags) (string, error) {
	res := Compose(s, required)
	if len(res.MissingRequired) > 0 {
		return "", ErrNotReady
	}
	if res.TagQuery == "" {
		return "", ErrNoTags
	}
	return "?" + utils.FormatUTMQuery(res.TagQuery, s.Encode, s.SpaceAsPlus), nil
}

// OpenURLText is the URL handed to the browser. It is always encoded, with
// spaces written per SpaceAsPlus.
func OpenURLText(s settings.Settings, required utils.RequiredTags) (string, error) {
	res := Compose(s, required)
	if res.Err != nil || len(res.MissingRequired) > 0 {
		return "", ErrNotReady
	}
	return utils.ApplySpaceEncodingToURL(res.FullURL, s.SpaceAsPlus), nil
}
