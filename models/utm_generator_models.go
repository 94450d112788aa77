package models

import (
	"github.com/vit0-9/utm_builder/pkg/utils"
	"github.com/vit0-9/utm_builder/pkg/utils/builder"
	"github.com/vit0-9/utm_builder/pkg/utils/settings"
)

// UTMTagsPayload carries the five raw UTM values.
type UTMTagsPayload struct {
	Source   string `json:"utm_source" binding:"max=512" example:"newsletter"`
	Medium   string `json:"utm_medium" binding:"max=512" example:"email"`
	Campaign string `json:"utm_campaign,omitempty" binding:"max=512" example:"spring_launch"`
	Term     string `json:"utm_term,omitempty" binding:"max=512"`
	Content  string `json:"utm_content,omitempty" binding:"max=512"`
}

// TagSet converts the payload for the composer.
func (p UTMTagsPayload) TagSet() utils.TagSet {
	return utils.TagSet{Source: p.Source, Medium: p.Medium, Campaign: p.Campaign, Term: p.Term, Content: p.Content}
}

// UTMOptionsPayload carries formatting options. Omitted fields keep their defaults.
type UTMOptionsPayload struct {
	KeepExistingQuery *bool `json:"keep_existing_query,omitempty"`
	LowercaseValues   *bool `json:"lowercase_values,omitempty"`
	EncodeOutput      *bool `json:"encode_output,omitempty"`
	SpaceAsPlus       *bool `json:"space_as_plus,omitempty"`
}

// Merge overlays the fields that were sent onto defaults. A nil payload
// returns defaults unchanged.
func (p *UTMOptionsPayload) Merge(defaults utils.CompositionOptions) utils.CompositionOptions {
	if p == nil {
		return defaults
	}
	opts := defaults
	if p.KeepExistingQuery != nil {
		opts.KeepExistingQuery = *p.KeepExistingQuery
	}
	if p.LowercaseValues != nil {
		opts.LowercaseValues = *p.LowercaseValues
	}
	if p.EncodeOutput != nil {
		opts.EncodeOutput = *p.EncodeOutput
	}
	if p.SpaceAsPlus != nil {
		opts.SpaceAsPlus = *p.SpaceAsPlus
	}
	return opts
}

// UTMGeneratorRequest asks for a single tagged link without touching the saved form.
// A missing or unparseable base_url is reported in the response body, not as a 400.
type UTMGeneratorRequest struct {
	BaseURL         string                    `json:"base_url" binding:"max=4096" example:"example.com/landing?ref=abc"`
	Tags            UTMTagsPayload            `json:"tags"`
	Options         *UTMOptionsPayload        `json:"options,omitempty"`
	RequireCampaign bool                      `json:"require_campaign,omitempty"`
}

// UTMGeneratorResponse is the composed link plus its display forms.
type UTMGeneratorResponse struct {
	BaseURL         string                   `json:"base_url"`
	FullURL         SafeURLString            `json:"full_url"`
	TagQuery        SafeURLString            `json:"tag_query"`
	DisplayURL      SafeURLString            `json:"display_url"`
	DisplayQuery    SafeURLString            `json:"display_query"`
	Error           string                   `json:"error,omitempty"`
	MissingRequired []string                 `json:"missing_required"`
	Ready           bool                     `json:"ready"`
	Tags            utils.TagSet             `json:"tags"`
	OptionsApplied  utils.CompositionOptions `json:"options_applied"`
}

// NewUTMGeneratorResponse formats a composition result with the given options.
func NewUTMGeneratorResponse(baseURL string, res utils.CompositionResult, opts utils.CompositionOptions) UTMGeneratorResponse {
	missing := res.MissingRequired
	if missing == nil {
		missing = []string{}
	}
	return UTMGeneratorResponse{
		BaseURL:         baseURL,
		FullURL:         SafeURLString(res.FullURL),
		TagQuery:        SafeURLString(res.TagQuery),
		DisplayURL:      SafeURLString(utils.FormatUTMURL(res.FullURL, opts.EncodeOutput, opts.SpaceAsPlus)),
		DisplayQuery:    SafeURLString(utils.FormatUTMQuery(res.TagQuery, opts.EncodeOutput, opts.SpaceAsPlus)),
		Error:           res.ErrorMessage(),
		MissingRequired: missing,
		Ready:           res.Ready(),
		Tags:            res.Tags,
		OptionsApplied:  opts,
	}
}

// UTMSegment is one piece of the highlighted display URL.
type UTMSegment struct {
	Text      SafeURLString `json:"text"`
	Highlight bool          `json:"highlight,omitempty"`
}

// UTMViewResponse mirrors builder.View for the wire.
type UTMViewResponse struct {
	DisplayURL      SafeURLString `json:"display_url"`
	DisplayQuery    SafeURLString `json:"display_query"`
	Error           string        `json:"error,omitempty"`
	MissingRequired []string      `json:"missing_required"`
	Segments        []UTMSegment  `json:"segments,omitempty"`
	Fit             string        `json:"fit,omitempty"`
	URLReady        bool          `json:"url_ready"`
	TagsReady       bool          `json:"tags_ready"`
}

// UTMStateResponse is the saved form, its rendering and the action status.
type UTMStateResponse struct {
	Settings settings.Settings `json:"settings"`
	View     UTMViewResponse   `json:"view"`
	Status   string            `json:"status,omitempty"`
}

// NewUTMStateResponse converts a controller snapshot.
func NewUTMStateResponse(snap builder.Snapshot) UTMStateResponse {
	v := snap.View
	segments := make([]UTMSegment, len(v.Segments))
	for i, s := range v.Segments {
		segments[i] = UTMSegment{Text: SafeURLString(s.Text), Highlight: s.Highlight}
	}
	return UTMStateResponse{
		Settings: snap.Settings,
		View: UTMViewResponse{
			DisplayURL:      SafeURLString(v.DisplayURL),
			DisplayQuery:    SafeURLString(v.DisplayQuery),
			Error:           v.ErrorMessage,
			MissingRequired: v.MissingRequired,
			Segments:        segments,
			Fit:             v.Fit,
			URLReady:        v.URLReady,
			TagsReady:       v.TagsReady,
		},
		Status: snap.Status,
	}
}

// UpdateUTMStateRequest is a partial form update; omitted fields are kept.
type UpdateUTMStateRequest struct {
	BaseURL     *string `json:"baseUrl,omitempty" binding:"omitempty,max=4096"`
	Source      *string `json:"source,omitempty" binding:"omitempty,max=512"`
	Medium      *string `json:"medium,omitempty" binding:"omitempty,max=512"`
	Campaign    *string `json:"campaign,omitempty" binding:"omitempty,max=512"`
	Term        *string `json:"term,omitempty" binding:"omitempty,max=512"`
	Content     *string `json:"content,omitempty" binding:"omitempty,max=512"`
	KeepQuery   *bool   `json:"keepQuery,omitempty"`
	Lowercase   *bool   `json:"lowercase,omitempty"`
	Encode      *bool   `json:"encode,omitempty"`
	SpaceAsPlus *bool   `json:"spaceAsPlus,omitempty"`
}

// Edit converts the request for the controller.
func (r UpdateUTMStateRequest) Edit() builder.Edit {
	return builder.Edit{
		BaseURL:     r.BaseURL,
		Source:      r.Source,
		Medium:      r.Medium,
		Campaign:    r.Campaign,
		Term:        r.Term,
		Content:     r.Content,
		KeepQuery:   r.KeepQuery,
		Lowercase:   r.Lowercase,
		Encode:      r.Encode,
		SpaceAsPlus: r.SpaceAsPlus,
	}
}

// UTMActionResponse reports a copy or open action.
type UTMActionResponse struct {
	Text   SafeURLString `json:"text"`
	OK     bool          `json:"ok"`
	Status string        `json:"status,omitempty"`
}

// UTMPresetResponse is one catalog entry.
type UTMPresetResponse struct {
	Key    string        `json:"key"`
	Label  string        `json:"label"`
	Values *utils.TagSet `json:"values"`
}
