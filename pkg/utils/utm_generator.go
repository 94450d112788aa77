package utils

import (
	"net/url"
)

// UTM parameter names in serialization order.
const (
	UTMSource   = "utm_source"
	UTMMedium   = "utm_medium"
	UTMCampaign = "utm_campaign"
	UTMTerm     = "utm_term"
	UTMContent  = "utm_content"
)

// UTMParamOrder is the fixed slot order used for every serialized form.
var UTMParamOrder = [5]string{UTMSource, UTMMedium, UTMCampaign, UTMTerm, UTMContent}

// RequiredTags lists the UTM parameters that must be filled before a link is usable.
type RequiredTags []string

var (
	// RequiredTagsDefault is the policy used unless configured otherwise.
	RequiredTagsDefault = RequiredTags{UTMSource, UTMMedium}
	// RequiredTagsWithCampaign additionally demands utm_campaign.
	RequiredTagsWithCampaign = RequiredTags{UTMSource, UTMMedium, UTMCampaign}
)

func (r RequiredTags) has(name string) bool {
	for _, n := range r {
		if n == name {
			return true
		}
	}
	return false
}

// TagSet holds the five UTM values of a single link.
type TagSet struct {
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Term     string `json:"term"`
	Content  string `json:"content"`
}

// Values returns the tag values in UTMParamOrder.
func (t TagSet) Values() [5]string {
	return [5]string{t.Source, t.Medium, t.Campaign, t.Term, t.Content}
}

// Get returns the value stored for a UTM parameter name.
func (t TagSet) Get(name string) string {
	for i, n := range UTMParamOrder {
		if n == name {
			return t.Values()[i]
		}
	}
	return ""
}

// Sanitized applies SanitizeUTMValue to every slot.
func (t TagSet) Sanitized(lowercase bool) TagSet {
	return TagSet{
		Source:   SanitizeUTMValue(t.Source, lowercase),
		Medium:   SanitizeUTMValue(t.Medium, lowercase),
		Campaign: SanitizeUTMValue(t.Campaign, lowercase),
		Term:     SanitizeUTMValue(t.Term, lowercase),
		Content:  SanitizeUTMValue(t.Content, lowercase),
	}
}

// CompositionOptions controls how a link is assembled and formatted.
type CompositionOptions struct {
	KeepExistingQuery bool `json:"keep_existing_query"`
	LowercaseValues   bool `json:"lowercase_values"`
	EncodeOutput      bool `json:"encode_output"`
	SpaceAsPlus       bool `json:"space_as_plus"`
}

// CompositionResult is the outcome of ComposeUTMLink.
// FullURL is empty exactly when Err is set; MissingRequired is computed
// independently of Err.
type CompositionResult struct {
	FullURL         string
	TagQuery        string
	Err             error
	MissingRequired []string
	Tags            TagSet // sanitized values
}

// Ready reports whether the full URL can be copied or opened.
func (r CompositionResult) Ready() bool {
	return r.Err == nil && len(r.MissingRequired) == 0 && r.FullURL != ""
}

// TagsReady reports whether the tag-only query can be copied.
func (r CompositionResult) TagsReady() bool {
	return len(r.MissingRequired) == 0 && r.TagQuery != ""
}

// ErrorMessage returns the user-facing message of Err, or "".
func (r CompositionResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// GenerateUTMLink parses rawBaseURL and composes the tagged link.
func GenerateUTMLink(rawBaseURL string, tags TagSet, options CompositionOptions, required RequiredTags) CompositionResult {
	base, err := ParseBaseURL(rawBaseURL)
	return ComposeUTMLink(base, err, tags, options, required)
}

// ComposeUTMLink combines a parsed base URL (or its parse error) with the tag values.
// Tag parameters overwrite same-named parameters kept from the base URL, and
// empty tags remove them. base is not modified.
func ComposeUTMLink(base *url.URL, parseErr error, tags TagSet, options CompositionOptions, required RequiredTags) CompositionResult {
	cleaned := tags.Sanitized(options.LowercaseValues)
	values := cleaned.Values()

	tagParams := &QueryParams{}
	var missing []string
	for i, name := range UTMParamOrder {
		if values[i] != "" {
			tagParams.Set(name, values[i])
		} else if required.has(name) {
			missing = append(missing, name)
		}
	}

	result := CompositionResult{
		TagQuery:        tagParams.Encode(),
		MissingRequired: missing,
		Tags:            cleaned,
	}
	if parseErr != nil || base == nil {
		if parseErr == nil {
			parseErr = &ParseError{Kind: ErrMissingURL}
		}
		result.Err = parseErr
		return result
	}

	query := &QueryParams{}
	if options.KeepExistingQuery {
		query = ParseQueryParams(base.RawQuery)
	}
	for i, name := range UTMParamOrder {
		if values[i] != "" {
			query.Set(name, values[i])
		} else {
			query.Del(name)
		}
	}

	out := *base
	out.RawQuery = query.Encode()
	out.ForceQuery = false
	result.FullURL = out.String()
	return result
}
