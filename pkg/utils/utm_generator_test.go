package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var newsletterTags = TagSet{Source: "NEWS", Medium: "Email", Campaign: "Spring"}

func TestGenerateUTMLink_KeepsExistingQuery(t *testing.T) {
	res := GenerateUTMLink("https://example.com/landing?ref=abc", newsletterTags,
		CompositionOptions{KeepExistingQuery: true, LowercaseValues: true}, RequiredTagsDefault)

	require.NoError(t, res.Err)
	assert.Equal(t, "https://example.com/landing?ref=abc&utm_source=news&utm_medium=email&utm_campaign=spring", res.FullURL)
	assert.Equal(t, "utm_source=news&utm_medium=email&utm_campaign=spring", res.TagQuery)
	assert.Empty(t, res.MissingRequired)
	assert.NotContains(t, res.FullURL, "utm_term")
	assert.NotContains(t, res.FullURL, "utm_content")
	assert.NotContains(t, res.TagQuery, "utm_term")
	assert.True(t, res.Ready())
	assert.True(t, res.TagsReady())
}

func TestGenerateUTMLink_DropsExistingQuery(t *testing.T) {
	res := GenerateUTMLink("https://example.com/landing?ref=abc", newsletterTags,
		CompositionOptions{LowercaseValues: true}, RequiredTagsDefault)

	require.NoError(t, res.Err)
	assert.Equal(t, "https://example.com/landing?utm_source=news&utm_medium=email&utm_campaign=spring", res.FullURL)
	assert.NotContains(t, res.FullURL, "ref=abc")
}

func TestGenerateUTMLink_TagsOverrideExisting(t *testing.T) {
	base := "https://example.com/?utm_source=old&a=1&utm_source=older&utm_term=stale"
	res := GenerateUTMLink(base, TagSet{Source: "new", Medium: "cpc"},
		CompositionOptions{KeepExistingQuery: true}, RequiredTagsDefault)

	require.NoError(t, res.Err)
	assert.Equal(t, "https://example.com/?utm_source=new&a=1&utm_medium=cpc", res.FullURL)
	assert.Equal(t, "utm_source=new&utm_medium=cpc", res.TagQuery)
}

func TestGenerateUTMLink_ProtocolRetryEquivalence(t *testing.T) {
	opts := CompositionOptions{KeepExistingQuery: true, LowercaseValues: true}
	bare := GenerateUTMLink("example.com", newsletterTags, opts, RequiredTagsDefault)
	full := GenerateUTMLink("https://example.com", newsletterTags, opts, RequiredTagsDefault)
	assert.Equal(t, full, bare)
	assert.Equal(t, "https://example.com/?utm_source=news&utm_medium=email&utm_campaign=spring", bare.FullURL)
}

func TestGenerateUTMLink_InternationalizedHost(t *testing.T) {
	res := GenerateUTMLink("пример.рф/landing", TagSet{Source: "yandex", Medium: "cpc"},
		CompositionOptions{KeepExistingQuery: true, LowercaseValues: true}, RequiredTagsDefault)

	require.NoError(t, res.Err)
	assert.Equal(t, "https://xn--e1afmkfd.xn--p1ai/landing?utm_source=yandex&utm_medium=cpc", res.FullURL)
	assert.Equal(t, res.FullURL, FormatUTMURL(res.FullURL, false, true))
}

func TestGenerateUTMLink_MissingURL(t *testing.T) {
	res := GenerateUTMLink("  ", newsletterTags, CompositionOptions{LowercaseValues: true}, RequiredTagsDefault)

	assert.True(t, errors.Is(res.Err, ErrMissingURL))
	assert.Equal(t, "Add a destination URL.", res.ErrorMessage())
	assert.Empty(t, res.FullURL)
	assert.Equal(t, "utm_source=news&utm_medium=email&utm_campaign=spring", res.TagQuery)
	assert.False(t, res.Ready())
	assert.True(t, res.TagsReady())
}

func TestGenerateUTMLink_MissingRequired(t *testing.T) {
	tests := []struct {
		name     string
		tags     TagSet
		required RequiredTags
		want     []string
	}{
		{"source blank", TagSet{Medium: "email"}, RequiredTagsDefault, []string{UTMSource}},
		{"both blank keeps slot order", TagSet{Campaign: "x"}, RequiredTagsDefault, []string{UTMSource, UTMMedium}},
		{"whitespace counts as blank", TagSet{Source: "  ", Medium: "email"}, RequiredTagsDefault, []string{UTMSource}},
		{"campaign policy", TagSet{Source: "a", Medium: "b"}, RequiredTagsWithCampaign, []string{UTMCampaign}},
		{"nothing missing", TagSet{Source: "a", Medium: "b"}, RequiredTagsDefault, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := GenerateUTMLink("https://example.com", tt.tags, CompositionOptions{}, tt.required)
			require.NoError(t, res.Err)
			assert.Equal(t, tt.want, res.MissingRequired)
			assert.Equal(t, len(tt.want) == 0, res.Ready())
		})
	}
}

func TestGenerateUTMLink_InvalidURLStillReportsMissing(t *testing.T) {
	res := GenerateUTMLink("exa mple.com", TagSet{Medium: "email"}, CompositionOptions{}, RequiredTagsDefault)

	assert.True(t, errors.Is(res.Err, ErrInvalidURL))
	assert.Empty(t, res.FullURL)
	assert.Equal(t, []string{UTMSource}, res.MissingRequired)
	assert.Equal(t, "utm_medium=email", res.TagQuery)
}

func TestGenerateUTMLink_Serialization(t *testing.T) {
	tests := []struct {
		name string
		base string
		tags TagSet
		want string
	}{
		{"space becomes plus", "https://example.com/a", TagSet{Source: "spring sale", Medium: "email"},
			"https://example.com/a?utm_source=spring+sale&utm_medium=email"},
		{"literal plus escaped", "https://example.com/a", TagSet{Source: "a+b", Medium: "email"},
			"https://example.com/a?utm_source=a%2Bb&utm_medium=email"},
		{"placeholders escaped", "https://example.com/a", TagSet{Source: "google", Medium: "cpc", Term: "{keyword}"},
			"https://example.com/a?utm_source=google&utm_medium=cpc&utm_term=%7Bkeyword%7D"},
		{"fragment preserved", "https://example.com/a#top", TagSet{Source: "x", Medium: "y"},
			"https://example.com/a?utm_source=x&utm_medium=y#top"},
		{"no tags no question mark", "https://example.com/a?utm_source=x", TagSet{},
			"https://example.com/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := GenerateUTMLink(tt.base, tt.tags, CompositionOptions{KeepExistingQuery: true}, RequiredTagsDefault)
			require.NoError(t, res.Err)
			assert.Equal(t, tt.want, res.FullURL)
		})
	}
}

func TestComposeUTMLink_DoesNotMutateBase(t *testing.T) {
	base, err := ParseBaseURL("https://example.com/a?ref=1")
	require.NoError(t, err)

	_ = ComposeUTMLink(base, nil, TagSet{Source: "x", Medium: "y"}, CompositionOptions{}, RequiredTagsDefault)
	assert.Equal(t, "ref=1", base.RawQuery)
}

func TestTagSet_Get(t *testing.T) {
	tags := TagSet{Source: "s", Medium: "m", Campaign: "c", Term: "t", Content: "x"}
	assert.Equal(t, "c", tags.Get(UTMCampaign))
	assert.Equal(t, "x", tags.Get(UTMContent))
	assert.Equal(t, "", tags.Get("utm_unknown"))
}
