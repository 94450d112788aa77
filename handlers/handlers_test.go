package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vit0-9/utm_builder/models"
	"github.com/vit0-9/utm_builder/pkg/utils/builder"
	"github.com/vit0-9/utm_builder/pkg/utils/settings"
)

const defaultFullURL = "https://example.com/landing?utm_source=newsletter&utm_medium=email&utm_campaign=spring_launch"

type recordingClipboard struct {
	texts []string
	err   error
}

func (r *recordingClipboard) WriteAll(text string) error {
	if r.err != nil {
		return r.err
	}
	r.texts = append(r.texts, text)
	return nil
}

type recordingBrowser struct{ urls []string }

func (r *recordingBrowser) OpenURL(url string) error {
	r.urls = append(r.urls, url)
	return nil
}

type testEnv struct {
	router    *gin.Engine
	store     *settings.SQLiteStore
	clipboard *recordingClipboard
	browser   *recordingBrowser
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := settings.OpenSQLite(context.Background(), settings.SQLiteConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	env := &testEnv{
		store:     settings.NewSQLiteStore(db, ""),
		clipboard: &recordingClipboard{},
		browser:   &recordingBrowser{},
	}
	ctl := builder.NewController(context.Background(), env.store,
		builder.WithClipboard(env.clipboard),
		builder.WithBrowser(env.browser),
		builder.WithStatusTTL(time.Minute),
	)
	t.Cleanup(ctl.Close)

	url := NewURLUtilitiesHandlers()
	b := NewUTMBuilderHandlers(ctl)
	r := gin.New()
	r.GET("/api/v1/health", NewHealthHandler().HealthCheckHandler)
	r.POST("/api/v1/url/generate-utm", url.GenerateUTMHandler)
	r.GET("/api/v1/utm/presets", b.ListPresetsHandler)
	r.POST("/api/v1/utm/presets/:key/apply", b.ApplyPresetHandler)
	r.GET("/api/v1/utm/state", b.GetStateHandler)
	r.PATCH("/api/v1/utm/state", b.UpdateStateHandler)
	r.POST("/api/v1/utm/reset", b.ResetHandler)
	r.POST("/api/v1/utm/copy/url", b.CopyURLHandler)
	r.POST("/api/v1/utm/copy/tags", b.CopyTagsHandler)
	r.POST("/api/v1/utm/open", b.OpenHandler)
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthCheckHandler(t *testing.T) {
	env := setupRouter(t)
	w := env.do(t, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "UP", body["status"])
	assert.EqualValues(t, 10, body["presets"])
}

func TestGenerateUTMHandler(t *testing.T) {
	env := setupRouter(t)
	w := env.do(t, http.MethodPost, "/api/v1/url/generate-utm", `{
		"base_url": "example.com/landing?ref=abc",
		"tags": {"utm_source": "NEWS", "utm_medium": "Email", "utm_campaign": "Spring"}
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"full_url":"https://example.com/landing?ref=abc&utm_source=news&utm_medium=email&utm_campaign=spring"`)

	resp := decode[models.UTMGeneratorResponse](t, w)
	assert.True(t, resp.Ready)
	assert.Empty(t, resp.Error)
	assert.Empty(t, resp.MissingRequired)
	assert.Equal(t, models.SafeURLString("utm_source=news&utm_medium=email&utm_campaign=spring"), resp.TagQuery)
	assert.True(t, resp.OptionsApplied.KeepExistingQuery)
}

func TestGenerateUTMHandler_ExplicitOptions(t *testing.T) {
	env := setupRouter(t)
	w := env.do(t, http.MethodPost, "/api/v1/url/generate-utm", `{
		"base_url": "https://example.com/landing?ref=abc",
		"tags": {"utm_source": "News", "utm_medium": "email"},
		"options": {"keep_existing_query": false, "lowercase_values": false, "encode_output": true, "space_as_plus": true}
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.UTMGeneratorResponse](t, w)
	assert.Equal(t, models.SafeURLString("https://example.com/landing?utm_source=News&utm_medium=email"), resp.FullURL)
	assert.Equal(t, models.SafeURLString("utm_source=News&utm_medium=email"), resp.DisplayQuery)
}

func TestGenerateUTMHandler_PartialOptionsKeepDefaults(t *testing.T) {
	env := setupRouter(t)
	w := env.do(t, http.MethodPost, "/api/v1/url/generate-utm", `{
		"base_url": "https://example.com/landing?ref=abc",
		"tags": {"utm_source": "News", "utm_medium": "email", "utm_campaign": "big sale"},
		"options": {"lowercase_values": false}
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.UTMGeneratorResponse](t, w)
	assert.False(t, resp.OptionsApplied.LowercaseValues)
	assert.True(t, resp.OptionsApplied.KeepExistingQuery)
	assert.True(t, resp.OptionsApplied.EncodeOutput)
	assert.True(t, resp.OptionsApplied.SpaceAsPlus)
	assert.Equal(t, models.SafeURLString("https://example.com/landing?ref=abc&utm_source=News&utm_medium=email&utm_campaign=big+sale"), resp.DisplayURL)
}

func TestGenerateUTMHandler_ReportsCompositionErrors(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/api/v1/url/generate-utm", `{"base_url": "", "tags": {"utm_source": "a", "utm_medium": "b"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.UTMGeneratorResponse](t, w)
	assert.False(t, resp.Ready)
	assert.Equal(t, "Add a destination URL.", resp.Error)
	assert.Empty(t, resp.FullURL)

	w = env.do(t, http.MethodPost, "/api/v1/url/generate-utm", `{"base_url": "https://example.com", "tags": {"utm_source": "a"}, "require_campaign": true}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[models.UTMGeneratorResponse](t, w)
	assert.False(t, resp.Ready)
	assert.Equal(t, []string{"utm_medium", "utm_campaign"}, resp.MissingRequired)
}

func TestGenerateUTMHandler_InvalidPayload(t *testing.T) {
	env := setupRouter(t)
	w := env.do(t, http.MethodPost, "/api/v1/url/generate-utm", `{"base_url": 42}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[models.APIErrorResponse](t, w)
	assert.Equal(t, models.ErrorCodeInvalidRequest, resp.ErrorCode)
}

func TestListPresetsHandler(t *testing.T) {
	env := setupRouter(t)
	w := env.do(t, http.MethodGet, "/api/v1/utm/presets", "")

	require.Equal(t, http.StatusOK, w.Code)
	presets := decode[[]models.UTMPresetResponse](t, w)
	require.Len(t, presets, 10)
	assert.Equal(t, "custom", presets[0].Key)
	assert.Nil(t, presets[0].Values)
	assert.Equal(t, "google", presets[2].Key)
	require.NotNil(t, presets[2].Values)
	assert.Equal(t, "{keyword}", presets[2].Values.Term)
}

func TestGetStateHandler_Defaults(t *testing.T) {
	env := setupRouter(t)
	w := env.do(t, http.MethodGet, "/api/v1/utm/state", "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.UTMStateResponse](t, w)
	assert.Equal(t, settings.Defaults(), resp.Settings)
	assert.Equal(t, models.SafeURLString(defaultFullURL), resp.View.DisplayURL)
	assert.True(t, resp.View.URLReady)
	assert.NotEmpty(t, resp.View.Segments)
}

func TestUpdateStateHandler(t *testing.T) {
	env := setupRouter(t)
	w := env.do(t, http.MethodPatch, "/api/v1/utm/state", `{"campaign": "Summer Sale", "lowercase": false, "encode": false, "spaceAsPlus": false}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.UTMStateResponse](t, w)
	assert.Equal(t, "Summer Sale", resp.Settings.Campaign)
	assert.Equal(t, "custom", resp.Settings.Preset)
	assert.Equal(t, models.SafeURLString("https://example.com/landing?utm_source=newsletter&utm_medium=email&utm_campaign=Summer+Sale"), resp.View.DisplayURL)
	assert.Equal(t, models.SafeURLString("?utm_source=newsletter&utm_medium=email&utm_campaign=Summer+Sale"), resp.View.DisplayQuery)

	saved, err := env.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Summer Sale", saved.Campaign)
}

func TestUpdateStateHandler_RejectsMalformedBody(t *testing.T) {
	env := setupRouter(t)
	w := env.do(t, http.MethodPatch, "/api/v1/utm/state", `{"keepQuery": "yes"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyPresetHandler(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/api/v1/utm/presets/email/apply", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.UTMStateResponse](t, w)
	assert.Equal(t, "email", resp.Settings.Preset)
	assert.Equal(t, "welcome_series", resp.Settings.Campaign)
	assert.Equal(t, "button", resp.Settings.Content)

	w = env.do(t, http.MethodPost, "/api/v1/utm/presets/nope/apply", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	errResp := decode[models.APIErrorResponse](t, w)
	assert.Equal(t, models.ErrorCodeUnknownPreset, errResp.ErrorCode)
}

func TestResetHandler(t *testing.T) {
	env := setupRouter(t)
	env.do(t, http.MethodPatch, "/api/v1/utm/state", `{"baseUrl": ""}`)

	w := env.do(t, http.MethodPost, "/api/v1/utm/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.UTMStateResponse](t, w)
	assert.Equal(t, settings.Defaults(), resp.Settings)
}

func TestCopyHandlers(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/api/v1/utm/copy/url", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.UTMActionResponse](t, w)
	assert.True(t, resp.OK)
	assert.Equal(t, "URL copied.", resp.Status)

	w = env.do(t, http.MethodPost, "/api/v1/utm/copy/tags", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{
		defaultFullURL,
		"?utm_source=newsletter&utm_medium=email&utm_campaign=spring_launch",
	}, env.clipboard.texts)

	state := decode[models.UTMStateResponse](t, env.do(t, http.MethodGet, "/api/v1/utm/state", ""))
	assert.Equal(t, "UTM tags copied.", state.Status)
}

func TestCopyURLHandler_ClipboardFailure(t *testing.T) {
	env := setupRouter(t)
	env.clipboard.err = errors.New("no display")

	w := env.do(t, http.MethodPost, "/api/v1/utm/copy/url", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.UTMActionResponse](t, w)
	assert.False(t, resp.OK)
	assert.Equal(t, builder.MsgCopyFailed, resp.Status)
}

func TestActionHandlers_NotReady(t *testing.T) {
	env := setupRouter(t)
	env.do(t, http.MethodPatch, "/api/v1/utm/state", `{"medium": ""}`)

	for _, path := range []string{"/api/v1/utm/copy/url", "/api/v1/utm/copy/tags", "/api/v1/utm/open"} {
		w := env.do(t, http.MethodPost, path, "")
		assert.Equal(t, http.StatusConflict, w.Code, path)
		resp := decode[models.APIErrorResponse](t, w)
		assert.Equal(t, models.ErrorCodeNotReady, resp.ErrorCode, path)
	}
	assert.Empty(t, env.clipboard.texts)
	assert.Empty(t, env.browser.urls)
}

func TestOpenHandler(t *testing.T) {
	env := setupRouter(t)
	env.do(t, http.MethodPatch, "/api/v1/utm/state", `{"campaign": "big sale", "lowercase": false, "encode": false}`)

	w := env.do(t, http.MethodPost, "/api/v1/utm/open", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"https://example.com/landing?utm_source=newsletter&utm_medium=email&utm_campaign=big+sale"}, env.browser.urls)
}
