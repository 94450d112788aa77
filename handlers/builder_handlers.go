package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/utm_builder/models"
	"github.com/vit0-9/utm_builder/pkg/utils"
	"github.com/vit0-9/utm_builder/pkg/utils/builder"
)

// UTMBuilderHandlers exposes the saved builder form and its actions.
type UTMBuilderHandlers struct {
	controller *builder.Controller
}

func NewUTMBuilderHandlers(controller *builder.Controller) *UTMBuilderHandlers {
	return &UTMBuilderHandlers{controller: controller}
}

// ListPresetsHandler godoc
// @Summary      List UTM presets
// @Description  Returns the preset catalog in display order. The custom entry carries no values.
// @Tags         UTM Builder
// @Produce      json
// @Success      200 {array} models.UTMPresetResponse
// @Failure      500 {object} models.APIErrorResponse
// @Router       /utm/presets [get]
func (h *UTMBuilderHandlers) ListPresetsHandler(c *gin.Context) {
	presets, err := utils.UTMPresets()
	if err != nil {
		respondError(c, http.StatusInternalServerError, models.ErrorCodeInternal, "Failed to load presets", err)
		return
	}
	out := make([]models.UTMPresetResponse, 0, len(presets))
	for _, p := range presets {
		out = append(out, models.UTMPresetResponse{Key: p.Key, Label: p.Label, Values: p.Values})
	}
	c.PureJSON(http.StatusOK, out)
}

// GetStateHandler godoc
// @Summary      Get builder state
// @Description  Returns the saved form, the rendered preview and the current action status.
// @Tags         UTM Builder
// @Produce      json
// @Success      200 {object} models.UTMStateResponse
// @Router       /utm/state [get]
func (h *UTMBuilderHandlers) GetStateHandler(c *gin.Context) {
	c.PureJSON(http.StatusOK, models.NewUTMStateResponse(h.controller.Snapshot()))
}

// UpdateStateHandler godoc
// @Summary      Edit builder fields
// @Description  Applies a partial update. Changing a tag value switches the preset marker to custom.
// @Tags         UTM Builder
// @Accept       json
// @Produce      json
// @Param        edit body models.UpdateUTMStateRequest true "Fields to change"
// @Success      200 {object} models.UTMStateResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /utm/state [patch]
func (h *UTMBuilderHandlers) UpdateStateHandler(c *gin.Context) {
	var req models.UpdateUTMStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, "Invalid request payload", err)
		return
	}
	snap := h.controller.Edit(c.Request.Context(), req.Edit())
	c.PureJSON(http.StatusOK, models.NewUTMStateResponse(snap))
}

// ApplyPresetHandler godoc
// @Summary      Apply a preset
// @Description  Overwrites all five tag values with the preset's values. The custom preset only changes the marker.
// @Tags         UTM Builder
// @Produce      json
// @Param        key path string true "Preset key"
// @Success      200 {object} models.UTMStateResponse
// @Failure      404 {object} models.APIErrorResponse
// @Router       /utm/presets/{key}/apply [post]
func (h *UTMBuilderHandlers) ApplyPresetHandler(c *gin.Context) {
	key := c.Param("key")
	snap, err := h.controller.ApplyPreset(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, utils.ErrUnknownPreset) {
			respondError(c, http.StatusNotFound, models.ErrorCodeUnknownPreset, "Unknown preset: "+key, nil)
			return
		}
		respondError(c, http.StatusInternalServerError, models.ErrorCodeInternal, "Failed to apply preset", err)
		return
	}
	c.PureJSON(http.StatusOK, models.NewUTMStateResponse(snap))
}

// ResetHandler godoc
// @Summary      Reset the form
// @Description  Restores the default values and saves them.
// @Tags         UTM Builder
// @Produce      json
// @Success      200 {object} models.UTMStateResponse
// @Router       /utm/reset [post]
func (h *UTMBuilderHandlers) ResetHandler(c *gin.Context) {
	c.PureJSON(http.StatusOK, models.NewUTMStateResponse(h.controller.Reset(c.Request.Context())))
}

// CopyURLHandler godoc
// @Summary      Copy the full URL
// @Description  Writes the formatted full URL to the host clipboard.
// @Tags         UTM Builder
// @Produce      json
// @Success      200 {object} models.UTMActionResponse
// @Failure      409 {object} models.APIErrorResponse "Required fields are missing or the URL is invalid"
// @Router       /utm/copy/url [post]
func (h *UTMBuilderHandlers) CopyURLHandler(c *gin.Context) {
	res, err := h.controller.CopyURL(c.Request.Context())
	h.respondAction(c, res, err)
}

// CopyTagsHandler godoc
// @Summary      Copy the UTM tags
// @Description  Writes "?" followed by the formatted tag-only query to the host clipboard.
// @Tags         UTM Builder
// @Produce      json
// @Success      200 {object} models.UTMActionResponse
// @Failure      409 {object} models.APIErrorResponse "Required tags are missing"
// @Router       /utm/copy/tags [post]
func (h *UTMBuilderHandlers) CopyTagsHandler(c *gin.Context) {
	res, err := h.controller.CopyTags(c.Request.Context())
	h.respondAction(c, res, err)
}

// OpenHandler godoc
// @Summary      Open the URL
// @Description  Opens the encoded full URL in the host's default browser.
// @Tags         UTM Builder
// @Produce      json
// @Success      200 {object} models.UTMActionResponse
// @Failure      409 {object} models.APIErrorResponse "Required fields are missing or the URL is invalid"
// @Router       /utm/open [post]
func (h *UTMBuilderHandlers) OpenHandler(c *gin.Context) {
	res, err := h.controller.Open(c.Request.Context())
	h.respondAction(c, res, err)
}

func (h *UTMBuilderHandlers) respondAction(c *gin.Context, res builder.ActionResult, err error) {
	switch {
	case errors.Is(err, builder.ErrNotReady):
		respondError(c, http.StatusConflict, models.ErrorCodeNotReady, builder.MsgNotReady, nil)
	case errors.Is(err, builder.ErrNoTags):
		respondError(c, http.StatusConflict, models.ErrorCodeNoTags, builder.MsgNoTags, nil)
	case err != nil:
		respondError(c, http.StatusInternalServerError, models.ErrorCodeInternal, "Action failed", err)
	default:
		c.PureJSON(http.StatusOK, models.UTMActionResponse{Text: models.SafeURLString(res.Text), OK: res.OK, Status: res.Status})
	}
}
