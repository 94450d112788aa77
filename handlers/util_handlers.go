package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/utm_builder/models"
	"github.com/vit0-9/utm_builder/pkg/utils"
	"github.com/vit0-9/utm_builder/pkg/utils/settings"
)

// URLUtilitiesHandlers groups the stateless URL utilities
type URLUtilitiesHandlers struct{}

func NewURLUtilitiesHandlers() *URLUtilitiesHandlers {
	return &URLUtilitiesHandlers{}
}

// GenerateUTMHandler godoc
// @Summary      Generate a UTM tagged URL
// @Description  Composes a destination URL with UTM tracking parameters. Nothing is saved. Omitted option fields take their default (all true). An empty or invalid base_url is reported in the error field of a 200 response.
// @Tags         URL Manipulation
// @Accept       json
// @Produce      json
// @Param        utm_request body models.UTMGeneratorRequest true "UTM Generation Request"
// @Success      200 {object} models.UTMGeneratorResponse "Composition result"
// @Failure      400 {object} models.APIErrorResponse "Invalid input"
// @Router       /url/generate-utm [post]
func (h *URLUtilitiesHandlers) GenerateUTMHandler(c *gin.Context) {
	var req models.UTMGeneratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.ErrorCodeInvalidRequest, "Invalid request payload", err)
		return
	}
	opts := req.Options.Merge(settings.Defaults().Options())
	required := utils.RequiredTagsDefault
	if req.RequireCampaign {
		required = utils.RequiredTagsWithCampaign
	}

	result := utils.GenerateUTMLink(req.BaseURL, req.Tags.TagSet(), opts, required)
	c.PureJSON(http.StatusOK, models.NewUTMGeneratorResponse(req.BaseURL, result, opts))
}

func respondError(c *gin.Context, status int, code, message string, err error) {
	resp := models.APIErrorResponse{StatusCode: status, ErrorCode: code, Message: message}
	if err != nil {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}
