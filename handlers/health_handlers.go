package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/utm_builder/pkg/utils"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthCheckHandler godoc
// @Summary      Health Check
// @Description  Checks the health of the API and that the preset catalog is loaded.
// @Tags         Monitoring
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /health [get]
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	presets, err := utils.UTMPresets()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "UP",
		"presets": len(presets),
	})
}
