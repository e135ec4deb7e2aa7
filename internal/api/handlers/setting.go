package handlers

import (
	"net/http"

	"field-dispatch-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingHandler handles HTTP requests for global settings
type SettingHandler struct {
	settingService service.SettingServiceInterface
}

// NewSettingHandler creates a new setting handler
func NewSettingHandler(settingService service.SettingServiceInterface) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// ListSettings handles GET /settings
// @Summary List all settings
// @Tags settings
// @Produce json
// @Success 200 {array} models.Setting "Successfully retrieved settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *SettingHandler) ListSettings(c *gin.Context) {
	settings, err := h.settingService.List()
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetSetting handles GET /settings/:key
// @Summary Get a setting
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} models.Setting "Successfully retrieved setting"
// @Failure 404 {object} map[string]interface{} "Setting not found"
// @Security BearerAuth
// @Router /settings/{key} [get]
func (h *SettingHandler) GetSetting(c *gin.Context) {
	setting, err := h.settingService.GetByKey(c.Param("key"))
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// SetSetting handles PUT /settings/:key
// @Summary Write a setting
// @Description Writes a setting value, creating the key when absent
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param setting body service.SettingRequest true "Setting value"
// @Success 200 {object} models.Setting "Successfully saved setting"
// @Security BearerAuth
// @Router /settings/{key} [put]
func (h *SettingHandler) SetSetting(c *gin.Context) {
	var req service.SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	setting, err := h.settingService.Set(c.Param("key"), &req)
	if err != nil {
		respondMissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}
