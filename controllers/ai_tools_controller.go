package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/store"
)

// AiToolsController quản lý cấu hình backend AI (AiConfig)
type AiToolsController struct {
	Store *store.Store
}

func (ctl *AiToolsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.ListAiConfigs())
}

func (ctl *AiToolsController) CreateSetting(c *gin.Context) {
	var input models.AiConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ctl.Store.CreateAiConfig(input))
}

func (ctl *AiToolsController) UpdateSetting(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input models.AiConfigUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config, err := ctl.Store.UpdateAiConfig(id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy cấu hình"})
		return
	}
	c.JSON(http.StatusOK, config)
}

func (ctl *AiToolsController) DeleteSetting(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !ctl.Store.DeleteAiConfig(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy cấu hình"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

// TestConnection giả lập kiểm tra kết nối tới backend của một cấu hình
func (ctl *AiToolsController) TestConnection(c *gin.Context) {
	var req struct {
		ConfigID int64 `json:"configId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config, err := ctl.Store.GetAiConfig(req.ConfigID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy cấu hình"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"configId":  config.ID,
		"modelName": config.ModelName,
		"connected": config.Active,
		"latencyMs": 40 + time.Now().UnixNano()%60,
		"testedAt":  time.Now(),
	})
}

// AvailableModels liệt kê model khả dụng theo loại (catalog tĩnh)
func (ctl *AiToolsController) AvailableModels(c *gin.Context) {
	catalog := map[models.ModelType][]string{
		models.ModelTypeLLM:   {"gemini-2.0-flash", "llama-3.3-70b-versatile", "stub-writer"},
		models.ModelTypeTTS:   {"vi-VN-Chirp3-HD-Puck", "nam-tram", "nu-cao", "nam-tre", "nu-tram"},
		models.ModelTypeImage: {"stable-diffusion-xl", "stub-painter"},
		models.ModelTypeVideo: {"slideshow-compiler"},
	}

	if modelType := c.Query("type"); modelType != "" {
		names, ok := catalog[models.ModelType(modelType)]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Loại model không hợp lệ"})
			return
		}
		c.JSON(http.StatusOK, gin.H{string(modelType): names})
		return
	}
	c.JSON(http.StatusOK, catalog)
}
