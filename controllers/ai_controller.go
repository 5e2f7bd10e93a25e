package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/services"
	"github.com/vnkhanh/creator-studio-backend/store"
)

// AiController expose từng generation service riêng lẻ
// (không qua pipeline automation)
type AiController struct {
	Store   *store.Store
	Scripts services.ScriptGenerator
	Images  services.ImageGenerator
	Video   services.VideoCompiler
}

type generateScriptRequest struct {
	Topic           string              `json:"topic" binding:"required"`
	Title           string              `json:"title"`
	Format          models.ScriptFormat `json:"format" binding:"omitempty,oneof=video short podcast generic"`
	DurationMinutes int                 `json:"durationMinutes"`
	Tone            string              `json:"tone"`
	TargetAudience  string              `json:"targetAudience"`
}

// GenerateScript sinh kịch bản và lưu thành Script record (status draft)
func (ctl *AiController) GenerateScript(c *gin.Context) {
	var req generateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DurationMinutes < 1 {
		req.DurationMinutes = 5
	}

	content, err := ctl.Scripts.GenerateScript(c.Request.Context(), services.ScriptRequest{
		Topic:           req.Topic,
		Format:          req.Format,
		DurationMinutes: req.DurationMinutes,
		Tone:            req.Tone,
		Audience:        req.TargetAudience,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	title := req.Title
	if title == "" {
		title = req.Topic
	}
	durationSec := req.DurationMinutes * 60
	script := ctl.Store.CreateScript(models.ScriptInput{
		Title:          title,
		Topic:          req.Topic,
		Format:         req.Format,
		Content:        content,
		DurationSec:    &durationSec,
		Tone:           req.Tone,
		TargetAudience: req.TargetAudience,
	})

	c.JSON(http.StatusCreated, script)
}

func (ctl *AiController) GenerateImage(c *gin.Context) {
	var req services.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu prompt"})
		return
	}

	result, err := ctl.Images.GenerateImage(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type generateVideoRequest struct {
	ScriptID        int64  `json:"scriptId" binding:"required"`
	Resolution      string `json:"resolution"`
	Style           string `json:"style"`
	ThumbnailPrompt string `json:"thumbnailPrompt"`
}

// GenerateVideo dựng video từ một Script có sẵn;
// thành công thì script chuyển trạng thái → converted
func (ctl *AiController) GenerateVideo(c *gin.Context) {
	var req generateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	script, err := ctl.Store.GetScript(req.ScriptID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy kịch bản"})
		return
	}

	result, err := ctl.Video.GenerateVideo(c.Request.Context(), script.Content, script.Title, req.Resolution, req.Style, req.ThumbnailPrompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := models.ScriptStatusConverted
	script, _ = ctl.Store.UpdateScript(script.ID, models.ScriptUpdate{Status: &status})

	c.JSON(http.StatusOK, gin.H{
		"script": script,
		"video":  result,
	})
}
