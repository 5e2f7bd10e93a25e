package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/services"
	"github.com/vnkhanh/creator-studio-backend/store"
)

type ScriptController struct {
	Store *store.Store
	TTS   services.TextToSpeech
}

func (ctl *ScriptController) Create(c *gin.Context) {
	var input models.ScriptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ctl.Store.CreateScript(input))
}

func (ctl *ScriptController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.ListScripts())
}

func (ctl *ScriptController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	script, err := ctl.Store.GetScript(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy kịch bản"})
		return
	}
	c.JSON(http.StatusOK, script)
}

func (ctl *ScriptController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input models.ScriptUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	script, err := ctl.Store.UpdateScript(id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy kịch bản"})
		return
	}
	c.JSON(http.StatusOK, script)
}

func (ctl *ScriptController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !ctl.Store.DeleteScript(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy kịch bản"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

type scriptAudioRequest struct {
	VoiceID string `json:"voiceId"`
	Format  string `json:"format"`
}

// ToAudio chuyển kịch bản thành audio; thành công thì script
// chuyển trạng thái draft → finalized
func (ctl *ScriptController) ToAudio(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	script, err := ctl.Store.GetScript(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy kịch bản"})
		return
	}

	var req scriptAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audio, err := ctl.TTS.ScriptToAudio(c.Request.Context(), script.Content, req.VoiceID, req.Format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := models.ScriptStatusFinalized
	durationSec := int(audio.DurationMs / 1000)
	script, err = ctl.Store.UpdateScript(id, models.ScriptUpdate{
		AudioPath:   &audio.AudioPath,
		DurationSec: &durationSec,
		Status:      &status,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy kịch bản"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"script": script,
		"audio":  audio,
	})
}
