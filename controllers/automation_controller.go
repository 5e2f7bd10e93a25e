package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/services"
	"github.com/vnkhanh/creator-studio-backend/store"
	"github.com/vnkhanh/creator-studio-backend/ws"
)

type AutomationController struct {
	Store        *store.Store
	Orchestrator *services.Orchestrator
}

// giới hạn số run trong một lần batch-run
const maxBatchRuns = 5

// CreateContent chạy pipeline automation: chủ đề → nội dung → lịch đăng
func (ctl *AutomationController) CreateContent(c *gin.Context) {
	var req services.AutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctl.Orchestrator.CreateContent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, services.ErrNoTopics) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ws.BroadcastContentListChanged()
	c.JSON(http.StatusCreated, result)
}

// Schedule tạo ScheduledPost trực tiếp, có kiểm tra tồn tại
func (ctl *AutomationController) Schedule(c *gin.Context) {
	var input models.ScheduledPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := ctl.Store.GetContent(input.ContentID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content không tồn tại"})
		return
	}
	if _, err := ctl.Store.GetAccount(input.PlatformAccountID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Platform account không tồn tại"})
		return
	}
	c.JSON(http.StatusCreated, ctl.Store.CreatePost(input))
}

// Queue trả về bài sắp đăng; pipeline chạy đồng bộ nên processing luôn rỗng
func (ctl *AutomationController) Queue(c *gin.Context) {
	upcoming := ctl.Store.UpcomingPosts(parseLimit(c, 10))
	if upcoming == nil {
		upcoming = []models.ScheduledPost{}
	}
	c.JSON(http.StatusOK, gin.H{
		"upcoming":   upcoming,
		"processing": []gin.H{},
	})
}

func (ctl *AutomationController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.AutomationSettings())
}

// SetSettings echo lại settings mới, chỉ giữ trong memory
func (ctl *AutomationController) SetSettings(c *gin.Context) {
	var settings store.AutomationSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ctl.Store.SetAutomationSettings(settings))
}

func (ctl *AutomationController) Toggle(c *gin.Context) {
	settings := ctl.Store.ToggleAutomation()
	c.JSON(http.StatusOK, gin.H{
		"message": "Đã đổi trạng thái automation",
		"enabled": settings.Enabled,
	})
}

// Analytics tổng hợp số liệu từ store (không có telemetry thật)
func (ctl *AutomationController) Analytics(c *gin.Context) {
	contents := ctl.Store.ListContents()
	byType := map[models.ContentType]int{}
	automated := 0
	for _, content := range contents {
		byType[content.ContentType]++
		if flag, ok := content.Metadata["automated"].(bool); ok && flag {
			automated++
		}
	}

	posts := ctl.Store.ListPosts()
	byStatus := map[models.PostStatus]int{}
	for _, post := range posts {
		byStatus[post.Status]++
	}

	c.JSON(http.StatusOK, gin.H{
		"totalContent":     len(contents),
		"automatedContent": automated,
		"contentByType":    byType,
		"totalPosts":       len(posts),
		"postsByStatus":    byStatus,
		"totalTopics":      len(ctl.Store.ListTopics()),
	})
}

// Logs dựng từ content gần nhất (chưa có hệ thống log sự kiện riêng)
func (ctl *AutomationController) Logs(c *gin.Context) {
	var logs []gin.H
	for _, content := range ctl.Store.RecentContent(parseLimit(c, 20)) {
		event := "content_created"
		if flag, ok := content.Metadata["automated"].(bool); ok && flag {
			event = "automation_completed"
		}
		logs = append(logs, gin.H{
			"event":       event,
			"contentId":   content.ID,
			"title":       content.Title,
			"contentType": content.ContentType,
			"timestamp":   content.CreatedAt,
		})
	}
	if logs == nil {
		logs = []gin.H{}
	}
	c.JSON(http.StatusOK, logs)
}

// BatchRun chạy pipeline nhiều lần liên tiếp (tối đa maxBatchRuns)
func (ctl *AutomationController) BatchRun(c *gin.Context) {
	var req struct {
		Count       int                `json:"count"`
		ContentType models.ContentType `json:"contentType" binding:"omitempty,oneof=video image text"`
		PlatformID  *int64             `json:"platformId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Count < 1 {
		req.Count = 1
	}
	if req.Count > maxBatchRuns {
		req.Count = maxBatchRuns
	}

	var results []*services.AutomationResult
	var failures []string
	for i := 0; i < req.Count; i++ {
		result, err := ctl.Orchestrator.CreateContent(c.Request.Context(), services.AutomationRequest{
			PlatformID:  req.PlatformID,
			ContentType: req.ContentType,
		})
		if err != nil {
			failures = append(failures, err.Error())
			continue
		}
		results = append(results, result)
	}
	if failures == nil {
		failures = []string{}
	}

	ws.BroadcastContentListChanged()
	c.JSON(http.StatusOK, gin.H{
		"completed": len(results),
		"failed":    len(failures),
		"results":   results,
		"errors":    failures,
	})
}

// TriggerTask là stub: nhận tên task và trả về trạng thái queued
func (ctl *AutomationController) TriggerTask(c *gin.Context) {
	var req struct {
		Task string `json:"task" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"task":     req.Task,
		"status":   "queued",
		"queuedAt": time.Now(),
		"message":  "Task đã được ghi nhận",
	})
}
