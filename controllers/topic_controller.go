package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/store"
)

type TopicController struct {
	Store *store.Store
}

func (ctl *TopicController) Create(c *gin.Context) {
	var input models.TrendingTopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ctl.Store.CreateTopic(input))
}

func (ctl *TopicController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.ListTopics())
}

func (ctl *TopicController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	topic, err := ctl.Store.GetTopic(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy chủ đề"})
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (ctl *TopicController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input models.TrendingTopicUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	topic, err := ctl.Store.UpdateTopic(id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy chủ đề"})
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (ctl *TopicController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !ctl.Store.DeleteTopic(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy chủ đề"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

// Top trả về n chủ đề có trendScore cao nhất (mặc định 5)
func (ctl *TopicController) Top(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.TopTopics(parseLimit(c, 5)))
}
