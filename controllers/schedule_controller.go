package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/store"
)

type ScheduleController struct {
	Store *store.Store
}

func (ctl *ScheduleController) Create(c *gin.Context) {
	var input models.ScheduledPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// contentId và platformAccountId phải tồn tại lúc tạo
	if _, err := ctl.Store.GetContent(input.ContentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content không tồn tại"})
		return
	}
	if _, err := ctl.Store.GetAccount(input.PlatformAccountID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Platform account không tồn tại"})
		return
	}
	c.JSON(http.StatusCreated, ctl.Store.CreatePost(input))
}

func (ctl *ScheduleController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.ListPosts())
}

func (ctl *ScheduleController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	post, err := ctl.Store.GetPost(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy bài đăng"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (ctl *ScheduleController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input models.ScheduledPostUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	post, err := ctl.Store.UpdatePost(id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy bài đăng"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (ctl *ScheduleController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !ctl.Store.DeletePost(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy bài đăng"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

// Upcoming trả về bài đăng sắp tới, tăng dần theo thời gian (mặc định 10)
func (ctl *ScheduleController) Upcoming(c *gin.Context) {
	posts := ctl.Store.UpcomingPosts(parseLimit(c, 10))
	if posts == nil {
		posts = []models.ScheduledPost{}
	}
	c.JSON(http.StatusOK, posts)
}
