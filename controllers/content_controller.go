package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/store"
	"github.com/vnkhanh/creator-studio-backend/ws"
)

type ContentController struct {
	Store *store.Store
}

func (ctl *ContentController) Create(c *gin.Context) {
	var input models.ContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content := ctl.Store.CreateContent(input)
	ws.BroadcastContentListChanged()
	c.JSON(http.StatusCreated, content)
}

func (ctl *ContentController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.ListContents())
}

func (ctl *ContentController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	content, err := ctl.Store.GetContent(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy content"})
		return
	}
	c.JSON(http.StatusOK, content)
}

func (ctl *ContentController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input models.ContentUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content, err := ctl.Store.UpdateContent(id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy content"})
		return
	}
	ws.BroadcastContentListChanged()
	c.JSON(http.StatusOK, content)
}

func (ctl *ContentController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !ctl.Store.DeleteContent(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy content"})
		return
	}
	ws.BroadcastContentListChanged()
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

// Recent trả về n content mới nhất (mặc định 10)
func (ctl *ContentController) Recent(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.RecentContent(parseLimit(c, 10)))
}
