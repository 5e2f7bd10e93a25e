package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/store"
)

type PlatformController struct {
	Store *store.Store
}

func (ctl *PlatformController) Create(c *gin.Context) {
	var input models.PlatformInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ctl.Store.CreatePlatform(input))
}

func (ctl *PlatformController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.ListPlatforms())
}

func (ctl *PlatformController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	platform, err := ctl.Store.GetPlatform(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy platform"})
		return
	}
	c.JSON(http.StatusOK, platform)
}

func (ctl *PlatformController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input models.PlatformUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	platform, err := ctl.Store.UpdatePlatform(id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy platform"})
		return
	}
	c.JSON(http.StatusOK, platform)
}

// Delete xoá platform ngay cả khi còn account tham chiếu (soft foreign key)
func (ctl *PlatformController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !ctl.Store.DeletePlatform(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy platform"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}

// Accounts trả về danh sách account của một platform
func (ctl *PlatformController) Accounts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	accounts := ctl.Store.AccountsByPlatform(id)
	if accounts == nil {
		accounts = []models.PlatformAccount{}
	}
	c.JSON(http.StatusOK, accounts)
}
