package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/creator-studio-backend/models"
	"github.com/vnkhanh/creator-studio-backend/store"
)

type AccountController struct {
	Store *store.Store
}

func (ctl *AccountController) Create(c *gin.Context) {
	var input models.PlatformAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// platform phải tồn tại lúc tạo (sau đó xoá platform thì chấp nhận dangling)
	if _, err := ctl.Store.GetPlatform(input.PlatformID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Platform không tồn tại"})
		return
	}
	c.JSON(http.StatusCreated, ctl.Store.CreateAccount(input))
}

func (ctl *AccountController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Store.ListAccounts())
}

func (ctl *AccountController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	account, err := ctl.Store.GetAccount(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy account"})
		return
	}
	c.JSON(http.StatusOK, account)
}

func (ctl *AccountController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input models.PlatformAccountUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	account, err := ctl.Store.UpdateAccount(id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy account"})
		return
	}
	c.JSON(http.StatusOK, account)
}

func (ctl *AccountController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !ctl.Store.DeleteAccount(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Xóa thành công"})
}
