package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/creator-studio-backend/services"
	"github.com/vnkhanh/creator-studio-backend/store"
	"github.com/vnkhanh/creator-studio-backend/ws"
)

type SystemController struct {
	Store *store.Store
}

// Status trả về snapshot tài nguyên synthetic cho dashboard
func (ctl *SystemController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, services.SnapshotSystemStatus(ctl.Store))
}

func (ctl *SystemController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Unix(),
		"websocket": gin.H{
			"enabled": true,
			"stats":   ws.H.GetStats(),
		},
	})
}
