package ws

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // chỉ để phát triển, nên giới hạn ở production
	},
}

// gửi message dạng JSON qua WebSocket
func sendJSON(conn *websocket.Conn, data interface{}) {
	msg, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("Lỗi JSON marshal")
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Error().Err(err).Msg("Lỗi gửi message")
	}
}

// WebSocket theo dõi tiến trình một automation job
func HandleAutomationWebSocket(c *gin.Context) {
	jobID := c.Param("jobId")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade thất bại")
		return
	}
	log.Info().Str("job", jobID).Msg("Automation WS connected")

	H.Register(jobID, conn)
	defer H.Unregister(jobID, conn)

	sendJSON(conn, gin.H{"type": "connected", "message": "Connected to automation job " + jobID})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	log.Info().Str("job", jobID).Msg("Automation WS disconnected")
	conn.Close()
}

// WebSocket cho dashboard tổng
func HandleGlobalWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade thất bại")
		return
	}
	log.Info().Msg("Global WS connected")

	H.RegisterGlobal(conn)
	defer H.UnregisterGlobal(conn)

	sendJSON(conn, gin.H{"type": "connected", "message": "Connected to global WebSocket"})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	log.Info().Msg("Global WS disconnected")
	conn.Close()
}
