package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	Clients       map[string]map[*websocket.Conn]*Client // Theo từng automation job
	GlobalClients map[*websocket.Conn]*Client            // Dành cho broadcast chung
	Mutex         sync.RWMutex
}

var H = Hub{
	Clients:       make(map[string]map[*websocket.Conn]*Client),
	GlobalClients: make(map[*websocket.Conn]*Client),
}

// Struct gửi trạng thái tiến trình của 1 automation run
type AutomationStatusUpdate struct {
	JobID    string  `json:"jobId"`
	Stage    string  `json:"stage"`
	Progress float64 `json:"progress"`
	Error    string  `json:"error,omitempty"`
}

// Register theo jobID riêng
func (h *Hub) Register(jobID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if _, ok := h.Clients[jobID]; !ok {
		h.Clients[jobID] = make(map[*websocket.Conn]*Client)
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.Clients[jobID][conn] = client

	// handler giữ vòng đọc, hub chỉ lo ghi
	go h.writePump(jobID, conn)
}

// Register global cho trang dashboard
func (h *Hub) RegisterGlobal(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.GlobalClients[conn] = client

	go h.writeGlobalPump(conn)
}

// Broadcast theo jobID
func (h *Hub) Broadcast(jobID string, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	if clients, ok := h.Clients[jobID]; ok {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// Broadcast toàn bộ global clients
func (h *Hub) BroadcastGlobal(data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.GlobalClients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// GetStats trả số client đang kết nối (cho health check)
func (h *Hub) GetStats() map[string]int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	jobs := 0
	for _, clients := range h.Clients {
		jobs += len(clients)
	}
	return map[string]int{
		"job_clients":    jobs,
		"global_clients": len(h.GlobalClients),
	}
}

// Public function gửi status automation run
func SendAutomationUpdate(jobID, stage string, progress float64, errorMsg string) {
	update := AutomationStatusUpdate{
		JobID:    jobID,
		Stage:    stage,
		Progress: progress,
		Error:    errorMsg,
	}
	data, err := json.Marshal(update)
	if err != nil {
		log.Error().Err(err).Msg("JSON marshal error")
		return
	}
	H.Broadcast(jobID, data)
	// dashboard tổng cũng nhận được tiến trình của mọi job
	H.BroadcastGlobal(data)
}

// Public function gửi signal cập nhật danh sách content
func BroadcastContentListChanged() {
	H.BroadcastGlobal([]byte(`{"type": "content_list_changed"}`))
}

// Unregister client theo jobID
func (h *Hub) Unregister(jobID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if clients, ok := h.Clients[jobID]; ok {
		if client, ok := clients[conn]; ok {
			close(client.Send)
			delete(clients, conn)
		}
		if len(clients) == 0 {
			delete(h.Clients, jobID)
		}
	}
}

// Unregister global client
func (h *Hub) UnregisterGlobal(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.GlobalClients[conn]; ok {
		close(client.Send)
		delete(h.GlobalClients, conn)
	}
}

// Write pump riêng theo jobID
func (h *Hub) writePump(jobID string, conn *websocket.Conn) {
	h.Mutex.RLock()
	client := h.Clients[jobID][conn]
	h.Mutex.RUnlock()
	defer func() {
		conn.WriteMessage(websocket.CloseMessage, []byte{})
		conn.Close()
	}()
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}

// Write pump global
func (h *Hub) writeGlobalPump(conn *websocket.Conn) {
	h.Mutex.RLock()
	client := h.GlobalClients[conn]
	h.Mutex.RUnlock()
	defer func() {
		conn.WriteMessage(websocket.CloseMessage, []byte{})
		conn.Close()
	}()
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
