package models

import "time"

type ContentType string

const (
	ContentTypeVideo ContentType = "video"
	ContentTypeImage ContentType = "image"
	ContentTypeText  ContentType = "text"
)

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusReady     ContentStatus = "ready"
	ContentStatusPublished ContentStatus = "published"
)

// Metadata là túi key-value mở (views, likes, scriptId, topic, automated...).
// Các field mà Orchestrator thực sự đọc có accessor riêng để tránh lỗi gõ key.
type Metadata map[string]any

func (m Metadata) ScriptID() (int64, bool) {
	switch v := m["scriptId"].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64: // sau khi đi qua JSON, số luôn là float64
		return int64(v), true
	}
	return 0, false
}

type Content struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	ContentType   ContentType   `json:"contentType"`
	Status        ContentStatus `json:"status"`
	FilePath      *string       `json:"filePath"`
	ThumbnailPath *string       `json:"thumbnailPath"`
	Metadata      Metadata      `json:"metadata"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type ContentInput struct {
	Title         string        `json:"title" binding:"required"`
	Description   string        `json:"description"`
	ContentType   ContentType   `json:"contentType" binding:"required,oneof=video image text"`
	Status        ContentStatus `json:"status" binding:"omitempty,oneof=draft ready published"`
	FilePath      *string       `json:"filePath"`
	ThumbnailPath *string       `json:"thumbnailPath"`
	Metadata      Metadata      `json:"metadata"`
}

type ContentUpdate struct {
	Title         *string        `json:"title"`
	Description   *string        `json:"description"`
	ContentType   *ContentType   `json:"contentType" binding:"omitempty,oneof=video image text"`
	Status        *ContentStatus `json:"status" binding:"omitempty,oneof=draft ready published"`
	FilePath      *string        `json:"filePath"`
	ThumbnailPath *string        `json:"thumbnailPath"`
	Metadata      Metadata       `json:"metadata"`
}
