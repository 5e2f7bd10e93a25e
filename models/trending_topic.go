package models

import "time"

type TrendingTopic struct {
	ID           int64     `json:"id"`
	Topic        string    `json:"topic"`
	Category     string    `json:"category"`
	Description  *string   `json:"description,omitempty"`
	TrendScore   int       `json:"trendScore"` // 1..100
	DiscoveredAt time.Time `json:"discoveredAt"`
}

// Input khi tạo chủ đề (nhập tay hoặc từ discovery)
type TrendingTopicInput struct {
	Topic       string  `json:"topic" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description *string `json:"description"`
	TrendScore  int     `json:"trendScore" binding:"required,min=1,max=100"`
}

// Input khi cập nhật: các field nil sẽ giữ nguyên giá trị cũ
type TrendingTopicUpdate struct {
	Topic       *string `json:"topic"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	TrendScore  *int    `json:"trendScore" binding:"omitempty,min=1,max=100"`
}
