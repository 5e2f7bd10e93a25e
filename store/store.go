// Package store là repository in-memory cho toàn bộ entity của dashboard.
// Dữ liệu chỉ sống trong process, mất khi restart (chủ đích thiết kế).
package store

import (
	"errors"
	"sync"

	"github.com/vnkhanh/creator-studio-backend/models"
)

var ErrNotFound = errors.New("record not found")

// Store giữ map + counter riêng cho từng loại entity. Gin phục vụ request
// trên nhiều goroutine nên mọi thao tác phải qua RWMutex.
type Store struct {
	mu sync.RWMutex

	topicSeq    int64
	scriptSeq   int64
	contentSeq  int64
	platformSeq int64
	accountSeq  int64
	postSeq     int64
	aiConfigSeq int64
	userSeq     int64

	topics    map[int64]models.TrendingTopic
	scripts   map[int64]models.Script
	contents  map[int64]models.Content
	platforms map[int64]models.Platform
	accounts  map[int64]models.PlatformAccount
	posts     map[int64]models.ScheduledPost
	aiConfigs map[int64]models.AiConfig
	users     map[int64]models.User

	settings AutomationSettings
}

func NewStore() *Store {
	return &Store{
		topics:    make(map[int64]models.TrendingTopic),
		scripts:   make(map[int64]models.Script),
		contents:  make(map[int64]models.Content),
		platforms: make(map[int64]models.Platform),
		accounts:  make(map[int64]models.PlatformAccount),
		posts:     make(map[int64]models.ScheduledPost),
		aiConfigs: make(map[int64]models.AiConfig),
		users:     make(map[int64]models.User),
		settings:  DefaultAutomationSettings(),
	}
}
