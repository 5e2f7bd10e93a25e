package store

import (
	"sort"
	"time"

	"github.com/vnkhanh/creator-studio-backend/models"
)

func (s *Store) CreateTopic(input models.TrendingTopicInput) models.TrendingTopic {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.topicSeq++
	topic := models.TrendingTopic{
		ID:           s.topicSeq,
		Topic:        input.Topic,
		Category:     input.Category,
		Description:  input.Description,
		TrendScore:   input.TrendScore,
		DiscoveredAt: time.Now(),
	}
	s.topics[topic.ID] = topic
	return topic
}

func (s *Store) GetTopic(id int64) (models.TrendingTopic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topic, ok := s.topics[id]
	if !ok {
		return models.TrendingTopic{}, ErrNotFound
	}
	return topic, nil
}

func (s *Store) ListTopics() []models.TrendingTopic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TrendingTopic, 0, len(s.topics))
	for _, topic := range s.topics {
		out = append(out, topic)
	}
	return out
}

// UpdateTopic merge các field khác nil, giữ nguyên phần còn lại
func (s *Store) UpdateTopic(id int64, input models.TrendingTopicUpdate) (models.TrendingTopic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	topic, ok := s.topics[id]
	if !ok {
		return models.TrendingTopic{}, ErrNotFound
	}
	if input.Topic != nil {
		topic.Topic = *input.Topic
	}
	if input.Category != nil {
		topic.Category = *input.Category
	}
	if input.Description != nil {
		topic.Description = input.Description
	}
	if input.TrendScore != nil {
		topic.TrendScore = *input.TrendScore
	}
	s.topics[id] = topic
	return topic, nil
}

func (s *Store) DeleteTopic(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.topics[id]; !ok {
		return false
	}
	delete(s.topics, id)
	return true
}

// TopTopics trả về n chủ đề có trendScore cao nhất, giảm dần
func (s *Store) TopTopics(limit int) []models.TrendingTopic {
	out := s.ListTopics()
	sort.Slice(out, func(i, j int) bool {
		return out[i].TrendScore > out[j].TrendScore
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopTopic lấy đúng 1 chủ đề hot nhất (cho Orchestrator)
func (s *Store) TopTopic() (models.TrendingTopic, error) {
	top := s.TopTopics(1)
	if len(top) == 0 {
		return models.TrendingTopic{}, ErrNotFound
	}
	return top[0], nil
}
