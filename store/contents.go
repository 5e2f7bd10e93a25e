package store

import (
	"sort"
	"time"

	"github.com/vnkhanh/creator-studio-backend/models"
)

func (s *Store) CreateContent(input models.ContentInput) models.Content {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contentSeq++
	content := models.Content{
		ID:            s.contentSeq,
		Title:         input.Title,
		Description:   input.Description,
		ContentType:   input.ContentType,
		Status:        input.Status,
		FilePath:      input.FilePath,
		ThumbnailPath: input.ThumbnailPath,
		Metadata:      input.Metadata,
		CreatedAt:     time.Now(),
	}
	if content.Status == "" {
		content.Status = models.ContentStatusDraft
	}
	if content.Metadata == nil {
		content.Metadata = models.Metadata{}
	}
	s.contents[content.ID] = content
	return content
}

func (s *Store) GetContent(id int64) (models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.contents[id]
	if !ok {
		return models.Content{}, ErrNotFound
	}
	return content, nil
}

func (s *Store) ListContents() []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Content, 0, len(s.contents))
	for _, content := range s.contents {
		out = append(out, content)
	}
	return out
}

func (s *Store) UpdateContent(id int64, input models.ContentUpdate) (models.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.contents[id]
	if !ok {
		return models.Content{}, ErrNotFound
	}
	if input.Title != nil {
		content.Title = *input.Title
	}
	if input.Description != nil {
		content.Description = *input.Description
	}
	if input.ContentType != nil {
		content.ContentType = *input.ContentType
	}
	if input.Status != nil {
		content.Status = *input.Status
	}
	if input.FilePath != nil {
		content.FilePath = input.FilePath
	}
	if input.ThumbnailPath != nil {
		content.ThumbnailPath = input.ThumbnailPath
	}
	if input.Metadata != nil {
		content.Metadata = input.Metadata
	}
	s.contents[id] = content
	return content, nil
}

func (s *Store) DeleteContent(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contents[id]; !ok {
		return false
	}
	delete(s.contents, id)
	return true
}

// RecentContent trả về tối đa n bản ghi mới nhất theo createdAt giảm dần
func (s *Store) RecentContent(limit int) []models.Content {
	out := s.ListContents()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
