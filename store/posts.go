package store

import (
	"sort"
	"time"

	"github.com/vnkhanh/creator-studio-backend/models"
)

func (s *Store) CreatePost(input models.ScheduledPostInput) models.ScheduledPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.postSeq++
	post := models.ScheduledPost{
		ID:                s.postSeq,
		ContentID:         input.ContentID,
		PlatformAccountID: input.PlatformAccountID,
		ScheduledTime:     input.ScheduledTime,
		Status:            input.Status,
	}
	if post.Status == "" {
		post.Status = models.PostStatusPending
	}
	s.posts[post.ID] = post
	return post
}

func (s *Store) GetPost(id int64) (models.ScheduledPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return models.ScheduledPost{}, ErrNotFound
	}
	return post, nil
}

func (s *Store) ListPosts() []models.ScheduledPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ScheduledPost, 0, len(s.posts))
	for _, post := range s.posts {
		out = append(out, post)
	}
	return out
}

func (s *Store) UpdatePost(id int64, input models.ScheduledPostUpdate) (models.ScheduledPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return models.ScheduledPost{}, ErrNotFound
	}
	if input.ContentID != nil {
		post.ContentID = *input.ContentID
	}
	if input.PlatformAccountID != nil {
		post.PlatformAccountID = *input.PlatformAccountID
	}
	if input.ScheduledTime != nil {
		post.ScheduledTime = *input.ScheduledTime
	}
	if input.Status != nil {
		post.Status = *input.Status
	}
	if input.PostID != nil {
		post.PostID = input.PostID
	}
	if input.Error != nil {
		post.Error = input.Error
	}
	s.posts[id] = post
	return post, nil
}

func (s *Store) DeletePost(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return false
	}
	delete(s.posts, id)
	return true
}

// UpcomingPosts lọc bài có scheduledTime > now, sắp xếp tăng dần
func (s *Store) UpcomingPosts(limit int) []models.ScheduledPost {
	now := time.Now()
	var out []models.ScheduledPost
	for _, post := range s.ListPosts() {
		if post.ScheduledTime.After(now) {
			out = append(out, post)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledTime.Before(out[j].ScheduledTime)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
