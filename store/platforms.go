package store

import "github.com/vnkhanh/creator-studio-backend/models"

func (s *Store) CreatePlatform(input models.PlatformInput) models.Platform {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.platformSeq++
	platform := models.Platform{
		ID:     s.platformSeq,
		Name:   input.Name,
		Icon:   input.Icon,
		Active: true,
	}
	if input.Active != nil {
		platform.Active = *input.Active
	}
	s.platforms[platform.ID] = platform
	return platform
}

func (s *Store) GetPlatform(id int64) (models.Platform, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	platform, ok := s.platforms[id]
	if !ok {
		return models.Platform{}, ErrNotFound
	}
	return platform, nil
}

func (s *Store) ListPlatforms() []models.Platform {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Platform, 0, len(s.platforms))
	for _, platform := range s.platforms {
		out = append(out, platform)
	}
	return out
}

func (s *Store) UpdatePlatform(id int64, input models.PlatformUpdate) (models.Platform, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	platform, ok := s.platforms[id]
	if !ok {
		return models.Platform{}, ErrNotFound
	}
	if input.Name != nil {
		platform.Name = *input.Name
	}
	if input.Icon != nil {
		platform.Icon = *input.Icon
	}
	if input.Active != nil {
		platform.Active = *input.Active
	}
	s.platforms[id] = platform
	return platform, nil
}

// DeletePlatform xoá ngay, không kiểm tra account còn tham chiếu
// (chấp nhận dangling reference, xem DESIGN.md)
func (s *Store) DeletePlatform(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.platforms[id]; !ok {
		return false
	}
	delete(s.platforms, id)
	return true
}
