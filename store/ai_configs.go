package store

import (
	"time"

	"github.com/vnkhanh/creator-studio-backend/models"
)

func (s *Store) CreateAiConfig(input models.AiConfigInput) models.AiConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.aiConfigSeq++
	config := models.AiConfig{
		ID:             s.aiConfigSeq,
		Name:           input.Name,
		ModelType:      input.ModelType,
		ModelName:      input.ModelName,
		Active:         true,
		Settings:       input.Settings,
		Capabilities:   input.Capabilities,
		LastUpdated:    time.Now(),
		DownloadStatus: models.DownloadNotDownloaded,
	}
	if input.Active != nil {
		config.Active = *input.Active
	}
	if config.Settings == nil {
		config.Settings = models.Metadata{}
	}
	if config.Capabilities == nil {
		config.Capabilities = models.Metadata{}
	}
	s.aiConfigs[config.ID] = config
	return config
}

func (s *Store) GetAiConfig(id int64) (models.AiConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	config, ok := s.aiConfigs[id]
	if !ok {
		return models.AiConfig{}, ErrNotFound
	}
	return config, nil
}

func (s *Store) ListAiConfigs() []models.AiConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AiConfig, 0, len(s.aiConfigs))
	for _, config := range s.aiConfigs {
		out = append(out, config)
	}
	return out
}

func (s *Store) UpdateAiConfig(id int64, input models.AiConfigUpdate) (models.AiConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, ok := s.aiConfigs[id]
	if !ok {
		return models.AiConfig{}, ErrNotFound
	}
	if input.Name != nil {
		config.Name = *input.Name
	}
	if input.ModelType != nil {
		config.ModelType = *input.ModelType
	}
	if input.ModelName != nil {
		config.ModelName = *input.ModelName
	}
	if input.Active != nil {
		config.Active = *input.Active
	}
	if input.Settings != nil {
		config.Settings = input.Settings
	}
	if input.Capabilities != nil {
		config.Capabilities = input.Capabilities
	}
	if input.DownloadStatus != nil {
		config.DownloadStatus = *input.DownloadStatus
	}
	config.LastUpdated = time.Now()
	s.aiConfigs[id] = config
	return config, nil
}

func (s *Store) DeleteAiConfig(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.aiConfigs[id]; !ok {
		return false
	}
	delete(s.aiConfigs, id)
	return true
}
