package store

import (
	"time"

	"github.com/vnkhanh/creator-studio-backend/models"
)

func (s *Store) CreateScript(input models.ScriptInput) models.Script {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scriptSeq++
	script := models.Script{
		ID:             s.scriptSeq,
		Title:          input.Title,
		Topic:          input.Topic,
		Format:         input.Format,
		Content:        input.Content,
		DurationSec:    input.DurationSec,
		Tone:           input.Tone,
		TargetAudience: input.TargetAudience,
		Status:         models.ScriptStatusDraft,
		CreatedAt:      time.Now(),
	}
	if script.Format == "" {
		script.Format = models.ScriptFormatGeneric
	}
	s.scripts[script.ID] = script
	return script
}

func (s *Store) GetScript(id int64) (models.Script, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	script, ok := s.scripts[id]
	if !ok {
		return models.Script{}, ErrNotFound
	}
	return script, nil
}

func (s *Store) ListScripts() []models.Script {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Script, 0, len(s.scripts))
	for _, script := range s.scripts {
		out = append(out, script)
	}
	return out
}

func (s *Store) UpdateScript(id int64, input models.ScriptUpdate) (models.Script, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	script, ok := s.scripts[id]
	if !ok {
		return models.Script{}, ErrNotFound
	}
	if input.Title != nil {
		script.Title = *input.Title
	}
	if input.Topic != nil {
		script.Topic = *input.Topic
	}
	if input.Format != nil {
		script.Format = *input.Format
	}
	if input.Content != nil {
		script.Content = *input.Content
	}
	if input.DurationSec != nil {
		script.DurationSec = input.DurationSec
	}
	if input.Tone != nil {
		script.Tone = *input.Tone
	}
	if input.TargetAudience != nil {
		script.TargetAudience = *input.TargetAudience
	}
	if input.AudioPath != nil {
		script.AudioPath = input.AudioPath
	}
	if input.Status != nil {
		script.Status = *input.Status
	}
	s.scripts[id] = script
	return script, nil
}

func (s *Store) DeleteScript(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.scripts[id]; !ok {
		return false
	}
	delete(s.scripts, id)
	return true
}
