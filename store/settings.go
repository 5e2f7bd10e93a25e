package store

// AutomationSettings là cấu hình automation, chỉ sống trong memory
// (endpoint settings có semantics echo lại input, không persist)
type AutomationSettings struct {
	Enabled              bool   `json:"enabled"`
	IntervalHours        int    `json:"intervalHours"`
	MaxPostsPerDay       int    `json:"maxPostsPerDay"`
	PreferredContentType string `json:"preferredContentType"`
	AutoSchedule         bool   `json:"autoSchedule"`
}

func DefaultAutomationSettings() AutomationSettings {
	return AutomationSettings{
		Enabled:              false,
		IntervalHours:        6,
		MaxPostsPerDay:       3,
		PreferredContentType: "video",
		AutoSchedule:         true,
	}
}

func (s *Store) AutomationSettings() AutomationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) SetAutomationSettings(settings AutomationSettings) AutomationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return s.settings
}

func (s *Store) ToggleAutomation() AutomationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Enabled = !s.settings.Enabled
	return s.settings
}
