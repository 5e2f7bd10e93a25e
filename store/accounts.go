package store

import (
	"sort"

	"github.com/vnkhanh/creator-studio-backend/models"
)

func (s *Store) CreateAccount(input models.PlatformAccountInput) models.PlatformAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accountSeq++
	account := models.PlatformAccount{
		ID:            s.accountSeq,
		PlatformID:    input.PlatformID,
		Name:          input.Name,
		Username:      input.Username,
		AccessToken:   input.AccessToken,
		RefreshToken:  input.RefreshToken,
		FollowerCount: input.FollowerCount,
		Active:        true,
		Metadata:      input.Metadata,
	}
	if input.Active != nil {
		account.Active = *input.Active
	}
	if account.Metadata == nil {
		account.Metadata = models.Metadata{}
	}
	s.accounts[account.ID] = account
	return account
}

func (s *Store) GetAccount(id int64) (models.PlatformAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return models.PlatformAccount{}, ErrNotFound
	}
	return account, nil
}

func (s *Store) ListAccounts() []models.PlatformAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PlatformAccount, 0, len(s.accounts))
	for _, account := range s.accounts {
		out = append(out, account)
	}
	return out
}

func (s *Store) UpdateAccount(id int64, input models.PlatformAccountUpdate) (models.PlatformAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return models.PlatformAccount{}, ErrNotFound
	}
	if input.PlatformID != nil {
		account.PlatformID = *input.PlatformID
	}
	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Username != nil {
		account.Username = *input.Username
	}
	if input.AccessToken != nil {
		account.AccessToken = input.AccessToken
	}
	if input.RefreshToken != nil {
		account.RefreshToken = input.RefreshToken
	}
	if input.FollowerCount != nil {
		account.FollowerCount = input.FollowerCount
	}
	if input.Active != nil {
		account.Active = *input.Active
	}
	if input.Metadata != nil {
		account.Metadata = input.Metadata
	}
	s.accounts[id] = account
	return account, nil
}

func (s *Store) DeleteAccount(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return false
	}
	delete(s.accounts, id)
	return true
}

func (s *Store) AccountsByPlatform(platformID int64) []models.PlatformAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.PlatformAccount
	for _, account := range s.accounts {
		if account.PlatformID == platformID {
			out = append(out, account)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FirstActiveAccount tìm account active đầu tiên của platform (cho Orchestrator)
func (s *Store) FirstActiveAccount(platformID int64) (models.PlatformAccount, bool) {
	for _, account := range s.AccountsByPlatform(platformID) {
		if account.Active {
			return account, true
		}
	}
	return models.PlatformAccount{}, false
}
