package store

import (
	"time"

	"github.com/vnkhanh/creator-studio-backend/models"
)

// CreateUser nhận password ĐÃ hash (controller chịu trách nhiệm bcrypt)
func (s *Store) CreateUser(fullName, email, hashedPassword string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	user := models.User{
		ID:        s.userSeq,
		FullName:  fullName,
		Email:     email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}
	s.users[user.ID] = user
	return user
}

func (s *Store) GetUser(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user)
	}
	return out
}

func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *Store) UpdateUser(id int64, input models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	s.users[id] = user
	return user, nil
}

func (s *Store) DeleteUser(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}
