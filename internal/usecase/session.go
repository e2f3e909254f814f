package usecase

import (
	"sync"

	"servilink/internal/domain/entity"
)

// Session holds the single logged-in user for the running
// application. It is constructed once, hydrated from the persisted
// session pointer, and shared by every use case.
type Session struct {
	mu      sync.RWMutex
	current *entity.User
}

func NewSession() *Session {
	return &Session{}
}

// Current returns the logged-in user, or nil when logged out.
func (s *Session) Current() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Session) set(user *entity.User) {
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
}

func (s *Session) clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}
