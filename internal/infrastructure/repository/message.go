package repository

import (
	"context"

	"github.com/roomkit/roomkit/internal/domain"
)

// Append adds a message to the user's log. The append is a single atomic
// mutation; entries keep insertion order and are never deduplicated.
func (s *Store) Append(ctx context.Context, userID string, message domain.Message) (*domain.RoomLog, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log, exists := s.logs[userID]
	if !exists {
		return nil, domain.ErrLogNotFound
	}

	log.Messages = append(log.Messages, message)

	return copyLog(log), nil
}

// Log returns a copy of the user's message log.
func (s *Store) Log(ctx context.Context, userID string) (*domain.RoomLog, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	log, exists := s.logs[userID]
	if !exists {
		return nil, domain.ErrLogNotFound
	}

	return copyLog(log), nil
}
