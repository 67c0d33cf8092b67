package repository

import (
	"context"
	"sort"

	"github.com/roomkit/roomkit/internal/domain"
)

// Create adds a room if the user has no active room and the ID and AccessKey
// are unused. The user's empty message log is created in the same step. On
// failure the store is left unmodified.
func (s *Store) Create(ctx context.Context, room *domain.Room) error {
	if room == nil || room.ID == "" || room.UserID == "" || room.AccessKey == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUser[room.UserID]; exists {
		return domain.ErrRoomAlreadyExists
	}
	if _, exists := s.rooms[room.ID]; exists {
		return domain.ErrRoomAlreadyExists
	}
	if _, exists := s.byKey[room.AccessKey]; exists {
		return domain.ErrRoomAlreadyExists
	}

	stored := copyRoom(room)
	s.rooms[stored.ID] = stored
	s.byUser[stored.UserID] = stored
	s.byKey[stored.AccessKey] = stored
	s.logs[stored.UserID] = &domain.RoomLog{
		ID:       stored.ID,
		UserID:   stored.UserID,
		Messages: []domain.Message{},
	}

	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	room, exists := s.rooms[id]
	if !exists {
		return nil, domain.ErrRoomNotFound
	}
	return copyRoom(room), nil
}

func (s *Store) GetByUserID(ctx context.Context, userID string) (*domain.Room, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	room, exists := s.byUser[userID]
	if !exists {
		return nil, domain.ErrRoomNotFound
	}
	return copyRoom(room), nil
}

func (s *Store) GetByAccessKey(ctx context.Context, accessKey string) (*domain.Room, error) {
	if accessKey == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	room, exists := s.byKey[accessKey]
	if !exists {
		return nil, domain.ErrRoomNotFound
	}
	return copyRoom(room), nil
}

// List returns a snapshot of all active rooms ordered by ID for stable
// responses.
func (s *Store) List(ctx context.Context) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]domain.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, *room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })

	return rooms, nil
}

// ExpireBefore removes every room whose lifetime has elapsed, cascading to
// its message log under the same lock. Unexpired rooms are untouched.
func (s *Store) ExpireBefore(ctx context.Context, nowMillis int64) ([]domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []domain.Room
	for _, room := range s.rooms {
		if room.Expired(nowMillis) {
			removed = append(removed, *room)
		}
	}
	for i := range removed {
		s.remove(&removed[i])
	}

	return removed, nil
}

// Reset discards all state and reseeds the fixture rooms and logs.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	return nil
}
