package repository

import (
	"sync"

	"github.com/roomkit/roomkit/internal/domain"
)

// Store holds every active room and its message log in process memory. Both
// maps live behind the same mutex so cross-cutting mutations (create, expiry,
// reset) apply to a room and its log as one step, never partially.
type Store struct {
	rooms  map[string]*domain.Room    // ID -> Room
	byUser map[string]*domain.Room    // UserID -> Room
	byKey  map[string]*domain.Room    // AccessKey -> Room
	logs   map[string]*domain.RoomLog // UserID -> RoomLog
	mu     sync.RWMutex
}

var (
	_ domain.RoomRepository    = (*Store)(nil)
	_ domain.MessageRepository = (*Store)(nil)
)

// NewStore returns a store pre-populated with the seed fixture, matching the
// state the server boots with.
func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

// reset rebuilds all indexes from the seed fixture. Callers must hold mu, or
// be the only reference holder (NewStore).
func (s *Store) reset() {
	s.rooms = make(map[string]*domain.Room)
	s.byUser = make(map[string]*domain.Room)
	s.byKey = make(map[string]*domain.Room)
	s.logs = make(map[string]*domain.RoomLog)

	for _, room := range seedRooms() {
		r := room
		s.rooms[r.ID] = &r
		s.byUser[r.UserID] = &r
		s.byKey[r.AccessKey] = &r
	}
	for _, log := range seedLogs() {
		l := log
		s.logs[l.UserID] = &l
	}
}

// remove deletes a room from every index along with its log. Callers must
// hold mu for writing.
func (s *Store) remove(room *domain.Room) {
	delete(s.rooms, room.ID)
	delete(s.byUser, room.UserID)
	delete(s.byKey, room.AccessKey)
	delete(s.logs, room.UserID)
}

func copyRoom(room *domain.Room) *domain.Room {
	cpy := *room
	return &cpy
}

func copyLog(log *domain.RoomLog) *domain.RoomLog {
	cpy := *log
	cpy.Messages = make([]domain.Message, len(log.Messages))
	copy(cpy.Messages, log.Messages)
	return &cpy
}
