package repository

import "github.com/roomkit/roomkit/internal/domain"

// Fixture timestamps: seed rooms never expire on their own (far-future
// expiry); seed messages share one fixed timestamp so resets are
// deterministic.
const (
	seedExpiresAt        = int64(9725689998926)
	seedMessageTimestamp = int64(1725689998926)
)

// seedRooms returns fresh copies of the demo fixture so callers can mutate
// them freely.
func seedRooms() []domain.Room {
	return []domain.Room{
		{ID: "1", UserID: "USER1", AccessKey: "1", ExpiresAt: seedExpiresAt},
		{ID: "2", UserID: "USER2", AccessKey: "2", ExpiresAt: seedExpiresAt},
		{ID: "3", UserID: "USER3", AccessKey: "3", ExpiresAt: seedExpiresAt},
		{ID: "4", UserID: "USER4", AccessKey: "4", ExpiresAt: seedExpiresAt},
	}
}

func seedLogs() []domain.RoomLog {
	return []domain.RoomLog{
		{ID: "1", UserID: "USER1", Messages: []domain.Message{{Text: "Hello from room 1!", Timestamp: seedMessageTimestamp}}},
		{ID: "2", UserID: "USER2", Messages: []domain.Message{{Text: "Hi there from room 2!", Timestamp: seedMessageTimestamp}}},
		{ID: "3", UserID: "USER3", Messages: []domain.Message{{Text: "Greetings from room 3!", Timestamp: seedMessageTimestamp}}},
	}
}
