package rooms

import "github.com/roomkit/roomkit/internal/domain"

type createRoomRequest struct {
	UserID string `json:"userId"`
	// Duration is the absolute expiry instant in epoch milliseconds.
	Duration int64 `json:"duration"`
}

type enterRoomRequest struct {
	UserID string `json:"userId"`
}

type roomLookupResponse struct {
	Room     *domain.Room    `json:"room"`
	RoomData *domain.RoomLog `json:"roomData"`
}
