package domain

import (
	"context"

	"github.com/google/uuid"
	gonanoid "github.com/jaevor/go-nanoid"
)

// Room is an ephemeral session owned by exactly one user. The AccessKey is a
// secondary lookup token so a room can be shared without revealing the userId.
type Room struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	AccessKey string `json:"key"`
	ExpiresAt int64  `json:"expiresAt"` // absolute epoch milliseconds
}

// accessKeyLength matches the 12-character keys handed out to clients.
const accessKeyLength = 12

var newAccessKey = func() func() string {
	gen, err := gonanoid.Standard(accessKeyLength)
	if err != nil {
		panic(err)
	}
	return gen
}()

func NewRoom(userID string, expiresAt int64) (*Room, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}

	return &Room{
		ID:        uuid.NewString(),
		UserID:    userID,
		AccessKey: newAccessKey(),
		ExpiresAt: expiresAt,
	}, nil
}

// Expired reports whether the room's lifetime has elapsed at the given
// epoch-millisecond instant.
func (r *Room) Expired(nowMillis int64) bool {
	return r.ExpiresAt <= nowMillis
}

type RoomRepository interface {
	// Create stores the room and an empty log for its user in one step.
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	GetByUserID(ctx context.Context, userID string) (*Room, error)
	GetByAccessKey(ctx context.Context, accessKey string) (*Room, error)
	List(ctx context.Context) ([]Room, error)
	// ExpireBefore removes every room whose ExpiresAt has passed, together
	// with its message log, and returns the removed rooms.
	ExpireBefore(ctx context.Context, nowMillis int64) ([]Room, error)
	// Reset replaces all rooms and logs with the seed fixture.
	Reset(ctx context.Context) error
}
