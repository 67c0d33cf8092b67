package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomkit/roomkit/internal/domain"
)

const farFuture = int64(9725689998926)

func TestCreateThenGetByUserID(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	room, err := domain.NewRoom("alice", farFuture)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, room))

	got, err := store.GetByUserID(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserID)
	assert.Equal(t, room.ID, got.ID)
	assert.Equal(t, room.AccessKey, got.AccessKey)

	// The new key must differ from every other active room's key.
	all, err := store.List(ctx)
	require.NoError(t, err)
	seen := make(map[string]int)
	for _, r := range all {
		seen[r.AccessKey]++
	}
	assert.Equal(t, 1, seen[got.AccessKey])
}

func TestCreateConflictLeavesStoreUnmodified(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first, err := domain.NewRoom("bob", farFuture)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, first))

	second, err := domain.NewRoom("bob", farFuture)
	require.NoError(t, err)
	err = store.Create(ctx, second)
	require.ErrorIs(t, err, domain.ErrRoomAlreadyExists)

	got, err := store.GetByUserID(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, first.AccessKey, got.AccessKey)

	_, err = store.GetByID(ctx, second.ID)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestGetByIDAndAccessKey(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	room, err := domain.NewRoom("carol", farFuture)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, room))

	byID, err := store.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", byID.UserID)

	byKey, err := store.GetByAccessKey(ctx, room.AccessKey)
	require.NoError(t, err)
	assert.Equal(t, "carol", byKey.UserID)

	_, err = store.GetByAccessKey(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestAppendPreservesOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	room, err := domain.NewRoom("dave", farFuture)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, room))

	msgs := []domain.Message{
		{Text: "one", Timestamp: 1},
		{Text: "two", Timestamp: 2},
		{Text: "three", Timestamp: 3},
	}
	for _, m := range msgs {
		_, err := store.Append(ctx, "dave", m)
		require.NoError(t, err)
	}

	log, err := store.Log(ctx, "dave")
	require.NoError(t, err)
	require.Len(t, log.Messages, 3)
	assert.Equal(t, msgs, log.Messages)
	assert.Equal(t, msgs[2], log.Messages[len(log.Messages)-1])
}

func TestAppendWithoutRoom(t *testing.T) {
	store := NewStore()

	_, err := store.Append(context.Background(), "ghost", domain.Message{Text: "hi", Timestamp: 1})
	assert.ErrorIs(t, err, domain.ErrLogNotFound)
}

func TestLogCopiesAreIndependent(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	log, err := store.Log(ctx, "USER1")
	require.NoError(t, err)
	log.Messages[0].Text = "mutated"

	again, err := store.Log(ctx, "USER1")
	require.NoError(t, err)
	assert.Equal(t, "Hello from room 1!", again.Messages[0].Text)
}

func TestExpireBeforeCascades(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	expired, err := domain.NewRoom("old", 1000)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, expired))
	live, err := domain.NewRoom("new", farFuture)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, live))

	removed, err := store.ExpireBefore(ctx, 2000)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, "old", removed[0].UserID)

	_, err = store.GetByUserID(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	_, err = store.Log(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrLogNotFound)

	// Unexpired rooms are untouched by the same sweep.
	_, err = store.GetByUserID(ctx, "new")
	assert.NoError(t, err)
	_, err = store.Log(ctx, "new")
	assert.NoError(t, err)
}

func TestResetRestoresSeed(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	room, err := domain.NewRoom("erin", farFuture)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, room))
	_, err = store.Append(ctx, "USER1", domain.Message{Text: "extra", Timestamp: 5})
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx))

	rooms, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 4)
	assert.Equal(t, seedRooms(), rooms)

	log, err := store.Log(ctx, "USER1")
	require.NoError(t, err)
	require.Len(t, log.Messages, 1)
	assert.Equal(t, "Hello from room 1!", log.Messages[0].Text)

	// USER4 has a seed room but no log.
	_, err = store.GetByUserID(ctx, "USER4")
	require.NoError(t, err)
	_, err = store.Log(ctx, "USER4")
	assert.ErrorIs(t, err, domain.ErrLogNotFound)
}

func TestCreateAppendListConflictScenario(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	room, err := domain.NewRoom("U1", farFuture)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, room))

	_, err = store.Append(ctx, "U1", domain.Message{Text: "hi", Timestamp: 1000})
	require.NoError(t, err)

	log, err := store.Log(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Message{{Text: "hi", Timestamp: 1000}}, log.Messages)

	dup, err := domain.NewRoom("U1", farFuture)
	require.NoError(t, err)
	require.ErrorIs(t, store.Create(ctx, dup), domain.ErrRoomAlreadyExists)

	got, err := store.GetByUserID(ctx, "U1")
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.ID)
}
