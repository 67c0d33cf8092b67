package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roomkit/roomkit/internal/domain"
	"github.com/roomkit/roomkit/internal/infrastructure/repository"
)

func TestSweepRemovesExpiredRooms(t *testing.T) {
	store := repository.NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expired, err := domain.NewRoom("stale", time.Now().Add(-time.Minute).UnixMilli())
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, expired))

	live, err := domain.NewRoom("fresh", time.Now().Add(time.Hour).UnixMilli())
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, live))

	go New(store, 10*time.Millisecond, zap.NewNop().Sugar()).Run(ctx)

	require.Eventually(t, func() bool {
		_, err := store.GetByUserID(ctx, "stale")
		return err != nil
	}, time.Second, 5*time.Millisecond)

	_, err = store.GetByUserID(ctx, "stale")
	require.ErrorIs(t, err, domain.ErrRoomNotFound)
	_, err = store.Log(ctx, "stale")
	require.ErrorIs(t, err, domain.ErrLogNotFound)

	_, err = store.GetByUserID(ctx, "fresh")
	require.NoError(t, err)
}

func TestSweepStopsOnCancel(t *testing.T) {
	store := repository.NewStore()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		New(store, 5*time.Millisecond, zap.NewNop().Sugar()).Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
}
