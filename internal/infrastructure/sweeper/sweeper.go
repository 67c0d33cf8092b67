package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/roomkit/roomkit/internal/domain"
	"github.com/roomkit/roomkit/internal/infrastructure/metrics"
)

type expirer interface {
	ExpireBefore(ctx context.Context, nowMillis int64) ([]domain.Room, error)
}

// Sweeper periodically evicts rooms whose expiry has passed, cascading to
// their message logs. Run executes in a single goroutine so ticks never
// overlap.
type Sweeper struct {
	store    expirer
	interval time.Duration
	logger   *zap.SugaredLogger
}

func New(store expirer, interval time.Duration, logger *zap.SugaredLogger) *Sweeper {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Sweeper{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

// Run ticks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.store.ExpireBefore(ctx, time.Now().UnixMilli())
	if err != nil {
		s.logger.Errorw("expiry sweep failed", "error", err)
		return
	}

	for _, room := range removed {
		s.logger.Infow("room expired", "roomId", room.ID, "userId", room.UserID)
	}
	if len(removed) > 0 {
		metrics.RoomsExpired.Add(float64(len(removed)))
	}
}
