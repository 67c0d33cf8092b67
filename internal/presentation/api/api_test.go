package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roomkit/roomkit/internal/domain"
	"github.com/roomkit/roomkit/internal/infrastructure/configs"
	"github.com/roomkit/roomkit/internal/infrastructure/ratelimiter"
	"github.com/roomkit/roomkit/internal/infrastructure/repository"
	"github.com/roomkit/roomkit/internal/infrastructure/storage"
	"github.com/roomkit/roomkit/internal/infrastructure/ws"
	"github.com/roomkit/roomkit/internal/presentation/handler/admin"
	"github.com/roomkit/roomkit/internal/presentation/handler/files"
	"github.com/roomkit/roomkit/internal/presentation/handler/health"
	"github.com/roomkit/roomkit/internal/presentation/handler/messages"
	"github.com/roomkit/roomkit/internal/presentation/handler/realtime"
	"github.com/roomkit/roomkit/internal/presentation/handler/rooms"
)

func newTestApp(t *testing.T, cfg *configs.Config) http.Handler {
	t.Helper()
	logger := zap.NewNop().Sugar()

	store := repository.NewStore()
	uploads, err := storage.NewUploads(t.TempDir(), logger)
	require.NoError(t, err)

	core := ws.NewCore(logger)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go core.Run(ctx)

	handlers := Handlers{
		Rooms:    rooms.NewHandler(store, store),
		Messages: messages.NewHandler(store, core),
		Files:    files.NewHandler(store, uploads, core),
		Admin:    admin.NewHandler(store, uploads, logger),
		Health:   health.NewHandler(cfg.Version),
		Realtime: realtime.NewHandler(core, logger),
	}

	rl := ratelimiter.NewFixedWindowRateLimiter(cfg.RateLimiter.RequestsPerTimeFrame, cfg.RateLimiter.TimeFrame)
	t.Cleanup(rl.Close)

	return NewApplication(*cfg, handlers, logger, rl).Mount()
}

func TestMountRoutes(t *testing.T) {
	cfg := configs.Default()
	cfg.RateLimiter.Enabled = false
	mux := newTestApp(t, cfg)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/ping", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/v1/health", http.StatusOK},
		{http.MethodGet, "/v1/rooms", http.StatusOK},
		{http.MethodGet, "/v1/rooms/1", http.StatusOK},
		{http.MethodGet, "/v1/rooms/user/USER1", http.StatusOK},
		{http.MethodGet, "/v1/rooms/user/USER1/messages", http.StatusOK},
		{http.MethodGet, "/v1/system/space", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, tt.status, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestCreateAndFetchRoomOverHTTP(t *testing.T) {
	cfg := configs.Default()
	cfg.RateLimiter.Enabled = false
	mux := newTestApp(t, cfg)

	body := strings.NewReader(`{"userId":"alice","duration":9725689998926}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/rooms", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var room domain.Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &room))

	req = httptest.NewRequest(http.MethodGet, "/v1/rooms/key/"+room.AccessKey, nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiterMiddleware(t *testing.T) {
	cfg := configs.Default()
	cfg.RateLimiter.RequestsPerTimeFrame = 2
	cfg.RateLimiter.TimeFrame = time.Minute
	mux := newTestApp(t, cfg)

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
