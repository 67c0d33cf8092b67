package main

import (
	"context"
	"expvar"
	"log"
	"runtime"

	"go.uber.org/zap"

	"github.com/roomkit/roomkit/internal/infrastructure/configs"
	"github.com/roomkit/roomkit/internal/infrastructure/ratelimiter"
	"github.com/roomkit/roomkit/internal/infrastructure/repository"
	"github.com/roomkit/roomkit/internal/infrastructure/storage"
	"github.com/roomkit/roomkit/internal/infrastructure/sweeper"
	"github.com/roomkit/roomkit/internal/infrastructure/tracing"
	"github.com/roomkit/roomkit/internal/infrastructure/ws"
	"github.com/roomkit/roomkit/internal/presentation/api"
	"github.com/roomkit/roomkit/internal/presentation/handler/admin"
	"github.com/roomkit/roomkit/internal/presentation/handler/files"
	"github.com/roomkit/roomkit/internal/presentation/handler/health"
	"github.com/roomkit/roomkit/internal/presentation/handler/messages"
	"github.com/roomkit/roomkit/internal/presentation/handler/realtime"
	"github.com/roomkit/roomkit/internal/presentation/handler/rooms"
)

func main() {
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	cfg := configs.Default()
	if configPath := configs.DetermineConfigPath(); configPath != "" {
		loaded, err := configs.Load(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.Init(ctx, "roomkit", cfg.Tracing.Endpoint, cfg.Env)
		if err != nil {
			log.Fatal(err)
		}
		defer shutdown(context.Background())
	}

	store := repository.NewStore()

	uploads, err := storage.NewUploads(cfg.Uploads.Dir, logger)
	if err != nil {
		log.Fatal(err)
	}

	core := ws.NewCore(logger)
	go core.Run(ctx)

	go sweeper.New(store, cfg.Sweep.Interval, logger).Run(ctx)

	handlers := api.Handlers{
		Rooms:    rooms.NewHandler(store, store),
		Messages: messages.NewHandler(store, core),
		Files:    files.NewHandler(store, uploads, core),
		Admin:    admin.NewHandler(store, uploads, logger),
		Health:   health.NewHandler(cfg.Version),
		Realtime: realtime.NewHandler(core, logger),
	}

	rateLimiter := ratelimiter.NewFixedWindowRateLimiter(cfg.RateLimiter.RequestsPerTimeFrame, cfg.RateLimiter.TimeFrame)
	defer rateLimiter.Close()

	app := api.NewApplication(*cfg, handlers, logger, rateLimiter)

	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.Mount()
	if err := app.Run(mux); err != nil {
		logger.Fatalw("server exited", "error", err)
	}
}
