package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/roomkit/roomkit/internal/infrastructure/configs"
	"github.com/roomkit/roomkit/internal/infrastructure/ratelimiter"
	"github.com/roomkit/roomkit/internal/presentation/handler/admin"
	"github.com/roomkit/roomkit/internal/presentation/handler/files"
	"github.com/roomkit/roomkit/internal/presentation/handler/health"
	"github.com/roomkit/roomkit/internal/presentation/handler/messages"
	"github.com/roomkit/roomkit/internal/presentation/handler/realtime"
	"github.com/roomkit/roomkit/internal/presentation/handler/rooms"
)

type Handlers struct {
	Rooms    *rooms.Handler
	Messages *messages.Handler
	Files    *files.Handler
	Admin    *admin.Handler
	Health   *health.Handler
	Realtime *realtime.Handler
}

type Application struct {
	cfg         configs.Config
	handlers    Handlers
	logger      *zap.SugaredLogger
	ratelimiter *ratelimiter.FixedWindowRateLimiter
}

func NewApplication(cfg configs.Config, handlers Handlers, logger *zap.SugaredLogger, rl *ratelimiter.FixedWindowRateLimiter) *Application {
	return &Application{
		cfg:         cfg,
		handlers:    handlers,
		logger:      logger,
		ratelimiter: rl,
	}
}

func (app *Application) Mount() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(app.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if app.cfg.RateLimiter.Enabled {
		r.Use(app.rateLimiterMiddleware)
	}

	r.Get("/", app.handlers.Health.GetRoot)
	r.Get("/ping", app.handlers.Health.GetPing)
	r.Get("/ws", app.handlers.Realtime.ServeWS)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(app.cfg.Uploads.Dir))))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.handlers.Health.GetHealth)

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", app.handlers.Rooms.ListRoomsHandler)
			r.Post("/", app.handlers.Rooms.CreateRoomHandler)
			r.Post("/enter", app.handlers.Rooms.EnterRoomHandler)
			r.Get("/key/{accessKey}", app.handlers.Rooms.GetRoomByKeyHandler)
			r.Route("/user/{userID}", func(r chi.Router) {
				r.Get("/", app.handlers.Rooms.RoomDetailsHandler)
				r.Get("/messages", app.handlers.Messages.ListMessagesHandler)
				r.Post("/messages", app.handlers.Messages.CreateMessageHandler)
			})
			r.Get("/{roomID}", app.handlers.Rooms.GetRoomByIDHandler)
		})

		r.Route("/files", func(r chi.Router) {
			r.Post("/", app.handlers.Files.UploadFileHandler)
			r.Delete("/", app.handlers.Files.DeleteAllFilesHandler)
		})

		r.Get("/system/space", app.handlers.Files.SpaceInfoHandler)
		r.Post("/admin/reset", app.handlers.Admin.ResetHandler)
	})

	return otelhttp.NewHandler(r, "roomkit.http")
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests.
func (app *Application) Run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.cfg.Addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	shutdownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		app.logger.Infow("shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server started", "addr", app.cfg.Addr, "env", app.cfg.Env)

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdownErr; err != nil {
		return err
	}

	app.logger.Infow("server stopped", "addr", app.cfg.Addr)
	return nil
}
