// Package server boots the whole service: configuration, MongoDB, Redis,
// storage, the middleware stack, routes, the WebSocket hub, the cache-warm
// scheduler, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/laziz/app/routes"
	"github.com/shashiranjanraj/laziz/config"
	"github.com/shashiranjanraj/laziz/internal/cart"
	"github.com/shashiranjanraj/laziz/pkg/cache"
	"github.com/shashiranjanraj/laziz/pkg/database"
	"github.com/shashiranjanraj/laziz/pkg/event"
	"github.com/shashiranjanraj/laziz/pkg/logger"
	"github.com/shashiranjanraj/laziz/pkg/metrics"
	"github.com/shashiranjanraj/laziz/pkg/middleware"
	"github.com/shashiranjanraj/laziz/pkg/reqid"
	"github.com/shashiranjanraj/laziz/pkg/router"
	"github.com/shashiranjanraj/laziz/pkg/schedule"
	"github.com/shashiranjanraj/laziz/pkg/session"
	"github.com/shashiranjanraj/laziz/pkg/storage"
	"github.com/shashiranjanraj/laziz/pkg/ws"
)

// Start boots every subsystem and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Connect(ctx); err != nil {
		return err
	}
	defer database.Disconnect(context.Background()) //nolint:errcheck

	if err := database.EnsureIndexes(ctx); err != nil {
		return err
	}

	// Ship logs into Mongo alongside stdout when enabled.
	var mongoLog *logger.MongoHandler
	if config.MongoLogEnabled() {
		mongoLog = logger.NewMongoHandler(database.Collection("logs"))
		logger.UseHandler(logger.NewMultiHandler(currentHandler(), mongoLog))
		defer mongoLog.Close()
	}

	// Redis is optional: without it the menu composes from Mongo on every
	// request and carts fall back to cookie-identified in-memory sessions.
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, serving uncached", "error", err)
	}

	if err := storage.Connect(); err != nil {
		return err
	}

	hub := ws.NewHub()
	go hub.Run()

	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. Session           — cart identity cookie
	//  6. CORS              — set CORS headers
	//  7. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(session.Middleware(session.DefaultOptions()))
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus /metrics endpoint — no auth, no rate limit.
	r.HandleFunc("/metrics", metrics.Handler())

	// Locally stored images are served straight off the disk root.
	if config.StorageDefault() == "local" {
		fs := http.StripPrefix("/storage/", http.FileServer(http.Dir(config.StorageLocalRoot())))
		r.HandleFunc("/storage/*", fs.ServeHTTP)
	}

	r.HandleFunc("/ws/menu", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, hub)
	})

	carts := cart.NewStore()
	menuService := routes.RegisterAPI(r, database.DB, carts)

	// Every admin write lands here: drop the cached payload, tell clients.
	event.Listen(event.MenuChanged, func(interface{}) {
		menuService.Invalidate()
		hub.NotifyMenuChanged()
	})

	// Keep the cache warm so TTL expiry never lands on a customer request.
	schedule.Every(5).Minutes().Name("menu.cache-warm").WithoutOverlapping().Run(func() {
		menuService.Warm(context.Background())
	})
	schedule.Start(ctx)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("laziz serving", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// currentHandler exposes the stdout handler so the Mongo fan-out can wrap it.
func currentHandler() slog.Handler {
	return logger.L.Handler()
}
