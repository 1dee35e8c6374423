// Command taskbox-server starts the taskbox HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/taskbox/taskbox/internal/config"
	"github.com/taskbox/taskbox/internal/repository/memory"
	"github.com/taskbox/taskbox/internal/seed"
	httpserver "github.com/taskbox/taskbox/internal/server/http"
	"github.com/taskbox/taskbox/internal/service"
	"github.com/taskbox/taskbox/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, seeds the in-memory stores, and serves HTTP
// until interrupted.
func main() {
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("port", cfg.Port),
	)

	if cfg.JWTSecret == config.DefaultSecret {
		logger.Warn("using development signing secret; set TASKBOX_JWT_SECRET in production")
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Stores, seeded once at startup
	users := memory.NewUserStore()
	for _, u := range seed.Users() {
		if err := users.Create(ctx, &u); err != nil {
			logger.Fatal("seed users", zap.Error(err))
		}
	}
	items := memory.NewItemStore(seed.Items())

	// Services
	codec := token.NewCodec([]byte(cfg.JWTSecret))
	authSvc := service.NewAuthService(users, codec, cfg.AccessTTL)
	itemSvc := service.NewItemService(items)

	app := httpserver.New(authSvc, itemSvc, codec, logger)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: app.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
