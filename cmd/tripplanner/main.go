package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/trip-planner/internal/app"
	"github.com/example/trip-planner/internal/config"
	"github.com/example/trip-planner/internal/logging"
	"github.com/example/trip-planner/internal/persistence/sqlite"
)

// main boots the trip planner core: configuration, the durable state store
// and the wired services a UI shell drives. The process stays up until
// interrupted so mirrored writes keep flowing while the shell runs.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Default(logging.New(os.Stdout, parseLevel(cfg.LogLevel)))

	kv, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open state store", "error", err)
		os.Exit(1)
	}

	core, err := app.New(ctx, app.Options{
		KV:            kv,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		DefaultTheme:  cfg.DefaultTheme,
		Logger:        logger,
		Now:           time.Now,
	})
	if err != nil {
		logger.Error("failed to start application core", "error", err)
		kv.Close()
		os.Exit(1)
	}
	defer func() {
		if cerr := core.Close(); cerr != nil {
			logger.Error("failed to close state store", "error", cerr)
		}
	}()

	snapshot := core.Sessions.Snapshot()
	logger.Info("trip planner core ready",
		"routes", core.Catalog.Len(),
		"logged_in", snapshot.LoggedIn,
		"favorites", len(snapshot.Favorites),
		"bookings", len(snapshot.Bookings),
		"theme", string(core.Themes.Current()),
	)

	<-ctx.Done()
	logger.Info("shutting down")
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
