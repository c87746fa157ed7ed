package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopquest/ShopQuest_Go/internal/config"
	"github.com/shopquest/ShopQuest_Go/internal/content"
	"github.com/shopquest/ShopQuest_Go/internal/cosmetics"
	"github.com/shopquest/ShopQuest_Go/internal/crafting"
	"github.com/shopquest/ShopQuest_Go/internal/database"
	"github.com/shopquest/ShopQuest_Go/internal/database/postgres"
	"github.com/shopquest/ShopQuest_Go/internal/event"
	"github.com/shopquest/ShopQuest_Go/internal/handler"
	"github.com/shopquest/ShopQuest_Go/internal/metrics"
	"github.com/shopquest/ShopQuest_Go/internal/player"
	"github.com/shopquest/ShopQuest_Go/internal/quest"
	"github.com/shopquest/ShopQuest_Go/internal/server"
)

// Connection pool defaults
const (
	dbMaxConnections = 25
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = time.Hour

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	connString := cfg.GetDBConnString()

	if err := database.RunMigrations(connString); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(connString, dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store, err := content.NewLoader().Load(cfg.ContentDir)
	if err != nil {
		slog.Error("Failed to load content", "error", err, "dir", cfg.ContentDir)
		os.Exit(1)
	}
	slog.Info("Content loaded",
		"recipes", len(store.Recipes()),
		"quests", len(store.Quests()),
		"themes", len(store.Themes()),
		"table_skins", len(store.TableSkins()))

	repo := postgres.NewPlayerRepository(pool)

	// Event bus with retry semantics; metrics are fed off the raw bus
	bus := event.NewMemoryBus()
	publisher := event.NewResilientPublisher(bus, event.DefaultResilientConfig())

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		slog.Error("Failed to register event metrics collector", "error", err)
		os.Exit(1)
	}

	playerService := player.NewService(repo, publisher)
	craftingService := crafting.NewService(repo, store, publisher)
	questService := quest.NewService(repo, store, publisher)
	cosmeticsService := cosmetics.NewService(repo, store, publisher)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, playerService, craftingService, questService, cosmeticsService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}

	// Flush in-flight event retries before the process exits
	publisher.Wait()

	slog.Info("Server stopped")
}
