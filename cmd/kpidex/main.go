package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "kpidex/docs" // swagger spec registration
	"kpidex/internal/api"
	"kpidex/internal/config"
	"kpidex/internal/engine"
	"kpidex/internal/server"
	"kpidex/internal/source"
	"kpidex/internal/version"
	"kpidex/pkg/catalog"
)

//	@title			kpidex API
//	@version		1.0
//	@description	Searchable, filterable catalog of cybersecurity KPI definitions.
//	@BasePath		/api/v1

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("kpidex server starting")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// Materialize the catalog once; it is immutable for the process
	// lifetime.
	cat, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded",
		zap.Int("categories", cat.Len()),
		zap.Int("records", len(cat.Records())),
	)

	eng := engine.New(cat)
	handler := api.NewHandler(eng, logger.Named("api"))

	// Create and start HTTP server
	addr := cfg.GetString("server.host") + ":" + cfg.GetString("server.port")
	srv := server.New(server.Options{
		Addr:      addr,
		RateLimit: float64(cfg.GetInt("server.rate_limit")),
		RateBurst: cfg.GetInt("server.rate_burst"),
	}, logger, handler)

	// Start server in background
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("kpidex server ready", zap.String("addr", addr))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("kpidex server stopped")
}

// loadCatalog materializes the catalog from the configured source.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch src := cfg.GetString("catalog.source"); src {
	case "", "embedded":
		return catalog.Embedded()
	case "sqlite":
		path := cfg.GetString("catalog.path")
		if path == "" {
			return nil, fmt.Errorf("catalog.source sqlite requires catalog.path")
		}
		snap, err := source.LoadSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		return catalog.Load(snap.Manifest, snap.Sources), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", src)
	}
}
