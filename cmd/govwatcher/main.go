// Govwatcher server — watches governance proposals across configured
// chains, analyzes them, and notifies matching subscribers.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/govwatcher/govwatcher/pkg/analysis"
	"github.com/govwatcher/govwatcher/pkg/api"
	"github.com/govwatcher/govwatcher/pkg/chain"
	"github.com/govwatcher/govwatcher/pkg/cleanup"
	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/database"
	"github.com/govwatcher/govwatcher/pkg/delivery"
	"github.com/govwatcher/govwatcher/pkg/metrics"
	"github.com/govwatcher/govwatcher/pkg/notify"
	"github.com/govwatcher/govwatcher/pkg/scheduler"
	"github.com/govwatcher/govwatcher/pkg/services"
	"github.com/govwatcher/govwatcher/pkg/subscriber"
	"github.com/govwatcher/govwatcher/pkg/watcher"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting govwatcher",
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services over the database
	proposalService := services.NewProposalService(dbClient.Client)
	cursorService := services.NewCursorService(dbClient.Client)
	analysisService := services.NewAnalysisService(dbClient.Client)
	deliveryService := services.NewDeliveryService(dbClient.Client)
	subscriberService := services.NewSubscriberService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Metrics registry
	promRegistry := prometheus.NewRegistry()
	reg := metrics.NewRegistry(promRegistry)

	// 5. Analysis stack: providers in fallback order, analyzer, cache
	providers, err := analysis.BuildProviders(cfg.Defaults.ProviderOrder, cfg.LLMProviderRegistry)
	if err != nil {
		slog.Error("Failed to build analysis providers", "error", err)
		os.Exit(1)
	}
	analyzer := analysis.NewAnalyzer(providers, cfg.Defaults.AnalysisTimeout, reg)
	cache := analysis.NewCache(analysisService, reg)
	slog.Info("Analysis stack initialized", "providers", len(providers))

	// 6. Subscriber matcher and delivery gate
	matcher := subscriber.NewMatcher(subscriberService, cfg.Defaults.DirectoryCacheTTL)

	notifier, err := notify.New(cfg.Notify)
	if err != nil {
		slog.Error("Failed to build notifier", "error", err)
		os.Exit(1)
	}
	gate := delivery.NewGate(deliveryService, notifier, cfg.Defaults.SendTimeout, reg)
	slog.Info("Delivery gate initialized", "transport", cfg.Notify.Transport)

	// 7. Scheduler with one watcher per configured chain
	sched := scheduler.New(cfg.Scheduler, cfg.Notify.ServiceURL, matcher, cache, analyzer, gate, reg)
	for chainID, chainCfg := range cfg.ChainRegistry.GetAll() {
		client := chain.NewClient(chainID, chainCfg)
		w := watcher.New(chainID, chainCfg.Name, client, proposalService, cursorService, sched.HandleEvent, reg)
		sched.AddWatcher(w)
	}
	sched.Start(ctx)

	// 8. Retention sweep
	cleanupService := cleanup.NewService(cfg.Retention, cache, deliveryService)
	cleanupService.Start(ctx)

	// 9. Start HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, gate, sched, reg, promRegistry)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	cfgStats := cfg.Stats()
	slog.Info("Govwatcher started successfully",
		"chains", cfgStats.Chains,
		"llm_providers", cfgStats.LLMProviders)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: HTTP first so no new admin work arrives,
	// then the pipeline in stage order, then the sweep
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	}

	sched.Stop()
	cleanupService.Stop()

	slog.Info("Govwatcher shutdown complete")
}
