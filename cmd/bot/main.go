package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockadmin/internal/config"
	"stockadmin/internal/editor"
	"stockadmin/internal/handler"
	"stockadmin/internal/middleware"
	"stockadmin/internal/phonemask"
	"stockadmin/internal/repository/api"
	"stockadmin/internal/service"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting stock admin bot",
		zap.String("api_base_url", cfg.API.BaseURL),
	)

	// Initialize repositories
	client := api.NewClient(api.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		RPS:     cfg.API.RPS,
	}, logger)
	storeRepo := api.NewStoreRepo(client)
	warehouseRepo := api.NewWarehouseRepo(client)
	stockRepo := api.NewStockRepo(client)

	// Initialize services
	storeService := service.NewStoreService(storeRepo, logger)
	warehouseService := service.NewWarehouseService(warehouseRepo, logger)
	stockService := service.NewStockService(stockRepo, logger)

	ed := editor.New(
		storeService,
		warehouseService,
		stockService,
		phonemask.NewMask(logger),
		logger,
	)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			logger.Error("Handler failed", zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst)
	bot.Use(
		middleware.Logging(logger),
		middleware.RateLimit(limiter, logger),
	)

	// Initialize handler
	h := handler.NewHandler(bot, storeService, warehouseService, ed, cfg.API.Timeout, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start session purge job in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runPurgeJob(ctx, h, limiter, cfg.SessionTTL, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// newLogger builds a production logger at the given level
func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = atomicLevel
	return zapCfg.Build()
}

// runPurgeJob periodically drops idle admin dialogs and their rate limiters
func runPurgeJob(ctx context.Context, h *handler.Handler, limiter *middleware.RateLimiter, ttl time.Duration, logger *zap.Logger) {
	interval := ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session purge job stopped")
			return
		case <-ticker.C:
			if purged := h.PurgeSessions(ttl); purged > 0 {
				logger.Info("Purged idle sessions",
					zap.Int("purged", purged),
					zap.Int("active", h.SessionCount()),
				)
			}
			if purged := limiter.Purge(ttl); purged > 0 {
				logger.Debug("Purged idle rate limiters",
					zap.Int("purged", purged),
					zap.Int("active", limiter.Len()),
				)
			}
		}
	}
}
