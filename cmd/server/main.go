package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"homestay-settlement/internal/cache"
	"homestay-settlement/internal/config"
	"homestay-settlement/internal/database"
	"homestay-settlement/internal/gateway"
	"homestay-settlement/internal/handler"
	"homestay-settlement/internal/logger"
	"homestay-settlement/internal/repository/postgres"
	"homestay-settlement/internal/service"
	"homestay-settlement/internal/worker"

	_ "homestay-settlement/docs"
)

// @title Homestay Settlement API
// @version 1.0
// @description Booking, payment and wallet settlement engine for the homestay platform
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Bootstrap logger until config is loaded
	log := logger.New("info", true)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log = logger.New(cfg.Server.LogLevel, cfg.Server.LogPretty)

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// TTL key-value store for gateway callback dedup
	dedupStore, err := cache.NewRedisStore(dbCtx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer dedupStore.Close()

	// Repositories
	walletRepo := postgres.NewWalletRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	bookingRepo := postgres.NewBookingRepository(dbPool)
	couponRepo := postgres.NewCouponRepository(dbPool)
	roomRepo := postgres.NewRoomRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Services
	walletService := service.NewWalletService(walletRepo, ledgerRepo, txManager, log)
	pricingService := service.NewPricingService(couponRepo, bookingRepo, txManager, log)
	bookingService := service.NewBookingService(bookingRepo, roomRepo, couponRepo, walletService, pricingService, txManager, log)
	reconciliationService := service.NewReconciliationService(walletRepo, ledgerRepo, txManager, cfg.Worker.ReconciliationGrace, log)

	providers := []gateway.Provider{
		gateway.NewMomoProvider(cfg.Gateway.MomoPartnerCode, cfg.Gateway.MomoAccessKey, cfg.Gateway.MomoSecretKey),
		gateway.NewVnpayProvider(cfg.Gateway.VnpaySecretKey),
	}
	settlementService := service.NewSettlementService(providers, bookingService, dedupStore, cfg.Gateway.CallbackDedupTTL, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker repairing half-applied transfers
	reconciliationWorker := worker.NewReconciliationWorker(reconciliationService, cfg.Worker.ReconciliationInterval, log)
	reconciliationWorker.Start(ctx)
	defer reconciliationWorker.Stop()

	// http handler
	h := handler.NewHandler(bookingService, walletService, pricingService, settlementService, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
