package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	appbilling "github.com/invoicehub/backend/internal/application/billing"
	appidentity "github.com/invoicehub/backend/internal/application/identity"
	apppartner "github.com/invoicehub/backend/internal/application/partner"
	"github.com/invoicehub/backend/internal/infrastructure/auth"
	"github.com/invoicehub/backend/internal/infrastructure/cache"
	"github.com/invoicehub/backend/internal/infrastructure/config"
	"github.com/invoicehub/backend/internal/infrastructure/logger"
	"github.com/invoicehub/backend/internal/infrastructure/persistence"
	"github.com/invoicehub/backend/internal/interfaces/http/handler"
	"github.com/invoicehub/backend/internal/interfaces/http/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	log.Info("starting",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabase(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	var listingCache appbilling.ListingCache
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return fmt.Errorf("init redis: %w", err)
		}
		redisCache := cache.NewRedisListingCache(redisClient)
		defer redisCache.Close()
		listingCache = redisCache
		log.Info("listing cache: redis", zap.String("host", cfg.Redis.Host))
	} else {
		listingCache = cache.NewMemoryListingCache()
		log.Info("listing cache: in-memory")
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	invoiceService := appbilling.NewInvoiceService(
		persistence.NewGormInvoiceRepository(db.DB), listingCache, cfg.Cache.ListingTTL, log)
	customerService := apppartner.NewCustomerService(
		persistence.NewGormCustomerRepository(db.DB), log)
	authService := appidentity.NewAuthService(
		appidentity.NewLocalCredentialVerifier(persistence.NewGormUserRepository(db.DB)), log)

	engine := router.New(cfg, log, jwtService, router.Handlers{
		Invoice:  handler.NewInvoiceHandler(invoiceService, log),
		Customer: handler.NewCustomerHandler(customerService, log),
		Auth:     handler.NewAuthHandler(authService, jwtService, log),
		System:   handler.NewSystemHandler(db, log),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("stopped")
	return nil
}
