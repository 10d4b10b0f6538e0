package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/velamart/saferoute-bridge/api/routes"
	"github.com/velamart/saferoute-bridge/internal/cart"
	"github.com/velamart/saferoute-bridge/internal/catalog"
	"github.com/velamart/saferoute-bridge/internal/locales"
	"github.com/velamart/saferoute-bridge/internal/orders"
	"github.com/velamart/saferoute-bridge/internal/payments"
	"github.com/velamart/saferoute-bridge/internal/promotions"
	"github.com/velamart/saferoute-bridge/internal/provider"
	"github.com/velamart/saferoute-bridge/internal/session"
	"github.com/velamart/saferoute-bridge/pkg/config"
	"github.com/velamart/saferoute-bridge/pkg/db"
	"github.com/velamart/saferoute-bridge/pkg/logger"
	"github.com/velamart/saferoute-bridge/pkg/metrics"
	"github.com/velamart/saferoute-bridge/pkg/migrate"
	"github.com/velamart/saferoute-bridge/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "saferoute-bridge"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "saferoute-bridge",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessions := session.NewStore(redisClient, cfg.Widget)

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	discounts, err := promotions.NewCalculator(promotions.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create discount calculator", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cart.ServiceParams{
		Sessions:  sessions,
		Catalog:   catalogService,
		Discounts: discounts,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.ServiceParams{
		Repo:           orders.NewRepository(dbClient.DB()),
		Tx:             dbClient,
		NotifyOnStatus: cfg.SafeRoute.NotifyOnStatus,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	paymentsService, err := payments.NewService(payments.ServiceParams{
		Registry: payments.NewRegistry(cfg.Payments.Methods),
		Titles:   locales.PaymentMethods,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create payments service", err)
		os.Exit(1)
	}

	providerClient, err := provider.NewClient(cfg.SafeRoute)
	if err != nil {
		logg.Error(context.Background(), "failed to create provider client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	bridgeMetrics := metrics.NewBridgeMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting saferoute bridge")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:         cfg,
			Logger:         logg,
			DB:             dbClient,
			Redis:          redisClient,
			Sessions:       sessions,
			CartService:    cartService,
			OrdersService:  ordersService,
			Payments:       paymentsService,
			ProviderClient: providerClient,
			Metrics:        bridgeMetrics,
			Registry:       registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "bridge server stopped unexpectedly", err)
		os.Exit(1)
	}
}
