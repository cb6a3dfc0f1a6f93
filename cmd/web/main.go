package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trendify-storefront/internal/cart"
	"trendify-storefront/internal/config"
	"trendify-storefront/internal/gateway"
	"trendify-storefront/internal/httpserver"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[web] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	registry := prometheus.NewRegistry()
	client, err := gateway.New(cfg.APIBaseURL,
		gateway.WithLogger(logger),
		gateway.WithTimeout(cfg.APITimeout),
		gateway.WithMaxRetries(cfg.APIMaxRetries),
		gateway.WithMetrics(gateway.NewMetrics(registry)),
	)
	if err != nil {
		logger.Fatalf("init gateway: %v", err)
	}

	var (
		store  cart.Store
		pinger httpserver.Pinger
	)
	if cfg.RedisAddr != "" {
		redisStore, err := cart.NewRedisStore(cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("init redis cart store: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		pinger = redisStore
	} else {
		store = cart.NewFileStore(cfg.CartStorePath)
	}

	manager := cart.NewManager(store, logger)
	checkout := cart.NewCheckout(manager, cfg.CheckoutDelay, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog:  client,
		Cart:     manager,
		Checkout: checkout,
		Metrics:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Store:    pinger,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
