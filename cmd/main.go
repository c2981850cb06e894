package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nisand-KB/FRESH-MART/internal/config"
	httpapi "github.com/Nisand-KB/FRESH-MART/internal/http"
	"github.com/Nisand-KB/FRESH-MART/internal/repository"
	"github.com/Nisand-KB/FRESH-MART/internal/service"
	"github.com/Nisand-KB/FRESH-MART/internal/telemetry"

	_ "github.com/Nisand-KB/FRESH-MART/docs"
)

func main() {
	telemetry.InitLogger()

	cfgPath := os.Getenv("FRESHMART_CONFIG")
	if cfgPath == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			cfgPath = "config.yaml"
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	catalog, err := repository.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		slog.Error("catalog load failed", "error", err)
		os.Exit(1)
	}

	session := service.NewSession(cfg.DefaultLanguage)
	cart := service.NewCartService(catalog)
	checkout := service.NewCheckoutService(cart, cfg.WhatsAppRecipient)

	geo := service.UnavailableGeolocator()
	if cfg.Sensor != nil {
		geo = service.FixedGeolocator(*cfg.Sensor)
	}
	location := service.NewLocationService(geo)

	srv := httpapi.NewServer(catalog, session, cart, checkout, location)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
