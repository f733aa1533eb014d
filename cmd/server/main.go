package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"depot/internal/catalog"
	"depot/internal/config"
	"depot/internal/geo"
	"depot/internal/infrastructure/logger"
	"depot/internal/infrastructure/metrics"
	"depot/internal/infrastructure/mysql"
	"depot/internal/order"
	"depot/internal/payment"
	"depot/internal/server"
)

func main() {
	// A missing .env is fine; config falls back to defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	m := metrics.New("depot")
	geocoder := geo.NewStubGeocoder()
	charger := payment.NewStubCharger()

	catalogCtrl := catalog.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, geocoder, charger, zapLogger)

	router := server.NewRouter(catalogCtrl, orderCtrl, m, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
