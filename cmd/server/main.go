package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/test-centre-booking-stub/internal/app"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/config"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/pkg/logger"
	"github.com/nekogravitycat/test-centre-booking-stub/internal/slot"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init logger
	zapLogger, err := logger.New(cfg.IsProduction)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Slot generation policy: defaults plus env overrides
	slotConfig := slot.DefaultConfig()
	slotConfig.DayStartHour = cfg.SlotDayStartHour
	slotConfig.DayEndHour = cfg.SlotDayEndHour
	slotConfig.MaxSlotQuantity = cfg.SlotMaxQuantity

	// Init container
	container := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		SlotConfig:   slotConfig,
		Rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
		Now:          time.Now,
		Logger:       zapLogger,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		zapLogger.Info("server running", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	zapLogger.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("server exited gracefully")
}
