package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legalscholer_app_go/config"
	"legalscholer_app_go/middleware"
	"legalscholer_app_go/services"
	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/services/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	middleware.InitAssetVersions(cfg.StaticDir)
	if _, err := services.InitSessions(cfg); err != nil {
		log.Fatalf("Failed to initialize sessions: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.Init(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	e := newServer(cfg)

	// Drop landing sessions whose page stopped polling without saying goodbye
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				services.CleanupIdleSessions()
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		log.Printf("[INFO] Server starting on port %s (%s)", cfg.ServerPort, cfg.Environment)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[INFO] Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARNING] Server shutdown: %v", err)
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARNING] Tracer shutdown: %v", err)
	}
}
