package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindhealth/internal/app"
	"mindhealth/internal/cache"
	"mindhealth/internal/config"
	"mindhealth/internal/observability"
	"mindhealth/internal/service"
	"mindhealth/internal/transport/rest"
	"mindhealth/internal/transport/ws"
)

func main() {
	cfg := config.Load()
	log := observability.Configure(os.Stdout, cfg.LogLevel)
	log.Info("started", "storage", cfg.StorageBackend, "fetch_limit", cfg.FetchLimit, "profile_window", cfg.ProfileWindow)
	ctx := context.Background()

	stores, err := app.OpenStores(ctx, cfg)
	if err != nil {
		log.Error("failed to open storage", "err", err)
		os.Exit(1)
	}
	defer stores.Close(ctx)

	rdb, err := app.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		log.Error("failed to connect to Redis", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Info("WebSocket hub started")

	// Initialize caches
	statusCache := cache.NewStatusCache(rdb, cfg.StatusCacheTTL)
	referenceCache := cache.NewReferenceCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWTSecret)
	statusSvc := service.NewStatusService(stores.Assessments, statusCache, app.Engine(cfg))
	assessmentSvc := service.NewAssessmentService(stores.Assessments, statusSvc)
	referenceSvc := service.NewReferenceService(stores.References, referenceCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	assessmentSvc.SetBroadcaster(wsHub)

	container := &rest.Container{
		AuthService:       authSvc,
		StatusService:     statusSvc,
		AssessmentService: assessmentSvc,
		ReferenceService:  referenceSvc,
		WSHub:             wsHub,
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           rest.NewRouter(container),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("ListenAndServe", "err", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "err", err)
	}

	log.Info("Server exited")
}
