package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jkelly35/NomadicPerformanceBlog-sub000/docs"
	"github.com/jkelly35/NomadicPerformanceBlog-sub000/internal/config"
)

// @title                       Nutrition Insights API
// @version                     1.0
// @description                 Daily snapshots, habit detection, metric correlations and prioritized insights over nutrition logs.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Println("Connecting to database...")

	app, err := newApplication(ctx, cfg, startTime)
	if err != nil {
		log.Fatalf("Critical: Failed to start: %v", err)
	}
	defer app.Close()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("Critical: Failed to start background jobs: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Nutrition insights engine running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
	}
	cancel()

	log.Println("Server stopped gracefully.")
}
