package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"degrees/backend/internal/api"
	"degrees/backend/internal/dataset"
	"degrees/backend/internal/degrees"
	"degrees/backend/internal/search"
	"degrees/backend/pkg/config"
	"degrees/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	dataDir := flag.String("data", "", "CSV dataset directory (defaults to DATA_DIR)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env, false); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting HTTP API server...", zap.String("data_source", cfg.DataSource))

	ctx := context.Background()
	g, err := dataset.Load(ctx, cfg, *dataDir)
	if err != nil {
		log.Fatal("Failed to load collaboration graph", zap.Error(err))
	}

	svc := degrees.NewService(g, time.Duration(cfg.SearchTimeoutMS)*time.Millisecond)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	discipline, err := search.ParseDiscipline(cfg.DefaultDiscipline)
	if err != nil {
		log.Fatal("Invalid default discipline", zap.Error(err))
	}
	router := api.NewRouter(svc, discipline, log)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
