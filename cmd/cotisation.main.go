package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cotisation-service/internal/config"
	"cotisation-service/internal/server"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, relying on system env vars")
	}

	cfg := config.Load()
	srv := server.NewServer(cfg, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("cotisation HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.StartHTTP(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.HTTP.Shutdown(ctx); err != nil {
			log.Error("http shutdown failed", zap.Error(err))
		}
	case err := <-errCh:
		log.Fatal("server error", zap.Error(err))
	}
}
