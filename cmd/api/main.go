package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant_dashboard/internal/config"
	"restaurant_dashboard/internal/logger"
	"restaurant_dashboard/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "text").WithError(err).Fatal("Invalid configuration")
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	srv, err := server.NewServer(startCtx, cfg, log)
	cancelStart()
	if err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
	defer srv.Close()

	go func() {
		log.Infof("Server listening on %s", srv.HTTP.Addr)
		if err := srv.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTP.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("Server Shutdown")
	}
	log.Info("Server exiting")
}
