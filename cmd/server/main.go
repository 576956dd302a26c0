package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/config"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/infra"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/router"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// SMTP goes through a circuit breaker shared by every email path.
	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	r, loadListWorker := router.New(cfg, db, rdb, smtpCB)

	// Goroutine worker pool for async tasks (load-list email).
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, loadListWorker)

	// Daily load-list schedule — disabled when no recipient is configured.
	dispatcher := worker.NewDispatcher(rdb)
	sched, err := worker.StartLoadListSchedule(ctx, cfg.LoadListCronSpec, cfg.LoadListRecipient, dispatcher)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid load-list cron spec")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("gestionale listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	if sched != nil {
		sched.Stop()
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
