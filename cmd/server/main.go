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

	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/config"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/infra"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/router"
	"github.com/DKarelly/ProyectoDistribuidos-sub000/internal/worker"
)

// @title API Refugio de Animales
// @version 1.0
// @description Gestion de animales, adopciones, donaciones y apadrinamientos.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuracion")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	handlers := &worker.WorkerHandlers{
		Notificacion: worker.NewNotificacionWorker(mailer, cb),
	}
	worker.StartWorkerPool(ctx, rdb, handlers, cfg.WorkerPoolSize)

	dispatcher := worker.NewDispatcher(rdb)

	engine, err := router.New(cfg, db, rdb, dispatcher)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo construir el router")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("servidor iniciado")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("el servidor termino con error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor...")
	cancel() // stop workers

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado forzado")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rdb.Close()
	log.Info().Msg("servidor detenido")
}
