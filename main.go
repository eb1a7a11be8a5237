package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calcjus/config"
	httpLayer "calcjus/http"
	"calcjus/logger"
	"calcjus/repository"
	"calcjus/service"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	// Repositório do último cálculo: memória por padrão, Redis quando
	// configurado.
	var records repository.RecordRepository = repository.NewRecordRepositoryMemory()
	if cfg.RedisAddr != "" {
		cache := repository.NewRedisCache(cfg.RedisAddr)
		if err := cache.Ping(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis indisponível")
		}
		records = repository.NewRecordRepositoryCached(cache)
		log.Info().Str("addr", cfg.RedisAddr).Msg("registro de cálculo no Redis")
	}

	correctionService := service.NewCorrectionService(records, log)
	laborService := service.NewLaborService(records, log)
	deadlineService := service.NewDeadlineService(records, log)

	var limiter *httpLayer.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = httpLayer.NewRateLimiter(cfg.RateLimit, time.Minute)
		defer limiter.Stop()
	}

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Correction: correctionService,
		Labor:      laborService,
		Deadline:   deadlineService,
		Records:    records,
		Limiter:    limiter,
		Log:        log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("CalcJus API no ar")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("falha ao subir o servidor")
		return
	case <-quit:
		log.Info().Msg("encerrando o servidor...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("falha no shutdown")
	}

	log.Info().Msg("servidor encerrado")
}
