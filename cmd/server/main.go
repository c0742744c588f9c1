package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/proposal-backend/internal/ai"
	"github.com/ignatzorin/proposal-backend/internal/config"
	"github.com/ignatzorin/proposal-backend/internal/domain/repository"
	"github.com/ignatzorin/proposal-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/proposal-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/proposal-backend/internal/http/router"
	infraai "github.com/ignatzorin/proposal-backend/internal/infrastructure/ai"
	"github.com/ignatzorin/proposal-backend/internal/logger"
	"github.com/ignatzorin/proposal-backend/internal/metrics"
	"github.com/ignatzorin/proposal-backend/internal/usecase/generate"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logger.Init(cfg.LogLevel)
	if cfg.Env == "development" {
		logger.SetTextFormatter()
	}

	m := metrics.New()

	// Провайдер подключается только при USE_POLLINATIONS=true, иначе генератор остаётся nil.
	var generator repository.TextGenerator
	if cfg.UsePollinations {
		generator = infraai.NewInstrumentedGenerator(ai.NewClient(cfg.PollinationsBaseURL), m)
	}
	generateUC := generate.NewGenerateProposalUseCase(generator)

	logger.Log.WithFields(logrus.Fields{
		"env":      cfg.Env,
		"provider": generateUC.Enabled(),
		"base_url": cfg.PollinationsBaseURL,
	}).Info("main: конфигурация загружена")
	if !generateUC.Enabled() {
		logger.Log.Warn("main: провайдер не настроен, /api/generate будет отвечать 400")
	}

	// HTTP хэндлеры.
	generateHandler := httpHandlers.NewGenerateHandler(generateUC, m)
	healthHandler := httpHandlers.NewHealthHandler(generateUC.Enabled())

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, generateHandler, healthHandler, m)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	shutdownDone := goroutine.GoWithContext(ctx, func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorf("main: ошибка остановки http сервера: %v", err)
		}
	})

	logger.Log.Infof("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}

	<-shutdownDone
	logger.Log.Info("main: сервер остановлен")
}
