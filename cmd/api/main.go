package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/camilovegag/procesos-de-negocio/internal/api/http"
	"github.com/camilovegag/procesos-de-negocio/internal/api/http/handlers"
	"github.com/camilovegag/procesos-de-negocio/internal/config"
	"github.com/camilovegag/procesos-de-negocio/internal/events"
	"github.com/camilovegag/procesos-de-negocio/internal/observability"
	"github.com/camilovegag/procesos-de-negocio/internal/service"
	"github.com/camilovegag/procesos-de-negocio/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	presenter := service.NewPresenterService(dispatcher, logger, cfg.Intake)
	worker.StartPresenterWorker(presenter)

	intakeService := service.NewIntakeService(service.IntakeDependencies{
		Dispatcher: dispatcher,
		Metrics:    metrics,
		Logger:     logger,
	})

	app := httptransport.NewApp(httptransport.ServerConfig{
		AppName:        cfg.App.Name,
		BodyLimit:      cfg.App.BodyLimitBytes,
		RequestTimeout: cfg.App.RequestTimeout(),
	}, logger, metrics, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics),
		Intake: handlers.NewIntakeHandler(intakeService),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
