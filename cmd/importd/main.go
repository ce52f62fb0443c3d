package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"talent-import-go/internal/api/handler"
	"talent-import-go/internal/api/router"
	"talent-import-go/internal/config"
	"talent-import-go/internal/importer"
	"talent-import-go/internal/logger"
	"talent-import-go/internal/storage"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Init(logger.Config{Level: "info", Format: "pretty", TimeFormat: time.RFC3339})
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	initLogger(cfg)
	logger.Info().Msg("config loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	defer storageManager.Close()
	logger.Info().Msg("storage initialized")

	engine := importer.NewEngine(
		importer.WithReadyThreshold(cfg.Engine.ReadyThreshold),
		importer.WithReviewThreshold(cfg.Engine.ReviewThreshold),
		importer.WithProgress(cfg.Engine.ProgressEvery, func(done, total int) {
			logger.Debug().Int("done", done).Int("total", total).Msg("batch progress")
		}),
	)

	importHandler := handler.NewImportHandler(cfg, storageManager, engine)

	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
	)
	router.RegisterRoutes(h, importHandler)

	go func() {
		if err := h.Run(); err != nil {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()
	logger.Info().Str("address", cfg.Server.Address).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := h.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("shutdown complete")
}

// initLogger configures the application logger from config and routes
// Hertz's framework logging through the same zerolog instance.
func initLogger(cfg *config.Config) {
	logger.Init(logger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})
	logger.Logger = logger.Logger.With().
		Str("app", "talent-import").
		Logger()

	glog.SetLogger(hertzadapter.From(logger.Logger))
}
