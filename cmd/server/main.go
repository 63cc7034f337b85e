package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/docuflow/document-intelligence/internal/config"
	"github.com/docuflow/document-intelligence/internal/extraction"
	ihttp "github.com/docuflow/document-intelligence/internal/interfaces/http"
	"github.com/docuflow/document-intelligence/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Document Intelligence API",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	// Create upload directory
	if err := os.MkdirAll(cfg.Upload.Dir, 0755); err != nil {
		logger.Fatal("Failed to create upload directory", zap.Error(err))
	}

	extractor := extraction.NewMockExtractor()

	server := ihttp.NewServer(ihttp.ServerConfig{
		Host:          cfg.Server.Host,
		Port:          cfg.Server.Port,
		ReadTimeout:   cfg.Server.ReadTimeout,
		WriteTimeout:  cfg.Server.WriteTimeout,
		UploadDir:     cfg.Upload.Dir,
		MaxUploadSize: cfg.Upload.MaxSize,
	}, extractor, &kvLogger{logger.Sugar()})

	// Shut down gracefully on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server error", zap.Error(err))
	}

	logger.Info("Server exited")
}

// kvLogger adapts a sugared zap logger to the server's logging interface.
type kvLogger struct {
	sugar *zap.SugaredLogger
}

func (l *kvLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *kvLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}
