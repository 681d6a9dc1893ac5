package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nstrayer/tabulator-output-binding/pkg/dataframe"
)

func main() {
	config, err := LoadConfig("./config.json")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(config.LogLevel)

	db, err := initDB(config.DatabasePath)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	frame, err := dataframe.ReadCSVFile(config.DatasetPath)
	if err != nil {
		logger.Error("Failed to read dataset", "path", config.DatasetPath, "error", err)
		os.Exit(1)
	}

	store := NewDatasetStore(db, config.TableName)
	if err = store.Import(context.Background(), frame); err != nil {
		logger.Error("Failed to import dataset", "error", err)
		os.Exit(1)
	}
	logger.Info("Dataset imported", "table", config.TableName, "rows", frame.NumRows(), "columns", frame.NumCols())

	server, err := NewServer(config, logger, store)
	if err != nil {
		logger.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{Addr: config.ServerAddr, Handler: server.mux}

	go func() {
		logger.Info("Starting demo server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
		}
	}()

	osSignalChan := make(chan os.Signal, 1)
	signal.Notify(osSignalChan, syscall.SIGINT, syscall.SIGTERM)
	<-osSignalChan
	logger.Info("OS signal received, initiating shutdown.")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Demo server has shut down.")
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}
