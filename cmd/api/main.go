package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caballebrios/nightboard/internal/app"
	"github.com/caballebrios/nightboard/internal/config"
	"github.com/caballebrios/nightboard/internal/observability"
	"github.com/caballebrios/nightboard/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	baseLogger := logging.New(cfg.LogLevel, cfg.ServiceName, cfg.AppEnv)

	logger, flushLogs, err := observability.InitBetterStackLogger(cfg, baseLogger)
	if err != nil {
		baseLogger.Error("init log shipping", "error", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	stopUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, cleanup, err := app.NewHTTPServer(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	cleanup()

	if pprofSrv != nil {
		if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
			logger.Warn("stop pprof server", "error", err)
		}
	}
	if err := stopPyroscope(); err != nil {
		logger.Warn("stop pyroscope", "error", err)
	}
	if err := stopUptrace(shutdownCtx); err != nil {
		logger.Warn("stop uptrace", "error", err)
	}

	logger.Info("http server stopped")

	// Drained last so the stop line above still ships.
	if err := flushLogs(shutdownCtx); err != nil {
		logger.Warn("flush logs", "error", err)
	}
}
