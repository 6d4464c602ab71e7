// Command statsheet prints fantasy league statistics for a JSON snapshot.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/fantasy-stats/internal/config"
	"github.com/riskibarqy/fantasy-stats/internal/infrastructure/snapshot"
	"github.com/riskibarqy/fantasy-stats/internal/interfaces/report"
	"github.com/riskibarqy/fantasy-stats/internal/observability"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 2
	}

	logger := logging.NewJSON(stderr, cfg.LogLevel).With("service", cfg.ServiceName, "version", cfg.ServiceVersion)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing := observability.InitUptrace(cfg, logger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("shutdown tracing", "error", err)
		}
	}()

	ctx, span := observability.StartCommandSpan(ctx, "statsheet")
	defer span.End()

	parsed, err := parseArgs(args, cfg, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.Error("invalid arguments", "error", err)
		return 2
	}

	renderer, err := report.New(parsed.format, report.Options{
		DecimalPlaces: int32(parsed.decimalPlaces),
		Color:         parsed.color,
	})
	if err != nil {
		logger.Error("build renderer", "error", err)
		return 2
	}

	service := usecase.NewReportService(snapshot.NewFileLoader(logger), usecase.ReportConfig{
		MaxWorkers:   cfg.ReportMaxWorkers,
		CacheEnabled: cfg.CacheEnabled,
		CacheTTL:     cfg.CacheTTL,
	}, logger)

	result, err := service.BuildReport(ctx, parsed.snapshot, parsed.options)
	if err != nil {
		logger.ErrorContext(ctx, "build report", "snapshot", parsed.snapshot, "error", err)
		if errors.Is(err, usecase.ErrInvalidInput) || errors.Is(err, usecase.ErrNotFound) {
			return 2
		}
		return 1
	}

	if err := renderer.Render(stdout, result); err != nil {
		logger.ErrorContext(ctx, "render report", "error", err)
		return 1
	}
	return 0
}
