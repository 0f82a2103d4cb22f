package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/miroslawsteblik/selene/config"
	"github.com/miroslawsteblik/selene/internal/adapters/api/alphavantage"
	rediscache "github.com/miroslawsteblik/selene/internal/adapters/cache/redis"
	"github.com/miroslawsteblik/selene/internal/adapters/export"
	"github.com/miroslawsteblik/selene/internal/adapters/mapper"
	"github.com/miroslawsteblik/selene/internal/adapters/repository/postgres"
	"github.com/miroslawsteblik/selene/internal/application/usecases"
	"github.com/miroslawsteblik/selene/internal/core/service"
	"github.com/miroslawsteblik/selene/internal/httpx"
	appconfig "github.com/miroslawsteblik/selene/pkg/config"
)

// Exit codes: per-symbol failures never make a completed fetch non-zero,
// only configuration and setup problems do.
const (
	exitOK             = 0
	exitConfigNotFound = 1
	exitInvalidConfig  = 2
	exitSetupFailure   = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return exitInvalidConfig
	}

	switch args[0] {
	case "fetch":
		return runFetch(args[1:])
	case "status":
		return runStatus(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		usage()
		return exitInvalidConfig
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  selene fetch  -config config.yaml [-symbols AAPL,MSFT] [-out report.json] [-v | -q]
  selene status -config config.yaml [-hours 24]`)
}

func runFetch(args []string) int {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to YAML configuration")
	symbolsFlag := fs.String("symbols", "", "comma-separated symbols (overrides config)")
	outPath := fs.String("out", "", "write the full report to a JSON file")
	verbose := fs.Bool("v", false, "debug logging")
	quiet := fs.Bool("q", false, "warnings and errors only")
	fs.Parse(args)

	cfg, code := loadConfig(*configPath)
	if cfg == nil {
		return code
	}

	ctx := context.Background()

	deps, err := appconfig.NewDependencies(ctx,
		appconfig.WithLogger(logLevel(cfg.Logging.Level, *verbose, *quiet)),
		appconfig.WithPostgres(cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName),
		appconfig.WithRedis(cfg.Redis.Addr, cfg.Redis.DB),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize dependencies: %v\n", err)
		return exitSetupFailure
	}
	defer deps.Close()
	logger := deps.Logger

	marketRepo := postgres.NewMarketDataRepository(deps.Postgres, logger)
	logRepo := postgres.NewAPILogRepository(deps.Postgres, logger)
	if err := marketRepo.EnsureSchema(ctx); err != nil {
		logger.Error("schema setup failed", slog.Any("error", err))
		return exitSetupFailure
	}
	if err := logRepo.EnsureSchema(ctx); err != nil {
		logger.Error("schema setup failed", slog.Any("error", err))
		return exitSetupFailure
	}

	client := alphavantage.NewClient(cfg.API.BaseURL, cfg.API.APIKey, logger,
		alphavantage.WithHTTPClient(httpx.New(time.Duration(cfg.API.TimeoutSeconds)*time.Second)))
	if err := client.Authenticate(ctx); err != nil {
		logger.Error("API authentication failed", slog.Any("error", err))
		return exitSetupFailure
	}

	cache := rediscache.NewQuoteCache(deps.Redis, logger)
	svc := service.NewMarketDataService(
		client,
		mapper.NewSchemaMapper(mapper.AlphaVantageGlobalQuote()),
		marketRepo,
		logRepo,
		cache,
		logger,
	)
	uc := usecases.NewFetchMarketDataUseCase(svc, logger)

	symbols := cfg.Symbols
	if *symbolsFlag != "" {
		symbols = splitSymbols(*symbolsFlag)
	}

	report := uc.Execute(ctx, symbols)

	fmt.Printf("Fetch complete. Success rate: %.2f%%\n", report.Summary.SuccessRate*100)

	if *outPath != "" {
		if err := (export.JSONWriter{}).Write(*outPath, report); err != nil {
			logger.Error("failed to write report", slog.String("path", *outPath), slog.Any("error", err))
		} else {
			logger.Info("report written", slog.String("path", *outPath))
		}
	}

	return exitOK
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to YAML configuration")
	hours := fs.Int("hours", 24, "how far back to look for errors")
	fs.Parse(args)

	cfg, code := loadConfig(*configPath)
	if cfg == nil {
		return code
	}

	ctx := context.Background()

	deps, err := appconfig.NewDependencies(ctx,
		appconfig.WithLogger(logLevel(cfg.Logging.Level, false, false)),
		appconfig.WithPostgres(cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize dependencies: %v\n", err)
		return exitSetupFailure
	}
	defer deps.Close()

	marketRepo := postgres.NewMarketDataRepository(deps.Postgres, deps.Logger)
	logRepo := postgres.NewAPILogRepository(deps.Postgres, deps.Logger)

	quotes, err := marketRepo.FindAllRecent(ctx, *hours)
	if err != nil {
		deps.Logger.Error("failed to query recent quotes", slog.Any("error", err))
		return exitSetupFailure
	}
	fmt.Printf("%d quotes stored in the last %d hours.\n", len(quotes), *hours)

	entries, err := logRepo.FindRecentErrors(ctx, *hours)
	if err != nil {
		deps.Logger.Error("failed to query recent errors", slog.Any("error", err))
		return exitSetupFailure
	}

	if len(entries) == 0 {
		fmt.Printf("No API errors in the last %d hours.\n", *hours)
		return exitOK
	}

	fmt.Printf("%d API errors in the last %d hours:\n", len(entries), *hours)
	for _, entry := range entries {
		status := "-"
		if entry.StatusCode != nil {
			status = fmt.Sprintf("%d", *entry.StatusCode)
		}
		fmt.Printf("  %s  %-18s %-6s %s\n",
			entry.Timestamp.Format(time.RFC3339), entry.Operation, status, entry.ErrorMessage)
	}
	return exitOK
}

func loadConfig(path string) (*config.Config, int) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "configuration file not found: %v\n", err)
			return nil, exitConfigNotFound
		}
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return nil, exitInvalidConfig
	}
	return cfg, exitOK
}

func logLevel(cfgLevel string, verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	}
	if cfgLevel == "dev" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func splitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			symbols = append(symbols, p)
		}
	}
	return symbols
}
