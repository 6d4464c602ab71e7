package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
)

// Report output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const maxDecimalPlaces = 10

// Config stores runtime configuration for the report tooling.
type Config struct {
	AppEnv           string
	ServiceName      string
	ServiceVersion   string
	LogLevel         logging.Level
	ReportMaxWorkers int
	CacheEnabled     bool
	CacheTTL         time.Duration
	OutputFormat     string
	DecimalPlaces    int
	ColorEnabled     bool

	UptraceEnabled bool
	UptraceDSN     string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	maxWorkers, err := getEnvAsInt("REPORT_MAX_WORKERS", runtime.NumCPU())
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_MAX_WORKERS: %w", err)
	}
	if maxWorkers < 1 {
		return Config{}, fmt.Errorf("REPORT_MAX_WORKERS must be >= 1")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("REPORT_CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("REPORT_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("REPORT_CACHE_TTL must be > 0")
	}

	outputFormat, err := parseOutputFormat(getEnv("REPORT_OUTPUT_FORMAT", FormatTable))
	if err != nil {
		return Config{}, err
	}

	decimalPlaces, err := getEnvAsInt("REPORT_DECIMAL_PLACES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_DECIMAL_PLACES: %w", err)
	}
	if decimalPlaces < 0 || decimalPlaces > maxDecimalPlaces {
		return Config{}, fmt.Errorf("REPORT_DECIMAL_PLACES must be between 0 and %d", maxDecimalPlaces)
	}

	colorEnabled, err := strconv.ParseBool(getEnv("REPORT_COLOR", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REPORT_COLOR: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	return Config{
		AppEnv:           appEnv,
		ServiceName:      getEnv("APP_SERVICE_NAME", "fantasy-stats"),
		ServiceVersion:   getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:         parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		ReportMaxWorkers: maxWorkers,
		CacheEnabled:     cacheEnabled,
		CacheTTL:         cacheTTL,
		OutputFormat:     outputFormat,
		DecimalPlaces:    decimalPlaces,
		ColorEnabled:     colorEnabled,
		UptraceEnabled:   uptraceEnabled,
		UptraceDSN:       strings.TrimSpace(os.Getenv("UPTRACE_DSN")),
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseOutputFormat(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case FormatTable, FormatJSON:
		return value, nil
	default:
		return "", fmt.Errorf("invalid REPORT_OUTPUT_FORMAT %q: valid values are %s, %s", v, FormatTable, FormatJSON)
	}
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
